package handlers

import "net/http"

// GetDashboardSummaryHandler godoc
// @Summary Dashboard summary figures
// @Description Total revenue, sale count, last sale date, product count and low-stock count in one shot
// @Tags dashboard
// @Produce json
// @Success 200 {object} repo.Summary
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/summary [get]
func GetDashboardSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := summaryRepo.GetDashboardSummary()
	if err != nil {
		http.Error(w, "could not build summary", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
