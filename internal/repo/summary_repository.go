package repo

// Summary aggregates the dashboard numbers shown on the sales overview:
// revenue to date, sale count, the most recent sale date and how many
// inventory items sit at or below their minimum threshold.
type Summary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	SalesCount    int     `json:"sales_count"`
	LastSaleDate  string  `json:"last_sale_date,omitempty"`
	TotalProducts int     `json:"total_products"`
	LowStockCount int     `json:"low_stock_count"`
}

type SummaryRepository interface {
	GetDashboardSummary() (Summary, error)
}
