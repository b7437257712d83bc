package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/camila-fonseca/aroma-atelier/docs"
	"github.com/camila-fonseca/aroma-atelier/internal/http/handlers"
)

// NewRouter wires all routes. Reads are public; anything that mutates
// state or spends money (the assistant) requires a bearer token. The
// auth endpoints are rate limited per client IP.
func NewRouter(metricsEnabled bool) http.Handler {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)

	r.Get("/health", handlers.HealthHandler)

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/refresh", handlers.RefreshHandler)
	})

	r.Get("/inventory", handlers.GetInventoryHandler)
	r.Get("/inventory/{id}", handlers.GetInventoryItemByIDHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/sales", handlers.GetSalesHandler)
	r.Get("/sales/daily", handlers.GetDailyRevenueHandler)
	r.Get("/sales/{id}", handlers.GetSaleByIDHandler)
	r.Get("/orders", handlers.GetOrdersHandler)
	r.Get("/orders/{id}", handlers.GetOrderByIDHandler)
	r.Get("/dashboard/summary", handlers.GetDashboardSummaryHandler)
	r.Get("/units", handlers.GetUnitsHandler)

	r.Post("/calculators/usage-cost", handlers.UsageCostHandler)
	r.Post("/calculators/pricing", handlers.PricingHandler)
	r.Post("/calculators/batch-mix", handlers.BatchMixHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/inventory", handlers.CreateInventoryItemHandler)
		r.Put("/inventory/{id}", handlers.UpdateInventoryItemHandler)
		r.Delete("/inventory/{id}", handlers.DeleteInventoryItemHandler)

		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/{id}/recipe", handlers.AddRecipeIngredientHandler)
		r.Delete("/products/{id}/recipe/{itemId}", handlers.RemoveRecipeIngredientHandler)

		r.Post("/sales", handlers.CreateSaleHandler)
		r.Post("/sales/checkout", handlers.CheckoutHandler)
		r.Get("/sales/export", handlers.ExportSalesHandler)

		r.Post("/orders", handlers.CreateOrderHandler)
		r.Put("/orders/{id}", handlers.UpdateOrderHandler)
		r.Delete("/orders/{id}", handlers.DeleteOrderHandler)

		r.Post("/assistant", handlers.AssistantHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	if metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}
