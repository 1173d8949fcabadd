package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/supermarket-pro/docs"
	"github.com/rogerio-castellano/supermarket-pro/internal/http/handlers"
	rl "github.com/rogerio-castellano/supermarket-pro/internal/http/rate_limiter"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type RouterOptions struct {
	Logger zerolog.Logger
	// Limiter is optional; without it requests are not throttled.
	Limiter *rl.Limiter
}

func NewRouter(opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(opts.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(RateLimit(opts.Limiter))
		}

		r.Route("/products", func(r chi.Router) {
			r.Post("/", handlers.CreateProductHandler)
			r.Get("/", handlers.GetProductsHandler)
			r.Post("/import", handlers.ImportProductsHandler)
			r.Get("/{id}", handlers.GetProductByIDHandler)
			r.Post("/{id}/adjust", handlers.AdjustStockHandler)
			r.Put("/{id}/stock", handlers.SetStockHandler)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Post("/", handlers.RecordSaleHandler)
			r.Get("/", handlers.GetSalesHandler)
			r.Get("/export", handlers.ExportSalesHandler)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/inventory", handlers.InventorySummaryHandler)
			r.Get("/sales", handlers.SalesSummaryHandler)
			r.Get("/dashboard", handlers.DashboardHandler)
		})
	})

	return r
}
