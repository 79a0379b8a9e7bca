package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KenzyTran/stock-import-backend/internal/api/handlers"
	custommiddleware "github.com/KenzyTran/stock-import-backend/internal/api/middleware"
	"github.com/KenzyTran/stock-import-backend/internal/config"
	"github.com/KenzyTran/stock-import-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, importService *service.ImportService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/import", func(r chi.Router) {
			importHandler := handlers.NewImportHandler(importService, cfg.Upload.Dir)
			r.Post("/upload", importHandler.Upload)
			r.Post("/commit", importHandler.Commit)
		})

		r.Route("/batch", func(r chi.Router) {
			batchHandler := handlers.NewBatchHandler(importService)
			r.Get("/", batchHandler.ListBatches)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", batchHandler.GetBatch)
			})
		})
	})

	return r
}
