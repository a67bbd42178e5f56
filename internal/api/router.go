// Package api provides the HTTP API for AquaWatch.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aquawatch/aquawatch/internal/api/handler"
	"github.com/aquawatch/aquawatch/internal/api/middleware"
	"github.com/aquawatch/aquawatch/internal/coordinate"
	"github.com/aquawatch/aquawatch/internal/report"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version           string
	BuildTime         string
	Logger            zerolog.Logger
	ServiceName       string
	StorageBackend    string
	Metrics           *middleware.Metrics
	ReportService     *report.Service
	CoordinateService *coordinate.Service
	StoragePinger     handler.Pinger
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "aquawatch-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(middleware.ContentTypeJSON) // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.StorageBackend, cfg.StoragePinger)
	reportHandler := handler.NewReportHandler(cfg.ReportService)
	coordinateHandler := handler.NewCoordinateHandler(cfg.CoordinateService)

	// Rate limits: reads are cheap, writes rewrite whole collections on the
	// file backend, so mutations get the tighter budget.
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit) // 100 req/min
	writeRateLimit := middleware.RateLimitByIP(middleware.WriteRateLimit)       // 30 req/min

	// Service metadata and health (public, unlimited)
	r.Get("/", opsHandler.ServiceInfo)
	r.Get("/health", opsHandler.HealthCheck)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireJSON)

		r.Route("/reports", func(r chi.Router) {
			r.With(standardRateLimit).Get("/", reportHandler.ListReports)
			r.With(writeRateLimit).Post("/", reportHandler.CreateReport)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(writeRateLimit)
				r.Put("/", reportHandler.UpdateReportStatus)
				r.Delete("/", reportHandler.DeleteReport)
			})
		})

		r.Route("/coordinates", func(r chi.Router) {
			r.With(standardRateLimit).Get("/", coordinateHandler.ListCoordinates)
			r.With(writeRateLimit).Post("/", coordinateHandler.CreateCoordinate)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(writeRateLimit)
				r.Put("/", coordinateHandler.UpdateCoordinateStatus)
				r.Delete("/", coordinateHandler.DeleteCoordinate)
			})
		})
	})

	return r
}
