package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobinsights/internal/config"
	"jobinsights/internal/handlers"
	"jobinsights/internal/handlers/api"
	"jobinsights/internal/insights"
	"jobinsights/internal/middleware"
)

// RegisterRoutes registers all application routes. database may be nil when
// ads are not served from Postgres.
func (s *Server) RegisterRoutes(ctx context.Context, ic *insights.Context, layout *config.YAMLConfig, database handlers.Pinger) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(ic, s.Cfg, layout)
	reportAPI := api.NewReportHandler(ic)
	probeHandler := handlers.NewProbeHandler(ic, database)

	// Probes and metrics are always public
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth routes - only when OIDC is configured
	if s.Cfg.IsAuthEnabled() {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else if authMiddleware.Enabled() {
		log.Println("Dashboard access is restricted to client certificates")
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
	}
	s.App.Get("/login", handlers.LoginPage(s.Cfg))

	// Dashboard
	s.App.Get("/", authMiddleware.RequireAuth, dashboardHandler.Index)
	s.App.Get("/report", authMiddleware.RequireAuth, dashboardHandler.Report)

	// JSON API
	v1 := s.App.Group("/api/v1", authMiddleware.RequireAuth)
	v1.Get("/report", reportAPI.Report)
	v1.Get("/filters", reportAPI.Filters)

	return nil
}
