package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/brandkitai/brandkit/internal/api/handlers"
	"github.com/brandkitai/brandkit/internal/api/middleware"
	"github.com/brandkitai/brandkit/internal/config"
	"github.com/brandkitai/brandkit/internal/pkg/logger"
	"github.com/brandkitai/brandkit/internal/pkg/metrics"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	User     *handlers.UserHandler
	BrandKit *handlers.BrandKitHandler
	Billing  *handlers.BillingHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(metrics.Middleware)
	r.Use(middleware.NewRateLimiter(20, 40).Middleware) // 20 req/sec, burst of 40

	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)
		r.Handle("/metrics", metrics.Handler())

		r.Get("/api/v1/billing/plans", h.Billing.ListPlans)
	})

	// Protected routes (require a verified identity token)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Auth.TokenSecret))

		// Users
		r.Post("/api/v1/users/sync", h.User.Sync)
		r.Get("/api/v1/users/me", h.User.Me)

		// Brand kits
		r.Route("/api/v1/brand-kits", func(r chi.Router) {
			r.Get("/", h.BrandKit.List)
			r.Post("/", h.BrandKit.Create)
			r.Get("/{id}", h.BrandKit.Get)
			r.Patch("/{id}", h.BrandKit.Patch)
			r.Post("/{id}/generate", h.BrandKit.Generate)
		})

		// Billing
		r.Get("/api/v1/billing/info", h.Billing.GetInfo)
		r.Post("/api/v1/billing/subscription", h.Billing.UpdateSubscription)
	})

	return r
}
