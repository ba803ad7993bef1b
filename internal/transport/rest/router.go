package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/ghconnect/internal/metrics"
	"github.com/heartmarshall/ghconnect/internal/transport/middleware"
)

// RouterDeps holds the handlers and collaborators mounted by NewRouter.
type RouterDeps struct {
	GitHub   *GitHubHandler
	Health   *HealthHandler
	Auth     func(http.Handler) http.Handler
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// NewRouter builds the HTTP router. Probes and /metrics are served without
// authentication; the GitHub endpoints run behind the auth middleware.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.Metrics(deps.Metrics),
	)

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/github", func(r chi.Router) {
		r.Use(deps.Auth)
		r.Get("/authorize", deps.GitHub.Authorize)
		r.Post("/connect", deps.GitHub.Connect)
		r.Post("/disconnect", deps.GitHub.Disconnect)
		r.Post("/sync", deps.GitHub.Sync)
	})

	return r
}
