package app

import (
	"net/http"

	"marketplace/internal/config"
	"marketplace/internal/handlers"
	"marketplace/internal/metrics"
	mw "marketplace/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func newRouter(h *handlers.Handler, cfg *config.Config, log *zap.Logger, collector *metrics.Collector, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Logger(log))
	r.Use(mw.Metrics(collector))
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", metrics.Handler(reg))

	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		h.Register(r)
	})

	return r
}
