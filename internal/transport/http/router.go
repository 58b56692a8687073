// Package httptransport wires the HTTP API: routing, the middleware
// stack, and the JSON contract of the generation endpoints. Handlers
// delegate to domain services and stay free of business logic.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shenfen/internal/platform/health"
	"shenfen/internal/platform/metrics"
	"shenfen/internal/platform/middleware"
)

const defaultRequestTimeout = 120 * time.Second

// RouterOptions carries the dependencies NewRouter mounts. Handlers and
// the logger are required; nil Health or Metrics leave those surfaces
// unmounted.
type RouterOptions struct {
	Identities *IdentityHandler
	Cards      *CardHandler
	Health     *health.Handler
	Metrics    *metrics.Metrics
	Logger     *slog.Logger

	// RequestTimeout bounds one request end to end. Zero applies the
	// default, sized for a full batch with card rendering.
	RequestTimeout time.Duration
}

// NewRouter wires all public endpoints with middleware. Panics on missing
// required dependencies - fail fast at startup.
func NewRouter(opts RouterOptions) http.Handler {
	if opts.Identities == nil || opts.Cards == nil {
		panic("httptransport.NewRouter: handlers are required")
	}
	if opts.Logger == nil {
		panic("httptransport.NewRouter: logger is required")
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}
	r.Use(middleware.Timeout(timeout))

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)
		opts.Identities.Register(api)
		opts.Cards.Register(api)
	})

	if opts.Health != nil {
		opts.Health.Register(r)
	}
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
