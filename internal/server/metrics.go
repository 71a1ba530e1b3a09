package server

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/faciam-dev/gcms/internal/metrics"
	"github.com/faciam-dev/gcms/internal/server/middleware"
	"github.com/faciam-dev/gcms/pkg/pagestore"
)

// setupMetrics registers metrics middleware and handlers.
func setupMetrics(api huma.API, r chi.Router, store pagestore.Store) {
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	api.UseMiddleware(middleware.MetricsMW)
	if counter, ok := store.(metrics.PageCounter); ok {
		metrics.StartPageGauge(context.Background(), counter)
	}
}
