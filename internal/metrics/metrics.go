package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/faciam-dev/gcms/internal/logger"
)

var (
	APIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_api_requests_total",
			Help: "Number of API requests",
		},
		[]string{"table", "method", "path", "status"},
	)
	APILatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_api_latency_seconds",
			Help:    "API latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	Pages = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cms_pages_total",
			Help: "Number of pages by application table",
		},
		[]string{"table"},
	)
	ValidationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_validation_errors_total",
			Help: "Count of section validation failures",
		},
		[]string{"section_type"},
	)
	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_store_errors_total",
			Help: "Count of page store failures",
		},
		[]string{"op"},
	)
	SaveLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cms_page_save_seconds",
			Help:    "Latency of page saves",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		APIRequests,
		APILatency,
		Pages,
		ValidationErrors,
		StoreErrors,
		SaveLatency,
	)
}

// PageCounter is implemented by stores able to count pages per table.
type PageCounter interface {
	CountPagesByTable(ctx context.Context) (map[string]int, error)
}

// StartPageGauge starts a background job that updates the page gauge every
// 30 seconds.
func StartPageGauge(ctx context.Context, store PageCounter) {
	if store == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				counts, err := store.CountPagesByTable(ctx)
				if err != nil {
					logger.L.Error("count pages", "err", err)
					continue
				}
				for t, n := range counts {
					Pages.WithLabelValues(t).Set(float64(n))
				}
			}
		}
	}()
}
