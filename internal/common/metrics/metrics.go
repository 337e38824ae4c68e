// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LocaleCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locale_cache_hits_total",
			Help: "Total number of locale document cache hits",
		},
		[]string{"locale"},
	)

	LocaleCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locale_cache_misses_total",
			Help: "Total number of locale document cache misses",
		},
		[]string{"locale"},
	)

	LocaleFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locale_fallbacks_total",
			Help: "Total number of locale resolutions that degraded past the requested locale",
		},
		[]string{"requested", "served"},
	)

	PromptCompositions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prompt_compositions_total",
			Help: "Total number of prompt compositions by outcome",
		},
		[]string{"template", "outcome"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"path"},
	)
)
