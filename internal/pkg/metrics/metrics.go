package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// --- Inbound (server) metrics ---
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "route", "code"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	HTTPRequestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_errors_total",
			Help: "Total number of HTTP requests resulting in client or server errors.",
		},
		[]string{"method", "route", "code"},
	)

	// --- Outbound (image fetch) metrics ---
	HTTPClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_client_requests_total",
			Help: "Total number of outbound HTTP requests.",
		},
		[]string{"method", "code"},
	)
	HTTPClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_client_request_duration_seconds",
			Help:    "Latency of outbound HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "code"},
	)

	// --- Engine metrics ---
	EmailAnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_size_analyses_total",
			Help: "Email size analyses by resulting status.",
		},
		[]string{"status"},
	)
	EmailAnalyzedBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "email_size_analyzed_bytes",
			Help:    "Estimated wire size of analyzed emails.",
			Buckets: prometheus.ExponentialBuckets(8*1024, 2, 6),
		},
	)
	SanitizeBytesRemoved = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "email_sanitize_bytes_removed",
			Help:    "Bytes reclaimed per sanitization.",
			Buckets: prometheus.ExponentialBuckets(64, 4, 7),
		},
	)
	ImageCompressionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_compressions_total",
			Help: "Image compressions by output format and outcome.",
		},
		[]string{"format", "outcome"},
	)
	ImageCompressionAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "image_compression_attempts",
			Help:    "Encode attempts needed per image compression.",
			Buckets: prometheus.LinearBuckets(1, 1, 12),
		},
	)
	VerdictCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verdict_cache_lookups_total",
			Help: "Verdict cache lookups by result.",
		},
		[]string{"result"},
	)

	// --- Runtime metrics ---
	CPUCount = promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "process_cpu_count",
			Help: "Number of CPU cores available.",
		},
		func() float64 { return float64(runtime.NumCPU()) },
	)
)

func MetricsRegister() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		HTTPRequestsTotal,
		HTTPRequestDuration,
		HTTPRequestErrorsTotal,
		HTTPClientRequestsTotal,
		HTTPClientRequestDuration,
		EmailAnalysesTotal,
		EmailAnalyzedBytes,
		SanitizeBytesRemoved,
		ImageCompressionsTotal,
		ImageCompressionAttempts,
		VerdictCacheLookupsTotal,
		CPUCount,
	)

	return reg
}
