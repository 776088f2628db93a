package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncPushes(source string)
	IncPushFailures()
	IncImportRowsSkipped(count int)
	IncRemoteAhead()
	SetRosterSize(count int)
	SetDraftDirty(dirty bool)
	ObservePushDuration(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	pushesTotal       *prometheus.CounterVec
	pushFailures      prometheus.Counter
	importRowsSkipped prometheus.Counter
	remoteAheadTotal  prometheus.Counter
	rosterSize        prometheus.Gauge
	draftDirty        prometheus.Gauge
	pushDuration      prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits()   { m.cacheHits.Inc() }
func (m *MetricsProvider) IncCacheMisses() { m.cacheMisses.Inc() }

func (m *MetricsProvider) IncPushes(source string) {
	m.pushesTotal.WithLabelValues(source).Inc()
}

func (m *MetricsProvider) IncPushFailures() { m.pushFailures.Inc() }

func (m *MetricsProvider) IncImportRowsSkipped(count int) {
	m.importRowsSkipped.Add(float64(count))
}

func (m *MetricsProvider) IncRemoteAhead() { m.remoteAheadTotal.Inc() }

func (m *MetricsProvider) SetRosterSize(count int) {
	m.rosterSize.Set(float64(count))
}

func (m *MetricsProvider) SetDraftDirty(dirty bool) {
	if dirty {
		m.draftDirty.Set(1)
	} else {
		m.draftDirty.Set(0)
	}
}

func (m *MetricsProvider) ObservePushDuration(duration time.Duration) {
	m.pushDuration.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roster_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		pushesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_pushes_total",
			Help: "Successful pushes to the remote store by source tag",
		}, []string{"source"}),

		pushFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_push_failures_total",
			Help: "Failed pushes to the remote store",
		}),

		importRowsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_import_rows_skipped_total",
			Help: "Import rows skipped as malformed",
		}),

		remoteAheadTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_remote_ahead_total",
			Help: "Foreign remote writes observed while holding a local draft",
		}),

		rosterSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "roster_athletes",
			Help: "Current number of athlete records in the local draft",
		}),

		draftDirty: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "roster_draft_dirty",
			Help: "1 when the local draft has unpushed edits",
		}),

		pushDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "roster_push_duration_seconds",
			Help:    "Duration of pushes to the remote store in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncPushes(_ string)                               {}
func (n *noopMetrics) IncPushFailures()                                 {}
func (n *noopMetrics) IncImportRowsSkipped(_ int)                       {}
func (n *noopMetrics) IncRemoteAhead()                                  {}
func (n *noopMetrics) SetRosterSize(_ int)                              {}
func (n *noopMetrics) SetDraftDirty(_ bool)                             {}
func (n *noopMetrics) ObservePushDuration(_ time.Duration)              {}
