package observability

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics implements BuildHooks, CacheHooks and HTTPHooks on top of a
// private Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	builds        *prometheus.CounterVec
	buildDuration prometheus.Histogram
	buildNodes    prometheus.Gauge
	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	cacheEvents   *prometheus.CounterVec
	cacheBytes    prometheus.Counter
	httpRequests  *prometheus.CounterVec
	httpDuration  prometheus.Histogram
}

// NewMetrics creates a Metrics with all collectors registered.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "depviz_builds_total",
				Help: "Total number of graph builds by outcome",
			},
			[]string{"outcome"},
		),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "depviz_build_duration_seconds",
			Help:    "Wall time of graph builds",
			Buckets: prometheus.DefBuckets,
		}),
		buildNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "depviz_build_nodes",
			Help: "Number of nodes discovered by the last build",
		}),
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "depviz_provider_fetches_total",
				Help: "Total number of provider calls by outcome",
			},
			[]string{"outcome"},
		),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "depviz_provider_fetch_duration_seconds",
			Help:    "Latency of provider calls",
			Buckets: prometheus.DefBuckets,
		}),
		cacheEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "depviz_cache_events_total",
				Help: "Cache hits, misses and writes by key type",
			},
			[]string{"key_type", "event"},
		),
		cacheBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "depviz_cache_written_bytes_total",
			Help: "Bytes written to the cache",
		}),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "depviz_http_requests_total",
				Help: "Registry HTTP requests by host and status",
			},
			[]string{"host", "status"},
		),
		httpDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "depviz_http_request_duration_seconds",
			Help:    "Latency of registry HTTP requests",
			Buckets: prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.builds, m.buildDuration, m.buildNodes,
		m.fetches, m.fetchDuration,
		m.cacheEvents, m.cacheBytes,
		m.httpRequests, m.httpDuration,
	)
	return m
}

// WriteText writes all metrics in the Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) OnBuildStart(context.Context, string) {}

func (m *Metrics) OnFetch(_ context.Context, _ string, d time.Duration, err error) {
	m.fetches.WithLabelValues(outcome(err)).Inc()
	m.fetchDuration.Observe(d.Seconds())
}

func (m *Metrics) OnBuildComplete(_ context.Context, _ string, nodes int, d time.Duration, err error) {
	m.builds.WithLabelValues(outcome(err)).Inc()
	m.buildDuration.Observe(d.Seconds())
	m.buildNodes.Set(float64(nodes))
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheEvents.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.Add(float64(size))
}

func (m *Metrics) OnRequest(context.Context, string, string, string) {}

func (m *Metrics) OnResponse(_ context.Context, _, host, _ string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(host, fmt.Sprint(status)).Inc()
	m.httpDuration.Observe(d.Seconds())
}

func (m *Metrics) OnError(_ context.Context, _, host, _ string, _ error) {
	m.httpRequests.WithLabelValues(host, "error").Inc()
}

var (
	_ BuildHooks = (*Metrics)(nil)
	_ CacheHooks = (*Metrics)(nil)
	_ HTTPHooks  = (*Metrics)(nil)
)
