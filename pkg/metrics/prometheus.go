package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the rating server's collectors. A nil *Manager is valid and
// records nothing, so components can take one optionally.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	rpcRequests      *prometheus.CounterVec
	rpcDuration      *prometheus.HistogramVec
	ratingsSubmitted prometheus.Counter
	templateMisses   prometheus.Counter
	cacheLookups     *prometheus.CounterVec
}

// NewManager creates a manager on its own registry unless one is supplied.
// Go runtime and process collectors are registered alongside.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "collab",
		subsystem:        "rating",
		histogramBuckets: prometheus.DefBuckets,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	auto := promauto.With(m.registry)
	m.rpcRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rpc_requests_total",
		Help:      "Total number of handled RPCs by method and status code",
	}, []string{"method", "code"})

	m.rpcDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rpc_duration_seconds",
		Help:      "RPC handling latency in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"method"})

	m.ratingsSubmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ratings_submitted_total",
		Help:      "Total number of rating entries persisted",
	})

	m.templateMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "template_misses_total",
		Help:      "Template resolutions that found no applicable template",
	})

	m.cacheLookups = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_lookups_total",
		Help:      "Statistics cache lookups by result",
	}, []string{"result"})
}

// RecordRPC counts one finished RPC and observes its latency.
func (m *Manager) RecordRPC(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(method, code).Inc()
	m.rpcDuration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Manager) AddRatingsSubmitted(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ratingsSubmitted.Add(float64(n))
}

func (m *Manager) IncTemplateMiss() {
	if m == nil {
		return
	}
	m.templateMisses.Inc()
}

func (m *Manager) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// Registry returns the registry backing this manager.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the manager's registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
