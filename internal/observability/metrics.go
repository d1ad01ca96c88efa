package observability

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yungbote/connective-drills/internal/platform/logger"
)

const namespace = "drills"

// Metrics holds the service's Prometheus instruments. All methods are safe on
// a nil receiver so callers can run with metrics disabled.
type Metrics struct {
	reg *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	samplingAttempts *prometheus.CounterVec
	generatedItems   *prometheus.CounterVec
	schemaViolations prometheus.Counter
	llmRequests      *prometheus.CounterVec
	llmLatency       prometheus.Histogram
	attemptScore     prometheus.Histogram
	attempts         *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
}

var (
	initOnce sync.Once
	instance *Metrics
)

// Init builds the process-wide instance on a fresh registry that also carries
// the Go runtime and process collectors.
func Init(log *logger.Logger) *Metrics {
	initOnce.Do(func() {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		instance = New(reg)
		if log != nil {
			log.Info("metrics initialized", "namespace", namespace)
		}
	})
	return instance
}

func Current() *Metrics {
	return instance
}

// New registers every instrument on reg.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		apiRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		apiLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		apiInflight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_inflight_requests",
			Help:      "HTTP requests currently being served.",
		}),
		samplingAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sampling_attempts_total",
			Help:      "Spec sampling calls by outcome (ok|exhausted).",
		}, []string{"outcome"}),
		generatedItems: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_items_total",
			Help:      "Challenges created by source.",
		}, []string{"source"}),
		schemaViolations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schema_violations_total",
			Help:      "Generated items rejected by the strict validator.",
		}),
		llmRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_requests_total",
			Help:      "LLM generation requests by status.",
		}, []string{"status"}),
		llmLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_request_duration_seconds",
			Help:      "LLM generation latency.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
		attemptScore: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "attempt_score",
			Help:      "Scores of submitted answers.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		attempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attempts_total",
			Help:      "Submitted answers by result (pass|fail).",
		}, []string{"result"}),
		cacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Challenge cache lookups by result (hit|miss|error).",
		}, []string{"result"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

// RegisterDBStats exports database/sql pool stats for db. Registering the
// same dbName twice is a no-op.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	if m == nil || db == nil {
		return nil
	}
	err := m.reg.Register(collectors.NewDBStatsCollector(db, dbName))
	var dup prometheus.AlreadyRegisteredError
	if errors.As(err, &dup) {
		return nil
	}
	return err
}

func (m *Metrics) ObserveAPI(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.apiRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) IncSampling(ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "exhausted"
	}
	m.samplingAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncGeneratedItem(source string) {
	if m == nil {
		return
	}
	m.generatedItems.WithLabelValues(source).Inc()
}

func (m *Metrics) IncSchemaViolation() {
	if m == nil {
		return
	}
	m.schemaViolations.Inc()
}

func (m *Metrics) ObserveLLMRequest(status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.llmRequests.WithLabelValues(status).Inc()
	m.llmLatency.Observe(dur.Seconds())
}

func (m *Metrics) ObserveAttempt(score float64, pass bool) {
	if m == nil {
		return
	}
	result := "fail"
	if pass {
		result = "pass"
	}
	m.attempts.WithLabelValues(result).Inc()
	m.attemptScore.Observe(score)
}

func (m *Metrics) IncCacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
