// Package metrics exposes Prometheus collectors for the expense tracker.
// Everything registers on a private registry so tests can build as many
// instances as they like.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "expenses"

type Metrics struct {
	registry *prometheus.Registry

	expensesCreated   prometheus.Counter
	expensesDeleted   prometheus.Counter
	submissionsFailed *prometheus.CounterVec
	fieldUpdates      *prometheus.CounterVec
	filterChanges     *prometheus.CounterVec
	sessionsCreated   prometheus.Counter
	rateLimited       prometheus.Counter
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New builds the collectors. withRuntime adds the Go and process collectors.
func New(withRuntime bool) *Metrics {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		expensesCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "created_total",
			Help:      "Total number of expenses accepted by the editor",
		}),
		expensesDeleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deleted_total",
			Help:      "Total number of expenses deleted",
		}),
		submissionsFailed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submission_errors_total",
			Help:      "Validation failures on submit by field",
		}, []string{"field"}),
		fieldUpdates: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "editor_field_updates_total",
			Help:      "Field edits applied to editor drafts",
		}, []string{"field"}),
		filterChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_changes_total",
			Help:      "Filter selections by category",
		}, []string{"filter"}),
		sessionsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Total number of sessions started",
		}),
		rateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ExpenseCreated() { m.expensesCreated.Inc() }

func (m *Metrics) ExpenseDeleted() { m.expensesDeleted.Inc() }

// SubmissionRejected counts one failure per invalid field.
func (m *Metrics) SubmissionRejected(fields []string) {
	for _, f := range fields {
		m.submissionsFailed.WithLabelValues(f).Inc()
	}
}

func (m *Metrics) FieldUpdated(field string) { m.fieldUpdates.WithLabelValues(field).Inc() }

func (m *Metrics) FilterChanged(filter string) { m.filterChanges.WithLabelValues(filter).Inc() }

func (m *Metrics) SessionStarted() { m.sessionsCreated.Inc() }

// TrackActiveSessions exposes the live session count, read at scrape time.
func (m *Metrics) TrackActiveSessions(count func() int) {
	promauto.With(m.registry).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Sessions currently held in memory",
	}, func() float64 { return float64(count()) })
}

func (m *Metrics) RateLimited() { m.rateLimited.Inc() }

// ObserveHTTP records one finished request. route is the mux pattern, not the
// raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
