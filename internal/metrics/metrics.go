// Package metrics exposes Prometheus collectors for cook actions, prediction
// polling and controller events. Session IDs never appear in labels.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/renato0307/pitmaster/internal/session"
)

const namespace = "pitmaster"

// Poll outcomes
const (
	PollApplied   = "applied"
	PollDiscarded = "discarded"
	PollFailed    = "failed"
)

// Action results
const (
	ResultError   = "error"
	ResultInvalid = "invalid"
	ResultSuccess = "success"
)

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	ActionDuration *prometheus.HistogramVec
	ActionsTotal   *prometheus.CounterVec
	EventsTotal    *prometheus.CounterVec
	PollTicksTotal *prometheus.CounterVec
	SessionActive  prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ActionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Total number of operator actions, by action and result.",
		}, []string{"action", "result"}),

		ActionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "Latency of prediction service calls made for operator actions.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),

		PollTicksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poll_ticks_total",
			Help:      "Total number of prediction polls, by outcome.",
		}, []string{"outcome"}),

		EventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Total number of events applied by the session controller, by kind.",
		}, []string{"kind"}),

		SessionActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "session_active",
			Help:      "1 while a cook session is active, 0 otherwise.",
		}),

		gatherer: reg,
	}
}

// ObserveAction records the result and latency of an operator action
func (m *Metrics) ObserveAction(action, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ActionsTotal.WithLabelValues(action, result).Inc()
	if result != ResultInvalid {
		m.ActionDuration.WithLabelValues(action).Observe(elapsed.Seconds())
	}
}

// ObservePoll records the outcome of one prediction poll
func (m *Metrics) ObservePoll(outcome string) {
	if m == nil {
		return
	}
	m.PollTicksTotal.WithLabelValues(outcome).Inc()
}

// Record implements session.Recorder
func (m *Metrics) Record(ev session.Event, _, next session.State) {
	if m == nil {
		return
	}
	m.EventsTotal.WithLabelValues(string(ev.Kind())).Inc()
	if next.HasSession() {
		m.SessionActive.Set(1)
	} else {
		m.SessionActive.Set(0)
	}
}

// Handler serves the collectors in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
