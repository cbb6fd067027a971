package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	stageEncode  = "encode"
	stagePublish = "publish"
	stageRoute   = "route"
)

// Metrics holds the bridge's Prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	published     *prometheus.CounterVec
	publishErrors *prometheus.CounterVec
	dropped       prometheus.Counter
	selected      *prometheus.CounterVec
}

// NewMetrics registers the collectors with registry, or with
// prometheus.DefaultRegisterer when registry is nil.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		published: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geyser_messages_published_total",
				Help: "Messages acknowledged by the broker, by exchange",
			},
			[]string{"exchange"},
		),
		publishErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geyser_publish_errors_total",
				Help: "Messages that failed to encode or publish, by exchange and stage",
			},
			[]string{"exchange", "stage"},
		),
		dropped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "geyser_dispatch_dropped_total",
				Help: "Dispatch units dropped because the worker pool was saturated",
			},
		),
		selected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geyser_notifications_selected_total",
				Help: "Host notifications that passed the selectors, by kind",
			},
			[]string{"kind"},
		),
	}
}

func (m *Metrics) RecordPublished(exchange string) {
	if m == nil {
		return
	}
	m.published.WithLabelValues(exchange).Inc()
}

func (m *Metrics) RecordPublishError(exchange, stage string) {
	if m == nil {
		return
	}
	m.publishErrors.WithLabelValues(exchange, stage).Inc()
}

func (m *Metrics) RecordDropped() {
	if m == nil {
		return
	}
	m.dropped.Inc()
}

func (m *Metrics) RecordSelected(kind string) {
	if m == nil {
		return
	}
	m.selected.WithLabelValues(kind).Inc()
}
