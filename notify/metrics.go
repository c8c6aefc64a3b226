package notify

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

type MetricsNotifier struct {
	events *prometheus.CounterVec
	height prometheus.Gauge
}

func NewMetricsNotifier(registerer prometheus.Registerer) (*MetricsNotifier, error) {
	m := &MetricsNotifier{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vesting",
			Name:      "lifecycle_events_total",
			Help:      "Committed vesting period lifecycle events by kind.",
		}, []string{"kind"}),
		height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vesting",
			Name:      "last_event_height",
			Help:      "Height of the last committed lifecycle event.",
		}),
	}
	for _, c := range []prometheus.Collector{m.events, m.height} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MetricsNotifier) Name() string { return "metrics" }

func (m *MetricsNotifier) Notify(_ context.Context, event Event) error {
	m.events.WithLabelValues(string(event.Kind)).Inc()
	m.height.Set(float64(event.Height))
	return nil
}

// Events exposes the counter, mostly for tests.
func (m *MetricsNotifier) Events() *prometheus.CounterVec {
	return m.events
}
