// Package eventmetrics exposes Manager lifecycle activity as Prometheus
// counters, labelled by event type.
package eventmetrics

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"

	events "github.com/hollgate/go-events"
)

// Collector holds the counters fed by a Manager's lifecycle hooks.
type Collector struct {
	listenersAdded   *prometheus.CounterVec
	listenersRemoved *prometheus.CounterVec
	dispatched       *prometheus.CounterVec
}

// New builds a Collector and registers its counters with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		listenersAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "events",
				Subsystem: "manager",
				Name:      "listeners_added_total",
				Help:      "Total number of listeners registered",
			},
			[]string{"event"},
		),
		listenersRemoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "events",
				Subsystem: "manager",
				Name:      "listener_removals_total",
				Help:      "Total number of removal operations, per affected event type",
			},
			[]string{"event"},
		),
		dispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "events",
				Subsystem: "manager",
				Name:      "dispatched_total",
				Help:      "Total number of completed event dispatches",
			},
			[]string{"event"},
		),
	}
	reg.MustRegister(c.listenersAdded, c.listenersRemoved, c.dispatched)
	return c
}

// Attach installs hooks on m that feed the collector's counters.
func (c *Collector) Attach(m *events.Manager) {
	m.OnListenerAdded(func(typ reflect.Type, _ *events.Listener) {
		c.listenersAdded.WithLabelValues(typ.String()).Inc()
	}).OnListenerRemoved(func(typ reflect.Type) {
		c.listenersRemoved.WithLabelValues(typ.String()).Inc()
	}).OnDispatched(func(e events.Event) {
		c.dispatched.WithLabelValues(reflect.TypeOf(e).String()).Inc()
	})
}
