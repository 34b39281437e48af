package component

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	components *prometheus.CounterVec
	failures   prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		components: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nncomponent",
			Name:      "components_created_total",
			Help:      "Components returned by the factory, by kind.",
		}, []string{"kind"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nncomponent",
			Name:      "dispatch_failures_total",
			Help:      "Schemas that matched no registered component kind.",
		}),
	}
	if reg != nil {
		m.components = register(reg, m.components)
		m.failures = register(reg, m.failures)
	}
	return m
}

// register returns the already registered collector when an identical one
// exists, so several factories can share a registry.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

func (m *metrics) created(kind Kind) {
	if m == nil {
		return
	}
	m.components.WithLabelValues(string(kind)).Inc()
}

func (m *metrics) failed() {
	if m == nil {
		return
	}
	m.failures.Inc()
}
