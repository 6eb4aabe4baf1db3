package lexactivator

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	calls          *prometheus.CounterVec
	events         *prometheus.CounterVec
	listenerPanics prometheus.Counter
}

func newMetrics() *metrics {
	return &metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lexactivator",
			Name:      "engine_calls_total",
			Help:      "Engine calls by function and classified result kind.",
		}, []string{"function", "kind"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lexactivator",
			Name:      "license_events_total",
			Help:      "Engine-initiated license events by classified kind.",
		}, []string{"kind"}),
		listenerPanics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lexactivator",
			Name:      "listener_panics_total",
			Help:      "License listener panics recovered by the callback bridge.",
		}),
	}
}

// register adds the collectors to reg. When another client already
// registered them, the existing collectors are reused so counts accumulate.
func (m *metrics) register(reg prometheus.Registerer) error {
	var err error
	if m.calls, err = registerOrReuse(reg, m.calls); err != nil {
		return err
	}
	if m.events, err = registerOrReuse(reg, m.events); err != nil {
		return err
	}
	m.listenerPanics, err = registerOrReuse(reg, m.listenerPanics)
	return err
}

func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// kindOf labels a classified code for metrics.
func kindOf(code Code) string {
	switch v := code.(type) {
	case Status:
		if v == StatusOK {
			return "ok"
		}
		return "status"
	default:
		return "error"
	}
}
