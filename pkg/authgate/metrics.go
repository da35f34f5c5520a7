package authgate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const outcomeAuthenticated = "authenticated"

type metrics struct {
	decisions   *prometheus.CounterVec
	configFails prometheus.Counter
}

// newMetrics registers the gate counters on reg. A nil reg yields counters
// that work but are not exported.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brewauth",
			Subsystem: "authgate",
			Name:      "decisions_total",
			Help:      "Authentication decisions by outcome.",
		}, []string{"outcome"}),
		configFails: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "brewauth",
			Subsystem: "authgate",
			Name:      "configuration_errors_total",
			Help:      "Requests refused because no signing secret is configured.",
		}),
	}
}

func (m *metrics) observe(res Result) {
	if res.Kind == KindNone {
		m.decisions.WithLabelValues(outcomeAuthenticated).Inc()
		return
	}
	m.decisions.WithLabelValues(string(res.Kind)).Inc()
	if res.Kind == KindConfiguration {
		m.configFails.Inc()
	}
}
