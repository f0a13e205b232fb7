package client

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts pipeline outcomes. A nil *Metrics records nothing.
type Metrics struct {
	requests     *prometheus.CounterVec
	refreshes    *prometheus.CounterVec
	terminations prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg when reg is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lightgallery",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Calls through the request pipeline by final state.",
		}, []string{"outcome"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lightgallery",
			Subsystem: "client",
			Name:      "refresh_total",
			Help:      "Token refresh calls issued, by result.",
		}, []string{"result"}),
		terminations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lightgallery",
			Subsystem: "client",
			Name:      "session_terminations_total",
			Help:      "Sessions cleared after an unrecoverable authorization failure.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.refreshes, m.terminations)
	}
	return m
}

func (m *Metrics) request(final State) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(final.String()).Inc()
}

func (m *Metrics) refresh(ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.refreshes.WithLabelValues(result).Inc()
}

func (m *Metrics) terminated() {
	if m == nil {
		return
	}
	m.terminations.Inc()
}
