// Package metrics exposes Prometheus counters for calls to the external collaborators.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK       = "ok"
	OutcomeFailed   = "failed"
	OutcomeFallback = "fallback"
)

// Metrics groups the collaborator counters. A nil *Metrics records nothing.
type Metrics struct {
	remoteSync *prometheus.CounterVec
	assistant  *prometheus.CounterVec
	sessions   *prometheus.CounterVec
}

// New registers the counters with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		remoteSync: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weddingplanner",
			Name:      "remote_sync_total",
			Help:      "Background sync calls to the persistence API by action and outcome.",
		}, []string{"action", "outcome"}),
		assistant: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weddingplanner",
			Name:      "assistant_requests_total",
			Help:      "Text generation requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		sessions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weddingplanner",
			Name:      "sessions_total",
			Help:      "Event sessions started or ended.",
		}, []string{"event"}),
	}
}

func (m *Metrics) RemoteSync(action, outcome string) {
	if m == nil {
		return
	}
	m.remoteSync.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) Assistant(operation, outcome string) {
	if m == nil {
		return
	}
	m.assistant.WithLabelValues(operation, outcome).Inc()
}

// Session counts session lifecycle events such as "create", "join" and "logout".
func (m *Metrics) Session(event string) {
	if m == nil {
		return
	}
	m.sessions.WithLabelValues(event).Inc()
}
