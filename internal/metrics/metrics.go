package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"devgate/internal/models"
)

type Metrics struct {
	VerificationsStarted  prometheus.Counter
	VerificationsResolved *prometheus.CounterVec
	PendingVerifications  prometheus.Gauge
	GatewayFailures       *prometheus.CounterVec
	DeletionFailures      prometheus.Counter
	LostResolutions       prometheus.Counter
}

// New registers the collectors with reg. Pass nil to use the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		VerificationsStarted: f.NewCounter(prometheus.CounterOpts{
			Name: "devgate_verifications_started_total",
			Help: "Total number of members challenged after joining",
		}),
		VerificationsResolved: f.NewCounterVec(prometheus.CounterOpts{
			Name: "devgate_verifications_resolved_total",
			Help: "Total number of resolved verifications by outcome",
		}, []string{"outcome"}),
		PendingVerifications: f.NewGauge(prometheus.GaugeOpts{
			Name: "devgate_verifications_pending",
			Help: "Current number of members mid-challenge",
		}),
		GatewayFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "devgate_gateway_failures_total",
			Help: "Failed moderation or messaging calls by action",
		}, []string{"action"}),
		DeletionFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "devgate_cleanup_deletion_failures_total",
			Help: "Messages that could not be deleted during cleanup",
		}),
		LostResolutions: f.NewCounter(prometheus.CounterOpts{
			Name: "devgate_resolution_races_lost_total",
			Help: "Resolution attempts that found the verification already resolved",
		}),
	}
}

func (m *Metrics) IncrementStarted() {
	if m == nil {
		return
	}
	m.VerificationsStarted.Inc()
}

func (m *Metrics) IncrementResolved(outcome models.Outcome) {
	if m == nil {
		return
	}
	m.VerificationsResolved.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) SetPending(count int) {
	if m == nil {
		return
	}
	m.PendingVerifications.Set(float64(count))
}

func (m *Metrics) IncrementGatewayFailure(action string) {
	if m == nil {
		return
	}
	m.GatewayFailures.WithLabelValues(action).Inc()
}

func (m *Metrics) IncrementDeletionFailures() {
	if m == nil {
		return
	}
	m.DeletionFailures.Inc()
}

func (m *Metrics) IncrementLostResolutions() {
	if m == nil {
		return
	}
	m.LostResolutions.Inc()
}
