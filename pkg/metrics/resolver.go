package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stage outcome labels recorded per resolver attempt.
const (
	OutcomeHit  = "hit"
	OutcomeMiss = "miss"
	OutcomeFail = "fail"
)

// ResolverMetrics records how often each catalog entity family falls through
// the primary/mirror/default chain.
type ResolverMetrics struct {
	outcomes *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewResolverMetrics registers the resolver metrics on the provided registerer.
func NewResolverMetrics(reg prometheus.Registerer) *ResolverMetrics {
	if reg == nil {
		return &ResolverMetrics{}
	}
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_resolver_stage_outcomes_total",
		Help: "Resolver stage attempts by entity family, stage, and outcome.",
	}, []string{"entity", "stage", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_resolver_duration_seconds",
		Help:    "Duration of full resolver chains in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"entity"})
	reg.MustRegister(outcomes, duration)
	return &ResolverMetrics{outcomes: outcomes, duration: duration}
}

// ObserveStage records the outcome for one stage attempt.
func (m *ResolverMetrics) ObserveStage(entity, stage, outcome string) {
	if m == nil || m.outcomes == nil {
		return
	}
	m.outcomes.WithLabelValues(normalizeLabel(entity), normalizeLabel(stage), normalizeLabel(outcome)).Inc()
}

// ObserveDuration records the total chain duration for the entity family.
func (m *ResolverMetrics) ObserveDuration(entity string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(entity)).Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
