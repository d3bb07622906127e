package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestResolverMetricsRecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewResolverMetrics(reg)

	m.ObserveStage("billboard", "primary", OutcomeFail)
	m.ObserveStage("billboard", "mirror", OutcomeHit)
	m.ObserveStage("billboard", "mirror", OutcomeHit)
	m.ObserveDuration("billboard", 120*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	if got := counterValue(families, "catalog_resolver_stage_outcomes_total", map[string]string{
		"entity": "billboard", "stage": "mirror", "outcome": OutcomeHit,
	}); got != 2 {
		t.Fatalf("expected 2 mirror hits, got %v", got)
	}
	if got := counterValue(families, "catalog_resolver_stage_outcomes_total", map[string]string{
		"entity": "billboard", "stage": "primary", "outcome": OutcomeFail,
	}); got != 1 {
		t.Fatalf("expected 1 primary fail, got %v", got)
	}
}

func TestResolverMetricsNilSafe(t *testing.T) {
	var m *ResolverMetrics
	m.ObserveStage("products", "primary", OutcomeHit)
	m.ObserveDuration("products", time.Second)

	unregistered := NewResolverMetrics(nil)
	unregistered.ObserveStage("products", "primary", OutcomeHit)
}

func counterValue(families []*dto.MetricFamily, name string, labels map[string]string) float64 {
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			matched := true
			for _, pair := range metric.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
					matched = false
					break
				}
			}
			if matched {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return -1
}
