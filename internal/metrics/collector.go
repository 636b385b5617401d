// Package metrics records multiplication statistics and runtime memory
// readings for the bigcalc command.
package metrics

import (
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/agbru/bigcalc/internal/biguint"
)

const namespace = "bigcalc"

// Collector implements biguint.Observer on a private Prometheus registry.
// It is safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	limbs    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mul",
			Name:      "calls_total",
			Help:      "Number of top-level multiplications, by strategy.",
		}, []string{"strategy"}),
		limbs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mul",
			Name:      "operand_limbs_total",
			Help:      "Sum of operand limb counts, by strategy.",
		}, []string{"strategy"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "mul",
			Name:      "duration_seconds",
			Help:      "Wall time of top-level multiplications, by strategy.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"strategy"}),
	}
	c.registry.MustRegister(c.calls, c.limbs, c.duration)
	return c
}

// ObserveMul records one multiplication.
func (c *Collector) ObserveMul(strategy biguint.Strategy, limbs int, elapsed time.Duration) {
	label := strategy.String()
	c.calls.WithLabelValues(label).Inc()
	c.limbs.WithLabelValues(label).Add(float64(limbs))
	c.duration.WithLabelValues(label).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry, e.g. for an exporter.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// StrategySummary aggregates the observations of one strategy.
type StrategySummary struct {
	Strategy string
	Calls    uint64
	Limbs    uint64
	Total    time.Duration
}

// Summary gathers the registry and returns one entry per strategy that has
// been observed, sorted by strategy name.
func (c *Collector) Summary() ([]StrategySummary, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	byName := map[string]*StrategySummary{}
	entry := func(m *dto.Metric) *StrategySummary {
		name := strategyLabel(m)
		s, ok := byName[name]
		if !ok {
			s = &StrategySummary{Strategy: name}
			byName[name] = s
		}
		return s
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetName() {
			case namespace + "_mul_calls_total":
				entry(m).Calls = uint64(m.GetCounter().GetValue())
			case namespace + "_mul_operand_limbs_total":
				entry(m).Limbs = uint64(m.GetCounter().GetValue())
			case namespace + "_mul_duration_seconds":
				entry(m).Total = time.Duration(m.GetHistogram().GetSampleSum() * float64(time.Second))
			}
		}
	}
	out := make([]StrategySummary, 0, len(byName))
	for _, s := range byName {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Strategy < out[j].Strategy })
	return out, nil
}

func strategyLabel(m *dto.Metric) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == "strategy" {
			return lp.GetValue()
		}
	}
	return ""
}
