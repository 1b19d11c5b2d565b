package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/solar"
)

// BoundRadius is the escape radius used by the bound metric, well past
// Neptune's orbit.
const BoundRadius = 50 * solar.AU

// Registry maps metric names to constructors. Per-body metrics receive the
// body name; the others ignore it.
type Registry struct {
	metrics map[string]func(body string) sim.Metric
}

func NewRegistry() *Registry {
	r := &Registry{
		metrics: make(map[string]func(string) sim.Metric),
	}

	r.metrics["energy_drift"] = func(string) sim.Metric { return metrics.NewEnergyDrift() }
	r.metrics["momentum_drift"] = func(string) sim.Metric { return metrics.NewMomentumDrift() }
	r.metrics["bound"] = func(string) sim.Metric { return metrics.NewBound(BoundRadius) }
	r.metrics["perihelion"] = func(body string) sim.Metric { return metrics.NewPerihelion(body) }
	r.metrics["aphelion"] = func(body string) sim.Metric { return metrics.NewAphelion(body) }
	r.metrics["period"] = func(body string) sim.Metric { return metrics.NewPeriod(body) }

	return r
}

func (r *Registry) GetMetric(name, body string) (sim.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(body), nil
}

func (r *Registry) ListMetrics() []string {
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns every registered metric, with the per-body ones
// tracking body.
func (r *Registry) DefaultMetrics(body string) []sim.Metric {
	out := make([]sim.Metric, 0, len(r.metrics))
	for _, name := range r.ListMetrics() {
		out = append(out, r.metrics[name](body))
	}
	return out
}
