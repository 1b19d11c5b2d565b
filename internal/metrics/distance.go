package metrics

import (
	"math"

	"github.com/san-kum/orrery/internal/analysis"
	"github.com/san-kum/orrery/internal/solar"
)

// Apsis records the closest or farthest distance-to-star of one body.
type Apsis struct {
	name     string
	body     string
	farthest bool
	value    float64
	seen     bool
}

// NewPerihelion tracks the closest approach of the named body.
func NewPerihelion(body string) *Apsis {
	return &Apsis{name: "perihelion_" + body, body: body}
}

// NewAphelion tracks the farthest excursion of the named body.
func NewAphelion(body string) *Apsis {
	return &Apsis{name: "aphelion_" + body, body: body, farthest: true}
}

func (a *Apsis) Name() string { return a.name }

func (a *Apsis) Observe(sys *solar.System) {
	b, err := sys.Lookup(a.body)
	if err != nil || b.DistanceToStar == 0 {
		return
	}
	d := b.DistanceToStar
	switch {
	case !a.seen:
		a.value = d
	case a.farthest:
		a.value = math.Max(a.value, d)
	default:
		a.value = math.Min(a.value, d)
	}
	a.seen = true
}

// Value returns the apsis distance in meters, or 0 before any observation.
func (a *Apsis) Value() float64 { return a.value }

func (a *Apsis) Reset() {
	a.value = 0
	a.seen = false
}

// Period estimates the orbital period of one body, in days, from the
// dominant oscillation of its distance to the star.
type Period struct {
	name    string
	body    string
	samples []float64
}

func NewPeriod(body string) *Period {
	return &Period{name: "period_" + body, body: body}
}

func (p *Period) Name() string { return p.name }

func (p *Period) Observe(sys *solar.System) {
	b, err := sys.Lookup(p.body)
	if err != nil || b.DistanceToStar == 0 {
		return
	}
	p.samples = append(p.samples, b.DistanceToStar)
}

func (p *Period) Value() float64 {
	return analysis.DominantPeriod(p.samples, solar.Timestep/86400)
}

func (p *Period) Reset() { p.samples = p.samples[:0] }
