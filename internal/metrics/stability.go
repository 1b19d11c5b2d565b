package metrics

import "github.com/san-kum/orrery/internal/solar"

// Bound is the fraction of observations in which every body stayed within
// radius meters of the reference star.
type Bound struct {
	name       string
	radius     float64
	violations int
	samples    int
}

func NewBound(radius float64) *Bound {
	return &Bound{
		name:   "bound",
		radius: radius,
	}
}

func (b *Bound) Name() string {
	return b.name
}

func (b *Bound) Observe(sys *solar.System) {
	b.samples++
	star := sys.Star()
	for _, body := range sys.Bodies() {
		if body == star {
			continue
		}
		if body.DistanceToStar > b.radius {
			b.violations++
			break
		}
	}
}

func (b *Bound) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Bound) Reset() {
	b.violations = 0
	b.samples = 0
}
