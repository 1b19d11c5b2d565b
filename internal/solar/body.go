package solar

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// AU is the astronomical unit in meters.
	AU = 149.6e6 * 1000
	// G is the universal gravitational constant (SI).
	G = 6.67428e-11
	// Timestep is the fixed macro step of one tick: one day in seconds.
	Timestep = 3600 * 24
	// ScalePerAU is how many screen units one AU spans at zoom 1.
	ScalePerAU = 250.0
	// Scale converts meters to screen units at zoom 1.
	Scale = ScalePerAU / AU
)

// Body is one celestial object.
//
// Name, Mass, Radius, Color and Star are fixed after construction.
// Pos and Vel are advanced every tick; DistanceToStar and Trail are
// derived from them.
type Body struct {
	Name   string
	Mass   float64
	Radius float64
	Color  color.RGBA
	Star   bool

	Pos r2.Vec
	Vel r2.Vec

	DistanceToStar float64
	Trail          []r2.Vec
}

// NewBody creates a body at rest at pos.
func NewBody(name string, pos r2.Vec, radius float64, c color.RGBA, mass float64) *Body {
	return &Body{
		Name:   name,
		Mass:   mass,
		Radius: radius,
		Color:  c,
		Pos:    pos,
	}
}

// WithVelocity sets the initial velocity and returns the body.
func (b *Body) WithVelocity(vel r2.Vec) *Body {
	b.Vel = vel
	return b
}

// AsStar flags the body as the reference star and returns it.
func (b *Body) AsStar() *Body {
	b.Star = true
	return b
}

// Record appends the current position to the trail.
func (b *Body) Record() {
	b.Trail = append(b.Trail, b.Pos)
}

// View is a renderer-facing copy of a body's state.
type View struct {
	Name           string
	Radius         float64
	Color          color.RGBA
	Star           bool
	Pos            r2.Vec
	Vel            r2.Vec
	DistanceToStar float64
	Trail          []r2.Vec
}

func (b *Body) view() View {
	// Capacity is capped so a later append never writes into this view.
	return View{
		Name:           b.Name,
		Radius:         b.Radius,
		Color:          b.Color,
		Star:           b.Star,
		Pos:            b.Pos,
		Vel:            b.Vel,
		DistanceToStar: b.DistanceToStar,
		Trail:          b.Trail[:len(b.Trail):len(b.Trail)],
	}
}
