package solar

import "fmt"

// System is the ordered body registry.
type System struct {
	bodies []*Body
	star   int
	tick   int
}

// NewSystem validates bodies and returns a registry over them.
// Exactly one body must be the reference star and every mass must be positive.
func NewSystem(bodies ...*Body) (*System, error) {
	if len(bodies) == 0 {
		return nil, ErrEmptyRegistry
	}

	star := -1
	for i, b := range bodies {
		if b.Mass <= 0 {
			return nil, fmt.Errorf("%w: %s has mass %g", ErrNonPositiveMass, b.Name, b.Mass)
		}
		if !b.Star {
			continue
		}
		if star >= 0 {
			return nil, fmt.Errorf("%w: %s and %s", ErrMultipleReferenceStars, bodies[star].Name, b.Name)
		}
		star = i
	}
	if star < 0 {
		return nil, ErrNoReferenceStar
	}

	return &System{bodies: bodies, star: star}, nil
}

// Bodies returns the registry in iteration order. The slice is shared.
func (s *System) Bodies() []*Body { return s.bodies }

func (s *System) Len() int { return len(s.bodies) }

func (s *System) At(i int) *Body { return s.bodies[i] }

// StarIndex returns the index of the reference star.
func (s *System) StarIndex() int { return s.star }

// Star returns the reference star.
func (s *System) Star() *Body { return s.bodies[s.star] }

// Lookup finds a body by name.
func (s *System) Lookup(name string) (*Body, error) {
	for _, b := range s.bodies {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBody, name)
}

// Names returns body names in registry order.
func (s *System) Names() []string {
	names := make([]string, len(s.bodies))
	for i, b := range s.bodies {
		names[i] = b.Name
	}
	return names
}

// Advance marks one tick as completed.
func (s *System) Advance() { s.tick++ }

// Tick returns the number of completed ticks.
func (s *System) Tick() int { return s.tick }

// Elapsed returns simulated time in seconds.
func (s *System) Elapsed() float64 { return float64(s.tick) * Timestep }

// Snapshot copies the renderer-facing state of every body.
func (s *System) Snapshot() Snapshot {
	views := make([]View, len(s.bodies))
	for i, b := range s.bodies {
		views[i] = b.view()
	}
	return Snapshot{Tick: s.tick, Bodies: views}
}

// Snapshot is the registry state handed to renderers.
type Snapshot struct {
	Tick   int
	Bodies []View
}

// Days returns simulated time in days.
func (s Snapshot) Days() float64 { return float64(s.Tick) * Timestep / 86400 }
