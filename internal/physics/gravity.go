package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/orrery/internal/solar"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultEpsilon is the distance in meters below which a pair is degenerate.
const DefaultEpsilon = 1.0

// DistancePolicy decides how a degenerate pair is handled.
type DistancePolicy int

const (
	// PolicySkip drops the pair's contribution.
	PolicySkip DistancePolicy = iota
	// PolicyClamp evaluates the pair at epsilon distance.
	PolicyClamp
	// PolicyAbort fails the force computation.
	PolicyAbort
)

func (p DistancePolicy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyClamp:
		return "clamp"
	case PolicyAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// ParsePolicy parses "skip", "clamp" or "abort".
func ParsePolicy(s string) (DistancePolicy, error) {
	switch s {
	case "skip", "":
		return PolicySkip, nil
	case "clamp":
		return PolicyClamp, nil
	case "abort":
		return PolicyAbort, nil
	default:
		return PolicySkip, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Accumulator sums pairwise gravitational forces.
type Accumulator struct {
	Epsilon float64
	Policy  DistancePolicy

	// OnDegenerate is called for every pair that was skipped or clamped.
	OnDegenerate func(err *DegenerateDistanceError)
}

func NewAccumulator(epsilon float64, policy DistancePolicy) *Accumulator {
	return &Accumulator{Epsilon: epsilon, Policy: policy}
}

// Attraction returns the force o exerts on b and their distance. It does
// not guard against coincident bodies.
func Attraction(b, o *solar.Body) (r2.Vec, float64) {
	d := r2.Sub(o.Pos, b.Pos)
	dist := r2.Norm(d)
	return pairForce(b.Mass, o.Mass, d, dist), dist
}

func pairForce(m1, m2 float64, d r2.Vec, dist float64) r2.Vec {
	f := solar.G * m1 * m2 / (dist * dist)
	theta := math.Atan2(d.Y, d.X)
	return r2.Vec{X: math.Cos(theta) * f, Y: math.Sin(theta) * f}
}

// NetForce returns the net force on bodies[i] from every other body.
// As a side effect it records bodies[i].DistanceToStar when the reference
// star is among the others, even if a later pair aborts.
func (a *Accumulator) NetForce(bodies []*solar.Body, i int) (r2.Vec, error) {
	f, star, err := a.netForce(bodies, i)
	if star.ok {
		bodies[i].DistanceToStar = star.dist
	}
	return f, err
}

// Forces computes the net force on every body against the current
// positions, before any of them moves. Distances to the star are written
// only once every force has succeeded, so an abort leaves the bodies as
// they were.
func (a *Accumulator) Forces(bodies []*solar.Body) ([]r2.Vec, error) {
	forces := make([]r2.Vec, len(bodies))
	stars := make([]starDistance, len(bodies))
	for i := range bodies {
		f, star, err := a.netForce(bodies, i)
		if err != nil {
			return nil, err
		}
		forces[i] = f
		stars[i] = star
	}
	for i, star := range stars {
		if star.ok {
			bodies[i].DistanceToStar = star.dist
		}
	}
	return forces, nil
}

type starDistance struct {
	dist float64
	ok   bool
}

func (a *Accumulator) netForce(bodies []*solar.Body, i int) (r2.Vec, starDistance, error) {
	b := bodies[i]
	var total r2.Vec
	var star starDistance

	for j, o := range bodies {
		if j == i {
			continue
		}

		d := r2.Sub(o.Pos, b.Pos)
		dist := r2.Norm(d)
		if o.Star {
			star = starDistance{dist: dist, ok: true}
		}

		if dist <= 0 || dist < a.Epsilon {
			derr := &DegenerateDistanceError{I: i, J: j, Distance: dist}
			switch a.Policy {
			case PolicyAbort:
				return r2.Vec{}, star, derr
			case PolicyClamp:
				a.report(derr)
				dist = math.Max(a.Epsilon, math.SmallestNonzeroFloat64)
			default:
				a.report(derr)
				continue
			}
		}

		total = r2.Add(total, pairForce(b.Mass, o.Mass, d, dist))
	}

	return total, star, nil
}

func (a *Accumulator) report(err *DegenerateDistanceError) {
	if a.OnDegenerate != nil {
		a.OnDegenerate(err)
	}
}
