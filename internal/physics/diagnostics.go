package physics

import (
	"math"

	"github.com/san-kum/orrery/internal/solar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Energy returns total kinetic plus gravitational potential energy in joules.
// Coincident pairs contribute no potential.
func Energy(bodies []*solar.Body) float64 {
	ke, pe := 0.0, 0.0

	for i, b := range bodies {
		ke += 0.5 * b.Mass * r2.Norm2(b.Vel)

		for j := i + 1; j < len(bodies); j++ {
			r := r2.Norm(r2.Sub(bodies[j].Pos, b.Pos))
			if r == 0 {
				continue
			}
			pe -= solar.G * b.Mass * bodies[j].Mass / r
		}
	}

	return ke + pe
}

// Momentum returns total linear momentum.
func Momentum(bodies []*solar.Body) r2.Vec {
	var p r2.Vec
	for _, b := range bodies {
		p = r2.Add(p, r2.Scale(b.Mass, b.Vel))
	}
	return p
}

// AngularMomentum returns total angular momentum about the origin.
func AngularMomentum(bodies []*solar.Body) float64 {
	L := 0.0
	for _, b := range bodies {
		L += b.Mass * r2.Cross(b.Pos, b.Vel)
	}
	return L
}

// RelativeDrift is |now-initial|/|initial|, or 0 when initial is 0.
func RelativeDrift(initial, now float64) float64 {
	if initial == 0 {
		return 0
	}
	return math.Abs(now-initial) / math.Abs(initial)
}
