package integrators

import (
	"errors"
	"fmt"

	"github.com/san-kum/orrery/internal/physics"
	"github.com/san-kum/orrery/internal/solar"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrUnknownOrder indicates an unrecognized update order name.
var ErrUnknownOrder = errors.New("integrators: unknown update order")

// UpdateOrder selects which positions the force pass sees.
type UpdateOrder int

const (
	// Simultaneous computes every force against the pre-tick positions,
	// then advances all bodies.
	Simultaneous UpdateOrder = iota
	// Sequential advances each body right after its own force pass, so later
	// bodies see the already-moved earlier ones.
	Sequential
)

func (o UpdateOrder) String() string {
	switch o {
	case Simultaneous:
		return "simultaneous"
	case Sequential:
		return "sequential"
	default:
		return "unknown"
	}
}

// ParseUpdateOrder parses "simultaneous" or "sequential".
func ParseUpdateOrder(s string) (UpdateOrder, error) {
	switch s {
	case "simultaneous", "":
		return Simultaneous, nil
	case "sequential":
		return Sequential, nil
	default:
		return Simultaneous, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

// Euler is an explicit Euler stepper with a fixed macro time-step.
type Euler struct {
	Dt    float64
	Order UpdateOrder
	acc   *physics.Accumulator
}

func NewEuler(acc *physics.Accumulator, order UpdateOrder) *Euler {
	return &Euler{Dt: solar.Timestep, Order: order, acc: acc}
}

// Step advances every body of sys by one tick and appends the new
// positions to their trails.
//
// With Simultaneous order a failed force pass leaves sys untouched. With
// Sequential order the bodies before the failing one have already moved.
func (e *Euler) Step(sys *solar.System) error {
	bodies := sys.Bodies()

	if e.Order == Sequential {
		for i, b := range bodies {
			f, err := e.acc.NetForce(bodies, i)
			if err != nil {
				return err
			}
			e.advance(b, f)
		}
		sys.Advance()
		return nil
	}

	forces, err := e.acc.Forces(bodies)
	if err != nil {
		return err
	}
	for i, b := range bodies {
		e.advance(b, forces[i])
	}
	sys.Advance()
	return nil
}

func (e *Euler) advance(b *solar.Body, f r2.Vec) {
	b.Vel.X += f.X / b.Mass * e.Dt
	b.Vel.Y += f.Y / b.Mass * e.Dt

	b.Pos.X += b.Vel.X * e.Dt
	b.Pos.Y += b.Vel.Y * e.Dt

	b.Record()
}
