package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/orrery/internal/solar"
)

// Stepper advances a registry by one tick.
type Stepper interface {
	Step(sys *solar.System) error
}

// Metric accumulates a scalar over the ticks of a run.
type Metric interface {
	Name() string
	Observe(sys *solar.System)
	Value() float64
	Reset()
}

// Observer is notified after every completed tick.
type Observer interface {
	OnTick(sys *solar.System)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(sys *solar.System)

func (f ObserverFunc) OnTick(sys *solar.System) { f(sys) }

// ErrInvalidTicks indicates a non-positive tick count for Run.
var ErrInvalidTicks = errors.New("sim: tick count must be positive")

// CheckTicks reports whether ticks is a usable count for Run.
func CheckTicks(ticks int) error {
	if ticks <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidTicks, ticks)
	}
	return nil
}

// TickError wraps a stepping failure with the tick it happened on.
type TickError struct {
	Tick int
	Err  error
}

func (e *TickError) Error() string {
	return fmt.Sprintf("tick %d: %v", e.Tick, e.Err)
}

func (e *TickError) Unwrap() error {
	return e.Err
}

type Result struct {
	Ticks   int
	Elapsed float64
	Metrics map[string]float64
	Final   solar.Snapshot
}
