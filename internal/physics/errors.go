package physics

import (
	"errors"
	"fmt"
)

// ErrDegenerateDistance indicates two bodies closer than the accumulator's
// epsilon, where the inverse-square force diverges.
var ErrDegenerateDistance = errors.New("physics: degenerate distance between bodies")

// ErrUnknownPolicy indicates an unrecognized distance policy name.
var ErrUnknownPolicy = errors.New("physics: unknown distance policy")

// DegenerateDistanceError reports which pair coincided.
type DegenerateDistanceError struct {
	I, J     int
	Distance float64
}

func (e *DegenerateDistanceError) Error() string {
	return fmt.Sprintf("%v: bodies %d and %d are %.3g m apart", ErrDegenerateDistance, e.I, e.J, e.Distance)
}

func (e *DegenerateDistanceError) Unwrap() error {
	return ErrDegenerateDistance
}
