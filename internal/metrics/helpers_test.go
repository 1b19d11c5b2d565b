package metrics

import (
	"github.com/san-kum/orrery/internal/integrators"
	"github.com/san-kum/orrery/internal/physics"
)

func newEuler() *integrators.Euler {
	return integrators.NewEuler(physics.NewAccumulator(physics.DefaultEpsilon, physics.PolicyAbort), integrators.Simultaneous)
}
