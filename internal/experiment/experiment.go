package experiment

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/integrators"
	"github.com/san-kum/orrery/internal/physics"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/solar"
)

// Experiment bundles a freshly built solar system with the simulator that
// advances it.
type Experiment struct {
	cfg       *config.Config
	sys       *solar.System
	simulator *sim.Simulator
	logger    *log.Logger
}

// New builds the solar system, force accumulator, integrator and simulator
// described by cfg. Degenerate pairs that are skipped or clamped are
// logged as warnings.
func New(cfg *config.Config, logger *log.Logger) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	order, _ := cfg.Order()
	policy, _ := cfg.Policy()

	sys := solar.SolarSystem()

	acc := physics.NewAccumulator(cfg.Epsilon, policy)
	acc.OnDegenerate = func(err *physics.DegenerateDistanceError) {
		logger.Warn("degenerate pair",
			"a", sys.At(err.I).Name,
			"b", sys.At(err.J).Name,
			"distance", err.Distance,
			"policy", policy)
	}

	integ := integrators.NewEuler(acc, order)
	logger.Debug("experiment ready", "order", order, "policy", policy, "epsilon", cfg.Epsilon)

	return &Experiment{
		cfg:       cfg,
		sys:       sys,
		simulator: sim.New(sys, integ, sim.WithLogger(logger)),
		logger:    logger,
	}, nil
}

// Setup attaches metrics to the simulator.
func (e *Experiment) Setup(metrics []sim.Metric) {
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
}

// Run integrates ticks days headless.
func (e *Experiment) Run(ctx context.Context, ticks int) (*sim.Result, error) {
	res, err := e.simulator.Run(ctx, ticks)
	var derr *physics.DegenerateDistanceError
	if errors.As(err, &derr) {
		e.logger.Error("run aborted",
			"a", e.sys.At(derr.I).Name,
			"b", e.sys.At(derr.J).Name,
			"distance", derr.Distance)
	}
	return res, err
}

// Step advances the system by one tick.
func (e *Experiment) Step() error {
	return e.simulator.Step()
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) System() *solar.System {
	return e.sys
}

func (e *Experiment) Config() *config.Config {
	return e.cfg
}
