package sim

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/solar"
)

type Simulator struct {
	sys       *solar.System
	stepper   Stepper
	metrics   []Metric
	observers []Observer
	logger    *log.Logger
}

type Option func(*Simulator)

// WithLogger sets the logger used for tick diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

func New(sys *solar.System, stepper Stepper, opts ...Option) *Simulator {
	s := &Simulator{
		sys:       sys,
		stepper:   stepper,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) System() *solar.System { return s.sys }

// Step runs one tick and notifies metrics and observers.
func (s *Simulator) Step() error {
	tick := s.sys.Tick() + 1
	if err := s.stepper.Step(s.sys); err != nil {
		s.logger.Error("tick failed", "tick", tick, "err", err)
		return &TickError{Tick: tick, Err: err}
	}

	for _, m := range s.metrics {
		m.Observe(s.sys)
	}
	for _, o := range s.observers {
		o.OnTick(s.sys)
	}

	s.logger.Debug("tick", "tick", s.sys.Tick(), "days", s.sys.Elapsed()/86400)
	return nil
}

// Run resets metrics, observes the starting state and then runs ticks
// ticks, stopping early on a stepping error or context cancellation.
func (s *Simulator) Run(ctx context.Context, ticks int) (*Result, error) {
	if err := CheckTicks(ticks); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
		m.Observe(s.sys)
	}

	start := s.sys.Tick()
	s.logger.Info("run started", "ticks", ticks, "bodies", s.sys.Len())

	var runErr error
	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
			runErr = s.Step()
		}
		if runErr != nil {
			break
		}
	}

	result := &Result{
		Ticks:   s.sys.Tick() - start,
		Elapsed: s.sys.Elapsed(),
		Metrics: make(map[string]float64, len(s.metrics)),
		Final:   s.sys.Snapshot(),
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	if runErr != nil {
		return result, runErr
	}
	s.logger.Info("run finished", "ticks", result.Ticks, "days", result.Elapsed/86400)
	return result, nil
}
