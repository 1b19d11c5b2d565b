package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/orrery/internal/solar"
	"gonum.org/v1/gonum/spatial/r2"
)

type driftStepper struct {
	failAt int
}

var errBoom = errors.New("boom")

func (d *driftStepper) Step(sys *solar.System) error {
	if d.failAt > 0 && sys.Tick()+1 == d.failAt {
		return errBoom
	}
	for _, b := range sys.Bodies() {
		b.Pos = r2.Add(b.Pos, r2.Vec{X: 1})
		b.Record()
	}
	sys.Advance()
	return nil
}

type countMetric struct {
	count int
}

func (c *countMetric) Name() string { return "count" }

func (c *countMetric) Observe(*solar.System) { c.count++ }

func (c *countMetric) Value() float64 { return float64(c.count) }

func (c *countMetric) Reset() { c.count = 0 }

func TestSimulatorRun(t *testing.T) {
	sys := solar.SolarSystem()
	s := New(sys, &driftStepper{})

	metric := &countMetric{}
	s.AddMetric(metric)

	ticks := 0
	s.AddObserver(ObserverFunc(func(*solar.System) { ticks++ }))

	result, err := s.Run(context.Background(), 10)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Ticks != 10 {
		t.Errorf("expected 10 ticks, got %d", result.Ticks)
	}
	if ticks != 10 {
		t.Errorf("expected 10 observer calls, got %d", ticks)
	}
	if result.Metrics["count"] != 11 {
		t.Errorf("expected 11 observations (initial + 10), got %f", result.Metrics["count"])
	}
	if result.Elapsed != 10*solar.Timestep {
		t.Errorf("expected %d seconds, got %f", 10*solar.Timestep, result.Elapsed)
	}
	if len(result.Final.Bodies[0].Trail) != 10 {
		t.Errorf("expected trail of 10, got %d", len(result.Final.Bodies[0].Trail))
	}
}

func TestSimulatorInvalidTicks(t *testing.T) {
	s := New(solar.SolarSystem(), &driftStepper{})

	for _, n := range []int{0, -1} {
		if _, err := s.Run(context.Background(), n); !errors.Is(err, ErrInvalidTicks) {
			t.Errorf("ticks=%d: expected ErrInvalidTicks, got %v", n, err)
		}
	}
}

func TestCheckTicks(t *testing.T) {
	for _, n := range []int{0, -1, -365} {
		if err := CheckTicks(n); !errors.Is(err, ErrInvalidTicks) {
			t.Errorf("ticks=%d: expected ErrInvalidTicks, got %v", n, err)
		}
	}
	if err := CheckTicks(1); err != nil {
		t.Errorf("ticks=1: unexpected error %v", err)
	}
}

func TestSimulatorTickError(t *testing.T) {
	s := New(solar.SolarSystem(), &driftStepper{failAt: 4})

	result, err := s.Run(context.Background(), 10)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}

	var tickErr *TickError
	if !errors.As(err, &tickErr) {
		t.Fatalf("expected *TickError, got %T", err)
	}
	if tickErr.Tick != 4 {
		t.Errorf("expected failure on tick 4, got %d", tickErr.Tick)
	}
	if result.Ticks != 3 {
		t.Errorf("expected 3 completed ticks, got %d", result.Ticks)
	}
}

func TestSimulatorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(solar.SolarSystem(), &driftStepper{})
	result, err := s.Run(ctx, 5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result.Ticks != 0 {
		t.Errorf("expected no ticks, got %d", result.Ticks)
	}
}
