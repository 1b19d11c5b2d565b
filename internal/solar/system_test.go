package solar

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestSolarSystem(t *testing.T) {
	sys := SolarSystem()

	if sys.Len() != 9 {
		t.Fatalf("expected 9 bodies, got %d", sys.Len())
	}
	if sys.StarIndex() != 0 {
		t.Errorf("expected star at index 0, got %d", sys.StarIndex())
	}
	if sys.Star().Name != "Sun" {
		t.Errorf("expected Sun as reference star, got %s", sys.Star().Name)
	}

	stars := 0
	for _, b := range sys.Bodies() {
		if b.Star {
			stars++
		}
		if len(b.Trail) != 0 {
			t.Errorf("%s: expected empty trail, got %d points", b.Name, len(b.Trail))
		}
	}
	if stars != 1 {
		t.Errorf("expected exactly one star, got %d", stars)
	}

	earth, err := sys.Lookup("Earth")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if earth.Pos.X != -AU || earth.Vel.Y != 29.783*1000 {
		t.Errorf("unexpected earth initial state: pos=%v vel=%v", earth.Pos, earth.Vel)
	}
}

func TestNewSystemValidation(t *testing.T) {
	sun := func() *Body { return NewBody("Sun", r2.Vec{}, 40, Yellow, 2e30).AsStar() }
	planet := func() *Body { return NewBody("P", r2.Vec{X: AU}, 1, Blue, 6e24) }

	tests := []struct {
		name   string
		bodies []*Body
		want   error
	}{
		{"empty", nil, ErrEmptyRegistry},
		{"no star", []*Body{planet()}, ErrNoReferenceStar},
		{"two stars", []*Body{sun(), sun()}, ErrMultipleReferenceStars},
		{"zero mass", []*Body{sun(), NewBody("Dust", r2.Vec{}, 1, White, 0)}, ErrNonPositiveMass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSystem(tt.bodies...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := NewSystem(sun(), planet()); err != nil {
		t.Errorf("expected valid system, got %v", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	sys := SolarSystem()
	if _, err := sys.Lookup("Pluto"); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("expected ErrUnknownBody, got %v", err)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	sys := SolarSystem()
	earth, _ := sys.Lookup("Earth")
	earth.Record()

	snap := sys.Snapshot()
	earth.Pos = r2.Vec{X: 1, Y: 2}
	earth.Record()

	v := snap.Bodies[3]
	if v.Name != "Earth" {
		t.Fatalf("expected Earth at index 3, got %s", v.Name)
	}
	if len(v.Trail) != 1 {
		t.Errorf("expected snapshot trail of 1, got %d", len(v.Trail))
	}
	if v.Pos.X != -AU {
		t.Errorf("snapshot position changed: %v", v.Pos)
	}
}

func TestElapsed(t *testing.T) {
	sys := SolarSystem()
	for i := 0; i < 3; i++ {
		sys.Advance()
	}
	if sys.Tick() != 3 {
		t.Errorf("expected 3 ticks, got %d", sys.Tick())
	}
	if sys.Elapsed() != 3*86400 {
		t.Errorf("expected %d seconds, got %f", 3*86400, sys.Elapsed())
	}
	if d := sys.Snapshot().Days(); d != 3 {
		t.Errorf("expected 3 days, got %f", d)
	}
}
