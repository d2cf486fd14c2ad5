package sim

import (
	"math"
	"testing"

	"prowl/geom"
)

func TestAgentSetShape(t *testing.T) {
	for n := MinHunters; n <= MaxHunters; n++ {
		p := DefaultParams()
		p.Hunters = n
		p.Seed = 1
		w := New(p)
		if got := len(w.Hunters()); got != n {
			t.Fatalf("len(Hunters()) = %d, want %d", got, n)
		}
		if got := w.Prey().Role; got != Prey {
			t.Fatalf("Prey().Role = %v, want prey", got)
		}
		for i, h := range w.Hunters() {
			if h.Role != Hunter {
				t.Fatalf("Hunters()[%d].Role = %v, want hunter", i, h.Role)
			}
		}
	}
}

func TestHunterCountClamped(t *testing.T) {
	p := DefaultParams()
	p.Seed = 1

	p.Hunters = 0
	if got := len(New(p).Hunters()); got != MinHunters {
		t.Fatalf("len(Hunters()) = %d, want %d", got, MinHunters)
	}
	p.Hunters = 99
	if got := len(New(p).Hunters()); got != MaxHunters {
		t.Fatalf("len(Hunters()) = %d, want %d", got, MaxHunters)
	}
}

func TestSetHuntersRespawns(t *testing.T) {
	p := DefaultParams()
	p.Seed = 7
	w := New(p)
	for i := 0; i < 50; i++ {
		w.Step()
	}
	w.SetHunters(5)
	if got := len(w.Hunters()); got != 5 {
		t.Fatalf("len(Hunters()) = %d, want 5", got)
	}
	if w.Tick() != 0 {
		t.Fatalf("Tick() = %d after SetHunters, want 0", w.Tick())
	}
	if w.Done() {
		t.Fatalf("Done() = true after SetHunters, want false")
	}
}

func TestDoneIffWithinSafeDistance(t *testing.T) {
	p := DefaultParams()
	p.Hunters = 1
	p.SafeDistance = 1
	p.Seed = 1

	// Far apart: one tick closes the gap by well under the margin.
	w := New(p)
	if err := w.Place(geom.Vec{}, geom.Vec{X: 5}); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if done := w.Step(); done {
		t.Fatalf("Step() done = true at distance 5, want false")
	}
	if w.NearestHunterDistance() > 5 {
		t.Fatalf("NearestHunterDistance() = %v, want < 5 (hunter gains)", w.NearestHunterDistance())
	}

	// Already inside the threshold: done after the next tick.
	if err := w.Place(geom.Vec{}, geom.Vec{X: 0.5}); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if done := w.Step(); !done {
		t.Fatalf("Step() done = false at distance 0.5, want true")
	}
	if !w.Done() {
		t.Fatalf("Done() = false after capture")
	}
}

func TestStepAfterDoneFreezes(t *testing.T) {
	p := DefaultParams()
	p.Hunters = 1
	p.Seed = 1
	w := New(p)
	if err := w.Place(geom.Vec{}, geom.Vec{X: 0.1}); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	w.Step()
	tick := w.Tick()
	pos := w.Prey().Pos
	if done := w.Step(); !done {
		t.Fatalf("Step() after done = false, want true")
	}
	if w.Tick() != tick || w.Prey().Pos != pos {
		t.Fatalf("Step() after done mutated state")
	}
}

func TestTinySafeDistanceNeverHalts(t *testing.T) {
	p := DefaultParams()
	p.SafeDistance = 1e-9
	p.Seed = 42
	w := New(p)
	for i := 0; i < 3000; i++ {
		if w.Step() {
			t.Fatalf("Step() done = true at tick %d with safe distance ~0", w.Tick())
		}
	}
}

func TestHeadingsUnitOrZero(t *testing.T) {
	p := DefaultParams()
	p.Hunters = 4
	p.Seed = 3
	w := New(p)
	for i := 0; i < 500 && !w.Done(); i++ {
		w.Step()
		check := func(a Agent) {
			l := a.Heading.Len()
			if l != 0 && math.Abs(l-1) > 1e-9 {
				t.Fatalf("heading length = %v at tick %d, want 1 or 0", l, w.Tick())
			}
		}
		for _, h := range w.Hunters() {
			check(h)
		}
		check(w.Prey())
	}
}

func TestPositionsStayFinite(t *testing.T) {
	p := DefaultParams()
	p.Hunters = 5
	p.Seed = 9
	w := New(p)
	for i := 0; i < 1000 && !w.Done(); i++ {
		w.Step()
	}
	for i, h := range w.Hunters() {
		if !h.Pos.IsFinite() {
			t.Fatalf("Hunters()[%d].Pos = %v, want finite", i, h.Pos)
		}
	}
	if !w.Prey().Pos.IsFinite() {
		t.Fatalf("Prey().Pos = %v, want finite", w.Prey().Pos)
	}
}

func TestDeterministicCapture(t *testing.T) {
	// Head-on chase: the hunter gains 0.01 per tick over a gap of 9, so
	// capture lands right around tick 900.
	run := func() uint64 {
		p := DefaultParams()
		p.Hunters = 1
		p.SafeDistance = 1
		p.Seed = 1
		w := New(p)
		if err := w.Place(geom.Vec{}, geom.Vec{X: 10}); err != nil {
			t.Fatalf("Place() error = %v", err)
		}
		for !w.Step() {
			if w.Tick() > 100000 {
				t.Fatalf("no capture after %d ticks", w.Tick())
			}
		}
		return w.Tick()
	}

	first := run()
	if first < 899 || first > 901 {
		t.Fatalf("capture tick = %d, want ~900", first)
	}
	if second := run(); second != first {
		t.Fatalf("capture tick = %d on rerun, want %d", second, first)
	}
}

func TestSingleHunterNoRepulsion(t *testing.T) {
	// With one hunter the heading must be exactly the pursuit direction.
	p := DefaultParams()
	p.Hunters = 1
	p.Seed = 1
	w := New(p)
	if err := w.Place(geom.Vec{X: 3, Y: 4}, geom.Vec{}); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	w.Step()
	h := w.Hunters()[0].Heading
	want := w.Prey().Pos.Sub(geom.Vec{}).Normalize()
	if math.Abs(h.X-want.X) > 1e-9 || math.Abs(h.Y-want.Y) > 1e-9 {
		t.Fatalf("hunter heading = %v, want %v", h, want)
	}
}

func TestRepulsionSeparatesHunters(t *testing.T) {
	// Two hunters inside the collision radius drift further apart than
	// the same pair with repulsion disabled.
	sep := func(repulsion float64) float64 {
		p := DefaultParams()
		p.Hunters = 2
		p.Repulsion = repulsion
		p.Seed = 1
		w := New(p)
		if err := w.Place(geom.Vec{Y: 8}, geom.Vec{X: 4.8, Y: 0}, geom.Vec{X: 5.2, Y: 0}); err != nil {
			t.Fatalf("Place() error = %v", err)
		}
		for i := 0; i < 20; i++ {
			w.Step()
		}
		hs := w.Hunters()
		return geom.Dist(hs[0].Pos, hs[1].Pos)
	}

	with := sep(0.5)
	without := sep(0)
	if with <= without {
		t.Fatalf("separation with repulsion = %v, want > %v", with, without)
	}
}

func TestSetSafeDistance(t *testing.T) {
	w := New(DefaultParams())
	w.SetSafeDistance(2.5)
	if got := w.Params().SafeDistance; got != 2.5 {
		t.Fatalf("SafeDistance = %v, want 2.5", got)
	}
	w.SetSafeDistance(-1)
	if got := w.Params().SafeDistance; got != 2.5 {
		t.Fatalf("SafeDistance = %v after invalid set, want 2.5", got)
	}
}

func TestPlaceWrongCount(t *testing.T) {
	p := DefaultParams()
	p.Hunters = 2
	w := New(p)
	if err := w.Place(geom.Vec{}, geom.Vec{X: 1}); err == nil {
		t.Fatalf("Place() error = nil, want mismatch error")
	}
}
