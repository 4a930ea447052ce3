package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/tiltball/sim"
)

func TestCollectorWindows(t *testing.T) {
	s := sim.New(sim.Options{})
	s.OnSurfaceReady(1000, 2000)
	c := NewCollector("run-1", 1000)

	var flushed []WindowStats
	for ts := int64(0); ts <= 2000; ts += 100 {
		b := s.OnAccelerationSample(0, 0, ts)
		if ws, ok := c.Record(ts, b, s.Counters()); ok {
			flushed = append(flushed, ws)
		}
	}

	if len(flushed) != 2 {
		t.Fatalf("got %d windows, want 2", len(flushed))
	}

	first := flushed[0]
	if first.RunID != "run-1" || first.WindowStartMs != 0 || first.WindowEndMs != 1000 {
		t.Errorf("first window = %+v", first)
	}
	// The sample at t=0 only starts the clock.
	if first.Samples != 10 {
		t.Errorf("first window samples = %d, want 10", first.Samples)
	}
	if first.IntervalMean != 100 || first.IntervalP50 != 100 || first.IntervalMax != 100 {
		t.Errorf("intervals = %v/%v/%v, want 100", first.IntervalMean, first.IntervalP50, first.IntervalMax)
	}
	if first.PosX != 500 || first.PosY != 1000 {
		t.Errorf("position = (%v, %v), want (500, 1000)", first.PosX, first.PosY)
	}

	second := flushed[1]
	if second.WindowStartMs != 1000 || second.WindowEndMs != 2000 || second.Samples != 10 {
		t.Errorf("second window = %+v", second)
	}
	if c.Pending() {
		t.Error("nothing should be pending right after a flush")
	}
}

func TestCollectorCountsBouncesAndDrops(t *testing.T) {
	s := sim.New(sim.Options{})
	s.OnSurfaceReady(1000, 1000)
	c := NewCollector("run", 10_000)

	record := func(ax, ay float32, ts int64) {
		b := s.OnAccelerationSample(ax, ay, ts)
		c.Record(ts, b, s.Counters())
	}
	record(0, 0, 0)
	record(2, -2, 1000) // hits left and top walls
	record(float32(math.NaN()), 0, 1100)
	record(0, 0, 900) // clock regression

	if !c.Pending() {
		t.Fatal("expected pending observations")
	}
	ws := c.Flush(c.LastTimestamp())
	if ws.BouncesX != 1 || ws.BouncesY != 1 {
		t.Errorf("bounces = %d/%d, want 1/1", ws.BouncesX, ws.BouncesY)
	}
	if ws.Dropped != 1 || ws.Regressions != 1 {
		t.Errorf("dropped/regressions = %d/%d, want 1/1", ws.Dropped, ws.Regressions)
	}
	if ws.SpeedMax <= 0 {
		t.Errorf("speed max = %v, want > 0", ws.SpeedMax)
	}

	// A following window starts from fresh counts.
	next := c.Flush(c.LastTimestamp())
	if next.BouncesX != 0 || next.Dropped != 0 || next.Samples != 0 {
		t.Errorf("counts leaked into next window: %+v", next)
	}
}
