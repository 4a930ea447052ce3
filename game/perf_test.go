package game

import (
	"testing"
	"time"
)

func TestPerfStatsAvg(t *testing.T) {
	p := NewPerfStats()
	if p.Avg(PhaseUpdate) != 0 {
		t.Error("unknown phase should average to zero")
	}

	p.Record(PhaseUpdate, 10*time.Microsecond)
	p.Record(PhaseUpdate, 30*time.Microsecond)
	p.Record(PhaseRender, 100*time.Microsecond)

	if got := p.Avg(PhaseUpdate); got != 20*time.Microsecond {
		t.Errorf("update avg = %v, want 20µs", got)
	}
	if got := p.Total(); got != 120*time.Microsecond {
		t.Errorf("total = %v, want 120µs", got)
	}
	names := p.SortedNames()
	if len(names) != 2 || names[0] != PhaseRender {
		t.Errorf("sorted names = %v, want render first", names)
	}
}

func TestPerfStatsRollingWindow(t *testing.T) {
	p := NewPerfStats()
	for i := 0; i < p.maxSamples; i++ {
		p.Record(PhaseUpdate, time.Millisecond)
	}
	// Overwrite the whole window with a new value.
	for i := 0; i < p.maxSamples; i++ {
		p.Record(PhaseUpdate, 3*time.Millisecond)
	}
	if got := p.Avg(PhaseUpdate); got != 3*time.Millisecond {
		t.Errorf("avg = %v, want 3ms after window rolled over", got)
	}
}

func TestPhaseTimesSlowestFirst(t *testing.T) {
	g := &Game{perf: NewPerfStats()}
	g.perf.Record(PhaseUpdate, 5*time.Microsecond)
	g.perf.Record(PhaseRender, 40*time.Microsecond)

	phases := g.phaseTimes()
	if len(phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(phases))
	}
	if phases[0].Name != PhaseRender || phases[0].Avg != 40*time.Microsecond {
		t.Errorf("first phase = %+v, want render 40µs", phases[0])
	}
	if phases[1].Name != PhaseUpdate {
		t.Errorf("second phase = %+v, want update", phases[1])
	}

	var sum time.Duration
	for _, p := range phases {
		sum += p.Avg
	}
	if got := g.perf.Total(); got != sum {
		t.Errorf("total = %v, want %v", got, sum)
	}
}

func TestSortedNamesTieOrder(t *testing.T) {
	p := NewPerfStats()
	p.Record(PhaseUpdate, time.Millisecond)
	p.Record(PhaseRender, time.Millisecond)

	names := p.SortedNames()
	if len(names) != 2 || names[0] != PhaseRender || names[1] != PhaseUpdate {
		t.Errorf("sorted names = %v, want [render update]", names)
	}
}
