package game

import (
	"sort"
	"time"
)

// Phase names for one sample step.
const (
	PhaseUpdate = "update"
	PhaseRender = "render"
)

// PerfStats tracks a rolling window of durations per phase.
type PerfStats struct {
	samples    map[string]*durationRing
	maxSamples int
}

type durationRing struct {
	data  []time.Duration
	pos   int
	full  bool
	total time.Duration
}

// NewPerfStats creates a new performance stats tracker.
func NewPerfStats() *PerfStats {
	return &PerfStats{
		samples:    make(map[string]*durationRing),
		maxSamples: 120, // ~2 seconds of samples at 60fps
	}
}

// Record adds a duration sample for the named phase.
func (p *PerfStats) Record(name string, d time.Duration) {
	r := p.samples[name]
	if r == nil {
		r = &durationRing{data: make([]time.Duration, p.maxSamples)}
		p.samples[name] = r
	}
	if r.full {
		r.total -= r.data[r.pos]
	}
	r.data[r.pos] = d
	r.total += d
	r.pos++
	if r.pos == len(r.data) {
		r.pos = 0
		r.full = true
	}
}

// Avg returns the average duration for the named phase.
func (p *PerfStats) Avg(name string) time.Duration {
	r := p.samples[name]
	if r == nil {
		return 0
	}
	n := r.pos
	if r.full {
		n = len(r.data)
	}
	if n == 0 {
		return 0
	}
	return r.total / time.Duration(n)
}

// Total returns the sum of all average durations.
func (p *PerfStats) Total() time.Duration {
	var total time.Duration
	for name := range p.samples {
		total += p.Avg(name)
	}
	return total
}

// SortedNames returns phase names sorted by average duration (descending).
// Ties are ordered by name.
func (p *PerfStats) SortedNames() []string {
	names := make([]string, 0, len(p.samples))
	for name := range p.samples {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ai, aj := p.Avg(names[i]), p.Avg(names[j])
		if ai != aj {
			return ai > aj
		}
		return names[i] < names[j]
	})
	return names
}
