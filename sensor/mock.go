package sensor

import "math"

// MockSource generates a smooth, repeating tilt pattern. It never ends.
type MockSource struct {
	clock     Clock
	amplitude float64
	period    float64 // seconds
	startMs   int64
	started   bool
}

// NewMockSource creates a mock source swinging up to amplitude m/s² on each
// axis with the given period in seconds.
func NewMockSource(clock Clock, amplitude, period float64) *MockSource {
	if period <= 0 {
		period = 1
	}
	return &MockSource{clock: clock, amplitude: amplitude, period: period}
}

// Next implements Source.
func (m *MockSource) Next() (Sample, bool) {
	now := m.clock()
	if !m.started {
		m.startMs = now
		m.started = true
	}
	elapsed := float64(now-m.startMs) / 1000.0
	w := 2 * math.Pi / m.period

	return Sample{
		TimestampMs: now,
		AX:          float32(m.amplitude * math.Sin(w*elapsed)),
		AY:          float32(m.amplitude * math.Cos(w*elapsed*0.7)),
	}, true
}
