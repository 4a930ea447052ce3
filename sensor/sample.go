// Package sensor provides accelerometer sample sources for the simulator.
package sensor

import "time"

// Sample is one accelerometer reading. AX and AY are in device units
// (m/s², sensor frame: AX positive toward the left edge, AY toward the bottom).
type Sample struct {
	TimestampMs int64   `csv:"timestamp_ms"`
	AX          float32 `csv:"ax"`
	AY          float32 `csv:"ay"`
}

// Source delivers samples. Next returns false when the source is exhausted.
type Source interface {
	Next() (Sample, bool)
}

// Clock returns the current time in milliseconds.
type Clock func() int64

// WallClock reads the system clock.
func WallClock() int64 {
	return time.Now().UnixMilli()
}

// StepClock returns a synthetic clock starting at startMs that advances by
// stepMs on every call after the first.
func StepClock(startMs, stepMs int64) Clock {
	now := startMs - stepMs
	return func() int64 {
		now += stepMs
		return now
	}
}
