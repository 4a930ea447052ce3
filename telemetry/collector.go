package telemetry

import (
	"math"

	"github.com/pthm-cable/tiltball/sim"
)

// Collector accumulates per-sample observations into windows of sample time.
// Windows are measured on sample timestamps, not wall time, so replays
// produce the same stats as the live run they came from.
type Collector struct {
	runID    string
	windowMs int64

	windowStart int64
	started     bool

	lastTs   int64
	haveLast bool

	intervals []float64
	speeds    []float64

	base sim.Counters // counters at window start
	cur  sim.Counters
	ball sim.Ball
}

// NewCollector creates a collector emitting one WindowStats per windowMs of
// sample time.
func NewCollector(runID string, windowMs int64) *Collector {
	if windowMs < 1 {
		windowMs = 1000
	}
	return &Collector{runID: runID, windowMs: windowMs}
}

// Record adds one processed sample. When the sample closes the current
// window, the finished window is returned with ok=true.
func (c *Collector) Record(timestampMs int64, b sim.Ball, counters sim.Counters) (ws WindowStats, ok bool) {
	if !c.started {
		c.windowStart = timestampMs
		c.started = true
	}

	if c.haveLast && timestampMs >= c.lastTs {
		c.intervals = append(c.intervals, float64(timestampMs-c.lastTs))
	}
	c.lastTs = timestampMs
	c.haveLast = true

	c.speeds = append(c.speeds, math.Hypot(float64(b.Vel.X), float64(b.Vel.Y)))
	c.cur = counters
	c.ball = b

	if timestampMs-c.windowStart >= c.windowMs {
		return c.Flush(timestampMs), true
	}
	return WindowStats{}, false
}

// Flush produces stats for the current window and starts a new one at
// timestampMs. Safe to call on an empty window.
func (c *Collector) Flush(timestampMs int64) WindowStats {
	ws := WindowStats{
		RunID:         c.runID,
		WindowStartMs: c.windowStart,
		WindowEndMs:   timestampMs,
		Samples:       c.cur.Samples - c.base.Samples,
		Dropped:       c.cur.Dropped - c.base.Dropped,
		Regressions:   c.cur.Regressions - c.base.Regressions,
		BouncesX:      c.cur.BouncesX - c.base.BouncesX,
		BouncesY:      c.cur.BouncesY - c.base.BouncesY,
		PosX:          float64(c.ball.Pos.X),
		PosY:          float64(c.ball.Pos.Y),
	}
	ws.IntervalMean, ws.IntervalP50, ws.IntervalP90, ws.IntervalMax = Distribution(c.intervals)
	ws.SpeedMean, _, _, ws.SpeedMax = Distribution(c.speeds)

	c.windowStart = timestampMs
	c.base = c.cur
	c.intervals = c.intervals[:0]
	c.speeds = c.speeds[:0]
	return ws
}

// Pending reports whether the current window holds unflushed observations.
func (c *Collector) Pending() bool {
	return len(c.speeds) > 0
}

// LastTimestamp returns the timestamp of the most recent sample.
func (c *Collector) LastTimestamp() int64 {
	return c.lastTs
}
