// Package sim integrates the tilt-driven ball: velocity and position under
// per-sample acceleration, with damped reflection at the surface edges.
package sim

import (
	"fmt"
	"math"
)

// Physics constants. These are fixed for the lifetime of the process.
const (
	Radius      float32 = 50.0   // ball radius in pixels
	Coefficient float32 = 1000.0 // pixels per unit of kinematic displacement
	Damping     float32 = 1.5    // velocity divisor applied on wall bounce
)

// Vec2 is a 2D vector in surface coordinates.
type Vec2 struct {
	X, Y float32
}

// Ball is a read-only snapshot of the simulated ball.
type Ball struct {
	Pos    Vec2
	Vel    Vec2
	Radius float32
}

// Options selects simulator behavior.
type Options struct {
	// LegacyQuirks reproduces two quirks of the legacy Android app: the
	// vertical displacement uses the horizontal velocity term, and the
	// vertical wall is tested against the surface width. Wall clamping is the
	// same in both modes: a ball past a wall is always clamped back inside,
	// even when its velocity already points into the surface.
	LegacyQuirks bool
}

// Counters tracks events observed by the simulator since creation.
type Counters struct {
	Samples     int // samples that advanced the kinematics
	Dropped     int // samples rejected as non-finite
	Regressions int // samples whose timestamp went backwards
	BouncesX    int
	BouncesY    int
}

// Simulator owns the ball state. It is driven synchronously by its host and
// performs no locking.
type Simulator struct {
	pos, vel Vec2

	width, height float32
	surfaceReady  bool

	lastMs   int64
	clockSet bool

	legacy   bool
	counters Counters
}

// New creates a simulator with zero velocity and an unset clock.
// Position is assigned by OnSurfaceReady.
func New(opts Options) *Simulator {
	return &Simulator{legacy: opts.LegacyQuirks}
}

// OnSurfaceReady records the surface bounds and recenters the ball.
// Velocity and the sample clock are left untouched.
func (s *Simulator) OnSurfaceReady(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("sim: invalid surface %dx%d", width, height))
	}
	s.width = float32(width)
	s.height = float32(height)
	s.pos = Vec2{X: float32(width / 2), Y: float32(height / 2)}
	s.surfaceReady = true
}

// OnAccelerationSample integrates one accelerometer reading taken at
// timestampMs and returns the resulting ball state.
//
// The first sample only starts the clock. Samples with non-finite values are
// dropped without touching the clock, so the next good sample integrates over
// the whole gap.
func (s *Simulator) OnAccelerationSample(ax, ay float32, timestampMs int64) Ball {
	if !finite(ax) || !finite(ay) {
		s.counters.Dropped++
		return s.Ball()
	}

	if !s.clockSet {
		s.lastMs = timestampMs
		s.clockSet = true
		return s.Ball()
	}

	elapsedMs := timestampMs - s.lastMs
	s.lastMs = timestampMs
	if elapsedMs < 0 {
		s.counters.Regressions++
		elapsedMs = 0
	}

	if !s.surfaceReady {
		return s.Ball()
	}

	// Screen x grows to the right, sensor x grows to the left.
	ax = -ax
	t := float32(elapsedMs) / 1000.0

	dx := s.vel.X*t + ax*t*t/2.0
	var dy float32
	if s.legacy {
		dy = s.vel.X*t + ay*t*t/2.0
	} else {
		dy = s.vel.Y*t + ay*t*t/2.0
	}

	s.pos.X += dx * Coefficient
	s.pos.Y += dy * Coefficient

	s.vel.X += ax * t
	s.vel.Y += ay * t

	if bounce(&s.pos.X, &s.vel.X, s.width) {
		s.counters.BouncesX++
	}
	vBound := s.height
	if s.legacy {
		vBound = s.width
	}
	if bounce(&s.pos.Y, &s.vel.Y, vBound) {
		s.counters.BouncesY++
	}

	s.counters.Samples++
	return s.Ball()
}

// bounce keeps p inside [Radius, bound-Radius] and reflects v with damping
// when it points out of the surface. Reports whether v was reflected.
func bounce(p, v *float32, bound float32) bool {
	if *p-Radius < 0 {
		*p = Radius
		if *v < 0 {
			*v = -*v / Damping
			return true
		}
	} else if *p+Radius > bound {
		*p = bound - Radius
		if *v > 0 {
			*v = -*v / Damping
			return true
		}
	}
	return false
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Ball returns the current ball state.
func (s *Simulator) Ball() Ball {
	return Ball{Pos: s.pos, Vel: s.vel, Radius: Radius}
}

// ResetClock returns the simulator to the uninitialized-clock state: the
// next sample only restarts the clock. Hosts call this after a pause so the
// paused time is not integrated.
func (s *Simulator) ResetClock() {
	s.clockSet = false
}

// Running reports whether the sample clock has been established.
func (s *Simulator) Running() bool { return s.clockSet }

// Counters returns a copy of the event counters.
func (s *Simulator) Counters() Counters { return s.counters }

// LegacyQuirks reports whether the legacy integration quirks are active.
func (s *Simulator) LegacyQuirks() bool { return s.legacy }

// SetLegacyQuirks switches quirk mode. The current state is kept.
func (s *Simulator) SetLegacyQuirks(on bool) { s.legacy = on }
