package sensor

import "github.com/charmbracelet/harmonica"

// Gravity is standard gravity in m/s².
const Gravity = 9.80665

// TiltInput reports the requested tilt per screen axis in [-1, 1]:
// +x tips the ball right, +y tips it down.
type TiltInput func() (x, y float32)

// TiltSource turns discrete input (keys, mouse offset) into accelerometer-like
// samples. The requested tilt is chased by a critically damped spring so the
// output ramps the way a physical device does when tipped.
type TiltSource struct {
	clock    Clock
	input    TiltInput
	maxAccel float64

	spring harmonica.Spring
	pos    [2]float64
	vel    [2]float64
}

// NewTiltSource creates a tilt source. fps is the expected call rate of Next;
// frequency and damping configure the smoothing spring.
func NewTiltSource(clock Clock, input TiltInput, maxAccel float64, fps int, frequency, damping float64) *TiltSource {
	if fps <= 0 {
		fps = 60
	}
	return &TiltSource{
		clock:    clock,
		input:    input,
		maxAccel: maxAccel,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Next implements Source.
func (s *TiltSource) Next() (Sample, bool) {
	tx, ty := s.input()
	x := s.step(0, clampUnit(tx))
	y := s.step(1, clampUnit(ty))

	// Sensor x points the opposite way from screen x.
	return Sample{
		TimestampMs: s.clock(),
		AX:          float32(-x * s.maxAccel),
		AY:          float32(y * s.maxAccel),
	}, true
}

// Tilt returns the current smoothed tilt per screen axis.
func (s *TiltSource) Tilt() (x, y float64) {
	return s.pos[0], s.pos[1]
}

func (s *TiltSource) step(i int, target float64) float64 {
	p, v := s.spring.Update(s.pos[i], s.vel[i], target)
	s.pos[i] = p
	s.vel[i] = v
	return p
}

func clampUnit(v float32) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	case v != v:
		return 0
	}
	return float64(v)
}
