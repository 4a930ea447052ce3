package game

import (
	"fmt"

	"github.com/pthm-cable/tiltball/config"
	"github.com/pthm-cable/tiltball/sensor"
)

// NewSource builds the sample source named in the config. Headless runs use
// a synthetic clock stepping at sensor.rate_hz; windowed runs use wall time.
func NewSource(cfg *config.Config, headless bool) (sensor.Source, error) {
	clock := sensor.Clock(sensor.WallClock)
	if headless {
		clock = sensor.StepClock(0, cfg.Derived.StepMs)
	}

	sc := cfg.Sensor
	switch sc.Source {
	case config.SourceMock:
		return sensor.NewMockSource(clock, sc.MockAmplitude, sc.MockPeriod), nil

	case config.SourceReplay:
		if sc.ReplayPath == "" {
			return nil, fmt.Errorf("sensor source %q needs replay_path", sc.Source)
		}
		src, err := sensor.LoadReplay(sc.ReplayPath)
		if err != nil {
			return nil, err
		}
		return src, nil

	case config.SourceKeyboard, config.SourceMouse:
		if headless {
			return nil, fmt.Errorf("sensor source %q needs a window", sc.Source)
		}
		input := keyboardTilt
		if sc.Source == config.SourceMouse {
			input = mouseTilt
		}
		return sensor.NewTiltSource(clock, input, sc.MaxAccel, cfg.Screen.TargetFPS, sc.SpringFrequency, sc.SpringDamping), nil
	}

	return nil, fmt.Errorf("unknown sensor source %q", sc.Source)
}
