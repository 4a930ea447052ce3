// Package game hosts the simulator: it polls a sensor source, feeds each
// sample to the simulator, records telemetry and draws the frame.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/tiltball/config"
	"github.com/pthm-cable/tiltball/renderer"
	"github.com/pthm-cable/tiltball/sensor"
	"github.com/pthm-cable/tiltball/sim"
	"github.com/pthm-cable/tiltball/telemetry"
	"github.com/pthm-cable/tiltball/ui"
)

// MinSurface is the smallest surface edge, in pixels, that still fits the
// ball between its walls.
const MinSurface = int(2*sim.Radius) + 1

// Options holds host settings that do not belong in the config file.
type Options struct {
	Headless   bool
	LogStats   bool   // log every telemetry window via slog
	OutputDir  string // telemetry.csv + config.yaml (empty = disabled)
	RecordPath string // record every delivered sample as CSV (empty = disabled)
	RunID      string
}

// Game holds the complete host state.
type Game struct {
	cfg  *config.Config
	opts Options

	sim    *sim.Simulator
	source sensor.Source
	tilt   *sensor.TiltSource // nil unless the source is keyboard or mouse
	tee    *sensor.Tee
	rec    *sensor.Recorder

	ball     sim.Ball
	renderer *renderer.BallRenderer

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	outputErr error

	perf *PerfStats
	hud  *ui.HUD

	width, height int
	samples       int
	paused        bool
	done          bool
}

// NewGame creates a host around src. The surface is sized from the config;
// windowed hosts resize it again once the window exists.
func NewGame(cfg *config.Config, src sensor.Source, opts Options) (*Game, error) {
	if cfg.Screen.Width < MinSurface || cfg.Screen.Height < MinSurface {
		return nil, fmt.Errorf("screen %dx%d is smaller than the minimum %dx%d",
			cfg.Screen.Width, cfg.Screen.Height, MinSurface, MinSurface)
	}
	if opts.RunID == "" {
		opts.RunID = telemetry.NewRunID()
	}

	g := &Game{
		cfg:       cfg,
		opts:      opts,
		sim:       sim.New(sim.Options{LegacyQuirks: cfg.Sim.LegacyQuirks}),
		source:    src,
		renderer:  renderer.NewBallRenderer(cfg.Derived.Background, cfg.Derived.Ball),
		collector: telemetry.NewCollector(opts.RunID, cfg.Derived.StatsWindowMs),
		perf:      NewPerfStats(),
	}
	g.tilt, _ = src.(*sensor.TiltSource)

	output, err := telemetry.NewOutputManager(opts.OutputDir, opts.RunID)
	if err != nil {
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		g.output.Close()
		return nil, err
	}
	if g.output != nil {
		slog.Info("writing run output", "dir", g.output.Dir(), "run_id", g.output.RunID())
	}

	if opts.RecordPath != "" {
		rec, err := sensor.CreateRecorder(opts.RecordPath)
		if err != nil {
			g.output.Close()
			return nil, err
		}
		g.rec = rec
		g.tee = sensor.NewTee(src, rec)
		g.source = g.tee
	}

	if !opts.Headless {
		g.hud = ui.NewHUD()
	}

	g.Resize(cfg.Screen.Width, cfg.Screen.Height)
	return g, nil
}

// Resize propagates new surface dimensions to the simulator. Surfaces too
// small to hold the ball are ignored and the previous bounds are kept.
func (g *Game) Resize(width, height int) {
	if width < MinSurface || height < MinSurface {
		slog.Warn("ignoring surface smaller than the ball", "width", width, "height", height)
		return
	}
	g.width, g.height = width, height
	g.sim.OnSurfaceReady(width, height)
	g.ball = g.sim.Ball()
}

// Step pulls one sample from the source and integrates it. Returns false
// once the source is exhausted.
func (g *Game) Step() bool {
	if g.done {
		return false
	}

	start := time.Now()
	s, ok := g.source.Next()
	if !ok {
		g.done = true
		slog.Info("sensor source exhausted", "samples", g.samples)
		return false
	}

	g.ball = g.sim.OnAccelerationSample(s.AX, s.AY, s.TimestampMs)
	g.samples++

	if ws, flushed := g.collector.Record(s.TimestampMs, g.ball, g.sim.Counters()); flushed {
		g.emit(ws)
	}

	g.perf.Record(PhaseUpdate, time.Since(start))
	return true
}

// emit logs and writes one telemetry window.
func (g *Game) emit(ws telemetry.WindowStats) {
	if g.opts.LogStats {
		ws.LogStats()
	}
	if g.outputErr != nil {
		return
	}
	if err := g.output.WriteTelemetry(ws); err != nil {
		g.outputErr = err
		slog.Error("telemetry output disabled", "error", err)
	}
}

// SetPaused pauses or resumes sample processing. On resume the simulator
// clock restarts so the pause is not integrated as one long interval.
func (g *Game) SetPaused(paused bool) {
	if g.paused && !paused {
		g.sim.ResetClock()
	}
	g.paused = paused
}

// Recenter puts the ball back in the middle of the surface.
func (g *Game) Recenter() {
	g.Resize(g.width, g.height)
}

// SetLegacyQuirks switches the simulator's quirk mode.
func (g *Game) SetLegacyQuirks(on bool) {
	if on == g.sim.LegacyQuirks() {
		return
	}
	g.sim.SetLegacyQuirks(on)
	slog.Info("legacy quirks", "enabled", on)
}

// Snapshot renders the current frame to a PNG file.
func (g *Game) Snapshot(path string) error {
	c := renderer.NewImageCanvas(g.width, g.height)
	g.renderer.Draw(c, g.ball)
	return c.SavePNG(path)
}

// Close flushes the last telemetry window and closes all output.
func (g *Game) Close() error {
	if g.collector.Pending() {
		g.emit(g.collector.Flush(g.collector.LastTimestamp()))
	}

	var errs []error
	if g.tee != nil && g.tee.Err() != nil {
		errs = append(errs, fmt.Errorf("recording samples: %w", g.tee.Err()))
	}
	if err := g.rec.Close(); err != nil {
		errs = append(errs, err)
	}
	if g.outputErr != nil {
		errs = append(errs, g.outputErr)
	}
	if err := g.output.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Ball returns the latest ball state.
func (g *Game) Ball() sim.Ball { return g.ball }

// Counters returns the simulator's event counters.
func (g *Game) Counters() sim.Counters { return g.sim.Counters() }

// Samples returns the number of samples pulled from the source.
func (g *Game) Samples() int { return g.samples }

// Done reports whether the source has been exhausted.
func (g *Game) Done() bool { return g.done }

// Paused reports whether sample processing is paused.
func (g *Game) Paused() bool { return g.paused }

// RunID returns the identifier stamped on this run's output.
func (g *Game) RunID() string { return g.opts.RunID }
