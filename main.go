package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tiltball/config"
	"github.com/pthm-cable/tiltball/game"
	"github.com/pthm-cable/tiltball/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics (mock or replay source)")
	source := flag.String("source", "", "Sensor source: keyboard, mouse, mock, replay (empty = use config)")
	replayPath := flag.String("replay", "", "CSV recording to replay (implies -source replay)")
	recordPath := flag.String("record", "", "Record every sensor sample to this CSV file")
	outputDir := flag.String("output-dir", "", "Output directory for telemetry CSV and config snapshot")
	snapshotPath := flag.String("snapshot", "", "Write the final frame as PNG (headless only)")
	maxSamples := flag.Int("max-samples", 0, "Stop after N samples (0 = unlimited)")
	legacy := flag.Bool("legacy", false, "Use the legacy integration quirks (vx in dy, width as vertical bound)")
	logStats := flag.Bool("log-stats", false, "Output telemetry windows via slog")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI overrides
	if *source != "" {
		cfg.Sensor.Source = *source
	}
	if *replayPath != "" {
		cfg.Sensor.Source = config.SourceReplay
		cfg.Sensor.ReplayPath = *replayPath
	}
	if *legacy {
		cfg.Sim.LegacyQuirks = true
	}
	if *headless && (cfg.Sensor.Source == config.SourceKeyboard || cfg.Sensor.Source == config.SourceMouse) {
		cfg.Sensor.Source = config.SourceMock
	}

	src, err := game.NewSource(cfg, *headless)
	if err != nil {
		slog.Error("failed to open sensor source", "error", err)
		os.Exit(1)
	}

	opts := game.Options{
		Headless:   *headless,
		LogStats:   *logStats,
		OutputDir:  *outputDir,
		RecordPath: *recordPath,
		RunID:      telemetry.NewRunID(),
	}

	if *headless {
		g, err := game.NewGame(cfg, src, opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}

		slog.Info("starting headless simulation",
			"run_id", opts.RunID,
			"source", cfg.Sensor.Source,
			"legacy_quirks", cfg.Sim.LegacyQuirks,
			"max_samples", *maxSamples,
		)

		for g.Step() {
			if *maxSamples > 0 && g.Samples() >= *maxSamples {
				slog.Info("max samples reached", "samples", g.Samples())
				break
			}
		}

		b := g.Ball()
		slog.Info("simulation finished",
			"samples", g.Samples(),
			"x", b.Pos.X, "y", b.Pos.Y,
			"vx", b.Vel.X, "vy", b.Vel.Y,
		)

		if *snapshotPath != "" {
			if err := g.Snapshot(*snapshotPath); err != nil {
				slog.Error("failed to write snapshot", "error", err)
			}
		}
		if err := g.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
			os.Exit(1)
		}
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()
	rl.SetWindowMinSize(game.MinSurface, game.MinSurface)

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(cfg, src, opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		return
	}
	defer func() {
		if err := g.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}()

	slog.Info("starting", "run_id", opts.RunID, "source", cfg.Sensor.Source)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxSamples > 0 && g.Samples() >= *maxSamples {
			break
		}
	}
}
