// Package telemetry aggregates per-window simulator statistics and writes them
// to CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one window of sample time.
type WindowStats struct {
	RunID         string `csv:"run_id"`
	WindowStartMs int64  `csv:"window_start_ms"`
	WindowEndMs   int64  `csv:"window_end_ms"`

	// Sample flow
	Samples     int `csv:"samples"`
	Dropped     int `csv:"dropped"`
	Regressions int `csv:"regressions"`

	// Sample interval distribution (milliseconds)
	IntervalMean float64 `csv:"interval_mean_ms"`
	IntervalP50  float64 `csv:"interval_p50_ms"`
	IntervalP90  float64 `csv:"interval_p90_ms"`
	IntervalMax  float64 `csv:"interval_max_ms"`

	// Ball speed in velocity units
	SpeedMean float64 `csv:"speed_mean"`
	SpeedMax  float64 `csv:"speed_max"`

	BouncesX int `csv:"bounces_x"`
	BouncesY int `csv:"bounces_y"`

	// Ball position at window end
	PosX float64 `csv:"pos_x"`
	PosY float64 `csv:"pos_y"`
}

// Distribution returns mean, median, 90th percentile and max of values.
// Returns zeros if values is empty.
func Distribution(values []float64) (mean, p50, p90, maxVal float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	maxVal = floats.Max(sorted)
	return mean, p50, p90, maxVal
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", s.RunID),
		slog.Int64("window_start_ms", s.WindowStartMs),
		slog.Int64("window_end_ms", s.WindowEndMs),
		slog.Int("samples", s.Samples),
		slog.Int("dropped", s.Dropped),
		slog.Int("regressions", s.Regressions),
		slog.Float64("interval_mean_ms", s.IntervalMean),
		slog.Float64("interval_p50_ms", s.IntervalP50),
		slog.Float64("interval_p90_ms", s.IntervalP90),
		slog.Float64("interval_max_ms", s.IntervalMax),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Int("bounces_x", s.BouncesX),
		slog.Int("bounces_y", s.BouncesY),
		slog.Float64("pos_x", s.PosX),
		slog.Float64("pos_y", s.PosY),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
