package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/pthm-cable/tiltball/config"
)

// OutputManager handles run output: telemetry CSV plus a config snapshot.
type OutputManager struct {
	dir           string
	runID         string
	telemetryFile *os.File

	telemetryHeaderWritten bool
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string {
	return uuid.NewString()
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir, runID string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}

	return &OutputManager{dir: dir, runID: runID, telemetryFile: f}, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(om.Path("config.yaml"))
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.telemetryHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.telemetryHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
	}

	return nil
}

// Path returns the path of a file inside the output directory.
func (om *OutputManager) Path(name string) string {
	if om == nil {
		return ""
	}
	return filepath.Join(om.dir, name)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// RunID returns the run identifier stamped on this output.
func (om *OutputManager) RunID() string {
	if om == nil {
		return ""
	}
	return om.runID
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil || om.telemetryFile == nil {
		return nil
	}
	return om.telemetryFile.Close()
}
