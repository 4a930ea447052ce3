package sensor

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// ReplaySource plays back samples loaded from a CSV recording.
type ReplaySource struct {
	samples []Sample
	next    int
}

// NewReplaySource wraps an in-memory sample list.
func NewReplaySource(samples []Sample) *ReplaySource {
	return &ReplaySource{samples: samples}
}

// ReadSamples decodes a CSV recording with a timestamp_ms,ax,ay header.
func ReadSamples(r io.Reader) ([]Sample, error) {
	var samples []Sample
	if err := gocsv.Unmarshal(r, &samples); err != nil {
		return nil, fmt.Errorf("parsing samples: %w", err)
	}
	return samples, nil
}

// LoadReplay opens a CSV recording from disk.
func LoadReplay(path string) (*ReplaySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening replay: %w", err)
	}
	defer f.Close()

	samples, err := ReadSamples(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewReplaySource(samples), nil
}

// Next implements Source.
func (r *ReplaySource) Next() (Sample, bool) {
	if r.next >= len(r.samples) {
		return Sample{}, false
	}
	s := r.samples[r.next]
	r.next++
	return s, true
}

// Len returns the total number of samples in the recording.
func (r *ReplaySource) Len() int { return len(r.samples) }

// Remaining returns the number of samples not yet delivered.
func (r *ReplaySource) Remaining() int { return len(r.samples) - r.next }
