package sensor

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// Recorder writes samples as CSV in the format read by ReadSamples.
type Recorder struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
	count         int
}

// NewRecorder writes to w. The caller owns w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// CreateRecorder creates (or truncates) a recording file at path.
func CreateRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating recording: %w", err)
	}
	return &Recorder{w: f, closer: f}, nil
}

// Write appends one sample.
func (r *Recorder) Write(s Sample) error {
	if r == nil {
		return nil
	}

	records := []Sample{s}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing sample: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
			return fmt.Errorf("writing sample: %w", err)
		}
	}
	r.count++
	return nil
}

// Count returns the number of samples written.
func (r *Recorder) Count() int {
	if r == nil {
		return 0
	}
	return r.count
}

// Close closes the underlying file if the recorder opened it.
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Tee records every sample delivered by src.
type Tee struct {
	src Source
	rec *Recorder
	err error
}

// NewTee wraps src so each sample is also written to rec.
func NewTee(src Source, rec *Recorder) *Tee {
	return &Tee{src: src, rec: rec}
}

// Next implements Source. Recording failures stop recording but not the
// stream; the first failure is available from Err.
func (t *Tee) Next() (Sample, bool) {
	s, ok := t.src.Next()
	if ok && t.err == nil {
		t.err = t.rec.Write(s)
	}
	return s, ok
}

// Err returns the first recording error, if any.
func (t *Tee) Err() error { return t.err }
