package main

import (
	"bytes"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/pthm-cable/tiltball/config"
	"github.com/pthm-cable/tiltball/sensor"
)

func TestGenerate(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := generate(sensor.NewRecorder(&buf), cfg, time.Second, 0, 0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// 16ms steps from 0 through 992 inclusive.
	if n != 63 {
		t.Errorf("generated %d samples, want 63", n)
	}

	samples, err := sensor.ReadSamples(&buf)
	if err != nil {
		t.Fatalf("ReadSamples: %v", err)
	}
	if len(samples) != n {
		t.Fatalf("read back %d samples, want %d", len(samples), n)
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].TimestampMs-samples[i-1].TimestampMs != 16 {
			t.Fatalf("sample %d: irregular step without jitter", i)
		}
	}
}

func TestGenerateJitterAndDrops(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := generate(sensor.NewRecorder(&buf), cfg, 5*time.Second, 20, 0.2, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	samples, err := sensor.ReadSamples(&buf)
	if err != nil {
		t.Fatalf("ReadSamples: %v", err)
	}
	if len(samples) != n {
		t.Fatalf("read back %d samples, want %d", len(samples), n)
	}

	drops := 0
	for i, s := range samples {
		if math.IsNaN(float64(s.AX)) {
			drops++
		}
		if i > 0 {
			step := s.TimestampMs - samples[i-1].TimestampMs
			if step < 16 || step > 36 {
				t.Errorf("sample %d: step %dms outside [16, 36]", i, step)
			}
		}
	}
	if drops == 0 || drops == n {
		t.Errorf("drops = %d of %d, want some but not all", drops, n)
	}
}
