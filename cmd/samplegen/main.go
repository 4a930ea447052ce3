// Sample generator - writes a synthetic accelerometer recording for replay.
//
// Usage: go run ./cmd/samplegen -out samples.csv -duration 30s
package main

import (
	"flag"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/pthm-cable/tiltball/config"
	"github.com/pthm-cable/tiltball/sensor"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	outPath := flag.String("out", "", "Output CSV path")
	duration := flag.Duration("duration", 30*time.Second, "Recording length in sample time")
	jitter := flag.Int64("jitter", 0, "Max random extra delay per sample in ms")
	dropRate := flag.Float64("drop-rate", 0, "Fraction of samples replaced with NaN readings")
	seed := flag.Int64("seed", 42, "RNG seed for jitter and drops")
	flag.Parse()

	if *outPath == "" {
		log.Fatal("--out is required")
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	rec, err := sensor.CreateRecorder(*outPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	n, err := generate(rec, cfg, *duration, *jitter, *dropRate, rand.New(rand.NewSource(*seed)))
	if cerr := rec.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("writing %s: %v", *outPath, err)
	}
	log.Printf("wrote %d samples to %s", n, *outPath)
}

// generate writes mock samples covering duration of sample time.
func generate(rec *sensor.Recorder, cfg *config.Config, duration time.Duration, jitterMs int64, dropRate float64, rng *rand.Rand) (int, error) {
	var now int64
	clock := func() int64 {
		ts := now
		now += cfg.Derived.StepMs
		if jitterMs > 0 {
			now += rng.Int63n(jitterMs + 1)
		}
		return ts
	}
	src := sensor.NewMockSource(clock, cfg.Sensor.MockAmplitude, cfg.Sensor.MockPeriod)

	end := duration.Milliseconds()
	count := 0
	for {
		s, _ := src.Next()
		if s.TimestampMs > end {
			return count, nil
		}
		if dropRate > 0 && rng.Float64() < dropRate {
			s.AX = float32(math.NaN())
		}
		if err := rec.Write(s); err != nil {
			return count, err
		}
		count++
	}
}
