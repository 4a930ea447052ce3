package ui

import (
	"testing"
	"time"

	"github.com/pthm-cable/tiltball/sim"
)

func TestStatLines(t *testing.T) {
	phases := []PhaseTime{
		{Name: "render", Avg: 40 * time.Microsecond},
		{Name: "update", Avg: 1500 * time.Nanosecond},
	}
	d := HUDData{
		Source:   "mock",
		Ball:     sim.Ball{Pos: sim.Vec2{X: 375, Y: 1000}, Vel: sim.Vec2{X: -0.5}},
		Counters: sim.Counters{Samples: 12, Dropped: 1, BouncesX: 2, BouncesY: 3},
		FPS:      60,
		Phases:   phases,
		Total:    41500 * time.Nanosecond,
		Paused:   true,
	}

	got := map[string]string{}
	for _, l := range StatLines(d) {
		got[l.Label] = l.Value
	}

	want := map[string]string{
		"source":  "mock",
		"status":  "paused",
		"pos":     "375, 1000",
		"vel":     "-0.500, 0.000",
		"samples": "12 (1 dropped)",
		"bounces": "x 2  y 3",
		"fps":     "60",
		"render":  "40µs",
		"update":  "2µs",
		"total":   "42µs",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
	if _, ok := got["recorded"]; ok {
		t.Error("recorded row should be hidden when nothing is recorded")
	}

	d.Recorded = 5
	lines := StatLines(d)
	if last := lines[len(lines)-1]; last.Label != "recorded" || last.Value != "5" {
		t.Errorf("last line = %+v, want recorded 5", last)
	}
}

func TestStatLinesPhaseOrder(t *testing.T) {
	d := HUDData{Phases: []PhaseTime{{"render", 3 * time.Millisecond}, {"update", time.Millisecond}}, Total: 4 * time.Millisecond}
	lines := StatLines(d)

	var labels []string
	for _, l := range lines[len(lines)-3:] {
		labels = append(labels, l.Label)
	}
	if labels[0] != "render" || labels[1] != "update" || labels[2] != "total" {
		t.Errorf("phase rows = %v, want [render update total]", labels)
	}

	d.Phases, d.Total = nil, 0
	for _, l := range StatLines(d) {
		if l.Label == "total" {
			t.Error("total row should be hidden without phase timings")
		}
	}
}

func TestClampUnit(t *testing.T) {
	for _, tt := range []struct{ in, want float32 }{{-3, -1}, {0.25, 0.25}, {9, 1}} {
		if got := clampUnit(tt.in); got != tt.want {
			t.Errorf("clampUnit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
