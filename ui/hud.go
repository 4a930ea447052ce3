package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tiltball/sim"
)

// HUDData holds everything the HUD shows for one frame.
type HUDData struct {
	Title    string
	Source   string
	Ball     sim.Ball
	Counters sim.Counters
	TiltX    float32 // smoothed tilt in [-1, 1], live sources only
	TiltY    float32
	HasTilt  bool
	FPS      int32
	Phases   []PhaseTime // slowest first
	Total    time.Duration
	Paused   bool
	Legacy   bool
	Recorded int
}

// PhaseTime is the rolling average duration of one frame phase.
type PhaseTime struct {
	Name string
	Avg  time.Duration
}

// HUDActions reports control-panel clicks for the frame.
type HUDActions struct {
	TogglePause bool
	Recenter    bool
	Legacy      bool // checkbox state after this frame
}

// HUD renders the stats panel and the control buttons.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewHUD creates a HUD anchored at the top-left corner.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        10,
		y:        10,
		width:    240,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// Draw renders the HUD and returns the control actions taken.
func (h *HUD) Draw(data HUDData) HUDActions {
	actions := HUDActions{Legacy: data.Legacy}
	if !h.visible {
		return actions
	}

	r := h.renderer
	lines := StatLines(data)
	pad := r.Theme.Padding
	height := pad*2 + r.Theme.LineHeight*int32(len(lines)+1) + 70
	if data.HasTilt {
		height += r.Theme.LineHeight * 2
	}
	r.DrawPanel(h.x, h.y, h.width, height)

	x := h.x + pad
	y := r.DrawSectionHeader(x, h.y+pad, data.Title)
	for _, l := range lines {
		y = r.DrawLabelValue(x, y, l.Label, l.Value)
	}
	if data.HasTilt {
		y = r.DrawCenteredBar(x, y, "tilt x", data.TiltX, h.width-pad*2)
		y = r.DrawCenteredBar(x, y, "tilt y", data.TiltY, h.width-pad*2)
	}

	y += 6
	btnW := float32(h.width-pad*3) / 2
	pauseLabel := "Pause"
	if data.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: btnW, Height: 24}, pauseLabel) {
		actions.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: float32(x) + btnW + float32(pad), Y: float32(y), Width: btnW, Height: 24}, "Recenter") {
		actions.Recenter = true
	}
	y += 32
	actions.Legacy = gui.CheckBox(rl.Rectangle{X: float32(x), Y: float32(y), Width: 16, Height: 16}, "Legacy quirks", data.Legacy)

	return actions
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.DarkGray)
}

// StatLine is one label/value row of the stats panel.
type StatLine struct {
	Label string
	Value string
}

// StatLines formats the stats panel rows.
func StatLines(d HUDData) []StatLine {
	status := "running"
	if d.Paused {
		status = "paused"
	}
	lines := []StatLine{
		{"source", d.Source},
		{"status", status},
		{"pos", fmt.Sprintf("%.0f, %.0f", d.Ball.Pos.X, d.Ball.Pos.Y)},
		{"vel", fmt.Sprintf("%.3f, %.3f", d.Ball.Vel.X, d.Ball.Vel.Y)},
		{"samples", fmt.Sprintf("%d (%d dropped)", d.Counters.Samples, d.Counters.Dropped)},
		{"bounces", fmt.Sprintf("x %d  y %d", d.Counters.BouncesX, d.Counters.BouncesY)},
		{"fps", fmt.Sprintf("%d", d.FPS)},
	}
	for _, p := range d.Phases {
		lines = append(lines, StatLine{p.Name, p.Avg.Round(time.Microsecond).String()})
	}
	if len(d.Phases) > 0 {
		lines = append(lines, StatLine{"total", d.Total.Round(time.Microsecond).String()})
	}
	if d.Recorded > 0 {
		lines = append(lines, StatLine{"recorded", fmt.Sprintf("%d", d.Recorded)})
	}
	return lines
}
