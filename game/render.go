package game

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tiltball/ui"
)

const controlsLegend = "arrows/WASD or mouse: tilt | SPACE: pause | C: recenter | L: legacy | H: hud"

// raylibCanvas draws into the current raylib frame. Calls must happen
// between rl.BeginDrawing and rl.EndDrawing.
type raylibCanvas struct{}

func (raylibCanvas) Clear(c color.RGBA) {
	rl.ClearBackground(c)
}

func (raylibCanvas) FillCircle(x, y, r float32, c color.RGBA) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, r, c)
}

// Update handles input and processes one sample unless paused.
func (g *Game) Update() {
	g.handleInput()
	if !g.paused {
		g.Step()
	}
}

// Draw renders the ball and the HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()

	start := time.Now()
	g.renderer.Draw(raylibCanvas{}, g.ball)
	g.perf.Record(PhaseRender, time.Since(start))

	if g.hud != nil {
		g.drawHUD()
	}

	rl.EndDrawing()
}

// phaseTimes lists frame phases slowest first for the HUD.
func (g *Game) phaseTimes() []ui.PhaseTime {
	names := g.perf.SortedNames()
	phases := make([]ui.PhaseTime, len(names))
	for i, name := range names {
		phases[i] = ui.PhaseTime{Name: name, Avg: g.perf.Avg(name)}
	}
	return phases
}

func (g *Game) drawHUD() {
	data := ui.HUDData{
		Title:    g.cfg.Screen.Title,
		Source:   g.cfg.Sensor.Source,
		Ball:     g.ball,
		Counters: g.sim.Counters(),
		FPS:      rl.GetFPS(),
		Phases:   g.phaseTimes(),
		Total:    g.perf.Total(),
		Paused:   g.paused,
		Legacy:   g.sim.LegacyQuirks(),
		Recorded: g.rec.Count(),
	}
	if g.tilt != nil {
		tx, ty := g.tilt.Tilt()
		data.TiltX, data.TiltY, data.HasTilt = float32(tx), float32(ty), true
	}
	if g.done {
		data.Source += " (ended)"
	}

	actions := g.hud.Draw(data)
	if actions.TogglePause {
		g.SetPaused(!g.paused)
	}
	if actions.Recenter {
		g.Recenter()
	}
	g.SetLegacyQuirks(actions.Legacy)

	g.hud.DrawControls(int32(g.height), controlsLegend)
}
