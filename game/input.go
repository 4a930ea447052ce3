package game

import rl "github.com/gen2brain/raylib-go/raylib"

// keyboardTilt maps arrow keys / WASD to a tilt request.
func keyboardTilt() (x, y float32) {
	if rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA) {
		x--
	}
	if rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD) {
		x++
	}
	if rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW) {
		y--
	}
	if rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS) {
		y++
	}
	return x, y
}

// mouseTilt tilts toward the cursor while the left button is held; the
// window edge is full tilt.
func mouseTilt() (x, y float32) {
	if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		return 0, 0
	}
	halfW := float32(rl.GetScreenWidth()) / 2
	halfH := float32(rl.GetScreenHeight()) / 2
	if halfW == 0 || halfH == 0 {
		return 0, 0
	}
	pos := rl.GetMousePosition()
	return (pos.X - halfW) / halfW, (pos.Y - halfH) / halfH
}

// handleInput processes keyboard shortcuts and window resizes.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.SetPaused(!g.paused)
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.Recenter()
	}
	if rl.IsKeyPressed(rl.KeyL) {
		g.SetLegacyQuirks(!g.sim.LegacyQuirks())
	}
	if rl.IsKeyPressed(rl.KeyH) && g.hud != nil {
		g.hud.Toggle()
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int(rl.GetScreenWidth())
	h := int(rl.GetScreenHeight())
	if w == g.width && h == g.height {
		return
	}
	g.Resize(w, h)
}
