package renderer

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/tiltball/sim"
)

var (
	yellow  = color.RGBA{R: 255, G: 255, A: 255}
	magenta = color.RGBA{R: 255, B: 255, A: 255}
)

// recordingCanvas captures draw calls in order.
type recordingCanvas struct {
	calls []string
	x, y  float32
	r     float32
	fill  color.RGBA
	bg    color.RGBA
}

func (c *recordingCanvas) Clear(col color.RGBA) {
	c.calls = append(c.calls, "clear")
	c.bg = col
}

func (c *recordingCanvas) FillCircle(x, y, r float32, col color.RGBA) {
	c.calls = append(c.calls, "circle")
	c.x, c.y, c.r, c.fill = x, y, r, col
}

func TestBallRendererDrawOrder(t *testing.T) {
	var c recordingCanvas
	r := NewBallRenderer(yellow, magenta)
	r.Draw(&c, sim.Ball{Pos: sim.Vec2{X: 375, Y: 1000}, Radius: sim.Radius})

	if len(c.calls) != 2 || c.calls[0] != "clear" || c.calls[1] != "circle" {
		t.Fatalf("calls = %v, want [clear circle]", c.calls)
	}
	if c.bg != yellow || c.fill != magenta {
		t.Errorf("colors = %v / %v", c.bg, c.fill)
	}
	if c.x != 375 || c.y != 1000 || c.r != sim.Radius {
		t.Errorf("circle at (%v, %v) r=%v", c.x, c.y, c.r)
	}
}

func TestImageCanvasFillCircle(t *testing.T) {
	c := NewImageCanvas(200, 100)
	c.Clear(yellow)
	c.FillCircle(50, 50, 20, magenta)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{50, 50, magenta}, // center
		{35, 50, magenta}, // inside, left
		{50, 69, magenta}, // inside, bottom edge
		{75, 50, yellow},  // outside, right
		{50, 75, yellow},  // outside, bottom
		{150, 50, yellow}, // far away
		{0, 0, yellow},
	}
	for _, tt := range tests {
		if got := c.Img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestImageCanvasClipsAtEdges(t *testing.T) {
	c := NewImageCanvas(100, 100)
	c.Clear(yellow)
	// Partly off-canvas on every side; must not panic.
	c.FillCircle(0, 0, 30, magenta)
	c.FillCircle(100, 100, 30, magenta)

	if got := c.Img.RGBAAt(0, 0); got != magenta {
		t.Errorf("corner pixel = %v, want %v", got, magenta)
	}
	if got := c.Img.RGBAAt(99, 99); got != magenta {
		t.Errorf("corner pixel = %v, want %v", got, magenta)
	}
	if got := c.Img.RGBAAt(50, 50); got != yellow {
		t.Errorf("center pixel = %v, want %v", got, yellow)
	}
}

func TestImageCanvasSavePNG(t *testing.T) {
	c := NewImageCanvas(64, 32)
	NewBallRenderer(yellow, magenta).Draw(c, sim.Ball{Pos: sim.Vec2{X: 32, Y: 16}, Radius: 8})

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("bounds = %v", b)
	}
	r, g, b, _ := img.At(32, 16).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 255 {
		t.Errorf("center color = (%d, %d, %d), want magenta", r>>8, g>>8, b>>8)
	}
}
