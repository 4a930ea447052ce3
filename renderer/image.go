package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// ImageCanvas rasterizes into an in-memory RGBA image. Used for headless
// snapshots.
type ImageCanvas struct {
	Img *image.RGBA
}

// NewImageCanvas allocates a width×height canvas.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{Img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Clear fills the whole image.
func (c *ImageCanvas) Clear(col color.RGBA) {
	draw.Draw(c.Img, c.Img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// FillCircle fills every pixel whose center lies inside the circle.
func (c *ImageCanvas) FillCircle(x, y, r float32, col color.RGBA) {
	b := c.Img.Bounds()
	minX := max(int(x-r), b.Min.X)
	maxX := min(int(x+r)+1, b.Max.X)
	minY := max(int(y-r), b.Min.Y)
	maxY := min(int(y+r)+1, b.Max.Y)
	r2 := r * r

	for py := minY; py < maxY; py++ {
		dy := float32(py) + 0.5 - y
		for px := minX; px < maxX; px++ {
			dx := float32(px) + 0.5 - x
			if dx*dx+dy*dy <= r2 {
				c.Img.SetRGBA(px, py, col)
			}
		}
	}
}

// SavePNG writes the image to path.
func (c *ImageCanvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := png.Encode(f, c.Img); err != nil {
		f.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return f.Close()
}
