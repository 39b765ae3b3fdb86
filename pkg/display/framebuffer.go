package display

import (
	"github.com/go-scope/scopeui/pkg/geometry"
	"github.com/go-scope/scopeui/pkg/graphics"
)

// Framebuffer is an in-memory Driver backed by a single RGB565 pixel
// array. The simulator presents it on a terminal; tests inspect it
// directly. The buffer is allocated once at construction.
type Framebuffer struct {
	width  int
	height int
	fill   graphics.Color
	pixels []graphics.Color
}

// NewFramebuffer returns a framebuffer of the given resolution with the
// given initial fill color.
func NewFramebuffer(width, height int, fill graphics.Color) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		fill:   fill,
		pixels: make([]graphics.Color, width*height),
	}
}

// Init fills the buffer with the initial color.
func (f *Framebuffer) Init() error {
	for i := range f.pixels {
		f.pixels[i] = f.fill
	}
	return nil
}

// Flush copies the row-major pixel data into the buffer region covered by
// the inclusive area, clipping rows and columns that fall outside the
// panel, then signals completion.
func (f *Framebuffer) Flush(area geometry.Boundary, pixels []graphics.Color, done func()) {
	rowLen := area.Width()
	for y := area.Y1; y <= area.Y2; y++ {
		if y < 0 || y >= f.height {
			continue
		}
		srcRow := (y - area.Y1) * rowLen
		for x := area.X1; x <= area.X2; x++ {
			if x < 0 || x >= f.width {
				continue
			}
			src := srcRow + (x - area.X1)
			if src >= len(pixels) {
				continue
			}
			f.pixels[y*f.width+x] = pixels[src]
		}
	}
	if done != nil {
		done()
	}
}

func (f *Framebuffer) Width() int { return f.width }
func (f *Framebuffer) Height() int { return f.height }
func (f *Framebuffer) Controller() string { return "MEMFB" }
func (f *Framebuffer) Rotation() Rotation { return Rotation0 }
func (f *Framebuffer) FillColor() graphics.Color { return f.fill }

// Pixel returns the color at (x, y), or 0 outside the panel.
func (f *Framebuffer) Pixel(x, y int) graphics.Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.pixels[y*f.width+x]
}

// SetPixel writes the color at (x, y), ignoring points outside the panel.
func (f *Framebuffer) SetPixel(x, y int, c graphics.Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = c
}
