package fbrender

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/go-scope/scopeui/pkg/geometry"
	"github.com/go-scope/scopeui/pkg/graphics"
	"github.com/go-scope/scopeui/pkg/render"
)

// Canvas is the offscreen pixel buffer every object paints into. It
// implements render.Layer so draw callbacks can stroke lines directly, and
// exposes a draw.Image adapter for text rasterization.
type Canvas struct {
	width  int
	height int
	fill   graphics.Color
	pix    []graphics.Color
}

// NewCanvas allocates a canvas cleared to the fill color.
func NewCanvas(width, height int, fill graphics.Color) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		fill:   fill,
		pix:    make([]graphics.Color, width*height),
	}
	c.Clear()
	return c
}

// Clear resets every pixel to the fill color.
func (c *Canvas) Clear() {
	for i := range c.pix {
		c.pix[i] = c.fill
	}
}

// Pixels returns the backing buffer in row-major order.
func (c *Canvas) Pixels() []graphics.Color {
	return c.pix
}

// Bounds returns the full canvas as an inclusive boundary.
func (c *Canvas) Bounds() geometry.Boundary {
	return geometry.FromSize(c.width, c.height)
}

// SetPixel writes one pixel; coordinates outside the canvas are dropped.
func (c *Canvas) SetPixel(x, y int, col graphics.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = col
}

// Pixel reads one pixel; coordinates outside the canvas read as zero.
func (c *Canvas) Pixel(x, y int) graphics.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.pix[y*c.width+x]
}

// FillRect fills an inclusive rectangle, clipped to the canvas.
func (c *Canvas) FillRect(b geometry.Boundary, col graphics.Color) {
	for y := b.Y1; y <= b.Y2; y++ {
		for x := b.X1; x <= b.X2; x++ {
			c.SetPixel(x, y, col)
		}
	}
}

// StrokeRect draws a rectangle edge of the given width, growing inward.
func (c *Canvas) StrokeRect(b geometry.Boundary, width int, col graphics.Color, side render.BorderSide) {
	for i := 0; i < width; i++ {
		if side&render.BorderSideTop != 0 {
			c.hline(b.X1, b.X2, b.Y1+i, 1, col)
		}
		if side&render.BorderSideBottom != 0 {
			c.hline(b.X1, b.X2, b.Y2-i, 1, col)
		}
		if side&render.BorderSideLeft != 0 {
			c.vline(b.X1+i, b.Y1, b.Y2, 1, col)
		}
		if side&render.BorderSideRight != 0 {
			c.vline(b.X2-i, b.Y1, b.Y2, 1, col)
		}
	}
}

// DrawLine strokes a line between two inclusive endpoints. Axis-aligned
// lines honor the stroke thickness, growing toward positive x or y;
// diagonals fall back to a single-pixel Bresenham walk.
func (c *Canvas) DrawLine(seg geometry.LineSegment, style render.LineStyle) {
	if seg.IsZero() {
		return
	}
	thickness := style.Thickness
	if thickness < 1 {
		thickness = 1
	}

	switch {
	case seg.Y1 == seg.Y2:
		c.hline(seg.X1, seg.X2, seg.Y1, thickness, style.Color)
	case seg.X1 == seg.X2:
		c.vline(seg.X1, seg.Y1, seg.Y2, thickness, style.Color)
	default:
		c.bresenham(seg, style.Color)
	}
}

func (c *Canvas) hline(x1, x2, y, thickness int, col graphics.Color) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for t := 0; t < thickness; t++ {
		for x := x1; x <= x2; x++ {
			c.SetPixel(x, y+t, col)
		}
	}
}

func (c *Canvas) vline(x, y1, y2, thickness int, col graphics.Color) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for t := 0; t < thickness; t++ {
		for y := y1; y <= y2; y++ {
			c.SetPixel(x+t, y, col)
		}
	}
}

func (c *Canvas) bresenham(seg geometry.LineSegment, col graphics.Color) {
	x1, y1, x2, y2 := seg.X1, seg.Y1, seg.X2, seg.Y2
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		c.SetPixel(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// offsetLayer translates draw commands into an object's absolute frame.
// Custom widgets stroke in their own coordinate space rooted at (0,0); the
// renderer positions the object elsewhere on screen.
type offsetLayer struct {
	canvas *Canvas
	dx     int
	dy     int
}

func (l offsetLayer) DrawLine(seg geometry.LineSegment, style render.LineStyle) {
	if seg.IsZero() {
		return
	}
	l.canvas.DrawLine(geometry.LineSegment{
		X1: seg.X1 + l.dx,
		Y1: seg.Y1 + l.dy,
		X2: seg.X2 + l.dx,
		Y2: seg.Y2 + l.dy,
	}, style)
}

// Image adapts the canvas to draw.Image for font rasterization.
func (c *Canvas) Image() draw.Image {
	return canvasImage{c}
}

type canvasImage struct {
	c *Canvas
}

func (ci canvasImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (ci canvasImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, ci.c.width, ci.c.height)
}

func (ci canvasImage) At(x, y int) color.Color {
	return ci.c.Pixel(x, y).RGBA()
}

func (ci canvasImage) Set(x, y int, col color.Color) {
	r, g, b, _ := col.RGBA()
	ci.c.SetPixel(x, y, graphics.FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
}
