package fbrender

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-scope/scopeui/pkg/geometry"
	"github.com/go-scope/scopeui/pkg/graphics"
	"github.com/go-scope/scopeui/pkg/render"
)

// face returns the font face for a typography style. Font files are not
// shipped with the simulator; every name resolves to the bundled bitmap
// face.
func face(style *render.TextStyle) font.Face {
	return basicfont.Face7x13
}

// drawLabel rasterizes the object's label text into its rectangle,
// honoring color, alignment and letter spacing from the typography style.
// Text never spills outside the rectangle: runes past the right edge are
// clipped regardless of long mode, which is the closest software
// equivalent of the firmware backend's clip behavior.
func (r *Renderer) drawLabel(rect geometry.Boundary, o *object) {
	text := o.label
	if text == "" {
		return
	}

	style := o.text
	textColor := graphics.ColorBlack
	letterSpacing := 0
	align := render.TextAlignAuto
	if style != nil {
		textColor = style.Color
		letterSpacing = style.LetterSpacing
		align = style.Align
	}

	f := face(style)
	metrics := f.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	width := textWidth(f, text, letterSpacing)
	x := rect.X1
	switch align {
	case render.TextAlignCenter:
		x += (rect.Width() - width) / 2
	case render.TextAlignRight:
		x += rect.Width() - width
	}
	if x < rect.X1 {
		x = rect.X1
	}
	baseline := rect.Y1 + (rect.Height()-ascent-descent)/2 + ascent

	drawer := font.Drawer{
		Dst:  r.canvas.Image(),
		Src:  image.NewUniform(textColor.RGBA()),
		Face: f,
		Dot:  fixed.P(x, baseline),
	}
	for _, ru := range text {
		if drawer.Dot.X.Ceil() > rect.X2 {
			break
		}
		drawer.DrawString(string(ru))
		drawer.Dot.X += fixed.I(letterSpacing)
	}
}

func textWidth(f font.Face, text string, letterSpacing int) int {
	width := font.MeasureString(f, text)
	n := len([]rune(text))
	if n > 1 {
		width += fixed.I(letterSpacing * (n - 1))
	}
	return width.Ceil()
}
