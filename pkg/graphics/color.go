// Package graphics provides the RGB565 color type used throughout the
// widget pipeline and by rendering backends.
package graphics

import "image/color"

// Color is a 16-bit RGB565 color value: 5 bits red, 6 bits green, 5 bits
// blue. It is the native pixel format of the target display controllers,
// so widget styles carry it unconverted all the way to the flush buffer.
type Color uint16

// FromRGB packs 8-bit channels into an RGB565 value, dropping the low bits
// of each channel.
func FromRGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// Channels returns the 8-bit channel values for the color. The compressed
// channels are expanded with bit replication so that full-scale components
// map back to 255 rather than 248.
func (c Color) Channels() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA returns the color as an opaque standard-library color.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Palette values shared by the default widget definitions. ColorDefault is
// the zero value; style groups treat it as "not configured".
const (
	ColorDefault   Color = 0x0000
	ColorBlack     Color = 0x0000
	ColorWhite     Color = 0xFFFF
	ColorRed       Color = 0xF800
	ColorGreen     Color = 0x07E0
	ColorBlue      Color = 0x001F
	ColorLightGrey Color = 0x2104
)
