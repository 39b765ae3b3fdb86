// Package term presents a framebuffer in the terminal. Each character
// cell shows two vertically stacked pixels with the upper-half-block rune,
// so a 480x384 panel needs a 480x192 terminal (or scroll room); panels
// larger than the terminal are clipped.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-scope/scopeui/pkg/display"
	"github.com/go-scope/scopeui/pkg/graphics"
)

// Presenter owns a tcell screen and blits framebuffer contents into it.
type Presenter struct {
	screen tcell.Screen
}

// New initializes the terminal screen.
func New() (*Presenter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Presenter{screen: screen}, nil
}

// Close restores the terminal.
func (p *Presenter) Close() {
	p.screen.Fini()
}

// Present blits the framebuffer to the terminal. Pixel row 2k becomes the
// foreground of terminal row k and row 2k+1 the background.
func (p *Presenter) Present(fb *display.Framebuffer) {
	cols, rows := p.screen.Size()

	width := fb.Width()
	if width > cols {
		width = cols
	}
	height := (fb.Height() + 1) / 2
	if height > rows {
		height = rows
	}

	for row := 0; row < height; row++ {
		for x := 0; x < width; x++ {
			upper := cellColor(fb.Pixel(x, row*2))
			lower := cellColor(fb.Pixel(x, row*2+1))
			style := tcell.StyleDefault.Foreground(upper).Background(lower)
			p.screen.SetContent(x, row, '▀', nil, style)
		}
	}
	p.screen.Show()
}

// Wait blocks until the user quits with q, Escape or Ctrl-C.
func (p *Presenter) Wait() {
	for {
		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return
			}
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}

func cellColor(c graphics.Color) tcell.Color {
	r, g, b := c.Channels()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
