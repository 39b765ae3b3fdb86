// Package display abstracts the physical display driver. The pipeline
// treats the panel as an external collaborator reachable through Driver:
// it powers the hardware up once and pushes rendered pixel windows to it,
// nothing more. Orientation handling, transfer protocol and power
// sequencing belong to the driver implementation.
package display

import (
	"github.com/go-scope/scopeui/pkg/geometry"
	"github.com/go-scope/scopeui/pkg/graphics"
)

// Rotation is the panel mounting orientation.
type Rotation int

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// Driver is the hardware display collaborator.
type Driver interface {
	// Init powers up the panel, applies the configured rotation and fills
	// the screen with the initial color.
	Init() error

	// Flush writes the row-major pixel data covering the inclusive area to
	// the panel, then calls done (if non-nil) to signal that the transfer
	// buffer may be reused.
	Flush(area geometry.Boundary, pixels []graphics.Color, done func())

	// Width and Height report the post-rotation resolution in pixels.
	Width() int
	Height() int

	// Controller identifies the panel controller (e.g. "HX8357D").
	Controller() string

	Rotation() Rotation

	// FillColor is the background color Init paints the panel with.
	FillColor() graphics.Color
}
