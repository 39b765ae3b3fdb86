// Package geometry provides the integer pixel geometry shared by the widget
// configuration pipeline and its rendering backends.
//
// All rectangles and segments use inclusive coordinates: both endpoints are
// part of the region, so a boundary from (0,0) to (479,319) covers a
// 480x320 pixel area. This matches the addressing model of small display
// controllers, where flush windows are specified corner to corner.
package geometry

// Boundary is an inclusive pixel rectangle used as a custom widget's
// coordinate frame. A valid boundary satisfies X2 >= X1 and Y2 >= Y1.
type Boundary struct {
	X1, Y1 int
	X2, Y2 int
}

// FromSize constructs a boundary spanning (0,0) to (width-1, height-1).
func FromSize(width, height int) Boundary {
	return Boundary{X2: width - 1, Y2: height - 1}
}

// Width returns the inclusive pixel span along the X axis.
func (b Boundary) Width() int {
	return b.X2 - b.X1 + 1
}

// Height returns the inclusive pixel span along the Y axis.
func (b Boundary) Height() int {
	return b.Y2 - b.Y1 + 1
}

// Valid reports whether the boundary describes a non-degenerate region.
func (b Boundary) Valid() bool {
	return b.X2 >= b.X1 && b.Y2 >= b.Y1
}

// Contains reports whether the point (x, y) lies inside the boundary.
func (b Boundary) Contains(x, y int) bool {
	return x >= b.X1 && x <= b.X2 && y >= b.Y1 && y <= b.Y2
}

// LineSegment is a line between two inclusive endpoints in absolute pixel
// coordinates.
type LineSegment struct {
	X1, Y1 int
	X2, Y2 int
}

// IsZero reports whether the segment is the all-zero value. Geometry
// lookups return the zero segment as an out-of-range sentinel.
func (s LineSegment) IsZero() bool {
	return s == LineSegment{}
}
