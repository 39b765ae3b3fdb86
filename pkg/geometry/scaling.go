package geometry

import "math"

// DimensionScaling linearly scales a dimension by a percentage. The
// percentage acts directly on the dimension: 60 percent of a 480 pixel
// span is 288 pixels. The result is truncated toward zero.
func DimensionScaling(percent, dimension int) int {
	return int(float64(percent) / 100 * float64(dimension))
}

// AreaScaling scales a dimension so that the resulting area matches the
// percentage. Both dimensions of a region scaled this way shrink by
// sqrt(percent/100), which makes width*height equal the requested fraction
// of the original area rather than scaling each axis independently. The
// result is truncated toward zero.
func AreaScaling(percent, dimension int) int {
	return int(math.Sqrt(float64(percent)/100) * float64(dimension))
}
