// Package palette maps escape-time results to RGB colors using a fixed
// four-band scheme. Points that never escape are painted black.
package palette

// Pixel is one RGB color value, three bytes, no alpha.
type Pixel struct {
	R, G, B uint8
}

// Black is the color of points inside the set.
var Black = Pixel{0, 0, 0}

// FromEscape returns the color for an escape-time result. The bands partition
// [0,255] with no overlap and no gap:
//
//	value <= 30          dark green-gray
//	31  <= value <= 90   yellow fading with the count
//	91  <= value <= 200  cyan fading with the count
//	201 <= value         deep blue
//
// The 255-value subtractions assume the iteration limit is at most 255
// (mandel.DefaultLimit). Larger values are clamped to 255 rather than allowed
// to wrap in 8-bit arithmetic.
func FromEscape(value int, escaped bool) Pixel {
	if !escaped {
		return Black
	}
	if value > 255 {
		value = 255
	}
	v := uint8(value)
	switch {
	case value <= 30:
		return Pixel{R: 50, G: 60, B: 50}
	case value <= 90:
		return Pixel{R: 255 - v, G: 255 - v, B: 20}
	case value <= 200:
		return Pixel{R: 40, G: 255 - v, B: 255 - v}
	default:
		return Pixel{R: 10, G: 20, B: 255 - v}
	}
}
