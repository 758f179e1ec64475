// Package geom maps the output image's pixel grid onto a rectangular region
// of the complex plane.
package geom

import "fmt"

// Bounds is the output image size in pixels. Fixed for the duration of one
// render.
type Bounds struct {
	Width  int
	Height int
}

// Pixels returns the total pixel count.
func (b Bounds) Pixels() int {
	return b.Width * b.Height
}

// Validate rejects non-positive dimensions. Zero-width or zero-height images
// make the pixel-to-point mapping degenerate, so they are refused up front
// rather than given a defined behavior.
func (b Bounds) Validate() error {
	if b.Width < 1 || b.Height < 1 {
		return fmt.Errorf("image bounds must be at least 1x1, got %dx%d", b.Width, b.Height)
	}
	return nil
}

// Rect is the region of the complex plane covered by the image: UpperLeft
// maps to pixel (0,0) and LowerRight lies just past pixel (width-1,height-1).
type Rect struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Validate rejects rectangles whose corners are vertically inverted. The
// imaginary axis is traversed top to bottom, so the upper-left corner must
// not sit below the lower-right one; otherwise the height span goes negative.
func (r Rect) Validate() error {
	if imag(r.UpperLeft) < imag(r.LowerRight) {
		return fmt.Errorf("upper left imaginary part %g is below lower right %g",
			imag(r.UpperLeft), imag(r.LowerRight))
	}
	return nil
}

// PixelToPoint returns the point on the complex plane corresponding to pixel
// (x, y). The mapping is half-open: pixel (0,0) lands exactly on UpperLeft,
// while (width-1, height-1) only approaches LowerRight as the bounds grow.
//
// Callers must pre-validate bounds and rect; there are no error paths here.
func PixelToPoint(b Bounds, x, y int, r Rect) complex128 {
	spanRe := real(r.LowerRight) - real(r.UpperLeft)
	// Image y grows downward while the imaginary axis grows upward, so the
	// imaginary value decreases as y increases.
	spanIm := imag(r.UpperLeft) - imag(r.LowerRight)

	return complex(
		real(r.UpperLeft)+float64(x)*spanRe/float64(b.Width),
		imag(r.UpperLeft)-float64(y)*spanIm/float64(b.Height),
	)
}
