// Package mandel implements the escape-time iteration that classifies points
// of the complex plane as inside or outside the Mandelbrot set.
package mandel

// DefaultLimit is the iteration limit used by the renderer. The palette's
// banding arithmetic subtracts escape counts from 255, so this must never be
// raised above 255 without reworking the palette.
const DefaultLimit = 255

// escapeRadiusSq is the squared magnitude beyond which the iteration is known
// to diverge.
const escapeRadiusSq = 4.0

// Escape runs z = z*z + c from z = 0 for at most limit steps. If the squared
// magnitude of z exceeds the escape radius it returns the iteration index at
// which that happened and escaped = true; otherwise escaped = false and the
// count is meaningless.
//
// Escape is a pure function: results for different points may be computed in
// any order, or concurrently, with no shared state.
func Escape(c complex128, limit int) (count int, escaped bool) {
	var z complex128
	for i := 0; i < limit; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > escapeRadiusSq {
			return i, true
		}
	}
	return 0, false
}
