package plane

import "image"

// EscapeTime reports whether c escapes the circle of radius 2 within limit
// iterations of z = z*z + c, starting from z = 0.
//
// If c escapes, it returns the iteration at which |z|² first exceeded 4 and
// true. If the limit is reached first, c may be a member of the Mandelbrot
// set and EscapeTime returns 0 and false.
func EscapeTime(c complex128, limit uint) (uint, bool) {
	var z complex128
	for i := uint(0); i < limit; i++ {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, true
		}
		z = z*z + c
	}
	return 0, false
}

// Escape is the escape-time result for a single pixel.
type Escape struct {
	Count   uint
	Escaped bool
}

// Sample runs EscapeTime for every pixel of a raster of size bounds over r.
// The result is indexed [row][column].
func Sample(bounds image.Point, r Rect, limit uint) [][]Escape {
	rows := make([][]Escape, 0, max(bounds.Y, 0))
	for y := 0; y < bounds.Y; y++ {
		row := make([]Escape, max(bounds.X, 0))
		for x := 0; x < bounds.X; x++ {
			c := r.PixelToPoint(bounds, image.Pt(x, y))
			n, ok := EscapeTime(c, limit)
			row[x] = Escape{Count: n, Escaped: ok}
		}
		rows = append(rows, row)
	}
	return rows
}
