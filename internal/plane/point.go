package plane

import (
	"image"
	"strconv"

	"github.com/barlingo/mandelplane/internal/pair"
)

// Rect is the region of the complex plane covered by a raster.
type Rect struct {
	UpperLeft  complex128
	LowerRight complex128
}

// PixelToPoint maps pixel within a raster of the given bounds onto r.
func (r Rect) PixelToPoint(bounds, pixel image.Point) complex128 {
	return PixelToPoint(bounds, pixel, r.UpperLeft, r.LowerRight)
}

// PixelToPoint returns the point of the complex plane that corresponds to
// pixel in a raster of size bounds spanning upperLeft..lowerRight.
//
// bounds.X and bounds.Y are the raster width and height; pixel.X is the
// column and pixel.Y the row.
func PixelToPoint(bounds, pixel image.Point, upperLeft, lowerRight complex128) complex128 {
	width := real(lowerRight) - real(upperLeft)
	height := imag(upperLeft) - imag(lowerRight)

	return complex(
		real(upperLeft)+float64(pixel.X)*width/float64(bounds.X),
		imag(upperLeft)-float64(pixel.Y)*height/float64(bounds.Y),
	)
}

// ParseComplex parses "re,im" into a complex number.
func ParseComplex(s string) (complex128, bool) {
	p, ok := pair.Parse(s, ',', pair.Float64)
	if !ok {
		return 0, false
	}
	return complex(p.Left, p.Right), true
}

// ParseBounds parses "WxH" raster bounds.
func ParseBounds(s string) (image.Point, bool) {
	p, ok := pair.Parse(s, 'x', pair.Int)
	if !ok {
		return image.Point{}, false
	}
	return image.Pt(p.Left, p.Right), true
}

// ParsePixel parses "column,row".
func ParsePixel(s string) (image.Point, bool) {
	p, ok := pair.Parse(s, ',', pair.Int)
	if !ok {
		return image.Point{}, false
	}
	return image.Pt(p.Left, p.Right), true
}

// FormatComplex renders c in the "re,im" form accepted by ParseComplex.
func FormatComplex(c complex128) string {
	return strconv.FormatFloat(real(c), 'g', -1, 64) + "," + strconv.FormatFloat(imag(c), 'g', -1, 64)
}
