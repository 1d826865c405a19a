package plane

import "sort"

// Region is a named rectangle of the complex plane.
type Region struct {
	Name string
	Rect
}

// box builds a Rect from real and imaginary extents.
func box(xmin, xmax, ymin, ymax float64) Rect {
	return Rect{
		UpperLeft:  complex(xmin, ymax),
		LowerRight: complex(xmax, ymin),
	}
}

// Classic views of the Mandelbrot set.
var regions = map[string]Rect{
	// default view of the command-line tool
	"rust-book": {UpperLeft: complex(-1.20, 0.35), LowerRight: complex(-1, 0.20)},

	// the whole set
	"full": box(-2.5, 1, -1.25, 1.25),

	// dense filaments and repeating "seahorse" curls
	"seahorse-valley": box(-0.8, -0.7, 0.05, 0.15),

	// large bulb with trunk-like tendrils
	"elephant-valley": box(-1.85, -1.75, -0.10, -0.02),

	// small copy of the set with tight spiral arms
	"spiral-minibrot": box(-0.7435, -0.7420, 0.1310, 0.1325),

	// threefold symmetric spiral
	"triple-spiral": box(-0.7480, -0.7450, 0.0950, 0.0980),

	"valley-of-the-dragon": box(-0.7400, -0.7350, 0.1800, 0.1850),

	"minibrot-in-mini-spiral": box(-1.7390, -1.7375, -0.0235, -0.0220),
}

// DefaultRegion is used when neither flags nor configuration pick a rectangle.
const DefaultRegion = "rust-book"

// LookupRegion returns the rectangle registered under name.
func LookupRegion(name string) (Rect, bool) {
	r, ok := regions[name]
	return r, ok
}

// Regions returns all known regions sorted by name.
func Regions() []Region {
	out := make([]Region, 0, len(regions))
	for name, r := range regions {
		out = append(out, Region{Name: name, Rect: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
