// Package plane maps raster pixels onto a rectangle of the complex plane and
// runs the Mandelbrot escape-time test on the resulting points.
//
// Points are complex128 values: real part on the horizontal axis, imaginary
// part on the vertical axis. Row 0 of a raster maps to the imaginary part of
// the rectangle's upper-left corner, so the image is not flipped.
//
// Nothing here validates its input. Zero-sized bounds produce Inf or NaN
// coordinates and pixels outside the raster extrapolate beyond the rectangle.
package plane
