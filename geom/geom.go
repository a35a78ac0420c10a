// Package geom provides the 2D shape primitives accepted by the
// displaylist shape builder. Shapes are read-only value inputs: the
// builder converts them into commands and never retains them.
package geom

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Line is a line segment between two endpoints.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return math.Hypot(l.X2-l.X1, l.Y2-l.Y1)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Circle is a circle defined by its center and radius.
type Circle struct {
	X, Y   float64
	Radius float64
}

// Triangle is a triangle defined by three vertices.
type Triangle struct {
	X1, Y1 float64
	X2, Y2 float64
	X3, Y3 float64
}

// Ellipse is an axis-aligned ellipse defined by its center and its full
// width and height.
type Ellipse struct {
	X, Y          float64
	Width, Height float64
}

// Points samples n evenly spaced boundary points, starting at angle 0
// (the rightmost point) and winding clockwise in screen coordinates.
// If n < 3 it is raised to 3, the smallest count that closes to a
// non-degenerate polygon.
func (e Ellipse) Points(n int) []Point {
	if n < 3 {
		n = 3
	}
	rx := e.Width / 2
	ry := e.Height / 2
	pts := make([]Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		a := float64(i) * step
		pts[i] = Point{
			X: e.X + rx*math.Cos(a),
			Y: e.Y + ry*math.Sin(a),
		}
	}
	return pts
}
