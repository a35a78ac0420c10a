package displaylist

import (
	"errors"
	"math"

	"github.com/gogpu/displaylist/geom"
)

// ErrEmptyPath is returned when a point-path call receives no points.
// The first point is consumed unconditionally by the path walk, so an
// empty sequence fails fast instead of producing undefined geometry.
var ErrEmptyPath = errors.New("displaylist: empty point sequence")

// DefaultSmoothness is the boundary vertex count used to polygon-
// approximate an ellipse when the caller does not specify one.
const DefaultSmoothness = 32

// --------------------------------------------------------------------------
// Low-Level Path Calls
// --------------------------------------------------------------------------

// BeginPath records the start of a new sub-path.
func (g *Graphics) BeginPath() {
	g.buf.Append(BeginPathCommand{})
}

// ClosePath records closing the current sub-path.
func (g *Graphics) ClosePath() {
	g.buf.Append(ClosePathCommand{})
}

// FillPath records filling the accumulated sub-paths with the current
// fill style. The path stays open for a subsequent StrokePath.
func (g *Graphics) FillPath() {
	g.buf.Append(FillPathCommand{})
}

// StrokePath records stroking the accumulated sub-paths with the current
// line style.
func (g *Graphics) StrokePath() {
	g.buf.Append(StrokePathCommand{})
}

// MoveTo records starting a new point in the current sub-path.
func (g *Graphics) MoveTo(x, y float64) {
	g.buf.Append(MoveToCommand{X: x, Y: y})
}

// LineTo records extending the current sub-path with a straight segment.
func (g *Graphics) LineTo(x, y float64) {
	g.buf.Append(LineToCommand{X: x, Y: y})
}

// MoveFxTo records an extended MoveTo carrying per-segment stroke width
// and color. Alpha is fixed at 1.
func (g *Graphics) MoveFxTo(x, y, width float64, color uint32) {
	g.buf.Append(MoveFxToCommand{X: x, Y: y, Width: width, Color: color & 0xffffff, Alpha: 1})
}

// LineFxTo records an extended LineTo carrying per-segment stroke width
// and color. Alpha is fixed at 1.
func (g *Graphics) LineFxTo(x, y, width float64, color uint32) {
	g.buf.Append(LineFxToCommand{X: x, Y: y, Width: width, Color: color & 0xffffff, Alpha: 1})
}

// Arc records a circular arc segment in the current sub-path. Angles are
// in radians; anticlockwise selects the sweep direction. The arc is not
// pre-tessellated.
func (g *Graphics) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	g.buf.Append(ArcCommand{
		X: x, Y: y, Radius: radius,
		StartAngle: startAngle, EndAngle: endAngle,
		Anticlockwise: anticlockwise,
	})
}

// Slice builds a pie-slice path: center, arc, closed back to center.
// It only builds the path; callers issue FillPath or StrokePath to
// render it. Pass anticlockwise=false for the conventional clockwise
// slice.
func (g *Graphics) Slice(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	g.BeginPath()
	g.MoveTo(x, y)
	g.Arc(x, y, radius, startAngle, endAngle, anticlockwise)
	g.ClosePath()
}

// --------------------------------------------------------------------------
// Circles
// --------------------------------------------------------------------------

// FillCircle fills a circle. The circle is recorded as a single full-turn
// arc; the backend tessellates it at replay time.
func (g *Graphics) FillCircle(x, y, radius float64) {
	g.BeginPath()
	g.Arc(x, y, radius, 0, 2*math.Pi, false)
	g.FillPath()
}

// StrokeCircle strokes a circle outline.
func (g *Graphics) StrokeCircle(x, y, radius float64) {
	g.BeginPath()
	g.Arc(x, y, radius, 0, 2*math.Pi, false)
	g.StrokePath()
}

// FillCircleShape fills a circle given as a geometry value.
func (g *Graphics) FillCircleShape(c geom.Circle) {
	g.FillCircle(c.X, c.Y, c.Radius)
}

// StrokeCircleShape strokes a circle given as a geometry value.
func (g *Graphics) StrokeCircleShape(c geom.Circle) {
	g.StrokeCircle(c.X, c.Y, c.Radius)
}

// --------------------------------------------------------------------------
// Rectangles
// --------------------------------------------------------------------------

// FillRect fills an axis-aligned rectangle with a single command.
func (g *Graphics) FillRect(x, y, width, height float64) {
	g.buf.Append(FillRectCommand{X: x, Y: y, Width: width, Height: height})
}

// FillRectShape fills a rectangle given as a geometry value.
func (g *Graphics) FillRectShape(r geom.Rect) {
	g.FillRect(r.X, r.Y, r.Width, r.Height)
}

// StrokeRect strokes a rectangle outline as four independent edge
// strokes. The top and bottom edges are extended on both ends by half
// the current line width so butt or round caps still produce square
// corners; the left and right edges are drawn at full height without
// compensation. Set the line style before calling StrokeRect, since the
// extension uses the most recently cached width.
func (g *Graphics) StrokeRect(x, y, width, height float64) {
	lw := g.lineWidth
	hw := lw / 2
	minx := x - hw

	// Left edge
	g.BeginPath()
	g.MoveTo(x, y)
	g.LineTo(x, y+height)
	g.StrokePath()

	// Right edge
	g.BeginPath()
	g.MoveTo(x+width, y)
	g.LineTo(x+width, y+height)
	g.StrokePath()

	// Top edge
	g.BeginPath()
	g.MoveTo(minx, y)
	g.LineTo(minx+width+lw, y)
	g.StrokePath()

	// Bottom edge
	g.BeginPath()
	g.MoveTo(minx, y+height)
	g.LineTo(minx+width+lw, y+height)
	g.StrokePath()
}

// StrokeRectShape strokes a rectangle given as a geometry value.
func (g *Graphics) StrokeRectShape(r geom.Rect) {
	g.StrokeRect(r.X, r.Y, r.Width, r.Height)
}

// FillPoint fills a square centered on (x, y). A size below 1 collapses
// to a single-unit square at the unmodified coordinate, with no
// centering offset.
func (g *Graphics) FillPoint(x, y, size float64) {
	if size < 1 {
		size = 1
	} else {
		x -= size / 2
		y -= size / 2
	}
	g.FillRect(x, y, size, size)
}

// FillPointShape fills a point given as a geometry value.
func (g *Graphics) FillPointShape(p geom.Point, size float64) {
	g.FillPoint(p.X, p.Y, size)
}

// --------------------------------------------------------------------------
// Triangles
// --------------------------------------------------------------------------

// FillTriangle fills a triangle with a single command; the backend draws
// it directly rather than decomposing it into line segments.
func (g *Graphics) FillTriangle(x0, y0, x1, y1, x2, y2 float64) {
	g.buf.Append(FillTriangleCommand{X0: x0, Y0: y0, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// StrokeTriangle strokes a triangle outline with a single command.
func (g *Graphics) StrokeTriangle(x0, y0, x1, y1, x2, y2 float64) {
	g.buf.Append(StrokeTriangleCommand{X0: x0, Y0: y0, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// FillTriangleShape fills a triangle given as a geometry value.
func (g *Graphics) FillTriangleShape(t geom.Triangle) {
	g.FillTriangle(t.X1, t.Y1, t.X2, t.Y2, t.X3, t.Y3)
}

// StrokeTriangleShape strokes a triangle given as a geometry value.
func (g *Graphics) StrokeTriangleShape(t geom.Triangle) {
	g.StrokeTriangle(t.X1, t.Y1, t.X2, t.Y2, t.X3, t.Y3)
}

// --------------------------------------------------------------------------
// Lines
// --------------------------------------------------------------------------

// LineBetween strokes a single line segment between two points.
func (g *Graphics) LineBetween(x1, y1, x2, y2 float64) {
	g.BeginPath()
	g.MoveTo(x1, y1)
	g.LineTo(x2, y2)
	g.StrokePath()
}

// StrokeLineShape strokes a line segment given as a geometry value.
func (g *Graphics) StrokeLineShape(l geom.Line) {
	g.LineBetween(l.X1, l.Y1, l.X2, l.Y2)
}

// --------------------------------------------------------------------------
// Point Paths
// --------------------------------------------------------------------------

// StrokePoints strokes a path through points[0:endIndex]. If endIndex is
// not a valid index bound (endIndex <= 0 or beyond the slice), the full
// sequence is used, so prefixes of a longer point list can be drawn
// without copying. If autoClose is set, an extra segment is drawn back
// to the first point before stroking.
//
// An empty point sequence returns ErrEmptyPath.
func (g *Graphics) StrokePoints(points []geom.Point, endIndex int, autoClose bool) error {
	if len(points) == 0 {
		return ErrEmptyPath
	}
	g.walkPoints(points, endIndex, autoClose)
	g.StrokePath()
	return nil
}

// FillPoints fills the polygon described by points[0:endIndex], with the
// same index-range and autoClose semantics as StrokePoints.
//
// An empty point sequence returns ErrEmptyPath.
func (g *Graphics) FillPoints(points []geom.Point, endIndex int, autoClose bool) error {
	if len(points) == 0 {
		return ErrEmptyPath
	}
	g.walkPoints(points, endIndex, autoClose)
	g.FillPath()
	return nil
}

// walkPoints records the begin/move/line expansion shared by the
// point-path calls. points must be non-empty.
func (g *Graphics) walkPoints(points []geom.Point, endIndex int, autoClose bool) {
	if endIndex <= 0 || endIndex > len(points) {
		endIndex = len(points)
	}

	g.BeginPath()
	g.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:endIndex] {
		g.LineTo(p.X, p.Y)
	}
	if autoClose {
		g.LineTo(points[0].X, points[0].Y)
	}
}

// --------------------------------------------------------------------------
// Ellipses
// --------------------------------------------------------------------------

// FillEllipse fills an ellipse centered on (x, y) with the given full
// width and height. Ellipses are always polygon-approximated, never
// recorded as a native curve: the boundary is sampled into smoothness
// vertices and filled through the point-path algorithm with autoClose.
// A smoothness below 1 uses DefaultSmoothness. Higher values trade
// buffer size for curve fidelity.
func (g *Graphics) FillEllipse(x, y, width, height float64, smoothness int) {
	g.FillEllipseShape(geom.Ellipse{X: x, Y: y, Width: width, Height: height}, smoothness)
}

// StrokeEllipse strokes an ellipse outline, with the same sampling
// semantics as FillEllipse.
func (g *Graphics) StrokeEllipse(x, y, width, height float64, smoothness int) {
	g.StrokeEllipseShape(geom.Ellipse{X: x, Y: y, Width: width, Height: height}, smoothness)
}

// FillEllipseShape fills an ellipse given as a geometry value.
func (g *Graphics) FillEllipseShape(e geom.Ellipse, smoothness int) {
	if smoothness < 1 {
		smoothness = DefaultSmoothness
	}
	pts := e.Points(smoothness)
	g.walkPoints(pts, len(pts), true)
	g.FillPath()
}

// StrokeEllipseShape strokes an ellipse given as a geometry value.
func (g *Graphics) StrokeEllipseShape(e geom.Ellipse, smoothness int) {
	if smoothness < 1 {
		smoothness = DefaultSmoothness
	}
	pts := e.Points(smoothness)
	g.walkPoints(pts, len(pts), true)
	g.StrokePath()
}
