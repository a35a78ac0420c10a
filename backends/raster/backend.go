// Package raster provides the built-in raster backend for displaylist
// replay. It renders command buffers to pixel images using gg.Context.
//
// The raster backend serves multiple purposes:
//   - Reference implementation for other backends
//   - Pixel output for snapshot capture (Graphics.CaptureToImage)
//   - Pixel-accurate comparison testing
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/displaylist/backends/raster"
//
//	b := displaylist.MustBackend("raster")
//	if err := g.Render(b); err != nil {
//	    // replay error (e.g. unbalanced restore)
//	}
//	img := b.(displaylist.ImageBackend).Image()
package raster

import (
	"errors"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/displaylist"
)

// ErrUnbalancedRestore is reported by End when the replay contained a
// Restore with no matching prior Save.
var ErrUnbalancedRestore = errors.New("raster: restore without matching save")

func init() {
	displaylist.Register("raster", func() displaylist.Backend {
		return NewBackend()
	})
}

// Backend renders replayed command buffers to a pixel image using
// gg.Context. It implements displaylist.Backend and
// displaylist.ImageBackend.
//
// The backend keeps its own save/restore depth so it can report
// unbalanced state commands, which the command buffer records without
// validation.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int

	// hasCurrent tracks whether the current sub-path has a point, so
	// an Arc knows whether to connect from it or to start fresh.
	hasCurrent bool

	// Tracked styles, applied to the context right before each fill or
	// stroke operation. gg shares one brush between fill and stroke, so
	// the two styles cannot both live in the context at once.
	state drawState

	// stateStack holds style state alongside gg's transform stack, so
	// Restore undoes style mutations too.
	stateStack []drawState
	err        error // first error seen during replay
}

// drawState is the style state bracketed by Save/Restore. The transform
// is pushed separately through gg.Context.
type drawState struct {
	fill      gg.RGBA
	stroke    gg.RGBA
	lineWidth float64
}

var (
	_ displaylist.Backend      = (*Backend)(nil)
	_ displaylist.ImageBackend = (*Backend)(nil)
)

// NewBackend creates a new raster backend. The backend must be
// initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin initializes the backend for a replay at the given dimensions.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.hasCurrent = false
	b.state = drawState{
		fill:      gg.RGBA{A: 1},
		stroke:    gg.RGBA{A: 1},
		lineWidth: 1,
	}
	b.stateStack = b.stateStack[:0]
	b.err = nil
	return nil
}

// End finalizes the replay and returns the first error recorded while
// dispatching commands.
func (b *Backend) End() error {
	return b.err
}

// fail records the first replay error; later errors are dropped.
func (b *Backend) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Save pushes the transform and style state.
func (b *Backend) Save() {
	b.stateStack = append(b.stateStack, b.state)
	b.ctx.Push()
}

// Restore pops the transform and style state. A Restore below the
// replay's base state records ErrUnbalancedRestore and is otherwise
// ignored.
func (b *Backend) Restore() {
	if len(b.stateStack) == 0 {
		b.fail(ErrUnbalancedRestore)
		return
	}
	b.state = b.stateStack[len(b.stateStack)-1]
	b.stateStack = b.stateStack[:len(b.stateStack)-1]
	b.ctx.Pop()
}

// Translate translates the current transform.
func (b *Backend) Translate(x, y float64) {
	b.ctx.Translate(x, y)
}

// Scale scales the current transform.
func (b *Backend) Scale(x, y float64) {
	b.ctx.Scale(x, y)
}

// Rotate rotates the current transform.
func (b *Backend) Rotate(angle float64) {
	b.ctx.Rotate(angle)
}

// SetLineStyle sets the stroke width, color and alpha.
func (b *Backend) SetLineStyle(width float64, color uint32, alpha float64) {
	b.state.lineWidth = width
	b.state.stroke = rgb(color, alpha)
}

// SetFillStyle sets the fill color and alpha.
func (b *Backend) SetFillStyle(color uint32, alpha float64) {
	b.state.fill = rgb(color, alpha)
}

// applyFill loads the tracked fill style into the context.
func (b *Backend) applyFill() {
	b.ctx.SetFillBrush(gg.Solid(b.state.fill))
}

// applyStroke loads the tracked stroke style into the context.
func (b *Backend) applyStroke() {
	b.ctx.SetLineWidth(b.state.lineWidth)
	b.ctx.SetStrokeBrush(gg.Solid(b.state.stroke))
}

// BeginPath starts a new path, discarding any open one.
func (b *Backend) BeginPath() {
	b.ctx.ClearPath()
	b.hasCurrent = false
}

// ClosePath closes the current sub-path.
func (b *Backend) ClosePath() {
	b.ctx.ClosePath()
}

// MoveTo starts a new point in the current sub-path.
func (b *Backend) MoveTo(x, y float64) {
	b.ctx.MoveTo(x, y)
	b.hasCurrent = true
}

// LineTo extends the current sub-path.
func (b *Backend) LineTo(x, y float64) {
	b.ctx.LineTo(x, y)
	b.hasCurrent = true
}

// MoveFxTo applies the per-segment stroke style, then moves.
func (b *Backend) MoveFxTo(x, y, width float64, color uint32, alpha float64) {
	b.SetLineStyle(width, color, alpha)
	b.MoveTo(x, y)
}

// LineFxTo applies the per-segment stroke style, then draws.
//
// gg strokes a whole path with one style, so the per-segment width and
// color take effect from the following StrokePath onward rather than
// mid-path. Solid-style buffers are unaffected.
func (b *Backend) LineFxTo(x, y, width float64, color uint32, alpha float64) {
	b.SetLineStyle(width, color, alpha)
	b.LineTo(x, y)
}

// Arc appends a circular arc to the current sub-path, connecting from
// the current point if there is one (so a pie slice's center MoveTo
// gains a spoke to the arc start).
func (b *Backend) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	// Normalize the sweep into the requested direction.
	const twoPi = 2 * math.Pi
	if anticlockwise {
		for endAngle > startAngle {
			endAngle -= twoPi
		}
	} else {
		for endAngle < startAngle {
			endAngle += twoPi
		}
	}
	sweep := endAngle - startAngle
	if sweep == 0 {
		return
	}

	segments := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(segments)
	for i := 0; i < segments; i++ {
		a1 := startAngle + float64(i)*step
		b.arcSegment(x, y, radius, a1, a1+step)
	}
}

// arcSegment approximates one arc span (at most a quarter turn, either
// direction) with a single cubic Bezier. The signed control-point
// formula handles negative sweeps.
func (b *Backend) arcSegment(cx, cy, radius, a1, a2 float64) {
	da := a2 - a1
	alpha := math.Sin(da) * (math.Sqrt(4+3*math.Tan(da/2)*math.Tan(da/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + radius*cos1
	y1 := cy + radius*sin1
	x2 := cx + radius*cos2
	y2 := cy + radius*sin2

	c1x := x1 - alpha*radius*sin1
	c1y := y1 + alpha*radius*cos1
	c2x := x2 + alpha*radius*sin2
	c2y := y2 - alpha*radius*cos2

	if b.hasCurrent {
		b.ctx.LineTo(x1, y1)
	} else {
		b.ctx.MoveTo(x1, y1)
		b.hasCurrent = true
	}
	b.ctx.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// FillPath fills the accumulated sub-paths, keeping them open so a
// following StrokePath outlines the same geometry.
func (b *Backend) FillPath() {
	b.applyFill()
	if err := b.ctx.FillPreserve(); err != nil {
		b.fail(err)
	}
}

// StrokePath strokes the accumulated sub-paths.
func (b *Backend) StrokePath() {
	b.applyStroke()
	if err := b.ctx.StrokePreserve(); err != nil {
		b.fail(err)
	}
}

// FillRect fills an axis-aligned rectangle. The current path is reset;
// FillRect is a standalone drawing command, not a path segment.
func (b *Backend) FillRect(x, y, width, height float64) {
	b.ctx.ClearPath()
	b.hasCurrent = false
	b.applyFill()
	b.ctx.DrawRectangle(x, y, width, height)
	if err := b.ctx.Fill(); err != nil {
		b.fail(err)
	}
}

// FillTriangle fills a triangle directly.
func (b *Backend) FillTriangle(x0, y0, x1, y1, x2, y2 float64) {
	b.trianglePath(x0, y0, x1, y1, x2, y2)
	b.applyFill()
	if err := b.ctx.Fill(); err != nil {
		b.fail(err)
	}
}

// StrokeTriangle strokes a triangle outline directly.
func (b *Backend) StrokeTriangle(x0, y0, x1, y1, x2, y2 float64) {
	b.trianglePath(x0, y0, x1, y1, x2, y2)
	b.applyStroke()
	if err := b.ctx.Stroke(); err != nil {
		b.fail(err)
	}
}

// trianglePath resets the current path to the triangle outline.
func (b *Backend) trianglePath(x0, y0, x1, y1, x2, y2 float64) {
	b.ctx.ClearPath()
	b.hasCurrent = false
	b.ctx.MoveTo(x0, y0)
	b.ctx.LineTo(x1, y1)
	b.ctx.LineTo(x2, y2)
	b.ctx.ClosePath()
}

// Image returns the rendered image. It should only be called after End.
func (b *Backend) Image() image.Image {
	return b.ctx.Image()
}

// EncodePNG writes the rendered image as PNG to w.
func (b *Backend) EncodePNG(w io.Writer) error {
	return b.ctx.EncodePNG(w)
}

// SavePNG saves the rendered image as PNG to a file.
func (b *Backend) SavePNG(path string) error {
	return b.ctx.SavePNG(path)
}

// Width returns the replay width.
func (b *Backend) Width() int { return b.width }

// Height returns the replay height.
func (b *Backend) Height() int { return b.height }

// rgb converts a 24-bit 0xRRGGBB color plus alpha to a gg color.
func rgb(color uint32, alpha float64) gg.RGBA {
	return gg.RGBA{
		R: float64((color>>16)&0xff) / 255,
		G: float64((color>>8)&0xff) / 255,
		B: float64(color&0xff) / 255,
		A: alpha,
	}
}
