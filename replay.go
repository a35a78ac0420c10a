package displaylist

import "image"

// Backend consumes a replayed command sequence and produces pixels.
// Backends receive one method call per command, in insertion order, and
// translate them to their output (raster pixels, GPU draw calls, vector
// documents).
//
// A Backend manages its own transform/style state stack for Save and
// Restore, and defines its own handling of replay-time error conditions:
// a Restore with no matching Save, or a FillPath/StrokePath with no open
// sub-path, is the backend's to report (typically as an error from End)
// or to treat as a no-op. The buffer records such sequences without
// validation.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register in their init functions.
type Backend interface {
	// Begin initializes the backend for a replay at the given
	// dimensions. It must be called before any drawing method.
	Begin(width, height int) error

	// End finalizes the replay and reports any error accumulated
	// during it.
	End() error

	// State and transform

	Save()
	Restore()
	Translate(x, y float64)
	Scale(x, y float64)
	Rotate(angle float64)

	// Style

	SetLineStyle(width float64, color uint32, alpha float64)
	SetFillStyle(color uint32, alpha float64)

	// Path building

	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	MoveFxTo(x, y, width float64, color uint32, alpha float64)
	LineFxTo(x, y, width float64, color uint32, alpha float64)
	Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool)

	// Drawing

	FillPath()
	StrokePath()
	FillRect(x, y, width, height float64)
	FillTriangle(x0, y0, x1, y1, x2, y2 float64)
	StrokeTriangle(x0, y0, x1, y1, x2, y2 float64)
}

// ImageBackend extends Backend with access to the rasterized result.
// The raster backend implements it; snapshot capture requires it.
type ImageBackend interface {
	Backend

	// Image returns the rendered image. It should only be called
	// after End.
	Image() image.Image
}

// Replay walks the buffer once in insertion order and dispatches each
// command to the backend. It does not call Begin or End; Graphics.Render
// brackets the walk with them.
//
// Later commands draw on top of earlier ones, and style commands affect
// every subsequent geometry command, so a single sequential walk
// reproduces the authored scene exactly.
func Replay(buf *Buffer, b Backend) {
	for cmd := range buf.All() {
		switch c := cmd.(type) {
		case BeginPathCommand:
			b.BeginPath()
		case ClosePathCommand:
			b.ClosePath()
		case FillPathCommand:
			b.FillPath()
		case StrokePathCommand:
			b.StrokePath()
		case LineStyleCommand:
			b.SetLineStyle(c.Width, c.Color, c.Alpha)
		case FillStyleCommand:
			b.SetFillStyle(c.Color, c.Alpha)
		case FillRectCommand:
			b.FillRect(c.X, c.Y, c.Width, c.Height)
		case FillTriangleCommand:
			b.FillTriangle(c.X0, c.Y0, c.X1, c.Y1, c.X2, c.Y2)
		case StrokeTriangleCommand:
			b.StrokeTriangle(c.X0, c.Y0, c.X1, c.Y1, c.X2, c.Y2)
		case LineToCommand:
			b.LineTo(c.X, c.Y)
		case MoveToCommand:
			b.MoveTo(c.X, c.Y)
		case LineFxToCommand:
			b.LineFxTo(c.X, c.Y, c.Width, c.Color, c.Alpha)
		case MoveFxToCommand:
			b.MoveFxTo(c.X, c.Y, c.Width, c.Color, c.Alpha)
		case ArcCommand:
			b.Arc(c.X, c.Y, c.Radius, c.StartAngle, c.EndAngle, c.Anticlockwise)
		case SaveCommand:
			b.Save()
		case RestoreCommand:
			b.Restore()
		case TranslateCommand:
			b.Translate(c.X, c.Y)
		case ScaleCommand:
			b.Scale(c.X, c.Y)
		case RotateCommand:
			b.Rotate(c.Angle)
		}
	}
}

// Render replays the drawable's buffer once against the backend,
// bracketed by Begin at the drawable's dimensions and End. The buffer is
// left unchanged and can be rendered again.
func (g *Graphics) Render(b Backend) error {
	if err := b.Begin(g.width, g.height); err != nil {
		return err
	}
	Replay(g.buf, b)
	return b.End()
}
