// Package displaylist provides a deferred vector-graphics drawing system.
//
// Drawing calls on a [Graphics] object do not rasterize anything. Each call
// appends one or more typed commands to an ordered [Buffer]; a backend later
// replays the buffer once per frame and produces pixels. This decouples
// scene authoring from the rendering backend while preserving exact
// draw-order semantics (painter's algorithm) and style/transform state.
//
// Design follows Cairo's approach of typed command structs for
// inspectability, rather than a flattened opcode-plus-operands number array.
//
// # Architecture
//
// Commands capture three kinds of operations:
//   - Path commands (BeginPath, MoveTo, LineTo, Arc, ClosePath, FillPath,
//     StrokePath) plus direct-geometry commands (FillRect, FillTriangle,
//     StrokeTriangle)
//   - Style commands (LineStyle, FillStyle)
//   - Transform commands (Save, Restore, Translate, Scale, Rotate)
//
// Backends implement [Backend] and register via [Register] in their init()
// functions, following the database/sql driver pattern.
//
// # Example
//
//	g := displaylist.New(displaylist.WithSize(400, 300))
//	g.SetFillStyle(0xff3344, 1)
//	g.FillCircle(200, 150, 80)
//
//	b := displaylist.MustBackend("raster")
//	if err := g.Render(b); err != nil {
//	    // handle replay error
//	}
package displaylist

// Op identifies the type of a recorded command. The enumeration is fixed:
// backends dispatch on it and its identifiers are stable across releases.
type Op uint8

const (
	// Path commands
	OpBeginPath  Op = iota // start a new sub-path
	OpClosePath            // close the current sub-path
	OpFillPath             // fill accumulated sub-paths with the current fill style
	OpStrokePath           // stroke accumulated sub-paths with the current line style

	// Style commands
	OpLineStyle // set stroke width, color and alpha
	OpFillStyle // set fill color and alpha

	// Direct-geometry commands
	OpFillRect       // filled axis-aligned rectangle
	OpFillTriangle   // filled triangle
	OpStrokeTriangle // stroked triangle outline

	// Sub-path segments
	OpLineTo   // extend the current sub-path
	OpMoveTo   // start a new point without drawing
	OpLineFxTo // LineTo with per-segment width and color
	OpMoveFxTo // MoveTo counterpart of LineFxTo
	OpArc      // circular arc segment

	// Transform commands
	OpSave      // push renderer transform+style state
	OpRestore   // pop renderer transform+style state
	OpTranslate // translate the current transform
	OpScale     // scale the current transform
	OpRotate    // rotate the current transform
)

// opNames maps Op values to their string representation.
var opNames = [...]string{
	OpBeginPath:      "BeginPath",
	OpClosePath:      "ClosePath",
	OpFillPath:       "FillPath",
	OpStrokePath:     "StrokePath",
	OpLineStyle:      "LineStyle",
	OpFillStyle:      "FillStyle",
	OpFillRect:       "FillRect",
	OpFillTriangle:   "FillTriangle",
	OpStrokeTriangle: "StrokeTriangle",
	OpLineTo:         "LineTo",
	OpMoveTo:         "MoveTo",
	OpLineFxTo:       "LineFxTo",
	OpMoveFxTo:       "MoveFxTo",
	OpArc:            "Arc",
	OpSave:           "Save",
	OpRestore:        "Restore",
	OpTranslate:      "Translate",
	OpScale:          "Scale",
	OpRotate:         "Rotate",
}

// String returns the string representation of an Op.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded command types.
// Each command carries its own strongly-typed fixed fields; there is no
// operand-arity bookkeeping.
type Command interface {
	// Op returns the opcode for this command.
	Op() Op
}

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPathCommand starts a new sub-path, discarding any open one.
type BeginPathCommand struct{}

// Op implements Command.
func (BeginPathCommand) Op() Op { return OpBeginPath }

// ClosePathCommand closes the current sub-path back to its starting point.
type ClosePathCommand struct{}

// Op implements Command.
func (ClosePathCommand) Op() Op { return OpClosePath }

// FillPathCommand fills the accumulated sub-paths with the current fill
// style. The path is kept open so a following StrokePathCommand outlines
// the same geometry.
type FillPathCommand struct{}

// Op implements Command.
func (FillPathCommand) Op() Op { return OpFillPath }

// StrokePathCommand strokes the accumulated sub-paths with the current
// line style.
type StrokePathCommand struct{}

// Op implements Command.
func (StrokePathCommand) Op() Op { return OpStrokePath }

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// LineStyleCommand sets the stroke style for all subsequent geometry.
type LineStyleCommand struct {
	// Width is the stroke width in pixels.
	Width float64
	// Color is a 24-bit 0xRRGGBB color.
	Color uint32
	// Alpha is the stroke opacity in [0, 1].
	Alpha float64
}

// Op implements Command.
func (LineStyleCommand) Op() Op { return OpLineStyle }

// FillStyleCommand sets the fill style for all subsequent geometry.
type FillStyleCommand struct {
	// Color is a 24-bit 0xRRGGBB color.
	Color uint32
	// Alpha is the fill opacity in [0, 1].
	Alpha float64
}

// Op implements Command.
func (FillStyleCommand) Op() Op { return OpFillStyle }

// --------------------------------------------------------------------------
// Direct-Geometry Commands
// --------------------------------------------------------------------------

// FillRectCommand fills an axis-aligned rectangle with the current fill
// style, independent of any open path.
type FillRectCommand struct {
	X, Y          float64
	Width, Height float64
}

// Op implements Command.
func (FillRectCommand) Op() Op { return OpFillRect }

// FillTriangleCommand fills a triangle with the current fill style.
// The backend draws the triangle directly; it is never decomposed into
// line segments.
type FillTriangleCommand struct {
	X0, Y0 float64
	X1, Y1 float64
	X2, Y2 float64
}

// Op implements Command.
func (FillTriangleCommand) Op() Op { return OpFillTriangle }

// StrokeTriangleCommand strokes a triangle outline with the current line
// style.
type StrokeTriangleCommand struct {
	X0, Y0 float64
	X1, Y1 float64
	X2, Y2 float64
}

// Op implements Command.
func (StrokeTriangleCommand) Op() Op { return OpStrokeTriangle }

// --------------------------------------------------------------------------
// Sub-Path Segments
// --------------------------------------------------------------------------

// LineToCommand extends the current sub-path with a straight segment.
type LineToCommand struct {
	X, Y float64
}

// Op implements Command.
func (LineToCommand) Op() Op { return OpLineTo }

// MoveToCommand starts a new point in the current sub-path without drawing.
type MoveToCommand struct {
	X, Y float64
}

// Op implements Command.
func (MoveToCommand) Op() Op { return OpMoveTo }

// LineFxToCommand is an extended LineTo carrying per-segment stroke width
// and color. Alpha is always recorded as 1 by the builder.
type LineFxToCommand struct {
	X, Y  float64
	Width float64
	Color uint32
	Alpha float64
}

// Op implements Command.
func (LineFxToCommand) Op() Op { return OpLineFxTo }

// MoveFxToCommand is the MoveTo counterpart of LineFxToCommand.
type MoveFxToCommand struct {
	X, Y  float64
	Width float64
	Color uint32
	Alpha float64
}

// Op implements Command.
func (MoveFxToCommand) Op() Op { return OpMoveFxTo }

// ArcCommand appends a circular arc segment to the current sub-path.
// The builder never pre-tessellates arcs; the backend converts the sweep
// into whatever primitive it rasterizes.
type ArcCommand struct {
	X, Y       float64
	Radius     float64
	StartAngle float64 // radians
	EndAngle   float64 // radians
	// Anticlockwise selects the sweep direction from StartAngle to
	// EndAngle. False means clockwise in screen coordinates.
	Anticlockwise bool
}

// Op implements Command.
func (ArcCommand) Op() Op { return OpArc }

// --------------------------------------------------------------------------
// Transform Commands
// --------------------------------------------------------------------------

// SaveCommand pushes the backend transform and style state.
type SaveCommand struct{}

// Op implements Command.
func (SaveCommand) Op() Op { return OpSave }

// RestoreCommand pops the backend transform and style state. A Restore
// with no matching prior Save is a replay-time error reported by the
// backend; the builder records it without validation.
type RestoreCommand struct{}

// Op implements Command.
func (RestoreCommand) Op() Op { return OpRestore }

// TranslateCommand translates the backend's current transform.
type TranslateCommand struct {
	X, Y float64
}

// Op implements Command.
func (TranslateCommand) Op() Op { return OpTranslate }

// ScaleCommand scales the backend's current transform.
type ScaleCommand struct {
	X, Y float64
}

// Op implements Command.
func (ScaleCommand) Op() Op { return OpScale }

// RotateCommand rotates the backend's current transform.
type RotateCommand struct {
	// Angle is in radians.
	Angle float64
}

// Op implements Command.
func (RotateCommand) Op() Op { return OpRotate }
