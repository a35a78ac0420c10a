package displaylist

// noStyle is the sentinel for an unset default color. Any negative value
// means "no default of this kind"; Clear then records no style command.
const noStyle int32 = -1

// Graphics is a drawable that records vector drawing operations into a
// command buffer instead of rasterizing them. A backend replays the
// buffer once per frame; see [Graphics.Render].
//
// All mutation and replay are expected to happen on one logical thread
// (the frame thread). Graphics provides no internal locking, and
// authoring for a frame must complete before that frame is replayed.
type Graphics struct {
	buf *Buffer

	width, height int
	x, y          float64

	// Style defaults, re-recorded on every Clear. A negative color
	// means the corresponding default is unset.
	defaultFillColor   int32
	defaultFillAlpha   float64
	defaultStrokeWidth float64
	defaultStrokeColor int32
	defaultStrokeAlpha float64

	// lineWidth caches the width of the most recent SetLineStyle call.
	// StrokeRect uses it to extend the horizontal edges so corners are
	// squared off.
	lineWidth float64
}

// New creates a Graphics drawable. If a default fill or line style is
// configured, the corresponding style command is recorded immediately,
// fill before line.
func New(opts ...Option) *Graphics {
	o := defaultGraphicsOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graphics{
		buf:                NewBuffer(),
		width:              o.width,
		height:             o.height,
		x:                  o.x,
		y:                  o.y,
		defaultFillColor:   noStyle,
		defaultStrokeColor: noStyle,
		defaultStrokeWidth: 1,
		lineWidth:          1,
	}
	if o.hasFill {
		g.defaultFillColor = int32(o.fillColor & 0xffffff)
		g.defaultFillAlpha = o.fillAlpha
	}
	if o.hasLine {
		g.defaultStrokeWidth = o.lineWidth
		g.defaultStrokeColor = int32(o.lineColor & 0xffffff)
		g.defaultStrokeAlpha = o.lineAlpha
	}
	g.applyDefaultStyles()
	return g
}

// applyDefaultStyles records the configured default styles, fill first.
// Unset defaults record nothing.
func (g *Graphics) applyDefaultStyles() {
	if g.defaultFillColor >= 0 {
		g.SetFillStyle(uint32(g.defaultFillColor), g.defaultFillAlpha)
	}
	if g.defaultStrokeColor >= 0 {
		g.SetLineStyle(g.defaultStrokeWidth, uint32(g.defaultStrokeColor), g.defaultStrokeAlpha)
	}
}

// Buffer returns the drawable's command buffer for inspection or replay.
// Callers must treat it as read-only.
func (g *Graphics) Buffer() *Buffer {
	return g.buf
}

// Width returns the nominal canvas width.
func (g *Graphics) Width() int { return g.width }

// Height returns the nominal canvas height.
func (g *Graphics) Height() int { return g.height }

// Position returns the drawable's origin in world coordinates.
func (g *Graphics) Position() (x, y float64) { return g.x, g.y }

// SetPosition moves the drawable's origin. Only snapshot capture reads
// it; recorded commands are unaffected.
func (g *Graphics) SetPosition(x, y float64) {
	g.x = x
	g.y = y
}

// SetLineStyle records a line style command and caches the width for
// rectangle-stroke corner extension. The style affects every subsequent
// geometry command until superseded or until Clear re-applies defaults.
func (g *Graphics) SetLineStyle(width float64, color uint32, alpha float64) {
	g.lineWidth = width
	g.buf.Append(LineStyleCommand{Width: width, Color: color & 0xffffff, Alpha: alpha})
}

// SetFillStyle records a fill style command.
func (g *Graphics) SetFillStyle(color uint32, alpha float64) {
	g.buf.Append(FillStyleCommand{Color: color & 0xffffff, Alpha: alpha})
}

// DefaultFillStyle returns the configured default fill style.
// ok is false if no default fill style is set.
func (g *Graphics) DefaultFillStyle() (color uint32, alpha float64, ok bool) {
	if g.defaultFillColor < 0 {
		return 0, 0, false
	}
	return uint32(g.defaultFillColor), g.defaultFillAlpha, true
}

// DefaultLineStyle returns the configured default line style.
// ok is false if no default line style is set.
func (g *Graphics) DefaultLineStyle() (width float64, color uint32, alpha float64, ok bool) {
	if g.defaultStrokeColor < 0 {
		return 0, 0, 0, false
	}
	return g.defaultStrokeWidth, uint32(g.defaultStrokeColor), g.defaultStrokeAlpha, true
}

// LineWidth returns the cached width of the most recent SetLineStyle
// call, or 1 if line style was never set.
func (g *Graphics) LineWidth() float64 { return g.lineWidth }

// Clear empties the command buffer and re-records the configured default
// styles (fill first, then line), returning the drawable to its "just
// configured" baseline rather than a blank unstyled state.
func (g *Graphics) Clear() {
	g.buf.Reset()
	g.lineWidth = g.defaultStrokeWidth
	g.applyDefaultStyles()
}

// Destroy releases the command buffer. The drawable must not be used
// afterwards. Destroy never touches shared capture state.
func (g *Graphics) Destroy() {
	g.buf = nil
}

// --------------------------------------------------------------------------
// Transform Commands
// --------------------------------------------------------------------------

// Save records a state push. Transform and style mutations recorded after
// a Save are undone by the matching Restore during replay, exactly like a
// classic graphics-state stack.
func (g *Graphics) Save() {
	g.buf.Append(SaveCommand{})
}

// Restore records a state pop. Balance against Save is not validated
// here; an unmatched Restore is a replay-time error reported by the
// backend.
func (g *Graphics) Restore() {
	g.buf.Append(RestoreCommand{})
}

// Translate records a translation of the replay-time transform.
func (g *Graphics) Translate(x, y float64) {
	g.buf.Append(TranslateCommand{X: x, Y: y})
}

// Scale records a scale of the replay-time transform.
func (g *Graphics) Scale(x, y float64) {
	g.buf.Append(ScaleCommand{X: x, Y: y})
}

// Rotate records a rotation of the replay-time transform.
// The angle is in radians.
func (g *Graphics) Rotate(angle float64) {
	g.buf.Append(RotateCommand{Angle: angle})
}
