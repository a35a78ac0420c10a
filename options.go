package displaylist

// Option configures a Graphics drawable during creation.
//
// Example:
//
//	// Plain drawable, no default styles
//	g := displaylist.New(displaylist.WithSize(800, 600))
//
//	// Drawable with baseline styles re-applied on every Clear
//	g := displaylist.New(
//	    displaylist.WithSize(800, 600),
//	    displaylist.WithFillStyle(0x2050a0, 1),
//	    displaylist.WithLineStyle(2, 0xffffff, 1),
//	)
type Option func(*graphicsOptions)

// graphicsOptions holds optional configuration for Graphics creation.
type graphicsOptions struct {
	width, height int
	x, y          float64

	hasFill   bool
	fillColor uint32
	fillAlpha float64

	hasLine   bool
	lineWidth float64
	lineColor uint32
	lineAlpha float64
}

// defaultGraphicsOptions returns the default creation options: a 256x256
// drawable at the origin with no default styles.
func defaultGraphicsOptions() graphicsOptions {
	return graphicsOptions{width: 256, height: 256}
}

// WithSize sets the nominal canvas dimensions of the drawable. The size
// is advisory for backends; commands may draw outside it.
func WithSize(width, height int) Option {
	return func(o *graphicsOptions) {
		o.width = width
		o.height = height
	}
}

// WithPosition sets the drawable's origin in world coordinates. Snapshot
// capture positions its auxiliary viewport at this origin.
func WithPosition(x, y float64) Option {
	return func(o *graphicsOptions) {
		o.x = x
		o.y = y
	}
}

// WithFillStyle sets the drawable's default fill style. The style is
// recorded immediately at construction and re-recorded by every Clear,
// so clearing returns the drawable to its configured baseline rather
// than an unstyled state.
func WithFillStyle(color uint32, alpha float64) Option {
	return func(o *graphicsOptions) {
		o.hasFill = true
		o.fillColor = color
		o.fillAlpha = alpha
	}
}

// WithLineStyle sets the drawable's default line style, with the same
// construction and Clear semantics as WithFillStyle.
func WithLineStyle(width float64, color uint32, alpha float64) Option {
	return func(o *graphicsOptions) {
		o.hasLine = true
		o.lineWidth = width
		o.lineColor = color
		o.lineAlpha = alpha
	}
}
