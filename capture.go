package displaylist

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/displaylist/texture"
)

// CaptureTarget identifies where a snapshot capture lands: either a
// named texture resolved (or created) through the registry, or an
// existing surface passed by identity. Construct one with TargetKey or
// TargetSurface.
type CaptureTarget struct {
	key     string
	surface *texture.Surface
}

// TargetKey addresses a capture at the surface stored under key,
// creating a new surface of the capture size if the key is unused.
func TargetKey(key string) CaptureTarget {
	return CaptureTarget{key: key}
}

// TargetSurface addresses a capture at an existing surface.
func TargetSurface(s *texture.Surface) CaptureTarget {
	return CaptureTarget{surface: s}
}

// CaptureView is the auxiliary viewport used by snapshot capture. The
// host constructs one instance and passes it into every CaptureToImage
// call; all drawables share it. Each capture re-sets its size and scroll
// position, and nothing else, so a CaptureView must not be used from
// multiple goroutines without external locking.
type CaptureView struct {
	// Width and Height are the viewport dimensions of the capture.
	Width, Height int

	// ScrollX and ScrollY offset the replay so the capturing
	// drawable's origin lands at the viewport's top-left corner.
	ScrollX, ScrollY float64
}

// NewCaptureView creates an unconfigured capture viewport.
func NewCaptureView() *CaptureView {
	return &CaptureView{}
}

// configure sizes the viewport and scrolls it to the drawable origin.
func (v *CaptureView) configure(width, height int, x, y float64) {
	v.Width = width
	v.Height = height
	v.ScrollX = x
	v.ScrollY = y
}

// CaptureToImage performs exactly one replay of the current command
// buffer into an addressable surface instead of the live frame. The
// target is either an existing surface or a registry key; an unused key
// allocates a new surface of the capture size. The shared view is
// re-configured to (width, height) at the drawable's origin before the
// replay.
//
// The replay runs through the "raster" backend, which the host must
// import for registration:
//
//	import _ "github.com/gogpu/displaylist/backends/raster"
//
// If the registry is hardware-accelerated, the captured pixels are
// additionally uploaded to a GPU texture, replacing any prior GPU
// resource under the surface's key.
//
// CaptureToImage is synchronous and on-demand; its cost is proportional
// to the buffer length. It leaves the command buffer unchanged, so
// capturing twice with the same key reuses the same surface and
// produces the same pixels. Registry errors abort the capture without
// corrupting the buffer.
func (g *Graphics) CaptureToImage(reg *texture.Registry, view *CaptureView, target CaptureTarget, width, height int) (*texture.Surface, error) {
	surface := target.surface
	if surface == nil {
		var err error
		if reg.Exists(target.key) {
			surface, err = reg.Get(target.key)
		} else {
			surface, err = reg.Create(target.key, width, height)
		}
		if err != nil {
			return nil, err
		}
	}

	view.configure(width, height, g.x, g.y)

	b, err := NewBackend("raster")
	if err != nil {
		return nil, fmt.Errorf("displaylist: capture needs the raster backend: %w", err)
	}
	ib, ok := b.(ImageBackend)
	if !ok {
		return nil, fmt.Errorf("displaylist: backend %T cannot produce an image", b)
	}

	if err := ib.Begin(view.Width, view.Height); err != nil {
		return nil, err
	}
	ib.Translate(-view.ScrollX, -view.ScrollY)
	Replay(g.buf, ib)
	if err := ib.End(); err != nil {
		return nil, err
	}

	img := ib.Image()
	xdraw.Copy(surface.Canvas(), image.Point{}, img, img.Bounds(), xdraw.Over, nil)

	Logger().Debug("captured graphics to surface",
		"key", surface.Key(),
		"width", view.Width,
		"height", view.Height,
		"commands", g.buf.Len(),
	)

	if reg.Accelerated() {
		if err := reg.Upload(surface); err != nil {
			return nil, fmt.Errorf("displaylist: GPU upload failed: %w", err)
		}
	}
	return surface, nil
}
