// Package texture provides the canvas-backed surface registry consumed
// by displaylist snapshot capture. A Surface is an addressable raster
// target; the Registry resolves surfaces by key, creates new ones, and
// optionally mirrors their pixels to GPU-resident textures through an
// Uploader.
package texture

import (
	"errors"
	"fmt"
	"image"
)

// Registry errors.
var (
	// ErrKeyExists is returned by Create when the key is taken.
	ErrKeyExists = errors.New("texture: key already exists")

	// ErrNotFound is returned by Get for an unknown key.
	ErrNotFound = errors.New("texture: no surface for key")

	// ErrInvalidSize is returned by Create for non-positive dimensions.
	ErrInvalidSize = errors.New("texture: invalid surface size")
)

// Surface is a reusable canvas-backed raster target identified by a key.
// Its canvas is a plain RGBA image that capture replays draw into and
// that an Uploader can push to the GPU.
type Surface struct {
	key           string
	canvas        *image.RGBA
	width, height int
}

// Key returns the registry key the surface was created under.
func (s *Surface) Key() string { return s.key }

// Canvas returns the surface's backing image. Drawing into it mutates
// the surface directly.
func (s *Surface) Canvas() *image.RGBA { return s.canvas }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Uploader mirrors surface pixels into GPU-resident textures. It is
// implemented by hardware backends (see backends/wgpu); hosts without
// GPU acceleration run with a nil Uploader and capture stays CPU-only.
type Uploader interface {
	// Upload pushes the image to the GPU texture stored under key,
	// replacing any prior GPU resource for that key.
	Upload(key string, img *image.RGBA) error

	// Release drops the GPU texture stored under key, if any.
	Release(key string)
}

// Registry owns canvas-backed surfaces addressed by key.
//
// Registry is not safe for concurrent use: capture runs on the frame
// thread and the registry is expected to be confined there too.
type Registry struct {
	surfaces map[string]*Surface
	uploader Uploader
}

// NewRegistry creates an empty surface registry. uploader may be nil;
// then Accelerated reports false and Upload is a no-op.
func NewRegistry(uploader Uploader) *Registry {
	return &Registry{
		surfaces: make(map[string]*Surface),
		uploader: uploader,
	}
}

// Exists reports whether a surface is stored under key.
func (r *Registry) Exists(key string) bool {
	_, ok := r.surfaces[key]
	return ok
}

// Get returns the surface stored under key.
func (r *Registry) Get(key string) (*Surface, error) {
	s, ok := r.surfaces[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return s, nil
}

// Create allocates a new canvas-backed surface of the given size and
// stores it under key. The key must be unused and the dimensions
// positive.
func (r *Registry) Create(key string, width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if _, dup := r.surfaces[key]; dup {
		return nil, fmt.Errorf("%w: %q", ErrKeyExists, key)
	}

	s := &Surface{
		key:    key,
		canvas: image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
	r.surfaces[key] = s
	return s, nil
}

// Remove drops the surface stored under key and releases its GPU
// texture, if any. Removing an unknown key is a no-op.
func (r *Registry) Remove(key string) {
	if _, ok := r.surfaces[key]; !ok {
		return
	}
	delete(r.surfaces, key)
	if r.uploader != nil {
		r.uploader.Release(key)
	}
}

// Accelerated reports whether the registry mirrors surfaces to GPU
// textures.
func (r *Registry) Accelerated() bool {
	return r.uploader != nil
}

// Upload pushes the surface's canvas pixels to its GPU texture,
// replacing any prior GPU resource. Without an uploader this is a no-op.
func (r *Registry) Upload(s *Surface) error {
	if r.uploader == nil {
		return nil
	}
	return r.uploader.Upload(s.key, s.canvas)
}
