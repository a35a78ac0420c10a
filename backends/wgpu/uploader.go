// Package wgpu provides a GPU texture uploader for displaylist snapshot
// capture, built on gogpu/wgpu's HAL layer.
//
// Hosts running a hardware-accelerated backend hand the uploader to the
// texture registry; CaptureToImage then mirrors captured canvas pixels
// into a GPU-resident texture after each capture:
//
//	up, err := wgpu.NewUploader(device, queue)
//	if err != nil { ... }
//	reg := texture.NewRegistry(up)
package wgpu

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/displaylist"
	"github.com/gogpu/displaylist/texture"
)

// Uploader errors.
var (
	// ErrNilDevice is returned when creating an uploader without a device.
	ErrNilDevice = errors.New("wgpu: device is nil")

	// ErrNilQueue is returned when creating an uploader without a queue.
	ErrNilQueue = errors.New("wgpu: queue is nil")
)

// Device is the subset of hal.Device the uploader needs.
type Device interface {
	CreateTexture(*hal.TextureDescriptor) (hal.Texture, error)
	DestroyTexture(hal.Texture)
}

// Queue is the subset of hal.Queue the uploader needs.
type Queue interface {
	WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D)
}

// gpuTexture tracks one GPU-resident texture and its dimensions, so an
// upload of a same-sized image reuses the resource instead of
// reallocating.
type gpuTexture struct {
	tex           hal.Texture
	width, height int
}

// Uploader mirrors captured surface pixels into RGBA8 GPU textures,
// one per surface key. It implements texture.Uploader.
//
// Uploader is not safe for concurrent use; like capture itself it is
// expected to run on the frame thread.
type Uploader struct {
	device   Device
	queue    Queue
	textures map[string]gpuTexture
}

var _ texture.Uploader = (*Uploader)(nil)

// NewUploader creates an uploader over the host's HAL device and queue.
// The uploader does not own the device; the host remains responsible
// for device lifetime.
func NewUploader(device Device, queue Queue) (*Uploader, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	return &Uploader{
		device:   device,
		queue:    queue,
		textures: make(map[string]gpuTexture),
	}, nil
}

// Upload pushes the image to the GPU texture stored under key, replacing
// any prior GPU resource. A texture of matching size is reused; a size
// change destroys and reallocates it.
func (u *Uploader) Upload(key string, img *image.RGBA) error {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	entry, ok := u.textures[key]
	if ok && (entry.width != w || entry.height != h) {
		u.device.DestroyTexture(entry.tex)
		delete(u.textures, key)
		ok = false
	}

	if !ok {
		desc := &hal.TextureDescriptor{
			Label: key,
			Size: hal.Extent3D{
				Width:              uint32(w),
				Height:             uint32(h),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        gputypes.TextureFormatRGBA8Unorm,
			Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		}
		tex, err := u.device.CreateTexture(desc)
		if err != nil {
			return fmt.Errorf("wgpu: create texture %q: %w", key, err)
		}
		entry = gpuTexture{tex: tex, width: w, height: h}
		u.textures[key] = entry
	}

	dst := &hal.ImageCopyTexture{
		Texture:  entry.tex,
		MipLevel: 0,
		Origin:   hal.Origin3D{X: 0, Y: 0, Z: 0},
		Aspect:   gputypes.TextureAspectAll,
	}
	layout := &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(4 * w),
		RowsPerImage: uint32(h),
	}
	size := &hal.Extent3D{
		Width:              uint32(w),
		Height:             uint32(h),
		DepthOrArrayLayers: 1,
	}
	u.queue.WriteTexture(dst, packPixels(img), layout, size)

	displaylist.Logger().Debug("uploaded surface to GPU texture",
		"key", key, "width", w, "height", h)
	return nil
}

// Release drops the GPU texture stored under key, if any.
func (u *Uploader) Release(key string) {
	entry, ok := u.textures[key]
	if !ok {
		return
	}
	delete(u.textures, key)
	u.device.DestroyTexture(entry.tex)
}

// Texture returns the GPU texture stored under key, for hosts that bind
// captured snapshots into their own pipelines.
func (u *Uploader) Texture(key string) (hal.Texture, bool) {
	entry, ok := u.textures[key]
	return entry.tex, ok
}

// packPixels returns the image's pixels as tightly packed RGBA rows.
// Images whose stride already matches the row width are passed through
// without copying.
func packPixels(img *image.RGBA) []byte {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	rowBytes := 4 * w

	if img.Stride == rowBytes && bounds.Min == (image.Point{}) {
		return img.Pix[:rowBytes*h]
	}

	packed := make([]byte, rowBytes*h)
	for row := 0; row < h; row++ {
		src := img.PixOffset(bounds.Min.X, bounds.Min.Y+row)
		copy(packed[row*rowBytes:(row+1)*rowBytes], img.Pix[src:src+rowBytes])
	}
	return packed
}
