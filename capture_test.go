package displaylist_test

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/displaylist"
	_ "github.com/gogpu/displaylist/backends/raster"
	"github.com/gogpu/displaylist/texture"
)

// captureUploader records upload calls for accelerated-registry tests.
type captureUploader struct {
	uploads []string
	err     error
}

func (u *captureUploader) Upload(key string, img *image.RGBA) error {
	u.uploads = append(u.uploads, key)
	return u.err
}

func (u *captureUploader) Release(string) {}

// redSquare returns a drawable with a red square filling its upper-left
// quadrant.
func redSquare() *displaylist.Graphics {
	g := displaylist.New(displaylist.WithSize(32, 32))
	g.SetFillStyle(0xff0000, 1)
	g.FillRect(0, 0, 16, 16)
	return g
}

func TestCaptureToImage(t *testing.T) {
	reg := texture.NewRegistry(nil)
	view := displaylist.NewCaptureView()
	g := redSquare()

	s, err := g.CaptureToImage(reg, view, displaylist.TargetKey("snap"), 32, 32)
	if err != nil {
		t.Fatalf("CaptureToImage() error = %v", err)
	}

	if s.Key() != "snap" {
		t.Errorf("Key() = %q, want %q", s.Key(), "snap")
	}
	if s.Width() != 32 || s.Height() != 32 {
		t.Errorf("surface size = %dx%d, want 32x32", s.Width(), s.Height())
	}
	if !reg.Exists("snap") {
		t.Error("registry does not hold the captured surface")
	}

	canvas := s.Canvas()
	if r := canvas.RGBAAt(8, 8).R; r != 255 {
		t.Errorf("captured pixel red = %d, want 255", r)
	}
	if a := canvas.RGBAAt(24, 24).A; a != 0 {
		t.Errorf("uncovered pixel alpha = %d, want 0", a)
	}
}

func TestCaptureConfiguresSharedView(t *testing.T) {
	reg := texture.NewRegistry(nil)
	view := displaylist.NewCaptureView()

	g := redSquare()
	g.SetPosition(100, 50)

	if _, err := g.CaptureToImage(reg, view, displaylist.TargetKey("snap"), 64, 48); err != nil {
		t.Fatalf("CaptureToImage() error = %v", err)
	}

	if view.Width != 64 || view.Height != 48 {
		t.Errorf("view size = %dx%d, want 64x48", view.Width, view.Height)
	}
	if view.ScrollX != 100 || view.ScrollY != 50 {
		t.Errorf("view scroll = (%v, %v), want (100, 50)", view.ScrollX, view.ScrollY)
	}
}

// The viewport scrolls to the drawable origin, so world-positioned
// content lands at the surface's top-left corner.
func TestCaptureScrollsToOrigin(t *testing.T) {
	reg := texture.NewRegistry(nil)
	view := displaylist.NewCaptureView()

	g := displaylist.New(displaylist.WithSize(32, 32), displaylist.WithPosition(100, 100))
	g.SetFillStyle(0x00ff00, 1)
	g.FillRect(100, 100, 8, 8)

	s, err := g.CaptureToImage(reg, view, displaylist.TargetKey("snap"), 32, 32)
	if err != nil {
		t.Fatalf("CaptureToImage() error = %v", err)
	}
	if green := s.Canvas().RGBAAt(4, 4).G; green != 255 {
		t.Errorf("scrolled pixel green = %d, want 255", green)
	}
}

func TestCaptureSameKeyReusesSurface(t *testing.T) {
	reg := texture.NewRegistry(nil)
	view := displaylist.NewCaptureView()
	g := redSquare()

	first, err := g.CaptureToImage(reg, view, displaylist.TargetKey("snap"), 32, 32)
	if err != nil {
		t.Fatalf("first capture error = %v", err)
	}
	second, err := g.CaptureToImage(reg, view, displaylist.TargetKey("snap"), 32, 32)
	if err != nil {
		t.Fatalf("second capture error = %v", err)
	}
	if first != second {
		t.Error("same-key captures returned different surfaces")
	}
}

func TestCaptureLeavesBufferUnchanged(t *testing.T) {
	reg := texture.NewRegistry(nil)
	view := displaylist.NewCaptureView()
	g := redSquare()
	before := g.Buffer().Len()

	if _, err := g.CaptureToImage(reg, view, displaylist.TargetKey("snap"), 32, 32); err != nil {
		t.Fatalf("CaptureToImage() error = %v", err)
	}
	if got := g.Buffer().Len(); got != before {
		t.Errorf("buffer length after capture = %d, want %d", got, before)
	}
}

func TestCaptureToSurface(t *testing.T) {
	reg := texture.NewRegistry(nil)
	view := displaylist.NewCaptureView()

	existing, err := reg.Create("dest", 32, 32)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	g := redSquare()
	s, err := g.CaptureToImage(reg, view, displaylist.TargetSurface(existing), 32, 32)
	if err != nil {
		t.Fatalf("CaptureToImage() error = %v", err)
	}
	if s != existing {
		t.Error("capture did not land in the passed surface")
	}
	if r := existing.Canvas().RGBAAt(8, 8).R; r != 255 {
		t.Errorf("captured pixel red = %d, want 255", r)
	}
}

func TestCaptureUploadsWhenAccelerated(t *testing.T) {
	up := &captureUploader{}
	reg := texture.NewRegistry(up)
	view := displaylist.NewCaptureView()
	g := redSquare()

	if _, err := g.CaptureToImage(reg, view, displaylist.TargetKey("snap"), 32, 32); err != nil {
		t.Fatalf("CaptureToImage() error = %v", err)
	}
	if len(up.uploads) != 1 || up.uploads[0] != "snap" {
		t.Errorf("uploads = %v, want [snap]", up.uploads)
	}
}

func TestCaptureUploadError(t *testing.T) {
	wantErr := errors.New("device lost")
	reg := texture.NewRegistry(&captureUploader{err: wantErr})
	view := displaylist.NewCaptureView()
	g := redSquare()

	if _, err := g.CaptureToImage(reg, view, displaylist.TargetKey("snap"), 32, 32); !errors.Is(err, wantErr) {
		t.Errorf("CaptureToImage() error = %v, want %v", err, wantErr)
	}
}

func TestCaptureInvalidSize(t *testing.T) {
	reg := texture.NewRegistry(nil)
	view := displaylist.NewCaptureView()
	g := redSquare()

	if _, err := g.CaptureToImage(reg, view, displaylist.TargetKey("snap"), 0, 32); !errors.Is(err, texture.ErrInvalidSize) {
		t.Errorf("CaptureToImage() error = %v, want ErrInvalidSize", err)
	}
	if g.Buffer().Len() == 0 {
		t.Error("failed capture corrupted the buffer")
	}
}
