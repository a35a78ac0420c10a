package texture

import (
	"errors"
	"image"
	"testing"
)

// fakeUploader records upload and release calls.
type fakeUploader struct {
	uploads  []string
	releases []string
	err      error
}

func (u *fakeUploader) Upload(key string, img *image.RGBA) error {
	u.uploads = append(u.uploads, key)
	return u.err
}

func (u *fakeUploader) Release(key string) {
	u.releases = append(u.releases, key)
}

func TestRegistryCreate(t *testing.T) {
	r := NewRegistry(nil)

	s, err := r.Create("minimap", 128, 64)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if s.Key() != "minimap" {
		t.Errorf("Key() = %q, want %q", s.Key(), "minimap")
	}
	if s.Width() != 128 || s.Height() != 64 {
		t.Errorf("size = %dx%d, want 128x64", s.Width(), s.Height())
	}
	if got := s.Canvas().Bounds(); got != image.Rect(0, 0, 128, 64) {
		t.Errorf("Canvas().Bounds() = %v, want (0,0)-(128,64)", got)
	}

	if !r.Exists("minimap") {
		t.Error("Exists() = false after Create")
	}
	got, err := r.Get("minimap")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != s {
		t.Error("Get() returned a different surface")
	}
}

func TestRegistryCreateErrors(t *testing.T) {
	r := NewRegistry(nil)
	if _, err := r.Create("s", 64, 64); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("duplicate key", func(t *testing.T) {
		if _, err := r.Create("s", 32, 32); !errors.Is(err, ErrKeyExists) {
			t.Errorf("Create(duplicate) error = %v, want ErrKeyExists", err)
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -1}} {
			if _, err := r.Create("t", dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("Create(%d, %d) error = %v, want ErrInvalidSize", dims[0], dims[1], err)
			}
		}
	})
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry(nil)
	if _, err := r.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestRegistryRemove(t *testing.T) {
	up := &fakeUploader{}
	r := NewRegistry(up)
	if _, err := r.Create("s", 16, 16); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	r.Remove("s")
	if r.Exists("s") {
		t.Error("Exists() = true after Remove")
	}
	if len(up.releases) != 1 || up.releases[0] != "s" {
		t.Errorf("uploader releases = %v, want [s]", up.releases)
	}

	// Removing an unknown key releases nothing.
	r.Remove("nope")
	if len(up.releases) != 1 {
		t.Errorf("uploader releases = %v after removing unknown key", up.releases)
	}
}

func TestRegistryUpload(t *testing.T) {
	t.Run("without uploader", func(t *testing.T) {
		r := NewRegistry(nil)
		if r.Accelerated() {
			t.Error("Accelerated() = true, want false")
		}
		s, _ := r.Create("s", 8, 8)
		if err := r.Upload(s); err != nil {
			t.Errorf("Upload() error = %v, want nil", err)
		}
	})

	t.Run("with uploader", func(t *testing.T) {
		up := &fakeUploader{}
		r := NewRegistry(up)
		if !r.Accelerated() {
			t.Error("Accelerated() = false, want true")
		}
		s, _ := r.Create("s", 8, 8)
		if err := r.Upload(s); err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
		if len(up.uploads) != 1 || up.uploads[0] != "s" {
			t.Errorf("uploader uploads = %v, want [s]", up.uploads)
		}
	})

	t.Run("upload error propagates", func(t *testing.T) {
		wantErr := errors.New("device lost")
		r := NewRegistry(&fakeUploader{err: wantErr})
		s, _ := r.Create("s", 8, 8)
		if err := r.Upload(s); !errors.Is(err, wantErr) {
			t.Errorf("Upload() error = %v, want %v", err, wantErr)
		}
	})
}
