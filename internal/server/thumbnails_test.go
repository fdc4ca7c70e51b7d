package server

import (
	"image"
	"os"
	"testing"

	"watercolour-archive/internal/config"
)

func TestScaleToFit(t *testing.T) {
	cases := []struct {
		name       string
		width      int
		height     int
		maxPx      int
		wantWidth  int
		wantHeight int
	}{
		{"landscape shrinks", 1200, 800, 300, 300, 200},
		{"portrait shrinks", 800, 1200, 300, 200, 300},
		{"square shrinks", 500, 500, 100, 100, 100},
		{"within bounds untouched", 200, 150, 300, 200, 150},
		{"extreme ratio keeps one pixel", 4000, 2, 300, 300, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tc.width, tc.height))
			got := scaleToFit(src, tc.maxPx)
			bounds := got.Bounds()
			if bounds.Dx() != tc.wantWidth || bounds.Dy() != tc.wantHeight {
				t.Fatalf("got %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), tc.wantWidth, tc.wantHeight)
			}
		})
	}
}

func TestThumbnailForRendersAndCaches(t *testing.T) {
	cfg := config.Default()
	cfg.ThumbnailsDir = t.TempDir()
	cfg.ThumbnailMaxPx = 64
	srv := New(nil, cfg)

	sourcePath := writeTestPNG(t, 640, 480)
	thumbPath, err := srv.thumbnailFor(7, sourcePath)
	if err != nil {
		t.Fatalf("render thumbnail: %v", err)
	}
	first, err := os.Stat(thumbPath)
	if err != nil {
		t.Fatalf("stat thumbnail: %v", err)
	}

	img, err := decodeImageFile(thumbPath)
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if got := img.Bounds().Dx(); got != 64 {
		t.Fatalf("expected thumbnail width 64, got %d", got)
	}

	// A second call must serve the cached file, even if the source is gone.
	if err := os.Remove(sourcePath); err != nil {
		t.Fatalf("remove source: %v", err)
	}
	again, err := srv.thumbnailFor(7, sourcePath)
	if err != nil {
		t.Fatalf("cached thumbnail: %v", err)
	}
	second, err := os.Stat(again)
	if err != nil {
		t.Fatalf("stat cached thumbnail: %v", err)
	}
	if !second.ModTime().Equal(first.ModTime()) {
		t.Fatal("expected the cached thumbnail to be reused")
	}
}

func TestThumbnailForUndecodableSource(t *testing.T) {
	cfg := config.Default()
	cfg.ThumbnailsDir = t.TempDir()
	srv := New(nil, cfg)

	if _, err := srv.thumbnailFor(3, ""); err == nil {
		t.Fatal("expected error without a source path")
	}

	raw := t.TempDir() + "/capture.nef"
	if err := os.WriteFile(raw, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write raw stand-in: %v", err)
	}
	if _, err := srv.thumbnailFor(4, raw); err == nil {
		t.Fatal("expected error for an undecodable source")
	}
}
