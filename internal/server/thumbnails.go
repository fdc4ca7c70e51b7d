package server

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// thumbnailFor returns the on-disk thumbnail path for an image id,
// rendering and caching it from the source file when missing. Sources that
// cannot be decoded (RAW captures without a pre-rendered thumbnail) return
// an error.
func (s *Server) thumbnailFor(id uint, sourcePath string) (string, error) {
	thumbPath := filepath.Join(s.cfg.ThumbnailsDir, fmt.Sprintf("%d.png", id))
	if _, err := os.Stat(thumbPath); err == nil {
		return thumbPath, nil
	}
	if sourcePath == "" {
		return "", fmt.Errorf("no source file for image %d", id)
	}
	img, err := decodeImageFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", sourcePath, err)
	}
	thumb := scaleToFit(img, s.cfg.ThumbnailMaxPx)
	if err := os.MkdirAll(s.cfg.ThumbnailsDir, 0o755); err != nil {
		return "", err
	}
	out, err := os.Create(thumbPath)
	if err != nil {
		return "", err
	}
	defer out.Close()
	if err := png.Encode(out, thumb); err != nil {
		os.Remove(thumbPath)
		return "", err
	}
	return thumbPath, nil
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// scaleToFit shrinks img so its longer edge is at most maxPx, preserving
// aspect ratio. Images already within bounds are returned unchanged.
func scaleToFit(img image.Image, maxPx int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= maxPx && height <= maxPx {
		return img
	}
	var targetWidth, targetHeight int
	if width >= height {
		targetWidth = maxPx
		targetHeight = height * maxPx / width
	} else {
		targetHeight = maxPx
		targetWidth = width * maxPx / height
	}
	if targetWidth < 1 {
		targetWidth = 1
	}
	if targetHeight < 1 {
		targetHeight = 1
	}
	target := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(target, target.Bounds(), img, bounds, draw.Over, nil)
	return target
}
