package imageopt

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"
)

const (
	// MaxDimension is the longest side kept for menu photos.
	MaxDimension = 1200
	jpegQuality  = 85
)

// Optimize downscales JPEG and PNG images whose longest side exceeds
// MaxDimension, keeping aspect ratio and format. Other content types, and
// images already small enough, are returned untouched with resized=false.
func Optimize(data []byte, contentType string) (out []byte, resized bool, err error) {
	if contentType != "image/jpeg" && contentType != "image/png" {
		return data, false, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode image header: %w", err)
	}
	if cfg.Width <= MaxDimension && cfg.Height <= MaxDimension {
		return data, false, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode image: %w", err)
	}

	var resizedImg image.Image
	if cfg.Width >= cfg.Height {
		resizedImg = imaging.Resize(img, MaxDimension, 0, imaging.Lanczos)
	} else {
		resizedImg = imaging.Resize(img, 0, MaxDimension, imaging.Lanczos)
	}

	format := imaging.JPEG
	if contentType == "image/png" {
		format = imaging.PNG
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resizedImg, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, false, fmt.Errorf("failed to encode image: %w", err)
	}

	b := resizedImg.Bounds()
	log.Printf("[imaging] resized %dx%d -> %dx%d bytes=%d", cfg.Width, cfg.Height, b.Dx(), b.Dy(), buf.Len())
	return buf.Bytes(), true, nil
}
