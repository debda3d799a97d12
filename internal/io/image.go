package ioutils

import (
	"bytes"
	"context"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// CoverService normalizes arbitrary images into cover art suitable for
// embedding in an ID3 tag.
//
// Normalization decodes any registered format (JPEG, PNG, GIF), bounds
// both dimensions while preserving aspect ratio, and re-encodes the
// result as JPEG. The source data is never modified.
//
// Example:
//
//	svc := ioutils.NewCoverService(90)
//	data, _ := os.ReadFile(imagePath)
//	cover, err := svc.NormalizeCover(ctx, data, 1000)
//	// A 3000x1000 image becomes 1000x333.
//	// A 500x400 image stays 500x400 (no upscaling).
type CoverService struct {
	quality int
}

// NewCoverService creates a CoverService encoding JPEG at the given
// quality. Qualities outside 1-100 fall back to 90.
func NewCoverService(quality int) *CoverService {
	if quality < 1 || quality > 100 {
		quality = 90
	}
	return &CoverService{quality: quality}
}

// NormalizeCover decodes data and returns it as bounded JPEG bytes.
//
// If either dimension exceeds maxDimension the image is downscaled with
// Catmull-Rom interpolation so the larger dimension equals maxDimension
// exactly. Smaller images keep their dimensions but are still re-encoded,
// which guarantees the output is always JPEG regardless of input format.
func (s *CoverService) NormalizeCover(ctx context.Context, data []byte, maxDimension int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxDimension || height > maxDimension {
		if width >= height {
			height = height * maxDimension / width
			width = maxDimension
		} else {
			width = width * maxDimension / height
			height = maxDimension
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
