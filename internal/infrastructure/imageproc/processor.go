package imageproc

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/storage"
)

const (
	MaxImageWidth  = 1200
	MaxImageHeight = 800
	JPEGQuality    = 85

	ThumbnailWidth   = 300
	ThumbnailHeight  = 200
	ThumbnailQuality = 90
)

type Processor struct {
	maxWidth    int
	maxHeight   int
	quality     int
	thumbWidth  int
	thumbHeight int
}

func NewProcessor() *Processor {
	return &Processor{
		maxWidth:    MaxImageWidth,
		maxHeight:   MaxImageHeight,
		quality:     JPEGQuality,
		thumbWidth:  ThumbnailWidth,
		thumbHeight: ThumbnailHeight,
	}
}

// Optimize normalizes an uploaded image: EXIF orientation is applied, alpha
// and palette images are flattened onto a white background, anything larger
// than the configured bounds is scaled down preserving aspect ratio (never
// up), and the result is re-encoded as JPEG.
func (p *Processor) Optimize(r io.Reader) (*storage.ProcessedImage, error) {
	img, err := decode(r)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.maxWidth || bounds.Dy() > p.maxHeight {
		img = imaging.Fit(img, p.maxWidth, p.maxHeight, imaging.Lanczos)
	}

	return encodeJPEG(img, p.quality)
}

// Thumbnail produces a small derived image that fits within the thumbnail
// box. Downscale-only fit-within semantics, no cropping.
func (p *Processor) Thumbnail(r io.Reader) (*storage.ProcessedImage, error) {
	img, err := decode(r)
	if err != nil {
		return nil, err
	}

	img = imaging.Fit(img, p.thumbWidth, p.thumbHeight, imaging.Lanczos)

	return encodeJPEG(img, ThumbnailQuality)
}

func decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return flatten(img), nil
}

// flatten composites non-opaque images onto a white background. The export
// format carries no alpha channel.
func flatten(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}
	bg := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	return imaging.Overlay(bg, img, image.Point{}, 1.0)
}

func encodeJPEG(img image.Image, quality int) (*storage.ProcessedImage, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}

	bounds := img.Bounds()
	return &storage.ProcessedImage{
		Data:        buf.Bytes(),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Size:        int64(buf.Len()),
		ContentType: "image/jpeg",
	}, nil
}
