package storage

import (
	"bytes"
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

type ImageStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	GetURL(key string) string
	Delete(ctx context.Context, key string) error
}

// ProcessedImage is a re-encoded, size-bounded image produced by the
// processor. The longer dimension never exceeds the configured maximum for
// the operation that produced it.
type ProcessedImage struct {
	Data        []byte
	Width       int
	Height      int
	Size        int64
	ContentType string
}

func (p *ProcessedImage) Reader() io.Reader {
	return bytes.NewReader(p.Data)
}

// ImageProcessor is a pure transform; it performs no I/O beyond reading the
// input. An error means no image was produced and callers keep prior state.
type ImageProcessor interface {
	Optimize(r io.Reader) (*ProcessedImage, error)
	Thumbnail(r io.Reader) (*ProcessedImage, error)
}
