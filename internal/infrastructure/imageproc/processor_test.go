package imageproc_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/storage"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/imageproc"
)

func encodePNG(t *testing.T, img image.Image) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return bytes.NewReader(buf.Bytes())
}

func decodeResult(t *testing.T, p *storage.ProcessedImage) image.Image {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(p.Data))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	return img
}

func TestProcessor_Optimize(t *testing.T) {
	p := imageproc.NewProcessor()

	t.Run("downscales oversized image preserving aspect ratio", func(t *testing.T) {
		src := imaging.New(4000, 3000, color.NRGBA{R: 120, G: 60, B: 30, A: 255})

		result, err := p.Optimize(encodePNG(t, src))
		require.NoError(t, err)

		assert.LessOrEqual(t, result.Width, imageproc.MaxImageWidth)
		assert.LessOrEqual(t, result.Height, imageproc.MaxImageHeight)
		assert.Equal(t, "image/jpeg", result.ContentType)

		srcRatio := 4000.0 / 3000.0
		outRatio := float64(result.Width) / float64(result.Height)
		assert.InDelta(t, srcRatio, outRatio, 0.01)

		decoded := decodeResult(t, result)
		assert.Equal(t, result.Width, decoded.Bounds().Dx())
		assert.Equal(t, result.Height, decoded.Bounds().Dy())
	})

	t.Run("does not upscale small images", func(t *testing.T) {
		src := imaging.New(640, 480, color.NRGBA{R: 10, G: 10, B: 10, A: 255})

		result, err := p.Optimize(encodePNG(t, src))
		require.NoError(t, err)

		assert.Equal(t, 640, result.Width)
		assert.Equal(t, 480, result.Height)
	})

	t.Run("flattens transparency onto white", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 100, 100))
		// fully transparent input

		result, err := p.Optimize(encodePNG(t, src))
		require.NoError(t, err)

		decoded := decodeResult(t, result)
		r, g, b, _ := decoded.At(50, 50).RGBA()
		// JPEG is lossy, allow a small deviation from pure white
		assert.Greater(t, r>>8, uint32(250))
		assert.Greater(t, g>>8, uint32(250))
		assert.Greater(t, b>>8, uint32(250))
	})

	t.Run("bounds tall images by height", func(t *testing.T) {
		src := imaging.New(500, 4000, color.NRGBA{R: 5, G: 5, B: 5, A: 255})

		result, err := p.Optimize(encodePNG(t, src))
		require.NoError(t, err)

		assert.LessOrEqual(t, result.Height, imageproc.MaxImageHeight)
		assert.LessOrEqual(t, result.Width, imageproc.MaxImageWidth)
	})

	t.Run("fails on garbage input", func(t *testing.T) {
		result, err := p.Optimize(bytes.NewReader([]byte("not an image")))
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestProcessor_Thumbnail(t *testing.T) {
	p := imageproc.NewProcessor()

	t.Run("fits within thumbnail box", func(t *testing.T) {
		src := imaging.New(1600, 900, color.NRGBA{R: 40, G: 80, B: 160, A: 255})

		result, err := p.Thumbnail(encodePNG(t, src))
		require.NoError(t, err)

		assert.LessOrEqual(t, result.Width, imageproc.ThumbnailWidth)
		assert.LessOrEqual(t, result.Height, imageproc.ThumbnailHeight)
	})

	t.Run("does not upscale tiny images", func(t *testing.T) {
		src := imaging.New(80, 60, color.NRGBA{R: 40, G: 80, B: 160, A: 255})

		result, err := p.Thumbnail(encodePNG(t, src))
		require.NoError(t, err)

		assert.Equal(t, 80, result.Width)
		assert.Equal(t, 60, result.Height)
	})

	t.Run("fails on garbage input", func(t *testing.T) {
		result, err := p.Thumbnail(bytes.NewReader([]byte{0x00, 0x01}))
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
