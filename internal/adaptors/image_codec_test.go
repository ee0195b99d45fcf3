package adaptors

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/errors"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: uint8((x + y) % 256), A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageCodec_DecodeErrors(t *testing.T) {
	codec := NewImageCodec(log.New())

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty payload", data: nil},
		{name: "not an image", data: []byte("definitely not pixels")},
		{name: "truncated png", data: []byte("\x89PNG\r\n\x1a\n\x00\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, err := codec.Decode(tt.data)
			assert.Nil(t, img)
			assert.Empty(t, format)
			assert.True(t, errors.Is(err, errors.ErrDecodeImage))
		})
	}
}

func TestImageCodec_RoundTrip(t *testing.T) {
	codec := NewImageCodec(log.New())
	src := gradient(64, 48)

	tests := []struct {
		format     models.ImageFormat
		wantFormat string
	}{
		{format: models.FormatJPEG, wantFormat: "jpeg"},
		{format: models.FormatPNG, wantFormat: "png"},
		{format: models.FormatWebP, wantFormat: "webp"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			data, err := codec.Encode(src, tt.format, 80)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			img, format, err := codec.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, format)
			assert.Equal(t, src.Bounds().Size(), img.Bounds().Size())
		})
	}
}

func TestImageCodec_DecodeReportsSourceFormat(t *testing.T) {
	codec := NewImageCodec(log.New())
	_, format, err := codec.Decode(pngBytes(t, gradient(8, 8)))

	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestImageCodec_PNGPaletteBelowThreshold(t *testing.T) {
	codec := NewImageCodec(log.New())
	src := gradient(32, 32)

	high, err := codec.Encode(src, models.FormatPNG, 95)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(high))
	require.NoError(t, err)
	_, paletted := decoded.(*image.Paletted)
	assert.False(t, paletted)

	low, err := codec.Encode(src, models.FormatPNG, 50)
	require.NoError(t, err)
	decoded, err = png.Decode(bytes.NewReader(low))
	require.NoError(t, err)
	_, paletted = decoded.(*image.Paletted)
	assert.True(t, paletted)
}

func TestImageCodec_JPEGQualityShrinksOutput(t *testing.T) {
	codec := NewImageCodec(log.New())
	src := gradient(128, 128)

	high, err := codec.Encode(src, models.FormatJPEG, 95)
	require.NoError(t, err)
	low, err := codec.Encode(src, models.FormatJPEG, 20)
	require.NoError(t, err)

	assert.Less(t, len(low), len(high))
}
