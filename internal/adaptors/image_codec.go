package adaptors

import (
	"bytes"
	"image"
	"image/color/palette"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/errors"

	"github.com/gen2brain/webp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// PNG is lossless, so quality drives the compression level and, below
// pngPaletteQuality, a reduction to a 256 color palette.
const (
	pngBestCompressionQuality = 90
	pngPaletteQuality         = 70
	webpMethod                = 4
)

type ImageCodec struct {
	log *log.Logger
}

func NewImageCodec(log *log.Logger) *ImageCodec {
	return &ImageCodec{log: log}
}

func (c *ImageCodec) Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", errors.Mark(errors.ErrDecodeImage, errors.New(`empty image payload`))
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		c.log.WithError(err).Error(`failed to decode image`)
		return nil, "", errors.Mark(errors.ErrDecodeImage, err)
	}
	return img, format, nil
}

func (c *ImageCodec) Encode(img image.Image, format models.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch format {
	case models.FormatWebP:
		err = webp.Encode(&buf, img, webp.Options{Quality: quality, Method: webpMethod})
	case models.FormatPNG:
		err = encodePNG(&buf, img, quality)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return nil, errors.Wrap(err, `failed to encode `+string(format))
	}
	return buf.Bytes(), nil
}

func encodePNG(buf *bytes.Buffer, img image.Image, quality int) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if quality < pngBestCompressionQuality {
		enc.CompressionLevel = png.BestCompression
	}
	if quality < pngPaletteQuality {
		img = quantize(img)
	}
	return enc.Encode(buf, img)
}

func quantize(img image.Image) image.Image {
	b := img.Bounds()
	dst := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(dst, b, img, b.Min)
	return dst
}
