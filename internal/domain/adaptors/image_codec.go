package adaptors

import (
	"image"

	"email_size_analyzer/internal/domain/models"
)

// ImageCodec decodes source payloads and re-encodes pixels. Encoding from
// decoded pixels carries no EXIF or color profile data.
type ImageCodec interface {
	Decode(data []byte) (image.Image, string, error)
	Encode(img image.Image, format models.ImageFormat, quality int) ([]byte, error)
}
