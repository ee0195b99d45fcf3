package service

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"time"

	"email_size_analyzer/internal/domain/adaptors"
	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/metrics"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

type ImageCompressor struct {
	log   *log.Logger
	codec adaptors.ImageCodec
}

func NewImageCompressor(log *log.Logger, codec adaptors.ImageCodec) *ImageCompressor {
	return &ImageCompressor{
		log:   log,
		codec: codec,
	}
}

// NormalizeConfig fills zero values with defaults and clamps the rest into a
// usable range. It never rejects a config.
func NormalizeConfig(cfg models.CompressionConfig) models.CompressionConfig {
	if cfg.TargetWidth <= 0 {
		cfg.TargetWidth = models.ImageDefaultWidth
	}
	if cfg.MaxSizeBytes <= 0 {
		cfg.MaxSizeBytes = models.ImageTargetBytes
	}
	if cfg.MaxSizeBytes > models.ImageCeilingBytes {
		cfg.MaxSizeBytes = models.ImageCeilingBytes
	}
	cfg.Format = models.ParseImageFormat(string(cfg.Format))
	if cfg.Quality <= 0 {
		cfg.Quality = models.DefaultQuality
	}
	if cfg.Quality > 100 {
		cfg.Quality = 100
	}
	if cfg.MinQuality <= 0 {
		cfg.MinQuality = models.DefaultMinQuality
	}
	if cfg.MinQuality > cfg.Quality {
		cfg.MinQuality = cfg.Quality
	}
	if cfg.QualityStep <= 0 {
		cfg.QualityStep = models.DefaultQualityStep
	}
	if cfg.StripMetadata == nil {
		strip := true
		cfg.StripMetadata = &strip
	}
	return cfg
}

// MaxAttempts is the hard bound on encodes for a normalized config:
// ceil((quality - min) / step) + 1.
func MaxAttempts(cfg models.CompressionConfig) int {
	span := cfg.Quality - cfg.MinQuality
	if span <= 0 {
		return 1
	}
	return (span+cfg.QualityStep-1)/cfg.QualityStep + 1
}

// Compress resizes the image once and re-encodes it at falling quality until
// it fits both MaxSizeBytes and the source size, or the minimum quality is
// reached. The result is never larger than the source when the output format
// matches it: the source bytes are returned instead. Missing either bound is
// reported as a warning on a successful result; only undecodable input yields
// Success=false.
func (c *ImageCompressor) Compress(data []byte, cfg models.CompressionConfig) *models.CompressionResult {
	start := time.Now()
	cfg = NormalizeConfig(cfg)
	result := &models.CompressionResult{
		OriginalSizeBytes: len(data),
		FormatUsed:        cfg.Format,
	}

	fail := func(err error) *models.CompressionResult {
		c.log.WithError(err).Error(`image compression failed`)
		result.Success = false
		result.Error = err.Error()
		result.ProcessingTimeMs = time.Since(start).Milliseconds()
		metrics.ImageCompressionsTotal.WithLabelValues(string(cfg.Format), `failed`).Inc()
		return result
	}

	src, srcFormat, err := c.codec.Decode(data)
	if err != nil {
		return fail(err)
	}

	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return fail(fmt.Errorf(`image has no pixels (%dx%d)`, srcW, srcH))
	}
	result.OriginalDimensions = models.Dimensions{Width: srcW, Height: srcH}

	width := min(cfg.TargetWidth, srcW)
	height := max(1, int(math.Round(float64(srcH)*float64(width)/float64(srcW))))
	canvas := resize(src, width, height, cfg.Format == models.FormatJPEG)

	// Encoding from pixels drops EXIF and ICC data. Only JPEG to JPEG can
	// carry them over when stripping is off.
	var keep []byte
	if !*cfg.StripMetadata {
		if srcFormat == string(models.FormatJPEG) && cfg.Format == models.FormatJPEG {
			keep = jpegMetadataSegments(data)
		} else {
			c.log.Debugf(`metadata cannot be kept when converting %s to %s`, srcFormat, cfg.Format)
		}
	}

	budget := min(cfg.MaxSizeBytes, len(data))
	quality := cfg.Quality
	maxAttempts := MaxAttempts(cfg)
	var encoded []byte
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		encoded, err = c.codec.Encode(canvas, cfg.Format, quality)
		if err != nil {
			return fail(err)
		}
		encoded = withJPEGMetadata(encoded, keep)
		result.Attempts = attempt
		c.log.Debugf(`compression attempt %d: quality %d produced %d bytes`, attempt, quality, len(encoded))

		if len(encoded) <= budget || quality <= cfg.MinQuality {
			break
		}
		quality = max(quality-cfg.QualityStep, cfg.MinQuality)
	}

	result.Bytes = encoded
	result.MetadataStripped = len(keep) == 0
	result.QualityUsed = uint8(quality)
	result.Dimensions = models.Dimensions{Width: width, Height: height}

	var warnings []string
	if len(encoded) > len(data) {
		if srcFormat == string(cfg.Format) {
			result.Bytes = data
			result.SourceReturned = true
			result.MetadataStripped = false
			result.QualityUsed = 0
			result.Dimensions = result.OriginalDimensions
			if width != srcW {
				warnings = append(warnings, fmt.Sprintf(`re-encoding at %dx%d grew the image, original %dx%d returned`,
					width, height, srcW, srcH))
			}
		} else {
			warnings = append(warnings, fmt.Sprintf(`%s output is %d bytes, larger than the %d byte %s source`,
				cfg.Format, len(encoded), len(data), srcFormat))
		}
	}

	result.Success = true
	result.MimeType = cfg.Format.MimeType()
	result.FinalSizeBytes = len(result.Bytes)
	if result.FinalSizeBytes > 0 {
		result.CompressionRatio = round2(float64(result.OriginalSizeBytes) / float64(result.FinalSizeBytes))
	}
	if result.OriginalSizeBytes > 0 {
		result.PercentReduction = round2((1 - float64(result.FinalSizeBytes)/float64(result.OriginalSizeBytes)) * 100)
	}

	outcome := `success`
	if result.FinalSizeBytes > cfg.MaxSizeBytes {
		outcome = `over_ceiling`
		warnings = append(warnings, fmt.Sprintf(`could not reach %d bytes: best effort is %d bytes at quality %d`,
			cfg.MaxSizeBytes, result.FinalSizeBytes, quality))
		c.log.WithFields(log.Fields{
			`max_size_bytes`: cfg.MaxSizeBytes,
			`final_bytes`:    result.FinalSizeBytes,
			`quality`:        quality,
		}).Warn(`image ceiling not met at minimum quality`)
	}
	result.Warning = strings.Join(warnings, `; `)

	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	metrics.ImageCompressionsTotal.WithLabelValues(string(cfg.Format), outcome).Inc()
	metrics.ImageCompressionAttempts.Observe(float64(result.Attempts))
	return result
}

// resize scales src into a fresh RGBA canvas. JPEG has no alpha channel, so
// transparent pixels are flattened onto white first.
func resize(src image.Image, width, height int, flatten bool) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if flatten {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
