package models

const (
	ImageTargetBytes  = 100 * 1024
	ImageCeilingBytes = 150 * 1024
	ImageDefaultWidth = 600

	DefaultQuality     = 85
	DefaultMinQuality  = 40
	DefaultQualityStep = 5
)

type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatWebP ImageFormat = "webp"
	FormatPNG  ImageFormat = "png"
)

func (f ImageFormat) MimeType() string {
	switch f {
	case FormatWebP:
		return "image/webp"
	case FormatPNG:
		return "image/png"
	}
	return "image/jpeg"
}

// ParseImageFormat maps user input to a format, falling back to JPEG.
func ParseImageFormat(s string) ImageFormat {
	switch s {
	case "webp", "image/webp":
		return FormatWebP
	case "png", "image/png":
		return FormatPNG
	}
	return FormatJPEG
}

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type CompressionConfig struct {
	TargetWidth   int         `json:"target_width"`
	MaxSizeBytes  int         `json:"max_size_bytes"`
	Format        ImageFormat `json:"format"`
	Quality       int         `json:"quality"`
	MinQuality    int         `json:"min_quality"`
	QualityStep   int         `json:"quality_step"`
	// StripMetadata is nil when unset, which strips.
	StripMetadata *bool       `json:"strip_metadata,omitempty"`
}

func DefaultCompressionConfig() CompressionConfig {
	strip := true
	return CompressionConfig{
		TargetWidth:   ImageDefaultWidth,
		MaxSizeBytes:  ImageTargetBytes,
		Format:        FormatJPEG,
		Quality:       DefaultQuality,
		MinQuality:    DefaultMinQuality,
		QualityStep:   DefaultQualityStep,
		StripMetadata: &strip,
	}
}

type CompressionResult struct {
	Success            bool        `json:"success"`
	Bytes              []byte      `json:"-"`
	MimeType           string      `json:"mime_type,omitempty"`
	OriginalSizeBytes  int         `json:"original_size_bytes"`
	FinalSizeBytes     int         `json:"final_size_bytes"`
	CompressionRatio   float64     `json:"compression_ratio"`
	PercentReduction   float64     `json:"percent_reduction"`
	QualityUsed        uint8       `json:"quality_used"`
	FormatUsed         ImageFormat `json:"format_used,omitempty"`
	Dimensions         Dimensions  `json:"dimensions"`
	OriginalDimensions Dimensions  `json:"original_dimensions"`
	Attempts           int         `json:"attempts"`
	SourceReturned     bool        `json:"source_returned"`
	MetadataStripped   bool        `json:"metadata_stripped"`
	ProcessingTimeMs   int64       `json:"processing_time_ms"`
	Warning            string      `json:"warning,omitempty"`
	Error              string      `json:"error,omitempty"`
}
