package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"email_size_analyzer/internal/domain/adaptors"
	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/errors"
)

// ImageRequest names an image either inline or by URL, plus optional
// compression overrides. Omitted overrides take the compressor defaults.
type ImageRequest struct {
	ImageBase64   string `json:"image_base64"`
	ImageURL      string `json:"image_url"`
	TargetWidth   int    `json:"target_width"`
	MaxSizeBytes  int    `json:"max_size_bytes"`
	Format        string `json:"format"`
	Quality       int    `json:"quality"`
	MinQuality    int    `json:"min_quality"`
	QualityStep   int    `json:"quality_step"`
	StripMetadata *bool  `json:"strip_metadata"`
}

func (r *ImageRequest) HasImage() bool {
	return r.ImageBase64 != "" || r.ImageURL != ""
}

func (r *ImageRequest) Validate() error {
	if r.ImageBase64 == "" && r.ImageURL == "" {
		return errors.Mark(errors.ErrInvalidRequest, fmt.Errorf(`one of image_base64 or image_url is required`))
	}
	if r.ImageBase64 != "" && r.ImageURL != "" {
		return errors.Mark(errors.ErrInvalidRequest, fmt.Errorf(`image_base64 and image_url are mutually exclusive`))
	}
	if r.ImageURL != "" && !strings.HasPrefix(r.ImageURL, "http://") && !strings.HasPrefix(r.ImageURL, "https://") {
		return errors.Mark(errors.ErrInvalidRequest, fmt.Errorf(`image_url must be http or https`))
	}
	return nil
}

func (r *ImageRequest) Config() models.CompressionConfig {
	return models.CompressionConfig{
		TargetWidth:   r.TargetWidth,
		MaxSizeBytes:  r.MaxSizeBytes,
		Format:        models.ParseImageFormat(strings.ToLower(r.Format)),
		Quality:       r.Quality,
		MinQuality:    r.MinQuality,
		QualityStep:   r.QualityStep,
		StripMetadata: r.StripMetadata,
	}
}

// Load returns the raw image bytes with the HTTP status to use on failure.
func (r *ImageRequest) Load(ctx context.Context, client adaptors.WebClient) ([]byte, int, error) {
	if r.ImageURL != "" {
		data, _, err := client.Fetch(ctx, r.ImageURL)
		if err != nil {
			return nil, http.StatusBadGateway, err
		}
		return data, http.StatusOK, nil
	}

	payload := r.ImageBase64
	if i := strings.Index(payload, ";base64,"); strings.HasPrefix(payload, "data:") && i >= 0 {
		payload = payload[i+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, http.StatusBadRequest, errors.Mark(errors.ErrInvalidRequest, err)
	}
	return data, http.StatusOK, nil
}

// CompressResponse is the compression report with the output bytes inlined.
type CompressResponse struct {
	*models.CompressionResult
	Data string `json:"data,omitempty"`
}

func newCompressResponse(res *models.CompressionResult) *CompressResponse {
	resp := &CompressResponse{CompressionResult: res}
	if res.Success {
		resp.Data = base64.StdEncoding.EncodeToString(res.Bytes)
	}
	return resp
}
