package handlers

import (
	"fmt"
	"net/http"

	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/errors"
	"email_size_analyzer/internal/service"

	log "github.com/sirupsen/logrus"
)

const maxBatchVariants = 50

type BatchHandler struct {
	service *service.Analyzer
	log     *log.Logger
}

type BatchRequest struct {
	Variants        []models.Variant `json:"variants"`
	IncludeEnvelope *bool            `json:"include_envelope"`
}

func (r *BatchRequest) Validate() error {
	if len(r.Variants) == 0 {
		return errors.Mark(errors.ErrEmptyBatch, nil)
	}
	if len(r.Variants) > maxBatchVariants {
		return errors.Mark(errors.ErrInvalidRequest, fmt.Errorf(`at most %d variants per batch`, maxBatchVariants))
	}
	for i, v := range r.Variants {
		if v.ID == "" {
			return errors.Mark(errors.ErrInvalidRequest, fmt.Errorf(`variant %d has no id`, i))
		}
	}
	return nil
}

func NewBatchHandler(service *service.Analyzer, log *log.Logger) *BatchHandler {
	return &BatchHandler{
		service: service,
		log:     log,
	}
}

func (h *BatchHandler) Handle(w http.ResponseWriter, r *http.Request) {
	h.log.Debug(`batch analysis handler called`)

	var request BatchRequest
	if err := decodeBody(w, r, &request); err != nil {
		sendError(w, h.log, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}

	if err := request.Validate(); err != nil {
		sendError(w, h.log, `failed to validate request body`, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.AnalyzeBatch(r.Context(), request.Variants, boolOr(request.IncludeEnvelope, true))
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, errors.ErrEmptyBatch) {
			code = http.StatusBadRequest
		}
		sendError(w, h.log, `failed to analyze batch`, err, code)
		return
	}

	sendJSON(w, h.log, http.StatusOK, result)
}
