package handlers

import (
	"net/http"

	"email_size_analyzer/internal/domain/adaptors"
	"email_size_analyzer/internal/service"

	log "github.com/sirupsen/logrus"
)

type CompressHandler struct {
	compressor *service.ImageCompressor
	client     adaptors.WebClient
	log        *log.Logger
}

func NewCompressHandler(compressor *service.ImageCompressor, client adaptors.WebClient, log *log.Logger) *CompressHandler {
	return &CompressHandler{
		compressor: compressor,
		client:     client,
		log:        log,
	}
}

func (h *CompressHandler) Handle(w http.ResponseWriter, r *http.Request) {
	h.log.Debug(`image compression handler called`)

	var request ImageRequest
	if err := decodeBody(w, r, &request); err != nil {
		sendError(w, h.log, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}

	if err := request.Validate(); err != nil {
		sendError(w, h.log, `failed to validate request body`, err, http.StatusBadRequest)
		return
	}

	data, code, err := request.Load(r.Context(), h.client)
	if err != nil {
		sendError(w, h.log, `failed to load image`, err, code)
		return
	}

	result := h.compressor.Compress(data, request.Config())
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	sendJSON(w, h.log, status, newCompressResponse(result))
}
