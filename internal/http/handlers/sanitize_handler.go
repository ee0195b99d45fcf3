package handlers

import (
	"net/http"

	"email_size_analyzer/internal/service"

	log "github.com/sirupsen/logrus"
)

type SanitizeHandler struct {
	service *service.Analyzer
	log     *log.Logger
}

func NewSanitizeHandler(service *service.Analyzer, log *log.Logger) *SanitizeHandler {
	return &SanitizeHandler{
		service: service,
		log:     log,
	}
}

func (h *SanitizeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	h.log.Debug(`sanitize handler called`)

	var request AnalyzeRequest
	if err := decodeBody(w, r, &request); err != nil {
		sendError(w, h.log, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}

	sendJSON(w, h.log, http.StatusOK, h.service.SanitizeAndMeasure(request.HTML, request.Options()))
}
