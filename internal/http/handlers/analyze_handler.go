package handlers

import (
	"net/http"

	"email_size_analyzer/internal/domain/adaptors"
	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/metrics"
	"email_size_analyzer/internal/service"

	log "github.com/sirupsen/logrus"
)

type AnalyzeHandler struct {
	service service.EmailSizeAnalyzer
	cache   adaptors.VerdictCache
	log     *log.Logger
}

type AnalyzeRequest struct {
	HTML            string `json:"html"`
	Subject         string `json:"subject"`
	Preheader       string `json:"preheader"`
	IncludeEnvelope *bool  `json:"include_envelope"`
}

func (r *AnalyzeRequest) Options() service.AnalyzeOptions {
	return service.AnalyzeOptions{
		Subject:         r.Subject,
		Preheader:       r.Preheader,
		IncludeEnvelope: boolOr(r.IncludeEnvelope, true),
	}
}

// NewAnalyzeHandler builds the handler. cache may be nil to disable caching.
func NewAnalyzeHandler(service service.EmailSizeAnalyzer, cache adaptors.VerdictCache, log *log.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
		cache:   cache,
		log:     log,
	}
}

func (h *AnalyzeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	h.log.Debug(`analyze email handler called`)

	var request AnalyzeRequest
	if err := decodeBody(w, r, &request); err != nil {
		sendError(w, h.log, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}

	opts := request.Options()
	key := service.VerdictKey(request.HTML, opts)

	if verdict, ok := h.lookup(r, key); ok {
		sendJSON(w, h.log, http.StatusOK, verdict)
		return
	}

	verdict := h.service.Analyze(request.HTML, opts)

	if h.cache != nil && verdict.Error == "" {
		if err := h.cache.Set(r.Context(), key, verdict); err != nil {
			h.log.WithError(err).Warn(`failed to cache verdict`)
		}
	}

	sendJSON(w, h.log, http.StatusOK, verdict)
}

func (h *AnalyzeHandler) lookup(r *http.Request, key string) (*models.SizeVerdict, bool) {
	if h.cache == nil {
		return nil, false
	}

	verdict, ok, err := h.cache.Get(r.Context(), key)
	switch {
	case err != nil:
		h.log.WithError(err).Warn(`verdict cache lookup failed`)
		metrics.VerdictCacheLookupsTotal.WithLabelValues(`error`).Inc()
		return nil, false
	case ok:
		metrics.VerdictCacheLookupsTotal.WithLabelValues(`hit`).Inc()
		return verdict, true
	default:
		metrics.VerdictCacheLookupsTotal.WithLabelValues(`miss`).Inc()
		return nil, false
	}
}
