package handlers

import (
	"net/http"

	"email_size_analyzer/internal/domain/adaptors"
	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/service"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// CheckHandler runs the markup and image pipelines for one campaign side by side.
type CheckHandler struct {
	analyzer   service.EmailSizeAnalyzer
	compressor *service.ImageCompressor
	client     adaptors.WebClient
	log        *log.Logger
}

// CheckRequest carries the markup fields and, optionally, one image.
type CheckRequest struct {
	AnalyzeRequest
	ImageRequest
}

type CheckResponse struct {
	Verdict *models.SizeVerdict `json:"verdict"`
	Image   *CompressResponse   `json:"image,omitempty"`
}

func NewCheckHandler(analyzer service.EmailSizeAnalyzer, compressor *service.ImageCompressor, client adaptors.WebClient, log *log.Logger) *CheckHandler {
	return &CheckHandler{
		analyzer:   analyzer,
		compressor: compressor,
		client:     client,
		log:        log,
	}
}

func (h *CheckHandler) Handle(w http.ResponseWriter, r *http.Request) {
	h.log.Debug(`check handler called`)

	var request CheckRequest
	if err := decodeBody(w, r, &request); err != nil {
		sendError(w, h.log, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}

	if request.HasImage() {
		if err := request.ImageRequest.Validate(); err != nil {
			sendError(w, h.log, `failed to validate request body`, err, http.StatusBadRequest)
			return
		}
	}

	var response CheckResponse
	failCode := http.StatusInternalServerError
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		response.Verdict = h.analyzer.Analyze(request.HTML, request.Options())
		return nil
	})

	if request.HasImage() {
		g.Go(func() error {
			data, code, err := request.Load(ctx, h.client)
			if err != nil {
				failCode = code
				return err
			}
			response.Image = newCompressResponse(h.compressor.Compress(data, request.Config()))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		sendError(w, h.log, `failed to check email`, err, failCode)
		return
	}

	sendJSON(w, h.log, http.StatusOK, response)
}
