package http

import (
	"context"
	"net/http"
	"time"

	"email_size_analyzer/internal/pkg/errors"
	"email_size_analyzer/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// AuxServer serves operational endpoints next to the API: metrics or pprof.
type AuxServer struct {
	name    string
	timeout time.Duration
	server  *http.Server
	log     *log.Logger
}

type (
	MetricsServer = AuxServer
	PprofServer   = AuxServer
)

func NewMetricsServer(host string, timeout time.Duration, log *log.Logger) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.MetricsRegister(), promhttp.HandlerOpts{}))
	return newAuxServer(`metrics`, host, mux, timeout, log)
}

// NewPprofServer serves http.DefaultServeMux, where net/http/pprof registers.
func NewPprofServer(host string, timeout time.Duration, log *log.Logger) *PprofServer {
	return newAuxServer(`pprof`, host, nil, timeout, log)
}

func newAuxServer(name, host string, handler http.Handler, timeout time.Duration, log *log.Logger) *AuxServer {
	return &AuxServer{
		name: name,
		server: &http.Server{
			Addr:              host,
			Handler:           handler,
			ReadHeaderTimeout: timeout,
		},
		timeout: timeout,
		log:     log,
	}
}

func (s *AuxServer) Start() error {
	s.log.Infof("%s server starting on %s", s.name, s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, s.name+` server failed`)
	}
	return nil
}

func (s *AuxServer) Stop() error {
	if s.server == nil {
		return errors.New("server is not initialized")
	}
	s.log.Infof("shutting down %s server...", s.name)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, `failed to shutdown `+s.name+` server`)
	}

	s.log.Infof("%s server exiting", s.name)
	return nil
}
