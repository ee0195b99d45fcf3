package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"email_size_analyzer/internal/adaptors"
	"email_size_analyzer/internal/application/config"
	domain "email_size_analyzer/internal/domain/adaptors"
	"email_size_analyzer/internal/pkg/cache"
	"email_size_analyzer/internal/service"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

type Router struct {
	httpRouter *chi.Mux
	log        *log.Logger
	deps       *dependencies
}

type dependencies struct {
	analyzer   *service.Analyzer
	compressor *service.ImageCompressor
	webClient  domain.WebClient
	cache      domain.VerdictCache
	closers    []func() error
}

func newDependencies(ctx context.Context, log *log.Logger, appCfg *config.AppConfig) (*dependencies, error) {
	d := &dependencies{
		analyzer:   service.NewAnalyzer(log, Heuristics(appCfg.Savings), appCfg.BatchWorkers),
		compressor: service.NewImageCompressor(log, adaptors.NewImageCodec(log)),
		webClient:  adaptors.NewWebClient(appCfg.ImageFetchTimeout, appCfg.ImageFetchMaxBytes, appCfg.ImageFetchAllowPrivate, log),
	}

	switch appCfg.CacheBackend {
	case config.CacheMemory:
		d.cache = cache.New(appCfg.CacheTTL, appCfg.CacheMaxEntries)
	case config.CacheRedis:
		rc, err := adaptors.NewRedisVerdictCache(ctx, adaptors.RedisConfig{
			Addr:     appCfg.RedisAddr,
			Password: appCfg.RedisPassword,
			DB:       appCfg.RedisDB,
			TTL:      appCfg.CacheTTL,
		}, log)
		if err != nil {
			return nil, err
		}
		d.cache = rc
		d.closers = append(d.closers, rc.Close)
	}
	log.Infof(`verdict cache backend: %s`, appCfg.CacheBackend)

	return d, nil
}

// Heuristics applies non-zero overrides on top of the default savings estimates.
func Heuristics(s config.Savings) service.SavingsHeuristics {
	h := service.DefaultSavingsHeuristics()
	override := func(dst *uint64, v uint64) {
		if v > 0 {
			*dst = v
		}
	}
	override(&h.BytesPerExcessTable, s.Table)
	override(&h.BytesPerExcessInlineStyle, s.InlineStyle)
	override(&h.BytesPerExcessNestingLevel, s.NestingLevel)
	override(&h.BytesPerEmptySpan, s.EmptySpan)
	override(&h.BytesPerComment, s.Comment)
	override(&h.BytesPerNbsp, s.Nbsp)
	override(&h.BytesPerExcessWord, s.Word)
	return h
}

func Init(ctx context.Context, log *log.Logger, appCfg *config.AppConfig) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	cfg, err := NewHTTPServerConfig()
	if err != nil {
		log.Fatalf(`Failed to load config: %v`, err)
	}

	deps, err := newDependencies(ctx, log, appCfg)
	if err != nil {
		log.Fatalf(`Failed to init dependencies: %v`, err)
	}

	router := &Router{
		httpRouter: chi.NewRouter(),
		log:        log,
		deps:       deps,
	}

	initRoutes(ctx, router)

	metricsServer := NewMetricsServer(appCfg.MetricsHost, cfg.Timeouts.ShutdownWait, log)
	go logStartError(log, `metrics`, metricsServer.Start)

	httpServer := NewHttpServer(ctx, cfg, router.httpRouter, log)
	go logStartError(log, `http`, httpServer.Start)

	// pprof handlers live on http.DefaultServeMux, registered by main
	var pprofServer *PprofServer
	if appCfg.DebugMode {
		pprofServer = NewPprofServer(appCfg.PprofHost, cfg.Timeouts.ShutdownWait, log)
		go logStartError(log, `pprof`, pprofServer.Start)
	}

	<-sigs
	if err = httpServer.Stop(); err != nil {
		log.Error(err)
	}

	if pprofServer != nil {
		if err = pprofServer.Stop(); err != nil {
			log.Error(err)
		}
	}

	if err = metricsServer.Stop(); err != nil {
		log.Error(err)
	}

	for _, closeFn := range deps.closers {
		if err = closeFn(); err != nil {
			log.WithError(err).Error(`failed to close dependency`)
		}
	}
}

func logStartError(log *log.Logger, name string, start func() error) {
	if err := start(); err != nil {
		log.WithError(err).Errorf(`%s server stopped unexpectedly`, name)
	}
}
