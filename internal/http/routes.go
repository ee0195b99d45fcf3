package http

import (
	"context"

	"email_size_analyzer/internal/http/handlers"
	"email_size_analyzer/internal/http/middleware"
)

func initRoutes(_ context.Context, r *Router) {
	r.httpRouter.Use(middleware.MetricsMiddleware)
	r.httpRouter.Use(middleware.RequestIDLoggerMiddleware(r.log))

	d := r.deps
	r.httpRouter.Get("/ready", handlers.NewReadyHandler().Handle)
	r.httpRouter.Post("/analyze", handlers.NewAnalyzeHandler(d.analyzer, d.cache, r.log).Handle)
	r.httpRouter.Post("/analyze/batch", handlers.NewBatchHandler(d.analyzer, r.log).Handle)
	r.httpRouter.Post("/sanitize", handlers.NewSanitizeHandler(d.analyzer, r.log).Handle)
	r.httpRouter.Post("/images/compress", handlers.NewCompressHandler(d.compressor, d.webClient, r.log).Handle)
	r.httpRouter.Post("/check", handlers.NewCheckHandler(d.analyzer, d.compressor, d.webClient, r.log).Handle)
}
