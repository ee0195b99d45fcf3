package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"email_size_analyzer/internal/application/config"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppConfig() *config.AppConfig {
	return &config.AppConfig{
		LogLevel:           "debug",
		MetricsHost:        ":0",
		BatchWorkers:       2,
		CacheBackend:       config.CacheMemory,
		CacheTTL:           time.Minute,
		CacheMaxEntries:    8,
		ImageFetchTimeout:  time.Second,
		ImageFetchMaxBytes: 1 << 20,
	}
}

func newTestRouter(t *testing.T, cfg *config.AppConfig) *Router {
	t.Helper()
	deps, err := newDependencies(context.Background(), log.New(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		for _, c := range deps.closers {
			_ = c()
		}
	})

	r := &Router{httpRouter: chi.NewRouter(), log: log.New(), deps: deps}
	initRoutes(context.Background(), r)
	return r
}

func TestRoutes(t *testing.T) {
	r := newTestRouter(t, testAppConfig())

	tests := []struct {
		method, path, body string
		wantCode           int
	}{
		{http.MethodGet, "/ready", "", http.StatusOK},
		{http.MethodPost, "/analyze", `{"html":"<p>x</p>"}`, http.StatusOK},
		{http.MethodPost, "/analyze/batch", `{"variants":[{"id":"a","html":"<p>x</p>"}]}`, http.StatusOK},
		{http.MethodPost, "/sanitize", `{"html":"<p>x</p>"}`, http.StatusOK},
		{http.MethodPost, "/images/compress", `{}`, http.StatusBadRequest},
		{http.MethodPost, "/check", `{"html":"<p>x</p>"}`, http.StatusOK},
		{http.MethodGet, "/analyze", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/missing", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			r.httpRouter.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("x-request-id"))
		})
	}
}

func TestNewDependencies_CacheBackends(t *testing.T) {
	cfg := testAppConfig()
	cfg.CacheBackend = config.CacheNone
	deps, err := newDependencies(context.Background(), log.New(), cfg)
	require.NoError(t, err)
	assert.Nil(t, deps.cache)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg.CacheBackend = config.CacheRedis
	cfg.RedisAddr = mr.Addr()
	deps, err = newDependencies(context.Background(), log.New(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, deps.cache)
	require.Len(t, deps.closers, 1)
	assert.NoError(t, deps.closers[0]())

	cfg.RedisAddr = "127.0.0.1:1"
	_, err = newDependencies(context.Background(), log.New(), cfg)
	assert.Error(t, err)
}
