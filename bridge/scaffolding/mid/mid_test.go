package mid

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/pollschema/bridge/scaffolding/errs"
	"github.com/jrazmi/pollschema/bridge/scaffolding/metrics"
	"github.com/jrazmi/pollschema/infrastructure/web"
	"github.com/jrazmi/pollschema/sdk/logger"
)

func newHandler(t *testing.T, buf *bytes.Buffer, m *metrics.Metrics) *web.WebHandler {
	t.Helper()
	log := logger.NewDefault(logger.WithOutput(buf), logger.WithLevel("debug"))
	return web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(
		CORS("https://polls.example.com"),
		Logger(log),
		Errors(log),
		Metrics(m),
		Panics(),
	))
}

func serve(wh *web.WebHandler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Origin", "https://polls.example.com")
	wh.ServeHTTP(rec, req)
	return rec
}

func TestErrors_AppError(t *testing.T) {
	var buf bytes.Buffer
	wh := newHandler(t, &buf, metrics.New("test"))
	wh.GET("/missing", func(ctx context.Context, r *http.Request) web.Encoder {
		return errs.Newf(errs.NotFound, "model %q not found", "Comment")
	})

	rec := serve(wh, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":"not_found","message":"model \"Comment\" not found"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "handled error during request")
	assert.Contains(t, buf.String(), `"statuscode":404`)
}

func TestErrors_PlainErrorIsHidden(t *testing.T) {
	var buf bytes.Buffer
	wh := newHandler(t, &buf, metrics.New("test"))
	wh.GET("/boom", func(ctx context.Context, r *http.Request) web.Encoder {
		return errs.New(errs.InternalOnlyLog, errors.New("connection refused"))
	})

	rec := serve(wh, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"internal","message":"Internal Server Error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "connection refused")
}

func TestPanics(t *testing.T) {
	var buf bytes.Buffer
	m := metrics.New("test")
	wh := newHandler(t, &buf, m)
	wh.GET("/panic", func(ctx context.Context, r *http.Request) web.Encoder {
		panic("nil map")
	})

	rec := serve(wh, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "nil map")
	assert.Contains(t, buf.String(), "PANIC [nil map]")

	scrape := httptest.NewRecorder()
	m.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), "test_panics_total 1")
	assert.Contains(t, scrape.Body.String(), "test_errors_total 1")
	assert.Contains(t, scrape.Body.String(), "test_requests_total 1")
}

func TestCORS(t *testing.T) {
	var buf bytes.Buffer
	wh := newHandler(t, &buf, metrics.New("test"))

	called := false
	handler := func(ctx context.Context, r *http.Request) web.Encoder {
		called = true
		return web.NewJSONResponse(map[string]int{"models": 14})
	}
	wh.GET("/api/v1/models", handler)
	wh.OPTIONS("/api/v1/models", handler)

	rec := serve(wh, http.MethodGet, "/api/v1/models")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://polls.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.True(t, called)

	called = false
	rec = serve(wh, http.MethodOptions, "/api/v1/models")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called)
}

func TestCORS_UnknownOrigin(t *testing.T) {
	wh := web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(CORS("https://polls.example.com")))
	wh.GET("/x", func(ctx context.Context, r *http.Request) web.Encoder { return nil })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	wh.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	wh = web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(CORS()))
	wh.GET("/x", func(ctx context.Context, r *http.Request) web.Encoder { return nil })
	rec = httptest.NewRecorder()
	wh.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
