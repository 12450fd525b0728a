package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/pollschema/sdk/telemetry"
)

type echo struct {
	Name string `json:"name"`
}

func tag(name string, seen *[]string) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, r *http.Request) Encoder {
			*seen = append(*seen, name)
			return next(ctx, r)
		}
	}
}

func TestWebHandler_MiddlewareOrder(t *testing.T) {
	var seen []string
	wh := NewWebHandler(HandlerOptions{}, WithGlobalMiddleware(tag("global", &seen)))

	api := wh.Group("/api", tag("group", &seen))
	v1 := api.Group("/v1/", tag("v1", &seen))
	v1.GET("/ping", func(ctx context.Context, r *http.Request) Encoder {
		seen = append(seen, "handler")
		return NewJSONResponse(map[string]string{"status": "ok"})
	}, tag("route", &seen))

	rec := httptest.NewRecorder()
	wh.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, []string{"global", "group", "v1", "route", "handler"}, seen)
}

func TestWebHandler_Use(t *testing.T) {
	var seen []string
	wh := NewWebHandler(HandlerOptions{}, WithGlobalMiddleware(tag("option", &seen)))
	wh.Use(tag("first", &seen), tag("second", &seen))

	wh.GET("/ping", func(ctx context.Context, r *http.Request) Encoder { return nil })
	wh.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, []string{"option", "first", "second"}, seen)
}

func TestWebHandler_SiblingGroupsDoNotShareMiddleware(t *testing.T) {
	var seen []string
	wh := NewWebHandler(HandlerOptions{})

	api := wh.Group("/api", tag("api", &seen))
	a := api.Group("/a", tag("a", &seen))
	b := api.Group("/b", tag("b", &seen))
	ok := func(ctx context.Context, r *http.Request) Encoder { return nil }
	a.GET("/x", ok)
	b.GET("/x", ok)

	wh.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/b/x", nil))
	assert.Equal(t, []string{"api", "b"}, seen)
}

func TestWebHandler_ContextValues(t *testing.T) {
	wh := NewWebHandler(HandlerOptions{
		DefaultHeaders: map[string]string{"X-Service": "schemasvc"},
	}, WithTelemetry(telemetry.NewTelemetry()))

	var traceID string
	var writer http.ResponseWriter
	wh.GET("/models/{model}", func(ctx context.Context, r *http.Request) Encoder {
		traceID = telemetry.TraceID(ctx)
		writer = GetWriter(ctx)
		return &JSONResponse[echo]{Data: echo{Name: Param(r, "model") + QueryParam(r, "suffix")}, Status: http.StatusAccepted}
	})

	rec := httptest.NewRecorder()
	wh.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/models/Poll?suffix=s", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"name":"Polls"}`, rec.Body.String())
	assert.Equal(t, "schemasvc", rec.Header().Get("X-Service"))
	assert.Equal(t, ContentTypeJSON, rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, traceID)
	assert.NotNil(t, writer)
	assert.Nil(t, GetWriter(context.Background()))
}

func TestWebHandler_NilResponseIsNoContent(t *testing.T) {
	wh := NewWebHandler(HandlerOptions{})
	wh.POST("/noop", func(ctx context.Context, r *http.Request) Encoder { return nil })

	rec := httptest.NewRecorder()
	wh.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/noop", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestWebHandler_ErrorResponse(t *testing.T) {
	wh := NewWebHandler(HandlerOptions{})
	wh.GET("/missing", func(ctx context.Context, r *http.Request) Encoder {
		return NewErrorWithStatus("not here", http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	wh.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not here"}`, rec.Body.String())

	assert.Equal(t, http.StatusInternalServerError, NewError("boom").HTTPStatus())
}

func TestDecode(t *testing.T) {
	var v echo
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Vote"}`))
	require.NoError(t, Decode(r, &v))
	assert.Equal(t, "Vote", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("  "))
	assert.ErrorIs(t, Decode(r, &v), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Vote","extra":1}`))
	assert.ErrorContains(t, Decode(r, &v), "unknown field")
}

func TestWebHandler_MaxBodyBytes(t *testing.T) {
	wh := NewWebHandler(HandlerOptions{MaxBodyBytes: 8})

	var readErr error
	wh.POST("/body", func(ctx context.Context, r *http.Request) Encoder {
		_, readErr = Body(r)
		return nil
	})

	wh.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/body", strings.NewReader(`{"name":"too long"}`)))

	var maxErr *http.MaxBytesError
	require.Error(t, readErr)
	assert.True(t, errors.As(readErr, &maxErr))
}
