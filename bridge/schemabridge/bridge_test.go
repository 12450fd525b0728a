package schemabridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/pollschema/bridge/scaffolding/metrics"
	"github.com/jrazmi/pollschema/bridge/scaffolding/mid"
	"github.com/jrazmi/pollschema/core/schemas"
	"github.com/jrazmi/pollschema/infrastructure/web"
	"github.com/jrazmi/pollschema/sdk/logger"
)

type harness struct {
	handler http.Handler
	metrics *metrics.Metrics
}

func newHarness(t *testing.T, maxBody int64) harness {
	t.Helper()
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	m := metrics.New("pollschema")

	wh := web.NewWebHandler(web.HandlerOptions{MaxBodyBytes: maxBody}, web.WithGlobalMiddleware(
		mid.Logger(log),
		mid.Errors(log),
		mid.Metrics(m),
		mid.Panics(),
	))
	AddHttpRoutes(wh.Group("/api/v1"), Config{Log: log, Registry: schemas.Default()})
	wh.HandleRaw("GET /metrics", m.Handler())

	return harness{handler: wh, metrics: m}
}

func (h harness) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, httptest.NewRequest(method, target, r))

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestListModels(t *testing.T) {
	h := newHarness(t, 0)
	rec, body := h.do(t, http.MethodGet, "/api/v1/models", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 14, body["total"])

	records := body["records"].([]any)
	first := records[0].(map[string]any)
	assert.Equal(t, "User", first["name"])
	assert.Equal(t, "users", first["table"])
	assert.Contains(t, first["shapes"], "createArgs")
}

func TestHealth(t *testing.T) {
	h := newHarness(t, 0)

	rec, body := h.do(t, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["code"])
	assert.Equal(t, "14 models registered", body["message"])
}

func TestGetModel(t *testing.T) {
	h := newHarness(t, 0)

	rec, body := h.do(t, http.MethodGet, "/api/v1/models/vote", "")
	require.Equal(t, http.StatusOK, rec.Code)
	record := body["record"].(map[string]any)
	assert.Equal(t, "Vote", record["name"])
	assert.Equal(t, []any{"id", "optionId_userId", "optionId_voterToken"}, record["uniqueKeys"])

	rec, body = h.do(t, http.MethodGet, "/api/v1/models/comment", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", body["code"])
}

func TestValidate_Valid(t *testing.T) {
	h := newHarness(t, 0)
	categoryID := uuid.NewString()

	rec, body := h.do(t, http.MethodPost, "/api/v1/models/Poll/createArgs/validate",
		fmt.Sprintf(`{"data": {"question": "Tabs or spaces?", "categoryId": %q}}`, categoryID))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := body["record"].(map[string]any)["data"].(map[string]any)
	assert.Equal(t, categoryID, data["categoryId"])
	assert.Equal(t, "Tabs or spaces?", data["question"])
}

func TestValidate_Issues(t *testing.T) {
	h := newHarness(t, 0)

	rec, body := h.do(t, http.MethodPost, "/api/v1/models/poll/CREATEARGS/validate",
		`{"data": {"categoryId": "not-a-uuid"}}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "invalid_argument", body["code"])
	assert.NotEmpty(t, body["message"])

	paths := make([]string, 0)
	for _, i := range body["issues"].([]any) {
		paths = append(paths, i.(map[string]any)["path"].(string))
	}
	assert.Contains(t, paths, "data.question")
	assert.Contains(t, paths, "data.categoryId")
}

func TestValidate_MalformedAndUnknownKeys(t *testing.T) {
	h := newHarness(t, 0)

	rec, body := h.do(t, http.MethodPost, "/api/v1/models/Category/where/validate", `{"name": `)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	issue := body["issues"].([]any)[0].(map[string]any)
	assert.Equal(t, "invalid_json", issue["code"])

	rec, body = h.do(t, http.MethodPost, "/api/v1/models/Category/where/validate", `{"title": "x"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	issue = body["issues"].([]any)[0].(map[string]any)
	assert.Equal(t, "unrecognized_keys", issue["code"])
}

func TestValidate_NotFound(t *testing.T) {
	h := newHarness(t, 0)

	tests := []string{
		"/api/v1/models/Comment/record/validate",
		"/api/v1/models/Poll/aggregateArgs/validate",
		"/api/v1/models/VerificationToken/include/validate",
	}
	for _, target := range tests {
		rec, body := h.do(t, http.MethodPost, target, `{}`)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, "not_found", body["code"], target)
	}
}

func TestValidate_BodyTooLarge(t *testing.T) {
	h := newHarness(t, 16)

	rec, body := h.do(t, http.MethodPost, "/api/v1/models/Category/where/validate", `{"name": {"contains": "politics"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", body["code"])
}

func TestValidate_Metrics(t *testing.T) {
	h := newHarness(t, 0)

	h.do(t, http.MethodPost, "/api/v1/models/Category/where/validate", `{"name": "Politics"}`)
	h.do(t, http.MethodPost, "/api/v1/models/Category/where/validate", `{"name": 1}`)
	h.do(t, http.MethodPost, "/api/v1/models/Category/where/validate", `{"name": 2}`)

	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	out := rec.Body.Bytes()
	assert.True(t, bytes.Contains(out, []byte(`pollschema_validations_total{model="Category",outcome="valid",shape="where"} 1`)))
	assert.True(t, bytes.Contains(out, []byte(`pollschema_validations_total{model="Category",outcome="invalid",shape="where"} 2`)))
	assert.True(t, bytes.Contains(out, []byte(`pollschema_errors_total 2`)))
}
