package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Helpers(t *testing.T) {
	m := New("pollschema")
	ctx := Set(context.Background(), m)

	assert.EqualValues(t, 1, AddRequests(ctx))
	assert.EqualValues(t, 2, AddRequests(ctx))
	AddErrors(ctx)
	AddPanics(ctx)
	AddValidation(ctx, "Poll", "createArgs", OutcomeInvalid)
	AddValidation(ctx, "Poll", "createArgs", OutcomeInvalid)
	assert.Positive(t, AddGoroutines(ctx))

	body := scrape(t, m)
	assert.Contains(t, body, "pollschema_requests_total 2")
	assert.Contains(t, body, "pollschema_errors_total 1")
	assert.Contains(t, body, "pollschema_panics_total 1")
	assert.Contains(t, body, `pollschema_validations_total{model="Poll",outcome="invalid",shape="createArgs"} 2`)
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_NoMetricsOnContext(t *testing.T) {
	ctx := context.Background()
	assert.Zero(t, AddRequests(ctx))
	assert.Zero(t, AddGoroutines(ctx))
	assert.NotPanics(t, func() {
		AddErrors(ctx)
		AddPanics(ctx)
		AddValidation(ctx, "Poll", "record", OutcomeValid)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("pollschema")
	AddValidation(Set(context.Background(), m), "Vote", "record", OutcomeValid)

	body := scrape(t, m)
	assert.Contains(t, body, `pollschema_validations_total{model="Vote",outcome="valid",shape="record"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
