package fopbridge

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/pollschema/infrastructure/web"
)

func TestRecordsResponse_EmptyListIsNotNull(t *testing.T) {
	data, _, err := NewRecordsResponse[string](nil).Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"records":[],"total":0}`, string(data))
}

func TestRecordResponse(t *testing.T) {
	resp := NewRecordResponse(map[string]string{"id": "c123456789"})
	data, ct, err := resp.Encode()
	require.NoError(t, err)
	assert.Equal(t, web.ContentTypeJSON, ct)
	assert.Equal(t, http.StatusOK, resp.HTTPStatus())
	assert.JSONEq(t, `{"record":{"id":"c123456789"}}`, string(data))
}

func TestCodeResponse(t *testing.T) {
	data, _, err := NewCodeResponse("ok", "ready").Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"ok","message":"ready"}`, string(data))
}
