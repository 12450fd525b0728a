package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/pollschema/sdk/validation"
)

func TestError_HTTPStatus(t *testing.T) {
	tests := map[ErrCode]int{
		BadRequest:      http.StatusBadRequest,
		InvalidArgument: http.StatusUnprocessableEntity,
		NotFound:        http.StatusNotFound,
		Internal:        http.StatusInternalServerError,
		InternalOnlyLog: http.StatusInternalServerError,
		Unavailable:     http.StatusServiceUnavailable,
		{value: "other"}: http.StatusInternalServerError,
	}
	for code, want := range tests {
		assert.Equal(t, want, Newf(code, "x").HTTPStatus(), code.Value())
	}
}

func TestError_Encode(t *testing.T) {
	e := NewIssues(validation.Issues{{Path: "data.question", Code: validation.CodeRequired, Message: "Question is required"}})

	data, ct, err := e.Encode()
	require.NoError(t, err)
	assert.Equal(t, "application/json; charset=utf-8", ct)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "invalid_argument", body["code"])
	assert.Equal(t, "payload has 1 issue(s)", body["message"])
	assert.Len(t, body["issues"], 1)
	assert.NotContains(t, body, "FileName")

	assert.Contains(t, e.FileName, "errs_test.go")
	assert.Contains(t, e.FuncName, "TestError_Encode")
}

func TestGetError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", New(NotFound, errors.New("model not found")))
	assert.True(t, IsError(wrapped))
	require.NotNil(t, GetError(wrapped))
	assert.Equal(t, NotFound, GetError(wrapped).Code)

	assert.False(t, IsError(errors.New("plain")))
	assert.Nil(t, GetError(errors.New("plain")))
}
