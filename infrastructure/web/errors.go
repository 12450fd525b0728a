package web

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is a bare error body for failures outside the errs package,
// such as a route that is not found.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"-"`
}

func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg, Status: http.StatusInternalServerError}
}

func NewErrorWithStatus(msg string, status int) ErrorResponse {
	return ErrorResponse{Error: msg, Status: status}
}

func (e ErrorResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, ContentTypeJSON, err
}

func (e ErrorResponse) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}
