// Package fopbridge holds the standard response envelopes shared by bridges.
// The constructors wrap each envelope in a web.JSONResponse, so handlers can
// return them directly.
package fopbridge

import (
	"github.com/jrazmi/pollschema/infrastructure/web"
)

// ============================================================================
// Standard Response Types
// ============================================================================

// CodeResponse provides a standard response with code and message
type CodeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewCodeResponse(code, message string) *web.JSONResponse[CodeResponse] {
	return web.NewJSONResponse(CodeResponse{Code: code, Message: message})
}

// RecordResponse wraps a single record
type RecordResponse[T any] struct {
	Record T `json:"record"`
}

func NewRecordResponse[T any](record T) *web.JSONResponse[RecordResponse[T]] {
	return web.NewJSONResponse(RecordResponse[T]{Record: record})
}

// RecordsResponse wraps a full, unpaginated list of records.
type RecordsResponse[T any] struct {
	Records []T `json:"records"`
	Total   int `json:"total"`
}

func NewRecordsResponse[T any](records []T) *web.JSONResponse[RecordsResponse[T]] {
	if records == nil {
		records = []T{}
	}
	return web.NewJSONResponse(RecordsResponse[T]{Records: records, Total: len(records)})
}
