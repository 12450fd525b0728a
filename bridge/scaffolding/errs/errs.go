// Package errs provides the application error type returned by handlers.
// An *Error is a web.Encoder, so handlers can return it directly.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/jrazmi/pollschema/sdk/validation"
)

// ErrCode is an application error category.
type ErrCode struct {
	value string
}

// Value returns the wire name of the code.
func (ec ErrCode) Value() string {
	return ec.value
}

func (ec ErrCode) String() string {
	return ec.value
}

var (
	BadRequest      = ErrCode{value: "bad_request"}
	InvalidArgument = ErrCode{value: "invalid_argument"}
	NotFound        = ErrCode{value: "not_found"}
	Internal        = ErrCode{value: "internal"}
	InternalOnlyLog = ErrCode{value: "internal_only_log"}
	Unavailable     = ErrCode{value: "unavailable"}
)

var httpStatus = map[ErrCode]int{
	BadRequest:      http.StatusBadRequest,
	InvalidArgument: http.StatusUnprocessableEntity,
	NotFound:        http.StatusNotFound,
	Internal:        http.StatusInternalServerError,
	InternalOnlyLog: http.StatusInternalServerError,
	Unavailable:     http.StatusServiceUnavailable,
}

// Error is the error body sent to clients. FuncName and FileName locate
// where it was created and are only logged.
type Error struct {
	Code     ErrCode           `json:"code"`
	Message  string            `json:"message"`
	Issues   validation.Issues `json:"issues,omitempty"`
	FuncName string            `json:"-"`
	FileName string            `json:"-"`
}

// New wraps err with the given code.
func New(code ErrCode, err error) *Error {
	e := &Error{Code: code, Message: err.Error()}
	e.locate(2)
	return e
}

// Newf builds an error from a format string.
func Newf(code ErrCode, format string, v ...any) *Error {
	e := &Error{Code: code, Message: fmt.Sprintf(format, v...)}
	e.locate(2)
	return e
}

// NewIssues reports a payload that failed validation.
func NewIssues(issues validation.Issues) *Error {
	e := &Error{
		Code:    InvalidArgument,
		Message: fmt.Sprintf("payload has %d issue(s)", len(issues)),
		Issues:  issues,
	}
	e.locate(2)
	return e
}

func (e *Error) locate(skip int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return
	}
	e.FileName = fmt.Sprintf("%s:%d", file, line)
	if fn := runtime.FuncForPC(pc); fn != nil {
		e.FuncName = fn.Name()
	}
}

func (e *Error) Error() string {
	return e.Message
}

// Encode implements web.Encoder.
func (e *Error) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json; charset=utf-8", err
}

// HTTPStatus implements the status hook used by web.Respond.
func (e *Error) HTTPStatus() int {
	if s, ok := httpStatus[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// IsError reports whether err wraps an *Error.
func IsError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// GetError returns the *Error wrapped by err, or nil.
func GetError(err error) *Error {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}
	return e
}

// MarshalText writes the wire name of the code.
func (ec ErrCode) MarshalText() ([]byte, error) {
	return []byte(ec.value), nil
}
