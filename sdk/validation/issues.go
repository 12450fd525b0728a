package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Issue codes.
const (
	CodeRequired         = "required"
	CodeInvalidString    = "invalid_string"
	CodeInvalidEnumValue = "invalid_enum_value"
	CodeTooSmall         = "too_small"
	CodeTooBig           = "too_big"
	CodeInvalidType      = "invalid_type"
	CodeUnrecognizedKeys = "unrecognized_keys"
	CodeInvalidJSON      = "invalid_json"
	CodeUniqueSelector   = "unique_selector"
	CodeConflict         = "conflicting_fields"
	CodeInvalidInput     = "invalid_input"
)

// UniqueSelectorTag is the tag reported by struct rules that require at least
// one unique selector on a where-unique input.
const UniqueSelectorTag = "unique_selector"

// Issue is one failing path in a payload.
type Issue struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
}

// Issues is the structured error returned for an invalid payload.
type Issues []Issue

func (is Issues) Error() string {
	parts := make([]string, 0, len(is))
	for _, i := range is {
		if i.Path == "" {
			parts = append(parts, i.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", i.Path, i.Message))
	}
	return strings.Join(parts, "; ")
}

// Paths lists the failing paths in order.
func (is Issues) Paths() []string {
	out := make([]string, len(is))
	for i, issue := range is {
		out[i] = issue.Path
	}
	return out
}

// AsIssues extracts Issues from err.
func AsIssues(err error) (Issues, bool) {
	var is Issues
	if errors.As(err, &is) {
		return is, true
	}
	return nil, false
}

// FromDecodeError converts a JSON decoding failure into Issues so callers can
// report malformed and mistyped payloads the same way as rule failures.
func FromDecodeError(err error) Issues {
	if err == nil {
		return nil
	}

	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return Issues{{
			Code:    CodeInvalidJSON,
			Message: fmt.Sprintf("malformed JSON at offset %d: %s", syn.Offset, syn.Error()),
		}}
	}

	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return Issues{{
			Path:    te.Field,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected %s, received %s", typeName(te.Type), te.Value),
		}}
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Issues{{Code: CodeInvalidJSON, Message: "payload is empty or truncated"}}
	}

	msg := err.Error()
	if key, ok := strings.CutPrefix(msg, "json: unknown field "); ok {
		key = strings.Trim(key, `"`)
		return Issues{{
			Code:    CodeUnrecognizedKeys,
			Message: fmt.Sprintf("unrecognized key %q", key),
			Param:   key,
		}}
	}

	return Issues{{Code: CodeInvalidInput, Message: msg}}
}

var timeType = reflect.TypeOf(time.Time{})

func typeName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	if t == timeType {
		return "date-time string"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Pointer:
		return typeName(t.Elem())
	default:
		return "object"
	}
}

func codeFor(tag string) string {
	switch tag {
	case "required", "required_with", "required_without", "required_without_all":
		return CodeRequired
	case "email", "url", "uri", "uuid", "uuid4", "cuid", "slug":
		return CodeInvalidString
	case "enum", "oneof":
		return CodeInvalidEnumValue
	case "min", "gte", "gt":
		return CodeTooSmall
	case "max", "lte", "lt":
		return CodeTooBig
	case "excluded_with":
		return CodeConflict
	case UniqueSelectorTag:
		return CodeUniqueSelector
	default:
		return CodeInvalidInput
	}
}

func messageFor(fe validator.FieldError) string {
	name := CamelCaseToTitleCase(fe.Field())
	if name == "" {
		name = "Value"
	}

	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "url", "uri":
		return name + " must be a valid URL"
	case "uuid", "uuid4":
		return name + " must be a valid UUID"
	case "cuid":
		return name + " must be a valid CUID"
	case "slug":
		return name + " must be a lowercase slug"
	case "enum":
		return fmt.Sprintf("%s has an unknown value %v", name, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, fe.Param())
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must contain at least %s character(s)", name, fe.Param())
		}
		if isSized(fe.Kind()) {
			return fmt.Sprintf("%s must contain at least %s item(s)", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must contain at most %s character(s)", name, fe.Param())
		}
		if isSized(fe.Kind()) {
			return fmt.Sprintf("%s must contain at most %s item(s)", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "excluded_with":
		return fmt.Sprintf("%s cannot be combined with %s", name, CamelCaseToTitleCase(fe.Param()))
	case UniqueSelectorTag:
		return fmt.Sprintf("at least one of %s is required", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed the %s rule", name, fe.Tag())
	}
}

func isSized(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array || k == reflect.Map
}
