// Package query holds the building blocks shared by every model's query
// inputs: scalar and relation filters, ordering, update operations, nested
// writes and the operation argument envelopes.
//
// Every type decodes strictly. Unknown keys are rejected at any depth, and
// shorthand forms (a bare value for a filter or update, a single object where
// a list is accepted) are expanded on decode.
package query

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"reflect"
)

// ErrTrailingData is returned when a payload holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// DecodeStrict decodes data into v and rejects unknown object keys.
func DecodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// jsonKind returns the first significant byte of data: '{', '[', '"', 'n',
// 't', 'f', or a digit or '-' for numbers. Empty input returns 0.
func jsonKind(data []byte) byte {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

func kindName(k byte) string {
	switch k {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "bool"
	case 0:
		return "empty"
	default:
		return "number"
	}
}

// typeError builds the error encoding/json itself reports for a mismatched
// value, so the decoder fills in the field path on the way out.
func typeError[T any](data []byte) error {
	return &json.UnmarshalTypeError{
		Value: kindName(jsonKind(data)),
		Type:  reflect.TypeFor[T](),
	}
}

// objectKeys returns the keys of a JSON object.
func objectKeys(data []byte) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func onlyKeys(m map[string]json.RawMessage, allowed ...string) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		found := false
		for _, a := range allowed {
			if k == a {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// splitObject moves the named keys of a JSON object into a second object.
// Non-object input is returned untouched as base.
func splitObject(data []byte, keys ...string) (base, picked []byte, err error) {
	if jsonKind(data) != '{' {
		return data, nil, nil
	}
	m, err := objectKeys(data)
	if err != nil {
		return nil, nil, err
	}
	out := make(map[string]json.RawMessage)
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
			delete(m, k)
		}
	}
	if base, err = json.Marshal(m); err != nil {
		return nil, nil, err
	}
	if len(out) == 0 {
		return base, nil, nil
	}
	if picked, err = json.Marshal(out); err != nil {
		return nil, nil, err
	}
	return base, picked, nil
}

// mergeObjects marshals each part and merges the resulting objects. Later
// parts win on duplicate keys.
func mergeObjects(parts ...any) ([]byte, error) {
	out := make(map[string]json.RawMessage)
	for _, p := range parts {
		b, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		if jsonKind(b) != '{' {
			return nil, fmt.Errorf("merge objects: %T did not encode to an object", p)
		}
		var m map[string]json.RawMessage
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, err
		}
		maps.Copy(out, m)
	}
	return json.Marshal(out)
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
