package query

import (
	"encoding/json"
	"time"
)

// QueryMode selects case sensitivity for string filters.
type QueryMode string

const (
	ModeDefault     QueryMode = "default"
	ModeInsensitive QueryMode = "insensitive"
)

func (m QueryMode) IsValid() bool {
	return m == ModeDefault || m == ModeInsensitive
}

// =============================================================================
// Required scalar filters
// =============================================================================

// Filter matches a required scalar column. A bare JSON value is shorthand for
// {"equals": value}.
type Filter[T any] struct {
	Equals *T         `json:"equals,omitempty"`
	In     []T        `json:"in,omitzero"`
	NotIn  []T        `json:"notIn,omitzero"`
	Lt     *T         `json:"lt,omitempty"`
	Lte    *T         `json:"lte,omitempty"`
	Gt     *T         `json:"gt,omitempty"`
	Gte    *T         `json:"gte,omitempty"`
	Not    *Filter[T] `json:"not,omitempty"`
}

type rawFilter[T any] Filter[T]

type (
	IntFilter      = Filter[int]
	FloatFilter    = Filter[float64]
	DateTimeFilter = Filter[time.Time]
)

func (f *Filter[T]) UnmarshalJSON(data []byte) error {
	switch jsonKind(data) {
	case 'n':
		return typeError[T](data)
	case '{':
		var raw rawFilter[T]
		if err := DecodeStrict(data, &raw); err != nil {
			return err
		}
		*f = Filter[T](raw)
	default:
		v := new(T)
		if err := DecodeStrict(data, v); err != nil {
			return err
		}
		*f = Filter[T]{Equals: v}
	}
	return nil
}

// StringFilter matches a required text column.
type StringFilter struct {
	Equals     *string       `json:"equals,omitempty"`
	In         []string      `json:"in,omitzero"`
	NotIn      []string      `json:"notIn,omitzero"`
	Lt         *string       `json:"lt,omitempty"`
	Lte        *string       `json:"lte,omitempty"`
	Gt         *string       `json:"gt,omitempty"`
	Gte        *string       `json:"gte,omitempty"`
	Contains   *string       `json:"contains,omitempty"`
	StartsWith *string       `json:"startsWith,omitempty"`
	EndsWith   *string       `json:"endsWith,omitempty"`
	Mode       QueryMode     `json:"mode,omitempty" validate:"omitempty,enum"`
	Not        *StringFilter `json:"not,omitempty"`
}

type rawStringFilter StringFilter

func (f *StringFilter) UnmarshalJSON(data []byte) error {
	switch jsonKind(data) {
	case 'n':
		return typeError[string](data)
	case '{':
		var raw rawStringFilter
		if err := DecodeStrict(data, &raw); err != nil {
			return err
		}
		*f = StringFilter(raw)
	default:
		v := new(string)
		if err := DecodeStrict(data, v); err != nil {
			return err
		}
		*f = StringFilter{Equals: v}
	}
	return nil
}

// BoolFilter matches a boolean column.
type BoolFilter struct {
	Equals *bool       `json:"equals,omitempty"`
	Not    *BoolFilter `json:"not,omitempty"`
}

type rawBoolFilter BoolFilter

func (f *BoolFilter) UnmarshalJSON(data []byte) error {
	switch jsonKind(data) {
	case 'n':
		return typeError[bool](data)
	case '{':
		var raw rawBoolFilter
		if err := DecodeStrict(data, &raw); err != nil {
			return err
		}
		*f = BoolFilter(raw)
	default:
		v := new(bool)
		if err := DecodeStrict(data, v); err != nil {
			return err
		}
		*f = BoolFilter{Equals: v}
	}
	return nil
}

// Enum is implemented by string enums so filters can check membership.
type Enum interface {
	~string
	IsValid() bool
}

// EnumFilter matches an enum column.
type EnumFilter[E Enum] struct {
	Equals *E             `json:"equals,omitempty" validate:"omitempty,enum"`
	In     []E            `json:"in,omitzero" validate:"omitempty,dive,enum"`
	NotIn  []E            `json:"notIn,omitzero" validate:"omitempty,dive,enum"`
	Not    *EnumFilter[E] `json:"not,omitempty"`
}

type rawEnumFilter[E Enum] EnumFilter[E]

func (f *EnumFilter[E]) UnmarshalJSON(data []byte) error {
	switch jsonKind(data) {
	case 'n':
		return typeError[E](data)
	case '{':
		var raw rawEnumFilter[E]
		if err := DecodeStrict(data, &raw); err != nil {
			return err
		}
		*f = EnumFilter[E](raw)
	default:
		v := new(E)
		if err := DecodeStrict(data, v); err != nil {
			return err
		}
		*f = EnumFilter[E]{Equals: v}
	}
	return nil
}

// =============================================================================
// Nullable scalar filters
// =============================================================================

// NullableFilter matches a nullable scalar column. A bare null matches rows
// where the column IS NULL, and {"not": null} matches IS NOT NULL.
type NullableFilter[T any] struct {
	Equals Nullable[T]        `json:"equals,omitzero"`
	In     []T                `json:"in,omitzero"`
	NotIn  []T                `json:"notIn,omitzero"`
	Lt     *T                 `json:"lt,omitempty"`
	Lte    *T                 `json:"lte,omitempty"`
	Gt     *T                 `json:"gt,omitempty"`
	Gte    *T                 `json:"gte,omitempty"`
	Not    *NullableFilter[T] `json:"not,omitempty"`
}

type nullableFilterJSON[T any] struct {
	Equals Nullable[T]     `json:"equals"`
	In     []T             `json:"in"`
	NotIn  []T             `json:"notIn"`
	Lt     *T              `json:"lt"`
	Lte    *T              `json:"lte"`
	Gt     *T              `json:"gt"`
	Gte    *T              `json:"gte"`
	Not    json.RawMessage `json:"not"`
}

type (
	IntNullableFilter      = NullableFilter[int]
	FloatNullableFilter    = NullableFilter[float64]
	DateTimeNullableFilter = NullableFilter[time.Time]
)

// IsNullMatch reports whether the filter is exactly "column IS NULL".
func (f NullableFilter[T]) IsNullMatch() bool {
	return f.Equals.IsNull()
}

func (f *NullableFilter[T]) UnmarshalJSON(data []byte) error {
	switch jsonKind(data) {
	case 'n':
		*f = NullableFilter[T]{Equals: Null[T]()}
	case '{':
		var raw nullableFilterJSON[T]
		if err := DecodeStrict(data, &raw); err != nil {
			return err
		}
		*f = NullableFilter[T]{
			Equals: raw.Equals,
			In:     raw.In,
			NotIn:  raw.NotIn,
			Lt:     raw.Lt,
			Lte:    raw.Lte,
			Gt:     raw.Gt,
			Gte:    raw.Gte,
		}
		if raw.Not != nil {
			f.Not = new(NullableFilter[T])
			if err := f.Not.UnmarshalJSON(raw.Not); err != nil {
				return err
			}
		}
	default:
		var v T
		if err := DecodeStrict(data, &v); err != nil {
			return err
		}
		*f = NullableFilter[T]{Equals: Some(v)}
	}
	return nil
}

// StringNullableFilter matches a nullable text column.
type StringNullableFilter struct {
	Equals     Nullable[string]      `json:"equals,omitzero"`
	In         []string              `json:"in,omitzero"`
	NotIn      []string              `json:"notIn,omitzero"`
	Lt         *string               `json:"lt,omitempty"`
	Lte        *string               `json:"lte,omitempty"`
	Gt         *string               `json:"gt,omitempty"`
	Gte        *string               `json:"gte,omitempty"`
	Contains   *string               `json:"contains,omitempty"`
	StartsWith *string               `json:"startsWith,omitempty"`
	EndsWith   *string               `json:"endsWith,omitempty"`
	Mode       QueryMode             `json:"mode,omitempty" validate:"omitempty,enum"`
	Not        *StringNullableFilter `json:"not,omitempty"`
}

type stringNullableFilterJSON struct {
	Equals     Nullable[string] `json:"equals"`
	In         []string         `json:"in"`
	NotIn      []string         `json:"notIn"`
	Lt         *string          `json:"lt"`
	Lte        *string          `json:"lte"`
	Gt         *string          `json:"gt"`
	Gte        *string          `json:"gte"`
	Contains   *string          `json:"contains"`
	StartsWith *string          `json:"startsWith"`
	EndsWith   *string          `json:"endsWith"`
	Mode       QueryMode        `json:"mode"`
	Not        json.RawMessage  `json:"not"`
}

func (f StringNullableFilter) IsNullMatch() bool {
	return f.Equals.IsNull()
}

func (f *StringNullableFilter) UnmarshalJSON(data []byte) error {
	switch jsonKind(data) {
	case 'n':
		*f = StringNullableFilter{Equals: Null[string]()}
	case '{':
		var raw stringNullableFilterJSON
		if err := DecodeStrict(data, &raw); err != nil {
			return err
		}
		*f = StringNullableFilter{
			Equals:     raw.Equals,
			In:         raw.In,
			NotIn:      raw.NotIn,
			Lt:         raw.Lt,
			Lte:        raw.Lte,
			Gt:         raw.Gt,
			Gte:        raw.Gte,
			Contains:   raw.Contains,
			StartsWith: raw.StartsWith,
			EndsWith:   raw.EndsWith,
			Mode:       raw.Mode,
		}
		if raw.Not != nil {
			f.Not = new(StringNullableFilter)
			if err := f.Not.UnmarshalJSON(raw.Not); err != nil {
				return err
			}
		}
	default:
		var v string
		if err := DecodeStrict(data, &v); err != nil {
			return err
		}
		*f = StringNullableFilter{Equals: Some(v)}
	}
	return nil
}
