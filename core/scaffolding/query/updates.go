package query

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrMultipleOperations is returned when a numeric update names more than one
// operation.
var ErrMultipleOperations = errors.New("exactly one of set, increment, decrement, multiply, divide is allowed")

// FieldUpdate sets a required column. A bare value is shorthand for
// {"set": value}.
type FieldUpdate[T any] struct {
	Set *T `json:"set,omitempty"`
}

type fieldUpdateJSON struct {
	Set json.RawMessage `json:"set"`
}

// Value returns the value to write and whether one was given.
func (u FieldUpdate[T]) Value() (T, bool) {
	if u.Set == nil {
		var zero T
		return zero, false
	}
	return *u.Set, true
}

// ValidationValue exposes the written value to field validation rules.
func (u FieldUpdate[T]) ValidationValue() any {
	if u.Set == nil {
		return nil
	}
	return *u.Set
}

func (u *FieldUpdate[T]) UnmarshalJSON(data []byte) error {
	*u = FieldUpdate[T]{}
	raw := json.RawMessage(data)
	if jsonKind(data) == '{' {
		var obj fieldUpdateJSON
		if err := DecodeStrict(data, &obj); err != nil {
			return err
		}
		if obj.Set == nil {
			return nil
		}
		raw = obj.Set
	}
	if isNull(raw) {
		return typeError[T](raw)
	}
	u.Set = new(T)
	return DecodeStrict(raw, u.Set)
}

// NullableFieldUpdate sets a nullable column. A bare value or null is
// shorthand for {"set": value}.
type NullableFieldUpdate[T any] struct {
	Set Nullable[T] `json:"set,omitzero"`
}

type nullableFieldUpdateJSON[T any] struct {
	Set Nullable[T] `json:"set"`
}

func (u NullableFieldUpdate[T]) ValidationValue() any {
	if !u.Set.Valid {
		return nil
	}
	return u.Set.Value
}

func (u *NullableFieldUpdate[T]) UnmarshalJSON(data []byte) error {
	*u = NullableFieldUpdate[T]{}
	if jsonKind(data) == '{' {
		var obj nullableFieldUpdateJSON[T]
		if err := DecodeStrict(data, &obj); err != nil {
			return err
		}
		u.Set = obj.Set
		return nil
	}
	return u.Set.UnmarshalJSON(data)
}

// Number is the set of column types that accept arithmetic updates.
type Number interface {
	~int | ~int64 | ~float64
}

// NumberFieldUpdate updates a required numeric column by assignment or
// arithmetic. A bare number is shorthand for {"set": n}.
type NumberFieldUpdate[N Number] struct {
	Set       *N `json:"set,omitempty"`
	Increment *N `json:"increment,omitempty"`
	Decrement *N `json:"decrement,omitempty"`
	Multiply  *N `json:"multiply,omitempty"`
	Divide    *N `json:"divide,omitempty"`
}

type rawNumberFieldUpdate[N Number] NumberFieldUpdate[N]

type (
	IntFieldUpdate   = NumberFieldUpdate[int]
	FloatFieldUpdate = NumberFieldUpdate[float64]
)

func (u NumberFieldUpdate[N]) ops() int {
	n := 0
	for _, p := range []*N{u.Set, u.Increment, u.Decrement, u.Multiply, u.Divide} {
		if p != nil {
			n++
		}
	}
	return n
}

func (u NumberFieldUpdate[N]) ValidationValue() any {
	if u.Set == nil {
		return nil
	}
	return *u.Set
}

func (u *NumberFieldUpdate[N]) UnmarshalJSON(data []byte) error {
	switch jsonKind(data) {
	case 'n':
		return typeError[N](data)
	case '{':
		var raw rawNumberFieldUpdate[N]
		if err := DecodeStrict(data, &raw); err != nil {
			return err
		}
		*u = NumberFieldUpdate[N](raw)
		if u.ops() > 1 {
			return ErrMultipleOperations
		}
		return nil
	default:
		*u = NumberFieldUpdate[N]{Set: new(N)}
		return DecodeStrict(data, u.Set)
	}
}

// NullableNumberFieldUpdate is NumberFieldUpdate for a nullable column; set
// accepts null.
type NullableNumberFieldUpdate[N Number] struct {
	Set       Nullable[N] `json:"set,omitzero"`
	Increment *N          `json:"increment,omitempty"`
	Decrement *N          `json:"decrement,omitempty"`
	Multiply  *N          `json:"multiply,omitempty"`
	Divide    *N          `json:"divide,omitempty"`
}

type nullableNumberFieldUpdateJSON[N Number] struct {
	Set       Nullable[N] `json:"set"`
	Increment *N          `json:"increment"`
	Decrement *N          `json:"decrement"`
	Multiply  *N          `json:"multiply"`
	Divide    *N          `json:"divide"`
}

type NullableIntFieldUpdate = NullableNumberFieldUpdate[int]

func (u NullableNumberFieldUpdate[N]) ValidationValue() any {
	if !u.Set.Valid {
		return nil
	}
	return u.Set.Value
}

func (u *NullableNumberFieldUpdate[N]) UnmarshalJSON(data []byte) error {
	*u = NullableNumberFieldUpdate[N]{}
	if jsonKind(data) != '{' {
		return u.Set.UnmarshalJSON(data)
	}
	var raw nullableNumberFieldUpdateJSON[N]
	if err := DecodeStrict(data, &raw); err != nil {
		return err
	}
	*u = NullableNumberFieldUpdate[N](raw)
	n := 0
	if u.Set.Set {
		n++
	}
	for _, p := range []*N{u.Increment, u.Decrement, u.Multiply, u.Divide} {
		if p != nil {
			n++
		}
	}
	if n > 1 {
		return ErrMultipleOperations
	}
	return nil
}

// ValidationTypes lists the update wrappers defined here for the common
// column types. Field rules on these wrappers apply to the written value, so
// the validator must know to unwrap them.
func ValidationTypes() []any {
	return []any{
		FieldUpdate[string]{},
		FieldUpdate[bool]{},
		FieldUpdate[int]{},
		FieldUpdate[time.Time]{},
		NullableFieldUpdate[string]{},
		NullableFieldUpdate[bool]{},
		NullableFieldUpdate[time.Time]{},
		IntFieldUpdate{},
		FloatFieldUpdate{},
		NullableIntFieldUpdate{},
	}
}
