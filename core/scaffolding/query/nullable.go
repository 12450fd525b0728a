package query

import (
	"encoding/json"
	"errors"
	"strings"
)

// Nullable distinguishes an absent key from an explicit null and from a value.
type Nullable[T any] struct {
	Value T
	Valid bool // a non-null value was given
	Set   bool // the key was present
}

// Some returns a Nullable holding v.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true, Set: true}
}

// Null returns an explicit null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// IsNull reports whether the key was present and null.
func (n Nullable[T]) IsNull() bool {
	return n.Set && !n.Valid
}

// Ptr returns the value as a pointer, nil when absent or null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

func (n Nullable[T]) IsZero() bool {
	return !n.Set
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	*n = Nullable[T]{Set: true}
	if isNull(data) {
		return nil
	}
	if err := DecodeStrict(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// OneOrMany accepts a single element or a list of elements and always holds a
// slice.
type OneOrMany[T any] []T

func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	switch jsonKind(data) {
	case '[':
		var list []T
		if err := DecodeStrict(data, &list); err != nil {
			return err
		}
		*o = list
	case 'n':
		*o = nil
	default:
		var one T
		if err := DecodeStrict(data, &one); err != nil {
			return err
		}
		*o = OneOrMany[T]{one}
	}
	return nil
}

// CheckedOrUnchecked holds a write payload that is either the checked shape
// (relations written through nested operations) or the unchecked shape
// (foreign keys written as plain scalars). Exactly one side is set after
// decoding.
type CheckedOrUnchecked[C, U any] struct {
	Checked   *C `path:"inline"`
	Unchecked *U `path:"inline"`
}

func (cu CheckedOrUnchecked[C, U]) MarshalJSON() ([]byte, error) {
	if cu.Checked != nil {
		return json.Marshal(cu.Checked)
	}
	if cu.Unchecked != nil {
		return json.Marshal(cu.Unchecked)
	}
	return []byte("null"), nil
}

// UnmarshalJSON tries the checked shape first. When that fails only because
// of keys it does not know, the unchecked error is the more useful one and is
// returned instead.
func (cu *CheckedOrUnchecked[C, U]) UnmarshalJSON(data []byte) error {
	*cu = CheckedOrUnchecked[C, U]{}
	if jsonKind(data) != '{' {
		return typeError[C](data)
	}

	checked := new(C)
	cerr := DecodeStrict(data, checked)
	if cerr == nil {
		cu.Checked = checked
		return nil
	}

	unchecked := new(U)
	uerr := DecodeStrict(data, unchecked)
	if uerr == nil {
		cu.Unchecked = unchecked
		return nil
	}

	if isUnknownField(cerr) {
		return uerr
	}
	return cerr
}

func isUnknownField(err error) bool {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return false
	}
	return strings.HasPrefix(err.Error(), "json: unknown field")
}
