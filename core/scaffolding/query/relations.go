package query

import "encoding/json"

// =============================================================================
// Relation filters
// =============================================================================

// RelationFilter constrains a required to-one relation. Besides {"is": ...}
// and {"isNot": ...} a bare where input is accepted as shorthand for "is".
type RelationFilter[W any] struct {
	Is    *W `json:"is,omitempty"`
	IsNot *W `json:"isNot,omitempty"`
}

type rawRelationFilter[W any] RelationFilter[W]

func (f *RelationFilter[W]) UnmarshalJSON(data []byte) error {
	if jsonKind(data) != '{' {
		return typeError[W](data)
	}
	keys, err := objectKeys(data)
	if err != nil {
		return err
	}
	if onlyKeys(keys, "is", "isNot") {
		var raw rawRelationFilter[W]
		if err := DecodeStrict(data, &raw); err != nil {
			return err
		}
		*f = RelationFilter[W](raw)
		return nil
	}
	w := new(W)
	if err := DecodeStrict(data, w); err != nil {
		return err
	}
	*f = RelationFilter[W]{Is: w}
	return nil
}

// NullableRelationFilter constrains an optional to-one relation. A bare null
// matches rows without a related record; "is" and "isNot" accept null too.
type NullableRelationFilter[W any] struct {
	Is        *W   `json:"is"`
	IsNot     *W   `json:"isNot"`
	IsNull    bool `json:"-"`
	IsNotNull bool `json:"-"`
}

type nullableRelationFilterJSON struct {
	Is    json.RawMessage `json:"is"`
	IsNot json.RawMessage `json:"isNot"`
}

func (f NullableRelationFilter[W]) MarshalJSON() ([]byte, error) {
	if f.IsNull && f.Is == nil && f.IsNot == nil && !f.IsNotNull {
		return []byte("null"), nil
	}
	out := make(map[string]any, 2)
	switch {
	case f.IsNull:
		out["is"] = nil
	case f.Is != nil:
		out["is"] = f.Is
	}
	switch {
	case f.IsNotNull:
		out["isNot"] = nil
	case f.IsNot != nil:
		out["isNot"] = f.IsNot
	}
	return json.Marshal(out)
}

func (f *NullableRelationFilter[W]) UnmarshalJSON(data []byte) error {
	*f = NullableRelationFilter[W]{}
	switch jsonKind(data) {
	case 'n':
		f.IsNull = true
		return nil
	case '{':
	default:
		return typeError[W](data)
	}

	keys, err := objectKeys(data)
	if err != nil {
		return err
	}
	if !onlyKeys(keys, "is", "isNot") {
		f.Is = new(W)
		return DecodeStrict(data, f.Is)
	}

	var raw nullableRelationFilterJSON
	if err := DecodeStrict(data, &raw); err != nil {
		return err
	}
	if raw.Is != nil {
		if isNull(raw.Is) {
			f.IsNull = true
		} else {
			f.Is = new(W)
			if err := DecodeStrict(raw.Is, f.Is); err != nil {
				return err
			}
		}
	}
	if raw.IsNot != nil {
		if isNull(raw.IsNot) {
			f.IsNotNull = true
		} else {
			f.IsNot = new(W)
			if err := DecodeStrict(raw.IsNot, f.IsNot); err != nil {
				return err
			}
		}
	}
	return nil
}

// ListRelationFilter constrains a to-many relation.
type ListRelationFilter[W any] struct {
	Every *W `json:"every,omitempty"`
	Some  *W `json:"some,omitempty"`
	None  *W `json:"none,omitempty"`
}

// =============================================================================
// Relation selection
// =============================================================================

// Relation toggles a relation in select or include. It accepts true, false or
// an args object that narrows what is loaded.
type Relation[A any] struct {
	Enabled bool `json:"-"`
	Args    *A   `path:"inline"`
}

func (r Relation[A]) IsZero() bool {
	return !r.Enabled && r.Args == nil
}

func (r Relation[A]) MarshalJSON() ([]byte, error) {
	if r.Args != nil {
		return json.Marshal(r.Args)
	}
	return json.Marshal(r.Enabled)
}

func (r *Relation[A]) UnmarshalJSON(data []byte) error {
	*r = Relation[A]{}
	switch jsonKind(data) {
	case 't', 'f':
		return DecodeStrict(data, &r.Enabled)
	case '{':
		r.Args = new(A)
		if err := DecodeStrict(data, r.Args); err != nil {
			return err
		}
		r.Enabled = true
		return nil
	default:
		return typeError[bool](data)
	}
}

// Args selects or includes the fields of a single related record.
type Args[S, I any] struct {
	Select  *S `json:"select,omitempty"`
	Include *I `json:"include,omitempty" validate:"excluded_with=Select"`
}

// NoInclude is the include shape of a model without relations. It accepts
// only an empty object.
type NoInclude struct{}
