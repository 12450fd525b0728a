package query

import "encoding/json"

// SortOrder is the direction of an ordering clause.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

func (s SortOrder) IsValid() bool {
	return s == Asc || s == Desc
}

// NullsOrder places NULLs before or after other values.
type NullsOrder string

const (
	NullsFirst NullsOrder = "first"
	NullsLast  NullsOrder = "last"
)

func (n NullsOrder) IsValid() bool {
	return n == NullsFirst || n == NullsLast
}

// SortOrderInput orders a nullable column. It accepts "asc"/"desc" or
// {"sort": "asc", "nulls": "last"}.
type SortOrderInput struct {
	Sort  SortOrder  `json:"sort" validate:"required,enum"`
	Nulls NullsOrder `json:"nulls,omitempty" validate:"omitempty,enum"`
}

type rawSortOrderInput SortOrderInput

func (s SortOrderInput) MarshalJSON() ([]byte, error) {
	if s.Nulls == "" {
		return json.Marshal(s.Sort)
	}
	return json.Marshal(rawSortOrderInput(s))
}

func (s *SortOrderInput) UnmarshalJSON(data []byte) error {
	switch jsonKind(data) {
	case '"':
		*s = SortOrderInput{}
		return DecodeStrict(data, &s.Sort)
	case '{':
		var raw rawSortOrderInput
		if err := DecodeStrict(data, &raw); err != nil {
			return err
		}
		*s = SortOrderInput(raw)
		return nil
	default:
		return typeError[SortOrder](data)
	}
}

// OrderByRelationAggregateInput orders by the size of a to-many relation.
type OrderByRelationAggregateInput struct {
	Count SortOrder `json:"_count" validate:"required,enum"`
}
