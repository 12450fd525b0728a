package query

// Operation argument envelopes. Each model binds them to its own shapes:
//
//	S  select      I  include     W  where        WU where-unique
//	O  order-by    E  scalar field enum
//	C  create      UC unchecked create
//	U  update      UU unchecked update
//	CM create-many UM update-many   H  having

// FindUniqueArgs reads one record by a unique selector.
type FindUniqueArgs[S, I, WU any] struct {
	Select  *S `json:"select,omitempty"`
	Include *I `json:"include,omitempty" validate:"excluded_with=Select"`
	Where   WU `json:"where"`
}

// FindManyArgs reads a page of records. FindFirst uses the same shape. Take
// is capped at 100 rows in either direction; a negative take pages backwards
// from the cursor.
type FindManyArgs[S, I, W, O, WU any, E Enum] struct {
	Select   *S           `json:"select,omitempty"`
	Include  *I           `json:"include,omitempty" validate:"excluded_with=Select"`
	Where    *W           `json:"where,omitempty"`
	OrderBy  OneOrMany[O] `json:"orderBy,omitempty" validate:"omitempty,dive"`
	Cursor   *WU          `json:"cursor,omitempty"`
	Take     *int         `json:"take,omitempty" validate:"omitempty,min=-100,max=100"`
	Skip     *int         `json:"skip,omitempty" validate:"omitempty,min=0"`
	Distinct OneOrMany[E] `json:"distinct,omitempty" validate:"omitempty,dive,enum"`
}

// CreateArgs creates one record from a checked or unchecked payload.
type CreateArgs[S, I, C, UC any] struct {
	Select  *S                        `json:"select,omitempty"`
	Include *I                        `json:"include,omitempty" validate:"excluded_with=Select"`
	Data    *CheckedOrUnchecked[C, UC] `json:"data" validate:"required"`
}

// UpdateArgs updates the record matching Where.
type UpdateArgs[S, I, U, UU, WU any] struct {
	Select  *S                        `json:"select,omitempty"`
	Include *I                        `json:"include,omitempty" validate:"excluded_with=Select"`
	Data    *CheckedOrUnchecked[U, UU] `json:"data" validate:"required"`
	Where   WU                        `json:"where"`
}

// UpsertArgs updates the record matching Where or creates it.
type UpsertArgs[S, I, WU, C, UC, U, UU any] struct {
	Select  *S                        `json:"select,omitempty"`
	Include *I                        `json:"include,omitempty" validate:"excluded_with=Select"`
	Where   WU                        `json:"where"`
	Create  *CheckedOrUnchecked[C, UC] `json:"create" validate:"required"`
	Update  *CheckedOrUnchecked[U, UU] `json:"update" validate:"required"`
}

// DeleteArgs deletes the record matching Where.
type DeleteArgs[S, I, WU any] struct {
	Select  *S `json:"select,omitempty"`
	Include *I `json:"include,omitempty" validate:"excluded_with=Select"`
	Where   WU `json:"where"`
}

// CreateManyArgs inserts several flat records.
type CreateManyArgs[CM any] struct {
	Data           OneOrMany[CM] `json:"data" validate:"required,dive"`
	SkipDuplicates *bool         `json:"skipDuplicates,omitempty"`
}

// UpdateManyArgs applies one scalar update to every matching record.
type UpdateManyArgs[UM, W any] struct {
	Data  UM `json:"data"`
	Where *W `json:"where,omitempty"`
}

// DeleteManyArgs deletes every matching record.
type DeleteManyArgs[W any] struct {
	Where *W `json:"where,omitempty"`
}

// GroupByArgs groups records by scalar fields and filters the groups.
type GroupByArgs[W, O any, E Enum, H any] struct {
	Where   *W           `json:"where,omitempty"`
	OrderBy OneOrMany[O] `json:"orderBy,omitempty" validate:"omitempty,dive"`
	By      OneOrMany[E] `json:"by" validate:"required,min=1,dive,enum"`
	Having  *H           `json:"having,omitempty"`
	Take    *int         `json:"take,omitempty" validate:"omitempty,min=-100,max=100"`
	Skip    *int         `json:"skip,omitempty" validate:"omitempty,min=0"`
}
