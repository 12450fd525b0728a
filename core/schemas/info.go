package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

// =============================================================================
// Info
// =============================================================================

// Info holds the optional profile details of a user.
type Info struct {
	ID        string     `json:"id" validate:"required,cuid"`
	UserID    string     `json:"userId" validate:"required,cuid"`
	Bio       *string    `json:"bio"`
	Location  *string    `json:"location"`
	Website   *string    `json:"website" validate:"omitempty,url"`
	Birthday  *time.Time `json:"birthday"`
	CreatedAt time.Time  `json:"createdAt" validate:"required"`
	UpdatedAt time.Time  `json:"updatedAt" validate:"required"`
}

// InfoPartial is Info with every field optional.
type InfoPartial struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID    *string    `json:"userId,omitempty" validate:"omitempty,cuid"`
	Bio       *string    `json:"bio,omitempty"`
	Location  *string    `json:"location,omitempty"`
	Website   *string    `json:"website,omitempty" validate:"omitempty,url"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// InfoOptionalDefaults is Info with the defaulted fields optional.
type InfoOptionalDefaults struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID    string     `json:"userId" validate:"required,cuid"`
	Bio       *string    `json:"bio"`
	Location  *string    `json:"location"`
	Website   *string    `json:"website" validate:"omitempty,url"`
	Birthday  *time.Time `json:"birthday"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ToModel fills the defaulted fields and returns the record. Timestamps
// default to now.
func (o InfoOptionalDefaults) ToModel(now time.Time) (Info, error) {
	id, err := newCUID(o.ID)
	if err != nil {
		return Info{}, err
	}

	return Info{
		ID:        id,
		UserID:    o.UserID,
		Bio:       o.Bio,
		Location:  o.Location,
		Website:   o.Website,
		Birthday:  o.Birthday,
		CreatedAt: validation.ValueOr(o.CreatedAt, now),
		UpdatedAt: validation.ValueOr(o.UpdatedAt, now),
	}, nil
}

// =============================================================================
// Info selection
// =============================================================================

type InfoSelect struct {
	ID        bool                     `json:"id,omitempty"`
	UserID    bool                     `json:"userId,omitempty"`
	Bio       bool                     `json:"bio,omitempty"`
	Location  bool                     `json:"location,omitempty"`
	Website   bool                     `json:"website,omitempty"`
	Birthday  bool                     `json:"birthday,omitempty"`
	CreatedAt bool                     `json:"createdAt,omitempty"`
	UpdatedAt bool                     `json:"updatedAt,omitempty"`
	User      query.Relation[UserArgs] `json:"user,omitzero"`
}

type InfoInclude struct {
	User query.Relation[UserArgs] `json:"user,omitzero"`
}

type InfoArgs query.Args[InfoSelect, InfoInclude]

// =============================================================================
// Info filters
// =============================================================================

type InfoWhereInput struct {
	AND       query.OneOrMany[InfoWhereInput]      `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        []InfoWhereInput                     `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       query.OneOrMany[InfoWhereInput]      `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        query.StringFilter                   `json:"id,omitzero"`
	UserID    query.StringFilter                   `json:"userId,omitzero"`
	Bio       query.StringNullableFilter           `json:"bio,omitzero"`
	Location  query.StringNullableFilter           `json:"location,omitzero"`
	Website   query.StringNullableFilter           `json:"website,omitzero"`
	Birthday  query.DateTimeNullableFilter         `json:"birthday,omitzero"`
	CreatedAt query.DateTimeFilter                 `json:"createdAt,omitzero"`
	UpdatedAt query.DateTimeFilter                 `json:"updatedAt,omitzero"`
	User      query.RelationFilter[UserWhereInput] `json:"user,omitzero"`
}

// InfoWhereUniqueInput selects at most one Info. At least one of id, userId
// must be set.
// The remaining fields filter like InfoWhereInput.
type InfoWhereUniqueInput struct {
	ID        *string                              `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID    *string                              `json:"userId,omitempty" validate:"omitempty,cuid"`
	AND       query.OneOrMany[InfoWhereInput]      `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        []InfoWhereInput                     `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       query.OneOrMany[InfoWhereInput]      `json:"NOT,omitempty" validate:"omitempty,dive"`
	Bio       query.StringNullableFilter           `json:"bio,omitzero"`
	Location  query.StringNullableFilter           `json:"location,omitzero"`
	Website   query.StringNullableFilter           `json:"website,omitzero"`
	Birthday  query.DateTimeNullableFilter         `json:"birthday,omitzero"`
	CreatedAt query.DateTimeFilter                 `json:"createdAt,omitzero"`
	UpdatedAt query.DateTimeFilter                 `json:"updatedAt,omitzero"`
	User      query.RelationFilter[UserWhereInput] `json:"user,omitzero"`
}

func (w InfoWhereUniqueInput) uniqueKeys() []string {
	return infoModel.UniqueKeys()
}

func (w InfoWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil || w.UserID != nil
}

type InfoOrderByWithRelationInput struct {
	ID        query.SortOrder               `json:"id,omitempty" validate:"omitempty,enum"`
	UserID    query.SortOrder               `json:"userId,omitempty" validate:"omitempty,enum"`
	Bio       *query.SortOrderInput         `json:"bio,omitempty"`
	Location  *query.SortOrderInput         `json:"location,omitempty"`
	Website   *query.SortOrderInput         `json:"website,omitempty"`
	Birthday  *query.SortOrderInput         `json:"birthday,omitempty"`
	CreatedAt query.SortOrder               `json:"createdAt,omitempty" validate:"omitempty,enum"`
	UpdatedAt query.SortOrder               `json:"updatedAt,omitempty" validate:"omitempty,enum"`
	User      *UserOrderByWithRelationInput `json:"user,omitempty"`
}

// InfoOrderByScalarInput orders grouped rows by their scalar columns.
type InfoOrderByScalarInput struct {
	ID        query.SortOrder       `json:"id,omitempty" validate:"omitempty,enum"`
	UserID    query.SortOrder       `json:"userId,omitempty" validate:"omitempty,enum"`
	Bio       *query.SortOrderInput `json:"bio,omitempty"`
	Location  *query.SortOrderInput `json:"location,omitempty"`
	Website   *query.SortOrderInput `json:"website,omitempty"`
	Birthday  *query.SortOrderInput `json:"birthday,omitempty"`
	CreatedAt query.SortOrder       `json:"createdAt,omitempty" validate:"omitempty,enum"`
	UpdatedAt query.SortOrder       `json:"updatedAt,omitempty" validate:"omitempty,enum"`
}

// InfoScalarWhereWithAggregatesInput filters the groups of a groupBy.
type InfoScalarWhereWithAggregatesInput struct {
	AND       query.OneOrMany[InfoScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        []InfoScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       query.OneOrMany[InfoScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        query.StringWithAggregatesFilter                    `json:"id,omitzero"`
	UserID    query.StringWithAggregatesFilter                    `json:"userId,omitzero"`
	Bio       query.StringNullableWithAggregatesFilter            `json:"bio,omitzero"`
	Location  query.StringNullableWithAggregatesFilter            `json:"location,omitzero"`
	Website   query.StringNullableWithAggregatesFilter            `json:"website,omitzero"`
	Birthday  query.DateTimeNullableWithAggregatesFilter          `json:"birthday,omitzero"`
	CreatedAt query.DateTimeWithAggregatesFilter                  `json:"createdAt,omitzero"`
	UpdatedAt query.DateTimeWithAggregatesFilter                  `json:"updatedAt,omitzero"`
}

// InfoScalarFieldEnum names a scalar field of Info.
type InfoScalarFieldEnum string

func (e InfoScalarFieldEnum) IsValid() bool {
	return infoModel.hasField(string(e))
}

// =============================================================================
// Info writes
// =============================================================================

// InfoCreateInput creates a Info and writes its relations through nested
// operations.
type InfoCreateInput struct {
	ID        *string                   `json:"id,omitempty" validate:"omitempty,cuid"`
	Bio       *string                   `json:"bio,omitempty"`
	Location  *string                   `json:"location,omitempty"`
	Website   *string                   `json:"website,omitempty" validate:"omitempty,url"`
	Birthday  *time.Time                `json:"birthday,omitempty"`
	CreatedAt *time.Time                `json:"createdAt,omitempty"`
	UpdatedAt *time.Time                `json:"updatedAt,omitempty"`
	User      *UserCreateNestedOneInput `json:"user" validate:"required"`
}

// InfoUncheckedCreateInput creates a Info with its foreign keys given as
// plain values.
type InfoUncheckedCreateInput struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID    string     `json:"userId" validate:"required,cuid"`
	Bio       *string    `json:"bio,omitempty"`
	Location  *string    `json:"location,omitempty"`
	Website   *string    `json:"website,omitempty" validate:"omitempty,url"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// InfoCreateManyInput is one row of a createMany.
type InfoCreateManyInput InfoUncheckedCreateInput

// InfoCreateNestedInput creates a Info from the other side of one of its
// relations. Foreign keys filled in by the parent may be left out.
type InfoCreateNestedInput struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID    *string    `json:"userId,omitempty" validate:"omitempty,cuid"`
	Bio       *string    `json:"bio,omitempty"`
	Location  *string    `json:"location,omitempty"`
	Website   *string    `json:"website,omitempty" validate:"omitempty,url"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type InfoUpdateInput struct {
	ID        query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,cuid"`
	Bio       query.NullableFieldUpdate[string]    `json:"bio,omitzero"`
	Location  query.NullableFieldUpdate[string]    `json:"location,omitzero"`
	Website   query.NullableFieldUpdate[string]    `json:"website,omitzero" validate:"omitempty,url"`
	Birthday  query.NullableFieldUpdate[time.Time] `json:"birthday,omitzero"`
	CreatedAt query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
	User      *UserUpdateOneRequiredNestedInput    `json:"user,omitempty"`
}

type InfoUncheckedUpdateInput struct {
	ID        query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,cuid"`
	UserID    query.FieldUpdate[string]            `json:"userId,omitzero" validate:"omitempty,cuid"`
	Bio       query.NullableFieldUpdate[string]    `json:"bio,omitzero"`
	Location  query.NullableFieldUpdate[string]    `json:"location,omitzero"`
	Website   query.NullableFieldUpdate[string]    `json:"website,omitzero" validate:"omitempty,url"`
	Birthday  query.NullableFieldUpdate[time.Time] `json:"birthday,omitzero"`
	CreatedAt query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
}

type InfoUpdateManyMutationInput struct {
	ID        query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,cuid"`
	Bio       query.NullableFieldUpdate[string]    `json:"bio,omitzero"`
	Location  query.NullableFieldUpdate[string]    `json:"location,omitzero"`
	Website   query.NullableFieldUpdate[string]    `json:"website,omitzero" validate:"omitempty,url"`
	Birthday  query.NullableFieldUpdate[time.Time] `json:"birthday,omitzero"`
	CreatedAt query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
}

// Nested writes reaching Info from a related model.
type (
	InfoCreateNestedOneInput = query.ToOneCreate[InfoCreateNestedInput, InfoWhereUniqueInput]
	InfoUpdateOneNestedInput = query.ToOneUpdate[InfoCreateNestedInput, InfoUncheckedUpdateInput, InfoWhereUniqueInput]
)

// =============================================================================
// Info operations
// =============================================================================

type (
	InfoFindUniqueArgs query.FindUniqueArgs[InfoSelect, InfoInclude, InfoWhereUniqueInput]
	InfoFindFirstArgs  query.FindManyArgs[InfoSelect, InfoInclude, InfoWhereInput, InfoOrderByWithRelationInput, InfoWhereUniqueInput, InfoScalarFieldEnum]
	InfoFindManyArgs   query.FindManyArgs[InfoSelect, InfoInclude, InfoWhereInput, InfoOrderByWithRelationInput, InfoWhereUniqueInput, InfoScalarFieldEnum]
	InfoCreateArgs     query.CreateArgs[InfoSelect, InfoInclude, InfoCreateInput, InfoUncheckedCreateInput]
	InfoUpdateArgs     query.UpdateArgs[InfoSelect, InfoInclude, InfoUpdateInput, InfoUncheckedUpdateInput, InfoWhereUniqueInput]
	InfoUpsertArgs     query.UpsertArgs[InfoSelect, InfoInclude, InfoWhereUniqueInput, InfoCreateInput, InfoUncheckedCreateInput, InfoUpdateInput, InfoUncheckedUpdateInput]
	InfoDeleteArgs     query.DeleteArgs[InfoSelect, InfoInclude, InfoWhereUniqueInput]
	InfoCreateManyArgs query.CreateManyArgs[InfoCreateManyInput]
	InfoUpdateManyArgs query.UpdateManyArgs[InfoUpdateManyMutationInput, InfoWhereInput]
	InfoDeleteManyArgs query.DeleteManyArgs[InfoWhereInput]
	InfoGroupByArgs    query.GroupByArgs[InfoWhereInput, InfoOrderByScalarInput, InfoScalarFieldEnum, InfoScalarWhereWithAggregatesInput]
)

// =============================================================================
// Info descriptor
// =============================================================================

var infoModel = &Model{
	Name:       "Info",
	Table:      "user_infos",
	PrimaryKey: []string{"id"},
	Uniques:    [][]string{{"userId"}},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "cuid()", Format: FormatCUID},
		{Name: "userId", Column: "user_id", Type: TypeString, Unique: true, Format: FormatCUID, ForeignKey: true},
		{Name: "bio", Column: "bio", Type: TypeString, Nullable: true},
		{Name: "location", Column: "location", Type: TypeString, Nullable: true},
		{Name: "website", Column: "website", Type: TypeString, Nullable: true, Format: FormatURL},
		{Name: "birthday", Column: "birthday", Type: TypeDateTime, Nullable: true},
		{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: "now()"},
		{Name: "updatedAt", Column: "updated_at", Type: TypeDateTime, UpdatedAt: true},
	},
	Relations: []Relation{
		{Name: "user", Model: "User", Kind: ToOne, Fields: []string{"userId"}, References: []string{"id"}, OnDelete: "CASCADE"},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[Info](),
		ShapePartial:                   ctor[InfoPartial](),
		ShapeOptionalDefaults:          ctor[InfoOptionalDefaults](),
		ShapeSelect:                    ctor[InfoSelect](),
		ShapeInclude:                   ctor[InfoInclude](),
		ShapeWhere:                     ctor[InfoWhereInput](),
		ShapeWhereUnique:               ctor[InfoWhereUniqueInput](),
		ShapeOrderBy:                   ctor[InfoOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[InfoScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[InfoCreateInput](),
		ShapeUncheckedCreateInput:      ctor[InfoUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[InfoUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[InfoUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[InfoCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[InfoUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[InfoFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[InfoFindFirstArgs](),
		ShapeFindManyArgs:              ctor[InfoFindManyArgs](),
		ShapeCreateArgs:                ctor[InfoCreateArgs](),
		ShapeUpdateArgs:                ctor[InfoUpdateArgs](),
		ShapeUpsertArgs:                ctor[InfoUpsertArgs](),
		ShapeDeleteArgs:                ctor[InfoDeleteArgs](),
		ShapeCreateManyArgs:            ctor[InfoCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[InfoUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[InfoDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[InfoGroupByArgs](),
	},
}
