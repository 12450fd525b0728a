package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

// =============================================================================
// Author
// =============================================================================

// Author is a byline, optionally linked to a user.
type Author struct {
	ID        string    `json:"id" validate:"required,cuid"`
	Name      string    `json:"name" validate:"required"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatarUrl" validate:"omitempty,url"`
	UserID    *string   `json:"userId" validate:"omitempty,cuid"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// AuthorPartial is Author with every field optional.
type AuthorPartial struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Name      *string    `json:"name,omitempty"`
	Bio       *string    `json:"bio,omitempty"`
	AvatarURL *string    `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	UserID    *string    `json:"userId,omitempty" validate:"omitempty,cuid"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// AuthorOptionalDefaults is Author with the defaulted fields optional.
type AuthorOptionalDefaults struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Name      string     `json:"name" validate:"required"`
	Bio       *string    `json:"bio"`
	AvatarURL *string    `json:"avatarUrl" validate:"omitempty,url"`
	UserID    *string    `json:"userId" validate:"omitempty,cuid"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// ToModel fills the defaulted fields and returns the record. Timestamps
// default to now.
func (o AuthorOptionalDefaults) ToModel(now time.Time) (Author, error) {
	id, err := newCUID(o.ID)
	if err != nil {
		return Author{}, err
	}

	return Author{
		ID:        id,
		Name:      o.Name,
		Bio:       o.Bio,
		AvatarURL: o.AvatarURL,
		UserID:    o.UserID,
		CreatedAt: validation.ValueOr(o.CreatedAt, now),
	}, nil
}

// =============================================================================
// Author selection
// =============================================================================

type AuthorSelect struct {
	ID        bool                                      `json:"id,omitempty"`
	Name      bool                                      `json:"name,omitempty"`
	Bio       bool                                      `json:"bio,omitempty"`
	AvatarURL bool                                      `json:"avatarUrl,omitempty"`
	UserID    bool                                      `json:"userId,omitempty"`
	CreatedAt bool                                      `json:"createdAt,omitempty"`
	Blogs     query.Relation[BlogAuthorFindManyArgs]    `json:"blogs,omitzero"`
	User      query.Relation[UserArgs]                  `json:"user,omitzero"`
	Count     query.Relation[AuthorCountOutputTypeArgs] `json:"_count,omitzero"`
}

type AuthorInclude struct {
	Blogs query.Relation[BlogAuthorFindManyArgs]    `json:"blogs,omitzero"`
	User  query.Relation[UserArgs]                  `json:"user,omitzero"`
	Count query.Relation[AuthorCountOutputTypeArgs] `json:"_count,omitzero"`
}

// AuthorCountOutputTypeSelect picks the to-many relations counted under
// _count.
type AuthorCountOutputTypeSelect struct {
	Blogs bool `json:"blogs,omitempty"`
}

type AuthorCountOutputTypeArgs struct {
	Select *AuthorCountOutputTypeSelect `json:"select,omitempty"`
}

type AuthorArgs query.Args[AuthorSelect, AuthorInclude]

// =============================================================================
// Author filters
// =============================================================================

type AuthorWhereInput struct {
	AND       query.OneOrMany[AuthorWhereInput]              `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        []AuthorWhereInput                             `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       query.OneOrMany[AuthorWhereInput]              `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        query.StringFilter                             `json:"id,omitzero"`
	Name      query.StringFilter                             `json:"name,omitzero"`
	Bio       query.StringNullableFilter                     `json:"bio,omitzero"`
	AvatarURL query.StringNullableFilter                     `json:"avatarUrl,omitzero"`
	UserID    query.StringNullableFilter                     `json:"userId,omitzero"`
	CreatedAt query.DateTimeFilter                           `json:"createdAt,omitzero"`
	Blogs     query.ListRelationFilter[BlogAuthorWhereInput] `json:"blogs,omitzero"`
	User      query.NullableRelationFilter[UserWhereInput]   `json:"user,omitzero"`
}

// AuthorWhereUniqueInput selects at most one Author. At least one of id must
// be set.
// The remaining fields filter like AuthorWhereInput.
type AuthorWhereUniqueInput struct {
	ID        *string                                        `json:"id,omitempty" validate:"omitempty,cuid"`
	AND       query.OneOrMany[AuthorWhereInput]              `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        []AuthorWhereInput                             `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       query.OneOrMany[AuthorWhereInput]              `json:"NOT,omitempty" validate:"omitempty,dive"`
	Name      query.StringFilter                             `json:"name,omitzero"`
	Bio       query.StringNullableFilter                     `json:"bio,omitzero"`
	AvatarURL query.StringNullableFilter                     `json:"avatarUrl,omitzero"`
	UserID    query.StringNullableFilter                     `json:"userId,omitzero"`
	CreatedAt query.DateTimeFilter                           `json:"createdAt,omitzero"`
	Blogs     query.ListRelationFilter[BlogAuthorWhereInput] `json:"blogs,omitzero"`
	User      query.NullableRelationFilter[UserWhereInput]   `json:"user,omitzero"`
}

func (w AuthorWhereUniqueInput) uniqueKeys() []string {
	return authorModel.UniqueKeys()
}

func (w AuthorWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil
}

type AuthorOrderByWithRelationInput struct {
	ID        query.SortOrder                      `json:"id,omitempty" validate:"omitempty,enum"`
	Name      query.SortOrder                      `json:"name,omitempty" validate:"omitempty,enum"`
	Bio       *query.SortOrderInput                `json:"bio,omitempty"`
	AvatarURL *query.SortOrderInput                `json:"avatarUrl,omitempty"`
	UserID    *query.SortOrderInput                `json:"userId,omitempty"`
	CreatedAt query.SortOrder                      `json:"createdAt,omitempty" validate:"omitempty,enum"`
	Blogs     *query.OrderByRelationAggregateInput `json:"blogs,omitempty"`
	User      *UserOrderByWithRelationInput        `json:"user,omitempty"`
}

// AuthorOrderByScalarInput orders grouped rows by their scalar columns.
type AuthorOrderByScalarInput struct {
	ID        query.SortOrder       `json:"id,omitempty" validate:"omitempty,enum"`
	Name      query.SortOrder       `json:"name,omitempty" validate:"omitempty,enum"`
	Bio       *query.SortOrderInput `json:"bio,omitempty"`
	AvatarURL *query.SortOrderInput `json:"avatarUrl,omitempty"`
	UserID    *query.SortOrderInput `json:"userId,omitempty"`
	CreatedAt query.SortOrder       `json:"createdAt,omitempty" validate:"omitempty,enum"`
}

// AuthorScalarWhereWithAggregatesInput filters the groups of a groupBy.
type AuthorScalarWhereWithAggregatesInput struct {
	AND       query.OneOrMany[AuthorScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        []AuthorScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       query.OneOrMany[AuthorScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        query.StringWithAggregatesFilter                      `json:"id,omitzero"`
	Name      query.StringWithAggregatesFilter                      `json:"name,omitzero"`
	Bio       query.StringNullableWithAggregatesFilter              `json:"bio,omitzero"`
	AvatarURL query.StringNullableWithAggregatesFilter              `json:"avatarUrl,omitzero"`
	UserID    query.StringNullableWithAggregatesFilter              `json:"userId,omitzero"`
	CreatedAt query.DateTimeWithAggregatesFilter                    `json:"createdAt,omitzero"`
}

// AuthorScalarFieldEnum names a scalar field of Author.
type AuthorScalarFieldEnum string

func (e AuthorScalarFieldEnum) IsValid() bool {
	return authorModel.hasField(string(e))
}

// =============================================================================
// Author writes
// =============================================================================

// AuthorCreateInput creates a Author and writes its relations through nested
// operations.
type AuthorCreateInput struct {
	ID        *string                          `json:"id,omitempty" validate:"omitempty,cuid"`
	Name      string                           `json:"name" validate:"required"`
	Bio       *string                          `json:"bio,omitempty"`
	AvatarURL *string                          `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	CreatedAt *time.Time                       `json:"createdAt,omitempty"`
	Blogs     *BlogAuthorCreateNestedManyInput `json:"blogs,omitempty"`
	User      *UserCreateNestedOneInput        `json:"user,omitempty"`
}

// AuthorUncheckedCreateInput creates a Author with its foreign keys given as
// plain values.
type AuthorUncheckedCreateInput struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Name      string     `json:"name" validate:"required"`
	Bio       *string    `json:"bio,omitempty"`
	AvatarURL *string    `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	UserID    *string    `json:"userId,omitempty" validate:"omitempty,cuid"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// AuthorCreateManyInput is one row of a createMany.
type AuthorCreateManyInput AuthorUncheckedCreateInput

// AuthorCreateNestedInput creates a Author from the other side of one of its
// relations. Foreign keys filled in by the parent may be left out.
type AuthorCreateNestedInput struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Name      string     `json:"name" validate:"required"`
	Bio       *string    `json:"bio,omitempty"`
	AvatarURL *string    `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	UserID    *string    `json:"userId,omitempty" validate:"omitempty,cuid"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type AuthorUpdateInput struct {
	ID        query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,cuid"`
	Name      query.FieldUpdate[string]         `json:"name,omitzero"`
	Bio       query.NullableFieldUpdate[string] `json:"bio,omitzero"`
	AvatarURL query.NullableFieldUpdate[string] `json:"avatarUrl,omitzero" validate:"omitempty,url"`
	CreatedAt query.FieldUpdate[time.Time]      `json:"createdAt,omitzero"`
	Blogs     *BlogAuthorUpdateManyNestedInput  `json:"blogs,omitempty"`
	User      *UserUpdateOneNestedInput         `json:"user,omitempty"`
}

type AuthorUncheckedUpdateInput struct {
	ID        query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,cuid"`
	Name      query.FieldUpdate[string]         `json:"name,omitzero"`
	Bio       query.NullableFieldUpdate[string] `json:"bio,omitzero"`
	AvatarURL query.NullableFieldUpdate[string] `json:"avatarUrl,omitzero" validate:"omitempty,url"`
	UserID    query.NullableFieldUpdate[string] `json:"userId,omitzero" validate:"omitempty,cuid"`
	CreatedAt query.FieldUpdate[time.Time]      `json:"createdAt,omitzero"`
}

type AuthorUpdateManyMutationInput struct {
	ID        query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,cuid"`
	Name      query.FieldUpdate[string]         `json:"name,omitzero"`
	Bio       query.NullableFieldUpdate[string] `json:"bio,omitzero"`
	AvatarURL query.NullableFieldUpdate[string] `json:"avatarUrl,omitzero" validate:"omitempty,url"`
	CreatedAt query.FieldUpdate[time.Time]      `json:"createdAt,omitzero"`
}

// Nested writes reaching Author from a related model.
type (
	AuthorCreateNestedOneInput         = query.ToOneCreate[AuthorCreateNestedInput, AuthorWhereUniqueInput]
	AuthorUpdateOneRequiredNestedInput = query.ToOneRequiredUpdate[AuthorCreateNestedInput, AuthorUncheckedUpdateInput, AuthorWhereUniqueInput]
	AuthorCreateNestedManyInput        = query.ToManyCreate[AuthorCreateNestedInput, AuthorWhereUniqueInput]
	AuthorUpdateManyNestedInput        = query.ToManyUpdate[AuthorCreateNestedInput, AuthorUncheckedUpdateInput, AuthorUpdateManyMutationInput, AuthorWhereUniqueInput, AuthorWhereInput]
)

// =============================================================================
// Author operations
// =============================================================================

type (
	AuthorFindUniqueArgs query.FindUniqueArgs[AuthorSelect, AuthorInclude, AuthorWhereUniqueInput]
	AuthorFindFirstArgs  query.FindManyArgs[AuthorSelect, AuthorInclude, AuthorWhereInput, AuthorOrderByWithRelationInput, AuthorWhereUniqueInput, AuthorScalarFieldEnum]
	AuthorFindManyArgs   query.FindManyArgs[AuthorSelect, AuthorInclude, AuthorWhereInput, AuthorOrderByWithRelationInput, AuthorWhereUniqueInput, AuthorScalarFieldEnum]
	AuthorCreateArgs     query.CreateArgs[AuthorSelect, AuthorInclude, AuthorCreateInput, AuthorUncheckedCreateInput]
	AuthorUpdateArgs     query.UpdateArgs[AuthorSelect, AuthorInclude, AuthorUpdateInput, AuthorUncheckedUpdateInput, AuthorWhereUniqueInput]
	AuthorUpsertArgs     query.UpsertArgs[AuthorSelect, AuthorInclude, AuthorWhereUniqueInput, AuthorCreateInput, AuthorUncheckedCreateInput, AuthorUpdateInput, AuthorUncheckedUpdateInput]
	AuthorDeleteArgs     query.DeleteArgs[AuthorSelect, AuthorInclude, AuthorWhereUniqueInput]
	AuthorCreateManyArgs query.CreateManyArgs[AuthorCreateManyInput]
	AuthorUpdateManyArgs query.UpdateManyArgs[AuthorUpdateManyMutationInput, AuthorWhereInput]
	AuthorDeleteManyArgs query.DeleteManyArgs[AuthorWhereInput]
	AuthorGroupByArgs    query.GroupByArgs[AuthorWhereInput, AuthorOrderByScalarInput, AuthorScalarFieldEnum, AuthorScalarWhereWithAggregatesInput]
)

// =============================================================================
// Author descriptor
// =============================================================================

var authorModel = &Model{
	Name:       "Author",
	Table:      "authors",
	PrimaryKey: []string{"id"},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "cuid()", Format: FormatCUID},
		{Name: "name", Column: "name", Type: TypeString},
		{Name: "bio", Column: "bio", Type: TypeString, Nullable: true},
		{Name: "avatarUrl", Column: "avatar_url", Type: TypeString, Nullable: true, Format: FormatURL},
		{Name: "userId", Column: "user_id", Type: TypeString, Nullable: true, Format: FormatCUID, ForeignKey: true},
		{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: "now()"},
	},
	Relations: []Relation{
		{Name: "blogs", Model: "BlogAuthor", Kind: ToMany},
		{Name: "user", Model: "User", Kind: ToOne, Optional: true, Fields: []string{"userId"}, References: []string{"id"}, OnDelete: "SET NULL"},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[Author](),
		ShapePartial:                   ctor[AuthorPartial](),
		ShapeOptionalDefaults:          ctor[AuthorOptionalDefaults](),
		ShapeSelect:                    ctor[AuthorSelect](),
		ShapeInclude:                   ctor[AuthorInclude](),
		ShapeWhere:                     ctor[AuthorWhereInput](),
		ShapeWhereUnique:               ctor[AuthorWhereUniqueInput](),
		ShapeOrderBy:                   ctor[AuthorOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[AuthorScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[AuthorCreateInput](),
		ShapeUncheckedCreateInput:      ctor[AuthorUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[AuthorUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[AuthorUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[AuthorCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[AuthorUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[AuthorFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[AuthorFindFirstArgs](),
		ShapeFindManyArgs:              ctor[AuthorFindManyArgs](),
		ShapeCreateArgs:                ctor[AuthorCreateArgs](),
		ShapeUpdateArgs:                ctor[AuthorUpdateArgs](),
		ShapeUpsertArgs:                ctor[AuthorUpsertArgs](),
		ShapeDeleteArgs:                ctor[AuthorDeleteArgs](),
		ShapeCreateManyArgs:            ctor[AuthorCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[AuthorUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[AuthorDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[AuthorGroupByArgs](),
	},
}
