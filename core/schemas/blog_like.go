package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

// =============================================================================
// BlogLike
// =============================================================================

// BlogLike records that a user liked a blog post. A user likes a post at most
// once.
type BlogLike struct {
	ID        string    `json:"id" validate:"required,cuid"`
	UserID    string    `json:"userId" validate:"required,cuid"`
	BlogID    string    `json:"blogId" validate:"required,cuid"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// BlogLikePartial is BlogLike with every field optional.
type BlogLikePartial struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID    *string    `json:"userId,omitempty" validate:"omitempty,cuid"`
	BlogID    *string    `json:"blogId,omitempty" validate:"omitempty,cuid"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// BlogLikeOptionalDefaults is BlogLike with the defaulted fields optional.
type BlogLikeOptionalDefaults struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID    string     `json:"userId" validate:"required,cuid"`
	BlogID    string     `json:"blogId" validate:"required,cuid"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// ToModel fills the defaulted fields and returns the record. Timestamps
// default to now.
func (o BlogLikeOptionalDefaults) ToModel(now time.Time) (BlogLike, error) {
	id, err := newCUID(o.ID)
	if err != nil {
		return BlogLike{}, err
	}

	return BlogLike{
		ID:        id,
		UserID:    o.UserID,
		BlogID:    o.BlogID,
		CreatedAt: validation.ValueOr(o.CreatedAt, now),
	}, nil
}

// =============================================================================
// BlogLike selection
// =============================================================================

type BlogLikeSelect struct {
	ID        bool                     `json:"id,omitempty"`
	UserID    bool                     `json:"userId,omitempty"`
	BlogID    bool                     `json:"blogId,omitempty"`
	CreatedAt bool                     `json:"createdAt,omitempty"`
	User      query.Relation[UserArgs] `json:"user,omitzero"`
	Blog      query.Relation[BlogArgs] `json:"blog,omitzero"`
}

type BlogLikeInclude struct {
	User query.Relation[UserArgs] `json:"user,omitzero"`
	Blog query.Relation[BlogArgs] `json:"blog,omitzero"`
}

type BlogLikeArgs query.Args[BlogLikeSelect, BlogLikeInclude]

// =============================================================================
// BlogLike filters
// =============================================================================

type BlogLikeWhereInput struct {
	AND       query.OneOrMany[BlogLikeWhereInput]  `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        []BlogLikeWhereInput                 `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       query.OneOrMany[BlogLikeWhereInput]  `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        query.StringFilter                   `json:"id,omitzero"`
	UserID    query.StringFilter                   `json:"userId,omitzero"`
	BlogID    query.StringFilter                   `json:"blogId,omitzero"`
	CreatedAt query.DateTimeFilter                 `json:"createdAt,omitzero"`
	User      query.RelationFilter[UserWhereInput] `json:"user,omitzero"`
	Blog      query.RelationFilter[BlogWhereInput] `json:"blog,omitzero"`
}

// BlogLikeWhereUniqueInput selects at most one BlogLike. At least one of id,
// userId_blogId must be set.
// The remaining fields filter like BlogLikeWhereInput.
type BlogLikeWhereUniqueInput struct {
	ID           *string                                  `json:"id,omitempty" validate:"omitempty,cuid"`
	UserIDBlogID *BlogLikeUserIDBlogIDCompoundUniqueInput `json:"userId_blogId,omitempty"`
	AND          query.OneOrMany[BlogLikeWhereInput]      `json:"AND,omitempty" validate:"omitempty,dive"`
	OR           []BlogLikeWhereInput                     `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT          query.OneOrMany[BlogLikeWhereInput]      `json:"NOT,omitempty" validate:"omitempty,dive"`
	UserID       query.StringFilter                       `json:"userId,omitzero"`
	BlogID       query.StringFilter                       `json:"blogId,omitzero"`
	CreatedAt    query.DateTimeFilter                     `json:"createdAt,omitzero"`
	User         query.RelationFilter[UserWhereInput]     `json:"user,omitzero"`
	Blog         query.RelationFilter[BlogWhereInput]     `json:"blog,omitzero"`
}

type BlogLikeUserIDBlogIDCompoundUniqueInput struct {
	UserID string `json:"userId" validate:"required,cuid"`
	BlogID string `json:"blogId" validate:"required,cuid"`
}

func (w BlogLikeWhereUniqueInput) uniqueKeys() []string {
	return blogLikeModel.UniqueKeys()
}

func (w BlogLikeWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil || w.UserIDBlogID != nil
}

type BlogLikeOrderByWithRelationInput struct {
	ID        query.SortOrder               `json:"id,omitempty" validate:"omitempty,enum"`
	UserID    query.SortOrder               `json:"userId,omitempty" validate:"omitempty,enum"`
	BlogID    query.SortOrder               `json:"blogId,omitempty" validate:"omitempty,enum"`
	CreatedAt query.SortOrder               `json:"createdAt,omitempty" validate:"omitempty,enum"`
	User      *UserOrderByWithRelationInput `json:"user,omitempty"`
	Blog      *BlogOrderByWithRelationInput `json:"blog,omitempty"`
}

// BlogLikeOrderByScalarInput orders grouped rows by their scalar columns.
type BlogLikeOrderByScalarInput struct {
	ID        query.SortOrder `json:"id,omitempty" validate:"omitempty,enum"`
	UserID    query.SortOrder `json:"userId,omitempty" validate:"omitempty,enum"`
	BlogID    query.SortOrder `json:"blogId,omitempty" validate:"omitempty,enum"`
	CreatedAt query.SortOrder `json:"createdAt,omitempty" validate:"omitempty,enum"`
}

// BlogLikeScalarWhereWithAggregatesInput filters the groups of a groupBy.
type BlogLikeScalarWhereWithAggregatesInput struct {
	AND       query.OneOrMany[BlogLikeScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        []BlogLikeScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       query.OneOrMany[BlogLikeScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        query.StringWithAggregatesFilter                        `json:"id,omitzero"`
	UserID    query.StringWithAggregatesFilter                        `json:"userId,omitzero"`
	BlogID    query.StringWithAggregatesFilter                        `json:"blogId,omitzero"`
	CreatedAt query.DateTimeWithAggregatesFilter                      `json:"createdAt,omitzero"`
}

// BlogLikeScalarFieldEnum names a scalar field of BlogLike.
type BlogLikeScalarFieldEnum string

func (e BlogLikeScalarFieldEnum) IsValid() bool {
	return blogLikeModel.hasField(string(e))
}

// =============================================================================
// BlogLike writes
// =============================================================================

// BlogLikeCreateInput creates a BlogLike and writes its relations through
// nested operations.
type BlogLikeCreateInput struct {
	ID        *string                   `json:"id,omitempty" validate:"omitempty,cuid"`
	CreatedAt *time.Time                `json:"createdAt,omitempty"`
	User      *UserCreateNestedOneInput `json:"user" validate:"required"`
	Blog      *BlogCreateNestedOneInput `json:"blog" validate:"required"`
}

// BlogLikeUncheckedCreateInput creates a BlogLike with its foreign keys given
// as plain values.
type BlogLikeUncheckedCreateInput struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID    string     `json:"userId" validate:"required,cuid"`
	BlogID    string     `json:"blogId" validate:"required,cuid"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// BlogLikeCreateManyInput is one row of a createMany.
type BlogLikeCreateManyInput BlogLikeUncheckedCreateInput

// BlogLikeCreateNestedInput creates a BlogLike from the other side of one of
// its relations. Foreign keys filled in by the parent may be left out.
type BlogLikeCreateNestedInput struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID    *string    `json:"userId,omitempty" validate:"omitempty,cuid"`
	BlogID    *string    `json:"blogId,omitempty" validate:"omitempty,cuid"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type BlogLikeUpdateInput struct {
	ID        query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,cuid"`
	CreatedAt query.FieldUpdate[time.Time]      `json:"createdAt,omitzero"`
	User      *UserUpdateOneRequiredNestedInput `json:"user,omitempty"`
	Blog      *BlogUpdateOneRequiredNestedInput `json:"blog,omitempty"`
}

type BlogLikeUncheckedUpdateInput struct {
	ID        query.FieldUpdate[string]    `json:"id,omitzero" validate:"omitempty,cuid"`
	UserID    query.FieldUpdate[string]    `json:"userId,omitzero" validate:"omitempty,cuid"`
	BlogID    query.FieldUpdate[string]    `json:"blogId,omitzero" validate:"omitempty,cuid"`
	CreatedAt query.FieldUpdate[time.Time] `json:"createdAt,omitzero"`
}

type BlogLikeUpdateManyMutationInput struct {
	ID        query.FieldUpdate[string]    `json:"id,omitzero" validate:"omitempty,cuid"`
	CreatedAt query.FieldUpdate[time.Time] `json:"createdAt,omitzero"`
}

// Nested writes reaching BlogLike from a related model.
type (
	BlogLikeCreateNestedManyInput = query.ToManyCreate[BlogLikeCreateNestedInput, BlogLikeWhereUniqueInput]
	BlogLikeUpdateManyNestedInput = query.ToManyUpdate[BlogLikeCreateNestedInput, BlogLikeUncheckedUpdateInput, BlogLikeUpdateManyMutationInput, BlogLikeWhereUniqueInput, BlogLikeWhereInput]
)

// =============================================================================
// BlogLike operations
// =============================================================================

type (
	BlogLikeFindUniqueArgs query.FindUniqueArgs[BlogLikeSelect, BlogLikeInclude, BlogLikeWhereUniqueInput]
	BlogLikeFindFirstArgs  query.FindManyArgs[BlogLikeSelect, BlogLikeInclude, BlogLikeWhereInput, BlogLikeOrderByWithRelationInput, BlogLikeWhereUniqueInput, BlogLikeScalarFieldEnum]
	BlogLikeFindManyArgs   query.FindManyArgs[BlogLikeSelect, BlogLikeInclude, BlogLikeWhereInput, BlogLikeOrderByWithRelationInput, BlogLikeWhereUniqueInput, BlogLikeScalarFieldEnum]
	BlogLikeCreateArgs     query.CreateArgs[BlogLikeSelect, BlogLikeInclude, BlogLikeCreateInput, BlogLikeUncheckedCreateInput]
	BlogLikeUpdateArgs     query.UpdateArgs[BlogLikeSelect, BlogLikeInclude, BlogLikeUpdateInput, BlogLikeUncheckedUpdateInput, BlogLikeWhereUniqueInput]
	BlogLikeUpsertArgs     query.UpsertArgs[BlogLikeSelect, BlogLikeInclude, BlogLikeWhereUniqueInput, BlogLikeCreateInput, BlogLikeUncheckedCreateInput, BlogLikeUpdateInput, BlogLikeUncheckedUpdateInput]
	BlogLikeDeleteArgs     query.DeleteArgs[BlogLikeSelect, BlogLikeInclude, BlogLikeWhereUniqueInput]
	BlogLikeCreateManyArgs query.CreateManyArgs[BlogLikeCreateManyInput]
	BlogLikeUpdateManyArgs query.UpdateManyArgs[BlogLikeUpdateManyMutationInput, BlogLikeWhereInput]
	BlogLikeDeleteManyArgs query.DeleteManyArgs[BlogLikeWhereInput]
	BlogLikeGroupByArgs    query.GroupByArgs[BlogLikeWhereInput, BlogLikeOrderByScalarInput, BlogLikeScalarFieldEnum, BlogLikeScalarWhereWithAggregatesInput]
)

// =============================================================================
// BlogLike descriptor
// =============================================================================

var blogLikeModel = &Model{
	Name:       "BlogLike",
	Table:      "blog_likes",
	PrimaryKey: []string{"id"},
	Uniques:    [][]string{{"userId", "blogId"}},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "cuid()", Format: FormatCUID},
		{Name: "userId", Column: "user_id", Type: TypeString, Format: FormatCUID, ForeignKey: true},
		{Name: "blogId", Column: "blog_id", Type: TypeString, Format: FormatCUID, ForeignKey: true},
		{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: "now()"},
	},
	Relations: []Relation{
		{Name: "user", Model: "User", Kind: ToOne, Fields: []string{"userId"}, References: []string{"id"}, OnDelete: "CASCADE"},
		{Name: "blog", Model: "Blog", Kind: ToOne, Fields: []string{"blogId"}, References: []string{"id"}, OnDelete: "CASCADE"},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[BlogLike](),
		ShapePartial:                   ctor[BlogLikePartial](),
		ShapeOptionalDefaults:          ctor[BlogLikeOptionalDefaults](),
		ShapeSelect:                    ctor[BlogLikeSelect](),
		ShapeInclude:                   ctor[BlogLikeInclude](),
		ShapeWhere:                     ctor[BlogLikeWhereInput](),
		ShapeWhereUnique:               ctor[BlogLikeWhereUniqueInput](),
		ShapeOrderBy:                   ctor[BlogLikeOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[BlogLikeScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[BlogLikeCreateInput](),
		ShapeUncheckedCreateInput:      ctor[BlogLikeUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[BlogLikeUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[BlogLikeUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[BlogLikeCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[BlogLikeUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[BlogLikeFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[BlogLikeFindFirstArgs](),
		ShapeFindManyArgs:              ctor[BlogLikeFindManyArgs](),
		ShapeCreateArgs:                ctor[BlogLikeCreateArgs](),
		ShapeUpdateArgs:                ctor[BlogLikeUpdateArgs](),
		ShapeUpsertArgs:                ctor[BlogLikeUpsertArgs](),
		ShapeDeleteArgs:                ctor[BlogLikeDeleteArgs](),
		ShapeCreateManyArgs:            ctor[BlogLikeCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[BlogLikeUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[BlogLikeDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[BlogLikeGroupByArgs](),
	},
}
