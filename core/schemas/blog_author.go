package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

// =============================================================================
// BlogAuthor
// =============================================================================

// BlogAuthor places an author on a blog byline.
type BlogAuthor struct {
	ID        string    `json:"id" validate:"required,cuid"`
	BlogID    string    `json:"blogId" validate:"required,cuid"`
	AuthorID  string    `json:"authorId" validate:"required,cuid"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// BlogAuthorPartial is BlogAuthor with every field optional.
type BlogAuthorPartial struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	BlogID    *string    `json:"blogId,omitempty" validate:"omitempty,cuid"`
	AuthorID  *string    `json:"authorId,omitempty" validate:"omitempty,cuid"`
	Position  *int       `json:"position,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// BlogAuthorOptionalDefaults is BlogAuthor with the defaulted fields
// optional.
type BlogAuthorOptionalDefaults struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	BlogID    string     `json:"blogId" validate:"required,cuid"`
	AuthorID  string     `json:"authorId" validate:"required,cuid"`
	Position  *int       `json:"position,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// ToModel fills the defaulted fields and returns the record. Timestamps
// default to now.
func (o BlogAuthorOptionalDefaults) ToModel(now time.Time) (BlogAuthor, error) {
	id, err := newCUID(o.ID)
	if err != nil {
		return BlogAuthor{}, err
	}

	return BlogAuthor{
		ID:        id,
		BlogID:    o.BlogID,
		AuthorID:  o.AuthorID,
		Position:  validation.ValueOr(o.Position, 0),
		CreatedAt: validation.ValueOr(o.CreatedAt, now),
	}, nil
}

// =============================================================================
// BlogAuthor selection
// =============================================================================

type BlogAuthorSelect struct {
	ID        bool                       `json:"id,omitempty"`
	BlogID    bool                       `json:"blogId,omitempty"`
	AuthorID  bool                       `json:"authorId,omitempty"`
	Position  bool                       `json:"position,omitempty"`
	CreatedAt bool                       `json:"createdAt,omitempty"`
	Blog      query.Relation[BlogArgs]   `json:"blog,omitzero"`
	Author    query.Relation[AuthorArgs] `json:"author,omitzero"`
}

type BlogAuthorInclude struct {
	Blog   query.Relation[BlogArgs]   `json:"blog,omitzero"`
	Author query.Relation[AuthorArgs] `json:"author,omitzero"`
}

type BlogAuthorArgs query.Args[BlogAuthorSelect, BlogAuthorInclude]

// =============================================================================
// BlogAuthor filters
// =============================================================================

type BlogAuthorWhereInput struct {
	AND       query.OneOrMany[BlogAuthorWhereInput]  `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        []BlogAuthorWhereInput                 `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       query.OneOrMany[BlogAuthorWhereInput]  `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        query.StringFilter                     `json:"id,omitzero"`
	BlogID    query.StringFilter                     `json:"blogId,omitzero"`
	AuthorID  query.StringFilter                     `json:"authorId,omitzero"`
	Position  query.IntFilter                        `json:"position,omitzero"`
	CreatedAt query.DateTimeFilter                   `json:"createdAt,omitzero"`
	Blog      query.RelationFilter[BlogWhereInput]   `json:"blog,omitzero"`
	Author    query.RelationFilter[AuthorWhereInput] `json:"author,omitzero"`
}

// BlogAuthorWhereUniqueInput selects at most one BlogAuthor. At least one of
// id, blogId_authorId must be set.
// The remaining fields filter like BlogAuthorWhereInput.
type BlogAuthorWhereUniqueInput struct {
	ID             *string                                      `json:"id,omitempty" validate:"omitempty,cuid"`
	BlogIDAuthorID *BlogAuthorBlogIDAuthorIDCompoundUniqueInput `json:"blogId_authorId,omitempty"`
	AND            query.OneOrMany[BlogAuthorWhereInput]        `json:"AND,omitempty" validate:"omitempty,dive"`
	OR             []BlogAuthorWhereInput                       `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT            query.OneOrMany[BlogAuthorWhereInput]        `json:"NOT,omitempty" validate:"omitempty,dive"`
	BlogID         query.StringFilter                           `json:"blogId,omitzero"`
	AuthorID       query.StringFilter                           `json:"authorId,omitzero"`
	Position       query.IntFilter                              `json:"position,omitzero"`
	CreatedAt      query.DateTimeFilter                         `json:"createdAt,omitzero"`
	Blog           query.RelationFilter[BlogWhereInput]         `json:"blog,omitzero"`
	Author         query.RelationFilter[AuthorWhereInput]       `json:"author,omitzero"`
}

type BlogAuthorBlogIDAuthorIDCompoundUniqueInput struct {
	BlogID   string `json:"blogId" validate:"required,cuid"`
	AuthorID string `json:"authorId" validate:"required,cuid"`
}

func (w BlogAuthorWhereUniqueInput) uniqueKeys() []string {
	return blogAuthorModel.UniqueKeys()
}

func (w BlogAuthorWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil || w.BlogIDAuthorID != nil
}

type BlogAuthorOrderByWithRelationInput struct {
	ID        query.SortOrder                 `json:"id,omitempty" validate:"omitempty,enum"`
	BlogID    query.SortOrder                 `json:"blogId,omitempty" validate:"omitempty,enum"`
	AuthorID  query.SortOrder                 `json:"authorId,omitempty" validate:"omitempty,enum"`
	Position  query.SortOrder                 `json:"position,omitempty" validate:"omitempty,enum"`
	CreatedAt query.SortOrder                 `json:"createdAt,omitempty" validate:"omitempty,enum"`
	Blog      *BlogOrderByWithRelationInput   `json:"blog,omitempty"`
	Author    *AuthorOrderByWithRelationInput `json:"author,omitempty"`
}

// BlogAuthorOrderByScalarInput orders grouped rows by their scalar columns.
type BlogAuthorOrderByScalarInput struct {
	ID        query.SortOrder `json:"id,omitempty" validate:"omitempty,enum"`
	BlogID    query.SortOrder `json:"blogId,omitempty" validate:"omitempty,enum"`
	AuthorID  query.SortOrder `json:"authorId,omitempty" validate:"omitempty,enum"`
	Position  query.SortOrder `json:"position,omitempty" validate:"omitempty,enum"`
	CreatedAt query.SortOrder `json:"createdAt,omitempty" validate:"omitempty,enum"`
}

// BlogAuthorScalarWhereWithAggregatesInput filters the groups of a groupBy.
type BlogAuthorScalarWhereWithAggregatesInput struct {
	AND       query.OneOrMany[BlogAuthorScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        []BlogAuthorScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       query.OneOrMany[BlogAuthorScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        query.StringWithAggregatesFilter                          `json:"id,omitzero"`
	BlogID    query.StringWithAggregatesFilter                          `json:"blogId,omitzero"`
	AuthorID  query.StringWithAggregatesFilter                          `json:"authorId,omitzero"`
	Position  query.IntWithAggregatesFilter                             `json:"position,omitzero"`
	CreatedAt query.DateTimeWithAggregatesFilter                        `json:"createdAt,omitzero"`
}

// BlogAuthorScalarFieldEnum names a scalar field of BlogAuthor.
type BlogAuthorScalarFieldEnum string

func (e BlogAuthorScalarFieldEnum) IsValid() bool {
	return blogAuthorModel.hasField(string(e))
}

// =============================================================================
// BlogAuthor writes
// =============================================================================

// BlogAuthorCreateInput creates a BlogAuthor and writes its relations through
// nested operations.
type BlogAuthorCreateInput struct {
	ID        *string                     `json:"id,omitempty" validate:"omitempty,cuid"`
	Position  *int                        `json:"position,omitempty"`
	CreatedAt *time.Time                  `json:"createdAt,omitempty"`
	Blog      *BlogCreateNestedOneInput   `json:"blog" validate:"required"`
	Author    *AuthorCreateNestedOneInput `json:"author" validate:"required"`
}

// BlogAuthorUncheckedCreateInput creates a BlogAuthor with its foreign keys
// given as plain values.
type BlogAuthorUncheckedCreateInput struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	BlogID    string     `json:"blogId" validate:"required,cuid"`
	AuthorID  string     `json:"authorId" validate:"required,cuid"`
	Position  *int       `json:"position,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// BlogAuthorCreateManyInput is one row of a createMany.
type BlogAuthorCreateManyInput BlogAuthorUncheckedCreateInput

// BlogAuthorCreateNestedInput creates a BlogAuthor from the other side of one
// of its relations. Foreign keys filled in by the parent may be left out.
type BlogAuthorCreateNestedInput struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	BlogID    *string    `json:"blogId,omitempty" validate:"omitempty,cuid"`
	AuthorID  *string    `json:"authorId,omitempty" validate:"omitempty,cuid"`
	Position  *int       `json:"position,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type BlogAuthorUpdateInput struct {
	ID        query.FieldUpdate[string]           `json:"id,omitzero" validate:"omitempty,cuid"`
	Position  query.IntFieldUpdate                `json:"position,omitzero"`
	CreatedAt query.FieldUpdate[time.Time]        `json:"createdAt,omitzero"`
	Blog      *BlogUpdateOneRequiredNestedInput   `json:"blog,omitempty"`
	Author    *AuthorUpdateOneRequiredNestedInput `json:"author,omitempty"`
}

type BlogAuthorUncheckedUpdateInput struct {
	ID        query.FieldUpdate[string]    `json:"id,omitzero" validate:"omitempty,cuid"`
	BlogID    query.FieldUpdate[string]    `json:"blogId,omitzero" validate:"omitempty,cuid"`
	AuthorID  query.FieldUpdate[string]    `json:"authorId,omitzero" validate:"omitempty,cuid"`
	Position  query.IntFieldUpdate         `json:"position,omitzero"`
	CreatedAt query.FieldUpdate[time.Time] `json:"createdAt,omitzero"`
}

type BlogAuthorUpdateManyMutationInput struct {
	ID        query.FieldUpdate[string]    `json:"id,omitzero" validate:"omitempty,cuid"`
	Position  query.IntFieldUpdate         `json:"position,omitzero"`
	CreatedAt query.FieldUpdate[time.Time] `json:"createdAt,omitzero"`
}

// Nested writes reaching BlogAuthor from a related model.
type (
	BlogAuthorCreateNestedManyInput = query.ToManyCreate[BlogAuthorCreateNestedInput, BlogAuthorWhereUniqueInput]
	BlogAuthorUpdateManyNestedInput = query.ToManyUpdate[BlogAuthorCreateNestedInput, BlogAuthorUncheckedUpdateInput, BlogAuthorUpdateManyMutationInput, BlogAuthorWhereUniqueInput, BlogAuthorWhereInput]
)

// =============================================================================
// BlogAuthor operations
// =============================================================================

type (
	BlogAuthorFindUniqueArgs query.FindUniqueArgs[BlogAuthorSelect, BlogAuthorInclude, BlogAuthorWhereUniqueInput]
	BlogAuthorFindFirstArgs  query.FindManyArgs[BlogAuthorSelect, BlogAuthorInclude, BlogAuthorWhereInput, BlogAuthorOrderByWithRelationInput, BlogAuthorWhereUniqueInput, BlogAuthorScalarFieldEnum]
	BlogAuthorFindManyArgs   query.FindManyArgs[BlogAuthorSelect, BlogAuthorInclude, BlogAuthorWhereInput, BlogAuthorOrderByWithRelationInput, BlogAuthorWhereUniqueInput, BlogAuthorScalarFieldEnum]
	BlogAuthorCreateArgs     query.CreateArgs[BlogAuthorSelect, BlogAuthorInclude, BlogAuthorCreateInput, BlogAuthorUncheckedCreateInput]
	BlogAuthorUpdateArgs     query.UpdateArgs[BlogAuthorSelect, BlogAuthorInclude, BlogAuthorUpdateInput, BlogAuthorUncheckedUpdateInput, BlogAuthorWhereUniqueInput]
	BlogAuthorUpsertArgs     query.UpsertArgs[BlogAuthorSelect, BlogAuthorInclude, BlogAuthorWhereUniqueInput, BlogAuthorCreateInput, BlogAuthorUncheckedCreateInput, BlogAuthorUpdateInput, BlogAuthorUncheckedUpdateInput]
	BlogAuthorDeleteArgs     query.DeleteArgs[BlogAuthorSelect, BlogAuthorInclude, BlogAuthorWhereUniqueInput]
	BlogAuthorCreateManyArgs query.CreateManyArgs[BlogAuthorCreateManyInput]
	BlogAuthorUpdateManyArgs query.UpdateManyArgs[BlogAuthorUpdateManyMutationInput, BlogAuthorWhereInput]
	BlogAuthorDeleteManyArgs query.DeleteManyArgs[BlogAuthorWhereInput]
	BlogAuthorGroupByArgs    query.GroupByArgs[BlogAuthorWhereInput, BlogAuthorOrderByScalarInput, BlogAuthorScalarFieldEnum, BlogAuthorScalarWhereWithAggregatesInput]
)

// =============================================================================
// BlogAuthor descriptor
// =============================================================================

var blogAuthorModel = &Model{
	Name:       "BlogAuthor",
	Table:      "blog_authors",
	PrimaryKey: []string{"id"},
	Uniques:    [][]string{{"blogId", "authorId"}},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "cuid()", Format: FormatCUID},
		{Name: "blogId", Column: "blog_id", Type: TypeString, Format: FormatCUID, ForeignKey: true},
		{Name: "authorId", Column: "author_id", Type: TypeString, Format: FormatCUID, ForeignKey: true},
		{Name: "position", Column: "position", Type: TypeInt, Default: "0"},
		{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: "now()"},
	},
	Relations: []Relation{
		{Name: "blog", Model: "Blog", Kind: ToOne, Fields: []string{"blogId"}, References: []string{"id"}, OnDelete: "CASCADE"},
		{Name: "author", Model: "Author", Kind: ToOne, Fields: []string{"authorId"}, References: []string{"id"}, OnDelete: "CASCADE"},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[BlogAuthor](),
		ShapePartial:                   ctor[BlogAuthorPartial](),
		ShapeOptionalDefaults:          ctor[BlogAuthorOptionalDefaults](),
		ShapeSelect:                    ctor[BlogAuthorSelect](),
		ShapeInclude:                   ctor[BlogAuthorInclude](),
		ShapeWhere:                     ctor[BlogAuthorWhereInput](),
		ShapeWhereUnique:               ctor[BlogAuthorWhereUniqueInput](),
		ShapeOrderBy:                   ctor[BlogAuthorOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[BlogAuthorScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[BlogAuthorCreateInput](),
		ShapeUncheckedCreateInput:      ctor[BlogAuthorUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[BlogAuthorUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[BlogAuthorUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[BlogAuthorCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[BlogAuthorUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[BlogAuthorFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[BlogAuthorFindFirstArgs](),
		ShapeFindManyArgs:              ctor[BlogAuthorFindManyArgs](),
		ShapeCreateArgs:                ctor[BlogAuthorCreateArgs](),
		ShapeUpdateArgs:                ctor[BlogAuthorUpdateArgs](),
		ShapeUpsertArgs:                ctor[BlogAuthorUpsertArgs](),
		ShapeDeleteArgs:                ctor[BlogAuthorDeleteArgs](),
		ShapeCreateManyArgs:            ctor[BlogAuthorCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[BlogAuthorUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[BlogAuthorDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[BlogAuthorGroupByArgs](),
	},
}
