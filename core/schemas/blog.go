package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

// =============================================================================
// Blog
// =============================================================================

// Blog is a post with likes and an ordered byline.
type Blog struct {
	ID          string     `json:"id" validate:"required,cuid"`
	Title       string     `json:"title" validate:"required"`
	Slug        string     `json:"slug" validate:"required,slug"`
	Content     string     `json:"content" validate:"required"`
	Excerpt     *string    `json:"excerpt"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt" validate:"required"`
	UpdatedAt   time.Time  `json:"updatedAt" validate:"required"`
}

// BlogPartial is Blog with every field optional.
type BlogPartial struct {
	ID          *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Title       *string    `json:"title,omitempty"`
	Slug        *string    `json:"slug,omitempty" validate:"omitempty,slug"`
	Content     *string    `json:"content,omitempty"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Published   *bool      `json:"published,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// BlogOptionalDefaults is Blog with the defaulted fields optional.
type BlogOptionalDefaults struct {
	ID          *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Title       string     `json:"title" validate:"required"`
	Slug        string     `json:"slug" validate:"required,slug"`
	Content     string     `json:"content" validate:"required"`
	Excerpt     *string    `json:"excerpt"`
	Published   *bool      `json:"published,omitempty"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ToModel fills the defaulted fields and returns the record. Timestamps
// default to now.
func (o BlogOptionalDefaults) ToModel(now time.Time) (Blog, error) {
	id, err := newCUID(o.ID)
	if err != nil {
		return Blog{}, err
	}

	return Blog{
		ID:          id,
		Title:       o.Title,
		Slug:        o.Slug,
		Content:     o.Content,
		Excerpt:     o.Excerpt,
		Published:   validation.ValueOr(o.Published, false),
		PublishedAt: o.PublishedAt,
		CreatedAt:   validation.ValueOr(o.CreatedAt, now),
		UpdatedAt:   validation.ValueOr(o.UpdatedAt, now),
	}, nil
}

// =============================================================================
// Blog selection
// =============================================================================

type BlogSelect struct {
	ID          bool                                    `json:"id,omitempty"`
	Title       bool                                    `json:"title,omitempty"`
	Slug        bool                                    `json:"slug,omitempty"`
	Content     bool                                    `json:"content,omitempty"`
	Excerpt     bool                                    `json:"excerpt,omitempty"`
	Published   bool                                    `json:"published,omitempty"`
	PublishedAt bool                                    `json:"publishedAt,omitempty"`
	CreatedAt   bool                                    `json:"createdAt,omitempty"`
	UpdatedAt   bool                                    `json:"updatedAt,omitempty"`
	Likes       query.Relation[BlogLikeFindManyArgs]    `json:"likes,omitzero"`
	Authors     query.Relation[BlogAuthorFindManyArgs]  `json:"authors,omitzero"`
	NewsItem    query.Relation[NewsItemArgs]            `json:"newsItem,omitzero"`
	Count       query.Relation[BlogCountOutputTypeArgs] `json:"_count,omitzero"`
}

type BlogInclude struct {
	Likes    query.Relation[BlogLikeFindManyArgs]    `json:"likes,omitzero"`
	Authors  query.Relation[BlogAuthorFindManyArgs]  `json:"authors,omitzero"`
	NewsItem query.Relation[NewsItemArgs]            `json:"newsItem,omitzero"`
	Count    query.Relation[BlogCountOutputTypeArgs] `json:"_count,omitzero"`
}

// BlogCountOutputTypeSelect picks the to-many relations counted under _count.
type BlogCountOutputTypeSelect struct {
	Likes   bool `json:"likes,omitempty"`
	Authors bool `json:"authors,omitempty"`
}

type BlogCountOutputTypeArgs struct {
	Select *BlogCountOutputTypeSelect `json:"select,omitempty"`
}

type BlogArgs query.Args[BlogSelect, BlogInclude]

// =============================================================================
// Blog filters
// =============================================================================

type BlogWhereInput struct {
	AND         query.OneOrMany[BlogWhereInput]                  `json:"AND,omitempty" validate:"omitempty,dive"`
	OR          []BlogWhereInput                                 `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT         query.OneOrMany[BlogWhereInput]                  `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID          query.StringFilter                               `json:"id,omitzero"`
	Title       query.StringFilter                               `json:"title,omitzero"`
	Slug        query.StringFilter                               `json:"slug,omitzero"`
	Content     query.StringFilter                               `json:"content,omitzero"`
	Excerpt     query.StringNullableFilter                       `json:"excerpt,omitzero"`
	Published   query.BoolFilter                                 `json:"published,omitzero"`
	PublishedAt query.DateTimeNullableFilter                     `json:"publishedAt,omitzero"`
	CreatedAt   query.DateTimeFilter                             `json:"createdAt,omitzero"`
	UpdatedAt   query.DateTimeFilter                             `json:"updatedAt,omitzero"`
	Likes       query.ListRelationFilter[BlogLikeWhereInput]     `json:"likes,omitzero"`
	Authors     query.ListRelationFilter[BlogAuthorWhereInput]   `json:"authors,omitzero"`
	NewsItem    query.NullableRelationFilter[NewsItemWhereInput] `json:"newsItem,omitzero"`
}

// BlogWhereUniqueInput selects at most one Blog. At least one of id, slug
// must be set.
// The remaining fields filter like BlogWhereInput.
type BlogWhereUniqueInput struct {
	ID          *string                                          `json:"id,omitempty" validate:"omitempty,cuid"`
	Slug        *string                                          `json:"slug,omitempty" validate:"omitempty,slug"`
	AND         query.OneOrMany[BlogWhereInput]                  `json:"AND,omitempty" validate:"omitempty,dive"`
	OR          []BlogWhereInput                                 `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT         query.OneOrMany[BlogWhereInput]                  `json:"NOT,omitempty" validate:"omitempty,dive"`
	Title       query.StringFilter                               `json:"title,omitzero"`
	Content     query.StringFilter                               `json:"content,omitzero"`
	Excerpt     query.StringNullableFilter                       `json:"excerpt,omitzero"`
	Published   query.BoolFilter                                 `json:"published,omitzero"`
	PublishedAt query.DateTimeNullableFilter                     `json:"publishedAt,omitzero"`
	CreatedAt   query.DateTimeFilter                             `json:"createdAt,omitzero"`
	UpdatedAt   query.DateTimeFilter                             `json:"updatedAt,omitzero"`
	Likes       query.ListRelationFilter[BlogLikeWhereInput]     `json:"likes,omitzero"`
	Authors     query.ListRelationFilter[BlogAuthorWhereInput]   `json:"authors,omitzero"`
	NewsItem    query.NullableRelationFilter[NewsItemWhereInput] `json:"newsItem,omitzero"`
}

func (w BlogWhereUniqueInput) uniqueKeys() []string {
	return blogModel.UniqueKeys()
}

func (w BlogWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil || w.Slug != nil
}

type BlogOrderByWithRelationInput struct {
	ID          query.SortOrder                      `json:"id,omitempty" validate:"omitempty,enum"`
	Title       query.SortOrder                      `json:"title,omitempty" validate:"omitempty,enum"`
	Slug        query.SortOrder                      `json:"slug,omitempty" validate:"omitempty,enum"`
	Content     query.SortOrder                      `json:"content,omitempty" validate:"omitempty,enum"`
	Excerpt     *query.SortOrderInput                `json:"excerpt,omitempty"`
	Published   query.SortOrder                      `json:"published,omitempty" validate:"omitempty,enum"`
	PublishedAt *query.SortOrderInput                `json:"publishedAt,omitempty"`
	CreatedAt   query.SortOrder                      `json:"createdAt,omitempty" validate:"omitempty,enum"`
	UpdatedAt   query.SortOrder                      `json:"updatedAt,omitempty" validate:"omitempty,enum"`
	Likes       *query.OrderByRelationAggregateInput `json:"likes,omitempty"`
	Authors     *query.OrderByRelationAggregateInput `json:"authors,omitempty"`
	NewsItem    *NewsItemOrderByWithRelationInput    `json:"newsItem,omitempty"`
}

// BlogOrderByScalarInput orders grouped rows by their scalar columns.
type BlogOrderByScalarInput struct {
	ID          query.SortOrder       `json:"id,omitempty" validate:"omitempty,enum"`
	Title       query.SortOrder       `json:"title,omitempty" validate:"omitempty,enum"`
	Slug        query.SortOrder       `json:"slug,omitempty" validate:"omitempty,enum"`
	Content     query.SortOrder       `json:"content,omitempty" validate:"omitempty,enum"`
	Excerpt     *query.SortOrderInput `json:"excerpt,omitempty"`
	Published   query.SortOrder       `json:"published,omitempty" validate:"omitempty,enum"`
	PublishedAt *query.SortOrderInput `json:"publishedAt,omitempty"`
	CreatedAt   query.SortOrder       `json:"createdAt,omitempty" validate:"omitempty,enum"`
	UpdatedAt   query.SortOrder       `json:"updatedAt,omitempty" validate:"omitempty,enum"`
}

// BlogScalarWhereWithAggregatesInput filters the groups of a groupBy.
type BlogScalarWhereWithAggregatesInput struct {
	AND         query.OneOrMany[BlogScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR          []BlogScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT         query.OneOrMany[BlogScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID          query.StringWithAggregatesFilter                    `json:"id,omitzero"`
	Title       query.StringWithAggregatesFilter                    `json:"title,omitzero"`
	Slug        query.StringWithAggregatesFilter                    `json:"slug,omitzero"`
	Content     query.StringWithAggregatesFilter                    `json:"content,omitzero"`
	Excerpt     query.StringNullableWithAggregatesFilter            `json:"excerpt,omitzero"`
	Published   query.BoolWithAggregatesFilter                      `json:"published,omitzero"`
	PublishedAt query.DateTimeNullableWithAggregatesFilter          `json:"publishedAt,omitzero"`
	CreatedAt   query.DateTimeWithAggregatesFilter                  `json:"createdAt,omitzero"`
	UpdatedAt   query.DateTimeWithAggregatesFilter                  `json:"updatedAt,omitzero"`
}

// BlogScalarFieldEnum names a scalar field of Blog.
type BlogScalarFieldEnum string

func (e BlogScalarFieldEnum) IsValid() bool {
	return blogModel.hasField(string(e))
}

// =============================================================================
// Blog writes
// =============================================================================

// BlogCreateInput creates a Blog and writes its relations through nested
// operations.
type BlogCreateInput struct {
	ID          *string                          `json:"id,omitempty" validate:"omitempty,cuid"`
	Title       string                           `json:"title" validate:"required"`
	Slug        string                           `json:"slug" validate:"required,slug"`
	Content     string                           `json:"content" validate:"required"`
	Excerpt     *string                          `json:"excerpt,omitempty"`
	Published   *bool                            `json:"published,omitempty"`
	PublishedAt *time.Time                       `json:"publishedAt,omitempty"`
	CreatedAt   *time.Time                       `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time                       `json:"updatedAt,omitempty"`
	Likes       *BlogLikeCreateNestedManyInput   `json:"likes,omitempty"`
	Authors     *BlogAuthorCreateNestedManyInput `json:"authors,omitempty"`
	NewsItem    *NewsItemCreateNestedOneInput    `json:"newsItem,omitempty"`
}

// BlogUncheckedCreateInput creates a Blog with its foreign keys given as
// plain values.
type BlogUncheckedCreateInput struct {
	ID          *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Title       string     `json:"title" validate:"required"`
	Slug        string     `json:"slug" validate:"required,slug"`
	Content     string     `json:"content" validate:"required"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Published   *bool      `json:"published,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// BlogCreateManyInput is one row of a createMany.
type BlogCreateManyInput BlogUncheckedCreateInput

// BlogCreateNestedInput creates a Blog from the other side of one of its
// relations. Foreign keys filled in by the parent may be left out.
type BlogCreateNestedInput struct {
	ID          *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Title       string     `json:"title" validate:"required"`
	Slug        string     `json:"slug" validate:"required,slug"`
	Content     string     `json:"content" validate:"required"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Published   *bool      `json:"published,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type BlogUpdateInput struct {
	ID          query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,cuid"`
	Title       query.FieldUpdate[string]            `json:"title,omitzero"`
	Slug        query.FieldUpdate[string]            `json:"slug,omitzero" validate:"omitempty,slug"`
	Content     query.FieldUpdate[string]            `json:"content,omitzero"`
	Excerpt     query.NullableFieldUpdate[string]    `json:"excerpt,omitzero"`
	Published   query.FieldUpdate[bool]              `json:"published,omitzero"`
	PublishedAt query.NullableFieldUpdate[time.Time] `json:"publishedAt,omitzero"`
	CreatedAt   query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt   query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
	Likes       *BlogLikeUpdateManyNestedInput       `json:"likes,omitempty"`
	Authors     *BlogAuthorUpdateManyNestedInput     `json:"authors,omitempty"`
	NewsItem    *NewsItemUpdateOneNestedInput        `json:"newsItem,omitempty"`
}

type BlogUncheckedUpdateInput struct {
	ID          query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,cuid"`
	Title       query.FieldUpdate[string]            `json:"title,omitzero"`
	Slug        query.FieldUpdate[string]            `json:"slug,omitzero" validate:"omitempty,slug"`
	Content     query.FieldUpdate[string]            `json:"content,omitzero"`
	Excerpt     query.NullableFieldUpdate[string]    `json:"excerpt,omitzero"`
	Published   query.FieldUpdate[bool]              `json:"published,omitzero"`
	PublishedAt query.NullableFieldUpdate[time.Time] `json:"publishedAt,omitzero"`
	CreatedAt   query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt   query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
}

type BlogUpdateManyMutationInput struct {
	ID          query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,cuid"`
	Title       query.FieldUpdate[string]            `json:"title,omitzero"`
	Slug        query.FieldUpdate[string]            `json:"slug,omitzero" validate:"omitempty,slug"`
	Content     query.FieldUpdate[string]            `json:"content,omitzero"`
	Excerpt     query.NullableFieldUpdate[string]    `json:"excerpt,omitzero"`
	Published   query.FieldUpdate[bool]              `json:"published,omitzero"`
	PublishedAt query.NullableFieldUpdate[time.Time] `json:"publishedAt,omitzero"`
	CreatedAt   query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt   query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
}

// Nested writes reaching Blog from a related model.
type (
	BlogCreateNestedOneInput         = query.ToOneCreate[BlogCreateNestedInput, BlogWhereUniqueInput]
	BlogUpdateOneNestedInput         = query.ToOneUpdate[BlogCreateNestedInput, BlogUncheckedUpdateInput, BlogWhereUniqueInput]
	BlogUpdateOneRequiredNestedInput = query.ToOneRequiredUpdate[BlogCreateNestedInput, BlogUncheckedUpdateInput, BlogWhereUniqueInput]
)

// =============================================================================
// Blog operations
// =============================================================================

type (
	BlogFindUniqueArgs query.FindUniqueArgs[BlogSelect, BlogInclude, BlogWhereUniqueInput]
	BlogFindFirstArgs  query.FindManyArgs[BlogSelect, BlogInclude, BlogWhereInput, BlogOrderByWithRelationInput, BlogWhereUniqueInput, BlogScalarFieldEnum]
	BlogFindManyArgs   query.FindManyArgs[BlogSelect, BlogInclude, BlogWhereInput, BlogOrderByWithRelationInput, BlogWhereUniqueInput, BlogScalarFieldEnum]
	BlogCreateArgs     query.CreateArgs[BlogSelect, BlogInclude, BlogCreateInput, BlogUncheckedCreateInput]
	BlogUpdateArgs     query.UpdateArgs[BlogSelect, BlogInclude, BlogUpdateInput, BlogUncheckedUpdateInput, BlogWhereUniqueInput]
	BlogUpsertArgs     query.UpsertArgs[BlogSelect, BlogInclude, BlogWhereUniqueInput, BlogCreateInput, BlogUncheckedCreateInput, BlogUpdateInput, BlogUncheckedUpdateInput]
	BlogDeleteArgs     query.DeleteArgs[BlogSelect, BlogInclude, BlogWhereUniqueInput]
	BlogCreateManyArgs query.CreateManyArgs[BlogCreateManyInput]
	BlogUpdateManyArgs query.UpdateManyArgs[BlogUpdateManyMutationInput, BlogWhereInput]
	BlogDeleteManyArgs query.DeleteManyArgs[BlogWhereInput]
	BlogGroupByArgs    query.GroupByArgs[BlogWhereInput, BlogOrderByScalarInput, BlogScalarFieldEnum, BlogScalarWhereWithAggregatesInput]
)

// =============================================================================
// Blog descriptor
// =============================================================================

var blogModel = &Model{
	Name:       "Blog",
	Table:      "blogs",
	PrimaryKey: []string{"id"},
	Uniques:    [][]string{{"slug"}},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "cuid()", Format: FormatCUID},
		{Name: "title", Column: "title", Type: TypeString},
		{Name: "slug", Column: "slug", Type: TypeString, Unique: true, Format: FormatSlug},
		{Name: "content", Column: "content", Type: TypeString},
		{Name: "excerpt", Column: "excerpt", Type: TypeString, Nullable: true},
		{Name: "published", Column: "published", Type: TypeBoolean, Default: "false"},
		{Name: "publishedAt", Column: "published_at", Type: TypeDateTime, Nullable: true},
		{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: "now()"},
		{Name: "updatedAt", Column: "updated_at", Type: TypeDateTime, UpdatedAt: true},
	},
	Relations: []Relation{
		{Name: "likes", Model: "BlogLike", Kind: ToMany},
		{Name: "authors", Model: "BlogAuthor", Kind: ToMany},
		{Name: "newsItem", Model: "NewsItem", Kind: ToOne, Optional: true},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[Blog](),
		ShapePartial:                   ctor[BlogPartial](),
		ShapeOptionalDefaults:          ctor[BlogOptionalDefaults](),
		ShapeSelect:                    ctor[BlogSelect](),
		ShapeInclude:                   ctor[BlogInclude](),
		ShapeWhere:                     ctor[BlogWhereInput](),
		ShapeWhereUnique:               ctor[BlogWhereUniqueInput](),
		ShapeOrderBy:                   ctor[BlogOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[BlogScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[BlogCreateInput](),
		ShapeUncheckedCreateInput:      ctor[BlogUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[BlogUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[BlogUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[BlogCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[BlogUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[BlogFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[BlogFindFirstArgs](),
		ShapeFindManyArgs:              ctor[BlogFindManyArgs](),
		ShapeCreateArgs:                ctor[BlogCreateArgs](),
		ShapeUpdateArgs:                ctor[BlogUpdateArgs](),
		ShapeUpsertArgs:                ctor[BlogUpsertArgs](),
		ShapeDeleteArgs:                ctor[BlogDeleteArgs](),
		ShapeCreateManyArgs:            ctor[BlogCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[BlogUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[BlogDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[BlogGroupByArgs](),
	},
}
