package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

// =============================================================================
// NewsItem
// =============================================================================

// NewsItem is a feed entry announcing a poll or a blog post.
type NewsItem struct {
	ID          string     `json:"id" validate:"required,cuid"`
	Title       string     `json:"title" validate:"required"`
	Summary     *string    `json:"summary"`
	PollID      *string    `json:"pollId" validate:"omitempty,uuid"`
	BlogID      *string    `json:"blogId" validate:"omitempty,cuid"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt" validate:"required"`
	UpdatedAt   time.Time  `json:"updatedAt" validate:"required"`
}

// NewsItemPartial is NewsItem with every field optional.
type NewsItemPartial struct {
	ID          *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Title       *string    `json:"title,omitempty"`
	Summary     *string    `json:"summary,omitempty"`
	PollID      *string    `json:"pollId,omitempty" validate:"omitempty,uuid"`
	BlogID      *string    `json:"blogId,omitempty" validate:"omitempty,cuid"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// NewsItemOptionalDefaults is NewsItem with the defaulted fields optional.
type NewsItemOptionalDefaults struct {
	ID          *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Title       string     `json:"title" validate:"required"`
	Summary     *string    `json:"summary"`
	PollID      *string    `json:"pollId" validate:"omitempty,uuid"`
	BlogID      *string    `json:"blogId" validate:"omitempty,cuid"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ToModel fills the defaulted fields and returns the record. Timestamps
// default to now.
func (o NewsItemOptionalDefaults) ToModel(now time.Time) (NewsItem, error) {
	id, err := newCUID(o.ID)
	if err != nil {
		return NewsItem{}, err
	}

	return NewsItem{
		ID:          id,
		Title:       o.Title,
		Summary:     o.Summary,
		PollID:      o.PollID,
		BlogID:      o.BlogID,
		PublishedAt: o.PublishedAt,
		CreatedAt:   validation.ValueOr(o.CreatedAt, now),
		UpdatedAt:   validation.ValueOr(o.UpdatedAt, now),
	}, nil
}

// =============================================================================
// NewsItem selection
// =============================================================================

type NewsItemSelect struct {
	ID          bool                     `json:"id,omitempty"`
	Title       bool                     `json:"title,omitempty"`
	Summary     bool                     `json:"summary,omitempty"`
	PollID      bool                     `json:"pollId,omitempty"`
	BlogID      bool                     `json:"blogId,omitempty"`
	PublishedAt bool                     `json:"publishedAt,omitempty"`
	CreatedAt   bool                     `json:"createdAt,omitempty"`
	UpdatedAt   bool                     `json:"updatedAt,omitempty"`
	Poll        query.Relation[PollArgs] `json:"poll,omitzero"`
	Blog        query.Relation[BlogArgs] `json:"blog,omitzero"`
}

type NewsItemInclude struct {
	Poll query.Relation[PollArgs] `json:"poll,omitzero"`
	Blog query.Relation[BlogArgs] `json:"blog,omitzero"`
}

type NewsItemArgs query.Args[NewsItemSelect, NewsItemInclude]

// =============================================================================
// NewsItem filters
// =============================================================================

type NewsItemWhereInput struct {
	AND         query.OneOrMany[NewsItemWhereInput]          `json:"AND,omitempty" validate:"omitempty,dive"`
	OR          []NewsItemWhereInput                         `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT         query.OneOrMany[NewsItemWhereInput]          `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID          query.StringFilter                           `json:"id,omitzero"`
	Title       query.StringFilter                           `json:"title,omitzero"`
	Summary     query.StringNullableFilter                   `json:"summary,omitzero"`
	PollID      query.StringNullableFilter                   `json:"pollId,omitzero"`
	BlogID      query.StringNullableFilter                   `json:"blogId,omitzero"`
	PublishedAt query.DateTimeNullableFilter                 `json:"publishedAt,omitzero"`
	CreatedAt   query.DateTimeFilter                         `json:"createdAt,omitzero"`
	UpdatedAt   query.DateTimeFilter                         `json:"updatedAt,omitzero"`
	Poll        query.NullableRelationFilter[PollWhereInput] `json:"poll,omitzero"`
	Blog        query.NullableRelationFilter[BlogWhereInput] `json:"blog,omitzero"`
}

// NewsItemWhereUniqueInput selects at most one NewsItem. At least one of id,
// pollId, blogId must be set.
// The remaining fields filter like NewsItemWhereInput.
type NewsItemWhereUniqueInput struct {
	ID          *string                                      `json:"id,omitempty" validate:"omitempty,cuid"`
	PollID      *string                                      `json:"pollId,omitempty" validate:"omitempty,uuid"`
	BlogID      *string                                      `json:"blogId,omitempty" validate:"omitempty,cuid"`
	AND         query.OneOrMany[NewsItemWhereInput]          `json:"AND,omitempty" validate:"omitempty,dive"`
	OR          []NewsItemWhereInput                         `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT         query.OneOrMany[NewsItemWhereInput]          `json:"NOT,omitempty" validate:"omitempty,dive"`
	Title       query.StringFilter                           `json:"title,omitzero"`
	Summary     query.StringNullableFilter                   `json:"summary,omitzero"`
	PublishedAt query.DateTimeNullableFilter                 `json:"publishedAt,omitzero"`
	CreatedAt   query.DateTimeFilter                         `json:"createdAt,omitzero"`
	UpdatedAt   query.DateTimeFilter                         `json:"updatedAt,omitzero"`
	Poll        query.NullableRelationFilter[PollWhereInput] `json:"poll,omitzero"`
	Blog        query.NullableRelationFilter[BlogWhereInput] `json:"blog,omitzero"`
}

func (w NewsItemWhereUniqueInput) uniqueKeys() []string {
	return newsItemModel.UniqueKeys()
}

func (w NewsItemWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil || w.PollID != nil || w.BlogID != nil
}

type NewsItemOrderByWithRelationInput struct {
	ID          query.SortOrder               `json:"id,omitempty" validate:"omitempty,enum"`
	Title       query.SortOrder               `json:"title,omitempty" validate:"omitempty,enum"`
	Summary     *query.SortOrderInput         `json:"summary,omitempty"`
	PollID      *query.SortOrderInput         `json:"pollId,omitempty"`
	BlogID      *query.SortOrderInput         `json:"blogId,omitempty"`
	PublishedAt *query.SortOrderInput         `json:"publishedAt,omitempty"`
	CreatedAt   query.SortOrder               `json:"createdAt,omitempty" validate:"omitempty,enum"`
	UpdatedAt   query.SortOrder               `json:"updatedAt,omitempty" validate:"omitempty,enum"`
	Poll        *PollOrderByWithRelationInput `json:"poll,omitempty"`
	Blog        *BlogOrderByWithRelationInput `json:"blog,omitempty"`
}

// NewsItemOrderByScalarInput orders grouped rows by their scalar columns.
type NewsItemOrderByScalarInput struct {
	ID          query.SortOrder       `json:"id,omitempty" validate:"omitempty,enum"`
	Title       query.SortOrder       `json:"title,omitempty" validate:"omitempty,enum"`
	Summary     *query.SortOrderInput `json:"summary,omitempty"`
	PollID      *query.SortOrderInput `json:"pollId,omitempty"`
	BlogID      *query.SortOrderInput `json:"blogId,omitempty"`
	PublishedAt *query.SortOrderInput `json:"publishedAt,omitempty"`
	CreatedAt   query.SortOrder       `json:"createdAt,omitempty" validate:"omitempty,enum"`
	UpdatedAt   query.SortOrder       `json:"updatedAt,omitempty" validate:"omitempty,enum"`
}

// NewsItemScalarWhereWithAggregatesInput filters the groups of a groupBy.
type NewsItemScalarWhereWithAggregatesInput struct {
	AND         query.OneOrMany[NewsItemScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR          []NewsItemScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT         query.OneOrMany[NewsItemScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID          query.StringWithAggregatesFilter                        `json:"id,omitzero"`
	Title       query.StringWithAggregatesFilter                        `json:"title,omitzero"`
	Summary     query.StringNullableWithAggregatesFilter                `json:"summary,omitzero"`
	PollID      query.StringNullableWithAggregatesFilter                `json:"pollId,omitzero"`
	BlogID      query.StringNullableWithAggregatesFilter                `json:"blogId,omitzero"`
	PublishedAt query.DateTimeNullableWithAggregatesFilter              `json:"publishedAt,omitzero"`
	CreatedAt   query.DateTimeWithAggregatesFilter                      `json:"createdAt,omitzero"`
	UpdatedAt   query.DateTimeWithAggregatesFilter                      `json:"updatedAt,omitzero"`
}

// NewsItemScalarFieldEnum names a scalar field of NewsItem.
type NewsItemScalarFieldEnum string

func (e NewsItemScalarFieldEnum) IsValid() bool {
	return newsItemModel.hasField(string(e))
}

// =============================================================================
// NewsItem writes
// =============================================================================

// NewsItemCreateInput creates a NewsItem and writes its relations through
// nested operations.
type NewsItemCreateInput struct {
	ID          *string                   `json:"id,omitempty" validate:"omitempty,cuid"`
	Title       string                    `json:"title" validate:"required"`
	Summary     *string                   `json:"summary,omitempty"`
	PublishedAt *time.Time                `json:"publishedAt,omitempty"`
	CreatedAt   *time.Time                `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time                `json:"updatedAt,omitempty"`
	Poll        *PollCreateNestedOneInput `json:"poll,omitempty"`
	Blog        *BlogCreateNestedOneInput `json:"blog,omitempty"`
}

// NewsItemUncheckedCreateInput creates a NewsItem with its foreign keys given
// as plain values.
type NewsItemUncheckedCreateInput struct {
	ID          *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Title       string     `json:"title" validate:"required"`
	Summary     *string    `json:"summary,omitempty"`
	PollID      *string    `json:"pollId,omitempty" validate:"omitempty,uuid"`
	BlogID      *string    `json:"blogId,omitempty" validate:"omitempty,cuid"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// NewsItemCreateManyInput is one row of a createMany.
type NewsItemCreateManyInput NewsItemUncheckedCreateInput

// NewsItemCreateNestedInput creates a NewsItem from the other side of one of
// its relations. Foreign keys filled in by the parent may be left out.
type NewsItemCreateNestedInput struct {
	ID          *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Title       string     `json:"title" validate:"required"`
	Summary     *string    `json:"summary,omitempty"`
	PollID      *string    `json:"pollId,omitempty" validate:"omitempty,uuid"`
	BlogID      *string    `json:"blogId,omitempty" validate:"omitempty,cuid"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type NewsItemUpdateInput struct {
	ID          query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,cuid"`
	Title       query.FieldUpdate[string]            `json:"title,omitzero"`
	Summary     query.NullableFieldUpdate[string]    `json:"summary,omitzero"`
	PublishedAt query.NullableFieldUpdate[time.Time] `json:"publishedAt,omitzero"`
	CreatedAt   query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt   query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
	Poll        *PollUpdateOneNestedInput            `json:"poll,omitempty"`
	Blog        *BlogUpdateOneNestedInput            `json:"blog,omitempty"`
}

type NewsItemUncheckedUpdateInput struct {
	ID          query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,cuid"`
	Title       query.FieldUpdate[string]            `json:"title,omitzero"`
	Summary     query.NullableFieldUpdate[string]    `json:"summary,omitzero"`
	PollID      query.NullableFieldUpdate[string]    `json:"pollId,omitzero" validate:"omitempty,uuid"`
	BlogID      query.NullableFieldUpdate[string]    `json:"blogId,omitzero" validate:"omitempty,cuid"`
	PublishedAt query.NullableFieldUpdate[time.Time] `json:"publishedAt,omitzero"`
	CreatedAt   query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt   query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
}

type NewsItemUpdateManyMutationInput struct {
	ID          query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,cuid"`
	Title       query.FieldUpdate[string]            `json:"title,omitzero"`
	Summary     query.NullableFieldUpdate[string]    `json:"summary,omitzero"`
	PublishedAt query.NullableFieldUpdate[time.Time] `json:"publishedAt,omitzero"`
	CreatedAt   query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt   query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
}

// Nested writes reaching NewsItem from a related model.
type (
	NewsItemCreateNestedOneInput = query.ToOneCreate[NewsItemCreateNestedInput, NewsItemWhereUniqueInput]
	NewsItemUpdateOneNestedInput = query.ToOneUpdate[NewsItemCreateNestedInput, NewsItemUncheckedUpdateInput, NewsItemWhereUniqueInput]
)

// =============================================================================
// NewsItem operations
// =============================================================================

type (
	NewsItemFindUniqueArgs query.FindUniqueArgs[NewsItemSelect, NewsItemInclude, NewsItemWhereUniqueInput]
	NewsItemFindFirstArgs  query.FindManyArgs[NewsItemSelect, NewsItemInclude, NewsItemWhereInput, NewsItemOrderByWithRelationInput, NewsItemWhereUniqueInput, NewsItemScalarFieldEnum]
	NewsItemFindManyArgs   query.FindManyArgs[NewsItemSelect, NewsItemInclude, NewsItemWhereInput, NewsItemOrderByWithRelationInput, NewsItemWhereUniqueInput, NewsItemScalarFieldEnum]
	NewsItemCreateArgs     query.CreateArgs[NewsItemSelect, NewsItemInclude, NewsItemCreateInput, NewsItemUncheckedCreateInput]
	NewsItemUpdateArgs     query.UpdateArgs[NewsItemSelect, NewsItemInclude, NewsItemUpdateInput, NewsItemUncheckedUpdateInput, NewsItemWhereUniqueInput]
	NewsItemUpsertArgs     query.UpsertArgs[NewsItemSelect, NewsItemInclude, NewsItemWhereUniqueInput, NewsItemCreateInput, NewsItemUncheckedCreateInput, NewsItemUpdateInput, NewsItemUncheckedUpdateInput]
	NewsItemDeleteArgs     query.DeleteArgs[NewsItemSelect, NewsItemInclude, NewsItemWhereUniqueInput]
	NewsItemCreateManyArgs query.CreateManyArgs[NewsItemCreateManyInput]
	NewsItemUpdateManyArgs query.UpdateManyArgs[NewsItemUpdateManyMutationInput, NewsItemWhereInput]
	NewsItemDeleteManyArgs query.DeleteManyArgs[NewsItemWhereInput]
	NewsItemGroupByArgs    query.GroupByArgs[NewsItemWhereInput, NewsItemOrderByScalarInput, NewsItemScalarFieldEnum, NewsItemScalarWhereWithAggregatesInput]
)

// =============================================================================
// NewsItem descriptor
// =============================================================================

var newsItemModel = &Model{
	Name:       "NewsItem",
	Table:      "news_items",
	PrimaryKey: []string{"id"},
	Uniques:    [][]string{{"pollId"}, {"blogId"}},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "cuid()", Format: FormatCUID},
		{Name: "title", Column: "title", Type: TypeString},
		{Name: "summary", Column: "summary", Type: TypeString, Nullable: true},
		{Name: "pollId", Column: "poll_id", Type: TypeString, Nullable: true, Unique: true, Format: FormatUUID, ForeignKey: true},
		{Name: "blogId", Column: "blog_id", Type: TypeString, Nullable: true, Unique: true, Format: FormatCUID, ForeignKey: true},
		{Name: "publishedAt", Column: "published_at", Type: TypeDateTime, Nullable: true},
		{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: "now()"},
		{Name: "updatedAt", Column: "updated_at", Type: TypeDateTime, UpdatedAt: true},
	},
	Relations: []Relation{
		{Name: "poll", Model: "Poll", Kind: ToOne, Optional: true, Fields: []string{"pollId"}, References: []string{"id"}, OnDelete: "SET NULL"},
		{Name: "blog", Model: "Blog", Kind: ToOne, Optional: true, Fields: []string{"blogId"}, References: []string{"id"}, OnDelete: "SET NULL"},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[NewsItem](),
		ShapePartial:                   ctor[NewsItemPartial](),
		ShapeOptionalDefaults:          ctor[NewsItemOptionalDefaults](),
		ShapeSelect:                    ctor[NewsItemSelect](),
		ShapeInclude:                   ctor[NewsItemInclude](),
		ShapeWhere:                     ctor[NewsItemWhereInput](),
		ShapeWhereUnique:               ctor[NewsItemWhereUniqueInput](),
		ShapeOrderBy:                   ctor[NewsItemOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[NewsItemScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[NewsItemCreateInput](),
		ShapeUncheckedCreateInput:      ctor[NewsItemUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[NewsItemUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[NewsItemUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[NewsItemCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[NewsItemUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[NewsItemFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[NewsItemFindFirstArgs](),
		ShapeFindManyArgs:              ctor[NewsItemFindManyArgs](),
		ShapeCreateArgs:                ctor[NewsItemCreateArgs](),
		ShapeUpdateArgs:                ctor[NewsItemUpdateArgs](),
		ShapeUpsertArgs:                ctor[NewsItemUpsertArgs](),
		ShapeDeleteArgs:                ctor[NewsItemDeleteArgs](),
		ShapeCreateManyArgs:            ctor[NewsItemCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[NewsItemUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[NewsItemDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[NewsItemGroupByArgs](),
	},
}
