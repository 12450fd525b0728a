package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

// =============================================================================
// Poll
// =============================================================================

// Poll is a question with a list of options. Archiving and deleting are soft:
// the flags are set and the time of the change is kept.
type Poll struct {
	ID             string     `json:"id" validate:"required,uuid"`
	Question       string     `json:"question" validate:"required"`
	Description    *string    `json:"description"`
	CategoryID     string     `json:"categoryId" validate:"required,uuid"`
	AllowAnonymous bool       `json:"allowAnonymous"`
	MultipleChoice bool       `json:"multipleChoice"`
	IsArchived     bool       `json:"isArchived"`
	IsDeleted      bool       `json:"isDeleted"`
	ClosesAt       *time.Time `json:"closesAt"`
	ArchivedAt     *time.Time `json:"archivedAt"`
	DeletedAt      *time.Time `json:"deletedAt"`
	CreatedAt      time.Time  `json:"createdAt" validate:"required"`
	UpdatedAt      time.Time  `json:"updatedAt" validate:"required"`
}

// PollPartial is Poll with every field optional.
type PollPartial struct {
	ID             *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	Question       *string    `json:"question,omitempty"`
	Description    *string    `json:"description,omitempty"`
	CategoryID     *string    `json:"categoryId,omitempty" validate:"omitempty,uuid"`
	AllowAnonymous *bool      `json:"allowAnonymous,omitempty"`
	MultipleChoice *bool      `json:"multipleChoice,omitempty"`
	IsArchived     *bool      `json:"isArchived,omitempty"`
	IsDeleted      *bool      `json:"isDeleted,omitempty"`
	ClosesAt       *time.Time `json:"closesAt,omitempty"`
	ArchivedAt     *time.Time `json:"archivedAt,omitempty"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// PollOptionalDefaults is Poll with the defaulted fields optional.
type PollOptionalDefaults struct {
	ID             *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	Question       string     `json:"question" validate:"required"`
	Description    *string    `json:"description"`
	CategoryID     string     `json:"categoryId" validate:"required,uuid"`
	AllowAnonymous *bool      `json:"allowAnonymous,omitempty"`
	MultipleChoice *bool      `json:"multipleChoice,omitempty"`
	IsArchived     *bool      `json:"isArchived,omitempty"`
	IsDeleted      *bool      `json:"isDeleted,omitempty"`
	ClosesAt       *time.Time `json:"closesAt"`
	ArchivedAt     *time.Time `json:"archivedAt"`
	DeletedAt      *time.Time `json:"deletedAt"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// ToModel fills the defaulted fields and returns the record. Timestamps
// default to now.
func (o PollOptionalDefaults) ToModel(now time.Time) (Poll, error) {
	return Poll{
		ID:             newUUID(o.ID),
		Question:       o.Question,
		Description:    o.Description,
		CategoryID:     o.CategoryID,
		AllowAnonymous: validation.ValueOr(o.AllowAnonymous, true),
		MultipleChoice: validation.ValueOr(o.MultipleChoice, false),
		IsArchived:     validation.ValueOr(o.IsArchived, false),
		IsDeleted:      validation.ValueOr(o.IsDeleted, false),
		ClosesAt:       o.ClosesAt,
		ArchivedAt:     o.ArchivedAt,
		DeletedAt:      o.DeletedAt,
		CreatedAt:      validation.ValueOr(o.CreatedAt, now),
		UpdatedAt:      validation.ValueOr(o.UpdatedAt, now),
	}, nil
}

// =============================================================================
// Poll selection
// =============================================================================

type PollSelect struct {
	ID             bool                                    `json:"id,omitempty"`
	Question       bool                                    `json:"question,omitempty"`
	Description    bool                                    `json:"description,omitempty"`
	CategoryID     bool                                    `json:"categoryId,omitempty"`
	AllowAnonymous bool                                    `json:"allowAnonymous,omitempty"`
	MultipleChoice bool                                    `json:"multipleChoice,omitempty"`
	IsArchived     bool                                    `json:"isArchived,omitempty"`
	IsDeleted      bool                                    `json:"isDeleted,omitempty"`
	ClosesAt       bool                                    `json:"closesAt,omitempty"`
	ArchivedAt     bool                                    `json:"archivedAt,omitempty"`
	DeletedAt      bool                                    `json:"deletedAt,omitempty"`
	CreatedAt      bool                                    `json:"createdAt,omitempty"`
	UpdatedAt      bool                                    `json:"updatedAt,omitempty"`
	Category       query.Relation[CategoryArgs]            `json:"category,omitzero"`
	Options        query.Relation[PollOptionFindManyArgs]  `json:"options,omitzero"`
	Votes          query.Relation[VoteFindManyArgs]        `json:"votes,omitzero"`
	NewsItem       query.Relation[NewsItemArgs]            `json:"newsItem,omitzero"`
	Count          query.Relation[PollCountOutputTypeArgs] `json:"_count,omitzero"`
}

type PollInclude struct {
	Category query.Relation[CategoryArgs]            `json:"category,omitzero"`
	Options  query.Relation[PollOptionFindManyArgs]  `json:"options,omitzero"`
	Votes    query.Relation[VoteFindManyArgs]        `json:"votes,omitzero"`
	NewsItem query.Relation[NewsItemArgs]            `json:"newsItem,omitzero"`
	Count    query.Relation[PollCountOutputTypeArgs] `json:"_count,omitzero"`
}

// PollCountOutputTypeSelect picks the to-many relations counted under _count.
type PollCountOutputTypeSelect struct {
	Options bool `json:"options,omitempty"`
	Votes   bool `json:"votes,omitempty"`
}

type PollCountOutputTypeArgs struct {
	Select *PollCountOutputTypeSelect `json:"select,omitempty"`
}

type PollArgs query.Args[PollSelect, PollInclude]

// =============================================================================
// Poll filters
// =============================================================================

type PollWhereInput struct {
	AND            query.OneOrMany[PollWhereInput]                  `json:"AND,omitempty" validate:"omitempty,dive"`
	OR             []PollWhereInput                                 `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT            query.OneOrMany[PollWhereInput]                  `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID             query.StringFilter                               `json:"id,omitzero"`
	Question       query.StringFilter                               `json:"question,omitzero"`
	Description    query.StringNullableFilter                       `json:"description,omitzero"`
	CategoryID     query.StringFilter                               `json:"categoryId,omitzero"`
	AllowAnonymous query.BoolFilter                                 `json:"allowAnonymous,omitzero"`
	MultipleChoice query.BoolFilter                                 `json:"multipleChoice,omitzero"`
	IsArchived     query.BoolFilter                                 `json:"isArchived,omitzero"`
	IsDeleted      query.BoolFilter                                 `json:"isDeleted,omitzero"`
	ClosesAt       query.DateTimeNullableFilter                     `json:"closesAt,omitzero"`
	ArchivedAt     query.DateTimeNullableFilter                     `json:"archivedAt,omitzero"`
	DeletedAt      query.DateTimeNullableFilter                     `json:"deletedAt,omitzero"`
	CreatedAt      query.DateTimeFilter                             `json:"createdAt,omitzero"`
	UpdatedAt      query.DateTimeFilter                             `json:"updatedAt,omitzero"`
	Category       query.RelationFilter[CategoryWhereInput]         `json:"category,omitzero"`
	Options        query.ListRelationFilter[PollOptionWhereInput]   `json:"options,omitzero"`
	Votes          query.ListRelationFilter[VoteWhereInput]         `json:"votes,omitzero"`
	NewsItem       query.NullableRelationFilter[NewsItemWhereInput] `json:"newsItem,omitzero"`
}

// PollWhereUniqueInput selects at most one Poll. At least one of id must be
// set.
// The remaining fields filter like PollWhereInput.
type PollWhereUniqueInput struct {
	ID             *string                                          `json:"id,omitempty" validate:"omitempty,uuid"`
	AND            query.OneOrMany[PollWhereInput]                  `json:"AND,omitempty" validate:"omitempty,dive"`
	OR             []PollWhereInput                                 `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT            query.OneOrMany[PollWhereInput]                  `json:"NOT,omitempty" validate:"omitempty,dive"`
	Question       query.StringFilter                               `json:"question,omitzero"`
	Description    query.StringNullableFilter                       `json:"description,omitzero"`
	CategoryID     query.StringFilter                               `json:"categoryId,omitzero"`
	AllowAnonymous query.BoolFilter                                 `json:"allowAnonymous,omitzero"`
	MultipleChoice query.BoolFilter                                 `json:"multipleChoice,omitzero"`
	IsArchived     query.BoolFilter                                 `json:"isArchived,omitzero"`
	IsDeleted      query.BoolFilter                                 `json:"isDeleted,omitzero"`
	ClosesAt       query.DateTimeNullableFilter                     `json:"closesAt,omitzero"`
	ArchivedAt     query.DateTimeNullableFilter                     `json:"archivedAt,omitzero"`
	DeletedAt      query.DateTimeNullableFilter                     `json:"deletedAt,omitzero"`
	CreatedAt      query.DateTimeFilter                             `json:"createdAt,omitzero"`
	UpdatedAt      query.DateTimeFilter                             `json:"updatedAt,omitzero"`
	Category       query.RelationFilter[CategoryWhereInput]         `json:"category,omitzero"`
	Options        query.ListRelationFilter[PollOptionWhereInput]   `json:"options,omitzero"`
	Votes          query.ListRelationFilter[VoteWhereInput]         `json:"votes,omitzero"`
	NewsItem       query.NullableRelationFilter[NewsItemWhereInput] `json:"newsItem,omitzero"`
}

func (w PollWhereUniqueInput) uniqueKeys() []string {
	return pollModel.UniqueKeys()
}

func (w PollWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil
}

type PollOrderByWithRelationInput struct {
	ID             query.SortOrder                      `json:"id,omitempty" validate:"omitempty,enum"`
	Question       query.SortOrder                      `json:"question,omitempty" validate:"omitempty,enum"`
	Description    *query.SortOrderInput                `json:"description,omitempty"`
	CategoryID     query.SortOrder                      `json:"categoryId,omitempty" validate:"omitempty,enum"`
	AllowAnonymous query.SortOrder                      `json:"allowAnonymous,omitempty" validate:"omitempty,enum"`
	MultipleChoice query.SortOrder                      `json:"multipleChoice,omitempty" validate:"omitempty,enum"`
	IsArchived     query.SortOrder                      `json:"isArchived,omitempty" validate:"omitempty,enum"`
	IsDeleted      query.SortOrder                      `json:"isDeleted,omitempty" validate:"omitempty,enum"`
	ClosesAt       *query.SortOrderInput                `json:"closesAt,omitempty"`
	ArchivedAt     *query.SortOrderInput                `json:"archivedAt,omitempty"`
	DeletedAt      *query.SortOrderInput                `json:"deletedAt,omitempty"`
	CreatedAt      query.SortOrder                      `json:"createdAt,omitempty" validate:"omitempty,enum"`
	UpdatedAt      query.SortOrder                      `json:"updatedAt,omitempty" validate:"omitempty,enum"`
	Category       *CategoryOrderByWithRelationInput    `json:"category,omitempty"`
	Options        *query.OrderByRelationAggregateInput `json:"options,omitempty"`
	Votes          *query.OrderByRelationAggregateInput `json:"votes,omitempty"`
	NewsItem       *NewsItemOrderByWithRelationInput    `json:"newsItem,omitempty"`
}

// PollOrderByScalarInput orders grouped rows by their scalar columns.
type PollOrderByScalarInput struct {
	ID             query.SortOrder       `json:"id,omitempty" validate:"omitempty,enum"`
	Question       query.SortOrder       `json:"question,omitempty" validate:"omitempty,enum"`
	Description    *query.SortOrderInput `json:"description,omitempty"`
	CategoryID     query.SortOrder       `json:"categoryId,omitempty" validate:"omitempty,enum"`
	AllowAnonymous query.SortOrder       `json:"allowAnonymous,omitempty" validate:"omitempty,enum"`
	MultipleChoice query.SortOrder       `json:"multipleChoice,omitempty" validate:"omitempty,enum"`
	IsArchived     query.SortOrder       `json:"isArchived,omitempty" validate:"omitempty,enum"`
	IsDeleted      query.SortOrder       `json:"isDeleted,omitempty" validate:"omitempty,enum"`
	ClosesAt       *query.SortOrderInput `json:"closesAt,omitempty"`
	ArchivedAt     *query.SortOrderInput `json:"archivedAt,omitempty"`
	DeletedAt      *query.SortOrderInput `json:"deletedAt,omitempty"`
	CreatedAt      query.SortOrder       `json:"createdAt,omitempty" validate:"omitempty,enum"`
	UpdatedAt      query.SortOrder       `json:"updatedAt,omitempty" validate:"omitempty,enum"`
}

// PollScalarWhereWithAggregatesInput filters the groups of a groupBy.
type PollScalarWhereWithAggregatesInput struct {
	AND            query.OneOrMany[PollScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR             []PollScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT            query.OneOrMany[PollScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID             query.StringWithAggregatesFilter                    `json:"id,omitzero"`
	Question       query.StringWithAggregatesFilter                    `json:"question,omitzero"`
	Description    query.StringNullableWithAggregatesFilter            `json:"description,omitzero"`
	CategoryID     query.StringWithAggregatesFilter                    `json:"categoryId,omitzero"`
	AllowAnonymous query.BoolWithAggregatesFilter                      `json:"allowAnonymous,omitzero"`
	MultipleChoice query.BoolWithAggregatesFilter                      `json:"multipleChoice,omitzero"`
	IsArchived     query.BoolWithAggregatesFilter                      `json:"isArchived,omitzero"`
	IsDeleted      query.BoolWithAggregatesFilter                      `json:"isDeleted,omitzero"`
	ClosesAt       query.DateTimeNullableWithAggregatesFilter          `json:"closesAt,omitzero"`
	ArchivedAt     query.DateTimeNullableWithAggregatesFilter          `json:"archivedAt,omitzero"`
	DeletedAt      query.DateTimeNullableWithAggregatesFilter          `json:"deletedAt,omitzero"`
	CreatedAt      query.DateTimeWithAggregatesFilter                  `json:"createdAt,omitzero"`
	UpdatedAt      query.DateTimeWithAggregatesFilter                  `json:"updatedAt,omitzero"`
}

// PollScalarFieldEnum names a scalar field of Poll.
type PollScalarFieldEnum string

func (e PollScalarFieldEnum) IsValid() bool {
	return pollModel.hasField(string(e))
}

// =============================================================================
// Poll writes
// =============================================================================

// PollCreateInput creates a Poll and writes its relations through nested
// operations.
type PollCreateInput struct {
	ID             *string                          `json:"id,omitempty" validate:"omitempty,uuid"`
	Question       string                           `json:"question" validate:"required"`
	Description    *string                          `json:"description,omitempty"`
	AllowAnonymous *bool                            `json:"allowAnonymous,omitempty"`
	MultipleChoice *bool                            `json:"multipleChoice,omitempty"`
	IsArchived     *bool                            `json:"isArchived,omitempty"`
	IsDeleted      *bool                            `json:"isDeleted,omitempty"`
	ClosesAt       *time.Time                       `json:"closesAt,omitempty"`
	ArchivedAt     *time.Time                       `json:"archivedAt,omitempty"`
	DeletedAt      *time.Time                       `json:"deletedAt,omitempty"`
	CreatedAt      *time.Time                       `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time                       `json:"updatedAt,omitempty"`
	Category       *CategoryCreateNestedOneInput    `json:"category" validate:"required"`
	Options        *PollOptionCreateNestedManyInput `json:"options,omitempty"`
	Votes          *VoteCreateNestedManyInput       `json:"votes,omitempty"`
	NewsItem       *NewsItemCreateNestedOneInput    `json:"newsItem,omitempty"`
}

// PollUncheckedCreateInput creates a Poll with its foreign keys given as
// plain values.
type PollUncheckedCreateInput struct {
	ID             *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	Question       string     `json:"question" validate:"required"`
	Description    *string    `json:"description,omitempty"`
	CategoryID     string     `json:"categoryId" validate:"required,uuid"`
	AllowAnonymous *bool      `json:"allowAnonymous,omitempty"`
	MultipleChoice *bool      `json:"multipleChoice,omitempty"`
	IsArchived     *bool      `json:"isArchived,omitempty"`
	IsDeleted      *bool      `json:"isDeleted,omitempty"`
	ClosesAt       *time.Time `json:"closesAt,omitempty"`
	ArchivedAt     *time.Time `json:"archivedAt,omitempty"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// PollCreateManyInput is one row of a createMany.
type PollCreateManyInput PollUncheckedCreateInput

// PollCreateNestedInput creates a Poll from the other side of one of its
// relations. Foreign keys filled in by the parent may be left out.
type PollCreateNestedInput struct {
	ID             *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	Question       string     `json:"question" validate:"required"`
	Description    *string    `json:"description,omitempty"`
	CategoryID     *string    `json:"categoryId,omitempty" validate:"omitempty,uuid"`
	AllowAnonymous *bool      `json:"allowAnonymous,omitempty"`
	MultipleChoice *bool      `json:"multipleChoice,omitempty"`
	IsArchived     *bool      `json:"isArchived,omitempty"`
	IsDeleted      *bool      `json:"isDeleted,omitempty"`
	ClosesAt       *time.Time `json:"closesAt,omitempty"`
	ArchivedAt     *time.Time `json:"archivedAt,omitempty"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

type PollUpdateInput struct {
	ID             query.FieldUpdate[string]             `json:"id,omitzero" validate:"omitempty,uuid"`
	Question       query.FieldUpdate[string]             `json:"question,omitzero"`
	Description    query.NullableFieldUpdate[string]     `json:"description,omitzero"`
	AllowAnonymous query.FieldUpdate[bool]               `json:"allowAnonymous,omitzero"`
	MultipleChoice query.FieldUpdate[bool]               `json:"multipleChoice,omitzero"`
	IsArchived     query.FieldUpdate[bool]               `json:"isArchived,omitzero"`
	IsDeleted      query.FieldUpdate[bool]               `json:"isDeleted,omitzero"`
	ClosesAt       query.NullableFieldUpdate[time.Time]  `json:"closesAt,omitzero"`
	ArchivedAt     query.NullableFieldUpdate[time.Time]  `json:"archivedAt,omitzero"`
	DeletedAt      query.NullableFieldUpdate[time.Time]  `json:"deletedAt,omitzero"`
	CreatedAt      query.FieldUpdate[time.Time]          `json:"createdAt,omitzero"`
	UpdatedAt      query.FieldUpdate[time.Time]          `json:"updatedAt,omitzero"`
	Category       *CategoryUpdateOneRequiredNestedInput `json:"category,omitempty"`
	Options        *PollOptionUpdateManyNestedInput      `json:"options,omitempty"`
	Votes          *VoteUpdateManyNestedInput            `json:"votes,omitempty"`
	NewsItem       *NewsItemUpdateOneNestedInput         `json:"newsItem,omitempty"`
}

type PollUncheckedUpdateInput struct {
	ID             query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,uuid"`
	Question       query.FieldUpdate[string]            `json:"question,omitzero"`
	Description    query.NullableFieldUpdate[string]    `json:"description,omitzero"`
	CategoryID     query.FieldUpdate[string]            `json:"categoryId,omitzero" validate:"omitempty,uuid"`
	AllowAnonymous query.FieldUpdate[bool]              `json:"allowAnonymous,omitzero"`
	MultipleChoice query.FieldUpdate[bool]              `json:"multipleChoice,omitzero"`
	IsArchived     query.FieldUpdate[bool]              `json:"isArchived,omitzero"`
	IsDeleted      query.FieldUpdate[bool]              `json:"isDeleted,omitzero"`
	ClosesAt       query.NullableFieldUpdate[time.Time] `json:"closesAt,omitzero"`
	ArchivedAt     query.NullableFieldUpdate[time.Time] `json:"archivedAt,omitzero"`
	DeletedAt      query.NullableFieldUpdate[time.Time] `json:"deletedAt,omitzero"`
	CreatedAt      query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt      query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
}

type PollUpdateManyMutationInput struct {
	ID             query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,uuid"`
	Question       query.FieldUpdate[string]            `json:"question,omitzero"`
	Description    query.NullableFieldUpdate[string]    `json:"description,omitzero"`
	AllowAnonymous query.FieldUpdate[bool]              `json:"allowAnonymous,omitzero"`
	MultipleChoice query.FieldUpdate[bool]              `json:"multipleChoice,omitzero"`
	IsArchived     query.FieldUpdate[bool]              `json:"isArchived,omitzero"`
	IsDeleted      query.FieldUpdate[bool]              `json:"isDeleted,omitzero"`
	ClosesAt       query.NullableFieldUpdate[time.Time] `json:"closesAt,omitzero"`
	ArchivedAt     query.NullableFieldUpdate[time.Time] `json:"archivedAt,omitzero"`
	DeletedAt      query.NullableFieldUpdate[time.Time] `json:"deletedAt,omitzero"`
	CreatedAt      query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt      query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
}

// Nested writes reaching Poll from a related model.
type (
	PollCreateNestedOneInput         = query.ToOneCreate[PollCreateNestedInput, PollWhereUniqueInput]
	PollUpdateOneNestedInput         = query.ToOneUpdate[PollCreateNestedInput, PollUncheckedUpdateInput, PollWhereUniqueInput]
	PollUpdateOneRequiredNestedInput = query.ToOneRequiredUpdate[PollCreateNestedInput, PollUncheckedUpdateInput, PollWhereUniqueInput]
	PollCreateNestedManyInput        = query.ToManyCreate[PollCreateNestedInput, PollWhereUniqueInput]
	PollUpdateManyNestedInput        = query.ToManyUpdate[PollCreateNestedInput, PollUncheckedUpdateInput, PollUpdateManyMutationInput, PollWhereUniqueInput, PollWhereInput]
)

// =============================================================================
// Poll operations
// =============================================================================

type (
	PollFindUniqueArgs query.FindUniqueArgs[PollSelect, PollInclude, PollWhereUniqueInput]
	PollFindFirstArgs  query.FindManyArgs[PollSelect, PollInclude, PollWhereInput, PollOrderByWithRelationInput, PollWhereUniqueInput, PollScalarFieldEnum]
	PollFindManyArgs   query.FindManyArgs[PollSelect, PollInclude, PollWhereInput, PollOrderByWithRelationInput, PollWhereUniqueInput, PollScalarFieldEnum]
	PollCreateArgs     query.CreateArgs[PollSelect, PollInclude, PollCreateInput, PollUncheckedCreateInput]
	PollUpdateArgs     query.UpdateArgs[PollSelect, PollInclude, PollUpdateInput, PollUncheckedUpdateInput, PollWhereUniqueInput]
	PollUpsertArgs     query.UpsertArgs[PollSelect, PollInclude, PollWhereUniqueInput, PollCreateInput, PollUncheckedCreateInput, PollUpdateInput, PollUncheckedUpdateInput]
	PollDeleteArgs     query.DeleteArgs[PollSelect, PollInclude, PollWhereUniqueInput]
	PollCreateManyArgs query.CreateManyArgs[PollCreateManyInput]
	PollUpdateManyArgs query.UpdateManyArgs[PollUpdateManyMutationInput, PollWhereInput]
	PollDeleteManyArgs query.DeleteManyArgs[PollWhereInput]
	PollGroupByArgs    query.GroupByArgs[PollWhereInput, PollOrderByScalarInput, PollScalarFieldEnum, PollScalarWhereWithAggregatesInput]
)

// =============================================================================
// Poll descriptor
// =============================================================================

var pollModel = &Model{
	Name:       "Poll",
	Table:      "polls",
	PrimaryKey: []string{"id"},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "uuid()", Format: FormatUUID},
		{Name: "question", Column: "question", Type: TypeString},
		{Name: "description", Column: "description", Type: TypeString, Nullable: true},
		{Name: "categoryId", Column: "category_id", Type: TypeString, Format: FormatUUID, ForeignKey: true},
		{Name: "allowAnonymous", Column: "allow_anonymous", Type: TypeBoolean, Default: "true"},
		{Name: "multipleChoice", Column: "multiple_choice", Type: TypeBoolean, Default: "false"},
		{Name: "isArchived", Column: "is_archived", Type: TypeBoolean, Default: "false"},
		{Name: "isDeleted", Column: "is_deleted", Type: TypeBoolean, Default: "false"},
		{Name: "closesAt", Column: "closes_at", Type: TypeDateTime, Nullable: true},
		{Name: "archivedAt", Column: "archived_at", Type: TypeDateTime, Nullable: true},
		{Name: "deletedAt", Column: "deleted_at", Type: TypeDateTime, Nullable: true},
		{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: "now()"},
		{Name: "updatedAt", Column: "updated_at", Type: TypeDateTime, UpdatedAt: true},
	},
	Relations: []Relation{
		{Name: "category", Model: "Category", Kind: ToOne, Fields: []string{"categoryId"}, References: []string{"id"}, OnDelete: "RESTRICT"},
		{Name: "options", Model: "PollOption", Kind: ToMany},
		{Name: "votes", Model: "Vote", Kind: ToMany},
		{Name: "newsItem", Model: "NewsItem", Kind: ToOne, Optional: true},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[Poll](),
		ShapePartial:                   ctor[PollPartial](),
		ShapeOptionalDefaults:          ctor[PollOptionalDefaults](),
		ShapeSelect:                    ctor[PollSelect](),
		ShapeInclude:                   ctor[PollInclude](),
		ShapeWhere:                     ctor[PollWhereInput](),
		ShapeWhereUnique:               ctor[PollWhereUniqueInput](),
		ShapeOrderBy:                   ctor[PollOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[PollScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[PollCreateInput](),
		ShapeUncheckedCreateInput:      ctor[PollUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[PollUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[PollUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[PollCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[PollUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[PollFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[PollFindFirstArgs](),
		ShapeFindManyArgs:              ctor[PollFindManyArgs](),
		ShapeCreateArgs:                ctor[PollCreateArgs](),
		ShapeUpdateArgs:                ctor[PollUpdateArgs](),
		ShapeUpsertArgs:                ctor[PollUpsertArgs](),
		ShapeDeleteArgs:                ctor[PollDeleteArgs](),
		ShapeCreateManyArgs:            ctor[PollCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[PollUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[PollDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[PollGroupByArgs](),
	},
}
