package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

// =============================================================================
// Category
// =============================================================================

// Category groups polls by topic.
type Category struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Name        string    `json:"name" validate:"required"`
	Slug        string    `json:"slug" validate:"required,slug"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt" validate:"required"`
	UpdatedAt   time.Time `json:"updatedAt" validate:"required"`
}

// CategoryPartial is Category with every field optional.
type CategoryPartial struct {
	ID          *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	Name        *string    `json:"name,omitempty"`
	Slug        *string    `json:"slug,omitempty" validate:"omitempty,slug"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// CategoryOptionalDefaults is Category with the defaulted fields optional.
type CategoryOptionalDefaults struct {
	ID          *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	Name        string     `json:"name" validate:"required"`
	Slug        string     `json:"slug" validate:"required,slug"`
	Description *string    `json:"description"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ToModel fills the defaulted fields and returns the record. Timestamps
// default to now.
func (o CategoryOptionalDefaults) ToModel(now time.Time) (Category, error) {
	return Category{
		ID:          newUUID(o.ID),
		Name:        o.Name,
		Slug:        o.Slug,
		Description: o.Description,
		CreatedAt:   validation.ValueOr(o.CreatedAt, now),
		UpdatedAt:   validation.ValueOr(o.UpdatedAt, now),
	}, nil
}

// =============================================================================
// Category selection
// =============================================================================

type CategorySelect struct {
	ID          bool                                        `json:"id,omitempty"`
	Name        bool                                        `json:"name,omitempty"`
	Slug        bool                                        `json:"slug,omitempty"`
	Description bool                                        `json:"description,omitempty"`
	CreatedAt   bool                                        `json:"createdAt,omitempty"`
	UpdatedAt   bool                                        `json:"updatedAt,omitempty"`
	Polls       query.Relation[PollFindManyArgs]            `json:"polls,omitzero"`
	Count       query.Relation[CategoryCountOutputTypeArgs] `json:"_count,omitzero"`
}

type CategoryInclude struct {
	Polls query.Relation[PollFindManyArgs]            `json:"polls,omitzero"`
	Count query.Relation[CategoryCountOutputTypeArgs] `json:"_count,omitzero"`
}

// CategoryCountOutputTypeSelect picks the to-many relations counted under
// _count.
type CategoryCountOutputTypeSelect struct {
	Polls bool `json:"polls,omitempty"`
}

type CategoryCountOutputTypeArgs struct {
	Select *CategoryCountOutputTypeSelect `json:"select,omitempty"`
}

type CategoryArgs query.Args[CategorySelect, CategoryInclude]

// =============================================================================
// Category filters
// =============================================================================

type CategoryWhereInput struct {
	AND         query.OneOrMany[CategoryWhereInput]      `json:"AND,omitempty" validate:"omitempty,dive"`
	OR          []CategoryWhereInput                     `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT         query.OneOrMany[CategoryWhereInput]      `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID          query.StringFilter                       `json:"id,omitzero"`
	Name        query.StringFilter                       `json:"name,omitzero"`
	Slug        query.StringFilter                       `json:"slug,omitzero"`
	Description query.StringNullableFilter               `json:"description,omitzero"`
	CreatedAt   query.DateTimeFilter                     `json:"createdAt,omitzero"`
	UpdatedAt   query.DateTimeFilter                     `json:"updatedAt,omitzero"`
	Polls       query.ListRelationFilter[PollWhereInput] `json:"polls,omitzero"`
}

// CategoryWhereUniqueInput selects at most one Category. At least one of id,
// name, slug must be set.
// The remaining fields filter like CategoryWhereInput.
type CategoryWhereUniqueInput struct {
	ID          *string                                  `json:"id,omitempty" validate:"omitempty,uuid"`
	Name        *string                                  `json:"name,omitempty"`
	Slug        *string                                  `json:"slug,omitempty" validate:"omitempty,slug"`
	AND         query.OneOrMany[CategoryWhereInput]      `json:"AND,omitempty" validate:"omitempty,dive"`
	OR          []CategoryWhereInput                     `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT         query.OneOrMany[CategoryWhereInput]      `json:"NOT,omitempty" validate:"omitempty,dive"`
	Description query.StringNullableFilter               `json:"description,omitzero"`
	CreatedAt   query.DateTimeFilter                     `json:"createdAt,omitzero"`
	UpdatedAt   query.DateTimeFilter                     `json:"updatedAt,omitzero"`
	Polls       query.ListRelationFilter[PollWhereInput] `json:"polls,omitzero"`
}

func (w CategoryWhereUniqueInput) uniqueKeys() []string {
	return categoryModel.UniqueKeys()
}

func (w CategoryWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil || w.Name != nil || w.Slug != nil
}

type CategoryOrderByWithRelationInput struct {
	ID          query.SortOrder                      `json:"id,omitempty" validate:"omitempty,enum"`
	Name        query.SortOrder                      `json:"name,omitempty" validate:"omitempty,enum"`
	Slug        query.SortOrder                      `json:"slug,omitempty" validate:"omitempty,enum"`
	Description *query.SortOrderInput                `json:"description,omitempty"`
	CreatedAt   query.SortOrder                      `json:"createdAt,omitempty" validate:"omitempty,enum"`
	UpdatedAt   query.SortOrder                      `json:"updatedAt,omitempty" validate:"omitempty,enum"`
	Polls       *query.OrderByRelationAggregateInput `json:"polls,omitempty"`
}

// CategoryOrderByScalarInput orders grouped rows by their scalar columns.
type CategoryOrderByScalarInput struct {
	ID          query.SortOrder       `json:"id,omitempty" validate:"omitempty,enum"`
	Name        query.SortOrder       `json:"name,omitempty" validate:"omitempty,enum"`
	Slug        query.SortOrder       `json:"slug,omitempty" validate:"omitempty,enum"`
	Description *query.SortOrderInput `json:"description,omitempty"`
	CreatedAt   query.SortOrder       `json:"createdAt,omitempty" validate:"omitempty,enum"`
	UpdatedAt   query.SortOrder       `json:"updatedAt,omitempty" validate:"omitempty,enum"`
}

// CategoryScalarWhereWithAggregatesInput filters the groups of a groupBy.
type CategoryScalarWhereWithAggregatesInput struct {
	AND         query.OneOrMany[CategoryScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR          []CategoryScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT         query.OneOrMany[CategoryScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID          query.StringWithAggregatesFilter                        `json:"id,omitzero"`
	Name        query.StringWithAggregatesFilter                        `json:"name,omitzero"`
	Slug        query.StringWithAggregatesFilter                        `json:"slug,omitzero"`
	Description query.StringNullableWithAggregatesFilter                `json:"description,omitzero"`
	CreatedAt   query.DateTimeWithAggregatesFilter                      `json:"createdAt,omitzero"`
	UpdatedAt   query.DateTimeWithAggregatesFilter                      `json:"updatedAt,omitzero"`
}

// CategoryScalarFieldEnum names a scalar field of Category.
type CategoryScalarFieldEnum string

func (e CategoryScalarFieldEnum) IsValid() bool {
	return categoryModel.hasField(string(e))
}

// =============================================================================
// Category writes
// =============================================================================

// CategoryCreateInput creates a Category and writes its relations through
// nested operations.
type CategoryCreateInput struct {
	ID          *string                    `json:"id,omitempty" validate:"omitempty,uuid"`
	Name        string                     `json:"name" validate:"required"`
	Slug        string                     `json:"slug" validate:"required,slug"`
	Description *string                    `json:"description,omitempty"`
	CreatedAt   *time.Time                 `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time                 `json:"updatedAt,omitempty"`
	Polls       *PollCreateNestedManyInput `json:"polls,omitempty"`
}

// CategoryUncheckedCreateInput creates a Category with its foreign keys given
// as plain values.
type CategoryUncheckedCreateInput struct {
	ID          *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	Name        string     `json:"name" validate:"required"`
	Slug        string     `json:"slug" validate:"required,slug"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// CategoryCreateManyInput is one row of a createMany.
type CategoryCreateManyInput CategoryUncheckedCreateInput

// CategoryCreateNestedInput creates a Category from the other side of one of
// its relations. Foreign keys filled in by the parent may be left out.
type CategoryCreateNestedInput struct {
	ID          *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	Name        string     `json:"name" validate:"required"`
	Slug        string     `json:"slug" validate:"required,slug"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type CategoryUpdateInput struct {
	ID          query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,uuid"`
	Name        query.FieldUpdate[string]         `json:"name,omitzero"`
	Slug        query.FieldUpdate[string]         `json:"slug,omitzero" validate:"omitempty,slug"`
	Description query.NullableFieldUpdate[string] `json:"description,omitzero"`
	CreatedAt   query.FieldUpdate[time.Time]      `json:"createdAt,omitzero"`
	UpdatedAt   query.FieldUpdate[time.Time]      `json:"updatedAt,omitzero"`
	Polls       *PollUpdateManyNestedInput        `json:"polls,omitempty"`
}

type CategoryUncheckedUpdateInput struct {
	ID          query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,uuid"`
	Name        query.FieldUpdate[string]         `json:"name,omitzero"`
	Slug        query.FieldUpdate[string]         `json:"slug,omitzero" validate:"omitempty,slug"`
	Description query.NullableFieldUpdate[string] `json:"description,omitzero"`
	CreatedAt   query.FieldUpdate[time.Time]      `json:"createdAt,omitzero"`
	UpdatedAt   query.FieldUpdate[time.Time]      `json:"updatedAt,omitzero"`
}

type CategoryUpdateManyMutationInput struct {
	ID          query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,uuid"`
	Name        query.FieldUpdate[string]         `json:"name,omitzero"`
	Slug        query.FieldUpdate[string]         `json:"slug,omitzero" validate:"omitempty,slug"`
	Description query.NullableFieldUpdate[string] `json:"description,omitzero"`
	CreatedAt   query.FieldUpdate[time.Time]      `json:"createdAt,omitzero"`
	UpdatedAt   query.FieldUpdate[time.Time]      `json:"updatedAt,omitzero"`
}

// Nested writes reaching Category from a related model.
type (
	CategoryCreateNestedOneInput         = query.ToOneCreate[CategoryCreateNestedInput, CategoryWhereUniqueInput]
	CategoryUpdateOneRequiredNestedInput = query.ToOneRequiredUpdate[CategoryCreateNestedInput, CategoryUncheckedUpdateInput, CategoryWhereUniqueInput]
)

// =============================================================================
// Category operations
// =============================================================================

type (
	CategoryFindUniqueArgs query.FindUniqueArgs[CategorySelect, CategoryInclude, CategoryWhereUniqueInput]
	CategoryFindFirstArgs  query.FindManyArgs[CategorySelect, CategoryInclude, CategoryWhereInput, CategoryOrderByWithRelationInput, CategoryWhereUniqueInput, CategoryScalarFieldEnum]
	CategoryFindManyArgs   query.FindManyArgs[CategorySelect, CategoryInclude, CategoryWhereInput, CategoryOrderByWithRelationInput, CategoryWhereUniqueInput, CategoryScalarFieldEnum]
	CategoryCreateArgs     query.CreateArgs[CategorySelect, CategoryInclude, CategoryCreateInput, CategoryUncheckedCreateInput]
	CategoryUpdateArgs     query.UpdateArgs[CategorySelect, CategoryInclude, CategoryUpdateInput, CategoryUncheckedUpdateInput, CategoryWhereUniqueInput]
	CategoryUpsertArgs     query.UpsertArgs[CategorySelect, CategoryInclude, CategoryWhereUniqueInput, CategoryCreateInput, CategoryUncheckedCreateInput, CategoryUpdateInput, CategoryUncheckedUpdateInput]
	CategoryDeleteArgs     query.DeleteArgs[CategorySelect, CategoryInclude, CategoryWhereUniqueInput]
	CategoryCreateManyArgs query.CreateManyArgs[CategoryCreateManyInput]
	CategoryUpdateManyArgs query.UpdateManyArgs[CategoryUpdateManyMutationInput, CategoryWhereInput]
	CategoryDeleteManyArgs query.DeleteManyArgs[CategoryWhereInput]
	CategoryGroupByArgs    query.GroupByArgs[CategoryWhereInput, CategoryOrderByScalarInput, CategoryScalarFieldEnum, CategoryScalarWhereWithAggregatesInput]
)

// =============================================================================
// Category descriptor
// =============================================================================

var categoryModel = &Model{
	Name:       "Category",
	Table:      "categories",
	PrimaryKey: []string{"id"},
	Uniques:    [][]string{{"name"}, {"slug"}},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "uuid()", Format: FormatUUID},
		{Name: "name", Column: "name", Type: TypeString, Unique: true},
		{Name: "slug", Column: "slug", Type: TypeString, Unique: true, Format: FormatSlug},
		{Name: "description", Column: "description", Type: TypeString, Nullable: true},
		{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: "now()"},
		{Name: "updatedAt", Column: "updated_at", Type: TypeDateTime, UpdatedAt: true},
	},
	Relations: []Relation{
		{Name: "polls", Model: "Poll", Kind: ToMany},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[Category](),
		ShapePartial:                   ctor[CategoryPartial](),
		ShapeOptionalDefaults:          ctor[CategoryOptionalDefaults](),
		ShapeSelect:                    ctor[CategorySelect](),
		ShapeInclude:                   ctor[CategoryInclude](),
		ShapeWhere:                     ctor[CategoryWhereInput](),
		ShapeWhereUnique:               ctor[CategoryWhereUniqueInput](),
		ShapeOrderBy:                   ctor[CategoryOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[CategoryScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[CategoryCreateInput](),
		ShapeUncheckedCreateInput:      ctor[CategoryUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[CategoryUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[CategoryUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[CategoryCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[CategoryUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[CategoryFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[CategoryFindFirstArgs](),
		ShapeFindManyArgs:              ctor[CategoryFindManyArgs](),
		ShapeCreateArgs:                ctor[CategoryCreateArgs](),
		ShapeUpdateArgs:                ctor[CategoryUpdateArgs](),
		ShapeUpsertArgs:                ctor[CategoryUpsertArgs](),
		ShapeDeleteArgs:                ctor[CategoryDeleteArgs](),
		ShapeCreateManyArgs:            ctor[CategoryCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[CategoryUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[CategoryDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[CategoryGroupByArgs](),
	},
}
