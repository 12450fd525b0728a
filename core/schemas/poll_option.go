package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

// =============================================================================
// PollOption
// =============================================================================

// PollOption is one answer of a poll. Options are ordered by position within
// their poll.
type PollOption struct {
	ID        string    `json:"id" validate:"required,uuid"`
	PollID    string    `json:"pollId" validate:"required,uuid"`
	Text      string    `json:"text" validate:"required"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// PollOptionPartial is PollOption with every field optional.
type PollOptionPartial struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	PollID    *string    `json:"pollId,omitempty" validate:"omitempty,uuid"`
	Text      *string    `json:"text,omitempty"`
	Position  *int       `json:"position,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// PollOptionOptionalDefaults is PollOption with the defaulted fields
// optional.
type PollOptionOptionalDefaults struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	PollID    string     `json:"pollId" validate:"required,uuid"`
	Text      string     `json:"text" validate:"required"`
	Position  *int       `json:"position,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// ToModel fills the defaulted fields and returns the record. Timestamps
// default to now.
func (o PollOptionOptionalDefaults) ToModel(now time.Time) (PollOption, error) {
	return PollOption{
		ID:        newUUID(o.ID),
		PollID:    o.PollID,
		Text:      o.Text,
		Position:  validation.ValueOr(o.Position, 0),
		CreatedAt: validation.ValueOr(o.CreatedAt, now),
	}, nil
}

// =============================================================================
// PollOption selection
// =============================================================================

type PollOptionSelect struct {
	ID        bool                                          `json:"id,omitempty"`
	PollID    bool                                          `json:"pollId,omitempty"`
	Text      bool                                          `json:"text,omitempty"`
	Position  bool                                          `json:"position,omitempty"`
	CreatedAt bool                                          `json:"createdAt,omitempty"`
	Poll      query.Relation[PollArgs]                      `json:"poll,omitzero"`
	Votes     query.Relation[VoteFindManyArgs]              `json:"votes,omitzero"`
	Count     query.Relation[PollOptionCountOutputTypeArgs] `json:"_count,omitzero"`
}

type PollOptionInclude struct {
	Poll  query.Relation[PollArgs]                      `json:"poll,omitzero"`
	Votes query.Relation[VoteFindManyArgs]              `json:"votes,omitzero"`
	Count query.Relation[PollOptionCountOutputTypeArgs] `json:"_count,omitzero"`
}

// PollOptionCountOutputTypeSelect picks the to-many relations counted under
// _count.
type PollOptionCountOutputTypeSelect struct {
	Votes bool `json:"votes,omitempty"`
}

type PollOptionCountOutputTypeArgs struct {
	Select *PollOptionCountOutputTypeSelect `json:"select,omitempty"`
}

type PollOptionArgs query.Args[PollOptionSelect, PollOptionInclude]

// =============================================================================
// PollOption filters
// =============================================================================

type PollOptionWhereInput struct {
	AND       query.OneOrMany[PollOptionWhereInput]    `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        []PollOptionWhereInput                   `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       query.OneOrMany[PollOptionWhereInput]    `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        query.StringFilter                       `json:"id,omitzero"`
	PollID    query.StringFilter                       `json:"pollId,omitzero"`
	Text      query.StringFilter                       `json:"text,omitzero"`
	Position  query.IntFilter                          `json:"position,omitzero"`
	CreatedAt query.DateTimeFilter                     `json:"createdAt,omitzero"`
	Poll      query.RelationFilter[PollWhereInput]     `json:"poll,omitzero"`
	Votes     query.ListRelationFilter[VoteWhereInput] `json:"votes,omitzero"`
}

// PollOptionWhereUniqueInput selects at most one PollOption. At least one of
// id, pollId_position must be set.
// The remaining fields filter like PollOptionWhereInput.
type PollOptionWhereUniqueInput struct {
	ID             *string                                      `json:"id,omitempty" validate:"omitempty,uuid"`
	PollIDPosition *PollOptionPollIDPositionCompoundUniqueInput `json:"pollId_position,omitempty"`
	AND            query.OneOrMany[PollOptionWhereInput]        `json:"AND,omitempty" validate:"omitempty,dive"`
	OR             []PollOptionWhereInput                       `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT            query.OneOrMany[PollOptionWhereInput]        `json:"NOT,omitempty" validate:"omitempty,dive"`
	PollID         query.StringFilter                           `json:"pollId,omitzero"`
	Text           query.StringFilter                           `json:"text,omitzero"`
	Position       query.IntFilter                              `json:"position,omitzero"`
	CreatedAt      query.DateTimeFilter                         `json:"createdAt,omitzero"`
	Poll           query.RelationFilter[PollWhereInput]         `json:"poll,omitzero"`
	Votes          query.ListRelationFilter[VoteWhereInput]     `json:"votes,omitzero"`
}

type PollOptionPollIDPositionCompoundUniqueInput struct {
	PollID   string `json:"pollId" validate:"required,uuid"`
	Position *int   `json:"position" validate:"required"`
}

func (w PollOptionWhereUniqueInput) uniqueKeys() []string {
	return pollOptionModel.UniqueKeys()
}

func (w PollOptionWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil || w.PollIDPosition != nil
}

type PollOptionOrderByWithRelationInput struct {
	ID        query.SortOrder                      `json:"id,omitempty" validate:"omitempty,enum"`
	PollID    query.SortOrder                      `json:"pollId,omitempty" validate:"omitempty,enum"`
	Text      query.SortOrder                      `json:"text,omitempty" validate:"omitempty,enum"`
	Position  query.SortOrder                      `json:"position,omitempty" validate:"omitempty,enum"`
	CreatedAt query.SortOrder                      `json:"createdAt,omitempty" validate:"omitempty,enum"`
	Poll      *PollOrderByWithRelationInput        `json:"poll,omitempty"`
	Votes     *query.OrderByRelationAggregateInput `json:"votes,omitempty"`
}

// PollOptionOrderByScalarInput orders grouped rows by their scalar columns.
type PollOptionOrderByScalarInput struct {
	ID        query.SortOrder `json:"id,omitempty" validate:"omitempty,enum"`
	PollID    query.SortOrder `json:"pollId,omitempty" validate:"omitempty,enum"`
	Text      query.SortOrder `json:"text,omitempty" validate:"omitempty,enum"`
	Position  query.SortOrder `json:"position,omitempty" validate:"omitempty,enum"`
	CreatedAt query.SortOrder `json:"createdAt,omitempty" validate:"omitempty,enum"`
}

// PollOptionScalarWhereWithAggregatesInput filters the groups of a groupBy.
type PollOptionScalarWhereWithAggregatesInput struct {
	AND       query.OneOrMany[PollOptionScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        []PollOptionScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       query.OneOrMany[PollOptionScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        query.StringWithAggregatesFilter                          `json:"id,omitzero"`
	PollID    query.StringWithAggregatesFilter                          `json:"pollId,omitzero"`
	Text      query.StringWithAggregatesFilter                          `json:"text,omitzero"`
	Position  query.IntWithAggregatesFilter                             `json:"position,omitzero"`
	CreatedAt query.DateTimeWithAggregatesFilter                        `json:"createdAt,omitzero"`
}

// PollOptionScalarFieldEnum names a scalar field of PollOption.
type PollOptionScalarFieldEnum string

func (e PollOptionScalarFieldEnum) IsValid() bool {
	return pollOptionModel.hasField(string(e))
}

// =============================================================================
// PollOption writes
// =============================================================================

// PollOptionCreateInput creates a PollOption and writes its relations through
// nested operations.
type PollOptionCreateInput struct {
	ID        *string                    `json:"id,omitempty" validate:"omitempty,uuid"`
	Text      string                     `json:"text" validate:"required"`
	Position  *int                       `json:"position,omitempty"`
	CreatedAt *time.Time                 `json:"createdAt,omitempty"`
	Poll      *PollCreateNestedOneInput  `json:"poll" validate:"required"`
	Votes     *VoteCreateNestedManyInput `json:"votes,omitempty"`
}

// PollOptionUncheckedCreateInput creates a PollOption with its foreign keys
// given as plain values.
type PollOptionUncheckedCreateInput struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	PollID    string     `json:"pollId" validate:"required,uuid"`
	Text      string     `json:"text" validate:"required"`
	Position  *int       `json:"position,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// PollOptionCreateManyInput is one row of a createMany.
type PollOptionCreateManyInput PollOptionUncheckedCreateInput

// PollOptionCreateNestedInput creates a PollOption from the other side of one
// of its relations. Foreign keys filled in by the parent may be left out.
type PollOptionCreateNestedInput struct {
	ID        *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	PollID    *string    `json:"pollId,omitempty" validate:"omitempty,uuid"`
	Text      string     `json:"text" validate:"required"`
	Position  *int       `json:"position,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type PollOptionUpdateInput struct {
	ID        query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,uuid"`
	Text      query.FieldUpdate[string]         `json:"text,omitzero"`
	Position  query.IntFieldUpdate              `json:"position,omitzero"`
	CreatedAt query.FieldUpdate[time.Time]      `json:"createdAt,omitzero"`
	Poll      *PollUpdateOneRequiredNestedInput `json:"poll,omitempty"`
	Votes     *VoteUpdateManyNestedInput        `json:"votes,omitempty"`
}

type PollOptionUncheckedUpdateInput struct {
	ID        query.FieldUpdate[string]    `json:"id,omitzero" validate:"omitempty,uuid"`
	PollID    query.FieldUpdate[string]    `json:"pollId,omitzero" validate:"omitempty,uuid"`
	Text      query.FieldUpdate[string]    `json:"text,omitzero"`
	Position  query.IntFieldUpdate         `json:"position,omitzero"`
	CreatedAt query.FieldUpdate[time.Time] `json:"createdAt,omitzero"`
}

type PollOptionUpdateManyMutationInput struct {
	ID        query.FieldUpdate[string]    `json:"id,omitzero" validate:"omitempty,uuid"`
	Text      query.FieldUpdate[string]    `json:"text,omitzero"`
	Position  query.IntFieldUpdate         `json:"position,omitzero"`
	CreatedAt query.FieldUpdate[time.Time] `json:"createdAt,omitzero"`
}

// Nested writes reaching PollOption from a related model.
type (
	PollOptionCreateNestedOneInput         = query.ToOneCreate[PollOptionCreateNestedInput, PollOptionWhereUniqueInput]
	PollOptionUpdateOneRequiredNestedInput = query.ToOneRequiredUpdate[PollOptionCreateNestedInput, PollOptionUncheckedUpdateInput, PollOptionWhereUniqueInput]
	PollOptionCreateNestedManyInput        = query.ToManyCreate[PollOptionCreateNestedInput, PollOptionWhereUniqueInput]
	PollOptionUpdateManyNestedInput        = query.ToManyUpdate[PollOptionCreateNestedInput, PollOptionUncheckedUpdateInput, PollOptionUpdateManyMutationInput, PollOptionWhereUniqueInput, PollOptionWhereInput]
)

// =============================================================================
// PollOption operations
// =============================================================================

type (
	PollOptionFindUniqueArgs query.FindUniqueArgs[PollOptionSelect, PollOptionInclude, PollOptionWhereUniqueInput]
	PollOptionFindFirstArgs  query.FindManyArgs[PollOptionSelect, PollOptionInclude, PollOptionWhereInput, PollOptionOrderByWithRelationInput, PollOptionWhereUniqueInput, PollOptionScalarFieldEnum]
	PollOptionFindManyArgs   query.FindManyArgs[PollOptionSelect, PollOptionInclude, PollOptionWhereInput, PollOptionOrderByWithRelationInput, PollOptionWhereUniqueInput, PollOptionScalarFieldEnum]
	PollOptionCreateArgs     query.CreateArgs[PollOptionSelect, PollOptionInclude, PollOptionCreateInput, PollOptionUncheckedCreateInput]
	PollOptionUpdateArgs     query.UpdateArgs[PollOptionSelect, PollOptionInclude, PollOptionUpdateInput, PollOptionUncheckedUpdateInput, PollOptionWhereUniqueInput]
	PollOptionUpsertArgs     query.UpsertArgs[PollOptionSelect, PollOptionInclude, PollOptionWhereUniqueInput, PollOptionCreateInput, PollOptionUncheckedCreateInput, PollOptionUpdateInput, PollOptionUncheckedUpdateInput]
	PollOptionDeleteArgs     query.DeleteArgs[PollOptionSelect, PollOptionInclude, PollOptionWhereUniqueInput]
	PollOptionCreateManyArgs query.CreateManyArgs[PollOptionCreateManyInput]
	PollOptionUpdateManyArgs query.UpdateManyArgs[PollOptionUpdateManyMutationInput, PollOptionWhereInput]
	PollOptionDeleteManyArgs query.DeleteManyArgs[PollOptionWhereInput]
	PollOptionGroupByArgs    query.GroupByArgs[PollOptionWhereInput, PollOptionOrderByScalarInput, PollOptionScalarFieldEnum, PollOptionScalarWhereWithAggregatesInput]
)

// =============================================================================
// PollOption descriptor
// =============================================================================

var pollOptionModel = &Model{
	Name:       "PollOption",
	Table:      "poll_options",
	PrimaryKey: []string{"id"},
	Uniques:    [][]string{{"pollId", "position"}},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "uuid()", Format: FormatUUID},
		{Name: "pollId", Column: "poll_id", Type: TypeString, Format: FormatUUID, ForeignKey: true},
		{Name: "text", Column: "text", Type: TypeString},
		{Name: "position", Column: "position", Type: TypeInt, Default: "0"},
		{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: "now()"},
	},
	Relations: []Relation{
		{Name: "poll", Model: "Poll", Kind: ToOne, Fields: []string{"pollId"}, References: []string{"id"}, OnDelete: "CASCADE"},
		{Name: "votes", Model: "Vote", Kind: ToMany},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[PollOption](),
		ShapePartial:                   ctor[PollOptionPartial](),
		ShapeOptionalDefaults:          ctor[PollOptionOptionalDefaults](),
		ShapeSelect:                    ctor[PollOptionSelect](),
		ShapeInclude:                   ctor[PollOptionInclude](),
		ShapeWhere:                     ctor[PollOptionWhereInput](),
		ShapeWhereUnique:               ctor[PollOptionWhereUniqueInput](),
		ShapeOrderBy:                   ctor[PollOptionOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[PollOptionScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[PollOptionCreateInput](),
		ShapeUncheckedCreateInput:      ctor[PollOptionUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[PollOptionUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[PollOptionUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[PollOptionCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[PollOptionUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[PollOptionFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[PollOptionFindFirstArgs](),
		ShapeFindManyArgs:              ctor[PollOptionFindManyArgs](),
		ShapeCreateArgs:                ctor[PollOptionCreateArgs](),
		ShapeUpdateArgs:                ctor[PollOptionUpdateArgs](),
		ShapeUpsertArgs:                ctor[PollOptionUpsertArgs](),
		ShapeDeleteArgs:                ctor[PollOptionDeleteArgs](),
		ShapeCreateManyArgs:            ctor[PollOptionCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[PollOptionUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[PollOptionDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[PollOptionGroupByArgs](),
	},
}
