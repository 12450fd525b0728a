package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

// =============================================================================
// Vote
// =============================================================================

// Vote is one ballot for a poll option. Authenticated voters carry a user id,
// anonymous voters a voter token.
type Vote struct {
	ID         string    `json:"id" validate:"required,uuid"`
	PollID     string    `json:"pollId" validate:"required,uuid"`
	OptionID   string    `json:"optionId" validate:"required,uuid"`
	UserID     *string   `json:"userId" validate:"omitempty,cuid"`
	VoterToken *string   `json:"voterToken"`
	CreatedAt  time.Time `json:"createdAt" validate:"required"`
}

// VotePartial is Vote with every field optional.
type VotePartial struct {
	ID         *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	PollID     *string    `json:"pollId,omitempty" validate:"omitempty,uuid"`
	OptionID   *string    `json:"optionId,omitempty" validate:"omitempty,uuid"`
	UserID     *string    `json:"userId,omitempty" validate:"omitempty,cuid"`
	VoterToken *string    `json:"voterToken,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

// VoteOptionalDefaults is Vote with the defaulted fields optional.
type VoteOptionalDefaults struct {
	ID         *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	PollID     string     `json:"pollId" validate:"required,uuid"`
	OptionID   string     `json:"optionId" validate:"required,uuid"`
	UserID     *string    `json:"userId" validate:"omitempty,cuid"`
	VoterToken *string    `json:"voterToken"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

// ToModel fills the defaulted fields and returns the record. Timestamps
// default to now.
func (o VoteOptionalDefaults) ToModel(now time.Time) (Vote, error) {
	return Vote{
		ID:         newUUID(o.ID),
		PollID:     o.PollID,
		OptionID:   o.OptionID,
		UserID:     o.UserID,
		VoterToken: o.VoterToken,
		CreatedAt:  validation.ValueOr(o.CreatedAt, now),
	}, nil
}

// =============================================================================
// Vote selection
// =============================================================================

type VoteSelect struct {
	ID         bool                           `json:"id,omitempty"`
	PollID     bool                           `json:"pollId,omitempty"`
	OptionID   bool                           `json:"optionId,omitempty"`
	UserID     bool                           `json:"userId,omitempty"`
	VoterToken bool                           `json:"voterToken,omitempty"`
	CreatedAt  bool                           `json:"createdAt,omitempty"`
	Poll       query.Relation[PollArgs]       `json:"poll,omitzero"`
	Option     query.Relation[PollOptionArgs] `json:"option,omitzero"`
	User       query.Relation[UserArgs]       `json:"user,omitzero"`
}

type VoteInclude struct {
	Poll   query.Relation[PollArgs]       `json:"poll,omitzero"`
	Option query.Relation[PollOptionArgs] `json:"option,omitzero"`
	User   query.Relation[UserArgs]       `json:"user,omitzero"`
}

type VoteArgs query.Args[VoteSelect, VoteInclude]

// =============================================================================
// Vote filters
// =============================================================================

type VoteWhereInput struct {
	AND        query.OneOrMany[VoteWhereInput]              `json:"AND,omitempty" validate:"omitempty,dive"`
	OR         []VoteWhereInput                             `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT        query.OneOrMany[VoteWhereInput]              `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID         query.StringFilter                           `json:"id,omitzero"`
	PollID     query.StringFilter                           `json:"pollId,omitzero"`
	OptionID   query.StringFilter                           `json:"optionId,omitzero"`
	UserID     query.StringNullableFilter                   `json:"userId,omitzero"`
	VoterToken query.StringNullableFilter                   `json:"voterToken,omitzero"`
	CreatedAt  query.DateTimeFilter                         `json:"createdAt,omitzero"`
	Poll       query.RelationFilter[PollWhereInput]         `json:"poll,omitzero"`
	Option     query.RelationFilter[PollOptionWhereInput]   `json:"option,omitzero"`
	User       query.NullableRelationFilter[UserWhereInput] `json:"user,omitzero"`
}

// VoteWhereUniqueInput selects at most one Vote. At least one of id,
// optionId_userId, optionId_voterToken must be set.
// The remaining fields filter like VoteWhereInput.
type VoteWhereUniqueInput struct {
	ID                 *string                                      `json:"id,omitempty" validate:"omitempty,uuid"`
	OptionIDUserID     *VoteOptionIDUserIDCompoundUniqueInput       `json:"optionId_userId,omitempty"`
	OptionIDVoterToken *VoteOptionIDVoterTokenCompoundUniqueInput   `json:"optionId_voterToken,omitempty"`
	AND                query.OneOrMany[VoteWhereInput]              `json:"AND,omitempty" validate:"omitempty,dive"`
	OR                 []VoteWhereInput                             `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT                query.OneOrMany[VoteWhereInput]              `json:"NOT,omitempty" validate:"omitempty,dive"`
	PollID             query.StringFilter                           `json:"pollId,omitzero"`
	OptionID           query.StringFilter                           `json:"optionId,omitzero"`
	UserID             query.StringNullableFilter                   `json:"userId,omitzero"`
	VoterToken         query.StringNullableFilter                   `json:"voterToken,omitzero"`
	CreatedAt          query.DateTimeFilter                         `json:"createdAt,omitzero"`
	Poll               query.RelationFilter[PollWhereInput]         `json:"poll,omitzero"`
	Option             query.RelationFilter[PollOptionWhereInput]   `json:"option,omitzero"`
	User               query.NullableRelationFilter[UserWhereInput] `json:"user,omitzero"`
}

type VoteOptionIDUserIDCompoundUniqueInput struct {
	OptionID string `json:"optionId" validate:"required,uuid"`
	UserID   string `json:"userId" validate:"required,cuid"`
}

type VoteOptionIDVoterTokenCompoundUniqueInput struct {
	OptionID   string `json:"optionId" validate:"required,uuid"`
	VoterToken string `json:"voterToken" validate:"required"`
}

func (w VoteWhereUniqueInput) uniqueKeys() []string {
	return voteModel.UniqueKeys()
}

func (w VoteWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil ||
		w.OptionIDUserID != nil ||
		w.OptionIDVoterToken != nil
}

type VoteOrderByWithRelationInput struct {
	ID         query.SortOrder                     `json:"id,omitempty" validate:"omitempty,enum"`
	PollID     query.SortOrder                     `json:"pollId,omitempty" validate:"omitempty,enum"`
	OptionID   query.SortOrder                     `json:"optionId,omitempty" validate:"omitempty,enum"`
	UserID     *query.SortOrderInput               `json:"userId,omitempty"`
	VoterToken *query.SortOrderInput               `json:"voterToken,omitempty"`
	CreatedAt  query.SortOrder                     `json:"createdAt,omitempty" validate:"omitempty,enum"`
	Poll       *PollOrderByWithRelationInput       `json:"poll,omitempty"`
	Option     *PollOptionOrderByWithRelationInput `json:"option,omitempty"`
	User       *UserOrderByWithRelationInput       `json:"user,omitempty"`
}

// VoteOrderByScalarInput orders grouped rows by their scalar columns.
type VoteOrderByScalarInput struct {
	ID         query.SortOrder       `json:"id,omitempty" validate:"omitempty,enum"`
	PollID     query.SortOrder       `json:"pollId,omitempty" validate:"omitempty,enum"`
	OptionID   query.SortOrder       `json:"optionId,omitempty" validate:"omitempty,enum"`
	UserID     *query.SortOrderInput `json:"userId,omitempty"`
	VoterToken *query.SortOrderInput `json:"voterToken,omitempty"`
	CreatedAt  query.SortOrder       `json:"createdAt,omitempty" validate:"omitempty,enum"`
}

// VoteScalarWhereWithAggregatesInput filters the groups of a groupBy.
type VoteScalarWhereWithAggregatesInput struct {
	AND        query.OneOrMany[VoteScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR         []VoteScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT        query.OneOrMany[VoteScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID         query.StringWithAggregatesFilter                    `json:"id,omitzero"`
	PollID     query.StringWithAggregatesFilter                    `json:"pollId,omitzero"`
	OptionID   query.StringWithAggregatesFilter                    `json:"optionId,omitzero"`
	UserID     query.StringNullableWithAggregatesFilter            `json:"userId,omitzero"`
	VoterToken query.StringNullableWithAggregatesFilter            `json:"voterToken,omitzero"`
	CreatedAt  query.DateTimeWithAggregatesFilter                  `json:"createdAt,omitzero"`
}

// VoteScalarFieldEnum names a scalar field of Vote.
type VoteScalarFieldEnum string

func (e VoteScalarFieldEnum) IsValid() bool {
	return voteModel.hasField(string(e))
}

// =============================================================================
// Vote writes
// =============================================================================

// VoteCreateInput creates a Vote and writes its relations through nested
// operations.
type VoteCreateInput struct {
	ID         *string                         `json:"id,omitempty" validate:"omitempty,uuid"`
	VoterToken *string                         `json:"voterToken,omitempty"`
	CreatedAt  *time.Time                      `json:"createdAt,omitempty"`
	Poll       *PollCreateNestedOneInput       `json:"poll" validate:"required"`
	Option     *PollOptionCreateNestedOneInput `json:"option" validate:"required"`
	User       *UserCreateNestedOneInput       `json:"user,omitempty"`
}

// VoteUncheckedCreateInput creates a Vote with its foreign keys given as
// plain values.
type VoteUncheckedCreateInput struct {
	ID         *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	PollID     string     `json:"pollId" validate:"required,uuid"`
	OptionID   string     `json:"optionId" validate:"required,uuid"`
	UserID     *string    `json:"userId,omitempty" validate:"omitempty,cuid"`
	VoterToken *string    `json:"voterToken,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

// VoteCreateManyInput is one row of a createMany.
type VoteCreateManyInput VoteUncheckedCreateInput

// VoteCreateNestedInput creates a Vote from the other side of one of its
// relations. Foreign keys filled in by the parent may be left out.
type VoteCreateNestedInput struct {
	ID         *string    `json:"id,omitempty" validate:"omitempty,uuid"`
	PollID     *string    `json:"pollId,omitempty" validate:"omitempty,uuid"`
	OptionID   *string    `json:"optionId,omitempty" validate:"omitempty,uuid"`
	UserID     *string    `json:"userId,omitempty" validate:"omitempty,cuid"`
	VoterToken *string    `json:"voterToken,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

type VoteUpdateInput struct {
	ID         query.FieldUpdate[string]               `json:"id,omitzero" validate:"omitempty,uuid"`
	VoterToken query.NullableFieldUpdate[string]       `json:"voterToken,omitzero"`
	CreatedAt  query.FieldUpdate[time.Time]            `json:"createdAt,omitzero"`
	Poll       *PollUpdateOneRequiredNestedInput       `json:"poll,omitempty"`
	Option     *PollOptionUpdateOneRequiredNestedInput `json:"option,omitempty"`
	User       *UserUpdateOneNestedInput               `json:"user,omitempty"`
}

type VoteUncheckedUpdateInput struct {
	ID         query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,uuid"`
	PollID     query.FieldUpdate[string]         `json:"pollId,omitzero" validate:"omitempty,uuid"`
	OptionID   query.FieldUpdate[string]         `json:"optionId,omitzero" validate:"omitempty,uuid"`
	UserID     query.NullableFieldUpdate[string] `json:"userId,omitzero" validate:"omitempty,cuid"`
	VoterToken query.NullableFieldUpdate[string] `json:"voterToken,omitzero"`
	CreatedAt  query.FieldUpdate[time.Time]      `json:"createdAt,omitzero"`
}

type VoteUpdateManyMutationInput struct {
	ID         query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,uuid"`
	VoterToken query.NullableFieldUpdate[string] `json:"voterToken,omitzero"`
	CreatedAt  query.FieldUpdate[time.Time]      `json:"createdAt,omitzero"`
}

// Nested writes reaching Vote from a related model.
type (
	VoteCreateNestedManyInput = query.ToManyCreate[VoteCreateNestedInput, VoteWhereUniqueInput]
	VoteUpdateManyNestedInput = query.ToManyUpdate[VoteCreateNestedInput, VoteUncheckedUpdateInput, VoteUpdateManyMutationInput, VoteWhereUniqueInput, VoteWhereInput]
)

// =============================================================================
// Vote operations
// =============================================================================

type (
	VoteFindUniqueArgs query.FindUniqueArgs[VoteSelect, VoteInclude, VoteWhereUniqueInput]
	VoteFindFirstArgs  query.FindManyArgs[VoteSelect, VoteInclude, VoteWhereInput, VoteOrderByWithRelationInput, VoteWhereUniqueInput, VoteScalarFieldEnum]
	VoteFindManyArgs   query.FindManyArgs[VoteSelect, VoteInclude, VoteWhereInput, VoteOrderByWithRelationInput, VoteWhereUniqueInput, VoteScalarFieldEnum]
	VoteCreateArgs     query.CreateArgs[VoteSelect, VoteInclude, VoteCreateInput, VoteUncheckedCreateInput]
	VoteUpdateArgs     query.UpdateArgs[VoteSelect, VoteInclude, VoteUpdateInput, VoteUncheckedUpdateInput, VoteWhereUniqueInput]
	VoteUpsertArgs     query.UpsertArgs[VoteSelect, VoteInclude, VoteWhereUniqueInput, VoteCreateInput, VoteUncheckedCreateInput, VoteUpdateInput, VoteUncheckedUpdateInput]
	VoteDeleteArgs     query.DeleteArgs[VoteSelect, VoteInclude, VoteWhereUniqueInput]
	VoteCreateManyArgs query.CreateManyArgs[VoteCreateManyInput]
	VoteUpdateManyArgs query.UpdateManyArgs[VoteUpdateManyMutationInput, VoteWhereInput]
	VoteDeleteManyArgs query.DeleteManyArgs[VoteWhereInput]
	VoteGroupByArgs    query.GroupByArgs[VoteWhereInput, VoteOrderByScalarInput, VoteScalarFieldEnum, VoteScalarWhereWithAggregatesInput]
)

// =============================================================================
// Vote descriptor
// =============================================================================

var voteModel = &Model{
	Name:       "Vote",
	Table:      "votes",
	PrimaryKey: []string{"id"},
	Uniques:    [][]string{{"optionId", "userId"}, {"optionId", "voterToken"}},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "uuid()", Format: FormatUUID},
		{Name: "pollId", Column: "poll_id", Type: TypeString, Format: FormatUUID, ForeignKey: true},
		{Name: "optionId", Column: "option_id", Type: TypeString, Format: FormatUUID, ForeignKey: true},
		{Name: "userId", Column: "user_id", Type: TypeString, Nullable: true, Format: FormatCUID, ForeignKey: true},
		{Name: "voterToken", Column: "voter_token", Type: TypeString, Nullable: true},
		{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: "now()"},
	},
	Relations: []Relation{
		{Name: "poll", Model: "Poll", Kind: ToOne, Fields: []string{"pollId"}, References: []string{"id"}, OnDelete: "CASCADE"},
		{Name: "option", Model: "PollOption", Kind: ToOne, Fields: []string{"optionId"}, References: []string{"id"}, OnDelete: "CASCADE"},
		{Name: "user", Model: "User", Kind: ToOne, Optional: true, Fields: []string{"userId"}, References: []string{"id"}, OnDelete: "SET NULL"},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[Vote](),
		ShapePartial:                   ctor[VotePartial](),
		ShapeOptionalDefaults:          ctor[VoteOptionalDefaults](),
		ShapeSelect:                    ctor[VoteSelect](),
		ShapeInclude:                   ctor[VoteInclude](),
		ShapeWhere:                     ctor[VoteWhereInput](),
		ShapeWhereUnique:               ctor[VoteWhereUniqueInput](),
		ShapeOrderBy:                   ctor[VoteOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[VoteScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[VoteCreateInput](),
		ShapeUncheckedCreateInput:      ctor[VoteUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[VoteUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[VoteUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[VoteCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[VoteUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[VoteFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[VoteFindFirstArgs](),
		ShapeFindManyArgs:              ctor[VoteFindManyArgs](),
		ShapeCreateArgs:                ctor[VoteCreateArgs](),
		ShapeUpdateArgs:                ctor[VoteUpdateArgs](),
		ShapeUpsertArgs:                ctor[VoteUpsertArgs](),
		ShapeDeleteArgs:                ctor[VoteDeleteArgs](),
		ShapeCreateManyArgs:            ctor[VoteCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[VoteUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[VoteDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[VoteGroupByArgs](),
	},
}
