package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
)

// =============================================================================
// VerificationToken
// =============================================================================

// VerificationToken is a one-time token that proves control of an identifier
// such as an email address.
type VerificationToken struct {
	Identifier string    `json:"identifier" validate:"required"`
	Token      string    `json:"token" validate:"required"`
	Expires    time.Time `json:"expires" validate:"required"`
}

// VerificationTokenPartial is VerificationToken with every field optional.
type VerificationTokenPartial struct {
	Identifier *string    `json:"identifier,omitempty"`
	Token      *string    `json:"token,omitempty"`
	Expires    *time.Time `json:"expires,omitempty"`
}

// VerificationTokenOptionalDefaults is VerificationToken with the defaulted
// fields optional.
type VerificationTokenOptionalDefaults struct {
	Identifier string    `json:"identifier" validate:"required"`
	Token      string    `json:"token" validate:"required"`
	Expires    time.Time `json:"expires" validate:"required"`
}

// ToModel fills the defaulted fields and returns the record.
func (o VerificationTokenOptionalDefaults) ToModel(now time.Time) (VerificationToken, error) {
	return VerificationToken{
		Identifier: o.Identifier,
		Token:      o.Token,
		Expires:    o.Expires,
	}, nil
}

// =============================================================================
// VerificationToken selection
// =============================================================================

type VerificationTokenSelect struct {
	Identifier bool `json:"identifier,omitempty"`
	Token      bool `json:"token,omitempty"`
	Expires    bool `json:"expires,omitempty"`
}

type VerificationTokenArgs query.Args[VerificationTokenSelect, query.NoInclude]

// =============================================================================
// VerificationToken filters
// =============================================================================

type VerificationTokenWhereInput struct {
	AND        query.OneOrMany[VerificationTokenWhereInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR         []VerificationTokenWhereInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT        query.OneOrMany[VerificationTokenWhereInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	Identifier query.StringFilter                           `json:"identifier,omitzero"`
	Token      query.StringFilter                           `json:"token,omitzero"`
	Expires    query.DateTimeFilter                         `json:"expires,omitzero"`
}

// VerificationTokenWhereUniqueInput selects at most one VerificationToken. At
// least one of identifier_token, token must be set.
// The remaining fields filter like VerificationTokenWhereInput.
type VerificationTokenWhereUniqueInput struct {
	IdentifierToken *VerificationTokenIdentifierTokenCompoundUniqueInput `json:"identifier_token,omitempty"`
	Token           *string                                              `json:"token,omitempty"`
	AND             query.OneOrMany[VerificationTokenWhereInput]         `json:"AND,omitempty" validate:"omitempty,dive"`
	OR              []VerificationTokenWhereInput                        `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT             query.OneOrMany[VerificationTokenWhereInput]         `json:"NOT,omitempty" validate:"omitempty,dive"`
	Identifier      query.StringFilter                                   `json:"identifier,omitzero"`
	Expires         query.DateTimeFilter                                 `json:"expires,omitzero"`
}

type VerificationTokenIdentifierTokenCompoundUniqueInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Token      string `json:"token" validate:"required"`
}

func (w VerificationTokenWhereUniqueInput) uniqueKeys() []string {
	return verificationTokenModel.UniqueKeys()
}

func (w VerificationTokenWhereUniqueInput) hasUniqueKey() bool {
	return w.IdentifierToken != nil || w.Token != nil
}

type VerificationTokenOrderByWithRelationInput struct {
	Identifier query.SortOrder `json:"identifier,omitempty" validate:"omitempty,enum"`
	Token      query.SortOrder `json:"token,omitempty" validate:"omitempty,enum"`
	Expires    query.SortOrder `json:"expires,omitempty" validate:"omitempty,enum"`
}

// VerificationTokenOrderByScalarInput orders grouped rows by their scalar
// columns.
type VerificationTokenOrderByScalarInput struct {
	Identifier query.SortOrder `json:"identifier,omitempty" validate:"omitempty,enum"`
	Token      query.SortOrder `json:"token,omitempty" validate:"omitempty,enum"`
	Expires    query.SortOrder `json:"expires,omitempty" validate:"omitempty,enum"`
}

// VerificationTokenScalarWhereWithAggregatesInput filters the groups of a
// groupBy.
type VerificationTokenScalarWhereWithAggregatesInput struct {
	AND        query.OneOrMany[VerificationTokenScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR         []VerificationTokenScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT        query.OneOrMany[VerificationTokenScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	Identifier query.StringWithAggregatesFilter                                 `json:"identifier,omitzero"`
	Token      query.StringWithAggregatesFilter                                 `json:"token,omitzero"`
	Expires    query.DateTimeWithAggregatesFilter                               `json:"expires,omitzero"`
}

// VerificationTokenScalarFieldEnum names a scalar field of VerificationToken.
type VerificationTokenScalarFieldEnum string

func (e VerificationTokenScalarFieldEnum) IsValid() bool {
	return verificationTokenModel.hasField(string(e))
}

// =============================================================================
// VerificationToken writes
// =============================================================================

// VerificationTokenCreateInput creates a VerificationToken.
type VerificationTokenCreateInput struct {
	Identifier string    `json:"identifier" validate:"required"`
	Token      string    `json:"token" validate:"required"`
	Expires    time.Time `json:"expires" validate:"required"`
}

// VerificationTokenUncheckedCreateInput creates a VerificationToken with its
// foreign keys given as plain values.
type VerificationTokenUncheckedCreateInput struct {
	Identifier string    `json:"identifier" validate:"required"`
	Token      string    `json:"token" validate:"required"`
	Expires    time.Time `json:"expires" validate:"required"`
}

// VerificationTokenCreateManyInput is one row of a createMany.
type VerificationTokenCreateManyInput VerificationTokenUncheckedCreateInput

type VerificationTokenUpdateInput struct {
	Identifier query.FieldUpdate[string]    `json:"identifier,omitzero"`
	Token      query.FieldUpdate[string]    `json:"token,omitzero"`
	Expires    query.FieldUpdate[time.Time] `json:"expires,omitzero"`
}

type VerificationTokenUncheckedUpdateInput struct {
	Identifier query.FieldUpdate[string]    `json:"identifier,omitzero"`
	Token      query.FieldUpdate[string]    `json:"token,omitzero"`
	Expires    query.FieldUpdate[time.Time] `json:"expires,omitzero"`
}

type VerificationTokenUpdateManyMutationInput struct {
	Identifier query.FieldUpdate[string]    `json:"identifier,omitzero"`
	Token      query.FieldUpdate[string]    `json:"token,omitzero"`
	Expires    query.FieldUpdate[time.Time] `json:"expires,omitzero"`
}

// =============================================================================
// VerificationToken operations
// =============================================================================

type (
	VerificationTokenFindUniqueArgs query.FindUniqueArgs[VerificationTokenSelect, query.NoInclude, VerificationTokenWhereUniqueInput]
	VerificationTokenFindFirstArgs  query.FindManyArgs[VerificationTokenSelect, query.NoInclude, VerificationTokenWhereInput, VerificationTokenOrderByWithRelationInput, VerificationTokenWhereUniqueInput, VerificationTokenScalarFieldEnum]
	VerificationTokenFindManyArgs   query.FindManyArgs[VerificationTokenSelect, query.NoInclude, VerificationTokenWhereInput, VerificationTokenOrderByWithRelationInput, VerificationTokenWhereUniqueInput, VerificationTokenScalarFieldEnum]
	VerificationTokenCreateArgs     query.CreateArgs[VerificationTokenSelect, query.NoInclude, VerificationTokenCreateInput, VerificationTokenUncheckedCreateInput]
	VerificationTokenUpdateArgs     query.UpdateArgs[VerificationTokenSelect, query.NoInclude, VerificationTokenUpdateInput, VerificationTokenUncheckedUpdateInput, VerificationTokenWhereUniqueInput]
	VerificationTokenUpsertArgs     query.UpsertArgs[VerificationTokenSelect, query.NoInclude, VerificationTokenWhereUniqueInput, VerificationTokenCreateInput, VerificationTokenUncheckedCreateInput, VerificationTokenUpdateInput, VerificationTokenUncheckedUpdateInput]
	VerificationTokenDeleteArgs     query.DeleteArgs[VerificationTokenSelect, query.NoInclude, VerificationTokenWhereUniqueInput]
	VerificationTokenCreateManyArgs query.CreateManyArgs[VerificationTokenCreateManyInput]
	VerificationTokenUpdateManyArgs query.UpdateManyArgs[VerificationTokenUpdateManyMutationInput, VerificationTokenWhereInput]
	VerificationTokenDeleteManyArgs query.DeleteManyArgs[VerificationTokenWhereInput]
	VerificationTokenGroupByArgs    query.GroupByArgs[VerificationTokenWhereInput, VerificationTokenOrderByScalarInput, VerificationTokenScalarFieldEnum, VerificationTokenScalarWhereWithAggregatesInput]
)

// =============================================================================
// VerificationToken descriptor
// =============================================================================

var verificationTokenModel = &Model{
	Name:       "VerificationToken",
	Table:      "verification_tokens",
	PrimaryKey: []string{"identifier", "token"},
	Uniques:    [][]string{{"token"}},
	Fields: []Field{
		{Name: "identifier", Column: "identifier", Type: TypeString},
		{Name: "token", Column: "token", Type: TypeString, Unique: true},
		{Name: "expires", Column: "expires", Type: TypeDateTime},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[VerificationToken](),
		ShapePartial:                   ctor[VerificationTokenPartial](),
		ShapeOptionalDefaults:          ctor[VerificationTokenOptionalDefaults](),
		ShapeSelect:                    ctor[VerificationTokenSelect](),
		ShapeWhere:                     ctor[VerificationTokenWhereInput](),
		ShapeWhereUnique:               ctor[VerificationTokenWhereUniqueInput](),
		ShapeOrderBy:                   ctor[VerificationTokenOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[VerificationTokenScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[VerificationTokenCreateInput](),
		ShapeUncheckedCreateInput:      ctor[VerificationTokenUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[VerificationTokenUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[VerificationTokenUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[VerificationTokenCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[VerificationTokenUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[VerificationTokenFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[VerificationTokenFindFirstArgs](),
		ShapeFindManyArgs:              ctor[VerificationTokenFindManyArgs](),
		ShapeCreateArgs:                ctor[VerificationTokenCreateArgs](),
		ShapeUpdateArgs:                ctor[VerificationTokenUpdateArgs](),
		ShapeUpsertArgs:                ctor[VerificationTokenUpsertArgs](),
		ShapeDeleteArgs:                ctor[VerificationTokenDeleteArgs](),
		ShapeCreateManyArgs:            ctor[VerificationTokenCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[VerificationTokenUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[VerificationTokenDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[VerificationTokenGroupByArgs](),
	},
}
