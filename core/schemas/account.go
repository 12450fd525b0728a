package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
)

// =============================================================================
// Account
// =============================================================================

// Account links a user to an external identity provider.
type Account struct {
	ID                string  `json:"id" validate:"required,cuid"`
	UserID            string  `json:"userId" validate:"required,cuid"`
	Type              string  `json:"type" validate:"required"`
	Provider          string  `json:"provider" validate:"required"`
	ProviderAccountID string  `json:"providerAccountId" validate:"required"`
	RefreshToken      *string `json:"refresh_token"`
	AccessToken       *string `json:"access_token"`
	ExpiresAt         *int    `json:"expires_at"`
	TokenType         *string `json:"token_type"`
	Scope             *string `json:"scope"`
	IDToken           *string `json:"id_token"`
	SessionState      *string `json:"session_state"`
}

// AccountPartial is Account with every field optional.
type AccountPartial struct {
	ID                *string `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID            *string `json:"userId,omitempty" validate:"omitempty,cuid"`
	Type              *string `json:"type,omitempty"`
	Provider          *string `json:"provider,omitempty"`
	ProviderAccountID *string `json:"providerAccountId,omitempty"`
	RefreshToken      *string `json:"refresh_token,omitempty"`
	AccessToken       *string `json:"access_token,omitempty"`
	ExpiresAt         *int    `json:"expires_at,omitempty"`
	TokenType         *string `json:"token_type,omitempty"`
	Scope             *string `json:"scope,omitempty"`
	IDToken           *string `json:"id_token,omitempty"`
	SessionState      *string `json:"session_state,omitempty"`
}

// AccountOptionalDefaults is Account with the defaulted fields optional.
type AccountOptionalDefaults struct {
	ID                *string `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID            string  `json:"userId" validate:"required,cuid"`
	Type              string  `json:"type" validate:"required"`
	Provider          string  `json:"provider" validate:"required"`
	ProviderAccountID string  `json:"providerAccountId" validate:"required"`
	RefreshToken      *string `json:"refresh_token"`
	AccessToken       *string `json:"access_token"`
	ExpiresAt         *int    `json:"expires_at"`
	TokenType         *string `json:"token_type"`
	Scope             *string `json:"scope"`
	IDToken           *string `json:"id_token"`
	SessionState      *string `json:"session_state"`
}

// ToModel fills the defaulted fields and returns the record.
func (o AccountOptionalDefaults) ToModel(now time.Time) (Account, error) {
	id, err := newCUID(o.ID)
	if err != nil {
		return Account{}, err
	}

	return Account{
		ID:                id,
		UserID:            o.UserID,
		Type:              o.Type,
		Provider:          o.Provider,
		ProviderAccountID: o.ProviderAccountID,
		RefreshToken:      o.RefreshToken,
		AccessToken:       o.AccessToken,
		ExpiresAt:         o.ExpiresAt,
		TokenType:         o.TokenType,
		Scope:             o.Scope,
		IDToken:           o.IDToken,
		SessionState:      o.SessionState,
	}, nil
}

// =============================================================================
// Account selection
// =============================================================================

type AccountSelect struct {
	ID                bool                     `json:"id,omitempty"`
	UserID            bool                     `json:"userId,omitempty"`
	Type              bool                     `json:"type,omitempty"`
	Provider          bool                     `json:"provider,omitempty"`
	ProviderAccountID bool                     `json:"providerAccountId,omitempty"`
	RefreshToken      bool                     `json:"refresh_token,omitempty"`
	AccessToken       bool                     `json:"access_token,omitempty"`
	ExpiresAt         bool                     `json:"expires_at,omitempty"`
	TokenType         bool                     `json:"token_type,omitempty"`
	Scope             bool                     `json:"scope,omitempty"`
	IDToken           bool                     `json:"id_token,omitempty"`
	SessionState      bool                     `json:"session_state,omitempty"`
	User              query.Relation[UserArgs] `json:"user,omitzero"`
}

type AccountInclude struct {
	User query.Relation[UserArgs] `json:"user,omitzero"`
}

type AccountArgs query.Args[AccountSelect, AccountInclude]

// =============================================================================
// Account filters
// =============================================================================

type AccountWhereInput struct {
	AND               query.OneOrMany[AccountWhereInput]   `json:"AND,omitempty" validate:"omitempty,dive"`
	OR                []AccountWhereInput                  `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT               query.OneOrMany[AccountWhereInput]   `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID                query.StringFilter                   `json:"id,omitzero"`
	UserID            query.StringFilter                   `json:"userId,omitzero"`
	Type              query.StringFilter                   `json:"type,omitzero"`
	Provider          query.StringFilter                   `json:"provider,omitzero"`
	ProviderAccountID query.StringFilter                   `json:"providerAccountId,omitzero"`
	RefreshToken      query.StringNullableFilter           `json:"refresh_token,omitzero"`
	AccessToken       query.StringNullableFilter           `json:"access_token,omitzero"`
	ExpiresAt         query.IntNullableFilter              `json:"expires_at,omitzero"`
	TokenType         query.StringNullableFilter           `json:"token_type,omitzero"`
	Scope             query.StringNullableFilter           `json:"scope,omitzero"`
	IDToken           query.StringNullableFilter           `json:"id_token,omitzero"`
	SessionState      query.StringNullableFilter           `json:"session_state,omitzero"`
	User              query.RelationFilter[UserWhereInput] `json:"user,omitzero"`
}

// AccountWhereUniqueInput selects at most one Account. At least one of id,
// provider_providerAccountId must be set.
// The remaining fields filter like AccountWhereInput.
type AccountWhereUniqueInput struct {
	ID                        *string                                              `json:"id,omitempty" validate:"omitempty,cuid"`
	ProviderProviderAccountID *AccountProviderProviderAccountIDCompoundUniqueInput `json:"provider_providerAccountId,omitempty"`
	AND                       query.OneOrMany[AccountWhereInput]                   `json:"AND,omitempty" validate:"omitempty,dive"`
	OR                        []AccountWhereInput                                  `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT                       query.OneOrMany[AccountWhereInput]                   `json:"NOT,omitempty" validate:"omitempty,dive"`
	UserID                    query.StringFilter                                   `json:"userId,omitzero"`
	Type                      query.StringFilter                                   `json:"type,omitzero"`
	Provider                  query.StringFilter                                   `json:"provider,omitzero"`
	ProviderAccountID         query.StringFilter                                   `json:"providerAccountId,omitzero"`
	RefreshToken              query.StringNullableFilter                           `json:"refresh_token,omitzero"`
	AccessToken               query.StringNullableFilter                           `json:"access_token,omitzero"`
	ExpiresAt                 query.IntNullableFilter                              `json:"expires_at,omitzero"`
	TokenType                 query.StringNullableFilter                           `json:"token_type,omitzero"`
	Scope                     query.StringNullableFilter                           `json:"scope,omitzero"`
	IDToken                   query.StringNullableFilter                           `json:"id_token,omitzero"`
	SessionState              query.StringNullableFilter                           `json:"session_state,omitzero"`
	User                      query.RelationFilter[UserWhereInput]                 `json:"user,omitzero"`
}

type AccountProviderProviderAccountIDCompoundUniqueInput struct {
	Provider          string `json:"provider" validate:"required"`
	ProviderAccountID string `json:"providerAccountId" validate:"required"`
}

func (w AccountWhereUniqueInput) uniqueKeys() []string {
	return accountModel.UniqueKeys()
}

func (w AccountWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil || w.ProviderProviderAccountID != nil
}

type AccountOrderByWithRelationInput struct {
	ID                query.SortOrder               `json:"id,omitempty" validate:"omitempty,enum"`
	UserID            query.SortOrder               `json:"userId,omitempty" validate:"omitempty,enum"`
	Type              query.SortOrder               `json:"type,omitempty" validate:"omitempty,enum"`
	Provider          query.SortOrder               `json:"provider,omitempty" validate:"omitempty,enum"`
	ProviderAccountID query.SortOrder               `json:"providerAccountId,omitempty" validate:"omitempty,enum"`
	RefreshToken      *query.SortOrderInput         `json:"refresh_token,omitempty"`
	AccessToken       *query.SortOrderInput         `json:"access_token,omitempty"`
	ExpiresAt         *query.SortOrderInput         `json:"expires_at,omitempty"`
	TokenType         *query.SortOrderInput         `json:"token_type,omitempty"`
	Scope             *query.SortOrderInput         `json:"scope,omitempty"`
	IDToken           *query.SortOrderInput         `json:"id_token,omitempty"`
	SessionState      *query.SortOrderInput         `json:"session_state,omitempty"`
	User              *UserOrderByWithRelationInput `json:"user,omitempty"`
}

// AccountOrderByScalarInput orders grouped rows by their scalar columns.
type AccountOrderByScalarInput struct {
	ID                query.SortOrder       `json:"id,omitempty" validate:"omitempty,enum"`
	UserID            query.SortOrder       `json:"userId,omitempty" validate:"omitempty,enum"`
	Type              query.SortOrder       `json:"type,omitempty" validate:"omitempty,enum"`
	Provider          query.SortOrder       `json:"provider,omitempty" validate:"omitempty,enum"`
	ProviderAccountID query.SortOrder       `json:"providerAccountId,omitempty" validate:"omitempty,enum"`
	RefreshToken      *query.SortOrderInput `json:"refresh_token,omitempty"`
	AccessToken       *query.SortOrderInput `json:"access_token,omitempty"`
	ExpiresAt         *query.SortOrderInput `json:"expires_at,omitempty"`
	TokenType         *query.SortOrderInput `json:"token_type,omitempty"`
	Scope             *query.SortOrderInput `json:"scope,omitempty"`
	IDToken           *query.SortOrderInput `json:"id_token,omitempty"`
	SessionState      *query.SortOrderInput `json:"session_state,omitempty"`
}

// AccountScalarWhereWithAggregatesInput filters the groups of a groupBy.
type AccountScalarWhereWithAggregatesInput struct {
	AND               query.OneOrMany[AccountScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR                []AccountScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT               query.OneOrMany[AccountScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID                query.StringWithAggregatesFilter                       `json:"id,omitzero"`
	UserID            query.StringWithAggregatesFilter                       `json:"userId,omitzero"`
	Type              query.StringWithAggregatesFilter                       `json:"type,omitzero"`
	Provider          query.StringWithAggregatesFilter                       `json:"provider,omitzero"`
	ProviderAccountID query.StringWithAggregatesFilter                       `json:"providerAccountId,omitzero"`
	RefreshToken      query.StringNullableWithAggregatesFilter               `json:"refresh_token,omitzero"`
	AccessToken       query.StringNullableWithAggregatesFilter               `json:"access_token,omitzero"`
	ExpiresAt         query.IntNullableWithAggregatesFilter                  `json:"expires_at,omitzero"`
	TokenType         query.StringNullableWithAggregatesFilter               `json:"token_type,omitzero"`
	Scope             query.StringNullableWithAggregatesFilter               `json:"scope,omitzero"`
	IDToken           query.StringNullableWithAggregatesFilter               `json:"id_token,omitzero"`
	SessionState      query.StringNullableWithAggregatesFilter               `json:"session_state,omitzero"`
}

// AccountScalarFieldEnum names a scalar field of Account.
type AccountScalarFieldEnum string

func (e AccountScalarFieldEnum) IsValid() bool {
	return accountModel.hasField(string(e))
}

// =============================================================================
// Account writes
// =============================================================================

// AccountCreateInput creates a Account and writes its relations through
// nested operations.
type AccountCreateInput struct {
	ID                *string                   `json:"id,omitempty" validate:"omitempty,cuid"`
	Type              string                    `json:"type" validate:"required"`
	Provider          string                    `json:"provider" validate:"required"`
	ProviderAccountID string                    `json:"providerAccountId" validate:"required"`
	RefreshToken      *string                   `json:"refresh_token,omitempty"`
	AccessToken       *string                   `json:"access_token,omitempty"`
	ExpiresAt         *int                      `json:"expires_at,omitempty"`
	TokenType         *string                   `json:"token_type,omitempty"`
	Scope             *string                   `json:"scope,omitempty"`
	IDToken           *string                   `json:"id_token,omitempty"`
	SessionState      *string                   `json:"session_state,omitempty"`
	User              *UserCreateNestedOneInput `json:"user" validate:"required"`
}

// AccountUncheckedCreateInput creates a Account with its foreign keys given
// as plain values.
type AccountUncheckedCreateInput struct {
	ID                *string `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID            string  `json:"userId" validate:"required,cuid"`
	Type              string  `json:"type" validate:"required"`
	Provider          string  `json:"provider" validate:"required"`
	ProviderAccountID string  `json:"providerAccountId" validate:"required"`
	RefreshToken      *string `json:"refresh_token,omitempty"`
	AccessToken       *string `json:"access_token,omitempty"`
	ExpiresAt         *int    `json:"expires_at,omitempty"`
	TokenType         *string `json:"token_type,omitempty"`
	Scope             *string `json:"scope,omitempty"`
	IDToken           *string `json:"id_token,omitempty"`
	SessionState      *string `json:"session_state,omitempty"`
}

// AccountCreateManyInput is one row of a createMany.
type AccountCreateManyInput AccountUncheckedCreateInput

// AccountCreateNestedInput creates a Account from the other side of one of
// its relations. Foreign keys filled in by the parent may be left out.
type AccountCreateNestedInput struct {
	ID                *string `json:"id,omitempty" validate:"omitempty,cuid"`
	UserID            *string `json:"userId,omitempty" validate:"omitempty,cuid"`
	Type              string  `json:"type" validate:"required"`
	Provider          string  `json:"provider" validate:"required"`
	ProviderAccountID string  `json:"providerAccountId" validate:"required"`
	RefreshToken      *string `json:"refresh_token,omitempty"`
	AccessToken       *string `json:"access_token,omitempty"`
	ExpiresAt         *int    `json:"expires_at,omitempty"`
	TokenType         *string `json:"token_type,omitempty"`
	Scope             *string `json:"scope,omitempty"`
	IDToken           *string `json:"id_token,omitempty"`
	SessionState      *string `json:"session_state,omitempty"`
}

type AccountUpdateInput struct {
	ID                query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,cuid"`
	Type              query.FieldUpdate[string]         `json:"type,omitzero"`
	Provider          query.FieldUpdate[string]         `json:"provider,omitzero"`
	ProviderAccountID query.FieldUpdate[string]         `json:"providerAccountId,omitzero"`
	RefreshToken      query.NullableFieldUpdate[string] `json:"refresh_token,omitzero"`
	AccessToken       query.NullableFieldUpdate[string] `json:"access_token,omitzero"`
	ExpiresAt         query.NullableIntFieldUpdate      `json:"expires_at,omitzero"`
	TokenType         query.NullableFieldUpdate[string] `json:"token_type,omitzero"`
	Scope             query.NullableFieldUpdate[string] `json:"scope,omitzero"`
	IDToken           query.NullableFieldUpdate[string] `json:"id_token,omitzero"`
	SessionState      query.NullableFieldUpdate[string] `json:"session_state,omitzero"`
	User              *UserUpdateOneRequiredNestedInput `json:"user,omitempty"`
}

type AccountUncheckedUpdateInput struct {
	ID                query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,cuid"`
	UserID            query.FieldUpdate[string]         `json:"userId,omitzero" validate:"omitempty,cuid"`
	Type              query.FieldUpdate[string]         `json:"type,omitzero"`
	Provider          query.FieldUpdate[string]         `json:"provider,omitzero"`
	ProviderAccountID query.FieldUpdate[string]         `json:"providerAccountId,omitzero"`
	RefreshToken      query.NullableFieldUpdate[string] `json:"refresh_token,omitzero"`
	AccessToken       query.NullableFieldUpdate[string] `json:"access_token,omitzero"`
	ExpiresAt         query.NullableIntFieldUpdate      `json:"expires_at,omitzero"`
	TokenType         query.NullableFieldUpdate[string] `json:"token_type,omitzero"`
	Scope             query.NullableFieldUpdate[string] `json:"scope,omitzero"`
	IDToken           query.NullableFieldUpdate[string] `json:"id_token,omitzero"`
	SessionState      query.NullableFieldUpdate[string] `json:"session_state,omitzero"`
}

type AccountUpdateManyMutationInput struct {
	ID                query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,cuid"`
	Type              query.FieldUpdate[string]         `json:"type,omitzero"`
	Provider          query.FieldUpdate[string]         `json:"provider,omitzero"`
	ProviderAccountID query.FieldUpdate[string]         `json:"providerAccountId,omitzero"`
	RefreshToken      query.NullableFieldUpdate[string] `json:"refresh_token,omitzero"`
	AccessToken       query.NullableFieldUpdate[string] `json:"access_token,omitzero"`
	ExpiresAt         query.NullableIntFieldUpdate      `json:"expires_at,omitzero"`
	TokenType         query.NullableFieldUpdate[string] `json:"token_type,omitzero"`
	Scope             query.NullableFieldUpdate[string] `json:"scope,omitzero"`
	IDToken           query.NullableFieldUpdate[string] `json:"id_token,omitzero"`
	SessionState      query.NullableFieldUpdate[string] `json:"session_state,omitzero"`
}

// Nested writes reaching Account from a related model.
type (
	AccountCreateNestedManyInput = query.ToManyCreate[AccountCreateNestedInput, AccountWhereUniqueInput]
	AccountUpdateManyNestedInput = query.ToManyUpdate[AccountCreateNestedInput, AccountUncheckedUpdateInput, AccountUpdateManyMutationInput, AccountWhereUniqueInput, AccountWhereInput]
)

// =============================================================================
// Account operations
// =============================================================================

type (
	AccountFindUniqueArgs query.FindUniqueArgs[AccountSelect, AccountInclude, AccountWhereUniqueInput]
	AccountFindFirstArgs  query.FindManyArgs[AccountSelect, AccountInclude, AccountWhereInput, AccountOrderByWithRelationInput, AccountWhereUniqueInput, AccountScalarFieldEnum]
	AccountFindManyArgs   query.FindManyArgs[AccountSelect, AccountInclude, AccountWhereInput, AccountOrderByWithRelationInput, AccountWhereUniqueInput, AccountScalarFieldEnum]
	AccountCreateArgs     query.CreateArgs[AccountSelect, AccountInclude, AccountCreateInput, AccountUncheckedCreateInput]
	AccountUpdateArgs     query.UpdateArgs[AccountSelect, AccountInclude, AccountUpdateInput, AccountUncheckedUpdateInput, AccountWhereUniqueInput]
	AccountUpsertArgs     query.UpsertArgs[AccountSelect, AccountInclude, AccountWhereUniqueInput, AccountCreateInput, AccountUncheckedCreateInput, AccountUpdateInput, AccountUncheckedUpdateInput]
	AccountDeleteArgs     query.DeleteArgs[AccountSelect, AccountInclude, AccountWhereUniqueInput]
	AccountCreateManyArgs query.CreateManyArgs[AccountCreateManyInput]
	AccountUpdateManyArgs query.UpdateManyArgs[AccountUpdateManyMutationInput, AccountWhereInput]
	AccountDeleteManyArgs query.DeleteManyArgs[AccountWhereInput]
	AccountGroupByArgs    query.GroupByArgs[AccountWhereInput, AccountOrderByScalarInput, AccountScalarFieldEnum, AccountScalarWhereWithAggregatesInput]
)

// =============================================================================
// Account descriptor
// =============================================================================

var accountModel = &Model{
	Name:       "Account",
	Table:      "accounts",
	PrimaryKey: []string{"id"},
	Uniques:    [][]string{{"provider", "providerAccountId"}},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "cuid()", Format: FormatCUID},
		{Name: "userId", Column: "user_id", Type: TypeString, Format: FormatCUID, ForeignKey: true},
		{Name: "type", Column: "type", Type: TypeString},
		{Name: "provider", Column: "provider", Type: TypeString},
		{Name: "providerAccountId", Column: "provider_account_id", Type: TypeString},
		{Name: "refresh_token", Column: "refresh_token", Type: TypeString, Nullable: true},
		{Name: "access_token", Column: "access_token", Type: TypeString, Nullable: true},
		{Name: "expires_at", Column: "expires_at", Type: TypeInt, Nullable: true},
		{Name: "token_type", Column: "token_type", Type: TypeString, Nullable: true},
		{Name: "scope", Column: "scope", Type: TypeString, Nullable: true},
		{Name: "id_token", Column: "id_token", Type: TypeString, Nullable: true},
		{Name: "session_state", Column: "session_state", Type: TypeString, Nullable: true},
	},
	Relations: []Relation{
		{Name: "user", Model: "User", Kind: ToOne, Fields: []string{"userId"}, References: []string{"id"}, OnDelete: "CASCADE"},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[Account](),
		ShapePartial:                   ctor[AccountPartial](),
		ShapeOptionalDefaults:          ctor[AccountOptionalDefaults](),
		ShapeSelect:                    ctor[AccountSelect](),
		ShapeInclude:                   ctor[AccountInclude](),
		ShapeWhere:                     ctor[AccountWhereInput](),
		ShapeWhereUnique:               ctor[AccountWhereUniqueInput](),
		ShapeOrderBy:                   ctor[AccountOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[AccountScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[AccountCreateInput](),
		ShapeUncheckedCreateInput:      ctor[AccountUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[AccountUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[AccountUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[AccountCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[AccountUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[AccountFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[AccountFindFirstArgs](),
		ShapeFindManyArgs:              ctor[AccountFindManyArgs](),
		ShapeCreateArgs:                ctor[AccountCreateArgs](),
		ShapeUpdateArgs:                ctor[AccountUpdateArgs](),
		ShapeUpsertArgs:                ctor[AccountUpsertArgs](),
		ShapeDeleteArgs:                ctor[AccountDeleteArgs](),
		ShapeCreateManyArgs:            ctor[AccountCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[AccountUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[AccountDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[AccountGroupByArgs](),
	},
}
