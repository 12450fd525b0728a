package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

// =============================================================================
// User
// =============================================================================

// User is a registered person. Users vote, like blog posts and may write as
// authors.
type User struct {
	ID            string     `json:"id" validate:"required,cuid"`
	Name          *string    `json:"name"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	EmailVerified *time.Time `json:"emailVerified"`
	Image         *string    `json:"image" validate:"omitempty,url"`
	Role          Role       `json:"role" validate:"required,enum"`
	CreatedAt     time.Time  `json:"createdAt" validate:"required"`
	UpdatedAt     time.Time  `json:"updatedAt" validate:"required"`
}

// UserPartial is User with every field optional.
type UserPartial struct {
	ID            *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Name          *string    `json:"name,omitempty"`
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	EmailVerified *time.Time `json:"emailVerified,omitempty"`
	Image         *string    `json:"image,omitempty" validate:"omitempty,url"`
	Role          *Role      `json:"role,omitempty" validate:"omitempty,enum"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// UserOptionalDefaults is User with the defaulted fields optional.
type UserOptionalDefaults struct {
	ID            *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Name          *string    `json:"name"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	EmailVerified *time.Time `json:"emailVerified"`
	Image         *string    `json:"image" validate:"omitempty,url"`
	Role          *Role      `json:"role,omitempty" validate:"omitempty,enum"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// ToModel fills the defaulted fields and returns the record. Timestamps
// default to now.
func (o UserOptionalDefaults) ToModel(now time.Time) (User, error) {
	id, err := newCUID(o.ID)
	if err != nil {
		return User{}, err
	}

	return User{
		ID:            id,
		Name:          o.Name,
		Email:         o.Email,
		EmailVerified: o.EmailVerified,
		Image:         o.Image,
		Role:          validation.ValueOr(o.Role, RoleUser),
		CreatedAt:     validation.ValueOr(o.CreatedAt, now),
		UpdatedAt:     validation.ValueOr(o.UpdatedAt, now),
	}, nil
}

// =============================================================================
// User selection
// =============================================================================

type UserSelect struct {
	ID            bool                                    `json:"id,omitempty"`
	Name          bool                                    `json:"name,omitempty"`
	Email         bool                                    `json:"email,omitempty"`
	EmailVerified bool                                    `json:"emailVerified,omitempty"`
	Image         bool                                    `json:"image,omitempty"`
	Role          bool                                    `json:"role,omitempty"`
	CreatedAt     bool                                    `json:"createdAt,omitempty"`
	UpdatedAt     bool                                    `json:"updatedAt,omitempty"`
	Accounts      query.Relation[AccountFindManyArgs]     `json:"accounts,omitzero"`
	Sessions      query.Relation[SessionFindManyArgs]     `json:"sessions,omitzero"`
	Info          query.Relation[InfoArgs]                `json:"info,omitzero"`
	Votes         query.Relation[VoteFindManyArgs]        `json:"votes,omitzero"`
	BlogLikes     query.Relation[BlogLikeFindManyArgs]    `json:"blogLikes,omitzero"`
	Authors       query.Relation[AuthorFindManyArgs]      `json:"authors,omitzero"`
	Count         query.Relation[UserCountOutputTypeArgs] `json:"_count,omitzero"`
}

type UserInclude struct {
	Accounts  query.Relation[AccountFindManyArgs]     `json:"accounts,omitzero"`
	Sessions  query.Relation[SessionFindManyArgs]     `json:"sessions,omitzero"`
	Info      query.Relation[InfoArgs]                `json:"info,omitzero"`
	Votes     query.Relation[VoteFindManyArgs]        `json:"votes,omitzero"`
	BlogLikes query.Relation[BlogLikeFindManyArgs]    `json:"blogLikes,omitzero"`
	Authors   query.Relation[AuthorFindManyArgs]      `json:"authors,omitzero"`
	Count     query.Relation[UserCountOutputTypeArgs] `json:"_count,omitzero"`
}

// UserCountOutputTypeSelect picks the to-many relations counted under _count.
type UserCountOutputTypeSelect struct {
	Accounts  bool `json:"accounts,omitempty"`
	Sessions  bool `json:"sessions,omitempty"`
	Votes     bool `json:"votes,omitempty"`
	BlogLikes bool `json:"blogLikes,omitempty"`
	Authors   bool `json:"authors,omitempty"`
}

type UserCountOutputTypeArgs struct {
	Select *UserCountOutputTypeSelect `json:"select,omitempty"`
}

type UserArgs query.Args[UserSelect, UserInclude]

// =============================================================================
// User filters
// =============================================================================

type UserWhereInput struct {
	AND           query.OneOrMany[UserWhereInput]              `json:"AND,omitempty" validate:"omitempty,dive"`
	OR            []UserWhereInput                             `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT           query.OneOrMany[UserWhereInput]              `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID            query.StringFilter                           `json:"id,omitzero"`
	Name          query.StringNullableFilter                   `json:"name,omitzero"`
	Email         query.StringNullableFilter                   `json:"email,omitzero"`
	EmailVerified query.DateTimeNullableFilter                 `json:"emailVerified,omitzero"`
	Image         query.StringNullableFilter                   `json:"image,omitzero"`
	Role          query.EnumFilter[Role]                       `json:"role,omitzero"`
	CreatedAt     query.DateTimeFilter                         `json:"createdAt,omitzero"`
	UpdatedAt     query.DateTimeFilter                         `json:"updatedAt,omitzero"`
	Accounts      query.ListRelationFilter[AccountWhereInput]  `json:"accounts,omitzero"`
	Sessions      query.ListRelationFilter[SessionWhereInput]  `json:"sessions,omitzero"`
	Info          query.NullableRelationFilter[InfoWhereInput] `json:"info,omitzero"`
	Votes         query.ListRelationFilter[VoteWhereInput]     `json:"votes,omitzero"`
	BlogLikes     query.ListRelationFilter[BlogLikeWhereInput] `json:"blogLikes,omitzero"`
	Authors       query.ListRelationFilter[AuthorWhereInput]   `json:"authors,omitzero"`
}

// UserWhereUniqueInput selects at most one User. At least one of id, email
// must be set.
// The remaining fields filter like UserWhereInput.
type UserWhereUniqueInput struct {
	ID            *string                                      `json:"id,omitempty" validate:"omitempty,cuid"`
	Email         *string                                      `json:"email,omitempty" validate:"omitempty,email"`
	AND           query.OneOrMany[UserWhereInput]              `json:"AND,omitempty" validate:"omitempty,dive"`
	OR            []UserWhereInput                             `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT           query.OneOrMany[UserWhereInput]              `json:"NOT,omitempty" validate:"omitempty,dive"`
	Name          query.StringNullableFilter                   `json:"name,omitzero"`
	EmailVerified query.DateTimeNullableFilter                 `json:"emailVerified,omitzero"`
	Image         query.StringNullableFilter                   `json:"image,omitzero"`
	Role          query.EnumFilter[Role]                       `json:"role,omitzero"`
	CreatedAt     query.DateTimeFilter                         `json:"createdAt,omitzero"`
	UpdatedAt     query.DateTimeFilter                         `json:"updatedAt,omitzero"`
	Accounts      query.ListRelationFilter[AccountWhereInput]  `json:"accounts,omitzero"`
	Sessions      query.ListRelationFilter[SessionWhereInput]  `json:"sessions,omitzero"`
	Info          query.NullableRelationFilter[InfoWhereInput] `json:"info,omitzero"`
	Votes         query.ListRelationFilter[VoteWhereInput]     `json:"votes,omitzero"`
	BlogLikes     query.ListRelationFilter[BlogLikeWhereInput] `json:"blogLikes,omitzero"`
	Authors       query.ListRelationFilter[AuthorWhereInput]   `json:"authors,omitzero"`
}

func (w UserWhereUniqueInput) uniqueKeys() []string {
	return userModel.UniqueKeys()
}

func (w UserWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil || w.Email != nil
}

type UserOrderByWithRelationInput struct {
	ID            query.SortOrder                      `json:"id,omitempty" validate:"omitempty,enum"`
	Name          *query.SortOrderInput                `json:"name,omitempty"`
	Email         *query.SortOrderInput                `json:"email,omitempty"`
	EmailVerified *query.SortOrderInput                `json:"emailVerified,omitempty"`
	Image         *query.SortOrderInput                `json:"image,omitempty"`
	Role          query.SortOrder                      `json:"role,omitempty" validate:"omitempty,enum"`
	CreatedAt     query.SortOrder                      `json:"createdAt,omitempty" validate:"omitempty,enum"`
	UpdatedAt     query.SortOrder                      `json:"updatedAt,omitempty" validate:"omitempty,enum"`
	Accounts      *query.OrderByRelationAggregateInput `json:"accounts,omitempty"`
	Sessions      *query.OrderByRelationAggregateInput `json:"sessions,omitempty"`
	Info          *InfoOrderByWithRelationInput        `json:"info,omitempty"`
	Votes         *query.OrderByRelationAggregateInput `json:"votes,omitempty"`
	BlogLikes     *query.OrderByRelationAggregateInput `json:"blogLikes,omitempty"`
	Authors       *query.OrderByRelationAggregateInput `json:"authors,omitempty"`
}

// UserOrderByScalarInput orders grouped rows by their scalar columns.
type UserOrderByScalarInput struct {
	ID            query.SortOrder       `json:"id,omitempty" validate:"omitempty,enum"`
	Name          *query.SortOrderInput `json:"name,omitempty"`
	Email         *query.SortOrderInput `json:"email,omitempty"`
	EmailVerified *query.SortOrderInput `json:"emailVerified,omitempty"`
	Image         *query.SortOrderInput `json:"image,omitempty"`
	Role          query.SortOrder       `json:"role,omitempty" validate:"omitempty,enum"`
	CreatedAt     query.SortOrder       `json:"createdAt,omitempty" validate:"omitempty,enum"`
	UpdatedAt     query.SortOrder       `json:"updatedAt,omitempty" validate:"omitempty,enum"`
}

// UserScalarWhereWithAggregatesInput filters the groups of a groupBy.
type UserScalarWhereWithAggregatesInput struct {
	AND           query.OneOrMany[UserScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR            []UserScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT           query.OneOrMany[UserScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID            query.StringWithAggregatesFilter                    `json:"id,omitzero"`
	Name          query.StringNullableWithAggregatesFilter            `json:"name,omitzero"`
	Email         query.StringNullableWithAggregatesFilter            `json:"email,omitzero"`
	EmailVerified query.DateTimeNullableWithAggregatesFilter          `json:"emailVerified,omitzero"`
	Image         query.StringNullableWithAggregatesFilter            `json:"image,omitzero"`
	Role          query.EnumWithAggregatesFilter[Role]                `json:"role,omitzero"`
	CreatedAt     query.DateTimeWithAggregatesFilter                  `json:"createdAt,omitzero"`
	UpdatedAt     query.DateTimeWithAggregatesFilter                  `json:"updatedAt,omitzero"`
}

// UserScalarFieldEnum names a scalar field of User.
type UserScalarFieldEnum string

func (e UserScalarFieldEnum) IsValid() bool {
	return userModel.hasField(string(e))
}

// =============================================================================
// User writes
// =============================================================================

// UserCreateInput creates a User and writes its relations through nested
// operations.
type UserCreateInput struct {
	ID            *string                        `json:"id,omitempty" validate:"omitempty,cuid"`
	Name          *string                        `json:"name,omitempty"`
	Email         *string                        `json:"email,omitempty" validate:"omitempty,email"`
	EmailVerified *time.Time                     `json:"emailVerified,omitempty"`
	Image         *string                        `json:"image,omitempty" validate:"omitempty,url"`
	Role          *Role                          `json:"role,omitempty" validate:"omitempty,enum"`
	CreatedAt     *time.Time                     `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time                     `json:"updatedAt,omitempty"`
	Accounts      *AccountCreateNestedManyInput  `json:"accounts,omitempty"`
	Sessions      *SessionCreateNestedManyInput  `json:"sessions,omitempty"`
	Info          *InfoCreateNestedOneInput      `json:"info,omitempty"`
	Votes         *VoteCreateNestedManyInput     `json:"votes,omitempty"`
	BlogLikes     *BlogLikeCreateNestedManyInput `json:"blogLikes,omitempty"`
	Authors       *AuthorCreateNestedManyInput   `json:"authors,omitempty"`
}

// UserUncheckedCreateInput creates a User with its foreign keys given as
// plain values.
type UserUncheckedCreateInput struct {
	ID            *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Name          *string    `json:"name,omitempty"`
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	EmailVerified *time.Time `json:"emailVerified,omitempty"`
	Image         *string    `json:"image,omitempty" validate:"omitempty,url"`
	Role          *Role      `json:"role,omitempty" validate:"omitempty,enum"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// UserCreateManyInput is one row of a createMany.
type UserCreateManyInput UserUncheckedCreateInput

// UserCreateNestedInput creates a User from the other side of one of its
// relations. Foreign keys filled in by the parent may be left out.
type UserCreateNestedInput struct {
	ID            *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	Name          *string    `json:"name,omitempty"`
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	EmailVerified *time.Time `json:"emailVerified,omitempty"`
	Image         *string    `json:"image,omitempty" validate:"omitempty,url"`
	Role          *Role      `json:"role,omitempty" validate:"omitempty,enum"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

type UserUpdateInput struct {
	ID            query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,cuid"`
	Name          query.NullableFieldUpdate[string]    `json:"name,omitzero"`
	Email         query.NullableFieldUpdate[string]    `json:"email,omitzero" validate:"omitempty,email"`
	EmailVerified query.NullableFieldUpdate[time.Time] `json:"emailVerified,omitzero"`
	Image         query.NullableFieldUpdate[string]    `json:"image,omitzero" validate:"omitempty,url"`
	Role          query.FieldUpdate[Role]              `json:"role,omitzero" validate:"omitempty,enum"`
	CreatedAt     query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt     query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
	Accounts      *AccountUpdateManyNestedInput        `json:"accounts,omitempty"`
	Sessions      *SessionUpdateManyNestedInput        `json:"sessions,omitempty"`
	Info          *InfoUpdateOneNestedInput            `json:"info,omitempty"`
	Votes         *VoteUpdateManyNestedInput           `json:"votes,omitempty"`
	BlogLikes     *BlogLikeUpdateManyNestedInput       `json:"blogLikes,omitempty"`
	Authors       *AuthorUpdateManyNestedInput         `json:"authors,omitempty"`
}

type UserUncheckedUpdateInput struct {
	ID            query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,cuid"`
	Name          query.NullableFieldUpdate[string]    `json:"name,omitzero"`
	Email         query.NullableFieldUpdate[string]    `json:"email,omitzero" validate:"omitempty,email"`
	EmailVerified query.NullableFieldUpdate[time.Time] `json:"emailVerified,omitzero"`
	Image         query.NullableFieldUpdate[string]    `json:"image,omitzero" validate:"omitempty,url"`
	Role          query.FieldUpdate[Role]              `json:"role,omitzero" validate:"omitempty,enum"`
	CreatedAt     query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt     query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
}

type UserUpdateManyMutationInput struct {
	ID            query.FieldUpdate[string]            `json:"id,omitzero" validate:"omitempty,cuid"`
	Name          query.NullableFieldUpdate[string]    `json:"name,omitzero"`
	Email         query.NullableFieldUpdate[string]    `json:"email,omitzero" validate:"omitempty,email"`
	EmailVerified query.NullableFieldUpdate[time.Time] `json:"emailVerified,omitzero"`
	Image         query.NullableFieldUpdate[string]    `json:"image,omitzero" validate:"omitempty,url"`
	Role          query.FieldUpdate[Role]              `json:"role,omitzero" validate:"omitempty,enum"`
	CreatedAt     query.FieldUpdate[time.Time]         `json:"createdAt,omitzero"`
	UpdatedAt     query.FieldUpdate[time.Time]         `json:"updatedAt,omitzero"`
}

// Nested writes reaching User from a related model.
type (
	UserCreateNestedOneInput         = query.ToOneCreate[UserCreateNestedInput, UserWhereUniqueInput]
	UserUpdateOneNestedInput         = query.ToOneUpdate[UserCreateNestedInput, UserUncheckedUpdateInput, UserWhereUniqueInput]
	UserUpdateOneRequiredNestedInput = query.ToOneRequiredUpdate[UserCreateNestedInput, UserUncheckedUpdateInput, UserWhereUniqueInput]
)

// =============================================================================
// User operations
// =============================================================================

type (
	UserFindUniqueArgs query.FindUniqueArgs[UserSelect, UserInclude, UserWhereUniqueInput]
	UserFindFirstArgs  query.FindManyArgs[UserSelect, UserInclude, UserWhereInput, UserOrderByWithRelationInput, UserWhereUniqueInput, UserScalarFieldEnum]
	UserFindManyArgs   query.FindManyArgs[UserSelect, UserInclude, UserWhereInput, UserOrderByWithRelationInput, UserWhereUniqueInput, UserScalarFieldEnum]
	UserCreateArgs     query.CreateArgs[UserSelect, UserInclude, UserCreateInput, UserUncheckedCreateInput]
	UserUpdateArgs     query.UpdateArgs[UserSelect, UserInclude, UserUpdateInput, UserUncheckedUpdateInput, UserWhereUniqueInput]
	UserUpsertArgs     query.UpsertArgs[UserSelect, UserInclude, UserWhereUniqueInput, UserCreateInput, UserUncheckedCreateInput, UserUpdateInput, UserUncheckedUpdateInput]
	UserDeleteArgs     query.DeleteArgs[UserSelect, UserInclude, UserWhereUniqueInput]
	UserCreateManyArgs query.CreateManyArgs[UserCreateManyInput]
	UserUpdateManyArgs query.UpdateManyArgs[UserUpdateManyMutationInput, UserWhereInput]
	UserDeleteManyArgs query.DeleteManyArgs[UserWhereInput]
	UserGroupByArgs    query.GroupByArgs[UserWhereInput, UserOrderByScalarInput, UserScalarFieldEnum, UserScalarWhereWithAggregatesInput]
)

// =============================================================================
// User descriptor
// =============================================================================

var userModel = &Model{
	Name:       "User",
	Table:      "users",
	PrimaryKey: []string{"id"},
	Uniques:    [][]string{{"email"}},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "cuid()", Format: FormatCUID},
		{Name: "name", Column: "name", Type: TypeString, Nullable: true},
		{Name: "email", Column: "email", Type: TypeString, Nullable: true, Unique: true, Format: FormatEmail},
		{Name: "emailVerified", Column: "email_verified", Type: TypeDateTime, Nullable: true},
		{Name: "image", Column: "image", Type: TypeString, Nullable: true, Format: FormatURL},
		{Name: "role", Column: "role", Type: TypeRole, Default: "USER"},
		{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: "now()"},
		{Name: "updatedAt", Column: "updated_at", Type: TypeDateTime, UpdatedAt: true},
	},
	Relations: []Relation{
		{Name: "accounts", Model: "Account", Kind: ToMany},
		{Name: "sessions", Model: "Session", Kind: ToMany},
		{Name: "info", Model: "Info", Kind: ToOne, Optional: true},
		{Name: "votes", Model: "Vote", Kind: ToMany},
		{Name: "blogLikes", Model: "BlogLike", Kind: ToMany},
		{Name: "authors", Model: "Author", Kind: ToMany},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[User](),
		ShapePartial:                   ctor[UserPartial](),
		ShapeOptionalDefaults:          ctor[UserOptionalDefaults](),
		ShapeSelect:                    ctor[UserSelect](),
		ShapeInclude:                   ctor[UserInclude](),
		ShapeWhere:                     ctor[UserWhereInput](),
		ShapeWhereUnique:               ctor[UserWhereUniqueInput](),
		ShapeOrderBy:                   ctor[UserOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[UserScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[UserCreateInput](),
		ShapeUncheckedCreateInput:      ctor[UserUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[UserUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[UserUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[UserCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[UserUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[UserFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[UserFindFirstArgs](),
		ShapeFindManyArgs:              ctor[UserFindManyArgs](),
		ShapeCreateArgs:                ctor[UserCreateArgs](),
		ShapeUpdateArgs:                ctor[UserUpdateArgs](),
		ShapeUpsertArgs:                ctor[UserUpsertArgs](),
		ShapeDeleteArgs:                ctor[UserDeleteArgs](),
		ShapeCreateManyArgs:            ctor[UserCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[UserUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[UserDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[UserGroupByArgs](),
	},
}
