package schemas

import (
	"time"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
)

// =============================================================================
// Session
// =============================================================================

// Session is a persisted login session.
type Session struct {
	ID           string    `json:"id" validate:"required,cuid"`
	SessionToken string    `json:"sessionToken" validate:"required"`
	UserID       string    `json:"userId" validate:"required,cuid"`
	Expires      time.Time `json:"expires" validate:"required"`
}

// SessionPartial is Session with every field optional.
type SessionPartial struct {
	ID           *string    `json:"id,omitempty" validate:"omitempty,cuid"`
	SessionToken *string    `json:"sessionToken,omitempty"`
	UserID       *string    `json:"userId,omitempty" validate:"omitempty,cuid"`
	Expires      *time.Time `json:"expires,omitempty"`
}

// SessionOptionalDefaults is Session with the defaulted fields optional.
type SessionOptionalDefaults struct {
	ID           *string   `json:"id,omitempty" validate:"omitempty,cuid"`
	SessionToken string    `json:"sessionToken" validate:"required"`
	UserID       string    `json:"userId" validate:"required,cuid"`
	Expires      time.Time `json:"expires" validate:"required"`
}

// ToModel fills the defaulted fields and returns the record.
func (o SessionOptionalDefaults) ToModel(now time.Time) (Session, error) {
	id, err := newCUID(o.ID)
	if err != nil {
		return Session{}, err
	}

	return Session{
		ID:           id,
		SessionToken: o.SessionToken,
		UserID:       o.UserID,
		Expires:      o.Expires,
	}, nil
}

// =============================================================================
// Session selection
// =============================================================================

type SessionSelect struct {
	ID           bool                     `json:"id,omitempty"`
	SessionToken bool                     `json:"sessionToken,omitempty"`
	UserID       bool                     `json:"userId,omitempty"`
	Expires      bool                     `json:"expires,omitempty"`
	User         query.Relation[UserArgs] `json:"user,omitzero"`
}

type SessionInclude struct {
	User query.Relation[UserArgs] `json:"user,omitzero"`
}

type SessionArgs query.Args[SessionSelect, SessionInclude]

// =============================================================================
// Session filters
// =============================================================================

type SessionWhereInput struct {
	AND          query.OneOrMany[SessionWhereInput]   `json:"AND,omitempty" validate:"omitempty,dive"`
	OR           []SessionWhereInput                  `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT          query.OneOrMany[SessionWhereInput]   `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID           query.StringFilter                   `json:"id,omitzero"`
	SessionToken query.StringFilter                   `json:"sessionToken,omitzero"`
	UserID       query.StringFilter                   `json:"userId,omitzero"`
	Expires      query.DateTimeFilter                 `json:"expires,omitzero"`
	User         query.RelationFilter[UserWhereInput] `json:"user,omitzero"`
}

// SessionWhereUniqueInput selects at most one Session. At least one of id,
// sessionToken must be set.
// The remaining fields filter like SessionWhereInput.
type SessionWhereUniqueInput struct {
	ID           *string                              `json:"id,omitempty" validate:"omitempty,cuid"`
	SessionToken *string                              `json:"sessionToken,omitempty"`
	AND          query.OneOrMany[SessionWhereInput]   `json:"AND,omitempty" validate:"omitempty,dive"`
	OR           []SessionWhereInput                  `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT          query.OneOrMany[SessionWhereInput]   `json:"NOT,omitempty" validate:"omitempty,dive"`
	UserID       query.StringFilter                   `json:"userId,omitzero"`
	Expires      query.DateTimeFilter                 `json:"expires,omitzero"`
	User         query.RelationFilter[UserWhereInput] `json:"user,omitzero"`
}

func (w SessionWhereUniqueInput) uniqueKeys() []string {
	return sessionModel.UniqueKeys()
}

func (w SessionWhereUniqueInput) hasUniqueKey() bool {
	return w.ID != nil || w.SessionToken != nil
}

type SessionOrderByWithRelationInput struct {
	ID           query.SortOrder               `json:"id,omitempty" validate:"omitempty,enum"`
	SessionToken query.SortOrder               `json:"sessionToken,omitempty" validate:"omitempty,enum"`
	UserID       query.SortOrder               `json:"userId,omitempty" validate:"omitempty,enum"`
	Expires      query.SortOrder               `json:"expires,omitempty" validate:"omitempty,enum"`
	User         *UserOrderByWithRelationInput `json:"user,omitempty"`
}

// SessionOrderByScalarInput orders grouped rows by their scalar columns.
type SessionOrderByScalarInput struct {
	ID           query.SortOrder `json:"id,omitempty" validate:"omitempty,enum"`
	SessionToken query.SortOrder `json:"sessionToken,omitempty" validate:"omitempty,enum"`
	UserID       query.SortOrder `json:"userId,omitempty" validate:"omitempty,enum"`
	Expires      query.SortOrder `json:"expires,omitempty" validate:"omitempty,enum"`
}

// SessionScalarWhereWithAggregatesInput filters the groups of a groupBy.
type SessionScalarWhereWithAggregatesInput struct {
	AND          query.OneOrMany[SessionScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR           []SessionScalarWhereWithAggregatesInput                `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT          query.OneOrMany[SessionScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID           query.StringWithAggregatesFilter                       `json:"id,omitzero"`
	SessionToken query.StringWithAggregatesFilter                       `json:"sessionToken,omitzero"`
	UserID       query.StringWithAggregatesFilter                       `json:"userId,omitzero"`
	Expires      query.DateTimeWithAggregatesFilter                     `json:"expires,omitzero"`
}

// SessionScalarFieldEnum names a scalar field of Session.
type SessionScalarFieldEnum string

func (e SessionScalarFieldEnum) IsValid() bool {
	return sessionModel.hasField(string(e))
}

// =============================================================================
// Session writes
// =============================================================================

// SessionCreateInput creates a Session and writes its relations through
// nested operations.
type SessionCreateInput struct {
	ID           *string                   `json:"id,omitempty" validate:"omitempty,cuid"`
	SessionToken string                    `json:"sessionToken" validate:"required"`
	Expires      time.Time                 `json:"expires" validate:"required"`
	User         *UserCreateNestedOneInput `json:"user" validate:"required"`
}

// SessionUncheckedCreateInput creates a Session with its foreign keys given
// as plain values.
type SessionUncheckedCreateInput struct {
	ID           *string   `json:"id,omitempty" validate:"omitempty,cuid"`
	SessionToken string    `json:"sessionToken" validate:"required"`
	UserID       string    `json:"userId" validate:"required,cuid"`
	Expires      time.Time `json:"expires" validate:"required"`
}

// SessionCreateManyInput is one row of a createMany.
type SessionCreateManyInput SessionUncheckedCreateInput

// SessionCreateNestedInput creates a Session from the other side of one of
// its relations. Foreign keys filled in by the parent may be left out.
type SessionCreateNestedInput struct {
	ID           *string   `json:"id,omitempty" validate:"omitempty,cuid"`
	SessionToken string    `json:"sessionToken" validate:"required"`
	UserID       *string   `json:"userId,omitempty" validate:"omitempty,cuid"`
	Expires      time.Time `json:"expires" validate:"required"`
}

type SessionUpdateInput struct {
	ID           query.FieldUpdate[string]         `json:"id,omitzero" validate:"omitempty,cuid"`
	SessionToken query.FieldUpdate[string]         `json:"sessionToken,omitzero"`
	Expires      query.FieldUpdate[time.Time]      `json:"expires,omitzero"`
	User         *UserUpdateOneRequiredNestedInput `json:"user,omitempty"`
}

type SessionUncheckedUpdateInput struct {
	ID           query.FieldUpdate[string]    `json:"id,omitzero" validate:"omitempty,cuid"`
	SessionToken query.FieldUpdate[string]    `json:"sessionToken,omitzero"`
	UserID       query.FieldUpdate[string]    `json:"userId,omitzero" validate:"omitempty,cuid"`
	Expires      query.FieldUpdate[time.Time] `json:"expires,omitzero"`
}

type SessionUpdateManyMutationInput struct {
	ID           query.FieldUpdate[string]    `json:"id,omitzero" validate:"omitempty,cuid"`
	SessionToken query.FieldUpdate[string]    `json:"sessionToken,omitzero"`
	Expires      query.FieldUpdate[time.Time] `json:"expires,omitzero"`
}

// Nested writes reaching Session from a related model.
type (
	SessionCreateNestedManyInput = query.ToManyCreate[SessionCreateNestedInput, SessionWhereUniqueInput]
	SessionUpdateManyNestedInput = query.ToManyUpdate[SessionCreateNestedInput, SessionUncheckedUpdateInput, SessionUpdateManyMutationInput, SessionWhereUniqueInput, SessionWhereInput]
)

// =============================================================================
// Session operations
// =============================================================================

type (
	SessionFindUniqueArgs query.FindUniqueArgs[SessionSelect, SessionInclude, SessionWhereUniqueInput]
	SessionFindFirstArgs  query.FindManyArgs[SessionSelect, SessionInclude, SessionWhereInput, SessionOrderByWithRelationInput, SessionWhereUniqueInput, SessionScalarFieldEnum]
	SessionFindManyArgs   query.FindManyArgs[SessionSelect, SessionInclude, SessionWhereInput, SessionOrderByWithRelationInput, SessionWhereUniqueInput, SessionScalarFieldEnum]
	SessionCreateArgs     query.CreateArgs[SessionSelect, SessionInclude, SessionCreateInput, SessionUncheckedCreateInput]
	SessionUpdateArgs     query.UpdateArgs[SessionSelect, SessionInclude, SessionUpdateInput, SessionUncheckedUpdateInput, SessionWhereUniqueInput]
	SessionUpsertArgs     query.UpsertArgs[SessionSelect, SessionInclude, SessionWhereUniqueInput, SessionCreateInput, SessionUncheckedCreateInput, SessionUpdateInput, SessionUncheckedUpdateInput]
	SessionDeleteArgs     query.DeleteArgs[SessionSelect, SessionInclude, SessionWhereUniqueInput]
	SessionCreateManyArgs query.CreateManyArgs[SessionCreateManyInput]
	SessionUpdateManyArgs query.UpdateManyArgs[SessionUpdateManyMutationInput, SessionWhereInput]
	SessionDeleteManyArgs query.DeleteManyArgs[SessionWhereInput]
	SessionGroupByArgs    query.GroupByArgs[SessionWhereInput, SessionOrderByScalarInput, SessionScalarFieldEnum, SessionScalarWhereWithAggregatesInput]
)

// =============================================================================
// Session descriptor
// =============================================================================

var sessionModel = &Model{
	Name:       "Session",
	Table:      "sessions",
	PrimaryKey: []string{"id"},
	Uniques:    [][]string{{"sessionToken"}},
	Fields: []Field{
		{Name: "id", Column: "id", Type: TypeString, ID: true, Default: "cuid()", Format: FormatCUID},
		{Name: "sessionToken", Column: "session_token", Type: TypeString, Unique: true},
		{Name: "userId", Column: "user_id", Type: TypeString, Format: FormatCUID, ForeignKey: true},
		{Name: "expires", Column: "expires", Type: TypeDateTime},
	},
	Relations: []Relation{
		{Name: "user", Model: "User", Kind: ToOne, Fields: []string{"userId"}, References: []string{"id"}, OnDelete: "CASCADE"},
	},
	shapes: map[Shape]func() any{
		ShapeRecord:                    ctor[Session](),
		ShapePartial:                   ctor[SessionPartial](),
		ShapeOptionalDefaults:          ctor[SessionOptionalDefaults](),
		ShapeSelect:                    ctor[SessionSelect](),
		ShapeInclude:                   ctor[SessionInclude](),
		ShapeWhere:                     ctor[SessionWhereInput](),
		ShapeWhereUnique:               ctor[SessionWhereUniqueInput](),
		ShapeOrderBy:                   ctor[SessionOrderByWithRelationInput](),
		ShapeScalarWhereWithAggregates: ctor[SessionScalarWhereWithAggregatesInput](),
		ShapeCreateInput:               ctor[SessionCreateInput](),
		ShapeUncheckedCreateInput:      ctor[SessionUncheckedCreateInput](),
		ShapeUpdateInput:               ctor[SessionUpdateInput](),
		ShapeUncheckedUpdateInput:      ctor[SessionUncheckedUpdateInput](),
		ShapeCreateManyInput:           ctor[SessionCreateManyInput](),
		ShapeUpdateManyMutationInput:   ctor[SessionUpdateManyMutationInput](),
		ShapeFindUniqueArgs:            ctor[SessionFindUniqueArgs](),
		ShapeFindFirstArgs:             ctor[SessionFindFirstArgs](),
		ShapeFindManyArgs:              ctor[SessionFindManyArgs](),
		ShapeCreateArgs:                ctor[SessionCreateArgs](),
		ShapeUpdateArgs:                ctor[SessionUpdateArgs](),
		ShapeUpsertArgs:                ctor[SessionUpsertArgs](),
		ShapeDeleteArgs:                ctor[SessionDeleteArgs](),
		ShapeCreateManyArgs:            ctor[SessionCreateManyArgs](),
		ShapeUpdateManyArgs:            ctor[SessionUpdateManyArgs](),
		ShapeDeleteManyArgs:            ctor[SessionDeleteManyArgs](),
		ShapeGroupByArgs:               ctor[SessionGroupByArgs](),
	},
}
