package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

func (c color) IsValid() bool {
	return c == "red" || c == "blue"
}

type wrapped struct {
	v *string
}

func (w wrapped) ValidationValue() any {
	if w.v == nil {
		return nil
	}
	return *w.v
}

type profile struct {
	Bio string `json:"bio" validate:"max=5"`
}

type account struct {
	ID      string   `json:"id" validate:"required,cuid"`
	Email   string   `json:"email" validate:"required,email"`
	Slug    string   `json:"slug" validate:"omitempty,slug"`
	Color   color    `json:"color" validate:"enum"`
	Nick    wrapped  `json:"nick" validate:"omitempty,min=3"`
	Profile *profile `json:"profile"`
	Tags    []string `json:"tags" validate:"omitempty,dive,min=2"`
}

type lookup struct {
	ID    *string `json:"id"`
	Email *string `json:"email"`
}

type lookupArgs struct {
	Where lookup `json:"where"`
}

func lookupRule(sl validator.StructLevel) {
	l := sl.Current().Interface().(lookup)
	if l.ID == nil && l.Email == nil {
		sl.ReportError(l, "", "", UniqueSelectorTag, "id email")
	}
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New(
		WithValuerTypes(wrapped{}),
		WithStructRule(lookupRule, lookup{}),
	)
	require.NoError(t, err)
	return v
}

func validAccount() account {
	return account{
		ID:      "cjld2cjxh0000qzrmn831i7rn",
		Email:   gofakeit.Email(),
		Slug:    "hello-world",
		Color:   "red",
		Nick:    wrapped{v: Ptr("abcd")},
		Profile: &profile{Bio: "hi"},
		Tags:    []string{"go", "sql"},
	}
}

func TestValidator_Valid(t *testing.T) {
	v := newTestValidator(t)
	acc := validAccount()
	assert.NoError(t, v.Struct(acc))
	assert.NoError(t, v.Struct(&acc))
}

func TestValidator_Issues(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name   string
		mutate func(*account)
		path   string
		code   string
	}{
		{"bad cuid", func(a *account) { a.ID = "nope" }, "id", CodeInvalidString},
		{"missing email", func(a *account) { a.Email = "" }, "email", CodeRequired},
		{"bad email", func(a *account) { a.Email = "not-an-email" }, "email", CodeInvalidString},
		{"bad slug", func(a *account) { a.Slug = "Hello World" }, "slug", CodeInvalidString},
		{"unknown enum", func(a *account) { a.Color = "green" }, "color", CodeInvalidEnumValue},
		{"short wrapped value", func(a *account) { a.Nick = wrapped{v: Ptr("ab")} }, "nick", CodeTooSmall},
		{"nested", func(a *account) { a.Profile.Bio = "toolong" }, "profile.bio", CodeTooBig},
		{"list element", func(a *account) { a.Tags = []string{"go", "x"} }, "tags[1]", CodeTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := validAccount()
			tt.mutate(&acc)

			err := v.Struct(acc)
			require.Error(t, err)

			issues, ok := AsIssues(err)
			require.True(t, ok)
			require.Len(t, issues, 1)
			assert.Equal(t, tt.path, issues[0].Path)
			assert.Equal(t, tt.code, issues[0].Code)
			assert.NotEmpty(t, issues[0].Message)
		})
	}
}

func TestValidator_AbsentWrappedValueSkipped(t *testing.T) {
	v := newTestValidator(t)
	acc := validAccount()
	acc.Nick = wrapped{}
	assert.NoError(t, v.Struct(acc))
}

type eitherProfile struct {
	Short *profile `path:"inline"`
}

type envelope struct {
	Data eitherProfile `json:"data"`
}

func TestValidator_InlineFieldsLeftOutOfPath(t *testing.T) {
	v := newTestValidator(t)

	err := v.Struct(envelope{Data: eitherProfile{Short: &profile{Bio: "toolong"}}})
	issues, ok := AsIssues(err)
	require.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, "data.bio", issues[0].Path)
}

func TestValidator_StructRule(t *testing.T) {
	v := newTestValidator(t)

	err := v.Struct(lookup{})
	issues, ok := AsIssues(err)
	require.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, "", issues[0].Path)
	assert.Equal(t, CodeUniqueSelector, issues[0].Code)
	assert.Equal(t, "at least one of id, email is required", issues[0].Message)

	err = v.Struct(lookupArgs{})
	issues, ok = AsIssues(err)
	require.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, "where", issues[0].Path)

	assert.NoError(t, v.Struct(lookupArgs{Where: lookup{Email: Ptr(gofakeit.Email())}}))
}

func TestValidator_Var(t *testing.T) {
	v := newTestValidator(t)
	assert.NoError(t, v.Var("cjld2cjxh0000qzrmn831i7rn", "cuid"))

	issues, ok := AsIssues(v.Var("x", "cuid"))
	require.True(t, ok)
	assert.Equal(t, CodeInvalidString, issues[0].Code)
}

func TestIssues_Error(t *testing.T) {
	is := Issues{
		{Path: "id", Message: "Id is required"},
		{Message: "malformed"},
	}
	assert.Equal(t, "id: Id is required; malformed", is.Error())
	assert.Equal(t, []string{"id", ""}, is.Paths())
}

func TestFromDecodeError(t *testing.T) {
	var target struct {
		Age int `json:"age"`
	}

	err := json.Unmarshal([]byte(`{"age":}`), &target)
	issues := FromDecodeError(err)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeInvalidJSON, issues[0].Code)

	err = json.Unmarshal([]byte(`{"age":"ten"}`), &target)
	issues = FromDecodeError(err)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeInvalidType, issues[0].Code)
	assert.Equal(t, "age", issues[0].Path)
	assert.Equal(t, "expected integer, received string", issues[0].Message)

	dec := json.NewDecoder(strings.NewReader(`{"zzz":1}`))
	dec.DisallowUnknownFields()
	issues = FromDecodeError(dec.Decode(&target))
	require.Len(t, issues, 1)
	assert.Equal(t, CodeUnrecognizedKeys, issues[0].Code)
	assert.Equal(t, "zzz", issues[0].Param)

	assert.Nil(t, FromDecodeError(nil))
}

func TestIsCUID(t *testing.T) {
	tests := map[string]bool{
		"cjld2cjxh0000qzrmn831i7rn": true,
		"C12345678":                 true,
		"c1234567":                  false,
		"cabc defgh":                false,
		"cabc-defgh":                false,
		"xjld2cjxh0000":             false,
		"":                          false,
	}
	for in, want := range tests {
		assert.Equal(t, want, IsCUID(in), in)
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Hello World!":   "hello-world",
		"Crème Brûlée":   "creme-brulee",
		"--a__b--":       "a-b",
		"already-a-slug": "already-a-slug",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}

	assert.True(t, IsSlug("hello-world"))
	assert.False(t, IsSlug("Hello"))
	assert.False(t, IsSlug(""))
}

func TestCamelCaseToTitleCase(t *testing.T) {
	tests := map[string]string{
		"providerAccountId": "Provider Account Id",
		"XMLParser":         "XML Parser",
		"refresh_token":     "Refresh Token",
		"_count":            "Count",
		"id":                "Id",
		"":                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, CamelCaseToTitleCase(in), in)
	}
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, 3, ValueOr(nil, 3))
	assert.Equal(t, 5, ValueOr(Ptr(5), 3))
}
