package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/pollschema/sdk/validation"
)

type testFindMany = FindManyArgs[testSelect, NoInclude, testWhere, testOrderBy, testWhere, testRole]

type testOrderBy struct {
	Name SortOrder `json:"name,omitempty" validate:"omitempty,enum"`
}

func decodeAndValidate(t *testing.T, input string, target any) error {
	t.Helper()
	if err := DecodeStrict([]byte(input), target); err != nil {
		return validation.FromDecodeError(err)
	}
	v, err := validation.New(validation.WithValuerTypes(ValidationTypes()...))
	require.NoError(t, err)
	return v.Struct(target)
}

func TestFindManyArgs(t *testing.T) {
	var args testFindMany
	err := decodeAndValidate(t, `{
		"where": {"name": {"contains": "a"}},
		"orderBy": {"name": "desc"},
		"take": -10,
		"skip": 5,
		"distinct": "USER"
	}`, &args)
	require.NoError(t, err)

	assert.Equal(t, -10, *args.Take)
	assert.Equal(t, 5, *args.Skip)
	require.Len(t, args.OrderBy, 1)
	assert.Equal(t, Desc, args.OrderBy[0].Name)
	assert.Equal(t, OneOrMany[testRole]{"USER"}, args.Distinct)
}

func TestFindManyArgs_Issues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  string
		code  string
	}{
		{"take too big", `{"take":101}`, "take", validation.CodeTooBig},
		{"take too small", `{"take":-101}`, "take", validation.CodeTooSmall},
		{"negative skip", `{"skip":-1}`, "skip", validation.CodeTooSmall},
		{"unknown distinct", `{"distinct":["OWNER"]}`, "distinct[0]", validation.CodeInvalidEnumValue},
		{"bad order", `{"orderBy":[{"name":"sideways"}]}`, "orderBy[0].name", validation.CodeInvalidEnumValue},
		{"select with include", `{"select":{"name":true},"include":{}}`, "include", validation.CodeConflict},
		{"unknown key", `{"limit":1}`, "", validation.CodeUnrecognizedKeys},
		{"wrong type", `{"take":"ten"}`, "take", validation.CodeInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var args testFindMany
			err := decodeAndValidate(t, tt.input, &args)
			require.Error(t, err)

			issues, ok := validation.AsIssues(err)
			require.True(t, ok, "%v", err)
			require.NotEmpty(t, issues)
			assert.Equal(t, tt.path, issues[0].Path)
			assert.Equal(t, tt.code, issues[0].Code)
		})
	}
}

func TestGroupByArgs(t *testing.T) {
	type groupBy = GroupByArgs[testWhere, testOrderBy, testRole, testWhere]

	var args groupBy
	require.NoError(t, decodeAndValidate(t, `{"by":"ADMIN","having":{"age":{"gt":1}}}`, &args))
	assert.Equal(t, OneOrMany[testRole]{"ADMIN"}, args.By)

	args = groupBy{}
	err := decodeAndValidate(t, `{}`, &args)
	issues, ok := validation.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "by", issues[0].Path)
	assert.Equal(t, validation.CodeRequired, issues[0].Code)
}

func TestCreateManyArgs(t *testing.T) {
	var args CreateManyArgs[testWhere]
	require.NoError(t, decodeAndValidate(t, `{"data":{"name":"a"},"skipDuplicates":true}`, &args))
	assert.Len(t, args.Data, 1)
	assert.True(t, *args.SkipDuplicates)

	args = CreateManyArgs[testWhere]{}
	require.NoError(t, decodeAndValidate(t, `{"data":[{},{}]}`, &args))
	assert.Len(t, args.Data, 2)
}
