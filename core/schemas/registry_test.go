package schemas

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/validation"
)

func requireIssues(t *testing.T, err error) validation.Issues {
	t.Helper()
	require.Error(t, err)
	issues, ok := validation.AsIssues(err)
	require.True(t, ok, "expected validation issues, got %v", err)
	require.NotEmpty(t, issues)
	return issues
}

func findIssue(issues validation.Issues, path string) (validation.Issue, bool) {
	for _, i := range issues {
		if i.Path == path {
			return i, true
		}
	}
	return validation.Issue{}, false
}

func TestRegistry_Models(t *testing.T) {
	r := NewRegistry()

	names := make([]string, 0)
	for _, m := range r.Models() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{
		"User", "Info", "Account", "Session", "VerificationToken", "Vote", "Category",
		"NewsItem", "Poll", "Blog", "PollOption", "Author", "BlogLike", "BlogAuthor",
	}, names)

	m, err := r.Model("blogauthor")
	require.NoError(t, err)
	assert.Equal(t, "BlogAuthor", m.Name)

	_, err = r.Model("Comment")
	assert.ErrorIs(t, err, ErrModelNotFound)
}

func TestRegistry_New(t *testing.T) {
	r := Default()

	v, err := r.New("Poll", ShapeCreateArgs)
	require.NoError(t, err)
	assert.IsType(t, &PollCreateArgs{}, v)

	_, err = r.New("VerificationToken", ShapeInclude)
	assert.ErrorIs(t, err, ErrShapeNotFound)

	_, err = r.New("Poll", Shape("aggregateArgs"))
	assert.ErrorIs(t, err, ErrShapeNotFound)

	_, err = r.New("Comment", ShapeRecord)
	assert.ErrorIs(t, err, ErrModelNotFound)
}

func TestRegistry_EveryShapeDecodesAnEmptyObject(t *testing.T) {
	for _, m := range Default().Models() {
		for _, shape := range m.Shapes() {
			v, err := m.New(shape)
			require.NoError(t, err, "%s.%s", m.Name, shape)
			assert.NoError(t, query.DecodeStrict([]byte(`{}`), v), "%s.%s", m.Name, shape)
		}
	}
}

func TestRegistry_ShapesPerModel(t *testing.T) {
	for _, m := range Default().Models() {
		want := len(AllShapes())
		if len(m.Relations) == 0 {
			want--
		}
		assert.Len(t, m.Shapes(), want, m.Name)
	}
}

func TestRegistry_ParseUnknownKey(t *testing.T) {
	_, err := Default().Parse("Category", ShapeWhere, []byte(`{"title": "x"}`))
	issues := requireIssues(t, err)
	assert.Equal(t, validation.CodeUnrecognizedKeys, issues[0].Code)
	assert.Equal(t, "title", issues[0].Param)
}

func TestRegistry_ParseMalformed(t *testing.T) {
	_, err := Default().Parse("Category", ShapeWhere, []byte(`{"name": `))
	issues := requireIssues(t, err)
	assert.Equal(t, validation.CodeInvalidJSON, issues[0].Code)

	_, err = Default().Parse("Category", ShapeRecord, []byte(`{"name": 12}`))
	issues = requireIssues(t, err)
	assert.Equal(t, validation.CodeInvalidType, issues[0].Code)
	assert.Equal(t, "name", issues[0].Path)
}

func TestRegistry_ParseRecord(t *testing.T) {
	_, err := Default().Parse("User", ShapeRecord, []byte(`{}`))
	issues := requireIssues(t, err)
	for _, path := range []string{"id", "role", "createdAt", "updatedAt"} {
		issue, ok := findIssue(issues, path)
		require.True(t, ok, path)
		assert.Equal(t, validation.CodeRequired, issue.Code)
	}

	user := fakeUser()
	data, err := json.Marshal(user)
	require.NoError(t, err)

	v, err := Default().Parse("user", ShapeRecord, data)
	require.NoError(t, err)
	got := v.(*User)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, *user.Email, *got.Email)
	assert.True(t, user.CreatedAt.Equal(got.CreatedAt))
}

func TestRegistry_Describe(t *testing.T) {
	ds := Default().Describe()
	require.Len(t, ds, 14)

	byName := make(map[string]Descriptor, len(ds))
	for _, d := range ds {
		byName[d.Name] = d
	}

	assert.Equal(t, []string{"id", "email"}, byName["User"].UniqueKeys)
	assert.Equal(t, []string{"id", "provider_providerAccountId"}, byName["Account"].UniqueKeys)
	assert.Equal(t, []string{"identifier_token", "token"}, byName["VerificationToken"].UniqueKeys)
	assert.Equal(t, []string{"id", "optionId_userId", "optionId_voterToken"}, byName["Vote"].UniqueKeys)
	assert.NotNil(t, byName["VerificationToken"].Relations)
	assert.NotContains(t, byName["VerificationToken"].Shapes, ShapeInclude)

	data, err := json.Marshal(byName["Poll"])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"categoryId","column":"category_id"`)
	assert.Contains(t, string(data), `"onDelete":"RESTRICT"`)
}

// =============================================================================
// Descriptor consistency
// =============================================================================

func jsonNames(t reflect.Type) []string {
	out := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		out = append(out, name)
	}
	return out
}

func TestDescriptor_MatchesRecordShapes(t *testing.T) {
	for _, m := range Default().Models() {
		want := make([]string, len(m.Fields))
		for i, f := range m.Fields {
			want[i] = f.Name
		}

		for _, shape := range []Shape{ShapeRecord, ShapePartial, ShapeOptionalDefaults, ShapeUncheckedCreateInput} {
			v, err := m.New(shape)
			require.NoError(t, err)
			assert.Equal(t, want, jsonNames(reflect.TypeOf(v).Elem()), "%s.%s", m.Name, shape)
		}
	}
}

func TestDescriptor_Relations(t *testing.T) {
	r := Default()
	for _, m := range r.Models() {
		fks := make(map[string]bool)
		for _, rel := range m.Relations {
			target, err := r.Model(rel.Model)
			require.NoError(t, err, "%s.%s", m.Name, rel.Name)

			if !rel.Owns() {
				continue
			}
			require.Len(t, rel.References, len(rel.Fields))
			for i, name := range rel.Fields {
				f, ok := m.Field(name)
				require.True(t, ok, "%s.%s", m.Name, name)
				assert.True(t, f.ForeignKey, "%s.%s", m.Name, name)
				assert.Equal(t, rel.Optional, f.Nullable, "%s.%s", m.Name, name)
				fks[name] = true

				ref, ok := target.Field(rel.References[i])
				require.True(t, ok)
				assert.Equal(t, ref.Format, f.Format, "%s.%s", m.Name, name)
			}
		}
		for _, f := range m.Fields {
			if f.ForeignKey {
				assert.True(t, fks[f.Name], "%s.%s has no owning relation", m.Name, f.Name)
			}
		}
	}
}

func TestDescriptor_BackRelations(t *testing.T) {
	r := Default()
	for _, m := range r.Models() {
		for _, rel := range m.Relations {
			if rel.Owns() {
				continue
			}
			target, err := r.Model(rel.Model)
			require.NoError(t, err)

			found := false
			for _, back := range target.Relations {
				if back.Model == m.Name && back.Owns() {
					found = true
				}
			}
			assert.True(t, found, "%s.%s has no owning side", m.Name, rel.Name)
		}
	}
}

func TestParseShape(t *testing.T) {
	s, ok := ParseShape("FINDMANYARGS")
	assert.True(t, ok)
	assert.Equal(t, ShapeFindManyArgs, s)

	_, ok = ParseShape("aggregate")
	assert.False(t, ok)
}
