package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testWhere struct {
	Name *StringFilter `json:"name,omitempty"`
	Age  *IntFilter    `json:"age,omitempty"`
}

type testSelect struct {
	Name bool `json:"name,omitempty"`
}

func TestRelationFilter(t *testing.T) {
	var f RelationFilter[testWhere]

	require.NoError(t, DecodeStrict([]byte(`{"is":{"name":"ada"}}`), &f))
	require.NotNil(t, f.Is)
	assert.Equal(t, "ada", *f.Is.Name.Equals)
	assert.Nil(t, f.IsNot)

	require.NoError(t, DecodeStrict([]byte(`{"age":{"gt":3}}`), &f))
	require.NotNil(t, f.Is)
	assert.Equal(t, 3, *f.Is.Age.Gt)

	assert.Error(t, DecodeStrict([]byte(`null`), &f))
	assert.Error(t, DecodeStrict([]byte(`{"is":{"nope":1}}`), &f))
	assert.Error(t, DecodeStrict([]byte(`{"is":{},"name":"x"}`), &f))
}

func TestNullableRelationFilter(t *testing.T) {
	var f NullableRelationFilter[testWhere]

	require.NoError(t, DecodeStrict([]byte(`null`), &f))
	assert.True(t, f.IsNull)

	require.NoError(t, DecodeStrict([]byte(`{"is":null}`), &f))
	assert.True(t, f.IsNull)
	assert.Nil(t, f.Is)

	require.NoError(t, DecodeStrict([]byte(`{"isNot":null}`), &f))
	assert.True(t, f.IsNotNull)
	assert.False(t, f.IsNull)

	require.NoError(t, DecodeStrict([]byte(`{"name":"ada"}`), &f))
	require.NotNil(t, f.Is)
	assert.Equal(t, "ada", *f.Is.Name.Equals)

	assert.Error(t, DecodeStrict([]byte(`true`), &f))
}

func TestNullableRelationFilter_Marshal(t *testing.T) {
	out, err := json.Marshal(NullableRelationFilter[testWhere]{IsNull: true})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	out, err = json.Marshal(NullableRelationFilter[testWhere]{IsNotNull: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"isNot":null}`, string(out))
}

func TestListRelationFilter(t *testing.T) {
	var f ListRelationFilter[testWhere]
	require.NoError(t, DecodeStrict([]byte(`{"some":{"age":1},"none":{}}`), &f))
	assert.NotNil(t, f.Some)
	assert.NotNil(t, f.None)
	assert.Nil(t, f.Every)

	assert.Error(t, DecodeStrict([]byte(`{"any":{}}`), &f))
}

func TestRelation(t *testing.T) {
	var r Relation[Args[testSelect, NoInclude]]

	require.NoError(t, DecodeStrict([]byte(`true`), &r))
	assert.True(t, r.Enabled)
	assert.Nil(t, r.Args)

	require.NoError(t, DecodeStrict([]byte(`false`), &r))
	assert.True(t, r.IsZero())

	require.NoError(t, DecodeStrict([]byte(`{"select":{"name":true}}`), &r))
	assert.True(t, r.Enabled)
	require.NotNil(t, r.Args)
	assert.True(t, r.Args.Select.Name)

	assert.Error(t, DecodeStrict([]byte(`"yes"`), &r))
	assert.Error(t, DecodeStrict([]byte(`{"include":{"posts":true}}`), &r))
}

func TestRelation_OmittedWhenZero(t *testing.T) {
	var holder struct {
		Posts Relation[Args[testSelect, NoInclude]] `json:"posts,omitzero"`
	}
	out, err := json.Marshal(holder)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))

	holder.Posts.Enabled = true
	out, err = json.Marshal(holder)
	require.NoError(t, err)
	assert.JSONEq(t, `{"posts":true}`, string(out))
}
