package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithAggregates(t *testing.T) {
	var f StringWithAggregatesFilter
	require.NoError(t, DecodeStrict([]byte(`{"startsWith":"a","_count":{"gt":2},"_max":"zed"}`), &f))

	assert.Equal(t, "a", *f.Filter.StartsWith)
	assert.Equal(t, 2, *f.Count.Gt)
	assert.Equal(t, "zed", *f.Max.Equals)
	assert.Nil(t, f.Min)

	out, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"startsWith":"a","_count":{"gt":2},"_max":{"equals":"zed"}}`, string(out))
}

func TestWithAggregates_BareValue(t *testing.T) {
	var f StringWithAggregatesFilter
	require.NoError(t, DecodeStrict([]byte(`"ada"`), &f))
	assert.Equal(t, "ada", *f.Filter.Equals)
	assert.Nil(t, f.Count)
}

func TestWithAggregates_Rejects(t *testing.T) {
	var f StringWithAggregatesFilter
	assert.Error(t, DecodeStrict([]byte(`{"_avg":{"gt":1}}`), &f))
	assert.Error(t, DecodeStrict([]byte(`{"_count":"many"}`), &f))
	assert.Error(t, DecodeStrict([]byte(`{"bogus":1}`), &f))
}

func TestWithNumericAggregates(t *testing.T) {
	var f IntWithAggregatesFilter
	require.NoError(t, DecodeStrict([]byte(`{"gte":1,"_avg":{"lt":2.5},"_sum":{"gt":10}}`), &f))

	assert.Equal(t, 1, *f.Filter.Gte)
	assert.InDelta(t, 2.5, *f.Avg.Lt, 0.0001)
	assert.Equal(t, 10, *f.Sum.Gt)

	var nf IntNullableWithAggregatesFilter
	require.NoError(t, DecodeStrict([]byte(`null`), &nf))
	assert.True(t, nf.Filter.IsNullMatch())
}

func TestEnumWithAggregatesFilter(t *testing.T) {
	var f EnumWithAggregatesFilter[testRole]
	require.NoError(t, DecodeStrict([]byte(`{"in":["USER","ADMIN"],"_min":"USER"}`), &f))
	assert.Len(t, f.Filter.In, 2)
	assert.Equal(t, testRole("USER"), *f.Min.Equals)
}
