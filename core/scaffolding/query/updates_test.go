package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldUpdate(t *testing.T) {
	var u FieldUpdate[string]

	require.NoError(t, DecodeStrict([]byte(`"ada"`), &u))
	v, ok := u.Value()
	assert.True(t, ok)
	assert.Equal(t, "ada", v)
	assert.Equal(t, "ada", u.ValidationValue())

	require.NoError(t, DecodeStrict([]byte(`{"set":"grace"}`), &u))
	v, _ = u.Value()
	assert.Equal(t, "grace", v)

	require.NoError(t, DecodeStrict([]byte(`{}`), &u))
	_, ok = u.Value()
	assert.False(t, ok)
	assert.Nil(t, u.ValidationValue())

	assert.Error(t, DecodeStrict([]byte(`null`), &u))
	assert.Error(t, DecodeStrict([]byte(`{"set":null}`), &u))
	assert.Error(t, DecodeStrict([]byte(`{"push":"x"}`), &u))
}

func TestNullableFieldUpdate(t *testing.T) {
	var u NullableFieldUpdate[string]

	require.NoError(t, DecodeStrict([]byte(`null`), &u))
	assert.True(t, u.Set.IsNull())
	assert.Nil(t, u.ValidationValue())

	require.NoError(t, DecodeStrict([]byte(`{"set":null}`), &u))
	assert.True(t, u.Set.IsNull())

	require.NoError(t, DecodeStrict([]byte(`{"set":"x"}`), &u))
	assert.Equal(t, "x", u.ValidationValue())

	require.NoError(t, DecodeStrict([]byte(`"y"`), &u))
	assert.Equal(t, "y", u.Set.Value)
}

func TestNumberFieldUpdate(t *testing.T) {
	var u IntFieldUpdate

	require.NoError(t, DecodeStrict([]byte(`4`), &u))
	assert.Equal(t, 4, *u.Set)

	require.NoError(t, DecodeStrict([]byte(`{"increment":2}`), &u))
	assert.Nil(t, u.Set)
	assert.Equal(t, 2, *u.Increment)
	assert.Nil(t, u.ValidationValue())

	err := DecodeStrict([]byte(`{"increment":2,"decrement":1}`), &u)
	assert.ErrorIs(t, err, ErrMultipleOperations)

	assert.Error(t, DecodeStrict([]byte(`null`), &u))
	assert.Error(t, DecodeStrict([]byte(`1.5`), &u))

	var f FloatFieldUpdate
	require.NoError(t, DecodeStrict([]byte(`{"multiply":1.5}`), &f))
	assert.InDelta(t, 1.5, *f.Multiply, 0.0001)
}

func TestNullableNumberFieldUpdate(t *testing.T) {
	var u NullableIntFieldUpdate

	require.NoError(t, DecodeStrict([]byte(`null`), &u))
	assert.True(t, u.Set.IsNull())

	require.NoError(t, DecodeStrict([]byte(`{"set":null}`), &u))
	assert.True(t, u.Set.IsNull())

	require.NoError(t, DecodeStrict([]byte(`{"divide":2}`), &u))
	assert.Equal(t, 2, *u.Divide)

	err := DecodeStrict([]byte(`{"set":1,"increment":1}`), &u)
	assert.ErrorIs(t, err, ErrMultipleOperations)
}

func TestValidationTypes(t *testing.T) {
	for _, typ := range ValidationTypes() {
		_, ok := typ.(interface{ ValidationValue() any })
		assert.True(t, ok, "%T", typ)
	}
}
