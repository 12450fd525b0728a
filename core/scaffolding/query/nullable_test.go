package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable(t *testing.T) {
	var holder struct {
		Name Nullable[string] `json:"name"`
	}

	require.NoError(t, DecodeStrict([]byte(`{}`), &holder))
	assert.False(t, holder.Name.Set)
	assert.True(t, holder.Name.IsZero())

	require.NoError(t, DecodeStrict([]byte(`{"name":null}`), &holder))
	assert.True(t, holder.Name.IsNull())
	assert.Nil(t, holder.Name.Ptr())

	require.NoError(t, DecodeStrict([]byte(`{"name":"ada"}`), &holder))
	assert.True(t, holder.Name.Valid)
	assert.Equal(t, "ada", *holder.Name.Ptr())

	assert.Error(t, DecodeStrict([]byte(`{"name":1}`), &holder))
}

func TestOneOrMany(t *testing.T) {
	var list OneOrMany[string]

	require.NoError(t, DecodeStrict([]byte(`"a"`), &list))
	assert.Equal(t, OneOrMany[string]{"a"}, list)

	require.NoError(t, DecodeStrict([]byte(`["a","b"]`), &list))
	assert.Equal(t, OneOrMany[string]{"a", "b"}, list)

	require.NoError(t, DecodeStrict([]byte(`null`), &list))
	assert.Nil(t, list)

	assert.Error(t, DecodeStrict([]byte(`[1]`), &list))
}

func TestOneOrMany_Objects(t *testing.T) {
	var list OneOrMany[IntFilter]
	require.NoError(t, DecodeStrict([]byte(`{"gt":1}`), &list))
	require.Len(t, list, 1)
	assert.Equal(t, 1, *list[0].Gt)

	assert.Error(t, DecodeStrict([]byte(`[{"gt":1},{"bogus":2}]`), &list))
}

type checkedShape struct {
	Title  string    `json:"title"`
	Author *struct{} `json:"author,omitempty"`
}

type uncheckedShape struct {
	Title    string `json:"title"`
	AuthorID string `json:"authorId"`
}

func TestCheckedOrUnchecked(t *testing.T) {
	var cu CheckedOrUnchecked[checkedShape, uncheckedShape]

	require.NoError(t, DecodeStrict([]byte(`{"title":"x","author":{}}`), &cu))
	require.NotNil(t, cu.Checked)
	assert.Nil(t, cu.Unchecked)

	require.NoError(t, DecodeStrict([]byte(`{"title":"x","authorId":"a1"}`), &cu))
	assert.Nil(t, cu.Checked)
	require.NotNil(t, cu.Unchecked)
	assert.Equal(t, "a1", cu.Unchecked.AuthorID)

	out, err := json.Marshal(cu)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"x","authorId":"a1"}`, string(out))
}

func TestCheckedOrUnchecked_Errors(t *testing.T) {
	var cu CheckedOrUnchecked[checkedShape, uncheckedShape]

	err := DecodeStrict([]byte(`{"title":"x","author":{},"authorId":"a1"}`), &cu)
	require.Error(t, err)

	err = DecodeStrict([]byte(`{"title":1}`), &cu)
	var te *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &te)

	err = DecodeStrict([]byte(`"x"`), &cu)
	assert.ErrorAs(t, err, &te)
}
