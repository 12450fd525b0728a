package cryptids

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, IDLength)
	for _, r := range id {
		assert.Contains(t, IDAlphabet, string(r))
	}
}

func TestGenerateCustomID_Errors(t *testing.T) {
	_, err := GenerateCustomID("a", 10)
	assert.ErrorIs(t, err, ErrAlphabetTooShort)

	_, err = GenerateCustomID("ab", 0)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestGenerateCUID(t *testing.T) {
	shape := regexp.MustCompile(`^c[0-9a-z]{24}$`)

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id, err := GenerateCUID()
		require.NoError(t, err)
		require.Regexp(t, shape, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate cuid %s", id)
		seen[id] = struct{}{}
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "000a", pad("a", 4))
	assert.Equal(t, "cdef", pad("abcdef", 4))
}
