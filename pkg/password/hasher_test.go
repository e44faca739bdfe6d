package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Hasher_CheckMatchesOnlyOriginalPassword(t *testing.T) {
	hasher := NewHasher()

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	require.NotEqual(t, "admin123", hash)

	assert.True(t, hasher.Check("admin123", hash))
	assert.False(t, hasher.Check("admin124", hash))
	assert.False(t, hasher.Check("", hash))
}

func Test_Hasher_SamePasswordProducesDifferentHashes(t *testing.T) {
	hasher := NewHasher()

	first, err := hasher.Hash("admin123")
	require.NoError(t, err)
	second, err := hasher.Hash("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
