package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("strike")
	require.NoError(t, err)
	assert.NotEqual(t, "strike", hash)

	assert.True(t, VerifyPassword(hash, "strike"))
	assert.False(t, VerifyPassword(hash, "spare"))
	assert.False(t, VerifyPassword("not-a-hash", "strike"))
}
