package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, VerifyPassword(hash, "s3cret-pass"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestGenerateTempPassword(t *testing.T) {
	p1, err := GenerateTempPassword(12)
	require.NoError(t, err)
	p2, err := GenerateTempPassword(12)
	require.NoError(t, err)

	assert.Len(t, p1, 12)
	assert.Len(t, p2, 12)
	assert.NotEqual(t, p1, p2)

	// Zero length falls back to the default
	p3, err := GenerateTempPassword(0)
	require.NoError(t, err)
	assert.Len(t, p3, 12)
}
