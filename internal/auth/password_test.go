package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same password must hash to different strings")
	assert.True(t, VerifyPassword(first, "secret123"))
	assert.True(t, VerifyPassword(second, "secret123"))
}

func TestVerifyPassword_Wrong(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, VerifyPassword(hash, "secret124"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	assert.False(t, VerifyPassword("", "secret123"))
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "secret123"))
}

func TestVerifyDummy_AlwaysFalse(t *testing.T) {
	t.Parallel()

	assert.False(t, VerifyDummy("anything"))
	assert.False(t, VerifyDummy("not-a-real-password"))
}
