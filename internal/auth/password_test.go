package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("p1", "pepper", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "p1", hash)

	assert.True(t, CheckPasswordHash("p1", "pepper", hash))
}

func TestCheckPasswordHash_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-password", "pepper", bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash("WRONG-password", "pepper", hash))
}

func TestCheckPasswordHash_WrongPepper(t *testing.T) {
	t.Parallel()

	// Pepper участвует в хеше: без него пароль не проходит
	hash, err := HashPassword("p1", "pepper-a", bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash("p1", "pepper-b", hash))
}

func TestHashPassword_SaltIsRandom(t *testing.T) {
	t.Parallel()

	// Одинаковые пароли дают разные хеши из-за случайной соли
	hash1, err := HashPassword("p1", "pepper", bcrypt.MinCost)
	require.NoError(t, err)
	hash2, err := HashPassword("p1", "pepper", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.True(t, CheckPasswordHash("p1", "pepper", hash1))
	assert.True(t, CheckPasswordHash("p1", "pepper", hash2))
}
