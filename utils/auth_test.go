package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	salt2, err := GenerateSalt()
	require.NoError(t, err)

	// 16 random bytes, hex-encoded
	assert.Len(t, salt1, 32)
	assert.NotEqual(t, salt1, salt2)
}

func TestHashPasswordDeterministic(t *testing.T) {
	salt := "aabbccddeeff00112233445566778899"

	hash1 := HashPassword("secret123", salt)
	hash2 := HashPassword("secret123", salt)
	assert.Equal(t, hash1, hash2)

	// 64-byte derived key, hex-encoded
	assert.Len(t, hash1, 128)

	// A different salt or password changes the hash
	assert.NotEqual(t, hash1, HashPassword("secret123", "99887766554433221100ffeeddccbbaa"))
	assert.NotEqual(t, hash1, HashPassword("secret124", salt))
}

func TestVerifyPassword(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash := HashPassword("correct horse battery staple", salt)

	assert.True(t, VerifyPassword("correct horse battery staple", salt, hash))
	assert.False(t, VerifyPassword("correct horse battery stapl", salt, hash))
	assert.False(t, VerifyPassword("", salt, hash))
}

func TestJWTRoundTrip(t *testing.T) {
	JwtKey = []byte("test-secret")

	token, err := GenerateJWT("user-123", "alice@example.com")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.ID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	JwtKey = []byte("test-secret")
	token, err := GenerateJWT("user-123", "alice@example.com")
	require.NoError(t, err)

	JwtKey = []byte("other-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	JwtKey = []byte("test-secret")
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
