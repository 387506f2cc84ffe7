package auth

import (
	"testing"

	"dating/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *argon2Hasher {
	// Cheap parameters keep the suite fast.
	return NewArgon2Hasher(&config.Config{
		Auth: &config.AuthConfig{Argon2Time: 1, Argon2Memory: 1024, Argon2Threads: 1},
	}).(*argon2Hasher)
}

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	salt, err := hasher.NewSalt()
	require.NoError(t, err)
	assert.Len(t, salt, saltLength)

	hash, err := hasher.Hash("pw1234", salt)
	require.NoError(t, err)
	assert.Len(t, hash, keyLength)
	assert.NotEqual(t, []byte("pw1234"), hash)

	assert.True(t, hasher.Check("pw1234", salt, hash))
	assert.False(t, hasher.Check("pw12345", salt, hash))
	assert.False(t, hasher.Check("", salt, hash))
}

func TestArgon2Hasher_SamePasswordDifferentSalts(t *testing.T) {
	hasher := newTestHasher()

	saltA, err := hasher.NewSalt()
	require.NoError(t, err)
	saltB, err := hasher.NewSalt()
	require.NoError(t, err)
	assert.NotEqual(t, saltA, saltB)

	hashA, err := hasher.Hash("pw1234", saltA)
	require.NoError(t, err)
	hashB, err := hasher.Hash("pw1234", saltB)
	require.NoError(t, err)

	assert.NotEqual(t, hashA, hashB)
	assert.False(t, hasher.Check("pw1234", saltA, hashB))
}

func TestArgon2Hasher_Deterministic(t *testing.T) {
	hasher := newTestHasher()
	salt := []byte("0123456789abcdef")

	first, err := hasher.Hash("secret", salt)
	require.NoError(t, err)
	second, err := hasher.Hash("secret", salt)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestArgon2Hasher_RejectsMissingSalt(t *testing.T) {
	hasher := newTestHasher()

	_, err := hasher.Hash("secret", nil)
	assert.Error(t, err)
	assert.False(t, hasher.Check("secret", nil, []byte("x")))
	assert.False(t, hasher.Check("secret", []byte("salt"), nil))
}

func TestNewArgon2Hasher_Defaults(t *testing.T) {
	hasher := NewArgon2Hasher(&config.Config{}).(*argon2Hasher)

	assert.Equal(t, defaultArgon2Time, hasher.time)
	assert.Equal(t, defaultArgon2Memory, hasher.memory)
	assert.Equal(t, defaultArgon2Threads, hasher.threads)
}
