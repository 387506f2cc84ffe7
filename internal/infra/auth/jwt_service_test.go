package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"dating/config"
	domainerrors "dating/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_token_secret_key_very_long_for_testing_purposes"

func testConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Token = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	tokenService, err := NewJWTService(testConfig(testSecret))
	require.NoError(t, err)

	token, err := tokenService.Issue("account-1", "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := tokenService.Validate(token.Value)
	require.NoError(t, err)
	assert.Equal(t, "account-1", claims.AccountID())
	assert.Equal(t, "alice", claims.DisplayName)
}

func TestJWTService_RejectsFlippedSignature(t *testing.T) {
	tokenService, err := NewJWTService(testConfig(testSecret))
	require.NoError(t, err)

	token, err := tokenService.Issue("account-1", "alice")
	require.NoError(t, err)

	parts := strings.Split(token.Value, ".")
	require.Len(t, parts, 3)
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	sig[0] ^= 0x01
	parts[2] = base64.RawURLEncoding.EncodeToString(sig)

	claims, err := tokenService.Validate(strings.Join(parts, "."))
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	tokenService := newJWTService([]byte(testSecret), time.Minute, "dating", func() time.Time { return clock })

	token, err := tokenService.Issue("account-1", "alice")
	require.NoError(t, err)

	_, err = tokenService.Validate(token.Value)
	require.NoError(t, err)

	clock = issuedAt.Add(2 * time.Minute)
	claims, err := tokenService.Validate(token.Value)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_RejectsOtherKeyAndAlgorithm(t *testing.T) {
	tokenService, err := NewJWTService(testConfig(testSecret))
	require.NoError(t, err)

	foreign := newJWTService([]byte("another_secret_key_that_is_long_enough_!!"), time.Hour, "", time.Now)
	token, err := foreign.Issue("account-1", "alice")
	require.NoError(t, err)
	_, err = tokenService.Validate(token.Value)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	// Same key, weaker algorithm.
	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "account-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = tokenService.Validate(hs256)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_RejectsMalformedAndUnexpiring(t *testing.T) {
	tokenService, err := NewJWTService(testConfig(testSecret))
	require.NoError(t, err)

	_, err = tokenService.Validate("clearly-not-a-jwt-token-format")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject: "account-1",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = tokenService.Validate(noExp)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_MissingOrShortSecret(t *testing.T) {
	for _, secret := range []string{"", "short"} {
		tokenService, err := NewJWTService(testConfig(secret))
		assert.Error(t, err)
		assert.Nil(t, tokenService)
		assert.Contains(t, err.Error(), "jwt signing key must be at least")
	}
}
