package auth

import (
	"testing"

	"lelekart/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := int64(42)
	roles := []string{"buyer"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token against the access secret
	token, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)

	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "42", sub)
	assert.Equal(t, "access", claims["type"])

	// Validate refresh token against the refresh secret
	refreshParsed, err := jwtService.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	require.NoError(t, err)
	require.True(t, refreshParsed.Valid)

	refreshClaims, ok := refreshParsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", refreshClaims["type"])
	assert.NotContains(t, refreshClaims, "roles")
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(7, []string{"buyer"})
	require.NoError(t, err)

	token, err := jwtService.ValidateToken(accessToken, "some_other_secret")
	assert.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", cfg.SecretKey.Access)
	assert.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
