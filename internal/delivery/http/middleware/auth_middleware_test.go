package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lelekart/config"
	mockService "lelekart/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret"
	cfg.SecretKey.Refresh = "test_refresh_secret"

	return cfg
}

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_OptionalAuthenticate_Anonymous(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc, testAuthConfig())

	c, _ := newAuthTestContext(t, "")

	var nextCalled bool
	handler := mw.OptionalAuthenticate(func(c echo.Context) error {
		nextCalled = true
		_, authenticated := GetUserID(c)
		assert.False(t, authenticated)

		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_OptionalAuthenticate_ValidToken(t *testing.T) {
	cfg := testAuthConfig()
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc, cfg)

	token := &jwt.Token{
		Valid:  true,
		Claims: jwt.MapClaims{"sub": "42"},
	}
	tokenSvc.EXPECT().
		ValidateToken("valid-token", cfg.SecretKey.Access).
		Return(token, nil)

	c, _ := newAuthTestContext(t, "Bearer valid-token")

	var nextCalled bool
	handler := mw.OptionalAuthenticate(func(c echo.Context) error {
		nextCalled = true
		userID, authenticated := GetUserID(c)
		assert.True(t, authenticated)
		assert.Equal(t, int64(42), userID)

		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_OptionalAuthenticate_InvalidToken(t *testing.T) {
	cfg := testAuthConfig()
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc, cfg)

	tokenSvc.EXPECT().
		ValidateToken("expired-token", cfg.SecretKey.Access).
		Return(nil, errors.New("token is expired"))

	c, rec := newAuthTestContext(t, "Bearer expired-token")

	handler := mw.OptionalAuthenticate(func(c echo.Context) error {
		t.Fatal("next handler should not run for an invalid token")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_OptionalAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc, testAuthConfig())

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	handler := mw.OptionalAuthenticate(func(c echo.Context) error {
		t.Fatal("next handler should not run for a malformed header")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_OptionalAuthenticate_BadSubject(t *testing.T) {
	cfg := testAuthConfig()
	tokenSvc := mockService.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc, cfg)

	token := &jwt.Token{
		Valid:  true,
		Claims: jwt.MapClaims{"sub": "not-a-number"},
	}
	tokenSvc.EXPECT().
		ValidateToken("odd-token", cfg.SecretKey.Access).
		Return(token, nil)

	c, rec := newAuthTestContext(t, "Bearer odd-token")

	handler := mw.OptionalAuthenticate(func(c echo.Context) error {
		t.Fatal("next handler should not run for a malformed subject")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
