// Package middleware contains the Echo middleware used by the HTTP delivery.
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"lelekart/config"
	"lelekart/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const contextKeyUserID = "userID"

// AuthMiddleware resolves the buyer identity from marketplace-issued JWTs.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// OptionalAuthenticate resolves the user ID when a Bearer token is present
// and lets the request through anonymously when the header is absent.
// A present-but-invalid token is rejected rather than downgraded, so a buyer
// with an expired session sees an auth error instead of silently losing
// personalization.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User ID missing from token"})
		}
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID format in token"})
		}

		c.Set(contextKeyUserID, userID)

		return next(c)
	}
}

// GetUserID extracts the authenticated user ID from echo.Context.
// The second return value is false for anonymous requests.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(contextKeyUserID).(int64)

	return userID, ok
}
