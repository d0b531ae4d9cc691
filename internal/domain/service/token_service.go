package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService abstracts validation of the JWTs issued by the marketplace
// backend. This service never issues customer tokens in production;
// GenerateTokens exists for tooling and tests.
type TokenService interface {
	// GenerateTokens creates a signed access and refresh token pair for a user.
	GenerateTokens(userID int64, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
