package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims is the validated content of an access or refresh token.
type TokenClaims struct {
	UserID uuid.UUID
	Type   string
}

// TokenService issues and validates the JWTs gating "mi área".
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
