package middleware

import (
	"strings"

	"rossimethod/internal/delivery/http/response"
	"rossimethod/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is where Authenticate stores the authenticated user's id.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Falta el encabezado de autorización")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "El token debe ser de tipo Bearer")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Sesión inválida o expirada")
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}
