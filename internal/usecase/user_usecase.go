package usecase

import (
	"context"

	"rossimethod/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after registration or login.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// MyAreaOutput bundles the signed-in user with their purchase history.
type MyAreaOutput struct {
	User      *entity.User
	Purchases []*entity.Purchase
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	GetMyArea(ctx context.Context, userID uuid.UUID) (*MyAreaOutput, error)
}
