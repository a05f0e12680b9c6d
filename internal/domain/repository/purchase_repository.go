package repository

import (
	"context"
	"errors"

	"rossimethod/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPurchaseNotFound is returned when no purchase matches the query.
var ErrPurchaseNotFound = errors.New("purchase not found")

// ErrDuplicatePurchase is returned when a purchase with the same payment id
// already exists. Webhook redeliveries depend on it to stay idempotent.
var ErrDuplicatePurchase = errors.New("purchase already recorded for payment")

// PurchaseRepository defines the operations for compras persistence.
type PurchaseRepository interface {
	// Create persists a new purchase row.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByUser retrieves the purchases owned by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error)

	// FindByPaymentID retrieves a purchase by its provider payment id.
	FindByPaymentID(ctx context.Context, paymentID string) (*entity.Purchase, error)
}
