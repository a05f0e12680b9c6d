package repository

import (
	"context"
	"errors"
)

// ErrFulfillmentNotFound is returned when no delivery record exists for a
// payment id.
var ErrFulfillmentNotFound = errors.New("fulfillment record not found")

// FulfillmentRepository records fulfillment attempts keyed by provider
// payment id, so that the webhook path and the redirect-return path cannot
// both email the course materials for the same payment.
type FulfillmentRepository interface {
	// TryAcquire atomically claims the right to fulfill paymentID. It returns
	// false when another attempt already claimed it.
	TryAcquire(ctx context.Context, paymentID string) (bool, error)

	// MarkSent records that the materials were delivered for paymentID.
	MarkSent(ctx context.Context, paymentID string) error

	// MarkFailed records that delivery failed for paymentID.
	MarkFailed(ctx context.Context, paymentID string) error
}
