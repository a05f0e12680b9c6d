package usecase

import (
	"context"

	"rossimethod/internal/domain/entity"
)

// --- Input DTOs ---

// FulfillInput identifies a paid purchase whose materials must be delivered.
type FulfillInput struct {
	PaymentID string
	Buyer     entity.Buyer
}

// CoachingRequestInput carries the personalized coaching contact form.
type CoachingRequestInput struct {
	Name    string
	Email   string
	Phone   string
	Goal    string
	Message string
}

// --- Output DTOs ---

// FulfillOutput reports which emails went out for a payment.
type FulfillOutput struct {
	AlreadySent     bool
	BuyerEmailID    string
	OperatorEmailID string
}

// FulfillmentUsecase sends course access emails and operator notifications.
type FulfillmentUsecase interface {
	// Fulfill delivers the course materials for a payment at most once.
	Fulfill(ctx context.Context, input FulfillInput) (*FulfillOutput, error)

	// SendCoachingRequest forwards a coaching inquiry to the operator.
	SendCoachingRequest(ctx context.Context, input CoachingRequestInput) error
}
