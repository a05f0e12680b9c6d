// Package service defines the domain service interfaces implemented by the infra layer.
package service

import (
	"context"
	"fmt"

	"rossimethod/internal/domain/entity"
)

// PreferenceRequest carries the order data needed to open a provider checkout.
// Transient; it only lives for the duration of preference creation.
type PreferenceRequest struct {
	Title             string
	Description       string
	AmountCents       int64
	Currency          string
	Buyer             entity.Buyer
	ExternalReference string
	IdempotencyKey    string
}

// PreferenceResult is the provider's answer to a preference creation.
type PreferenceResult struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}

// PaymentDetail is the provider's view of a payment, fetched by id when a
// webhook notification arrives.
type PaymentDetail struct {
	ID                string
	Status            string
	AmountCents       int64
	ExternalReference string
	PayerEmail        string
}

// PaymentStatusApproved is the provider status that triggers fulfillment.
const PaymentStatusApproved = "approved"

// GatewayError is a non-2xx answer from the payment provider. The checkout
// flow classifies it by message instead of failing the buyer outright.
type GatewayError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway returned %d: %s %s", e.StatusCode, e.Code, e.Message)
}

// PaymentGateway is the outbound payment provider collaborator.
type PaymentGateway interface {
	// CreatePreference opens a checkout preference with the provider.
	CreatePreference(ctx context.Context, req *PreferenceRequest) (*PreferenceResult, error)

	// GetPayment fetches the details of a payment by provider id.
	GetPayment(ctx context.Context, paymentID string) (*PaymentDetail, error)
}
