// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"rossimethod/internal/domain/entity"
)

// --- Input DTOs ---

// CreatePreferenceInput defines the buyer data collected by the checkout form.
type CreatePreferenceInput struct {
	Name    string
	Surname string
	Email   string
	Phone   string
	Country string
	City    string
}

// --- Output DTOs ---

// CreatePreferenceOutput describes where the buyer should be sent next.
// When the payment provider is unavailable the flow degrades to a demo
// preference instead of failing, and Fallback records that it did.
type CreatePreferenceOutput struct {
	PreferenceID string
	RedirectURL  string
	IsDemo       bool
	Fallback     bool
}

// CheckoutError carries a user-facing classification of a failed checkout.
type CheckoutError struct {
	Message     string
	SuggestDemo bool
}

func (e *CheckoutError) Error() string {
	return e.Message
}

// CheckoutUsecase creates payment preferences for the course purchase flow.
type CheckoutUsecase interface {
	CreatePreference(ctx context.Context, input CreatePreferenceInput) (*CreatePreferenceOutput, error)
}

// Buyer converts the input into a domain buyer.
func (input CreatePreferenceInput) Buyer() entity.Buyer {
	return entity.Buyer{
		Name:    input.Name,
		Surname: input.Surname,
		Email:   input.Email,
		Phone:   input.Phone,
		Country: input.Country,
		City:    input.City,
	}
}
