package usecase

import (
	"context"
)

// --- Input DTOs ---

// WebhookInput carries the provider notification payload.
type WebhookInput struct {
	Type      string
	PaymentID string
}

// RedirectInput carries the query parameters MercadoPago appends when it
// sends the buyer back to the site.
type RedirectInput struct {
	PaymentID         string
	Status            string
	ExternalReference string
	PreferenceID      string
}

// SimulateDemoInput drives the demo checkout completion.
type SimulateDemoInput struct {
	PreferenceID  string
	CustomerEmail string
}

// --- Output DTOs ---

// RedirectOutput summarizes a confirmed return from the payment provider.
type RedirectOutput struct {
	Status        string
	CustomerEmail string
	Fulfilled     bool
}

// SimulateDemoOutput reports the outcome of a simulated demo payment.
type SimulateDemoOutput struct {
	PaymentID     string
	CustomerEmail string
	Recorded      bool
}

// PaymentUsecase processes provider notifications and buyer returns.
type PaymentUsecase interface {
	// HandleWebhook verifies a payment notification against the provider and
	// records the purchase. Notifications for unknown users fail loudly so the
	// provider retries them.
	HandleWebhook(ctx context.Context, input WebhookInput) error

	// ConfirmRedirect handles the buyer landing back on the site after paying.
	ConfirmRedirect(ctx context.Context, input RedirectInput) (*RedirectOutput, error)

	// SimulateDemoPayment completes a demo checkout without a provider.
	SimulateDemoPayment(ctx context.Context, input SimulateDemoInput) (*SimulateDemoOutput, error)
}
