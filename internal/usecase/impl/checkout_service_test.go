package impl

import (
	"context"
	"testing"

	domainerrors "rossimethod/internal/domain/errors"
	"rossimethod/internal/domain/service"
	mockSvc "rossimethod/internal/mocks/service"
	"rossimethod/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCheckoutInput() usecase.CreatePreferenceInput {
	return usecase.CreatePreferenceInput{
		Name:    "Ana",
		Surname: "Pérez",
		Email:   "ana@example.com",
		Phone:   "1155550000",
		Country: "Argentina",
		City:    "Buenos Aires",
	}
}

func newCheckoutService(gateway service.PaymentGateway) usecase.CheckoutUsecase {
	return NewCheckoutService(CheckoutServiceParams{
		Gateway: gateway,
		Config:  newTestConfig(),
		Logger:  newDiscardLogger(),
	})
}

func TestCheckoutService_CreatePreference_ValidationFailure(t *testing.T) {
	checkout := newCheckoutService(nil)

	input := validCheckoutInput()
	input.Email = ""

	_, err := checkout.CreatePreference(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCheckoutService_CreatePreference_DemoMode(t *testing.T) {
	checkout := newCheckoutService(nil)

	output, err := checkout.CreatePreference(context.Background(), validCheckoutInput())
	require.NoError(t, err)

	assert.True(t, output.IsDemo)
	assert.False(t, output.Fallback)
	assert.Regexp(t, `^demo-\d+$`, output.PreferenceID)
	assert.Contains(t, output.RedirectURL, "/payment/demo?preference_id=demo-")
	assert.Contains(t, output.RedirectURL, "customer_email=ana%40example.com")
}

func TestCheckoutService_CreatePreference_Success(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	checkout := newCheckoutService(gateway)

	gateway.EXPECT().
		CreatePreference(mock.Anything, mock.MatchedBy(func(req *service.PreferenceRequest) bool {
			return req.Title == "Full Planche Workshop" &&
				req.AmountCents == 29900 &&
				req.Currency == "ARS" &&
				req.ExternalReference == req.IdempotencyKey &&
				req.Buyer.Email == "ana@example.com"
		})).
		Return(&service.PreferenceResult{
			ID:        "pref-123",
			InitPoint: "https://mp.example/init",
		}, nil)

	output, err := checkout.CreatePreference(context.Background(), validCheckoutInput())
	require.NoError(t, err)

	assert.Equal(t, "pref-123", output.PreferenceID)
	assert.Equal(t, "https://mp.example/init", output.RedirectURL)
	assert.False(t, output.IsDemo)
	assert.False(t, output.Fallback)
}

func TestCheckoutService_CreatePreference_SandboxInitPoint(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	checkout := newCheckoutService(gateway)

	gateway.EXPECT().
		CreatePreference(mock.Anything, mock.AnythingOfType("*service.PreferenceRequest")).
		Return(&service.PreferenceResult{
			ID:               "pref-456",
			SandboxInitPoint: "https://mp.example/sandbox",
		}, nil)

	output, err := checkout.CreatePreference(context.Background(), validCheckoutInput())
	require.NoError(t, err)

	assert.Equal(t, "https://mp.example/sandbox", output.RedirectURL)
}

func TestCheckoutService_CreatePreference_GatewayRejection(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	checkout := newCheckoutService(gateway)

	gateway.EXPECT().
		CreatePreference(mock.Anything, mock.AnythingOfType("*service.PreferenceRequest")).
		Return(nil, &service.GatewayError{
			StatusCode: 401,
			Code:       "invalid_token",
			Message:    "invalid access token",
		})

	_, err := checkout.CreatePreference(context.Background(), validCheckoutInput())
	require.Error(t, err)

	var checkoutErr *usecase.CheckoutError
	require.True(t, errors.As(err, &checkoutErr))
	assert.True(t, checkoutErr.SuggestDemo)
	assert.Contains(t, checkoutErr.Message, "Credenciales")
}

func TestCheckoutService_CreatePreference_BackURLRejection(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	checkout := newCheckoutService(gateway)

	gateway.EXPECT().
		CreatePreference(mock.Anything, mock.AnythingOfType("*service.PreferenceRequest")).
		Return(nil, &service.GatewayError{
			StatusCode: 400,
			Message:    "back_url.success must be defined",
		})

	_, err := checkout.CreatePreference(context.Background(), validCheckoutInput())
	require.Error(t, err)

	var checkoutErr *usecase.CheckoutError
	require.True(t, errors.As(err, &checkoutErr))
	assert.True(t, checkoutErr.SuggestDemo)
	assert.Contains(t, checkoutErr.Message, "retorno")
}

func TestCheckoutService_CreatePreference_NetworkFailureFallsBackToDemo(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	checkout := newCheckoutService(gateway)

	gateway.EXPECT().
		CreatePreference(mock.Anything, mock.AnythingOfType("*service.PreferenceRequest")).
		Return(nil, errors.New("connection refused"))

	output, err := checkout.CreatePreference(context.Background(), validCheckoutInput())
	require.NoError(t, err)

	assert.True(t, output.IsDemo)
	assert.True(t, output.Fallback)
	assert.Regexp(t, `^demo-fallback-\d+$`, output.PreferenceID)
}
