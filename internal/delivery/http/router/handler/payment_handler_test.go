package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rossimethod/internal/delivery/http/validator"
	mockUsecase "rossimethod/internal/mocks/usecase"
	"rossimethod/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPaymentHandler_Webhook_Acknowledged(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	uc.EXPECT().
		HandleWebhook(mock.Anything, usecase.WebhookInput{
			Type:      "payment",
			PaymentID: "987654321",
		}).
		Return(nil)

	handler := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))
	c, rec := newPaymentTestContext(t, http.MethodPost, "/api/webhooks/mercadopago",
		`{"type": "payment", "data": {"id": "987654321"}}`)

	require.NoError(t, handler.Webhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
}

func TestPaymentHandler_Webhook_UsecaseFailure(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	uc.EXPECT().
		HandleWebhook(mock.Anything, mock.AnythingOfType("usecase.WebhookInput")).
		Return(assert.AnError)

	handler := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))
	c, _ := newPaymentTestContext(t, http.MethodPost, "/api/webhooks/mercadopago",
		`{"type": "payment", "data": {"id": "987654321"}}`)

	err := handler.Webhook(c)
	require.Error(t, err)
}

func TestPaymentHandler_Success_EmailSent(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	uc.EXPECT().
		ConfirmRedirect(mock.Anything, usecase.RedirectInput{
			PaymentID:         "987654321",
			Status:            "approved",
			ExternalReference: "1756400000000-lucas@example.com",
			PreferenceID:      "pref-123",
		}).
		Return(&usecase.RedirectOutput{
			Status:        "approved",
			CustomerEmail: "lucas@example.com",
			Fulfilled:     true,
		}, nil)

	handler := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))
	c, rec := newPaymentTestContext(t, http.MethodGet,
		"/payment/success?payment_id=987654321&status=approved&external_reference=1756400000000-lucas%40example.com&preference_id=pref-123", "")

	require.NoError(t, handler.Success(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email_sent":true`)
	assert.Contains(t, rec.Body.String(), "Revisá tu email")
}

func TestPaymentHandler_Success_EmailPending(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	uc.EXPECT().
		ConfirmRedirect(mock.Anything, mock.AnythingOfType("usecase.RedirectInput")).
		Return(&usecase.RedirectOutput{
			Status:        "approved",
			CustomerEmail: "lucas@example.com",
			Fulfilled:     false,
		}, nil)

	handler := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))
	c, rec := newPaymentTestContext(t, http.MethodGet, "/payment/success?payment_id=987654321&status=approved", "")

	require.NoError(t, handler.Success(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email_sent":false`)
	assert.Contains(t, rec.Body.String(), "pendiente")
}

func TestPaymentHandler_Failure(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)

	handler := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))
	c, rec := newPaymentTestContext(t, http.MethodGet, "/payment/failure", "")

	require.NoError(t, handler.Failure(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"failure"`)
}

func TestPaymentHandler_SimulateDemo_Success(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)
	uc.EXPECT().
		SimulateDemoPayment(mock.Anything, usecase.SimulateDemoInput{
			PreferenceID:  "demo-1756400000000",
			CustomerEmail: "lucas@example.com",
		}).
		Return(&usecase.SimulateDemoOutput{
			PaymentID:     "demo-payment-1756400001000",
			CustomerEmail: "lucas@example.com",
			Recorded:      true,
		}, nil)

	handler := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))
	c, rec := newPaymentTestContext(t, http.MethodPost, "/payment/demo/simulate", `{
		"preference_id": "demo-1756400000000",
		"customer_email": "lucas@example.com",
		"outcome": "success"
	}`)

	require.NoError(t, handler.SimulateDemo(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"simulated":true`)
	assert.Contains(t, rec.Body.String(), `"recorded":true`)
}

func TestPaymentHandler_SimulateDemo_FailureOutcome(t *testing.T) {
	uc := mockUsecase.NewMockPaymentUsecase(t)

	handler := NewPaymentHandler(uc, slog.New(slog.DiscardHandler))
	c, rec := newPaymentTestContext(t, http.MethodPost, "/payment/demo/simulate", `{
		"preference_id": "demo-1756400000000",
		"customer_email": "lucas@example.com",
		"outcome": "failure"
	}`)

	require.NoError(t, handler.SimulateDemo(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"simulated":false`)
	uc.AssertNotCalled(t, "SimulateDemoPayment")
}
