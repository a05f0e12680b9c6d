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

func newCheckoutTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/preference", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCheckoutHandler_CreatePreference_Success(t *testing.T) {
	uc := mockUsecase.NewMockCheckoutUsecase(t)
	uc.EXPECT().
		CreatePreference(mock.Anything, usecase.CreatePreferenceInput{
			Name:    "Lucas",
			Surname: "Pérez",
			Email:   "lucas@example.com",
			Phone:   "+54 11 5555-5555",
			Country: "Argentina",
			City:    "Buenos Aires",
		}).
		Return(&usecase.CreatePreferenceOutput{
			PreferenceID: "pref-123",
			RedirectURL:  "https://www.mercadopago.com/init/pref-123",
		}, nil)

	handler := NewCheckoutHandler(uc, slog.New(slog.DiscardHandler))
	c, rec := newCheckoutTestContext(t, `{
		"nombre": "Lucas",
		"apellido": "Pérez",
		"email": "lucas@example.com",
		"telefono": "+54 11 5555-5555",
		"pais": "Argentina",
		"ciudad": "Buenos Aires"
	}`)

	require.NoError(t, handler.CreatePreference(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"preference_id":"pref-123"`)
	assert.Contains(t, rec.Body.String(), `"is_demo":false`)
}

func TestCheckoutHandler_CreatePreference_ValidationError(t *testing.T) {
	uc := mockUsecase.NewMockCheckoutUsecase(t)

	handler := NewCheckoutHandler(uc, slog.New(slog.DiscardHandler))
	c, _ := newCheckoutTestContext(t, `{"nombre": "Lucas", "email": "not-an-email"}`)

	err := handler.CreatePreference(c)
	require.Error(t, err)
	uc.AssertNotCalled(t, "CreatePreference")
}

func TestCheckoutHandler_CreatePreference_ProviderRejected(t *testing.T) {
	uc := mockUsecase.NewMockCheckoutUsecase(t)
	uc.EXPECT().
		CreatePreference(mock.Anything, mock.AnythingOfType("usecase.CreatePreferenceInput")).
		Return(nil, &usecase.CheckoutError{
			Message:     "Credenciales de MercadoPago inválidas. Probá el modo demo.",
			SuggestDemo: true,
		})

	handler := NewCheckoutHandler(uc, slog.New(slog.DiscardHandler))
	c, rec := newCheckoutTestContext(t, `{"nombre": "Lucas", "email": "lucas@example.com"}`)

	require.NoError(t, handler.CreatePreference(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"suggest_demo":true`)
	assert.Contains(t, rec.Body.String(), "PAYMENT_PROVIDER_REJECTED")
}
