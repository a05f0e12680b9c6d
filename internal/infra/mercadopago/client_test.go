package mercadopago

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rossimethod/config"
	"rossimethod/internal/domain/entity"
	"rossimethod/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log/slog"
)

func newTestClient(t *testing.T, handler http.Handler) (service.PaymentGateway, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		App: &config.AppConfig{BaseURL: "https://rossimethod.example"},
		MercadoPago: &config.MercadoPagoConfig{
			AccessToken: "TEST-TOKEN",
			APIBaseURL:  server.URL,
		},
	}

	return New(cfg, slog.New(slog.DiscardHandler)), server
}

func TestCreatePreference_Success(t *testing.T) {
	var captured map[string]any

	gateway, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout/preferences", r.URL.Path)
		assert.Equal(t, "Bearer TEST-TOKEN", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Idempotency-Key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"pref-123","init_point":"https://mp.example/init","sandbox_init_point":"https://mp.example/sandbox"}`))
	}))

	result, err := gateway.CreatePreference(t.Context(), &service.PreferenceRequest{
		Title:             "Full Planche Workshop",
		Description:       "Programa completo de planche",
		AmountCents:       29900,
		Currency:          "ARS",
		Buyer:             entity.Buyer{Name: "Ana", Surname: "Pérez", Email: "ana@example.com", Phone: "1155550000", Country: "Argentina", City: "Buenos Aires"},
		ExternalReference: "1700000000000-ana@example.com",
		IdempotencyKey:    "key-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "pref-123", result.ID)
	assert.Equal(t, "https://mp.example/init", result.InitPoint)

	items, ok := captured["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	item, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 299.0, item["unit_price"], 0.001)
	assert.Equal(t, "ARS", item["currency_id"])

	backURLs, ok := captured["back_urls"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://rossimethod.example/payment/success", backURLs["success"])
	assert.Equal(t, "https://rossimethod.example/api/webhooks/mercadopago", captured["notification_url"])
	assert.Equal(t, "1700000000000-ana@example.com", captured["external_reference"])
}

func TestCreatePreference_GatewayError(t *testing.T) {
	gateway, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid access token","error":"invalid_token"}`))
	}))

	_, err := gateway.CreatePreference(t.Context(), &service.PreferenceRequest{
		Title:       "Full Planche Workshop",
		AmountCents: 29900,
		Currency:    "ARS",
		Buyer:       entity.Buyer{Email: "ana@example.com"},
	})
	require.Error(t, err)

	var gatewayErr *service.GatewayError
	require.True(t, errors.As(err, &gatewayErr))
	assert.Equal(t, http.StatusUnauthorized, gatewayErr.StatusCode)
	assert.Equal(t, "invalid_token", gatewayErr.Code)
	assert.Equal(t, "invalid access token", gatewayErr.Message)
}

func TestCreatePreference_MissingID(t *testing.T) {
	gateway, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := gateway.CreatePreference(t.Context(), &service.PreferenceRequest{
		Title:       "Full Planche Workshop",
		AmountCents: 29900,
		Currency:    "ARS",
		Buyer:       entity.Buyer{Email: "ana@example.com"},
	})
	require.Error(t, err)

	var gatewayErr *service.GatewayError
	require.True(t, errors.As(err, &gatewayErr))
}

func TestGetPayment_Success(t *testing.T) {
	gateway, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/payments/12345", r.URL.Path)
		assert.Equal(t, "Bearer TEST-TOKEN", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":12345,"status":"approved","transaction_amount":299,"external_reference":"1700000000000-ana@example.com","payer":{"email":"ana@example.com"}}`))
	}))

	detail, err := gateway.GetPayment(t.Context(), "12345")
	require.NoError(t, err)

	assert.Equal(t, "12345", detail.ID)
	assert.Equal(t, service.PaymentStatusApproved, detail.Status)
	assert.Equal(t, int64(29900), detail.AmountCents)
	assert.Equal(t, "1700000000000-ana@example.com", detail.ExternalReference)
	assert.Equal(t, "ana@example.com", detail.PayerEmail)
}

func TestGetPayment_RoundsFractionalAmount(t *testing.T) {
	// 19.99 has no exact binary representation; 19.99*100 is 1998.999...
	gateway, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":555,"status":"approved","transaction_amount":19.99,"external_reference":"1700000000000-ana@example.com"}`))
	}))

	detail, err := gateway.GetPayment(t.Context(), "555")
	require.NoError(t, err)

	assert.Equal(t, int64(1999), detail.AmountCents)
}

func TestGetPayment_NotFound(t *testing.T) {
	gateway, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Payment not found","error":"not_found"}`))
	}))

	_, err := gateway.GetPayment(t.Context(), "99999")
	require.Error(t, err)

	var gatewayErr *service.GatewayError
	require.True(t, errors.As(err, &gatewayErr))
	assert.Equal(t, http.StatusNotFound, gatewayErr.StatusCode)
}
