package mail

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rossimethod/config"
	"rossimethod/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T, handler http.Handler) service.Mailer {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Resend: &config.ResendConfig{
			APIKey:     "re_test_key",
			APIBaseURL: server.URL,
		},
	}

	return New(cfg)
}

func TestSend_Success(t *testing.T) {
	var captured map[string]any

	mailer := newTestMailer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-abc"}`))
	}))

	id, err := mailer.Send(t.Context(), &service.Email{
		From:    "Método Rossi <hola@rossimethod.com>",
		To:      []string{"ana@example.com"},
		Subject: "Tu acceso al Full Planche Workshop",
		HTML:    "<h1>¡Bienvenida!</h1>",
	})
	require.NoError(t, err)
	assert.Equal(t, "email-abc", id)

	assert.Equal(t, "Método Rossi <hola@rossimethod.com>", captured["from"])
	assert.Equal(t, []any{"ana@example.com"}, captured["to"])
	assert.Equal(t, "Tu acceso al Full Planche Workshop", captured["subject"])
}

func TestSend_ProviderError(t *testing.T) {
	mailer := newTestMailer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Invalid from address"}`))
	}))

	_, err := mailer.Send(t.Context(), &service.Email{
		From:    "broken",
		To:      []string{"ana@example.com"},
		Subject: "x",
		HTML:    "x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestSend_MissingID(t *testing.T) {
	mailer := newTestMailer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := mailer.Send(t.Context(), &service.Email{
		From:    "hola@rossimethod.com",
		To:      []string{"ana@example.com"},
		Subject: "x",
		HTML:    "x",
	})
	require.Error(t, err)
}
