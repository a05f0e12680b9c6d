// Package mail implements the Mailer collaborator against the Resend REST API.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"rossimethod/config"
	"rossimethod/internal/domain/service"

	"github.com/pkg/errors"
)

const requestTimeout = 10 * time.Second

type resendMailer struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New builds a Resend-backed mailer. Callers must only construct it when an
// API key is configured; with no mailer wired, fulfillment reports the email
// channel as unavailable instead of silently dropping deliveries.
func New(cfg *config.Config) service.Mailer {
	return &resendMailer{
		baseURL:    cfg.Resend.APIBaseURL,
		apiKey:     cfg.Resend.APIKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type sendBody struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send delivers a single email and returns the provider message id.
func (m *resendMailer) Send(ctx context.Context, email *service.Email) (string, error) {
	payload, err := json.Marshal(sendBody{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode email")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "failed to build email request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "email request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read email response")
	}

	var decoded sendResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", errors.Wrap(err, "failed to decode email response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("email provider returned %d: %s", resp.StatusCode, decoded.Message)
	}

	if decoded.ID == "" {
		return "", errors.New("email response carried no id")
	}

	return decoded.ID, nil
}
