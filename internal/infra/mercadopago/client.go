// Package mercadopago implements the PaymentGateway collaborator against the
// MercadoPago REST API.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"rossimethod/config"
	"rossimethod/internal/domain/entity"
	"rossimethod/internal/domain/service"

	"github.com/pkg/errors"
)

const requestTimeout = 10 * time.Second

// client talks to MercadoPago over HTTPS with a bearer access token.
type client struct {
	baseURL     string
	accessToken string
	appBaseURL  string
	httpClient  *http.Client
	logger      *slog.Logger
}

// New builds the gateway from configuration. Callers must only construct it
// when an access token is configured; without one, checkout runs in demo mode
// and never reaches this client.
func New(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	return &client{
		baseURL:     cfg.MercadoPago.APIBaseURL,
		accessToken: cfg.MercadoPago.AccessToken,
		appBaseURL:  cfg.App.BaseURL,
		httpClient:  &http.Client{Timeout: requestTimeout},
		logger:      logger,
	}
}

type preferenceItem struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	CurrencyID  string  `json:"currency_id"`
}

type preferencePayer struct {
	Name    string `json:"name,omitempty"`
	Surname string `json:"surname,omitempty"`
	Email   string `json:"email"`
	Phone   struct {
		AreaCode string `json:"area_code"`
		Number   string `json:"number"`
	} `json:"phone"`
	Address struct {
		CityName    string `json:"city_name"`
		CountryName string `json:"country_name"`
	} `json:"address"`
}

type backURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type preferenceBody struct {
	Items             []preferenceItem `json:"items"`
	Payer             preferencePayer  `json:"payer"`
	BackURLs          backURLs         `json:"back_urls"`
	NotificationURL   string           `json:"notification_url"`
	ExternalReference string           `json:"external_reference"`
}

type preferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
	Message          string `json:"message"`
	Error            string `json:"error"`
}

// CreatePreference opens a checkout preference with MercadoPago.
func (c *client) CreatePreference(ctx context.Context, req *service.PreferenceRequest) (*service.PreferenceResult, error) {
	body := preferenceBody{
		Items: []preferenceItem{{
			Title:       req.Title,
			Description: req.Description,
			Quantity:    1,
			UnitPrice:   entity.PriceFromCents(req.AmountCents),
			CurrencyID:  req.Currency,
		}},
		BackURLs: backURLs{
			Success: c.appBaseURL + "/payment/success",
			Failure: c.appBaseURL + "/payment/failure",
			Pending: c.appBaseURL + "/payment/pending",
		},
		NotificationURL:   c.appBaseURL + "/api/webhooks/mercadopago",
		ExternalReference: req.ExternalReference,
	}
	body.Payer.Name = req.Buyer.Name
	body.Payer.Surname = req.Buyer.Surname
	body.Payer.Email = req.Buyer.Email
	body.Payer.Phone.Number = req.Buyer.Phone
	body.Payer.Address.CityName = req.Buyer.City
	body.Payer.Address.CountryName = req.Buyer.Country

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode preference")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build preference request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	// The idempotency key keeps provider-side retries from creating duplicates.
	httpReq.Header.Set("X-Idempotency-Key", req.IdempotencyKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "preference request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read preference response")
	}

	var decoded preferenceResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode preference response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("MercadoPago rejected preference",
			slog.Int("status", resp.StatusCode),
			slog.String("message", decoded.Message),
		)

		return nil, &service.GatewayError{
			StatusCode: resp.StatusCode,
			Code:       decoded.Error,
			Message:    decoded.Message,
		}
	}

	if decoded.ID == "" {
		return nil, &service.GatewayError{
			StatusCode: resp.StatusCode,
			Message:    "preference response carried no id",
		}
	}

	return &service.PreferenceResult{
		ID:               decoded.ID,
		InitPoint:        decoded.InitPoint,
		SandboxInitPoint: decoded.SandboxInitPoint,
	}, nil
}

type paymentResponse struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	TransactionAmount float64     `json:"transaction_amount"`
	ExternalReference string      `json:"external_reference"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// GetPayment fetches the details of a payment by id.
func (c *client) GetPayment(ctx context.Context, paymentID string) (*service.PaymentDetail, error) {
	url := fmt.Sprintf("%s/v1/payments/%s", c.baseURL, paymentID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build payment request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "payment request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read payment response")
	}

	var decoded paymentResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode payment response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &service.GatewayError{
			StatusCode: resp.StatusCode,
			Code:       decoded.Error,
			Message:    decoded.Message,
		}
	}

	return &service.PaymentDetail{
		ID:                decoded.ID.String(),
		Status:            decoded.Status,
		// Rounded, not truncated: 19.99 is stored as 1998.999... in binary.
		AmountCents:       int64(math.Round(decoded.TransactionAmount * 100)),
		ExternalReference: decoded.ExternalReference,
		PayerEmail:        decoded.Payer.Email,
	}, nil
}
