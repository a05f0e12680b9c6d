package handler

import (
	"log/slog"
	"net/http"

	"rossimethod/internal/delivery/http/response"
	"rossimethod/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for webhook and redirect endpoints.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// webhookRequest is the MercadoPago notification payload.
type webhookRequest struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Webhook handles provider payment notifications. The provider retries on
// non-2xx answers, so only persistent failures return an error status.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	var req webhookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Notificación inválida")
	}

	if err := h.uc.HandleWebhook(c.Request().Context(), usecase.WebhookInput{
		Type:      req.Type,
		PaymentID: req.Data.ID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

type redirectResponse struct {
	Status        string `json:"status"`
	CustomerEmail string `json:"customer_email,omitempty"`
	EmailSent     bool   `json:"email_sent"`
}

// Success handles the buyer returning from an approved payment. Fulfillment
// problems never fail this page; the payment is already confirmed.
func (h *PaymentHandler) Success(c echo.Context) error {
	output, err := h.uc.ConfirmRedirect(c.Request().Context(), usecase.RedirectInput{
		PaymentID:         c.QueryParam("payment_id"),
		Status:            c.QueryParam("status"),
		ExternalReference: c.QueryParam("external_reference"),
		PreferenceID:      c.QueryParam("preference_id"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "¡Pago confirmado! Revisá tu email."
	if !output.Fulfilled {
		message = "¡Pago confirmado! El email de acceso está pendiente."
	}

	return response.Success(c, http.StatusOK, redirectResponse{
		Status:        output.Status,
		CustomerEmail: output.CustomerEmail,
		EmailSent:     output.Fulfilled,
	}, message)
}

// Failure handles the buyer returning from a rejected payment.
func (h *PaymentHandler) Failure(c echo.Context) error {
	return response.Success(c, http.StatusOK, redirectResponse{
		Status: "failure",
	}, "El pago no pudo completarse. Podés intentar de nuevo.")
}

// Pending handles the buyer returning from a payment still in review.
func (h *PaymentHandler) Pending(c echo.Context) error {
	return response.Success(c, http.StatusOK, redirectResponse{
		Status: "pending",
	}, "Tu pago está en revisión. Te avisamos por email cuando se acredite.")
}

// demoSimulateRequest drives the demo checkout completion.
type demoSimulateRequest struct {
	PreferenceID  string `json:"preference_id" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	Outcome       string `json:"outcome" validate:"required,oneof=success failure"`
}

// SimulateDemo completes or abandons a demo checkout.
func (h *PaymentHandler) SimulateDemo(c echo.Context) error {
	var req demoSimulateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de simulación inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if req.Outcome != "success" {
		return response.Success(c, http.StatusOK, map[string]any{
			"simulated": false,
			"outcome":   req.Outcome,
		}, "Pago demo cancelado")
	}

	output, err := h.uc.SimulateDemoPayment(c.Request().Context(), usecase.SimulateDemoInput{
		PreferenceID:  req.PreferenceID,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"simulated":      true,
		"payment_id":     output.PaymentID,
		"customer_email": output.CustomerEmail,
		"recorded":       output.Recorded,
	}, "Pago demo completado")
}
