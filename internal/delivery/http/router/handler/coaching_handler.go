package handler

import (
	"log/slog"
	"net/http"

	"rossimethod/internal/delivery/http/response"
	"rossimethod/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CoachingHandler receives personalized coaching inquiries.
type CoachingHandler struct {
	uc     usecase.FulfillmentUsecase
	logger *slog.Logger
}

// NewCoachingHandler is the constructor for CoachingHandler, injected by Fx.
func NewCoachingHandler(uc usecase.FulfillmentUsecase, logger *slog.Logger) *CoachingHandler {
	return &CoachingHandler{
		uc:     uc,
		logger: logger,
	}
}

// coachingRequest mirrors the coaching contact form field names.
type coachingRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Telefono string `json:"telefono" validate:"required"`
	Objetivo string `json:"objetivo"`
	Mensaje  string `json:"mensaje" validate:"required"`
}

// Send forwards the coaching inquiry to the operator.
func (h *CoachingHandler) Send(c echo.Context) error {
	var req coachingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de consulta inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SendCoachingRequest(c.Request().Context(), usecase.CoachingRequestInput{
		Name:    req.Nombre,
		Email:   req.Email,
		Phone:   req.Telefono,
		Goal:    req.Objetivo,
		Message: req.Mensaje,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"sent": true}, "Consulta enviada")
}
