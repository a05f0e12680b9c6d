package handler

import (
	"log/slog"
	"net/http"

	"rossimethod/internal/delivery/http/response"
	"rossimethod/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the checkout endpoints.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// createPreferenceRequest mirrors the checkout form field names.
type createPreferenceRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido"`
	Email    string `json:"email" validate:"required,email"`
	Telefono string `json:"telefono"`
	Pais     string `json:"pais"`
	Ciudad   string `json:"ciudad"`
}

type createPreferenceResponse struct {
	PreferenceID string `json:"preference_id"`
	RedirectURL  string `json:"redirect_url"`
	IsDemo       bool   `json:"is_demo"`
	Fallback     bool   `json:"fallback"`
}

// CreatePreference handles the payment preference creation request.
func (h *CheckoutHandler) CreatePreference(c echo.Context) error {
	var req createPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de compra inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreatePreference(c.Request().Context(), usecase.CreatePreferenceInput{
		Name:    req.Nombre,
		Surname: req.Apellido,
		Email:   req.Email,
		Phone:   req.Telefono,
		Country: req.Pais,
		City:    req.Ciudad,
	})
	if err != nil {
		var checkoutErr *usecase.CheckoutError
		if errors.As(err, &checkoutErr) {
			return c.JSON(http.StatusBadGateway, response.Response{
				Success: false,
				Code:    http.StatusBadGateway,
				Message: checkoutErr.Message,
				Data:    map[string]bool{"suggest_demo": checkoutErr.SuggestDemo},
				Error: &response.ErrorInfo{
					Code: "PAYMENT_PROVIDER_REJECTED",
				},
			})
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, createPreferenceResponse{
		PreferenceID: output.PreferenceID,
		RedirectURL:  output.RedirectURL,
		IsDemo:       output.IsDemo,
		Fallback:     output.Fallback,
	}, "Preferencia creada")
}
