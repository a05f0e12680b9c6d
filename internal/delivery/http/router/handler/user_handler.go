package handler

import (
	"log/slog"
	"net/http"

	"rossimethod/internal/delivery/http/middleware"
	"rossimethod/internal/delivery/http/response"
	domainerrors "rossimethod/internal/domain/errors"
	"rossimethod/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	NombreCompleto string `json:"nombre_completo" validate:"required"`
	Celular        string `json:"celular"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse returns the session tokens without sensitive user data.
type authResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         userResponse `json:"user"`
}

type userResponse struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	NombreCompleto  string    `json:"nombre_completo"`
	CursosComprados []string  `json:"cursos_comprados"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de registro inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.NombreCompleto,
		Phone:    req.Celular,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output), "Cuenta creada")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de acceso inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output), "Sesión iniciada")
}

type purchaseResponse struct {
	ID        uuid.UUID `json:"id"`
	Curso     string    `json:"curso"`
	Precio    float64   `json:"precio"`
	PaymentID string    `json:"payment_id"`
	Estado    string    `json:"estado"`
	CreatedAt string    `json:"created_at"`
}

type myAreaResponse struct {
	User    userResponse       `json:"user"`
	Compras []purchaseResponse `json:"compras"`
}

// MyArea returns the signed-in user's profile and purchase history.
func (h *UserHandler) MyArea(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidToken.WrapMessage("missing authenticated user"))
	}

	output, err := h.uc.GetMyArea(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	compras := make([]purchaseResponse, 0, len(output.Purchases))
	for _, purchase := range output.Purchases {
		compras = append(compras, purchaseResponse{
			ID:        purchase.ID,
			Curso:     purchase.Course,
			Precio:    purchase.Price,
			PaymentID: purchase.PaymentID,
			Estado:    string(purchase.Status),
			CreatedAt: purchase.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return response.Success(c, http.StatusOK, myAreaResponse{
		User: userResponse{
			ID:              output.User.ID,
			Email:           output.User.Email,
			NombreCompleto:  output.User.FullName,
			CursosComprados: output.User.PurchasedCourses,
		},
		Compras: compras,
	}, "")
}

func toAuthResponse(output *usecase.AuthOutput) authResponse {
	return authResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User: userResponse{
			ID:              output.User.ID,
			Email:           output.User.Email,
			NombreCompleto:  output.User.FullName,
			CursosComprados: output.User.PurchasedCourses,
		},
	}
}
