// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rossimethod/config"
	deliverycontext "rossimethod/internal/delivery/context"
	"rossimethod/internal/domain/entity"
	domainerrors "rossimethod/internal/domain/errors"
	"rossimethod/internal/domain/service"
	"rossimethod/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	gateway service.PaymentGateway
	course  *config.CourseConfig
	baseURL string
	logger  *slog.Logger
	now     func() time.Time
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	// Gateway is nil when no MercadoPago access token is configured; the
	// checkout then runs in demo mode.
	Gateway service.PaymentGateway `optional:"true"`
	Config  *config.Config
	Logger  *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		gateway: params.Gateway,
		course:  params.Config.Course,
		baseURL: params.Config.App.BaseURL,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePreference opens a checkout for the course, degrading to a demo
// preference when the payment provider is unavailable.
func (srv *checkoutService) CreatePreference(ctx context.Context, input usecase.CreatePreferenceInput) (*usecase.CreatePreferenceOutput, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("buyer name and email are required")
	}

	if srv.gateway == nil {
		srv.log(ctx).Info("No payment provider configured, issuing demo preference",
			slog.String("email", input.Email))

		return srv.demoPreference(input.Email, false), nil
	}

	reference := entity.NewExternalReference(srv.now(), input.Email)
	request := &service.PreferenceRequest{
		Title:             srv.course.Title,
		Description:       srv.course.Description,
		AmountCents:       srv.course.PriceCents,
		Currency:          srv.course.Currency,
		Buyer:             input.Buyer(),
		ExternalReference: reference,
		IdempotencyKey:    reference,
	}

	result, err := srv.gateway.CreatePreference(ctx, request)
	if err != nil {
		var gatewayErr *service.GatewayError
		if errors.As(err, &gatewayErr) {
			srv.log(ctx).Warn("Payment provider rejected preference",
				slog.Int("status", gatewayErr.StatusCode),
				slog.String("code", gatewayErr.Code),
				slog.String("email", input.Email))

			return nil, classifyGatewayError(gatewayErr)
		}

		// Network or decoding failure: the provider never answered, so the
		// buyer falls through to the demo flow instead of a dead end.
		srv.log(ctx).Warn("Payment provider unreachable, falling back to demo preference",
			slog.String("email", input.Email),
			slog.Any("error", err))

		return srv.demoPreference(input.Email, true), nil
	}

	initPoint := result.InitPoint
	if initPoint == "" {
		initPoint = result.SandboxInitPoint
	}

	srv.log(ctx).Info("Preference created",
		slog.String("preferenceID", result.ID),
		slog.String("email", input.Email))

	return &usecase.CreatePreferenceOutput{
		PreferenceID: result.ID,
		RedirectURL:  initPoint,
	}, nil
}

// demoPreference synthesizes a local checkout that skips the provider.
func (srv *checkoutService) demoPreference(email string, fallback bool) *usecase.CreatePreferenceOutput {
	prefix := "demo"
	if fallback {
		prefix = "demo-fallback"
	}
	id := prefix + "-" + strconv.FormatInt(srv.now().UnixMilli(), 10)

	redirect := srv.baseURL + "/payment/demo?preference_id=" + url.QueryEscape(id) +
		"&customer_email=" + url.QueryEscape(email)

	return &usecase.CreatePreferenceOutput{
		PreferenceID: id,
		RedirectURL:  redirect,
		IsDemo:       true,
		Fallback:     fallback,
	}
}

// classifyGatewayError translates a provider rejection into a buyer-facing
// message. Every branch suggests the demo flow so the purchase can continue.
func classifyGatewayError(gatewayErr *service.GatewayError) *usecase.CheckoutError {
	message := strings.ToLower(gatewayErr.Message + " " + gatewayErr.Code)

	switch {
	case strings.Contains(message, "invalid_token") || strings.Contains(message, "invalid access token"):
		return &usecase.CheckoutError{
			Message:     "Credenciales de MercadoPago inválidas. Probá el modo demo.",
			SuggestDemo: true,
		}
	case strings.Contains(message, "back_url") || strings.Contains(message, "auto_return"):
		return &usecase.CheckoutError{
			Message:     "URLs de retorno inválidas para MercadoPago. Probá el modo demo.",
			SuggestDemo: true,
		}
	default:
		return &usecase.CheckoutError{
			Message:     "No pudimos iniciar el pago. Probá el modo demo.",
			SuggestDemo: true,
		}
	}
}
