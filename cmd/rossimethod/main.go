package main

import (
	"context"
	"log/slog"
	"os"

	"rossimethod/config"
	"rossimethod/internal/delivery"
	"rossimethod/internal/delivery/http"
	"rossimethod/internal/delivery/http/middleware"
	"rossimethod/internal/delivery/http/router/handler"
	"rossimethod/internal/domain/service"
	"rossimethod/internal/infra/auth"
	logs "rossimethod/internal/infra/log"
	"rossimethod/internal/infra/mail"
	"rossimethod/internal/infra/mercadopago"
	"rossimethod/internal/infra/persistence/postgres"
	"rossimethod/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPurchaseRepository,
			postgres.NewFulfillmentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newPaymentGateway,
			newMailer,
		),
	)
}

// newPaymentGateway returns nil when no access token is configured, which
// switches the checkout flow into demo mode.
func newPaymentGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	if cfg.MercadoPago == nil || cfg.MercadoPago.AccessToken == "" {
		logger.Warn("MercadoPago access token missing, checkout runs in demo mode")

		return nil
	}

	return mercadopago.New(cfg, logger)
}

// newMailer returns nil when no API key is configured; fulfillment then
// reports the email channel as unavailable.
func newMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Resend == nil || cfg.Resend.APIKey == "" {
		logger.Warn("Resend API key missing, fulfillment emails disabled")

		return nil
	}

	return mail.New(cfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCheckoutService,
			impl.NewFulfillmentService,
			impl.NewPaymentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCheckoutHandler,
			handler.NewPaymentHandler,
			handler.NewCoachingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
