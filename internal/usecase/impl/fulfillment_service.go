package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"rossimethod/config"
	deliverycontext "rossimethod/internal/delivery/context"
	"rossimethod/internal/domain/entity"
	domainerrors "rossimethod/internal/domain/errors"
	"rossimethod/internal/domain/repository"
	"rossimethod/internal/domain/service"
	"rossimethod/internal/usecase"

	"go.uber.org/fx"
)

// fulfillmentService implements the FulfillmentUsecase interface.
type fulfillmentService struct {
	mailer          service.Mailer
	fulfillmentRepo repository.FulfillmentRepository
	course          *config.CourseConfig
	from            string
	notifyTo        string
	logger          *slog.Logger
}

// FulfillmentServiceParams holds dependencies for fulfillmentService, injected by Fx.
type FulfillmentServiceParams struct {
	fx.In

	// Mailer is nil when no Resend API key is configured. Fulfillment then
	// fails with a configuration error; there is no demo fallback for email.
	Mailer          service.Mailer `optional:"true"`
	FulfillmentRepo repository.FulfillmentRepository
	Config          *config.Config
	Logger          *slog.Logger
}

// NewFulfillmentService is the constructor for fulfillmentService.
func NewFulfillmentService(params FulfillmentServiceParams) usecase.FulfillmentUsecase {
	from := ""
	notifyTo := ""
	if params.Config.Resend != nil {
		from = params.Config.Resend.From
		notifyTo = params.Config.Resend.NotifyTo
	}

	return &fulfillmentService{
		mailer:          params.Mailer,
		fulfillmentRepo: params.FulfillmentRepo,
		course:          params.Config.Course,
		from:            from,
		notifyTo:        notifyTo,
		logger:          params.Logger,
	}
}

func (srv *fulfillmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Fulfill delivers the course materials for a payment at most once. The
// entregas record is claimed before any email goes out, so the webhook path
// and the redirect path cannot both deliver the same payment.
func (srv *fulfillmentService) Fulfill(ctx context.Context, input usecase.FulfillInput) (*usecase.FulfillOutput, error) {
	if srv.mailer == nil {
		return nil, domainerrors.ErrEmailNotConfigured.WrapMessage("no email provider configured")
	}

	if !input.Buyer.Complete() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("all buyer contact fields are required for fulfillment")
	}

	acquired, err := srv.fulfillmentRepo.TryAcquire(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		srv.log(ctx).Info("Fulfillment already handled for payment",
			slog.String("paymentID", input.PaymentID))

		return &usecase.FulfillOutput{AlreadySent: true}, nil
	}

	buyerEmailID, err := srv.mailer.Send(ctx, srv.buyerEmail(input.Buyer))
	if err != nil {
		srv.failDelivery(ctx, input.PaymentID, err)

		return nil, domainerrors.ErrEmailSendFailed.WrapMessage("failed to send course materials")
	}

	operatorEmailID, err := srv.mailer.Send(ctx, srv.saleNoticeEmail(input.Buyer, input.PaymentID))
	if err != nil {
		srv.failDelivery(ctx, input.PaymentID, err)

		return nil, domainerrors.ErrEmailSendFailed.WrapMessage("failed to send sale notice")
	}

	if err := srv.fulfillmentRepo.MarkSent(ctx, input.PaymentID); err != nil {
		srv.log(ctx).Error("Failed to mark fulfillment as sent",
			slog.String("paymentID", input.PaymentID),
			slog.Any("error", err))
	}

	srv.log(ctx).Info("Course materials delivered",
		slog.String("paymentID", input.PaymentID),
		slog.String("email", input.Buyer.Email))

	return &usecase.FulfillOutput{
		BuyerEmailID:    buyerEmailID,
		OperatorEmailID: operatorEmailID,
	}, nil
}

// SendCoachingRequest forwards a coaching inquiry to the operator and sends
// the requester a confirmation.
func (srv *fulfillmentService) SendCoachingRequest(ctx context.Context, input usecase.CoachingRequestInput) error {
	if srv.mailer == nil {
		return domainerrors.ErrEmailNotConfigured.WrapMessage("no email provider configured")
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Phone) == "" || strings.TrimSpace(input.Message) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("coaching request needs name, email, phone and message")
	}

	if _, err := srv.mailer.Send(ctx, srv.coachingNoticeEmail(input)); err != nil {
		return domainerrors.ErrEmailSendFailed.WrapMessage("failed to forward coaching request")
	}

	if _, err := srv.mailer.Send(ctx, srv.coachingConfirmationEmail(input)); err != nil {
		return domainerrors.ErrEmailSendFailed.WrapMessage("failed to confirm coaching request")
	}

	srv.log(ctx).Info("Coaching request forwarded", slog.String("email", input.Email))

	return nil
}

func (srv *fulfillmentService) failDelivery(ctx context.Context, paymentID string, cause error) {
	srv.log(ctx).Error("Fulfillment email failed",
		slog.String("paymentID", paymentID),
		slog.Any("error", cause))

	if err := srv.fulfillmentRepo.MarkFailed(ctx, paymentID); err != nil {
		srv.log(ctx).Error("Failed to mark fulfillment as failed",
			slog.String("paymentID", paymentID),
			slog.Any("error", err))
	}
}

func (srv *fulfillmentService) buyerEmail(buyer entity.Buyer) *service.Email {
	name := html.EscapeString(buyer.Name)
	title := html.EscapeString(srv.course.Title)

	body := fmt.Sprintf(`<h1>¡Hola %s!</h1>
<p>Gracias por tu compra. Ya tenés acceso al <strong>%s</strong>.</p>
<p>En las próximas horas vas a recibir las credenciales de acceso a la plataforma.
Mientras tanto, podés entrar a tu área personal para ver el estado de tu compra.</p>
<p>Cualquier duda, respondé este email.</p>
<p>— Método Rossi</p>`, name, title)

	return &service.Email{
		From:    srv.from,
		To:      []string{buyer.Email},
		Subject: fmt.Sprintf("Tu acceso al %s", srv.course.Title),
		HTML:    body,
	}
}

func (srv *fulfillmentService) saleNoticeEmail(buyer entity.Buyer, paymentID string) *service.Email {
	body := fmt.Sprintf(`<h2>Nueva venta</h2>
<ul>
<li><strong>Curso:</strong> %s</li>
<li><strong>Pago:</strong> %s</li>
<li><strong>Nombre:</strong> %s %s</li>
<li><strong>Email:</strong> %s</li>
<li><strong>Teléfono:</strong> %s</li>
<li><strong>Ubicación:</strong> %s, %s</li>
</ul>`,
		html.EscapeString(srv.course.Title),
		html.EscapeString(paymentID),
		html.EscapeString(buyer.Name), html.EscapeString(buyer.Surname),
		html.EscapeString(buyer.Email),
		html.EscapeString(buyer.Phone),
		html.EscapeString(buyer.City), html.EscapeString(buyer.Country))

	return &service.Email{
		From:    srv.from,
		To:      []string{srv.notifyTo},
		Subject: fmt.Sprintf("Nueva venta: %s", srv.course.Title),
		HTML:    body,
	}
}

func (srv *fulfillmentService) coachingNoticeEmail(input usecase.CoachingRequestInput) *service.Email {
	body := fmt.Sprintf(`<h2>Nueva consulta de coaching</h2>
<ul>
<li><strong>Nombre:</strong> %s</li>
<li><strong>Email:</strong> %s</li>
<li><strong>Teléfono:</strong> %s</li>
<li><strong>Objetivo:</strong> %s</li>
</ul>
<p>%s</p>`,
		html.EscapeString(input.Name),
		html.EscapeString(input.Email),
		html.EscapeString(input.Phone),
		html.EscapeString(input.Goal),
		html.EscapeString(input.Message))

	return &service.Email{
		From:    srv.from,
		To:      []string{srv.notifyTo},
		Subject: fmt.Sprintf("Consulta de coaching de %s", input.Name),
		HTML:    body,
	}
}

func (srv *fulfillmentService) coachingConfirmationEmail(input usecase.CoachingRequestInput) *service.Email {
	body := fmt.Sprintf(`<h1>¡Hola %s!</h1>
<p>Recibimos tu consulta sobre el coaching personalizado.
Te vamos a responder dentro de las próximas 24 horas.</p>
<p>— Método Rossi</p>`, html.EscapeString(input.Name))

	return &service.Email{
		From:    srv.from,
		To:      []string{input.Email},
		Subject: "Recibimos tu consulta de coaching",
		HTML:    body,
	}
}
