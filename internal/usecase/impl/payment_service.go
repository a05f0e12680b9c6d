package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"rossimethod/config"
	deliverycontext "rossimethod/internal/delivery/context"
	"rossimethod/internal/domain/entity"
	domainerrors "rossimethod/internal/domain/errors"
	"rossimethod/internal/domain/repository"
	"rossimethod/internal/domain/service"
	"rossimethod/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const webhookTypePayment = "payment"

// Placeholder contact values used when the store has no data for a field.
// The fulfillment flow requires every contact field to be present.
const (
	placeholderName    = "Cliente"
	placeholderSurname = "MercadoPago"
	placeholderField   = "No informado"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	gateway      service.PaymentGateway
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
	fulfillment  usecase.FulfillmentUsecase
	course       *config.CourseConfig
	logger       *slog.Logger
	now          func() time.Time
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Gateway      service.PaymentGateway `optional:"true"`
	UserRepo     repository.UserRepository
	PurchaseRepo repository.PurchaseRepository
	Fulfillment  usecase.FulfillmentUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		gateway:      params.Gateway,
		userRepo:     params.UserRepo,
		purchaseRepo: params.PurchaseRepo,
		fulfillment:  params.Fulfillment,
		course:       params.Config.Course,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleWebhook verifies a payment notification against the provider and
// records the purchase. Non-payment notifications are acknowledged untouched.
func (srv *paymentService) HandleWebhook(ctx context.Context, input usecase.WebhookInput) error {
	if input.Type != webhookTypePayment {
		srv.log(ctx).Debug("Ignoring non-payment notification", slog.String("type", input.Type))

		return nil
	}

	if srv.gateway == nil {
		srv.log(ctx).Warn("Webhook received without a configured payment provider",
			slog.String("paymentID", input.PaymentID))

		return nil
	}

	detail, err := srv.gateway.GetPayment(ctx, input.PaymentID)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch payment for webhook",
			slog.String("paymentID", input.PaymentID),
			slog.Any("error", err))

		return domainerrors.ErrPaymentLookupFailed.WrapMessage("failed to verify payment with provider")
	}

	if detail.Status != service.PaymentStatusApproved {
		srv.log(ctx).Info("Ignoring non-approved payment",
			slog.String("paymentID", detail.ID),
			slog.String("status", detail.Status))

		return nil
	}

	_, email, err := entity.ParseExternalReference(detail.ExternalReference)
	if err != nil {
		// The notification is acknowledged anyway: retrying cannot fix a
		// reference this service never issued.
		srv.log(ctx).Warn("Webhook carries unparseable external reference",
			slog.String("paymentID", detail.ID),
			slog.String("reference", detail.ExternalReference))

		return nil
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Payment received for unknown user",
				slog.String("paymentID", detail.ID),
				slog.String("email", email))

			return domainerrors.ErrUserNotFound.WrapMessage("no account matches the payment reference")
		}

		return err
	}

	if err := srv.recordPurchase(ctx, user, detail.ID, entity.PriceFromCents(detail.AmountCents)); err != nil {
		return err
	}

	srv.fulfillNonFatally(ctx, detail.ID, srv.buyerFromUser(user, email))

	return nil
}

// ConfirmRedirect handles the buyer landing back on the site after paying.
// Fulfillment errors never surface here: the payment is already confirmed,
// so the page reports the email as pending instead of failing.
func (srv *paymentService) ConfirmRedirect(ctx context.Context, input usecase.RedirectInput) (*usecase.RedirectOutput, error) {
	output := &usecase.RedirectOutput{Status: input.Status}

	if input.Status != service.PaymentStatusApproved || input.PaymentID == "" {
		return output, nil
	}

	_, email, err := entity.ParseExternalReference(input.ExternalReference)
	if err != nil {
		srv.log(ctx).Warn("Redirect carries unparseable external reference",
			slog.String("paymentID", input.PaymentID),
			slog.String("reference", input.ExternalReference))

		return output, nil
	}
	output.CustomerEmail = email

	buyer := entity.Buyer{
		Name:    placeholderName,
		Surname: placeholderSurname,
		Email:   email,
		Phone:   placeholderField,
		Country: placeholderField,
		City:    placeholderField,
	}
	if user, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		buyer = srv.buyerFromUser(user, email)
	}

	if _, err := srv.fulfillment.Fulfill(ctx, usecase.FulfillInput{
		PaymentID: input.PaymentID,
		Buyer:     buyer,
	}); err != nil {
		srv.log(ctx).Error("Fulfillment failed after redirect",
			slog.String("paymentID", input.PaymentID),
			slog.Any("error", err))

		return output, nil
	}

	output.Fulfilled = true

	return output, nil
}

// SimulateDemoPayment completes a demo checkout without a provider. When the
// buyer has an account the purchase is recorded like a real one.
func (srv *paymentService) SimulateDemoPayment(ctx context.Context, input usecase.SimulateDemoInput) (*usecase.SimulateDemoOutput, error) {
	paymentID := "demo-payment-" + strconv.FormatInt(srv.now().UnixMilli(), 10)

	output := &usecase.SimulateDemoOutput{
		PaymentID:     paymentID,
		CustomerEmail: input.CustomerEmail,
	}

	buyer := entity.Buyer{
		Name:    placeholderName,
		Surname: placeholderSurname,
		Email:   input.CustomerEmail,
		Phone:   placeholderField,
		Country: placeholderField,
		City:    placeholderField,
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.CustomerEmail)
	switch {
	case err == nil:
		if err := srv.recordPurchase(ctx, user, paymentID, entity.PriceFromCents(srv.course.PriceCents)); err != nil {
			return nil, err
		}
		output.Recorded = true
		buyer = srv.buyerFromUser(user, input.CustomerEmail)
	case errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Info("Demo payment for guest buyer, purchase not recorded",
			slog.String("email", input.CustomerEmail))
	default:
		return nil, err
	}

	srv.fulfillNonFatally(ctx, paymentID, buyer)

	return output, nil
}

// recordPurchase inserts the compras row and appends the course to the
// user's purchased list.
func (srv *paymentService) recordPurchase(ctx context.Context, user *entity.User, paymentID string, price float64) error {
	purchase := &entity.Purchase{
		UserID:    user.ID,
		Course:    srv.course.ID,
		Price:     price,
		PaymentID: paymentID,
		Status:    entity.PurchaseStatusCompleted,
	}

	if err := srv.purchaseRepo.Create(ctx, purchase); err != nil {
		// The provider delivers notifications at least once. A redelivered
		// payment hits the unique payment id index and must be acknowledged,
		// not retried.
		if errors.Is(err, repository.ErrDuplicatePurchase) {
			srv.log(ctx).Info("Purchase already recorded, acknowledging redelivery",
				slog.String("paymentID", paymentID),
				slog.Any("userID", user.ID))

			return nil
		}

		srv.log(ctx).Error("Failed to record purchase",
			slog.String("paymentID", paymentID),
			slog.Any("userID", user.ID),
			slog.Any("error", err))

		return err
	}

	if !user.HasCourse(srv.course.ID) {
		user.AddCourse(srv.course.ID)
		if err := srv.userRepo.Update(ctx, user); err != nil {
			// The purchase row is already the source of truth; the array is
			// denormalized convenience data, so this only gets logged.
			srv.log(ctx).Error("Failed to update purchased courses",
				slog.Any("userID", user.ID),
				slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Purchase recorded",
		slog.String("paymentID", paymentID),
		slog.Any("userID", user.ID),
		slog.String("course", srv.course.ID))

	return nil
}

func (srv *paymentService) fulfillNonFatally(ctx context.Context, paymentID string, buyer entity.Buyer) {
	if _, err := srv.fulfillment.Fulfill(ctx, usecase.FulfillInput{
		PaymentID: paymentID,
		Buyer:     buyer,
	}); err != nil {
		srv.log(ctx).Error("Fulfillment failed, purchase remains recorded",
			slog.String("paymentID", paymentID),
			slog.Any("error", err))
	}
}

// buyerFromUser builds fulfillment contact data from the stored profile,
// filling gaps with placeholders.
func (srv *paymentService) buyerFromUser(user *entity.User, email string) entity.Buyer {
	name := placeholderName
	surname := placeholderSurname

	if trimmed := strings.TrimSpace(user.FullName); trimmed != "" {
		parts := strings.SplitN(trimmed, " ", 2)
		name = parts[0]
		if len(parts) == 2 {
			surname = parts[1]
		}
	}

	phone := user.Phone
	if phone == "" {
		phone = placeholderField
	}

	return entity.Buyer{
		Name:    name,
		Surname: surname,
		Email:   email,
		Phone:   phone,
		Country: placeholderField,
		City:    placeholderField,
	}
}
