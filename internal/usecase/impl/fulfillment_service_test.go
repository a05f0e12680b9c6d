package impl

import (
	"context"
	"testing"

	"rossimethod/internal/domain/entity"
	domainerrors "rossimethod/internal/domain/errors"
	"rossimethod/internal/domain/repository"
	"rossimethod/internal/domain/service"
	mockRepo "rossimethod/internal/mocks/repository"
	mockSvc "rossimethod/internal/mocks/service"
	"rossimethod/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fulfillmentFixtures struct {
	service         usecase.FulfillmentUsecase
	mailer          *mockSvc.MockMailer
	fulfillmentRepo *mockRepo.MockFulfillmentRepository
}

func createTestFulfillmentService(t *testing.T) fulfillmentFixtures {
	mailer := mockSvc.NewMockMailer(t)
	fulfillmentRepo := mockRepo.NewMockFulfillmentRepository(t)

	service := NewFulfillmentService(FulfillmentServiceParams{
		Mailer:          mailer,
		FulfillmentRepo: fulfillmentRepo,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	return fulfillmentFixtures{
		service:         service,
		mailer:          mailer,
		fulfillmentRepo: fulfillmentRepo,
	}
}

func completeBuyer() entity.Buyer {
	return entity.Buyer{
		Name:    "Ana",
		Surname: "Pérez",
		Email:   "ana@example.com",
		Phone:   "1155550000",
		Country: "Argentina",
		City:    "Buenos Aires",
	}
}

func TestFulfillmentService_Fulfill_NoMailerConfigured(t *testing.T) {
	fulfillmentRepo := mockRepo.NewMockFulfillmentRepository(t)
	service := NewFulfillmentService(FulfillmentServiceParams{
		Mailer:          nil,
		FulfillmentRepo: fulfillmentRepo,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	_, err := service.Fulfill(context.Background(), usecase.FulfillInput{
		PaymentID: "12345",
		Buyer:     completeBuyer(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailNotConfigured))
}

func TestFulfillmentService_Fulfill_IncompleteBuyer(t *testing.T) {
	fx := createTestFulfillmentService(t)

	buyer := completeBuyer()
	buyer.Phone = ""

	_, err := fx.service.Fulfill(context.Background(), usecase.FulfillInput{
		PaymentID: "12345",
		Buyer:     buyer,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestFulfillmentService_Fulfill_Success(t *testing.T) {
	fx := createTestFulfillmentService(t)
	ctx := context.Background()

	fx.fulfillmentRepo.EXPECT().TryAcquire(ctx, "12345").Return(true, nil)

	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(email *service.Email) bool {
			return len(email.To) == 1 && email.To[0] == "ana@example.com"
		})).
		Return("email-buyer", nil)

	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(email *service.Email) bool {
			return len(email.To) == 1 && email.To[0] == "ventas@rossimethod.com"
		})).
		Return("email-operator", nil)

	fx.fulfillmentRepo.EXPECT().MarkSent(ctx, "12345").Return(nil)

	output, err := fx.service.Fulfill(ctx, usecase.FulfillInput{
		PaymentID: "12345",
		Buyer:     completeBuyer(),
	})
	require.NoError(t, err)

	assert.False(t, output.AlreadySent)
	assert.Equal(t, "email-buyer", output.BuyerEmailID)
	assert.Equal(t, "email-operator", output.OperatorEmailID)
}

func TestFulfillmentService_Fulfill_MissingDeliveryRecordTolerated(t *testing.T) {
	fx := createTestFulfillmentService(t)
	ctx := context.Background()

	fx.fulfillmentRepo.EXPECT().TryAcquire(ctx, "12345").Return(true, nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Email")).
		Return("email-id", nil).
		Twice()

	// The delivery record vanished between the claim and the state update.
	// The emails are already out, so the operation still reports success.
	fx.fulfillmentRepo.EXPECT().MarkSent(ctx, "12345").Return(repository.ErrFulfillmentNotFound)

	output, err := fx.service.Fulfill(ctx, usecase.FulfillInput{
		PaymentID: "12345",
		Buyer:     completeBuyer(),
	})
	require.NoError(t, err)
	assert.False(t, output.AlreadySent)
}

func TestFulfillmentService_Fulfill_AlreadyHandled(t *testing.T) {
	fx := createTestFulfillmentService(t)
	ctx := context.Background()

	fx.fulfillmentRepo.EXPECT().TryAcquire(ctx, "12345").Return(false, nil)

	output, err := fx.service.Fulfill(ctx, usecase.FulfillInput{
		PaymentID: "12345",
		Buyer:     completeBuyer(),
	})
	require.NoError(t, err)

	assert.True(t, output.AlreadySent)
	fx.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestFulfillmentService_Fulfill_BuyerEmailFails(t *testing.T) {
	fx := createTestFulfillmentService(t)
	ctx := context.Background()

	fx.fulfillmentRepo.EXPECT().TryAcquire(ctx, "12345").Return(true, nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Email")).
		Return("", errors.New("provider down")).
		Once()
	fx.fulfillmentRepo.EXPECT().MarkFailed(ctx, "12345").Return(nil)

	_, err := fx.service.Fulfill(ctx, usecase.FulfillInput{
		PaymentID: "12345",
		Buyer:     completeBuyer(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailSendFailed))
}

func TestFulfillmentService_Fulfill_SaleNoticeFails(t *testing.T) {
	fx := createTestFulfillmentService(t)
	ctx := context.Background()

	fx.fulfillmentRepo.EXPECT().TryAcquire(ctx, "12345").Return(true, nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(email *service.Email) bool {
			return len(email.To) == 1 && email.To[0] == "ana@example.com"
		})).
		Return("email-buyer", nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(email *service.Email) bool {
			return len(email.To) == 1 && email.To[0] == "ventas@rossimethod.com"
		})).
		Return("", errors.New("provider down"))
	fx.fulfillmentRepo.EXPECT().MarkFailed(ctx, "12345").Return(nil)

	_, err := fx.service.Fulfill(ctx, usecase.FulfillInput{
		PaymentID: "12345",
		Buyer:     completeBuyer(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailSendFailed))
}

func TestFulfillmentService_SendCoachingRequest_Success(t *testing.T) {
	fx := createTestFulfillmentService(t)
	ctx := context.Background()

	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(email *service.Email) bool {
			return len(email.To) == 1 && email.To[0] == "ventas@rossimethod.com"
		})).
		Return("email-notice", nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(email *service.Email) bool {
			return len(email.To) == 1 && email.To[0] == "leo@example.com"
		})).
		Return("email-confirmation", nil)

	err := fx.service.SendCoachingRequest(ctx, usecase.CoachingRequestInput{
		Name:    "Leo",
		Email:   "leo@example.com",
		Phone:   "1144440000",
		Goal:    "Full planche",
		Message: "Quiero entrenar 4 veces por semana.",
	})
	require.NoError(t, err)
}

func TestFulfillmentService_SendCoachingRequest_MissingFields(t *testing.T) {
	fx := createTestFulfillmentService(t)

	err := fx.service.SendCoachingRequest(context.Background(), usecase.CoachingRequestInput{
		Name:  "Leo",
		Email: "leo@example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
