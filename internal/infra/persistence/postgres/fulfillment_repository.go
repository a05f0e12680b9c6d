package postgres

import (
	"context"

	domainerrors "rossimethod/internal/domain/errors"
	"rossimethod/internal/domain/repository"
	"rossimethod/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// fulfillmentRepository implements repository.FulfillmentRepository on the
// entregas table. The unique index on payment_id provides the check-and-set.
type fulfillmentRepository struct {
	db *gorm.DB
}

// NewFulfillmentRepository is the constructor for fulfillmentRepository.
func NewFulfillmentRepository(db *gorm.DB) repository.FulfillmentRepository {
	return &fulfillmentRepository{db: db}
}

// TryAcquire inserts a pending record for paymentID. A unique violation means
// another path (webhook or redirect) already claimed this payment.
func (repo *fulfillmentRepository) TryAcquire(ctx context.Context, paymentID string) (bool, error) {
	record := &model.FulfillmentModel{
		PaymentID: paymentID,
		Estado:    model.FulfillmentStatePending,
	}

	if err := repo.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return false, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to claim fulfillment")
	}

	return true, nil
}

// MarkSent records a successful delivery.
func (repo *fulfillmentRepository) MarkSent(ctx context.Context, paymentID string) error {
	return repo.setState(ctx, paymentID, model.FulfillmentStateSent)
}

// MarkFailed records a failed delivery.
func (repo *fulfillmentRepository) MarkFailed(ctx context.Context, paymentID string) error {
	return repo.setState(ctx, paymentID, model.FulfillmentStateFailed)
}

func (repo *fulfillmentRepository) setState(ctx context.Context, paymentID, state string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FulfillmentModel{}).
		Where("payment_id = ?", paymentID).
		Update("estado", state)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update fulfillment state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFulfillmentNotFound
	}

	return nil
}
