package postgres

import (
	"context"

	"rossimethod/internal/domain/entity"
	domainerrors "rossimethod/internal/domain/errors"
	"rossimethod/internal/domain/repository"
	"rossimethod/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create persists a new purchase row.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPurchaseRecordFailed.WrapMessage("invalid user reference")
		}
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePurchase
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPurchaseRecordFailed.WrapMessage("missing required purchase information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt

	return nil
}

// FindByUser retrieves all purchases for a user, newest first.
func (repo *purchaseRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error) {
	var purchaseModels []*model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by user")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases, nil
}

// FindByPaymentID retrieves a purchase by its provider payment id.
func (repo *purchaseRepository) FindByPaymentID(ctx context.Context, paymentID string) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("mercadopago_payment_id = ?", paymentID).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by payment id")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// --- Mapper Functions ---

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity.
func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	return &entity.Purchase{
		ID:        data.ID,
		UserID:    data.UserID,
		Course:    data.Curso,
		Price:     data.Precio,
		PaymentID: data.MercadopagoPaymentID,
		Status:    entity.PurchaseStatus(data.Estado),
		CreatedAt: data.CreatedAt,
	}
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:                   data.ID,
		UserID:               data.UserID,
		Curso:                data.Course,
		Precio:               data.Price,
		MercadopagoPaymentID: data.PaymentID,
		Estado:               string(data.Status),
	}
}
