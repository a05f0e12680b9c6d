package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel maps to the compras table.
type PurchaseModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;index"`
	Curso                string    `gorm:"column:curso;not null"`
	Precio               float64   `gorm:"column:precio;not null"`
	MercadopagoPaymentID string    `gorm:"column:mercadopago_payment_id;uniqueIndex"`
	Estado               string    `gorm:"column:estado;default:pendiente;check:estado IN ('pendiente','completado','fallido')"`
	CreatedAt            time.Time
}

// TableName overrides the default table name.
func (PurchaseModel) TableName() string {
	return "compras"
}
