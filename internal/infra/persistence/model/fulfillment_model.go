package model

import (
	"time"

	"github.com/google/uuid"
)

// Fulfillment states for the entregas table.
const (
	FulfillmentStatePending = "pendiente"
	FulfillmentStateSent    = "enviado"
	FulfillmentStateFailed  = "fallido"
)

// FulfillmentModel maps to the entregas table. The unique payment id is what
// makes fulfillment at-most-once across the webhook and redirect paths.
type FulfillmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PaymentID string    `gorm:"column:payment_id;uniqueIndex;not null"`
	Estado    string    `gorm:"column:estado;default:pendiente"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name.
func (FulfillmentModel) TableName() string {
	return "entregas"
}
