package entity

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseStatus is the lifecycle state of a purchase row. Values match the
// compras.estado check constraint.
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pendiente"
	PurchaseStatusCompleted PurchaseStatus = "completado"
	PurchaseStatusFailed    PurchaseStatus = "fallido"
)

// Purchase is one row per completed or attempted transaction. Immutable once
// written except for pending -> completed/failed status transitions. Price is
// in whole currency units (pesos), converted from the minor-unit amounts the
// payment provider reports.
type Purchase struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Course    string
	Price     float64
	PaymentID string
	Status    PurchaseStatus
	CreatedAt time.Time
}

// PriceFromCents converts a minor-unit amount into the whole-unit price
// stored on compras.precio.
func PriceFromCents(cents int64) float64 {
	return float64(cents) / 100
}
