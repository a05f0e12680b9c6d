// Package model contains the GORM persistence models mapped to the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel maps to the usuarios table.
type UserModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email           string         `gorm:"uniqueIndex;not null"`
	NombreCompleto  string         `gorm:"column:nombre_completo;not null"`
	Celular         string         `gorm:"column:celular"`
	PasswordHash    string         `gorm:"column:password_hash"`
	CursosComprados pq.StringArray `gorm:"column:cursos_comprados;type:text[]"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Compras []*PurchaseModel `gorm:"foreignKey:UserID"`
}

// TableName overrides the default table name.
func (UserModel) TableName() string {
	return "usuarios"
}
