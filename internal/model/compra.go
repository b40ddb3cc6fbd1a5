package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Compra is a restock purchase. Creating one increments product stock,
// editing adjusts by the quantity delta, deleting restores it.
type Compra struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha         time.Time `gorm:"index;not null"`
	ProductoID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Codigo        string    `gorm:"not null"`
	Cantidad      int       `gorm:"not null"`
	CostoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CostoTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UsuarioID     uuid.UUID       `gorm:"type:uuid;not null"`
	UsuarioNombre string          `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}
