package model

import (
	"time"

	"github.com/google/uuid"
)

// MovimientoStock is the audit trail of every stock change on a product.
// Written inside the same transaction as the change itself.
type MovimientoStock struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo          string    `gorm:"not null"` // "venta" | "compra" | "cancelacion" | "edicion_venta" | "ajuste_compra"
	Cantidad      int       `gorm:"not null"` // positive = entrada, negative = salida
	StockAnterior int       `gorm:"not null"`
	StockNuevo    int       `gorm:"not null"`
	Motivo        string
	Folio         *string `gorm:"index"` // set for venta/cancelacion movements
	CreatedAt     time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

// TableName overrides GORM's default pluralization (movimiento_stocks → movimientos_stock).
func (MovimientoStock) TableName() string { return "movimientos_stock" }
