package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MovimientoAcumulacion = "acumulacion"
	MovimientoRedencion   = "redencion"
	MovimientoAjuste      = "ajuste"
)

// MovimientoMonedero is one entry of the append-only store-credit ledger.
// A client's balance is always SUM(monto) over its entries; there is no
// materialized balance column. Entries are never updated or deleted —
// cancellations append compensating "ajuste" entries instead.
//
// Folio links sale-derived entries (acumulacion/redencion and their
// reversals) to the checkout that produced them, so a reversal works from
// the amounts actually posted rather than recomputing from the current
// loyalty percentage.
type MovimientoMonedero struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"` // signed
	Puntos      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Tipo        string          `gorm:"type:varchar(20);not null"` // acumulacion | redencion | ajuste
	Descripcion string          `gorm:"not null"`
	Folio       *string         `gorm:"index"`
	CreatedAt   time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

// TableName overrides GORM's pluralization (movimiento_monederos → movimientos_monedero).
func (MovimientoMonedero) TableName() string { return "movimientos_monedero" }
