package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoPrecio identifies which price tier was applied to a sale line.
type TipoPrecio string

const (
	PrecioMenudeo      TipoPrecio = "menudeo"
	PrecioMedioMayoreo TipoPrecio = "medio_mayoreo"
	PrecioMayoreo      TipoPrecio = "mayoreo"
)

// Producto is a catalog item with three price tiers.
// StockActual is only mutated through the venta/compra/cancelacion flows,
// always via atomic stock_actual ± delta updates.
type Producto struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo             string          `gorm:"uniqueIndex;not null"`
	Descripcion        string          `gorm:"index;not null"`
	Categoria          string          `gorm:"not null"`
	Unidad             string          `gorm:"not null;default:'pieza'"`
	Costo              decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioMenudeo      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioMedioMayoreo decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioMayoreo      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockInicial       int             `gorm:"not null;default:0"`
	StockActual        int             `gorm:"not null;default:0"`
	Activo             bool            `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PrecioParaTipo returns the unit price for a resolved tier.
func (p *Producto) PrecioParaTipo(tipo TipoPrecio) decimal.Decimal {
	switch tipo {
	case PrecioMayoreo:
		return p.PrecioMayoreo
	case PrecioMedioMayoreo:
		return p.PrecioMedioMayoreo
	default:
		return p.PrecioMenudeo
	}
}
