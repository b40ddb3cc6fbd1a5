package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment method tags. "multiple" carries the per-method breakdown in
// DesglosePago; every other tag settles the full amount on one method.
const (
	MetodoEfectivo       = "efectivo"
	MetodoTarjetaCredito = "tarjeta_credito"
	MetodoTarjetaDebito  = "tarjeta_debito"
	MetodoTransferencia  = "transferencia"
	MetodoMonedero       = "monedero"
	MetodoMultiple       = "multiple"
)

// Desglose maps payment method → amount for split payments.
// Stored as JSONB; nil for single-method sales.
type Desglose map[string]decimal.Decimal

func (d Desglose) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *Desglose) Scan(src interface{}) error {
	if src == nil {
		*d = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("desglose: unsupported column type")
	}
	return json.Unmarshal(raw, d)
}

// Venta is one line item of a checkout. All lines of one checkout share a
// Folio. Rows are never deleted: cancellation flags every line of the folio
// and preserves cantidad/importe for audit.
type Venta struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Folio               string    `gorm:"index;not null"`
	Fecha               time.Time `gorm:"index;not null"`
	ProductoID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Codigo              string    `gorm:"not null"`
	DescripcionProducto string    `gorm:"not null"`
	Unidad              string    `gorm:"not null"`
	// Cantidad is signed: negative quantities are correction/return lines.
	Cantidad       int             `gorm:"not null"`
	TipoPrecio     TipoPrecio      `gorm:"type:varchar(20);not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Importe        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	VendedorID     uuid.UUID       `gorm:"type:uuid;not null"`
	VendedorNombre string          `gorm:"not null"`
	ClienteID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClienteNombre  string          `gorm:"not null"`
	MetodoPago     string          `gorm:"type:varchar(20);not null"`
	DesglosePago   Desglose        `gorm:"type:jsonb"`
	EsCorreccion   bool            `gorm:"not null;default:false"`
	Cancelada      bool            `gorm:"not null;default:false;index"`
	NotaCorreccion string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}
