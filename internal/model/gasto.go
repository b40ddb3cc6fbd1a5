package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	GastoFijo     = "fijo"
	GastoVariable = "variable"
)

// Gasto is an operating expense. No stock or monedero side effects.
// Descripcion may carry a trailing "[metodo]" tag that the cash-flow
// report uses to attribute the outflow to a payment method.
type Gasto struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descripcion   string    `gorm:"not null"`
	Monto         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Tipo          string          `gorm:"type:varchar(10);not null"` // fijo | variable
	Categoria     string
	Fecha         time.Time `gorm:"index;not null"`
	UsuarioID     uuid.UUID `gorm:"type:uuid;not null"`
	UsuarioNombre string    `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
