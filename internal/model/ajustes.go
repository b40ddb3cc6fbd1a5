package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ajustes is the singleton business configuration record (ID is always 1).
// MinMedioMayoreo / MinMayoreo are the minimum quantities that trigger each
// price tier; both are validated ≥ 1 at write time so the tier resolver
// never sees a non-positive threshold.
type Ajustes struct {
	ID                 uint   `gorm:"primaryKey"`
	NombreEmpresa      string `gorm:"not null"`
	Logo               string
	Tema               string          `gorm:"not null;default:'claro'"`
	MinMedioMayoreo    int             `gorm:"not null;default:6"`
	MinMayoreo         int             `gorm:"not null;default:12"`
	PorcentajeMonedero decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	UpdatedAt          time.Time
}

// TableName keeps the singleton in a singular table.
func (Ajustes) TableName() string { return "ajustes" }
