package model

import (
	"time"

	"github.com/google/uuid"
)

// EstadoMonedero is the wallet participation state of a client.
// inactivo: no program participation. pendiente: accrues but cannot redeem.
// activo: can redeem.
type EstadoMonedero string

const (
	MonederoInactivo  EstadoMonedero = "inactivo"
	MonederoPendiente EstadoMonedero = "pendiente"
	MonederoActivo    EstadoMonedero = "activo"
)

// ClienteGeneralID is the reserved walk-in client. It cannot be deleted and
// its monedero can never be activated.
var ClienteGeneralID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type Cliente struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre         string    `gorm:"index;not null"`
	RFC            string
	Telefono       string `gorm:"index"`
	Email          *string
	Calle          string
	Colonia        string
	Ciudad         string
	Estado         string
	CodigoPostal   string
	EstadoMonedero EstadoMonedero `gorm:"type:varchar(20);not null;default:'inactivo'"`
	Activo         bool           `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EsGeneral reports whether this is the reserved walk-in client.
func (c *Cliente) EsGeneral() bool { return c.ID == ClienteGeneralID }
