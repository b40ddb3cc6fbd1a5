package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// MovimientoManualRequest posts an operator deposit or withdrawal,
// independent of any sale.
type MovimientoManualRequest struct {
	Monto       decimal.Decimal `json:"monto"       validate:"required"`
	Descripcion string          `json:"descripcion" validate:"required,min=2,max=250"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaldoResponse struct {
	ClienteID      string          `json:"cliente_id"`
	Saldo          decimal.Decimal `json:"saldo"`
	EstadoMonedero string          `json:"estado_monedero"`
}

type MovimientoMonederoResponse struct {
	ID          string          `json:"id"`
	Monto       decimal.Decimal `json:"monto"`
	Puntos      decimal.Decimal `json:"puntos"`
	Tipo        string          `json:"tipo"`
	Descripcion string          `json:"descripcion"`
	Folio       *string         `json:"folio,omitempty"`
	Fecha       string          `json:"fecha"`
}

type EstadoCuentaResponse struct {
	ClienteID   string                       `json:"cliente_id"`
	Saldo       decimal.Decimal              `json:"saldo"`
	Movimientos []MovimientoMonederoResponse `json:"movimientos"`
}
