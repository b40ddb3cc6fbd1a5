package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ConfirmarVentaRequest closes the caller's cart into a new folio.
// Desglose is required only when metodo_pago = "multiple".
type ConfirmarVentaRequest struct {
	ClienteID  string                     `json:"cliente_id"  validate:"required,uuid"`
	MetodoPago string                     `json:"metodo_pago" validate:"required,oneof=efectivo tarjeta_credito tarjeta_debito transferencia monedero multiple"`
	Desglose   map[string]decimal.Decimal `json:"desglose"    validate:"omitempty"`
}

type CancelarFolioRequest struct {
	Motivo string `json:"motivo" validate:"required,min=5,max=250"`
}

// EditarFolioRequest overwrites fecha and/or cliente on a non-cancelled folio.
type EditarFolioRequest struct {
	Fecha     *string `json:"fecha"      validate:"omitempty,datetime=2006-01-02"`
	ClienteID *string `json:"cliente_id" validate:"omitempty,uuid"`
}

type EditarLineaVentaRequest struct {
	Cantidad int `json:"cantidad" validate:"required"`
}

// ─── Filter / List ──────────────────────────────────────────────────────────

type VentaFilter struct {
	Folio  string `form:"folio"`
	Fecha  string `form:"fecha"`                // YYYY-MM-DD; empty = today
	Estado string `form:"estado,default=activa"` // activa | cancelada | all
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineaVentaResponse struct {
	ID             string          `json:"id"`
	Codigo         string          `json:"codigo"`
	Descripcion    string          `json:"descripcion"`
	Unidad         string          `json:"unidad"`
	Cantidad       int             `json:"cantidad"`
	TipoPrecio     string          `json:"tipo_precio"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Importe        decimal.Decimal `json:"importe"`
	EsCorreccion   bool            `json:"es_correccion"`
	Cancelada      bool            `json:"cancelada"`
	NotaCorreccion string          `json:"nota_correccion,omitempty"`
}

type VentaResponse struct {
	Folio          string                     `json:"folio"`
	Fecha          string                     `json:"fecha"`
	ClienteID      string                     `json:"cliente_id"`
	ClienteNombre  string                     `json:"cliente_nombre"`
	VendedorNombre string                     `json:"vendedor_nombre"`
	MetodoPago     string                     `json:"metodo_pago"`
	Desglose       map[string]decimal.Decimal `json:"desglose,omitempty"`
	Total          decimal.Decimal            `json:"total"`
	PuntosGanados  decimal.Decimal            `json:"puntos_ganados"`
	Lineas         []LineaVentaResponse       `json:"lineas"`
	Cancelada      bool                       `json:"cancelada"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
