package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AgregarLineaRequest struct {
	Codigo   string `json:"codigo"   validate:"required"`
	Cantidad int    `json:"cantidad" validate:"required,min=1"`
	// EsCorreccion marks a return line: the quantity is stored negative.
	EsCorreccion   bool   `json:"es_correccion"`
	NotaCorreccion string `json:"nota_correccion" validate:"omitempty,max=250"`
}

type EditarCantidadRequest struct {
	Cantidad int `json:"cantidad" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineaCarritoResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Codigo         string          `json:"codigo"`
	Descripcion    string          `json:"descripcion"`
	Unidad         string          `json:"unidad"`
	Cantidad       int             `json:"cantidad"`
	TipoPrecio     string          `json:"tipo_precio"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Importe        decimal.Decimal `json:"importe"`
	EsCorreccion   bool            `json:"es_correccion"`
	NotaCorreccion string          `json:"nota_correccion,omitempty"`
}

type CarritoResponse struct {
	Lineas []LineaCarritoResponse `json:"lineas"`
	Total  decimal.Decimal        `json:"total"`
}
