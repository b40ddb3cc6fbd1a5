package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCompraRequest struct {
	Codigo        string          `json:"codigo"         validate:"required"`
	Cantidad      int             `json:"cantidad"       validate:"required,min=1"`
	CostoUnitario decimal.Decimal `json:"costo_unitario" validate:"required"`
	Fecha         *string         `json:"fecha"          validate:"omitempty,datetime=2006-01-02"`
}

type ActualizarCompraRequest struct {
	Cantidad      *int             `json:"cantidad"       validate:"omitempty,min=1"`
	CostoUnitario *decimal.Decimal `json:"costo_unitario"`
	Fecha         *string          `json:"fecha"          validate:"omitempty,datetime=2006-01-02"`
}

type CompraFilter struct {
	Codigo string `form:"codigo"`
	Desde  string `form:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta  string `form:"hasta" validate:"omitempty,datetime=2006-01-02"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CompraResponse struct {
	ID            string          `json:"id"`
	Fecha         string          `json:"fecha"`
	Codigo        string          `json:"codigo"`
	Descripcion   string          `json:"descripcion"`
	Cantidad      int             `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	CostoTotal    decimal.Decimal `json:"costo_total"`
	UsuarioNombre string          `json:"usuario_nombre"`
}

type CompraListResponse struct {
	Data  []CompraResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
