package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearGastoRequest struct {
	Descripcion string          `json:"descripcion" validate:"required,min=2,max=250"`
	Monto       decimal.Decimal `json:"monto"       validate:"required"`
	Tipo        string          `json:"tipo"        validate:"required,oneof=fijo variable"`
	Categoria   string          `json:"categoria"`
	Fecha       *string         `json:"fecha"       validate:"omitempty,datetime=2006-01-02"`
}

type ActualizarGastoRequest struct {
	Descripcion *string          `json:"descripcion" validate:"omitempty,min=2,max=250"`
	Monto       *decimal.Decimal `json:"monto"`
	Tipo        *string          `json:"tipo"        validate:"omitempty,oneof=fijo variable"`
	Categoria   *string          `json:"categoria"`
	Fecha       *string          `json:"fecha"       validate:"omitempty,datetime=2006-01-02"`
}

type GastoFilter struct {
	Tipo  string `form:"tipo" validate:"omitempty,oneof=fijo variable"`
	Desde string `form:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta string `form:"hasta" validate:"omitempty,datetime=2006-01-02"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type GastoResponse struct {
	ID            string          `json:"id"`
	Descripcion   string          `json:"descripcion"`
	Monto         decimal.Decimal `json:"monto"`
	Tipo          string          `json:"tipo"`
	Categoria     string          `json:"categoria"`
	Fecha         string          `json:"fecha"`
	UsuarioNombre string          `json:"usuario_nombre"`
}

type GastoListResponse struct {
	Data  []GastoResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
