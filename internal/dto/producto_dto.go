package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Codigo             string          `json:"codigo"               validate:"required,min=1,max=40"`
	Descripcion        string          `json:"descripcion"          validate:"required,min=2,max=120"`
	Categoria          string          `json:"categoria"            validate:"required"`
	Unidad             string          `json:"unidad"`
	Costo              decimal.Decimal `json:"costo"                validate:"required"`
	PrecioMenudeo      decimal.Decimal `json:"precio_menudeo"       validate:"required"`
	PrecioMedioMayoreo decimal.Decimal `json:"precio_medio_mayoreo" validate:"required"`
	PrecioMayoreo      decimal.Decimal `json:"precio_mayoreo"       validate:"required"`
	StockInicial       int             `json:"stock_inicial"        validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Descripcion        *string          `json:"descripcion"          validate:"omitempty,min=2,max=120"`
	Categoria          *string          `json:"categoria"`
	Unidad             *string          `json:"unidad"`
	Costo              *decimal.Decimal `json:"costo"`
	PrecioMenudeo      *decimal.Decimal `json:"precio_menudeo"`
	PrecioMedioMayoreo *decimal.Decimal `json:"precio_medio_mayoreo"`
	PrecioMayoreo      *decimal.Decimal `json:"precio_mayoreo"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductoFilter struct {
	Codigo      string `form:"codigo"`
	Descripcion string `form:"descripcion"`
	Categoria   string `form:"categoria"`
	// StockBajo filters products at or below the given stock level.
	StockBajo *int `form:"stock_bajo" validate:"omitempty,min=0"`
	Page      int  `form:"page,default=1"   validate:"min=1"`
	Limit     int  `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID                 string          `json:"id"`
	Codigo             string          `json:"codigo"`
	Descripcion        string          `json:"descripcion"`
	Categoria          string          `json:"categoria"`
	Unidad             string          `json:"unidad"`
	Costo              decimal.Decimal `json:"costo"`
	PrecioMenudeo      decimal.Decimal `json:"precio_menudeo"`
	PrecioMedioMayoreo decimal.Decimal `json:"precio_medio_mayoreo"`
	PrecioMayoreo      decimal.Decimal `json:"precio_mayoreo"`
	StockInicial       int             `json:"stock_inicial"`
	StockActual        int             `json:"stock_actual"`
	Activo             bool            `json:"activo"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
