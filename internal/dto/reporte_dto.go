package dto

import "github.com/shopspring/decimal"

type ReporteFilter struct {
	Desde string `form:"desde" validate:"required,datetime=2006-01-02"`
	Hasta string `form:"hasta" validate:"required,datetime=2006-01-02"`
}

// FlujoCajaResponse is the cash-flow summary for a date range.
// IngresosPorMetodo expands "multiple" sales through their desglose so
// every peso is attributed to a concrete payment method.
type FlujoCajaResponse struct {
	Desde             string                     `json:"desde"`
	Hasta             string                     `json:"hasta"`
	IngresosPorMetodo map[string]decimal.Decimal `json:"ingresos_por_metodo"`
	TotalIngresos     decimal.Decimal            `json:"total_ingresos"`
	EgresosPorMetodo  map[string]decimal.Decimal `json:"egresos_por_metodo"`
	TotalGastos       decimal.Decimal            `json:"total_gastos"`
	TotalCompras      decimal.Decimal            `json:"total_compras"`
	TotalEgresos      decimal.Decimal            `json:"total_egresos"`
	Neto              decimal.Decimal            `json:"neto"`
}
