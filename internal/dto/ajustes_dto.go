package dto

import "github.com/shopspring/decimal"

// ActualizarAjustesRequest updates the singleton business configuration.
// Tier thresholds must be ≥ 1: a non-positive threshold would make its
// tier trigger on every quantity, so it is rejected at write time.
type ActualizarAjustesRequest struct {
	NombreEmpresa      *string          `json:"nombre_empresa"      validate:"omitempty,min=1,max=120"`
	Logo               *string          `json:"logo"`
	Tema               *string          `json:"tema"                validate:"omitempty,oneof=claro oscuro"`
	MinMedioMayoreo    *int             `json:"min_medio_mayoreo"   validate:"omitempty,min=1"`
	MinMayoreo         *int             `json:"min_mayoreo"         validate:"omitempty,min=1"`
	PorcentajeMonedero *decimal.Decimal `json:"porcentaje_monedero"`
}

type AjustesResponse struct {
	NombreEmpresa      string          `json:"nombre_empresa"`
	Logo               string          `json:"logo"`
	Tema               string          `json:"tema"`
	MinMedioMayoreo    int             `json:"min_medio_mayoreo"`
	MinMayoreo         int             `json:"min_mayoreo"`
	PorcentajeMonedero decimal.Decimal `json:"porcentaje_monedero"`
}
