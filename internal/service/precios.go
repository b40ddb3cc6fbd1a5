package service

import (
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"github.com/shopspring/decimal"
)

// ResolverTipoPrecio picks the price tier for a quantity. The absolute value
// is used so correction lines (negative quantities) get the same tier as the
// sale they reverse.
//
// Rule: |cantidad| >= minMayoreo → mayoreo; else >= minMedioMayoreo →
// medio_mayoreo; else menudeo. A non-positive threshold always triggers its
// tier; the ajustes write path rejects those values so this only matters for
// legacy rows.
func ResolverTipoPrecio(cantidad, minMedioMayoreo, minMayoreo int) model.TipoPrecio {
	abs := cantidad
	if abs < 0 {
		abs = -abs
	}
	if abs >= minMayoreo {
		return model.PrecioMayoreo
	}
	if abs >= minMedioMayoreo {
		return model.PrecioMedioMayoreo
	}
	return model.PrecioMenudeo
}

// CotizarLinea resolves tier, unit price and amount for a product/quantity
// pair against the current thresholds. Used on every cart mutation; the
// result only freezes when the line is persisted into a folio.
func CotizarLinea(p *model.Producto, cantidad int, ajustes *model.Ajustes) (model.TipoPrecio, decimal.Decimal, decimal.Decimal) {
	tipo := ResolverTipoPrecio(cantidad, ajustes.MinMedioMayoreo, ajustes.MinMayoreo)
	precio := p.PrecioParaTipo(tipo)
	importe := precio.Mul(decimal.NewFromInt(int64(cantidad)))
	return tipo, precio, importe
}
