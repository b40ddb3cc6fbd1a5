package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineaCarrito is a pending, unpersisted sale line. Tier and price are
// re-resolved on every quantity change; they only freeze when the cart is
// confirmed into a folio.
type LineaCarrito struct {
	ID             uuid.UUID       `json:"id"`
	ProductoID     uuid.UUID       `json:"producto_id"`
	Codigo         string          `json:"codigo"`
	Descripcion    string          `json:"descripcion"`
	Unidad         string          `json:"unidad"`
	Cantidad       int             `json:"cantidad"` // negative for corrections
	TipoPrecio     TipoPrecio      `json:"tipo_precio"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Importe        decimal.Decimal `json:"importe"`
	EsCorreccion   bool            `json:"es_correccion"`
	NotaCorreccion string          `json:"nota_correccion,omitempty"`
}

// Carrito is the in-progress sale of one user. Lives in Redis until the
// checkout is confirmed, so nothing here touches stock or the ledger.
type Carrito struct {
	Lineas []LineaCarrito `json:"lineas"`
}

// Total sums the line amounts. Correction lines carry negative importes
// and reduce the total naturally.
func (c *Carrito) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lineas {
		total = total.Add(l.Importe)
	}
	return total
}
