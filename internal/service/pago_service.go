package service

import (
	"errors"
	"fmt"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"github.com/shopspring/decimal"
)

// epsilonPago: a split settlement must match the cart total within one
// centavo before it can be confirmed.
var epsilonPago = decimal.NewFromFloat(0.01)

var (
	// ErrMonederoNoActivo: only clients with an active wallet may pay with
	// store credit. Pending wallets accrue but never redeem.
	ErrMonederoNoActivo = errors.New("el monedero del cliente no está activo")
	ErrPagoNoCuadra     = errors.New("la suma de los pagos no coincide con el total")
	ErrDesgloseVacio    = errors.New("un pago múltiple requiere el desglose por método")
)

// SaldoInsuficienteError signals that the requested wallet draw exceeds the
// available balance. The engine never silently caps and settles: it reports
// Disponible (what it clamped to) and Faltante so the caller decides how to
// cover the remainder.
type SaldoInsuficienteError struct {
	Disponible decimal.Decimal
	Faltante   decimal.Decimal
}

func (e *SaldoInsuficienteError) Error() string {
	return fmt.Sprintf("saldo de monedero insuficiente: disponible %s, faltan %s",
		e.Disponible.StringFixed(2), e.Faltante.StringFixed(2))
}

// Liquidacion is a validated settlement: the canonical payment method tag,
// the cleaned split map (only for "multiple", zero entries removed) and how
// much was drawn from the wallet.
type Liquidacion struct {
	Metodo        string
	Desglose      model.Desglose
	MontoMonedero decimal.Decimal
}

func metodoSimpleValido(metodo string) bool {
	switch metodo {
	case model.MetodoEfectivo, model.MetodoTarjetaCredito, model.MetodoTarjetaDebito,
		model.MetodoTransferencia, model.MetodoMonedero:
		return true
	}
	return false
}

// Liquidar validates a payment against the cart total.
//
// cliente and saldo describe the buyer's wallet; cliente may be the general
// walk-in client, whose wallet can never be drawn. All validation happens
// before anything is persisted — a returned error blocks the sale entirely.
func Liquidar(total decimal.Decimal, metodo string, desglose map[string]decimal.Decimal,
	cliente *model.Cliente, saldo decimal.Decimal) (*Liquidacion, error) {

	if metodo != model.MetodoMultiple {
		if !metodoSimpleValido(metodo) {
			return nil, fmt.Errorf("método de pago desconocido: %s", metodo)
		}
		if metodo != model.MetodoMonedero {
			return &Liquidacion{Metodo: metodo, MontoMonedero: decimal.Zero}, nil
		}
		if err := validarElegibilidadMonedero(cliente); err != nil {
			return nil, err
		}
		if saldo.LessThan(total) {
			return nil, &SaldoInsuficienteError{Disponible: saldo, Faltante: total.Sub(saldo)}
		}
		return &Liquidacion{Metodo: model.MetodoMonedero, MontoMonedero: total}, nil
	}

	if len(desglose) == 0 {
		return nil, ErrDesgloseVacio
	}

	limpio := model.Desglose{}
	suma := decimal.Zero
	monedero := decimal.Zero
	recorte := decimal.Zero

	for m, monto := range desglose {
		if !metodoSimpleValido(m) {
			return nil, fmt.Errorf("método de pago desconocido en desglose: %s", m)
		}
		// Negative amounts clamp to zero at entry time.
		if monto.IsNegative() {
			monto = decimal.Zero
		}
		if m == model.MetodoMonedero && monto.IsPositive() {
			if err := validarElegibilidadMonedero(cliente); err != nil {
				return nil, err
			}
			// The wallet entry clamps to the available balance; the recorte
			// is reported back instead of silently re-routing it.
			if monto.GreaterThan(saldo) {
				recorte = monto.Sub(saldo)
				monto = saldo
			}
			monedero = monto
		}
		if monto.IsPositive() {
			limpio[m] = monto
		}
		suma = suma.Add(monto)
	}

	if recorte.IsPositive() {
		return nil, &SaldoInsuficienteError{Disponible: monedero, Faltante: recorte}
	}
	if suma.Sub(total).Abs().GreaterThan(epsilonPago) {
		return nil, ErrPagoNoCuadra
	}

	return &Liquidacion{Metodo: model.MetodoMultiple, Desglose: limpio, MontoMonedero: monedero}, nil
}

func validarElegibilidadMonedero(cliente *model.Cliente) error {
	if cliente == nil || cliente.EsGeneral() {
		return errors.New("el cliente general no puede pagar con monedero")
	}
	if cliente.EstadoMonedero != model.MonederoActivo {
		return ErrMonederoNoActivo
	}
	return nil
}
