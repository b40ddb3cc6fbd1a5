package service

import (
	"errors"
	"testing"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiquidarMetodoSimple(t *testing.T) {
	total := decimal.NewFromInt(250)
	cliente := clienteGeneral()

	for _, metodo := range []string{model.MetodoEfectivo, model.MetodoTarjetaCredito,
		model.MetodoTarjetaDebito, model.MetodoTransferencia} {
		liq, err := Liquidar(total, metodo, nil, cliente, decimal.Zero)
		require.NoError(t, err, metodo)
		assert.Equal(t, metodo, liq.Metodo)
		assert.True(t, liq.MontoMonedero.IsZero())
		assert.Nil(t, liq.Desglose)
	}
}

func TestLiquidarMetodoDesconocido(t *testing.T) {
	_, err := Liquidar(decimal.NewFromInt(100), "cheque", nil, clienteGeneral(), decimal.Zero)
	assert.Error(t, err)
}

func TestLiquidarMonederoClienteGeneral(t *testing.T) {
	_, err := Liquidar(decimal.NewFromInt(100), model.MetodoMonedero, nil, clienteGeneral(), decimal.NewFromInt(500))
	assert.Error(t, err)
}

func TestLiquidarMonederoNoActivo(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoPendiente)
	_, err := Liquidar(decimal.NewFromInt(100), model.MetodoMonedero, nil, cliente, decimal.NewFromInt(500))
	assert.ErrorIs(t, err, ErrMonederoNoActivo)
}

func TestLiquidarMonederoSaldoInsuficiente(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoActivo)
	_, err := Liquidar(decimal.NewFromInt(100), model.MetodoMonedero, nil, cliente, decimal.NewFromInt(60))

	var saldoErr *SaldoInsuficienteError
	require.True(t, errors.As(err, &saldoErr))
	assert.True(t, saldoErr.Disponible.Equal(decimal.NewFromInt(60)))
	assert.True(t, saldoErr.Faltante.Equal(decimal.NewFromInt(40)))
}

func TestLiquidarMonederoCompleto(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoActivo)
	liq, err := Liquidar(decimal.NewFromInt(100), model.MetodoMonedero, nil, cliente, decimal.NewFromInt(150))
	require.NoError(t, err)
	assert.True(t, liq.MontoMonedero.Equal(decimal.NewFromInt(100)))
}

func TestLiquidarMultipleDesgloseVacio(t *testing.T) {
	_, err := Liquidar(decimal.NewFromInt(100), model.MetodoMultiple, nil, clienteGeneral(), decimal.Zero)
	assert.ErrorIs(t, err, ErrDesgloseVacio)
}

func TestLiquidarMultipleNoCuadra(t *testing.T) {
	desglose := map[string]decimal.Decimal{
		model.MetodoEfectivo:      decimal.NewFromInt(50),
		model.MetodoTarjetaDebito: decimal.NewFromInt(40),
	}
	_, err := Liquidar(decimal.NewFromInt(100), model.MetodoMultiple, desglose, clienteGeneral(), decimal.Zero)
	assert.ErrorIs(t, err, ErrPagoNoCuadra)
}

func TestLiquidarMultipleToleranciaCentavo(t *testing.T) {
	desglose := map[string]decimal.Decimal{
		model.MetodoEfectivo:      decimal.NewFromFloat(33.33),
		model.MetodoTransferencia: decimal.NewFromFloat(66.66),
	}
	liq, err := Liquidar(decimal.NewFromInt(100), model.MetodoMultiple, desglose, clienteGeneral(), decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, model.MetodoMultiple, liq.Metodo)
	assert.Len(t, liq.Desglose, 2)
}

func TestLiquidarMultipleMontoNegativoSeRecorta(t *testing.T) {
	desglose := map[string]decimal.Decimal{
		model.MetodoEfectivo:      decimal.NewFromInt(100),
		model.MetodoTarjetaDebito: decimal.NewFromInt(-30),
	}
	liq, err := Liquidar(decimal.NewFromInt(100), model.MetodoMultiple, desglose, clienteGeneral(), decimal.Zero)
	require.NoError(t, err)
	// The negative entry clamps to zero and drops out of the clean split.
	assert.Len(t, liq.Desglose, 1)
	assert.True(t, liq.Desglose[model.MetodoEfectivo].Equal(decimal.NewFromInt(100)))
}

func TestLiquidarMultipleConMonedero(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoActivo)
	desglose := map[string]decimal.Decimal{
		model.MetodoMonedero: decimal.NewFromInt(40),
		model.MetodoEfectivo: decimal.NewFromInt(60),
	}
	liq, err := Liquidar(decimal.NewFromInt(100), model.MetodoMultiple, desglose, cliente, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.True(t, liq.MontoMonedero.Equal(decimal.NewFromInt(40)))
	assert.True(t, liq.Desglose[model.MetodoMonedero].Equal(decimal.NewFromInt(40)))
}

func TestLiquidarMultipleMonederoExcedeSaldo(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoActivo)
	desglose := map[string]decimal.Decimal{
		model.MetodoMonedero: decimal.NewFromInt(80),
		model.MetodoEfectivo: decimal.NewFromInt(20),
	}
	// Only 50 available: the engine clamps and reports the shortfall instead
	// of silently settling.
	_, err := Liquidar(decimal.NewFromInt(100), model.MetodoMultiple, desglose, cliente, decimal.NewFromInt(50))

	var saldoErr *SaldoInsuficienteError
	require.True(t, errors.As(err, &saldoErr))
	assert.True(t, saldoErr.Disponible.Equal(decimal.NewFromInt(50)))
	assert.True(t, saldoErr.Faltante.Equal(decimal.NewFromInt(30)))
}

func TestLiquidarMultipleMonederoInactivo(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoPendiente)
	desglose := map[string]decimal.Decimal{
		model.MetodoMonedero: decimal.NewFromInt(40),
		model.MetodoEfectivo: decimal.NewFromInt(60),
	}
	_, err := Liquidar(decimal.NewFromInt(100), model.MetodoMultiple, desglose, cliente, decimal.NewFromInt(500))
	assert.ErrorIs(t, err, ErrMonederoNoActivo)
}
