package service

import (
	"context"
	"testing"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMonederoSvc(clientes ...*model.Cliente) (MonederoService, *stubMonederoRepo, *stubClienteRepo) {
	repo := &stubMonederoRepo{}
	clienteRepo := newStubClienteRepo(clientes...)
	return NewMonederoService(repo, clienteRepo), repo, clienteRepo
}

func TestRegistrarEfectosVentaAcumulacion(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoActivo)
	svc, repo, _ := buildMonederoSvc(cliente)

	lineas := []model.Venta{
		{Codigo: "JAB-01", Importe: decimal.NewFromInt(200)},
		{Codigo: "DET-02", Importe: decimal.NewFromInt(100)},
	}
	liq := &Liquidacion{Metodo: model.MetodoEfectivo, MontoMonedero: decimal.Zero}

	ganado, err := svc.RegistrarEfectosVenta(nil, lineas, liq, "000001", cliente, decimal.NewFromInt(5))
	require.NoError(t, err)

	// 5% of 200 + 5% of 100, one entry per line.
	assert.True(t, ganado.Equal(decimal.NewFromInt(15)))
	require.Len(t, repo.movimientos, 2)
	for _, m := range repo.movimientos {
		assert.Equal(t, model.MovimientoAcumulacion, m.Tipo)
		require.NotNil(t, m.Folio)
		assert.Equal(t, "000001", *m.Folio)
	}
}

func TestRegistrarEfectosVentaIgnoraLineasNegativas(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoActivo)
	svc, repo, _ := buildMonederoSvc(cliente)

	lineas := []model.Venta{
		{Codigo: "JAB-01", Importe: decimal.NewFromInt(200)},
		{Codigo: "JAB-01", Importe: decimal.NewFromInt(-100), EsCorreccion: true},
	}
	liq := &Liquidacion{Metodo: model.MetodoEfectivo, MontoMonedero: decimal.Zero}

	ganado, err := svc.RegistrarEfectosVenta(nil, lineas, liq, "000002", cliente, decimal.NewFromInt(10))
	require.NoError(t, err)

	// Correction lines never accrue points.
	assert.True(t, ganado.Equal(decimal.NewFromInt(20)))
	assert.Len(t, repo.movimientos, 1)
}

func TestRegistrarEfectosVentaClienteGeneralNoAcumula(t *testing.T) {
	general := clienteGeneral()
	svc, repo, _ := buildMonederoSvc(general)

	lineas := []model.Venta{{Codigo: "JAB-01", Importe: decimal.NewFromInt(500)}}
	liq := &Liquidacion{Metodo: model.MetodoEfectivo, MontoMonedero: decimal.Zero}

	ganado, err := svc.RegistrarEfectosVenta(nil, lineas, liq, "000003", general, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.True(t, ganado.IsZero())
	assert.Empty(t, repo.movimientos)
}

func TestRegistrarEfectosVentaRedencionUnaPorFolio(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoActivo)
	svc, repo, _ := buildMonederoSvc(cliente)

	lineas := []model.Venta{
		{Codigo: "JAB-01", Importe: decimal.NewFromInt(60)},
		{Codigo: "DET-02", Importe: decimal.NewFromInt(40)},
	}
	liq := &Liquidacion{Metodo: model.MetodoMonedero, MontoMonedero: decimal.NewFromInt(100)}

	_, err := svc.RegistrarEfectosVenta(nil, lineas, liq, "000004", cliente, decimal.Zero)
	require.NoError(t, err)

	require.Len(t, repo.movimientos, 1)
	assert.Equal(t, model.MovimientoRedencion, repo.movimientos[0].Tipo)
	assert.True(t, repo.movimientos[0].Monto.Equal(decimal.NewFromInt(-100)))
}

func TestRevertirFolio(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoActivo)
	svc, repo, _ := buildMonederoSvc(cliente)

	folio := "000005"
	lineas := []model.Venta{{Codigo: "JAB-01", Importe: decimal.NewFromInt(200)}}
	liq := &Liquidacion{Metodo: model.MetodoMultiple, MontoMonedero: decimal.NewFromInt(50)}
	_, err := svc.RegistrarEfectosVenta(nil, lineas, liq, folio, cliente, decimal.NewFromInt(5))
	require.NoError(t, err)

	require.NoError(t, svc.RevertirFolio(nil, folio, cliente.ID))

	// Acumulación +10, redención -50, reembolso +50, reverso -10 → neto cero.
	saldo, err := svc.Saldo(context.Background(), cliente.ID)
	require.NoError(t, err)
	assert.True(t, saldo.IsZero(), "saldo tras reversión: %s", saldo)

	var ajustes int
	for _, m := range repo.movimientos {
		if m.Tipo == model.MovimientoAjuste {
			ajustes++
		}
	}
	assert.Equal(t, 2, ajustes)
}

func TestRevertirFolioDobleReversion(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoActivo)
	svc, _, _ := buildMonederoSvc(cliente)

	folio := "000006"
	lineas := []model.Venta{{Codigo: "JAB-01", Importe: decimal.NewFromInt(100)}}
	liq := &Liquidacion{Metodo: model.MetodoEfectivo, MontoMonedero: decimal.Zero}
	_, err := svc.RegistrarEfectosVenta(nil, lineas, liq, folio, cliente, decimal.NewFromInt(5))
	require.NoError(t, err)

	require.NoError(t, svc.RevertirFolio(nil, folio, cliente.ID))
	assert.ErrorIs(t, svc.RevertirFolio(nil, folio, cliente.ID), ErrFolioYaRevertido)
}

func TestDeposito(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoPendiente)
	svc, _, _ := buildMonederoSvc(cliente)

	req := dto.MovimientoManualRequest{Monto: decimal.NewFromInt(100), Descripcion: "Bono de apertura"}
	require.NoError(t, svc.Deposito(context.Background(), cliente.ID, req))

	saldo, err := svc.Saldo(context.Background(), cliente.ID)
	require.NoError(t, err)
	assert.True(t, saldo.Equal(decimal.NewFromInt(100)))
}

func TestDepositoClienteGeneral(t *testing.T) {
	general := clienteGeneral()
	svc, _, _ := buildMonederoSvc(general)

	req := dto.MovimientoManualRequest{Monto: decimal.NewFromInt(100), Descripcion: "Bono"}
	assert.Error(t, svc.Deposito(context.Background(), general.ID, req))
}

func TestRetiroSaldoInsuficiente(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoActivo)
	svc, _, _ := buildMonederoSvc(cliente)

	require.NoError(t, svc.Deposito(context.Background(), cliente.ID,
		dto.MovimientoManualRequest{Monto: decimal.NewFromInt(30), Descripcion: "Bono"}))

	err := svc.Retiro(context.Background(), cliente.ID,
		dto.MovimientoManualRequest{Monto: decimal.NewFromInt(50), Descripcion: "Retiro en caja"})
	assert.ErrorIs(t, err, ErrSaldoRetiro)
}

func TestRetiroMonederoNoActivo(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoPendiente)
	svc, _, _ := buildMonederoSvc(cliente)

	err := svc.Retiro(context.Background(), cliente.ID,
		dto.MovimientoManualRequest{Monto: decimal.NewFromInt(10), Descripcion: "Retiro"})
	assert.ErrorIs(t, err, ErrMonederoNoActivo)
}

func TestEstadoCuenta(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoActivo)
	svc, _, _ := buildMonederoSvc(cliente)

	require.NoError(t, svc.Deposito(context.Background(), cliente.ID,
		dto.MovimientoManualRequest{Monto: decimal.NewFromInt(100), Descripcion: "Bono"}))
	require.NoError(t, svc.Retiro(context.Background(), cliente.ID,
		dto.MovimientoManualRequest{Monto: decimal.NewFromInt(40), Descripcion: "Retiro"}))

	resp, err := svc.EstadoCuenta(context.Background(), cliente.ID, 10)
	require.NoError(t, err)
	assert.True(t, resp.Saldo.Equal(decimal.NewFromInt(60)))
	assert.Len(t, resp.Movimientos, 2)
}
