package service

import (
	"context"
	"testing"
	"time"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlujoDeCaja(t *testing.T) {
	ventaRepo := newStubVentaRepo()
	gastoRepo := &stubGastoRepo{}
	compraRepo := newStubCompraRepo()
	svc := NewReporteService(ventaRepo, gastoRepo, compraRepo)

	fecha := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	// Folio 000001: two lines paid in cash.
	require.NoError(t, ventaRepo.CreateLineasTx(nil, []model.Venta{
		{Folio: "000001", Fecha: fecha, MetodoPago: model.MetodoEfectivo, Importe: decimal.NewFromInt(150)},
		{Folio: "000001", Fecha: fecha, MetodoPago: model.MetodoEfectivo, Importe: decimal.NewFromInt(50)},
	}))
	// Folio 000002: split payment; the desglose rides on every line but must
	// only be attributed once.
	desglose := model.Desglose{
		model.MetodoEfectivo:      decimal.NewFromInt(100),
		model.MetodoTarjetaDebito: decimal.NewFromInt(200),
	}
	require.NoError(t, ventaRepo.CreateLineasTx(nil, []model.Venta{
		{Folio: "000002", Fecha: fecha, MetodoPago: model.MetodoMultiple, DesglosePago: desglose, Importe: decimal.NewFromInt(180)},
		{Folio: "000002", Fecha: fecha, MetodoPago: model.MetodoMultiple, DesglosePago: desglose, Importe: decimal.NewFromInt(120)},
	}))
	// Folio 000003: cancelled, excluded entirely.
	require.NoError(t, ventaRepo.CreateLineasTx(nil, []model.Venta{
		{Folio: "000003", Fecha: fecha, MetodoPago: model.MetodoEfectivo, Importe: decimal.NewFromInt(999), Cancelada: true},
	}))

	require.NoError(t, gastoRepo.Create(context.Background(), &model.Gasto{
		Descripcion: "Renta local [transferencia]", Monto: decimal.NewFromInt(80),
		Tipo: model.GastoFijo, Fecha: fecha, UsuarioID: uuid.New(), UsuarioNombre: "Admin",
	}))
	require.NoError(t, gastoRepo.Create(context.Background(), &model.Gasto{
		Descripcion: "Garrafones de agua", Monto: decimal.NewFromInt(20),
		Tipo: model.GastoVariable, Fecha: fecha, UsuarioID: uuid.New(), UsuarioNombre: "Admin",
	}))

	require.NoError(t, compraRepo.CreateTx(nil, &model.Compra{
		Fecha: fecha, ProductoID: uuid.New(), Codigo: "JAB-01",
		Cantidad: 10, CostoUnitario: decimal.NewFromInt(10), CostoTotal: decimal.NewFromInt(100),
	}))

	resp, err := svc.FlujoDeCaja(context.Background(), dto.ReporteFilter{Desde: "2026-08-15", Hasta: "2026-08-15"})
	require.NoError(t, err)

	// Cash: 200 direct + 100 from the split. Debit card: 200 from the split.
	assert.True(t, resp.IngresosPorMetodo[model.MetodoEfectivo].Equal(decimal.NewFromInt(300)))
	assert.True(t, resp.IngresosPorMetodo[model.MetodoTarjetaDebito].Equal(decimal.NewFromInt(200)))
	assert.True(t, resp.TotalIngresos.Equal(decimal.NewFromInt(500)))

	// Tagged expense goes to transferencia, untagged defaults to efectivo.
	assert.True(t, resp.EgresosPorMetodo[model.MetodoTransferencia].Equal(decimal.NewFromInt(80)))
	assert.True(t, resp.EgresosPorMetodo[model.MetodoEfectivo].Equal(decimal.NewFromInt(20)))
	assert.True(t, resp.TotalGastos.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.TotalCompras.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.TotalEgresos.Equal(decimal.NewFromInt(200)))
	assert.True(t, resp.Neto.Equal(decimal.NewFromInt(300)))
}

func TestFlujoDeCajaRangoInvalido(t *testing.T) {
	svc := NewReporteService(newStubVentaRepo(), &stubGastoRepo{}, newStubCompraRepo())
	_, err := svc.FlujoDeCaja(context.Background(), dto.ReporteFilter{Desde: "15/08/2026", Hasta: "2026-08-15"})
	assert.Error(t, err)
}

func TestMetodoDeGasto(t *testing.T) {
	cases := []struct {
		descripcion string
		esperado    string
	}{
		{"Renta local [transferencia]", model.MetodoTransferencia},
		{"Pago de luz [tarjeta_credito]", model.MetodoTarjetaCredito},
		{"Garrafones de agua", model.MetodoEfectivo},
		{"Etiqueta desconocida [vales]", model.MetodoEfectivo},
		{"Corchetes sin cerrar [efectivo", model.MetodoEfectivo},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.esperado, metodoDeGasto(tc.descripcion), tc.descripcion)
	}
}
