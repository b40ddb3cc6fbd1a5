package service

import (
	"context"
	"testing"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAjustesActualizarUmbrales(t *testing.T) {
	svc := NewAjustesService(newStubAjustesRepo())

	medio, mayoreo := 4, 10
	porcentaje := decimal.NewFromInt(3)
	resp, err := svc.Actualizar(context.Background(), dto.ActualizarAjustesRequest{
		MinMedioMayoreo:    &medio,
		MinMayoreo:         &mayoreo,
		PorcentajeMonedero: &porcentaje,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.MinMedioMayoreo)
	assert.Equal(t, 10, resp.MinMayoreo)
	assert.True(t, resp.PorcentajeMonedero.Equal(decimal.NewFromInt(3)))
}

func TestAjustesUmbralesInvertidos(t *testing.T) {
	svc := NewAjustesService(newStubAjustesRepo())

	medio, mayoreo := 15, 10
	_, err := svc.Actualizar(context.Background(), dto.ActualizarAjustesRequest{
		MinMedioMayoreo: &medio,
		MinMayoreo:      &mayoreo,
	})
	assert.ErrorIs(t, err, ErrUmbralesInvalidos)
}

func TestAjustesPorcentajeNegativo(t *testing.T) {
	svc := NewAjustesService(newStubAjustesRepo())

	porcentaje := decimal.NewFromInt(-1)
	_, err := svc.Actualizar(context.Background(), dto.ActualizarAjustesRequest{
		PorcentajeMonedero: &porcentaje,
	})
	assert.Error(t, err)
}
