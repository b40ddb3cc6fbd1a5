package service

import (
	"context"
	"testing"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolicitarMonedero(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoInactivo)
	svc := NewClienteService(newStubClienteRepo(cliente))

	resp, err := svc.SolicitarMonedero(context.Background(), cliente.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.MonederoPendiente), resp.EstadoMonedero)
}

func TestSolicitarMonederoSinTelefono(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoInactivo)
	cliente.Telefono = ""
	svc := NewClienteService(newStubClienteRepo(cliente))

	_, err := svc.SolicitarMonedero(context.Background(), cliente.ID)
	assert.ErrorIs(t, err, ErrSinTelefono)
}

func TestSolicitarMonederoTelefonoEnUso(t *testing.T) {
	otra := testCliente("Otra", model.MonederoActivo)
	cliente := testCliente("Ana", model.MonederoInactivo)
	// Both fixtures share the same phone number.
	svc := NewClienteService(newStubClienteRepo(otra, cliente))

	_, err := svc.SolicitarMonedero(context.Background(), cliente.ID)
	assert.ErrorIs(t, err, ErrTelefonoEnUso)
}

func TestSolicitarMonederoClienteGeneral(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo(clienteGeneral()))
	_, err := svc.SolicitarMonedero(context.Background(), model.ClienteGeneralID)
	assert.ErrorIs(t, err, ErrClienteGeneral)
}

func TestActivarYDesactivarMonedero(t *testing.T) {
	cliente := testCliente("Ana", model.MonederoPendiente)
	svc := NewClienteService(newStubClienteRepo(cliente))

	resp, err := svc.ActivarMonedero(context.Background(), cliente.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.MonederoActivo), resp.EstadoMonedero)

	// Deactivation stops redemption but keeps the ledger and balance.
	resp, err = svc.DesactivarMonedero(context.Background(), cliente.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.MonederoInactivo), resp.EstadoMonedero)
}

func TestActivarMonederoClienteGeneral(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo(clienteGeneral()))
	_, err := svc.ActivarMonedero(context.Background(), model.ClienteGeneralID)
	assert.ErrorIs(t, err, ErrClienteGeneral)
}

func TestEliminarClienteGeneral(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo(clienteGeneral()))
	assert.ErrorIs(t, svc.Eliminar(context.Background(), model.ClienteGeneralID), ErrClienteGeneral)
}
