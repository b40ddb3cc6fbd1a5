package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/apierror"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type MonederoHandler struct {
	svc        service.MonederoService
	clienteSvc service.ClienteService
}

func NewMonederoHandler(svc service.MonederoService, clienteSvc service.ClienteService) *MonederoHandler {
	return &MonederoHandler{svc: svc, clienteSvc: clienteSvc}
}

// Saldo godoc
// @Summary      Saldo de monedero
// @Description  Saldo actual del cliente: suma de todos los movimientos del libro.
// @Tags         monedero
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del cliente"
// @Success      200 {object} dto.SaldoResponse
// @Router       /v1/clientes/{id}/monedero [get]
func (h *MonederoHandler) Saldo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cliente, err := h.clienteSvc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	saldo, err := h.svc.Saldo(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar saldo"))
		return
	}
	c.JSON(http.StatusOK, dto.SaldoResponse{
		ClienteID:      id.String(),
		Saldo:          saldo,
		EstadoMonedero: cliente.EstadoMonedero,
	})
}

// EstadoCuenta returns the balance plus the most recent ledger entries.
func (h *MonederoHandler) EstadoCuenta(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	resp, err := h.svc.EstadoCuenta(c.Request.Context(), id, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar estado de cuenta"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MonederoHandler) Deposito(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.MovimientoManualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Deposito(c.Request.Context(), id, req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusCreated)
}

func (h *MonederoHandler) Retiro(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.MovimientoManualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Retiro(c.Request.Context(), id, req); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrSaldoRetiro) || errors.Is(err, service.ErrMonederoNoActivo) {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusCreated)
}
