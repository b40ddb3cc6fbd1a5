package handler

import (
	"errors"
	"net/http"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/apierror"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/repository"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// Confirmar godoc
// @Summary      Confirmar venta
// @Description  Cierra el carrito del usuario en un folio nuevo: descuenta stock, liquida el pago y registra efectos de monedero en una transacción.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ConfirmarVentaRequest true "Cliente y método de pago"
// @Success      201  {object} dto.VentaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/ventas [post]
func (h *VentasHandler) Confirmar(c *gin.Context) {
	var req dto.ConfirmarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := actorFromClaims(c)

	resp, err := h.svc.ConfirmarVenta(c.Request.Context(), actor, req)
	if err != nil {
		var saldoErr *service.SaldoInsuficienteError
		switch {
		case errors.As(err, &saldoErr):
			c.JSON(http.StatusConflict, gin.H{
				"detail":     saldoErr.Error(),
				"disponible": saldoErr.Disponible,
				"faltante":   saldoErr.Faltante,
			})
		case errors.Is(err, repository.ErrStockInsuficiente):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Cancelar godoc
// @Summary      Cancelar folio
// @Description  Cancela todas las líneas del folio: restaura stock y revierte efectos de monedero. Las líneas se conservan para auditoría.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        folio path string                   true "Folio"
// @Param        body  body dto.CancelarFolioRequest true "Motivo de cancelación"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/ventas/{folio} [delete]
func (h *VentasHandler) Cancelar(c *gin.Context) {
	folio := c.Param("folio")
	var req dto.CancelarFolioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.CancelarFolio(c.Request.Context(), folio, req.Motivo); err != nil {
		switch {
		case errors.Is(err, service.ErrFolioNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrFolioYaCancelado):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VentasHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.ObtenerFolio(c.Request.Context(), c.Param("folio"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) EditarFolio(c *gin.Context) {
	folio := c.Param("folio")
	var req dto.EditarFolioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EditarFolio(c.Request.Context(), folio, req); err != nil {
		switch {
		case errors.Is(err, service.ErrFolioNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrFolioCancelado):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VentasHandler) EditarLinea(c *gin.Context) {
	lineaID, ok := parseID(c, "lineaId")
	if !ok {
		return
	}
	var req dto.EditarLineaVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EditarLinea(c.Request.Context(), lineaID, req.Cantidad); err != nil {
		switch {
		case errors.Is(err, service.ErrLineaCancelada):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		case errors.Is(err, repository.ErrStockInsuficiente):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Listar godoc
// @Summary      Listar ventas
// @Description  Folios agrupados con sus líneas; filtros por fecha y estado (default: activas de hoy).
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        fecha  query string false "Fecha YYYY-MM-DD (default: hoy)"
// @Param        estado query string false "activa | cancelada | all"
// @Success      200    {object} dto.VentaListResponse
// @Router       /v1/ventas [get]
func (h *VentasHandler) Listar(c *gin.Context) {
	var filter dto.VentaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarVentas(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
