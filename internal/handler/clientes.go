package handler

import (
	"errors"
	"net/http"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/apierror"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ClientesHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	var filter dto.ClienteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar clientes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar cliente
// @Description  Baja lógica. El cliente general está protegido y no puede eliminarse.
// @Tags         clientes
// @Security     BearerAuth
// @Param        id path string true "UUID del cliente"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/clientes/{id} [delete]
func (h *ClientesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrClienteGeneral) {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Monedero lifecycle ───────────────────────────────────────────────────────

func (h *ClientesHandler) SolicitarMonedero(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.SolicitarMonedero(c.Request.Context(), id)
	if err != nil {
		c.JSON(monederoStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) ActivarMonedero(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ActivarMonedero(c.Request.Context(), id)
	if err != nil {
		c.JSON(monederoStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) DesactivarMonedero(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.DesactivarMonedero(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func monederoStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrClienteGeneral), errors.Is(err, service.ErrTelefonoEnUso):
		return http.StatusConflict
	case errors.Is(err, service.ErrSinTelefono):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
