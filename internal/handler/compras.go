package handler

import (
	"net/http"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/apierror"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar compra
// @Description  Alta de compra de reabastecimiento; suma la cantidad al stock del producto en la misma transacción.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearCompraRequest true "Detalle de la compra"
// @Success      201  {object} dto.CompraResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/compras [post]
func (h *ComprasHandler) Crear(c *gin.Context) {
	var req dto.CrearCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := actorFromClaims(c)
	resp, err := h.svc.Crear(c.Request.Context(), actor, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ComprasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarCompraRequest
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

func (h *ComprasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ComprasHandler) Listar(c *gin.Context) {
	var filter dto.CompraFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar compras"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
