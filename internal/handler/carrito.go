package handler

import (
	"errors"
	"net/http"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/apierror"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// CarritoHandler exposes the per-user pending sale. Every route operates on
// the cart of the authenticated user; there is no cross-user access.
type CarritoHandler struct{ svc service.CarritoService }

func NewCarritoHandler(svc service.CarritoService) *CarritoHandler {
	return &CarritoHandler{svc: svc}
}

func (h *CarritoHandler) Agregar(c *gin.Context) {
	var req dto.AgregarLineaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := actorFromClaims(c)
	carrito, err := h.svc.Agregar(c.Request.Context(), actor.ID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, carritoToResponse(carrito))
}

func (h *CarritoHandler) Obtener(c *gin.Context) {
	actor := actorFromClaims(c)
	carrito, err := h.svc.Obtener(c.Request.Context(), actor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener carrito"))
		return
	}
	c.JSON(http.StatusOK, carritoToResponse(carrito))
}

func (h *CarritoHandler) EditarCantidad(c *gin.Context) {
	lineaID, ok := parseID(c, "lineaId")
	if !ok {
		return
	}
	var req dto.EditarCantidadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := actorFromClaims(c)
	carrito, err := h.svc.EditarCantidad(c.Request.Context(), actor.ID, lineaID, req.Cantidad)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrLineaNoEncontrada) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, carritoToResponse(carrito))
}

func (h *CarritoHandler) Quitar(c *gin.Context) {
	lineaID, ok := parseID(c, "lineaId")
	if !ok {
		return
	}
	actor := actorFromClaims(c)
	carrito, err := h.svc.Quitar(c.Request.Context(), actor.ID, lineaID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrLineaNoEncontrada) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, carritoToResponse(carrito))
}

func (h *CarritoHandler) Vaciar(c *gin.Context) {
	actor := actorFromClaims(c)
	if err := h.svc.Vaciar(c.Request.Context(), actor.ID); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al vaciar carrito"))
		return
	}
	c.Status(http.StatusNoContent)
}

func carritoToResponse(carrito *model.Carrito) *dto.CarritoResponse {
	resp := &dto.CarritoResponse{
		Lineas: make([]dto.LineaCarritoResponse, 0, len(carrito.Lineas)),
		Total:  carrito.Total(),
	}
	for _, l := range carrito.Lineas {
		resp.Lineas = append(resp.Lineas, dto.LineaCarritoResponse{
			ID:             l.ID.String(),
			ProductoID:     l.ProductoID.String(),
			Codigo:         l.Codigo,
			Descripcion:    l.Descripcion,
			Unidad:         l.Unidad,
			Cantidad:       l.Cantidad,
			TipoPrecio:     string(l.TipoPrecio),
			PrecioUnitario: l.PrecioUnitario,
			Importe:        l.Importe,
			EsCorreccion:   l.EsCorreccion,
			NotaCorreccion: l.NotaCorreccion,
		})
	}
	return resp
}
