package handler

import (
	"errors"
	"net/http"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/apierror"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type AjustesHandler struct{ svc service.AjustesService }

func NewAjustesHandler(svc service.AjustesService) *AjustesHandler {
	return &AjustesHandler{svc: svc}
}

func (h *AjustesHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener ajustes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar ajustes
// @Description  Configuración del negocio: umbrales de precio por volumen y porcentaje de monedero. Umbrales no positivos se rechazan.
// @Tags         ajustes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ActualizarAjustesRequest true "Campos a actualizar"
// @Success      200 {object} dto.AjustesResponse
// @Failure      422 {object} apierror.APIError
// @Router       /v1/ajustes [put]
func (h *AjustesHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarAjustesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrUmbralesInvalidos) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
