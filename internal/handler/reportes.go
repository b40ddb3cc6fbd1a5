package handler

import (
	"net/http"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/apierror"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// FlujoDeCaja godoc
// @Summary      Flujo de caja
// @Description  Ingresos por método de pago (expandiendo desgloses), gastos, compras y neto para un rango de fechas.
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        desde query string true "Fecha inicial YYYY-MM-DD"
// @Param        hasta query string true "Fecha final YYYY-MM-DD"
// @Success      200 {object} dto.FlujoCajaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/reportes/flujo-caja [get]
func (h *ReportesHandler) FlujoDeCaja(c *gin.Context) {
	var filter dto.ReporteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("desde y hasta son requeridos (YYYY-MM-DD)"))
		return
	}
	resp, err := h.svc.FlujoDeCaja(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
