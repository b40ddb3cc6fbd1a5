package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/repository"

	"github.com/shopspring/decimal"
)

// ReporteService produces the cash-flow summary used by the daily corte and
// the on-demand report endpoint.
type ReporteService interface {
	FlujoDeCaja(ctx context.Context, filter dto.ReporteFilter) (*dto.FlujoCajaResponse, error)
}

type reporteService struct {
	ventaRepo  repository.VentaRepository
	gastoRepo  repository.GastoRepository
	compraRepo repository.CompraRepository
}

func NewReporteService(ventaRepo repository.VentaRepository, gastoRepo repository.GastoRepository,
	compraRepo repository.CompraRepository) ReporteService {
	return &reporteService{ventaRepo: ventaRepo, gastoRepo: gastoRepo, compraRepo: compraRepo}
}

func (s *reporteService) FlujoDeCaja(ctx context.Context, filter dto.ReporteFilter) (*dto.FlujoCajaResponse, error) {
	desde, err := time.Parse("2006-01-02", filter.Desde)
	if err != nil {
		return nil, fmt.Errorf("fecha desde inválida: %w", err)
	}
	hasta, err := time.Parse("2006-01-02", filter.Hasta)
	if err != nil {
		return nil, fmt.Errorf("fecha hasta inválida: %w", err)
	}
	// Half-open range: hasta is inclusive as a calendar day.
	hastaExcl := hasta.AddDate(0, 0, 1)

	lineas, err := s.ventaRepo.ListByRango(ctx, desde, hastaExcl)
	if err != nil {
		return nil, err
	}

	ingresos := map[string]decimal.Decimal{}
	totalIngresos := decimal.Zero
	// Split payments carry one desglose per folio, repeated on every line,
	// so attribution has to happen per folio, not per line.
	porFolio := map[string]*folioAcum{}
	orden := []string{}
	for i := range lineas {
		l := &lineas[i]
		if l.Cancelada {
			continue
		}
		acc, ok := porFolio[l.Folio]
		if !ok {
			acc = &folioAcum{metodo: l.MetodoPago, desglose: l.DesglosePago}
			porFolio[l.Folio] = acc
			orden = append(orden, l.Folio)
		}
		acc.total = acc.total.Add(l.Importe)
	}
	for _, folio := range orden {
		acc := porFolio[folio]
		if acc.metodo == model.MetodoMultiple && acc.desglose != nil {
			for metodo, monto := range acc.desglose {
				ingresos[metodo] = ingresos[metodo].Add(monto)
			}
		} else {
			ingresos[acc.metodo] = ingresos[acc.metodo].Add(acc.total)
		}
		totalIngresos = totalIngresos.Add(acc.total)
	}

	gastos, err := s.gastoRepo.ListByRango(ctx, desde, hastaExcl)
	if err != nil {
		return nil, err
	}
	egresos := map[string]decimal.Decimal{}
	totalGastos := decimal.Zero
	for i := range gastos {
		metodo := metodoDeGasto(gastos[i].Descripcion)
		egresos[metodo] = egresos[metodo].Add(gastos[i].Monto)
		totalGastos = totalGastos.Add(gastos[i].Monto)
	}

	totalCompras, err := s.compraRepo.SumByRango(ctx, desde, hastaExcl)
	if err != nil {
		return nil, err
	}

	totalEgresos := totalGastos.Add(totalCompras)
	return &dto.FlujoCajaResponse{
		Desde:             filter.Desde,
		Hasta:             filter.Hasta,
		IngresosPorMetodo: ingresos,
		TotalIngresos:     totalIngresos,
		EgresosPorMetodo:  egresos,
		TotalGastos:       totalGastos,
		TotalCompras:      totalCompras,
		TotalEgresos:      totalEgresos,
		Neto:              totalIngresos.Sub(totalEgresos),
	}, nil
}

type folioAcum struct {
	metodo   string
	desglose model.Desglose
	total    decimal.Decimal
}

// metodoDeGasto reads a trailing "[metodo]" tag from the expense description.
// "Renta local [transferencia]" attributes to transferencia; untagged
// expenses default to efectivo.
func metodoDeGasto(descripcion string) string {
	d := strings.TrimSpace(descripcion)
	if !strings.HasSuffix(d, "]") {
		return model.MetodoEfectivo
	}
	i := strings.LastIndex(d, "[")
	if i < 0 {
		return model.MetodoEfectivo
	}
	tag := strings.TrimSpace(d[i+1 : len(d)-1])
	switch tag {
	case model.MetodoEfectivo, model.MetodoTarjetaCredito, model.MetodoTarjetaDebito,
		model.MetodoTransferencia, model.MetodoMonedero:
		return tag
	}
	return model.MetodoEfectivo
}
