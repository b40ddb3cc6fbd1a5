package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/repository"

	"github.com/google/uuid"
)

// GastoService is plain expense bookkeeping: no stock, no monedero.
type GastoService interface {
	Crear(ctx context.Context, actor Actor, req dto.CrearGastoRequest) (*dto.GastoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarGastoRequest) (*dto.GastoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context, filter dto.GastoFilter) (*dto.GastoListResponse, error)
}

type gastoService struct {
	repo repository.GastoRepository
}

func NewGastoService(repo repository.GastoRepository) GastoService {
	return &gastoService{repo: repo}
}

func (s *gastoService) Crear(ctx context.Context, actor Actor, req dto.CrearGastoRequest) (*dto.GastoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, errors.New("el monto debe ser positivo")
	}
	fecha := time.Now()
	if req.Fecha != nil {
		var err error
		if fecha, err = time.Parse("2006-01-02", *req.Fecha); err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
	}
	g := &model.Gasto{
		Descripcion:   req.Descripcion,
		Monto:         req.Monto,
		Tipo:          req.Tipo,
		Categoria:     req.Categoria,
		Fecha:         fecha,
		UsuarioID:     actor.ID,
		UsuarioNombre: actor.Nombre,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return gastoToResponse(g), nil
}

func (s *gastoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarGastoRequest) (*dto.GastoResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("gasto no encontrado")
	}
	if req.Descripcion != nil {
		g.Descripcion = *req.Descripcion
	}
	if req.Monto != nil {
		if !req.Monto.IsPositive() {
			return nil, errors.New("el monto debe ser positivo")
		}
		g.Monto = *req.Monto
	}
	if req.Tipo != nil {
		g.Tipo = *req.Tipo
	}
	if req.Categoria != nil {
		g.Categoria = *req.Categoria
	}
	if req.Fecha != nil {
		fecha, err := time.Parse("2006-01-02", *req.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
		g.Fecha = fecha
	}
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return gastoToResponse(g), nil
}

func (s *gastoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *gastoService) Listar(ctx context.Context, filter dto.GastoFilter) (*dto.GastoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	gastos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.GastoResponse, 0, len(gastos))
	for i := range gastos {
		data = append(data, *gastoToResponse(&gastos[i]))
	}
	return &dto.GastoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func gastoToResponse(g *model.Gasto) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:            g.ID.String(),
		Descripcion:   g.Descripcion,
		Monto:         g.Monto,
		Tipo:          g.Tipo,
		Categoria:     g.Categoria,
		Fecha:         g.Fecha.Format("2006-01-02"),
		UsuarioNombre: g.UsuarioNombre,
	}
}
