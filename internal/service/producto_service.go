package service

import (
	"context"
	"errors"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/repository"

	"github.com/google/uuid"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
	Movimientos(ctx context.Context, id uuid.UUID, limit int) ([]model.MovimientoStock, error)
}

type productoService struct {
	repo         repository.ProductoRepository
	movStockRepo repository.MovimientoStockRepository
}

func NewProductoService(repo repository.ProductoRepository, movStockRepo repository.MovimientoStockRepository) ProductoService {
	return &productoService{repo: repo, movStockRepo: movStockRepo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if _, err := s.repo.FindByCodigo(ctx, req.Codigo); err == nil {
		return nil, errors.New("ya existe un producto con ese código")
	}
	unidad := req.Unidad
	if unidad == "" {
		unidad = "pieza"
	}
	p := &model.Producto{
		Codigo:             req.Codigo,
		Descripcion:        req.Descripcion,
		Categoria:          req.Categoria,
		Unidad:             unidad,
		Costo:              req.Costo,
		PrecioMenudeo:      req.PrecioMenudeo,
		PrecioMedioMayoreo: req.PrecioMedioMayoreo,
		PrecioMayoreo:      req.PrecioMayoreo,
		StockInicial:       req.StockInicial,
		StockActual:        req.StockInicial,
		Activo:             true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		data = append(data, *productoToResponse(&productos[i]))
	}
	return &dto.ProductoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Actualizar edits catalog fields only. Stock is never edited here: it moves
// exclusively through the venta/compra/cancelación flows.
func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if req.Categoria != nil {
		p.Categoria = *req.Categoria
	}
	if req.Unidad != nil {
		p.Unidad = *req.Unidad
	}
	if req.Costo != nil {
		p.Costo = *req.Costo
	}
	if req.PrecioMenudeo != nil {
		p.PrecioMenudeo = *req.PrecioMenudeo
	}
	if req.PrecioMedioMayoreo != nil {
		p.PrecioMedioMayoreo = *req.PrecioMedioMayoreo
	}
	if req.PrecioMayoreo != nil {
		p.PrecioMayoreo = *req.PrecioMayoreo
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *productoService) Reactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivar(ctx, id)
}

func (s *productoService) Movimientos(ctx context.Context, id uuid.UUID, limit int) ([]model.MovimientoStock, error) {
	return s.movStockRepo.ListByProducto(ctx, id, limit)
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:                 p.ID.String(),
		Codigo:             p.Codigo,
		Descripcion:        p.Descripcion,
		Categoria:          p.Categoria,
		Unidad:             p.Unidad,
		Costo:              p.Costo,
		PrecioMenudeo:      p.PrecioMenudeo,
		PrecioMedioMayoreo: p.PrecioMedioMayoreo,
		PrecioMayoreo:      p.PrecioMayoreo,
		StockInicial:       p.StockInicial,
		StockActual:        p.StockActual,
		Activo:             p.Activo,
	}
}
