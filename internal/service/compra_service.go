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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompraService registers restock purchases. Every stock effect runs in the
// same transaction as the purchase row: insert adds the quantity, edit
// applies the delta, delete takes it back out.
type CompraService interface {
	Crear(ctx context.Context, actor Actor, req dto.CrearCompraRequest) (*dto.CompraResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCompraRequest) (*dto.CompraResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error)
}

type compraService struct {
	repo         repository.CompraRepository
	productoRepo repository.ProductoRepository
	movStockRepo repository.MovimientoStockRepository
}

func NewCompraService(repo repository.CompraRepository, productoRepo repository.ProductoRepository,
	movStockRepo repository.MovimientoStockRepository) CompraService {
	return &compraService{repo: repo, productoRepo: productoRepo, movStockRepo: movStockRepo}
}

func (s *compraService) Crear(ctx context.Context, actor Actor, req dto.CrearCompraRequest) (*dto.CompraResponse, error) {
	p, err := s.productoRepo.FindByCodigo(ctx, req.Codigo)
	if err != nil {
		return nil, fmt.Errorf("producto %s no encontrado", req.Codigo)
	}

	fecha := time.Now()
	if req.Fecha != nil {
		if fecha, err = time.Parse("2006-01-02", *req.Fecha); err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
	}

	compra := &model.Compra{
		Fecha:         fecha,
		ProductoID:    p.ID,
		Codigo:        p.Codigo,
		Cantidad:      req.Cantidad,
		CostoUnitario: req.CostoUnitario,
		CostoTotal:    req.CostoUnitario.Mul(decimal.NewFromInt(int64(req.Cantidad))),
		UsuarioID:     actor.ID,
		UsuarioNombre: actor.Nombre,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, compra); err != nil {
			return err
		}
		if err := s.productoRepo.AjustarStockTx(tx, p.ID, compra.Cantidad); err != nil {
			return err
		}
		mov := &model.MovimientoStock{
			ProductoID:    p.ID,
			Tipo:          "compra",
			Cantidad:      compra.Cantidad,
			StockAnterior: p.StockActual,
			StockNuevo:    p.StockActual + compra.Cantidad,
			Motivo:        fmt.Sprintf("Compra de %d %s", compra.Cantidad, p.Unidad),
		}
		return s.movStockRepo.CreateTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}

	return compraToResponse(compra, p.Descripcion), nil
}

// Actualizar adjusts stock by the quantity delta so the product ends where
// it would have been had the purchase been captured correctly.
func (s *compraService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCompraRequest) (*dto.CompraResponse, error) {
	compra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("compra no encontrada")
	}

	delta := 0
	if req.Cantidad != nil {
		delta = *req.Cantidad - compra.Cantidad
		compra.Cantidad = *req.Cantidad
	}
	if req.CostoUnitario != nil {
		compra.CostoUnitario = *req.CostoUnitario
	}
	if req.Fecha != nil {
		fecha, err := time.Parse("2006-01-02", *req.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
		compra.Fecha = fecha
	}
	compra.CostoTotal = compra.CostoUnitario.Mul(decimal.NewFromInt(int64(compra.Cantidad)))

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, compra); err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		if err := s.productoRepo.AjustarStockTx(tx, compra.ProductoID, delta); err != nil {
			return err
		}
		stockAntes := 0
		if p, err := s.productoRepo.FindByIDTx(tx, compra.ProductoID); err == nil {
			stockAntes = p.StockActual - delta
		}
		mov := &model.MovimientoStock{
			ProductoID:    compra.ProductoID,
			Tipo:          "ajuste_compra",
			Cantidad:      delta,
			StockAnterior: stockAntes,
			StockNuevo:    stockAntes + delta,
			Motivo:        "Edición de compra",
		}
		return s.movStockRepo.CreateTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}

	descripcion := ""
	if compra.Producto != nil {
		descripcion = compra.Producto.Descripcion
	}
	return compraToResponse(compra, descripcion), nil
}

// Eliminar removes the purchase and decrements the stock it had added.
func (s *compraService) Eliminar(ctx context.Context, id uuid.UUID) error {
	compra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("compra no encontrada")
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return err
		}
		if err := s.productoRepo.AjustarStockTx(tx, compra.ProductoID, -compra.Cantidad); err != nil {
			return err
		}
		stockAntes := 0
		if p, err := s.productoRepo.FindByIDTx(tx, compra.ProductoID); err == nil {
			stockAntes = p.StockActual + compra.Cantidad
		}
		mov := &model.MovimientoStock{
			ProductoID:    compra.ProductoID,
			Tipo:          "ajuste_compra",
			Cantidad:      -compra.Cantidad,
			StockAnterior: stockAntes,
			StockNuevo:    stockAntes - compra.Cantidad,
			Motivo:        "Eliminación de compra",
		}
		return s.movStockRepo.CreateTx(tx, mov)
	})
}

func (s *compraService) Listar(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	compras, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CompraResponse, 0, len(compras))
	for i := range compras {
		descripcion := ""
		if compras[i].Producto != nil {
			descripcion = compras[i].Producto.Descripcion
		}
		data = append(data, *compraToResponse(&compras[i], descripcion))
	}
	return &dto.CompraListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func compraToResponse(c *model.Compra, descripcion string) *dto.CompraResponse {
	return &dto.CompraResponse{
		ID:            c.ID.String(),
		Fecha:         c.Fecha.Format("2006-01-02"),
		Codigo:        c.Codigo,
		Descripcion:   descripcion,
		Cantidad:      c.Cantidad,
		CostoUnitario: c.CostoUnitario,
		CostoTotal:    c.CostoTotal,
		UsuarioNombre: c.UsuarioNombre,
	}
}
