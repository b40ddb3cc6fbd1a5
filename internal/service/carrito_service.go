package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/repository"

	"github.com/google/uuid"
)

var ErrLineaNoEncontrada = errors.New("línea no encontrada en el carrito")

// CarritoService manages the per-user pending sale. Nothing here touches
// stock or the monedero ledger: a cart only becomes real at ConfirmarVenta.
type CarritoService interface {
	Agregar(ctx context.Context, usuarioID uuid.UUID, req dto.AgregarLineaRequest) (*model.Carrito, error)
	EditarCantidad(ctx context.Context, usuarioID, lineaID uuid.UUID, cantidad int) (*model.Carrito, error)
	Quitar(ctx context.Context, usuarioID, lineaID uuid.UUID) (*model.Carrito, error)
	Obtener(ctx context.Context, usuarioID uuid.UUID) (*model.Carrito, error)
	Vaciar(ctx context.Context, usuarioID uuid.UUID) error
}

type carritoService struct {
	store        repository.CarritoStore
	productoRepo repository.ProductoRepository
	ajustesRepo  repository.AjustesRepository
}

func NewCarritoService(store repository.CarritoStore, productoRepo repository.ProductoRepository,
	ajustesRepo repository.AjustesRepository) CarritoService {
	return &carritoService{store: store, productoRepo: productoRepo, ajustesRepo: ajustesRepo}
}

// Agregar adds a line, merging with an existing pending line of the same
// product and correction flag instead of appending a duplicate row.
// Correction lines are stored with negative quantity.
func (s *carritoService) Agregar(ctx context.Context, usuarioID uuid.UUID, req dto.AgregarLineaRequest) (*model.Carrito, error) {
	p, err := s.productoRepo.FindByCodigo(ctx, req.Codigo)
	if err != nil {
		return nil, fmt.Errorf("producto %s no encontrado", req.Codigo)
	}
	ajustes, err := s.ajustesRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	carrito, err := s.store.Get(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	cantidad := req.Cantidad
	if req.EsCorreccion {
		cantidad = -cantidad
	}

	merged := false
	for i := range carrito.Lineas {
		l := &carrito.Lineas[i]
		if l.ProductoID == p.ID && l.EsCorreccion == req.EsCorreccion {
			l.Cantidad += cantidad
			l.TipoPrecio, l.PrecioUnitario, l.Importe = CotizarLinea(p, l.Cantidad, ajustes)
			if req.NotaCorreccion != "" {
				l.NotaCorreccion = req.NotaCorreccion
			}
			merged = true
			break
		}
	}

	if !merged {
		tipo, precio, importe := CotizarLinea(p, cantidad, ajustes)
		carrito.Lineas = append(carrito.Lineas, model.LineaCarrito{
			ID:             uuid.New(),
			ProductoID:     p.ID,
			Codigo:         p.Codigo,
			Descripcion:    p.Descripcion,
			Unidad:         p.Unidad,
			Cantidad:       cantidad,
			TipoPrecio:     tipo,
			PrecioUnitario: precio,
			Importe:        importe,
			EsCorreccion:   req.EsCorreccion,
			NotaCorreccion: req.NotaCorreccion,
		})
	}

	if err := s.store.Save(ctx, usuarioID, carrito); err != nil {
		return nil, err
	}
	return carrito, nil
}

// EditarCantidad re-resolves tier and price from the CURRENT product pricing,
// not the snapshot taken when the line was added — last edit wins until the
// cart is confirmed.
func (s *carritoService) EditarCantidad(ctx context.Context, usuarioID, lineaID uuid.UUID, cantidad int) (*model.Carrito, error) {
	carrito, err := s.store.Get(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	ajustes, err := s.ajustesRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	for i := range carrito.Lineas {
		l := &carrito.Lineas[i]
		if l.ID != lineaID {
			continue
		}
		p, err := s.productoRepo.FindByID(ctx, l.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto %s no encontrado", l.Codigo)
		}
		if l.EsCorreccion {
			cantidad = -abs(cantidad)
		} else {
			cantidad = abs(cantidad)
		}
		l.Cantidad = cantidad
		l.TipoPrecio, l.PrecioUnitario, l.Importe = CotizarLinea(p, cantidad, ajustes)

		if err := s.store.Save(ctx, usuarioID, carrito); err != nil {
			return nil, err
		}
		return carrito, nil
	}
	return nil, ErrLineaNoEncontrada
}

// Quitar removes a line unconditionally: nothing was persisted, so there is
// no stock or ledger effect to undo.
func (s *carritoService) Quitar(ctx context.Context, usuarioID, lineaID uuid.UUID) (*model.Carrito, error) {
	carrito, err := s.store.Get(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	for i := range carrito.Lineas {
		if carrito.Lineas[i].ID == lineaID {
			carrito.Lineas = append(carrito.Lineas[:i], carrito.Lineas[i+1:]...)
			if err := s.store.Save(ctx, usuarioID, carrito); err != nil {
				return nil, err
			}
			return carrito, nil
		}
	}
	return nil, ErrLineaNoEncontrada
}

func (s *carritoService) Obtener(ctx context.Context, usuarioID uuid.UUID) (*model.Carrito, error) {
	return s.store.Get(ctx, usuarioID)
}

func (s *carritoService) Vaciar(ctx context.Context, usuarioID uuid.UUID) error {
	return s.store.Clear(ctx, usuarioID)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
