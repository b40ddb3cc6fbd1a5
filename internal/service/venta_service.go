package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/repository"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCarritoVacio      = errors.New("el carrito está vacío")
	ErrFolioNoEncontrado = errors.New("folio no encontrado")
	ErrFolioYaCancelado  = errors.New("el folio ya está cancelado")
	ErrFolioCancelado    = errors.New("no se puede editar un folio cancelado")
	ErrLineaCancelada    = errors.New("no se puede editar una línea cancelada")
)

// Actor is the authenticated session identity stamped on every sale line.
// The session identity always wins over whatever the cart carried.
type Actor struct {
	ID     uuid.UUID
	Nombre string
}

type VentaService interface {
	ConfirmarVenta(ctx context.Context, actor Actor, req dto.ConfirmarVentaRequest) (*dto.VentaResponse, error)
	CancelarFolio(ctx context.Context, folio, motivo string) error
	ObtenerFolio(ctx context.Context, folio string) (*dto.VentaResponse, error)
	EditarFolio(ctx context.Context, folio string, req dto.EditarFolioRequest) error
	EditarLinea(ctx context.Context, lineaID uuid.UUID, cantidad int) error
	ListarVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	ajustesRepo  repository.AjustesRepository
	movStockRepo repository.MovimientoStockRepository
	carrito      CarritoService
	monedero     MonederoService
	dispatcher   *worker.Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	ajustesRepo repository.AjustesRepository,
	movStockRepo repository.MovimientoStockRepository,
	carrito CarritoService,
	monedero MonederoService,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		repo:         repo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		ajustesRepo:  ajustesRepo,
		movStockRepo: movStockRepo,
		carrito:      carrito,
		monedero:     monedero,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── ConfirmarVenta ────────────────────────────────────────────────────────────
// Closes the actor's cart into a new folio:
//   1. Validate client and settle the payment (all rejections happen here,
//      before anything is written).
//   2. BEGIN TX: sequence-allocated folio, one row per cart line, guarded
//      stock decrement + movimiento per line, monedero effects.
//   3. COMMIT, clear the cart, enqueue the ticket email.

func (s *ventaService) ConfirmarVenta(ctx context.Context, actor Actor, req dto.ConfirmarVentaRequest) (*dto.VentaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente_id inválido: %w", err)
	}
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}

	carrito, err := s.carrito.Obtener(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if len(carrito.Lineas) == 0 {
		return nil, ErrCarritoVacio
	}
	total := carrito.Total()

	saldo := decimal.Zero
	if !cliente.EsGeneral() {
		if saldo, err = s.monedero.Saldo(ctx, clienteID); err != nil {
			return nil, err
		}
	}

	liq, err := Liquidar(total, req.MetodoPago, req.Desglose, cliente, saldo)
	if err != nil {
		return nil, err
	}

	ajustes, err := s.ajustesRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	var folio string
	var lineas []model.Venta
	ganado := decimal.Zero
	fecha := time.Now()

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		folio, err = s.repo.NextFolioTx(tx)
		if err != nil {
			return err
		}

		lineas = lineas[:0]
		for _, l := range carrito.Lineas {
			lineas = append(lineas, model.Venta{
				Folio:               folio,
				Fecha:               fecha,
				ProductoID:          l.ProductoID,
				Codigo:              l.Codigo,
				DescripcionProducto: l.Descripcion,
				Unidad:              l.Unidad,
				Cantidad:            l.Cantidad,
				TipoPrecio:          l.TipoPrecio,
				PrecioUnitario:      l.PrecioUnitario,
				Importe:             l.Importe,
				VendedorID:          actor.ID,
				VendedorNombre:      actor.Nombre,
				ClienteID:           cliente.ID,
				ClienteNombre:       cliente.Nombre,
				MetodoPago:          liq.Metodo,
				DesglosePago:        liq.Desglose,
				EsCorreccion:        l.EsCorreccion,
				NotaCorreccion:      l.NotaCorreccion,
			})
		}
		if err := s.repo.CreateLineasTx(tx, lineas); err != nil {
			return err
		}

		for _, l := range carrito.Lineas {
			stockAntes := 0
			if antes, err := s.productoRepo.FindByIDTx(tx, l.ProductoID); err == nil {
				stockAntes = antes.StockActual
			}

			if err := s.productoRepo.DescontarStockTx(tx, l.ProductoID, l.Cantidad); err != nil {
				return fmt.Errorf("stock de %s: %w", l.Codigo, err)
			}

			f := folio
			mov := &model.MovimientoStock{
				ProductoID:    l.ProductoID,
				Tipo:          "venta",
				Cantidad:      -l.Cantidad,
				StockAnterior: stockAntes,
				StockNuevo:    stockAntes - l.Cantidad,
				Motivo:        fmt.Sprintf("Venta folio %s", folio),
				Folio:         &f,
			}
			if err := s.movStockRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}

		ganado, err = s.monedero.RegistrarEfectosVenta(tx, lineas, liq, folio, cliente, ajustes.PorcentajeMonedero)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.carrito.Vaciar(ctx, actor.ID); err != nil {
		// The sale is committed; an orphaned cart is recoverable by the user.
		err = nil
	}

	// Ticket email — best-effort, fire & forget.
	if s.dispatcher != nil && cliente.Email != nil && *cliente.Email != "" {
		_ = s.dispatcher.EnqueueTicket(ctx, map[string]interface{}{
			"folio":          folio,
			"cliente_email":  *cliente.Email,
			"cliente_nombre": cliente.Nombre,
			"total":          total.StringFixed(2),
		})
	}

	resp := lineasToResponse(folio, lineas)
	resp.PuntosGanados = ganado
	return resp, nil
}

// ── CancelarFolio ─────────────────────────────────────────────────────────────
// Cancellation preserves every line for audit: amounts and quantities are
// kept, the lines are flagged, stock is restored, and the monedero ledger
// gets compensating entries. All in one transaction; the compare-and-set on
// cancelada closes the double-cancel race.

func (s *ventaService) CancelarFolio(ctx context.Context, folio, motivo string) error {
	lineas, err := s.repo.FindByFolio(ctx, folio)
	if err != nil {
		return err
	}
	if len(lineas) == 0 {
		return ErrFolioNoEncontrado
	}

	nota := "CANCELADO: " + motivo
	clienteID := lineas[0].ClienteID

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		afectadas, err := s.repo.CancelarFolioTx(tx, folio, nota)
		if err != nil {
			return err
		}
		if afectadas == 0 {
			return ErrFolioYaCancelado
		}

		for _, l := range lineas {
			stockAntes := 0
			if antes, err := s.productoRepo.FindByIDTx(tx, l.ProductoID); err == nil {
				stockAntes = antes.StockActual
			}

			if err := s.productoRepo.AjustarStockTx(tx, l.ProductoID, l.Cantidad); err != nil {
				return err
			}

			f := folio
			mov := &model.MovimientoStock{
				ProductoID:    l.ProductoID,
				Tipo:          "cancelacion",
				Cantidad:      l.Cantidad,
				StockAnterior: stockAntes,
				StockNuevo:    stockAntes + l.Cantidad,
				Motivo:        fmt.Sprintf("Cancelación folio %s — %s", folio, motivo),
				Folio:         &f,
			}
			if err := s.movStockRepo.CreateTx(tx, mov); err != nil {
				return err
			}
		}

		if clienteID != model.ClienteGeneralID {
			return s.monedero.RevertirFolio(tx, folio, clienteID)
		}
		return nil
	})
}

func (s *ventaService) ObtenerFolio(ctx context.Context, folio string) (*dto.VentaResponse, error) {
	lineas, err := s.repo.FindByFolio(ctx, folio)
	if err != nil {
		return nil, err
	}
	if len(lineas) == 0 {
		return nil, ErrFolioNoEncontrado
	}
	return lineasToResponse(folio, lineas), nil
}

// EditarFolio overwrites fecha and/or cliente on a non-cancelled folio.
// Direct field overwrite: no stock or monedero side effects.
func (s *ventaService) EditarFolio(ctx context.Context, folio string, req dto.EditarFolioRequest) error {
	campos := map[string]interface{}{}
	if req.Fecha != nil {
		fecha, err := time.Parse("2006-01-02", *req.Fecha)
		if err != nil {
			return fmt.Errorf("fecha inválida: %w", err)
		}
		campos["fecha"] = fecha
	}
	if req.ClienteID != nil {
		clienteID, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return fmt.Errorf("cliente_id inválido: %w", err)
		}
		cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
		if err != nil {
			return errors.New("cliente no encontrado")
		}
		campos["cliente_id"] = cliente.ID
		campos["cliente_nombre"] = cliente.Nombre
	}
	if len(campos) == 0 {
		return nil
	}

	afectadas, err := s.repo.UpdateFolio(ctx, folio, campos)
	if err != nil {
		return err
	}
	if afectadas == 0 {
		// Either the folio does not exist or every line is cancelled.
		if lineas, err := s.repo.FindByFolio(ctx, folio); err == nil && len(lineas) > 0 {
			return ErrFolioCancelado
		}
		return ErrFolioNoEncontrado
	}
	return nil
}

// EditarLinea changes the quantity of a persisted line. The unit price stays
// the frozen snapshot; only the amount is recomputed, and stock absorbs the
// quantity delta.
func (s *ventaService) EditarLinea(ctx context.Context, lineaID uuid.UUID, cantidad int) error {
	linea, err := s.repo.FindLineaByID(ctx, lineaID)
	if err != nil {
		return errors.New("línea de venta no encontrada")
	}
	if linea.Cancelada {
		return ErrLineaCancelada
	}
	if linea.EsCorreccion {
		cantidad = -abs(cantidad)
	} else {
		cantidad = abs(cantidad)
	}
	if cantidad == linea.Cantidad {
		return nil
	}
	delta := cantidad - linea.Cantidad

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.productoRepo.DescontarStockTx(tx, linea.ProductoID, delta); err != nil {
			return fmt.Errorf("stock de %s: %w", linea.Codigo, err)
		}

		stockAntes := 0
		if antes, err := s.productoRepo.FindByIDTx(tx, linea.ProductoID); err == nil {
			stockAntes = antes.StockActual + delta
		}
		f := linea.Folio
		mov := &model.MovimientoStock{
			ProductoID:    linea.ProductoID,
			Tipo:          "edicion_venta",
			Cantidad:      -delta,
			StockAnterior: stockAntes,
			StockNuevo:    stockAntes - delta,
			Motivo:        fmt.Sprintf("Edición de cantidad folio %s", linea.Folio),
			Folio:         &f,
		}
		if err := s.movStockRepo.CreateTx(tx, mov); err != nil {
			return err
		}

		linea.Cantidad = cantidad
		linea.Importe = linea.PrecioUnitario.Mul(decimal.NewFromInt(int64(cantidad)))
		return s.repo.UpdateLineaTx(tx, linea)
	})
}

// ListarVentas returns folios (grouped lines), filtered by date and estado.
// Default filter: today's active folios.
func (s *ventaService) ListarVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	if filter.Estado == "" {
		filter.Estado = "activa"
	}
	lineas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Group rows into folios preserving the query order.
	orden := make([]string, 0)
	porFolio := make(map[string][]model.Venta)
	for _, l := range lineas {
		if _, ok := porFolio[l.Folio]; !ok {
			orden = append(orden, l.Folio)
		}
		porFolio[l.Folio] = append(porFolio[l.Folio], l)
	}

	data := make([]dto.VentaResponse, 0, len(orden))
	for _, folio := range orden {
		data = append(data, *lineasToResponse(folio, porFolio[folio]))
	}
	return &dto.VentaListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func lineasToResponse(folio string, lineas []model.Venta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		Folio:  folio,
		Lineas: make([]dto.LineaVentaResponse, 0, len(lineas)),
	}
	total := decimal.Zero
	cancelada := len(lineas) > 0
	for _, l := range lineas {
		total = total.Add(l.Importe)
		if !l.Cancelada {
			cancelada = false
		}
		resp.Lineas = append(resp.Lineas, dto.LineaVentaResponse{
			ID:             l.ID.String(),
			Codigo:         l.Codigo,
			Descripcion:    l.DescripcionProducto,
			Unidad:         l.Unidad,
			Cantidad:       l.Cantidad,
			TipoPrecio:     string(l.TipoPrecio),
			PrecioUnitario: l.PrecioUnitario,
			Importe:        l.Importe,
			EsCorreccion:   l.EsCorreccion,
			Cancelada:      l.Cancelada,
			NotaCorreccion: l.NotaCorreccion,
		})
	}
	if len(lineas) > 0 {
		primera := lineas[0]
		resp.Fecha = primera.Fecha.Format("2006-01-02T15:04:05Z")
		resp.ClienteID = primera.ClienteID.String()
		resp.ClienteNombre = primera.ClienteNombre
		resp.VendedorNombre = primera.VendedorNombre
		resp.MetodoPago = primera.MetodoPago
		resp.Desglose = primera.DesglosePago
	}
	resp.Total = total
	resp.Cancelada = cancelada
	return resp
}
