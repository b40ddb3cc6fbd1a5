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

// In-memory repository stubs shared by the service tests. All Tx variants
// accept a nil *gorm.DB: runTx skips the transaction when DB() returns nil.

// ── Producto ─────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo(productos ...*model.Producto) *stubProductoRepo {
	r := &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
	for _, p := range productos {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.productos[p.ID] = p
	}
	return r
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.Codigo == codigo && p.Activo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = false
	}
	return nil
}

func (r *stubProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = true
	}
	return nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID, cantidad int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if cantidad > 0 && p.StockActual < cantidad {
		return repository.ErrStockInsuficiente
	}
	p.StockActual -= cantidad
	return nil
}

func (r *stubProductoRepo) AjustarStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockActual += delta
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Venta ────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	lineas   []*model.Venta
	folioSeq int64
}

func newStubVentaRepo() *stubVentaRepo { return &stubVentaRepo{} }

func (r *stubVentaRepo) CreateLineasTx(_ *gorm.DB, lineas []model.Venta) error {
	for i := range lineas {
		if lineas[i].ID == uuid.Nil {
			lineas[i].ID = uuid.New()
		}
		cp := lineas[i]
		r.lineas = append(r.lineas, &cp)
	}
	return nil
}

func (r *stubVentaRepo) FindByFolio(_ context.Context, folio string) ([]model.Venta, error) {
	var out []model.Venta
	for _, l := range r.lineas {
		if l.Folio == folio {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) FindByFolioTx(_ *gorm.DB, folio string) ([]model.Venta, error) {
	return r.FindByFolio(context.Background(), folio)
}

func (r *stubVentaRepo) FindLineaByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	for _, l := range r.lineas {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVentaRepo) NextFolioTx(_ *gorm.DB) (string, error) {
	r.folioSeq++
	return fmt.Sprintf("%06d", r.folioSeq), nil
}

func (r *stubVentaRepo) CancelarFolioTx(_ *gorm.DB, folio, nota string) (int64, error) {
	var afectadas int64
	for _, l := range r.lineas {
		if l.Folio == folio && !l.Cancelada {
			l.Cancelada = true
			l.NotaCorreccion = nota
			afectadas++
		}
	}
	return afectadas, nil
}

func (r *stubVentaRepo) UpdateLineaTx(_ *gorm.DB, linea *model.Venta) error {
	for i, l := range r.lineas {
		if l.ID == linea.ID {
			cp := *linea
			r.lineas[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubVentaRepo) UpdateFolio(_ context.Context, folio string, campos map[string]interface{}) (int64, error) {
	var afectadas int64
	for _, l := range r.lineas {
		if l.Folio != folio || l.Cancelada {
			continue
		}
		if v, ok := campos["fecha"]; ok {
			l.Fecha = v.(time.Time)
		}
		if v, ok := campos["cliente_id"]; ok {
			l.ClienteID = v.(uuid.UUID)
		}
		if v, ok := campos["cliente_nombre"]; ok {
			l.ClienteNombre = v.(string)
		}
		afectadas++
	}
	return afectadas, nil
}

func (r *stubVentaRepo) List(_ context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, l := range r.lineas {
		switch filter.Estado {
		case "cancelada":
			if !l.Cancelada {
				continue
			}
		case "all":
		default:
			if l.Cancelada {
				continue
			}
		}
		if filter.Folio != "" && l.Folio != filter.Folio {
			continue
		}
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) ListByRango(_ context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var out []model.Venta
	for _, l := range r.lineas {
		if !l.Fecha.Before(desde) && l.Fecha.Before(hasta) {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── Cliente ──────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo(clientes ...*model.Cliente) *stubClienteRepo {
	r := &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
	for _, c := range clientes {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		r.clientes[c.ID] = c
	}
	return r
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context, _ dto.ClienteFilter) ([]model.Cliente, int64, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if c, ok := r.clientes[id]; ok {
		c.Activo = false
	}
	return nil
}

func (r *stubClienteRepo) TelefonoEnUso(_ context.Context, telefono string, exceptoID uuid.UUID) (bool, error) {
	for _, c := range r.clientes {
		if c.Telefono == telefono && c.ID != exceptoID &&
			(c.EstadoMonedero == model.MonederoPendiente || c.EstadoMonedero == model.MonederoActivo) {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── Ajustes ──────────────────────────────────────────────────────────────────

type stubAjustesRepo struct {
	ajustes *model.Ajustes
}

func newStubAjustesRepo() *stubAjustesRepo {
	return &stubAjustesRepo{ajustes: &model.Ajustes{
		ID:              1,
		NombreEmpresa:   "Mi Negocio",
		Tema:            "claro",
		MinMedioMayoreo: 6,
		MinMayoreo:      12,
	}}
}

func (r *stubAjustesRepo) Get(_ context.Context) (*model.Ajustes, error) { return r.ajustes, nil }

func (r *stubAjustesRepo) Update(_ context.Context, a *model.Ajustes) error {
	r.ajustes = a
	return nil
}

var _ repository.AjustesRepository = (*stubAjustesRepo)(nil)

// ── MovimientoStock ──────────────────────────────────────────────────────────

type stubMovStockRepo struct {
	movimientos []model.MovimientoStock
}

func (r *stubMovStockRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovStockRepo) ListByProducto(_ context.Context, productoID uuid.UUID, _ int) ([]model.MovimientoStock, error) {
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	return out, nil
}

var _ repository.MovimientoStockRepository = (*stubMovStockRepo)(nil)

// ── Carrito ──────────────────────────────────────────────────────────────────

type stubCarritoStore struct {
	carritos map[uuid.UUID]*model.Carrito
}

func newStubCarritoStore() *stubCarritoStore {
	return &stubCarritoStore{carritos: make(map[uuid.UUID]*model.Carrito)}
}

func (s *stubCarritoStore) Get(_ context.Context, usuarioID uuid.UUID) (*model.Carrito, error) {
	c, ok := s.carritos[usuarioID]
	if !ok {
		return &model.Carrito{}, nil
	}
	cp := model.Carrito{Lineas: append([]model.LineaCarrito(nil), c.Lineas...)}
	return &cp, nil
}

func (s *stubCarritoStore) Save(_ context.Context, usuarioID uuid.UUID, c *model.Carrito) error {
	cp := model.Carrito{Lineas: append([]model.LineaCarrito(nil), c.Lineas...)}
	s.carritos[usuarioID] = &cp
	return nil
}

func (s *stubCarritoStore) Clear(_ context.Context, usuarioID uuid.UUID) error {
	delete(s.carritos, usuarioID)
	return nil
}

var _ repository.CarritoStore = (*stubCarritoStore)(nil)

// ── Monedero ─────────────────────────────────────────────────────────────────

type stubMonederoRepo struct {
	movimientos []model.MovimientoMonedero
}

func (r *stubMonederoRepo) Create(_ context.Context, mov *model.MovimientoMonedero) error {
	return r.CreateTx(nil, mov)
}

func (r *stubMonederoRepo) CreateTx(_ *gorm.DB, mov *model.MovimientoMonedero) error {
	if mov.ID == uuid.Nil {
		mov.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, *mov)
	return nil
}

func (r *stubMonederoRepo) Saldo(_ context.Context, clienteID uuid.UUID) (decimal.Decimal, error) {
	saldo := decimal.Zero
	for _, m := range r.movimientos {
		if m.ClienteID == clienteID {
			saldo = saldo.Add(m.Monto)
		}
	}
	return saldo, nil
}

func (r *stubMonederoRepo) SaldoTx(_ *gorm.DB, clienteID uuid.UUID) (decimal.Decimal, error) {
	return r.Saldo(context.Background(), clienteID)
}

func (r *stubMonederoRepo) ListByCliente(_ context.Context, clienteID uuid.UUID, limit int) ([]model.MovimientoMonedero, error) {
	var out []model.MovimientoMonedero
	for i := len(r.movimientos) - 1; i >= 0; i-- {
		if r.movimientos[i].ClienteID == clienteID {
			out = append(out, r.movimientos[i])
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (r *stubMonederoRepo) SumFolioTipoTx(_ *gorm.DB, folio, tipo string) (decimal.Decimal, error) {
	suma := decimal.Zero
	for _, m := range r.movimientos {
		if m.Folio != nil && *m.Folio == folio && m.Tipo == tipo {
			suma = suma.Add(m.Monto)
		}
	}
	return suma, nil
}

func (r *stubMonederoRepo) ExisteReversionTx(_ *gorm.DB, folio string) (bool, error) {
	for _, m := range r.movimientos {
		if m.Folio != nil && *m.Folio == folio && m.Tipo == model.MovimientoAjuste {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubMonederoRepo) DB() *gorm.DB { return nil }

var _ repository.MonederoRepository = (*stubMonederoRepo)(nil)

// ── Compra ───────────────────────────────────────────────────────────────────

type stubCompraRepo struct {
	compras map[uuid.UUID]*model.Compra
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{compras: make(map[uuid.UUID]*model.Compra)}
}

func (r *stubCompraRepo) CreateTx(_ *gorm.DB, c *model.Compra) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.compras[c.ID] = &cp
	return nil
}

func (r *stubCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCompraRepo) UpdateTx(_ *gorm.DB, c *model.Compra) error {
	if _, ok := r.compras[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *c
	r.compras[c.ID] = &cp
	return nil
}

func (r *stubCompraRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.compras, id)
	return nil
}

func (r *stubCompraRepo) List(_ context.Context, _ dto.CompraFilter) ([]model.Compra, int64, error) {
	out := make([]model.Compra, 0, len(r.compras))
	for _, c := range r.compras {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCompraRepo) SumByRango(_ context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	suma := decimal.Zero
	for _, c := range r.compras {
		if !c.Fecha.Before(desde) && c.Fecha.Before(hasta) {
			suma = suma.Add(c.CostoTotal)
		}
	}
	return suma, nil
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

var _ repository.CompraRepository = (*stubCompraRepo)(nil)

// ── Gasto ────────────────────────────────────────────────────────────────────

type stubGastoRepo struct {
	gastos []model.Gasto
}

func (r *stubGastoRepo) Create(_ context.Context, g *model.Gasto) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.gastos = append(r.gastos, *g)
	return nil
}

func (r *stubGastoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Gasto, error) {
	for i := range r.gastos {
		if r.gastos[i].ID == id {
			cp := r.gastos[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubGastoRepo) Update(_ context.Context, g *model.Gasto) error {
	for i := range r.gastos {
		if r.gastos[i].ID == g.ID {
			r.gastos[i] = *g
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubGastoRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.gastos {
		if r.gastos[i].ID == id {
			r.gastos = append(r.gastos[:i], r.gastos[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *stubGastoRepo) List(_ context.Context, _ dto.GastoFilter) ([]model.Gasto, int64, error) {
	return append([]model.Gasto(nil), r.gastos...), int64(len(r.gastos)), nil
}

func (r *stubGastoRepo) ListByRango(_ context.Context, desde, hasta time.Time) ([]model.Gasto, error) {
	var out []model.Gasto
	for _, g := range r.gastos {
		if !g.Fecha.Before(desde) && g.Fecha.Before(hasta) {
			out = append(out, g)
		}
	}
	return out, nil
}

var _ repository.GastoRepository = (*stubGastoRepo)(nil)

// ── Fixture helpers ──────────────────────────────────────────────────────────

func testProducto(codigo string, stock int) *model.Producto {
	return &model.Producto{
		ID:                 uuid.New(),
		Codigo:             codigo,
		Descripcion:        "Producto " + codigo,
		Categoria:          "limpieza",
		Unidad:             "pieza",
		Costo:              decimal.NewFromInt(50),
		PrecioMenudeo:      decimal.NewFromInt(100),
		PrecioMedioMayoreo: decimal.NewFromInt(90),
		PrecioMayoreo:      decimal.NewFromInt(80),
		StockInicial:       stock,
		StockActual:        stock,
		Activo:             true,
	}
}

func testCliente(nombre string, estado model.EstadoMonedero) *model.Cliente {
	return &model.Cliente{
		ID:             uuid.New(),
		Nombre:         nombre,
		Telefono:       "5550001111",
		EstadoMonedero: estado,
		Activo:         true,
	}
}

func clienteGeneral() *model.Cliente {
	return &model.Cliente{
		ID:             model.ClienteGeneralID,
		Nombre:         "Público en General",
		EstadoMonedero: model.MonederoInactivo,
		Activo:         true,
	}
}
