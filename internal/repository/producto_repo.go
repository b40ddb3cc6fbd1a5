package repository

import (
	"context"
	"errors"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrStockInsuficiente is returned when a guarded decrement would leave
// stock_actual negative. The guard lives in the UPDATE itself so concurrent
// sales on the same product cannot lose updates.
var ErrStockInsuficiente = errors.New("stock insuficiente")

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error)
	// DescontarStockTx atomically decrements stock for a sale line. For
	// positive quantities the UPDATE carries a stock_actual >= cantidad
	// guard; correction lines (negative cantidad) add stock back and skip it.
	DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error
	// AjustarStockTx applies an unguarded signed delta (compras, cancelaciones).
	AjustarStockTx(tx *gorm.DB, id uuid.UUID, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("codigo = ? AND activo = true", codigo).First(&p).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Producto{}).Where("activo = true")

	if filter.Codigo != "" {
		q = q.Where("codigo = ?", filter.Codigo)
	}
	if filter.Descripcion != "" {
		q = q.Where("descripcion ILIKE ?", "%"+filter.Descripcion+"%")
	}
	if filter.Categoria != "" {
		q = q.Where("categoria = ?", filter.Categoria)
	}
	if filter.StockBajo != nil {
		q = q.Where("stock_actual <= ?", *filter.StockBajo)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("descripcion ASC").Limit(filter.Limit).Offset(offset).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *productoRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("activo", true).Error
}

func (r *productoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := tx.First(&p, id).Error
	return &p, err
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error {
	if cantidad <= 0 {
		// Correction line: stock goes back up, no guard needed.
		return tx.Model(&model.Producto{}).Where("id = ?", id).
			Update("stock_actual", gorm.Expr("stock_actual - ?", cantidad)).Error
	}
	res := tx.Model(&model.Producto{}).
		Where("id = ? AND stock_actual >= ?", id, cantidad).
		Update("stock_actual", gorm.Expr("stock_actual - ?", cantidad))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStockInsuficiente
	}
	return nil
}

func (r *productoRepo) AjustarStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock_actual", gorm.Expr("stock_actual + ?", delta)).Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
