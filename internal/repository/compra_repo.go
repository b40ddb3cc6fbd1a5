package repository

import (
	"context"
	"time"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompraRepository interface {
	CreateTx(tx *gorm.DB, c *model.Compra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error)
	UpdateTx(tx *gorm.DB, c *model.Compra) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	List(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error)
	SumByRango(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)
	DB() *gorm.DB
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) DB() *gorm.DB { return r.db }

func (r *compraRepo) CreateTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Create(c).Error
}

func (r *compraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).Preload("Producto").First(&c, id).Error
	return &c, err
}

func (r *compraRepo) UpdateTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Save(c).Error
}

func (r *compraRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Compra{}, id).Error
}

func (r *compraRepo) List(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error) {
	var compras []model.Compra
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Compra{})

	if filter.Codigo != "" {
		q = q.Where("codigo = ?", filter.Codigo)
	}
	if filter.Desde != "" {
		q = q.Where("DATE(fecha) >= ?", filter.Desde)
	}
	if filter.Hasta != "" {
		q = q.Where("DATE(fecha) <= ?", filter.Hasta)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Producto").Order("fecha DESC").Limit(filter.Limit).Offset(offset).Find(&compras).Error
	return compras, total, err
}

func (r *compraRepo) SumByRango(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	var suma decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Compra{}).
		Select("COALESCE(SUM(costo_total), 0)").
		Where("fecha >= ? AND fecha < ?", desde, hasta).
		Scan(&suma).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !suma.Valid {
		return decimal.Zero, nil
	}
	return suma.Decimal, nil
}
