package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	CreateLineasTx(tx *gorm.DB, lineas []model.Venta) error
	FindByFolio(ctx context.Context, folio string) ([]model.Venta, error)
	FindByFolioTx(tx *gorm.DB, folio string) ([]model.Venta, error)
	FindLineaByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	// NextFolioTx pulls the next value from a server-owned sequence so two
	// concurrent checkouts can never allocate the same folio.
	NextFolioTx(tx *gorm.DB) (string, error)
	// CancelarFolioTx flags every non-cancelled line of the folio in one
	// compare-and-set UPDATE and reports how many rows it touched. Zero
	// means the folio was already cancelled (or does not exist).
	CancelarFolioTx(tx *gorm.DB, folio, nota string) (int64, error)
	UpdateLineaTx(tx *gorm.DB, linea *model.Venta) error
	// UpdateFolio overwrites fecha/cliente fields on every active line of a folio.
	UpdateFolio(ctx context.Context, folio string, campos map[string]interface{}) (int64, error)
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
	ListByRango(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error)
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateLineasTx(tx *gorm.DB, lineas []model.Venta) error {
	return tx.Create(&lineas).Error
}

func (r *ventaRepo) FindByFolio(ctx context.Context, folio string) ([]model.Venta, error) {
	var lineas []model.Venta
	err := r.db.WithContext(ctx).Where("folio = ?", folio).Order("created_at ASC").Find(&lineas).Error
	return lineas, err
}

func (r *ventaRepo) FindByFolioTx(tx *gorm.DB, folio string) ([]model.Venta, error) {
	var lineas []model.Venta
	err := tx.Where("folio = ?", folio).Order("created_at ASC").Find(&lineas).Error
	return lineas, err
}

func (r *ventaRepo) FindLineaByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) NextFolioTx(tx *gorm.DB) (string, error) {
	var num int64
	if err := tx.Raw("SELECT nextval('ventas_folio_seq')").Scan(&num).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", num), nil
}

func (r *ventaRepo) CancelarFolioTx(tx *gorm.DB, folio, nota string) (int64, error) {
	res := tx.Model(&model.Venta{}).
		Where("folio = ? AND cancelada = false", folio).
		Updates(map[string]interface{}{
			"cancelada":       true,
			"nota_correccion": nota,
		})
	return res.RowsAffected, res.Error
}

func (r *ventaRepo) UpdateLineaTx(tx *gorm.DB, linea *model.Venta) error {
	return tx.Save(linea).Error
}

func (r *ventaRepo) UpdateFolio(ctx context.Context, folio string, campos map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("folio = ? AND cancelada = false", folio).
		Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var lineas []model.Venta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venta{})

	switch filter.Estado {
	case "cancelada":
		q = q.Where("cancelada = true")
	case "all":
		// no filter
	default:
		q = q.Where("cancelada = false")
	}
	if filter.Folio != "" {
		q = q.Where("folio = ?", filter.Folio)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(fecha) = ?", filter.Fecha)
	} else if filter.Folio == "" {
		// Default: today
		q = q.Where("DATE(fecha) = CURRENT_DATE")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("folio DESC, created_at ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&lineas).Error

	return lineas, total, err
}

func (r *ventaRepo) ListByRango(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var lineas []model.Venta
	err := r.db.WithContext(ctx).
		Where("fecha >= ? AND fecha < ?", desde, hasta).
		Order("fecha ASC").
		Find(&lineas).Error
	return lineas, err
}
