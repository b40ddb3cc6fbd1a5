package repository

import (
	"context"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonederoRepository is the append-only store-credit ledger. There is no
// update or delete: balances are always derived with SUM(monto).
type MonederoRepository interface {
	Create(ctx context.Context, mov *model.MovimientoMonedero) error
	CreateTx(tx *gorm.DB, mov *model.MovimientoMonedero) error
	Saldo(ctx context.Context, clienteID uuid.UUID) (decimal.Decimal, error)
	SaldoTx(tx *gorm.DB, clienteID uuid.UUID) (decimal.Decimal, error)
	ListByCliente(ctx context.Context, clienteID uuid.UUID, limit int) ([]model.MovimientoMonedero, error)
	// SumFolioTipoTx totals the entries of one tipo posted for a folio —
	// the stored amounts a cancellation reverses.
	SumFolioTipoTx(tx *gorm.DB, folio, tipo string) (decimal.Decimal, error)
	// ExisteReversionTx reports whether an ajuste was already posted for the
	// folio, guarding against double reversal.
	ExisteReversionTx(tx *gorm.DB, folio string) (bool, error)
	DB() *gorm.DB
}

type monederoRepo struct{ db *gorm.DB }

func NewMonederoRepository(db *gorm.DB) MonederoRepository { return &monederoRepo{db: db} }

func (r *monederoRepo) DB() *gorm.DB { return r.db }

func (r *monederoRepo) Create(ctx context.Context, mov *model.MovimientoMonedero) error {
	return r.db.WithContext(ctx).Create(mov).Error
}

func (r *monederoRepo) CreateTx(tx *gorm.DB, mov *model.MovimientoMonedero) error {
	return tx.Create(mov).Error
}

func (r *monederoRepo) Saldo(ctx context.Context, clienteID uuid.UUID) (decimal.Decimal, error) {
	return sumMonto(r.db.WithContext(ctx), "cliente_id = ?", clienteID)
}

func (r *monederoRepo) SaldoTx(tx *gorm.DB, clienteID uuid.UUID) (decimal.Decimal, error) {
	return sumMonto(tx, "cliente_id = ?", clienteID)
}

func (r *monederoRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID, limit int) ([]model.MovimientoMonedero, error) {
	var movs []model.MovimientoMonedero
	q := r.db.WithContext(ctx).Where("cliente_id = ?", clienteID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&movs).Error
	return movs, err
}

func (r *monederoRepo) SumFolioTipoTx(tx *gorm.DB, folio, tipo string) (decimal.Decimal, error) {
	return sumMonto(tx, "folio = ? AND tipo = ?", folio, tipo)
}

func (r *monederoRepo) ExisteReversionTx(tx *gorm.DB, folio string) (bool, error) {
	var count int64
	err := tx.Model(&model.MovimientoMonedero{}).
		Where("folio = ? AND tipo = ?", folio, model.MovimientoAjuste).
		Count(&count).Error
	return count > 0, err
}

func sumMonto(q *gorm.DB, cond string, args ...interface{}) (decimal.Decimal, error) {
	var suma decimal.NullDecimal
	err := q.Model(&model.MovimientoMonedero{}).
		Select("COALESCE(SUM(monto), 0)").
		Where(cond, args...).
		Scan(&suma).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !suma.Valid {
		return decimal.Zero, nil
	}
	return suma.Decimal, nil
}
