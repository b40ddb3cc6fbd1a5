package repository

import (
	"context"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	List(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error)
	Update(ctx context.Context, c *model.Cliente) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// TelefonoEnUso reports whether another client already holds the phone
	// number with a pendiente/activo monedero. Checked at activation time.
	TelefonoEnUso(ctx context.Context, telefono string, exceptoID uuid.UUID) (bool, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error) {
	var clientes []model.Cliente
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("activo = true")

	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.Telefono != "" {
		q = q.Where("telefono = ?", filter.Telefono)
	}
	if filter.Monedero != "" {
		q = q.Where("estado_monedero = ?", filter.Monedero)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nombre ASC").Limit(filter.Limit).Offset(offset).Find(&clientes).Error
	return clientes, total, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *clienteRepo) TelefonoEnUso(ctx context.Context, telefono string, exceptoID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("telefono = ? AND id <> ? AND estado_monedero IN ?", telefono, exceptoID,
			[]model.EstadoMonedero{model.MonederoPendiente, model.MonederoActivo}).
		Count(&count).Error
	return count > 0, err
}
