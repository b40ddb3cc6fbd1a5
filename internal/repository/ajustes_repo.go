package repository

import (
	"context"
	"errors"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"gorm.io/gorm"
)

const ajustesID = 1

type AjustesRepository interface {
	Get(ctx context.Context) (*model.Ajustes, error)
	Update(ctx context.Context, a *model.Ajustes) error
}

type ajustesRepo struct{ db *gorm.DB }

func NewAjustesRepository(db *gorm.DB) AjustesRepository { return &ajustesRepo{db: db} }

// Get returns the singleton row, creating it with defaults on first access.
func (r *ajustesRepo) Get(ctx context.Context) (*model.Ajustes, error) {
	var a model.Ajustes
	err := r.db.WithContext(ctx).First(&a, ajustesID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		a = model.Ajustes{ID: ajustesID, NombreEmpresa: "Mi Negocio", Tema: "claro", MinMedioMayoreo: 6, MinMayoreo: 12}
		if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
			return nil, err
		}
		return &a, nil
	}
	return &a, err
}

func (r *ajustesRepo) Update(ctx context.Context, a *model.Ajustes) error {
	a.ID = ajustesID
	return r.db.WithContext(ctx).Save(a).Error
}
