package service

import (
	"context"
	"errors"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/repository"
)

var ErrUmbralesInvalidos = errors.New("min_medio_mayoreo debe ser menor o igual a min_mayoreo")

type AjustesService interface {
	Obtener(ctx context.Context) (*dto.AjustesResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarAjustesRequest) (*dto.AjustesResponse, error)
}

type ajustesService struct {
	repo repository.AjustesRepository
}

func NewAjustesService(repo repository.AjustesRepository) AjustesService {
	return &ajustesService{repo: repo}
}

func (s *ajustesService) Obtener(ctx context.Context) (*dto.AjustesResponse, error) {
	a, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AjustesResponse{
		NombreEmpresa:      a.NombreEmpresa,
		Logo:               a.Logo,
		Tema:               a.Tema,
		MinMedioMayoreo:    a.MinMedioMayoreo,
		MinMayoreo:         a.MinMayoreo,
		PorcentajeMonedero: a.PorcentajeMonedero,
	}, nil
}

// Actualizar rejects threshold orderings that would make a tier unreachable
// and negative earn rates. Non-positive thresholds never reach the resolver:
// the validator enforces min=1 on both fields.
func (s *ajustesService) Actualizar(ctx context.Context, req dto.ActualizarAjustesRequest) (*dto.AjustesResponse, error) {
	a, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.NombreEmpresa != nil {
		a.NombreEmpresa = *req.NombreEmpresa
	}
	if req.Logo != nil {
		a.Logo = *req.Logo
	}
	if req.Tema != nil {
		a.Tema = *req.Tema
	}
	if req.MinMedioMayoreo != nil {
		a.MinMedioMayoreo = *req.MinMedioMayoreo
	}
	if req.MinMayoreo != nil {
		a.MinMayoreo = *req.MinMayoreo
	}
	if req.PorcentajeMonedero != nil {
		if req.PorcentajeMonedero.IsNegative() {
			return nil, errors.New("porcentaje_monedero no puede ser negativo")
		}
		a.PorcentajeMonedero = *req.PorcentajeMonedero
	}
	if a.MinMedioMayoreo > a.MinMayoreo {
		return nil, ErrUmbralesInvalidos
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return &dto.AjustesResponse{
		NombreEmpresa:      a.NombreEmpresa,
		Logo:               a.Logo,
		Tema:               a.Tema,
		MinMedioMayoreo:    a.MinMedioMayoreo,
		MinMayoreo:         a.MinMayoreo,
		PorcentajeMonedero: a.PorcentajeMonedero,
	}, nil
}
