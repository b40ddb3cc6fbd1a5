package service

import (
	"context"
	"errors"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrClienteGeneral = errors.New("el cliente general no admite esta operación")
	ErrTelefonoEnUso  = errors.New("otro cliente con monedero ya usa ese teléfono")
	ErrSinTelefono    = errors.New("se requiere teléfono para activar el monedero")
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	// Monedero workflow: solicitar (→ pendiente, with the phone-uniqueness
	// check), activar (→ activo, admin), desactivar (→ inactivo, admin).
	SolicitarMonedero(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	ActivarMonedero(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	DesactivarMonedero(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	c := &model.Cliente{
		Nombre:         req.Nombre,
		RFC:            req.RFC,
		Telefono:       req.Telefono,
		Email:          req.Email,
		Calle:          req.Calle,
		Colonia:        req.Colonia,
		Ciudad:         req.Ciudad,
		Estado:         req.Estado,
		CodigoPostal:   req.CodigoPostal,
		EstadoMonedero: model.MonederoInactivo,
		Activo:         true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	clientes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		data = append(data, *clienteToResponse(&clientes[i]))
	}
	return &dto.ClienteListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.RFC != nil {
		c.RFC = *req.RFC
	}
	if req.Telefono != nil {
		c.Telefono = *req.Telefono
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Calle != nil {
		c.Calle = *req.Calle
	}
	if req.Colonia != nil {
		c.Colonia = *req.Colonia
	}
	if req.Ciudad != nil {
		c.Ciudad = *req.Ciudad
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
	}
	if req.CodigoPostal != nil {
		c.CodigoPostal = *req.CodigoPostal
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

// Eliminar soft-deletes. The general walk-in client is exempt.
func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if id == model.ClienteGeneralID {
		return ErrClienteGeneral
	}
	return s.repo.SoftDelete(ctx, id)
}

// SolicitarMonedero enrolls the client in the loyalty program. The phone
// uniqueness invariant is checked here, at activation request time: at most
// one pendiente/activo wallet per phone number.
func (s *clienteService) SolicitarMonedero(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	if id == model.ClienteGeneralID {
		return nil, ErrClienteGeneral
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	if c.Telefono == "" {
		return nil, ErrSinTelefono
	}
	enUso, err := s.repo.TelefonoEnUso(ctx, c.Telefono, c.ID)
	if err != nil {
		return nil, err
	}
	if enUso {
		return nil, ErrTelefonoEnUso
	}
	if c.EstadoMonedero == model.MonederoInactivo {
		c.EstadoMonedero = model.MonederoPendiente
		if err := s.repo.Update(ctx, c); err != nil {
			return nil, err
		}
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) ActivarMonedero(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	if id == model.ClienteGeneralID {
		return nil, ErrClienteGeneral
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	if c.Telefono == "" {
		return nil, ErrSinTelefono
	}
	enUso, err := s.repo.TelefonoEnUso(ctx, c.Telefono, c.ID)
	if err != nil {
		return nil, err
	}
	if enUso {
		return nil, ErrTelefonoEnUso
	}
	c.EstadoMonedero = model.MonederoActivo
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

// DesactivarMonedero leaves the ledger intact: the balance survives and the
// client can re-enroll later, but redemption stops immediately.
func (s *clienteService) DesactivarMonedero(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	c.EstadoMonedero = model.MonederoInactivo
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:             c.ID.String(),
		Nombre:         c.Nombre,
		RFC:            c.RFC,
		Telefono:       c.Telefono,
		Email:          c.Email,
		Calle:          c.Calle,
		Colonia:        c.Colonia,
		Ciudad:         c.Ciudad,
		Estado:         c.Estado,
		CodigoPostal:   c.CodigoPostal,
		EstadoMonedero: string(c.EstadoMonedero),
		Activo:         c.Activo,
	}
}
