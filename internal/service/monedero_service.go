package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrFolioYaRevertido = errors.New("el folio ya tiene una reversión de monedero")
	ErrSaldoRetiro      = errors.New("saldo insuficiente para el retiro")
)

// MonederoService is the store-credit loyalty ledger. Every effect is an
// appended MovimientoMonedero; balances are always SUM(monto).
type MonederoService interface {
	Saldo(ctx context.Context, clienteID uuid.UUID) (decimal.Decimal, error)
	EstadoCuenta(ctx context.Context, clienteID uuid.UUID, limit int) (*dto.EstadoCuentaResponse, error)

	// RegistrarEfectosVenta posts the sale-derived entries inside the
	// caller's transaction: one acumulacion per positive line (earn rate
	// applied to the line amount) and one redencion per folio when the
	// settlement drew from the wallet.
	RegistrarEfectosVenta(tx *gorm.DB, lineas []model.Venta, liq *Liquidacion, folio string,
		cliente *model.Cliente, porcentaje decimal.Decimal) (decimal.Decimal, error)

	// RevertirFolio appends the compensating entries for a cancelled folio,
	// working from the stored sale-linked amounts rather than recomputing
	// from the current percentage. Guarded: one reversal per folio.
	RevertirFolio(tx *gorm.DB, folio string, clienteID uuid.UUID) error

	Deposito(ctx context.Context, clienteID uuid.UUID, req dto.MovimientoManualRequest) error
	Retiro(ctx context.Context, clienteID uuid.UUID, req dto.MovimientoManualRequest) error
}

type monederoService struct {
	repo        repository.MonederoRepository
	clienteRepo repository.ClienteRepository
}

func NewMonederoService(repo repository.MonederoRepository, clienteRepo repository.ClienteRepository) MonederoService {
	return &monederoService{repo: repo, clienteRepo: clienteRepo}
}

func (s *monederoService) Saldo(ctx context.Context, clienteID uuid.UUID) (decimal.Decimal, error) {
	return s.repo.Saldo(ctx, clienteID)
}

func (s *monederoService) EstadoCuenta(ctx context.Context, clienteID uuid.UUID, limit int) (*dto.EstadoCuentaResponse, error) {
	saldo, err := s.repo.Saldo(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	movs, err := s.repo.ListByCliente(ctx, clienteID, limit)
	if err != nil {
		return nil, err
	}
	resp := &dto.EstadoCuentaResponse{
		ClienteID:   clienteID.String(),
		Saldo:       saldo,
		Movimientos: make([]dto.MovimientoMonederoResponse, 0, len(movs)),
	}
	for _, m := range movs {
		resp.Movimientos = append(resp.Movimientos, dto.MovimientoMonederoResponse{
			ID:          m.ID.String(),
			Monto:       m.Monto,
			Puntos:      m.Puntos,
			Tipo:        m.Tipo,
			Descripcion: m.Descripcion,
			Folio:       m.Folio,
			Fecha:       m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return resp, nil
}

func (s *monederoService) RegistrarEfectosVenta(tx *gorm.DB, lineas []model.Venta, liq *Liquidacion,
	folio string, cliente *model.Cliente, porcentaje decimal.Decimal) (decimal.Decimal, error) {

	ganado := decimal.Zero
	cien := decimal.NewFromInt(100)

	if cliente != nil && !cliente.EsGeneral() && porcentaje.IsPositive() {
		for _, l := range lineas {
			if !l.Importe.IsPositive() {
				continue
			}
			puntos := l.Importe.Mul(porcentaje).Div(cien).Round(2)
			f := folio
			mov := &model.MovimientoMonedero{
				ClienteID:   cliente.ID,
				Monto:       puntos,
				Puntos:      puntos,
				Tipo:        model.MovimientoAcumulacion,
				Descripcion: fmt.Sprintf("Acumulación venta folio %s (%s)", folio, l.Codigo),
				Folio:       &f,
			}
			if err := s.repo.CreateTx(tx, mov); err != nil {
				return decimal.Zero, err
			}
			ganado = ganado.Add(puntos)
		}
	}

	// One redemption per folio, never per line.
	if liq.MontoMonedero.IsPositive() {
		if cliente == nil || cliente.EsGeneral() {
			return decimal.Zero, errors.New("redención de monedero sin cliente")
		}
		f := folio
		mov := &model.MovimientoMonedero{
			ClienteID:   cliente.ID,
			Monto:       liq.MontoMonedero.Neg(),
			Puntos:      liq.MontoMonedero.Neg(),
			Tipo:        model.MovimientoRedencion,
			Descripcion: fmt.Sprintf("Pago con monedero folio %s", folio),
			Folio:       &f,
		}
		if err := s.repo.CreateTx(tx, mov); err != nil {
			return decimal.Zero, err
		}
	}

	return ganado, nil
}

func (s *monederoService) RevertirFolio(tx *gorm.DB, folio string, clienteID uuid.UUID) error {
	yaRevertido, err := s.repo.ExisteReversionTx(tx, folio)
	if err != nil {
		return err
	}
	if yaRevertido {
		return ErrFolioYaRevertido
	}

	// Refund what was actually redeemed for the folio.
	redimido, err := s.repo.SumFolioTipoTx(tx, folio, model.MovimientoRedencion)
	if err != nil {
		return err
	}
	if redimido.IsNegative() {
		f := folio
		mov := &model.MovimientoMonedero{
			ClienteID:   clienteID,
			Monto:       redimido.Neg(),
			Puntos:      redimido.Neg(),
			Tipo:        model.MovimientoAjuste,
			Descripcion: fmt.Sprintf("CANCELADO: reembolso de monedero folio %s", folio),
			Folio:       &f,
		}
		if err := s.repo.CreateTx(tx, mov); err != nil {
			return err
		}
	}

	// Take back what was actually earned — the stored entries, not a
	// recomputation from the current percentage setting.
	acumulado, err := s.repo.SumFolioTipoTx(tx, folio, model.MovimientoAcumulacion)
	if err != nil {
		return err
	}
	if acumulado.IsPositive() {
		f := folio
		mov := &model.MovimientoMonedero{
			ClienteID:   clienteID,
			Monto:       acumulado.Neg(),
			Puntos:      acumulado.Neg(),
			Tipo:        model.MovimientoAjuste,
			Descripcion: fmt.Sprintf("CANCELADO: reverso de puntos folio %s", folio),
			Folio:       &f,
		}
		if err := s.repo.CreateTx(tx, mov); err != nil {
			return err
		}
	}

	return nil
}

// Deposito posts an operator credit, independent of any sale.
func (s *monederoService) Deposito(ctx context.Context, clienteID uuid.UUID, req dto.MovimientoManualRequest) error {
	if !req.Monto.IsPositive() {
		return errors.New("el monto del depósito debe ser positivo")
	}
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return errors.New("cliente no encontrado")
	}
	if cliente.EsGeneral() {
		return errors.New("el cliente general no tiene monedero")
	}
	return s.repo.Create(ctx, &model.MovimientoMonedero{
		ClienteID:   clienteID,
		Monto:       req.Monto,
		Puntos:      req.Monto,
		Tipo:        model.MovimientoAjuste,
		Descripcion: req.Descripcion,
	})
}

// Retiro posts an operator debit. Requires an active wallet with enough balance.
func (s *monederoService) Retiro(ctx context.Context, clienteID uuid.UUID, req dto.MovimientoManualRequest) error {
	if !req.Monto.IsPositive() {
		return errors.New("el monto del retiro debe ser positivo")
	}
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return errors.New("cliente no encontrado")
	}
	if err := validarElegibilidadMonedero(cliente); err != nil {
		return err
	}
	saldo, err := s.repo.Saldo(ctx, clienteID)
	if err != nil {
		return err
	}
	if saldo.LessThan(req.Monto) {
		return ErrSaldoRetiro
	}
	return s.repo.Create(ctx, &model.MovimientoMonedero{
		ClienteID:   clienteID,
		Monto:       req.Monto.Neg(),
		Puntos:      req.Monto.Neg(),
		Tipo:        model.MovimientoRedencion,
		Descripcion: req.Descripcion,
	})
}
