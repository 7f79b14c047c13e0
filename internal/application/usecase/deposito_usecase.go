package usecase

import (
	"context"
	"strings"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
	"github.com/tacticadev/gestor-api/internal/domain/repository"
	"github.com/tacticadev/gestor-api/internal/events"
	"github.com/tacticadev/gestor-api/pkg/logger"
	"github.com/tacticadev/gestor-api/pkg/recid"
	"github.com/tacticadev/gestor-api/pkg/textutil"
)

// DepositoUseCase casos de uso CRUD para depósitos. Las mutaciones quedan en
// la bitácora; si la bitácora falla la operación ya se aplicó y solo se loguea.
type DepositoUseCase struct {
	repo repository.DepositoRepository
	logs *LogUseCase
	bus  *events.Bus
	log  *logger.Logger
}

// NewDepositoUseCase construye el caso de uso.
func NewDepositoUseCase(repo repository.DepositoRepository, logs *LogUseCase, bus *events.Bus, log *logger.Logger) *DepositoUseCase {
	return &DepositoUseCase{repo: repo, logs: logs, bus: bus, log: log}
}

func (uc *DepositoUseCase) registrar(ctx context.Context, actor, accion string) {
	if err := uc.logs.Registrar(ctx, actor, accion); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo registrar en la bitácora")
	}
}

// List devuelve los depósitos; buscar filtra por nombre o dirección sin
// distinguir mayúsculas ni acentos.
func (uc *DepositoUseCase) List(ctx context.Context, buscar string) ([]*dto.DepositoResponse, error) {
	depositos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DepositoResponse, 0, len(depositos))
	for _, d := range depositos {
		if buscar != "" &&
			!textutil.ContainsFold(d.Nombre, buscar) &&
			!textutil.ContainsFold(d.Direccion, buscar) {
			continue
		}
		out = append(out, dto.ToDepositoResponse(d))
	}
	return out, nil
}

// GetByRecID devuelve (nil, nil) cuando el depósito no existe.
func (uc *DepositoUseCase) GetByRecID(ctx context.Context, id string) (*dto.DepositoResponse, error) {
	d, err := uc.repo.GetByRecID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return dto.ToDepositoResponse(d), nil
}

// Create crea un depósito nuevo con RecID fresco.
func (uc *DepositoUseCase) Create(ctx context.Context, actor string, in dto.CreateDepositoRequest) (*dto.DepositoResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	d := &entity.Deposito{
		RecID:       recid.New(),
		IDDeposito:  strings.TrimSpace(in.IDDeposito),
		Nombre:      strings.TrimSpace(in.Nombre),
		Direccion:   strings.TrimSpace(in.Direccion),
		Descripcion: strings.TrimSpace(in.Descripcion),
		RecIDImagen: strings.TrimSpace(in.RecIDImagen),
	}
	if err := uc.repo.Add(ctx, d); err != nil {
		return nil, err
	}
	uc.registrar(ctx, actor, FmtDepositoAlta(d.Nombre))
	uc.bus.Publish(events.TopicDepositoRefresh, d.RecID)
	return dto.ToDepositoResponse(d), nil
}

// Update edita los campos presentes en la petición. Devuelve (nil, nil) si
// el depósito no existe.
func (uc *DepositoUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateDepositoRequest) (*dto.DepositoResponse, error) {
	d, err := uc.repo.GetByRecID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	if in.IDDeposito != nil {
		d.IDDeposito = strings.TrimSpace(*in.IDDeposito)
	}
	if in.Nombre != nil {
		if strings.TrimSpace(*in.Nombre) == "" {
			return nil, domain.ErrInvalidInput
		}
		d.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Direccion != nil {
		d.Direccion = strings.TrimSpace(*in.Direccion)
	}
	if in.Descripcion != nil {
		d.Descripcion = strings.TrimSpace(*in.Descripcion)
	}
	if in.RecIDImagen != nil {
		d.RecIDImagen = strings.TrimSpace(*in.RecIDImagen)
	}
	ok, err := uc.repo.Update(ctx, d)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	uc.registrar(ctx, actor, FmtDepositoEdicion(d.Nombre))
	uc.bus.Publish(events.TopicDepositoRefresh, d.RecID)
	return dto.ToDepositoResponse(d), nil
}

// Delete borra el depósito. Devuelve false si no existe.
func (uc *DepositoUseCase) Delete(ctx context.Context, actor, id string) (bool, error) {
	d, err := uc.repo.GetByRecID(ctx, id)
	if err != nil {
		return false, err
	}
	if d == nil {
		return false, nil
	}
	ok, err := uc.repo.DeleteByRecID(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		uc.registrar(ctx, actor, FmtDepositoBaja(d.Nombre))
		uc.bus.Publish(events.TopicDepositoRefresh, id)
	}
	return ok, nil
}
