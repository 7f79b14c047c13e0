package repository

import (
	"context"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

// DepositoRepository define el puerto de persistencia para Deposito (DIP).
type DepositoRepository interface {
	List(ctx context.Context) ([]*entity.Deposito, error)
	GetByRecID(ctx context.Context, recid string) (*entity.Deposito, error)
	Add(ctx context.Context, d *entity.Deposito) error
	Update(ctx context.Context, d *entity.Deposito) (bool, error)
	DeleteByRecID(ctx context.Context, recid string) (bool, error)
}
