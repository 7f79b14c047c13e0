package repository

import (
	"context"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// GetByRecID devuelve (nil, nil) cuando la fila no existe.
type ProductoRepository interface {
	List(ctx context.Context) ([]*entity.Producto, error)
	GetByRecID(ctx context.Context, recid string) (*entity.Producto, error)
	Add(ctx context.Context, p *entity.Producto) error
	Update(ctx context.Context, p *entity.Producto) (bool, error)
	DeleteByRecID(ctx context.Context, recid string) (bool, error)
}
