package repository

import (
	"context"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

// ImagenRepository define el puerto para la hoja 'imagen' (RecID -> link de Drive).
// El RecID lo aporta el caller: es la clave que guardan producto/deposito.
type ImagenRepository interface {
	List(ctx context.Context) ([]*entity.Imagen, error)
	GetLinkByRecID(ctx context.Context, recid string) (string, error)
	Add(ctx context.Context, recid, link string) error
	DeleteByRecID(ctx context.Context, recid string) (bool, error)
}
