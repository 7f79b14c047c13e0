package repository

import (
	"context"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	List(ctx context.Context) ([]*entity.Usuario, error)
	GetByRecID(ctx context.Context, recid string) (*entity.Usuario, error)
	GetByCorreo(ctx context.Context, correo string) (*entity.Usuario, error)
	Add(ctx context.Context, u *entity.Usuario) error
	Update(ctx context.Context, u *entity.Usuario) (bool, error)
	DeleteByRecID(ctx context.Context, recid string) (bool, error)
}
