package sheets

import (
	"context"
	"strings"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

const usuariosTab = "usuarios"

var usuariosHeaders = []string{
	"data_ini_prox",
	"RecID",
	"ID_usuario",
	"nombre_usuario",
	"correo_usuario",
	"rango_usuario",
}

// UsuarioRepository implementa repository.UsuarioRepository sobre la hoja 'usuarios'.
type UsuarioRepository struct {
	base
}

// NewUsuarioRepository construye el repositorio.
func NewUsuarioRepository(c *Client) *UsuarioRepository {
	return &UsuarioRepository{base: newBase(c.api)}
}

func (r *UsuarioRepository) ensure(ctx context.Context) error {
	return r.ensureTabAndHeaders(ctx, usuariosTab, usuariosHeaders)
}

func usuarioFromRow(row []string) *entity.Usuario {
	return &entity.Usuario{
		RecID:     strings.TrimSpace(row[1]),
		IDUsuario: strings.TrimSpace(row[2]),
		Nombre:    strings.TrimSpace(row[3]),
		Correo:    strings.TrimSpace(row[4]),
		Rango:     strings.TrimSpace(row[5]),
	}
}

// List devuelve todos los usuarios no vacíos.
func (r *UsuarioRepository) List(ctx context.Context) ([]*entity.Usuario, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.api.Get(ctx, dataRange(usuariosTab, len(usuariosHeaders)))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Usuario, 0, len(rows))
	for _, raw := range rows {
		row := padRow(raw, len(usuariosHeaders))
		if rowBlank(row) {
			continue
		}
		out = append(out, usuarioFromRow(row))
	}
	return out, nil
}

// GetByRecID devuelve (nil, nil) cuando la fila no existe.
func (r *UsuarioRepository) GetByRecID(ctx context.Context, recid string) (*entity.Usuario, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	recid = strings.TrimSpace(recid)
	if recid == "" {
		return nil, nil
	}
	row, err := r.findRowByColValue(ctx, usuariosTab, 2, recid)
	if err != nil {
		return nil, err
	}
	if row == 0 {
		return nil, nil
	}
	cur, err := r.readRow(ctx, usuariosTab, len(usuariosHeaders), row)
	if err != nil {
		return nil, err
	}
	return usuarioFromRow(cur), nil
}

// GetByCorreo busca por coincidencia exacta en la columna de correo (E).
func (r *UsuarioRepository) GetByCorreo(ctx context.Context, correo string) (*entity.Usuario, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	correo = strings.TrimSpace(correo)
	if correo == "" {
		return nil, nil
	}
	row, err := r.findRowByColValue(ctx, usuariosTab, 5, correo)
	if err != nil {
		return nil, err
	}
	if row == 0 {
		return nil, nil
	}
	cur, err := r.readRow(ctx, usuariosTab, len(usuariosHeaders), row)
	if err != nil {
		return nil, err
	}
	return usuarioFromRow(cur), nil
}

// Add agrega la fila ["", RecID, ID_usuario, nombre, correo, rango].
func (r *UsuarioRepository) Add(ctx context.Context, u *entity.Usuario) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	row := []string{
		"",
		u.RecID,
		strings.TrimSpace(u.IDUsuario),
		strings.TrimSpace(u.Nombre),
		strings.TrimSpace(u.Correo),
		strings.TrimSpace(u.Rango),
	}
	return r.appendRow(ctx, usuariosTab, row)
}

// Update sobreescribe la fila completa del usuario. Devuelve false si no existe.
func (r *UsuarioRepository) Update(ctx context.Context, u *entity.Usuario) (bool, error) {
	if err := r.ensure(ctx); err != nil {
		return false, err
	}
	recid := strings.TrimSpace(u.RecID)
	if recid == "" {
		return false, nil
	}
	row, err := r.findRowByColValue(ctx, usuariosTab, 2, recid)
	if err != nil {
		return false, err
	}
	if row == 0 {
		return false, nil
	}
	out := []string{"", recid, u.IDUsuario, u.Nombre, u.Correo, u.Rango}
	if err := r.writeRow(ctx, usuariosTab, len(usuariosHeaders), row, out); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteByRecID limpia el rango de la fila.
func (r *UsuarioRepository) DeleteByRecID(ctx context.Context, recid string) (bool, error) {
	if err := r.ensure(ctx); err != nil {
		return false, err
	}
	row, err := r.findRowByColValue(ctx, usuariosTab, 2, strings.TrimSpace(recid))
	if err != nil {
		return false, err
	}
	if row == 0 {
		return false, nil
	}
	if err := r.clearRow(ctx, usuariosTab, len(usuariosHeaders), row); err != nil {
		return false, err
	}
	return true, nil
}
