package sheets

import (
	"context"
	"strings"

	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

const imagenTab = "imagen"

var imagenHeaders = []string{"data_ini_prox", "RecID", "ID_nombre"}

// ImagenRepository implementa repository.ImagenRepository sobre la hoja 'imagen'.
// Columnas: A vacía | B RecID | C ID_nombre (link de vista de Drive).
type ImagenRepository struct {
	base
}

// NewImagenRepository construye el repositorio.
func NewImagenRepository(c *Client) *ImagenRepository {
	return &ImagenRepository{base: newBase(c.api)}
}

func (r *ImagenRepository) ensure(ctx context.Context) error {
	return r.ensureTabAndHeaders(ctx, imagenTab, imagenHeaders)
}

// List devuelve todas las imágenes registradas.
func (r *ImagenRepository) List(ctx context.Context) ([]*entity.Imagen, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.api.Get(ctx, dataRange(imagenTab, len(imagenHeaders)))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Imagen, 0, len(rows))
	for _, raw := range rows {
		row := padRow(raw, len(imagenHeaders))
		if rowBlank(row) {
			continue
		}
		out = append(out, &entity.Imagen{
			RecID: strings.TrimSpace(row[1]),
			Link:  strings.TrimSpace(row[2]),
		})
	}
	return out, nil
}

// GetLinkByRecID devuelve el link registrado para el RecID.
// Devuelve domain.ErrNotFound cuando no hay fila.
func (r *ImagenRepository) GetLinkByRecID(ctx context.Context, recid string) (string, error) {
	if err := r.ensure(ctx); err != nil {
		return "", err
	}
	recid = strings.TrimSpace(recid)
	if recid == "" {
		return "", domain.ErrNotFound
	}
	row, err := r.findRowByColValue(ctx, imagenTab, 2, recid)
	if err != nil {
		return "", err
	}
	if row == 0 {
		return "", domain.ErrNotFound
	}
	cur, err := r.readRow(ctx, imagenTab, len(imagenHeaders), row)
	if err != nil {
		return "", err
	}
	link := strings.TrimSpace(cur[2])
	if link == "" {
		return "", domain.ErrNotFound
	}
	return link, nil
}

// Add registra el par RecID -> link. Ambos campos son obligatorios.
func (r *ImagenRepository) Add(ctx context.Context, recid, link string) error {
	recid = strings.TrimSpace(recid)
	link = strings.TrimSpace(link)
	if recid == "" || link == "" {
		return domain.ErrInvalidInput
	}
	if err := r.ensure(ctx); err != nil {
		return err
	}
	return r.appendRow(ctx, imagenTab, []string{"", recid, link})
}

// DeleteByRecID limpia el rango de la fila.
func (r *ImagenRepository) DeleteByRecID(ctx context.Context, recid string) (bool, error) {
	if err := r.ensure(ctx); err != nil {
		return false, err
	}
	row, err := r.findRowByColValue(ctx, imagenTab, 2, strings.TrimSpace(recid))
	if err != nil {
		return false, err
	}
	if row == 0 {
		return false, nil
	}
	if err := r.clearRow(ctx, imagenTab, len(imagenHeaders), row); err != nil {
		return false, err
	}
	return true, nil
}
