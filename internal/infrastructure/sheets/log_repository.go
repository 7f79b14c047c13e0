package sheets

import (
	"context"
	"strings"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

const logsTab = "logs"

var logsHeaders = []string{"data_ini_prox", "fecha", "ID_usuario", "accion"}

// LogRepository implementa repository.LogRepository sobre la hoja 'logs'.
// La bitácora es solo append; nunca se edita ni se borra una entrada.
type LogRepository struct {
	base
}

// NewLogRepository construye el repositorio.
func NewLogRepository(c *Client) *LogRepository {
	return &LogRepository{base: newBase(c.api)}
}

func (r *LogRepository) ensure(ctx context.Context) error {
	return r.ensureTabAndHeaders(ctx, logsTab, logsHeaders)
}

// List devuelve la bitácora completa en orden de hoja (cronológico).
func (r *LogRepository) List(ctx context.Context) ([]*entity.LogEntry, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.api.Get(ctx, dataRange(logsTab, len(logsHeaders)))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.LogEntry, 0, len(rows))
	for _, raw := range rows {
		row := padRow(raw, len(logsHeaders))
		if rowBlank(row) {
			continue
		}
		out = append(out, &entity.LogEntry{
			Fecha:     strings.TrimSpace(row[1]),
			IDUsuario: strings.TrimSpace(row[2]),
			Accion:    strings.TrimSpace(row[3]),
		})
	}
	return out, nil
}

// Append agrega la fila ["", fecha, ID_usuario, accion].
func (r *LogRepository) Append(ctx context.Context, e *entity.LogEntry) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	return r.appendRow(ctx, logsTab, []string{"", e.Fecha, e.IDUsuario, e.Accion})
}
