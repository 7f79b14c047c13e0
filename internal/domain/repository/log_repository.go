package repository

import (
	"context"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

// LogRepository define el puerto de la bitácora (hoja 'logs', solo append).
type LogRepository interface {
	List(ctx context.Context) ([]*entity.LogEntry, error)
	Append(ctx context.Context, e *entity.LogEntry) error
}
