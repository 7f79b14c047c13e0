package repository

import (
	"context"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

// IndexRepository define el puerto del spreadsheet índice (indexSheetList):
// alta, renombre y baja lógica de las planillas registradas.
type IndexRepository interface {
	List(ctx context.Context) ([]*entity.SheetInfo, error)
	Append(ctx context.Context, info *entity.SheetInfo) error
	UpdateNombreBySheetID(ctx context.Context, sheetID, nuevoNombre string) (bool, error)
	ClearBySheetID(ctx context.Context, sheetID string) (bool, error)
}
