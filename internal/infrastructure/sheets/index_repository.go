package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

var indexHeaders = []string{
	"data_ini_prox",
	"RecID",
	"nombre_sheet",
	"id_sheet",
	"correo_origen",
	"estado_user",
	"fecha_creacion",
}

// Estados que registra el índice para cada planilla.
const (
	EstadoAdministrador = "Administrador"
	EstadoInvitado      = "Invitado"
)

// IndexRepository implementa repository.IndexRepository sobre el spreadsheet
// índice (indexSheetList). A diferencia de las hojas de datos, el índice es un
// spreadsheet aparte de una sola pestaña, así que los rangos van sin prefijo
// de pestaña y la baja es limpiar la fila, no borrarla.
type IndexRepository struct {
	api valuesAPI

	mu      sync.Mutex
	ensured bool
}

// NewIndexRepository construye el repositorio sobre el Client del spreadsheet índice.
func NewIndexRepository(c *Client) *IndexRepository {
	return &IndexRepository{api: c.api}
}

// ensure escribe los encabezados en la fila 1 si A1 está vacía.
func (r *IndexRepository) ensure(ctx context.Context) error {
	r.mu.Lock()
	if r.ensured {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	first, err := r.api.Get(ctx, "A1:A1")
	if err != nil {
		return err
	}
	if len(first) == 0 || len(first[0]) == 0 || strings.TrimSpace(first[0][0]) == "" {
		if err := r.api.Update(ctx, fmt.Sprintf("A1:%s1", colLetter(len(indexHeaders))), [][]string{indexHeaders}); err != nil {
			return err
		}
	}

	r.mu.Lock()
	r.ensured = true
	r.mu.Unlock()
	return nil
}

func indexFromRow(row []string) *entity.SheetInfo {
	return &entity.SheetInfo{
		RecID:         strings.TrimSpace(row[1]),
		Nombre:        strings.TrimSpace(row[2]),
		SheetID:       strings.TrimSpace(row[3]),
		CorreoOrigen:  strings.TrimSpace(row[4]),
		EstadoUser:    strings.TrimSpace(row[5]),
		FechaCreacion: strings.TrimSpace(row[6]),
	}
}

// List devuelve todas las planillas registradas (filas limpiadas se omiten).
func (r *IndexRepository) List(ctx context.Context) ([]*entity.SheetInfo, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.api.Get(ctx, fmt.Sprintf("A2:%s", colLetter(len(indexHeaders))))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.SheetInfo, 0, len(rows))
	for _, raw := range rows {
		row := padRow(raw, len(indexHeaders))
		if rowBlank(row) {
			continue
		}
		out = append(out, indexFromRow(row))
	}
	return out, nil
}

// Append registra una planilla nueva al final del índice.
func (r *IndexRepository) Append(ctx context.Context, info *entity.SheetInfo) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	row := []string{
		"",
		info.RecID,
		strings.TrimSpace(info.Nombre),
		strings.TrimSpace(info.SheetID),
		strings.TrimSpace(info.CorreoOrigen),
		strings.TrimSpace(info.EstadoUser),
		strings.TrimSpace(info.FechaCreacion),
	}
	return r.api.Append(ctx, "A1", [][]string{row})
}

// findRowBySheetID busca por escaneo lineal en la columna D (id_sheet).
func (r *IndexRepository) findRowBySheetID(ctx context.Context, sheetID string) (int, error) {
	rows, err := r.api.Get(ctx, "D2:D")
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		v := ""
		if len(row) > 0 {
			v = strings.TrimSpace(row[0])
		}
		if v == sheetID {
			return i + 2, nil
		}
	}
	return 0, nil
}

// UpdateNombreBySheetID renombra la planilla en el índice (columna C).
// Devuelve false si el id_sheet no está registrado.
func (r *IndexRepository) UpdateNombreBySheetID(ctx context.Context, sheetID, nuevoNombre string) (bool, error) {
	if err := r.ensure(ctx); err != nil {
		return false, err
	}
	row, err := r.findRowBySheetID(ctx, strings.TrimSpace(sheetID))
	if err != nil {
		return false, err
	}
	if row == 0 {
		return false, nil
	}
	rng := fmt.Sprintf("C%d", row)
	if err := r.api.Update(ctx, rng, [][]string{{strings.TrimSpace(nuevoNombre)}}); err != nil {
		return false, err
	}
	return true, nil
}

// ClearBySheetID limpia la fila completa de la planilla (baja lógica).
func (r *IndexRepository) ClearBySheetID(ctx context.Context, sheetID string) (bool, error) {
	if err := r.ensure(ctx); err != nil {
		return false, err
	}
	row, err := r.findRowBySheetID(ctx, strings.TrimSpace(sheetID))
	if err != nil {
		return false, err
	}
	if row == 0 {
		return false, nil
	}
	rng := fmt.Sprintf("A%d:%s%d", row, colLetter(len(indexHeaders)), row)
	if err := r.api.Clear(ctx, rng); err != nil {
		return false, err
	}
	return true, nil
}
