package sheets

import (
	"context"
	"strings"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

const depositoTab = "deposito"

var depositoHeaders = []string{
	"data_ini_prox",
	"RecID",
	"ID_deposito",
	"nombre_deposito",
	"direccion_deposito",
	"descripcion_deposito",
	"RecID_imagen",
}

// DepositoRepository implementa repository.DepositoRepository sobre la hoja 'deposito'.
type DepositoRepository struct {
	base
}

// NewDepositoRepository construye el repositorio.
func NewDepositoRepository(c *Client) *DepositoRepository {
	return &DepositoRepository{base: newBase(c.api)}
}

func (r *DepositoRepository) ensure(ctx context.Context) error {
	return r.ensureTabAndHeaders(ctx, depositoTab, depositoHeaders)
}

func depositoFromRow(row []string) *entity.Deposito {
	return &entity.Deposito{
		RecID:       strings.TrimSpace(row[1]),
		IDDeposito:  strings.TrimSpace(row[2]),
		Nombre:      strings.TrimSpace(row[3]),
		Direccion:   strings.TrimSpace(row[4]),
		Descripcion: strings.TrimSpace(row[5]),
		RecIDImagen: strings.TrimSpace(row[6]),
	}
}

// List devuelve todos los depósitos no vacíos.
func (r *DepositoRepository) List(ctx context.Context) ([]*entity.Deposito, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.api.Get(ctx, dataRange(depositoTab, len(depositoHeaders)))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Deposito, 0, len(rows))
	for _, raw := range rows {
		row := padRow(raw, len(depositoHeaders))
		if rowBlank(row) {
			continue
		}
		out = append(out, depositoFromRow(row))
	}
	return out, nil
}

// GetByRecID devuelve (nil, nil) cuando la fila no existe.
func (r *DepositoRepository) GetByRecID(ctx context.Context, recid string) (*entity.Deposito, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	recid = strings.TrimSpace(recid)
	if recid == "" {
		return nil, nil
	}
	row, err := r.findRowByColValue(ctx, depositoTab, 2, recid)
	if err != nil {
		return nil, err
	}
	if row == 0 {
		return nil, nil
	}
	cur, err := r.readRow(ctx, depositoTab, len(depositoHeaders), row)
	if err != nil {
		return nil, err
	}
	return depositoFromRow(cur), nil
}

// Add agrega la fila ["", RecID, id, nombre, direccion, descripcion, imagen].
func (r *DepositoRepository) Add(ctx context.Context, d *entity.Deposito) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	row := []string{
		"",
		d.RecID,
		strings.TrimSpace(d.IDDeposito),
		strings.TrimSpace(d.Nombre),
		strings.TrimSpace(d.Direccion),
		strings.TrimSpace(d.Descripcion),
		strings.TrimSpace(d.RecIDImagen),
	}
	return r.appendRow(ctx, depositoTab, row)
}

// Update sobreescribe la fila completa del depósito. Devuelve false si no existe.
func (r *DepositoRepository) Update(ctx context.Context, d *entity.Deposito) (bool, error) {
	if err := r.ensure(ctx); err != nil {
		return false, err
	}
	recid := strings.TrimSpace(d.RecID)
	if recid == "" {
		return false, nil
	}
	row, err := r.findRowByColValue(ctx, depositoTab, 2, recid)
	if err != nil {
		return false, err
	}
	if row == 0 {
		return false, nil
	}
	out := []string{"", recid, d.IDDeposito, d.Nombre, d.Direccion, d.Descripcion, d.RecIDImagen}
	if err := r.writeRow(ctx, depositoTab, len(depositoHeaders), row, out); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteByRecID limpia el rango de la fila.
func (r *DepositoRepository) DeleteByRecID(ctx context.Context, recid string) (bool, error) {
	if err := r.ensure(ctx); err != nil {
		return false, err
	}
	row, err := r.findRowByColValue(ctx, depositoTab, 2, strings.TrimSpace(recid))
	if err != nil {
		return false, err
	}
	if row == 0 {
		return false, nil
	}
	if err := r.clearRow(ctx, depositoTab, len(depositoHeaders), row); err != nil {
		return false, err
	}
	return true, nil
}
