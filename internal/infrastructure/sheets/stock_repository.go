package sheets

import (
	"context"
	"strconv"
	"strings"

	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

const stockTab = "stock"

var stockHeaders = []string{"data_ini_prox", "RecID", "ID_producto", "ID_deposito", "cantidad"}

// StockRepository implementa repository.StockRepository sobre la hoja 'stock'.
// Columnas: A vacía | B RecID | C ID_producto | D ID_deposito | E cantidad.
type StockRepository struct {
	base
}

// NewStockRepository construye el repositorio.
func NewStockRepository(c *Client) *StockRepository {
	return &StockRepository{base: newBase(c.api)}
}

func (r *StockRepository) ensure(ctx context.Context) error {
	return r.ensureTabAndHeaders(ctx, stockTab, stockHeaders)
}

// parseCantidad interpreta la celda de cantidad (entero codificado como texto,
// vacío cuenta como 0). Un valor no numérico aborta la operación completa.
func parseCantidad(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.ErrBadQuantity
	}
	return n, nil
}

func stockFromRow(r []string) (*entity.Stock, error) {
	qty, err := parseCantidad(r[4])
	if err != nil {
		return nil, err
	}
	return &entity.Stock{
		RecID:      strings.TrimSpace(r[1]),
		IDProducto: strings.TrimSpace(r[2]),
		IDDeposito: strings.TrimSpace(r[3]),
		Cantidad:   qty,
	}, nil
}

// List devuelve todas las filas de stock no vacías.
func (r *StockRepository) List(ctx context.Context) ([]*entity.Stock, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := r.api.Get(ctx, dataRange(stockTab, len(stockHeaders)))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Stock, 0, len(rows))
	for _, raw := range rows {
		row := padRow(raw, len(stockHeaders))
		if rowBlank(row) {
			continue
		}
		s, err := stockFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// GetByRecID lee una fila por su RecID (columna B). Devuelve (nil, nil) si no existe.
func (r *StockRepository) GetByRecID(ctx context.Context, recid string) (*entity.Stock, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	recid = strings.TrimSpace(recid)
	if recid == "" {
		return nil, nil
	}
	row, err := r.findRowByColValue(ctx, stockTab, 2, recid)
	if err != nil {
		return nil, err
	}
	if row == 0 {
		return nil, nil
	}
	cur, err := r.readRow(ctx, stockTab, len(stockHeaders), row)
	if err != nil {
		return nil, err
	}
	return stockFromRow(cur)
}

// FindByProductoYDeposito devuelve la primera fila para (producto, depósito), o (nil, nil).
func (r *StockRepository) FindByProductoYDeposito(ctx context.Context, idProducto, idDeposito string) (*entity.Stock, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	idProducto = strings.TrimSpace(idProducto)
	idDeposito = strings.TrimSpace(idDeposito)
	if idProducto == "" || idDeposito == "" {
		return nil, nil
	}
	rows, err := r.api.Get(ctx, dataRange(stockTab, len(stockHeaders)))
	if err != nil {
		return nil, err
	}
	for _, raw := range rows {
		row := padRow(raw, len(stockHeaders))
		if strings.TrimSpace(row[2]) == idProducto && strings.TrimSpace(row[3]) == idDeposito {
			return stockFromRow(row)
		}
	}
	return nil, nil
}

// Add agrega la fila ["", RecID, ID_producto, ID_deposito, cantidad].
func (r *StockRepository) Add(ctx context.Context, s *entity.Stock) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	row := []string{"", s.RecID, s.IDProducto, s.IDDeposito, strconv.Itoa(s.Cantidad)}
	return r.appendRow(ctx, stockTab, row)
}

// SetCantidad reescribe la cantidad de la fila dejando producto y depósito intactos.
func (r *StockRepository) SetCantidad(ctx context.Context, recid string, cantidad int) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}
	row, err := r.findRowByColValue(ctx, stockTab, 2, strings.TrimSpace(recid))
	if err != nil {
		return err
	}
	if row == 0 {
		return domain.ErrNotFound
	}
	cur, err := r.readRow(ctx, stockTab, len(stockHeaders), row)
	if err != nil {
		return err
	}
	out := []string{"", cur[1], cur[2], cur[3], strconv.Itoa(cantidad)}
	return r.writeRow(ctx, stockTab, len(stockHeaders), row, out)
}

// DeleteByRecID limpia el rango de la fila (la fila vacía queda en la hoja).
func (r *StockRepository) DeleteByRecID(ctx context.Context, recid string) (bool, error) {
	if err := r.ensure(ctx); err != nil {
		return false, err
	}
	row, err := r.findRowByColValue(ctx, stockTab, 2, strings.TrimSpace(recid))
	if err != nil {
		return false, err
	}
	if row == 0 {
		return false, nil
	}
	if err := r.clearRow(ctx, stockTab, len(stockHeaders), row); err != nil {
		return false, err
	}
	return true, nil
}
