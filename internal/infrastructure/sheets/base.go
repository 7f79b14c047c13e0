package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// base agrupa los helpers comunes a todas las hojas: asegurar pestaña y
// encabezados (una sola vez por instancia), búsquedas por columna y armado
// de rangos A1. Lo embeben los repositorios concretos.
type base struct {
	api valuesAPI

	mu      sync.Mutex
	ensured map[string]bool // pestañas ya verificadas en esta instancia
}

func newBase(api valuesAPI) base {
	return base{api: api, ensured: make(map[string]bool)}
}

// colLetter convierte índice 1-based a letra de columna: 1->A, 26->Z, 27->AA.
func colLetter(n int) string {
	var sb []byte
	for n > 0 {
		n--
		sb = append([]byte{byte('A' + n%26)}, sb...)
		n /= 26
	}
	return string(sb)
}

// dataRange devuelve el rango de datos de la hoja: "tab!A2:<última columna>".
func dataRange(tab string, ncols int) string {
	return fmt.Sprintf("%s!A2:%s", tab, colLetter(ncols))
}

// rowRange devuelve el rango de una fila completa: "tab!A<fila>:<col><fila>".
func rowRange(tab string, ncols, row int) string {
	return fmt.Sprintf("%s!A%d:%s%d", tab, row, colLetter(ncols), row)
}

// padRow normaliza la fila al ancho de los encabezados (rellena o recorta).
func padRow(r []string, n int) []string {
	out := make([]string, n)
	copy(out, r)
	return out
}

// rowBlank indica si todos los campos (ignorando la columna A) están vacíos.
func rowBlank(r []string) bool {
	for i, v := range r {
		if i == 0 {
			continue // data_ini_prox: siempre vacía por convención
		}
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// ensureTabAndHeaders crea la pestaña si no existe y escribe los encabezados en
// la fila 1 si está vacía. Idempotente: sobre una hoja correcta no escribe nada.
// El resultado se cachea por instancia para el resto de su vida.
func (b *base) ensureTabAndHeaders(ctx context.Context, tab string, headers []string) error {
	b.mu.Lock()
	if b.ensured[tab] {
		b.mu.Unlock()
		return nil
	}
	b.mu.Unlock()

	titles, err := b.api.TabTitles(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, t := range titles {
		if t == tab {
			found = true
			break
		}
	}
	if !found {
		if err := b.api.AddTab(ctx, tab); err != nil {
			return err
		}
	}

	first, err := b.api.Get(ctx, fmt.Sprintf("%s!1:1", tab))
	if err != nil {
		return err
	}
	if len(first) == 0 || len(first[0]) == 0 {
		rng := fmt.Sprintf("%s!A1:%s1", tab, colLetter(len(headers)))
		if err := b.api.Update(ctx, rng, [][]string{headers}); err != nil {
			return err
		}
	}

	b.mu.Lock()
	b.ensured[tab] = true
	b.mu.Unlock()
	return nil
}

// readHeaders lee la fila 1 de la pestaña (vacío si la hoja no tiene encabezados).
func (b *base) readHeaders(ctx context.Context, tab string) ([]string, error) {
	first, err := b.api.Get(ctx, fmt.Sprintf("%s!1:1", tab))
	if err != nil {
		return nil, err
	}
	if len(first) == 0 {
		return nil, nil
	}
	return first[0], nil
}

// findRowByColValue busca por escaneo lineal la primera fila (1-based) cuya
// columna col1b coincide exactamente con value. Devuelve 0 si no hay coincidencia.
func (b *base) findRowByColValue(ctx context.Context, tab string, col1b int, value string) (int, error) {
	col := colLetter(col1b)
	rows, err := b.api.Get(ctx, fmt.Sprintf("%s!%s2:%s", tab, col, col))
	if err != nil {
		return 0, err
	}
	for i, r := range rows {
		v := ""
		if len(r) > 0 {
			v = strings.TrimSpace(r[0])
		}
		if v == value {
			return i + 2, nil
		}
	}
	return 0, nil
}

// readRow lee una fila completa normalizada al ancho indicado.
func (b *base) readRow(ctx context.Context, tab string, ncols, row int) ([]string, error) {
	rows, err := b.api.Get(ctx, rowRange(tab, ncols, row))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return make([]string, ncols), nil
	}
	return padRow(rows[0], ncols), nil
}

// writeRow sobreescribe una fila completa.
func (b *base) writeRow(ctx context.Context, tab string, ncols, row int, values []string) error {
	return b.api.Update(ctx, rowRange(tab, ncols, row), [][]string{padRow(values, ncols)})
}

// appendRow agrega una fila al final de los datos de la pestaña.
func (b *base) appendRow(ctx context.Context, tab string, values []string) error {
	return b.api.Append(ctx, fmt.Sprintf("%s!A2", tab), [][]string{values})
}

// clearRow limpia el rango de la fila (la fila vacía queda en la hoja).
func (b *base) clearRow(ctx context.Context, tab string, ncols, row int) error {
	return b.api.Clear(ctx, rowRange(tab, ncols, row))
}
