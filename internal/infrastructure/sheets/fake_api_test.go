package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// fakeValues implementa valuesAPI en memoria para los tests: un spreadsheet
// con pestañas y celdas direccionadas por rangos A1. Cuenta las escrituras
// para poder verificar idempotencia.
type fakeValues struct {
	mu      sync.Mutex
	tabs    map[string][][]string
	updates int
	appends int
	clears  int
}

func newFakeValues(tabs ...string) *fakeValues {
	f := &fakeValues{tabs: make(map[string][][]string)}
	for _, t := range tabs {
		f.tabs[t] = nil
	}
	return f
}

// parseA1 separa "tab!rango" en sus partes. r2==0 significa rango abierto
// hacia abajo; c2==0 significa celda única.
func parseA1(rng string) (tab string, c1, r1, c2, r2 int, err error) {
	if i := strings.IndexByte(rng, '!'); i >= 0 {
		tab, rng = rng[:i], rng[i+1:]
	}
	if rng == "1:1" {
		return tab, 1, 1, -1, 1, nil
	}
	parts := strings.SplitN(rng, ":", 2)
	c1, r1, err = parseCell(parts[0])
	if err != nil {
		return "", 0, 0, 0, 0, err
	}
	if len(parts) == 1 {
		return tab, c1, r1, 0, r1, nil
	}
	c2, r2, err = parseCell(parts[1])
	if err != nil {
		return "", 0, 0, 0, 0, err
	}
	return tab, c1, r1, c2, r2, nil
}

// parseCell interpreta "B7" o "B" (fila 0 = sin fila).
func parseCell(s string) (col, row int, err error) {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		col = col*26 + int(s[i]-'A') + 1
		i++
	}
	if col == 0 {
		return 0, 0, fmt.Errorf("celda inválida %q", s)
	}
	if i == len(s) {
		return col, 0, nil
	}
	row, err = strconv.Atoi(s[i:])
	if err != nil {
		return 0, 0, fmt.Errorf("celda inválida %q", s)
	}
	return col, row, nil
}

func (f *fakeValues) grid(tab string) [][]string {
	return f.tabs[tab]
}

func (f *fakeValues) setCell(tab string, row, col int, val string) {
	g := f.tabs[tab]
	for len(g) < row {
		g = append(g, nil)
	}
	r := g[row-1]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = val
	g[row-1] = r
	f.tabs[tab] = g
}

func (f *fakeValues) Get(_ context.Context, a1Range string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tab, c1, r1, c2, r2, err := parseA1(a1Range)
	if err != nil {
		return nil, err
	}
	g, ok := f.tabs[tab]
	if !ok {
		return nil, fmt.Errorf("pestaña inexistente %q", tab)
	}
	if r2 == 0 || r2 > len(g) {
		r2 = len(g)
	}
	var out [][]string
	for row := r1; row <= r2; row++ {
		if row > len(g) {
			break
		}
		src := g[row-1]
		last := c2
		if last <= 0 || last > len(src) {
			last = len(src)
		}
		var cells []string
		for col := c1; col <= last; col++ {
			if col <= len(src) {
				cells = append(cells, src[col-1])
			}
		}
		out = append(out, cells)
	}
	// Google omite las filas vacías del final.
	for len(out) > 0 && len(strings.TrimSpace(strings.Join(out[len(out)-1], ""))) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (f *fakeValues) Update(_ context.Context, a1Range string, values [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tab, c1, r1, _, _, err := parseA1(a1Range)
	if err != nil {
		return err
	}
	if _, ok := f.tabs[tab]; !ok {
		return fmt.Errorf("pestaña inexistente %q", tab)
	}
	for i, row := range values {
		for j, cell := range row {
			f.setCell(tab, r1+i, c1+j, cell)
		}
	}
	f.updates++
	return nil
}

func (f *fakeValues) Append(_ context.Context, a1Range string, values [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tab, _, _, _, _, err := parseA1(a1Range)
	if err != nil {
		return err
	}
	g, ok := f.tabs[tab]
	if !ok {
		return fmt.Errorf("pestaña inexistente %q", tab)
	}
	last := 0
	for i, row := range g {
		if strings.TrimSpace(strings.Join(row, "")) != "" {
			last = i + 1
		}
	}
	for i, row := range values {
		for j, cell := range row {
			f.setCell(tab, last+1+i, 1+j, cell)
		}
	}
	f.appends++
	return nil
}

func (f *fakeValues) Clear(_ context.Context, a1Range string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tab, c1, r1, c2, r2, err := parseA1(a1Range)
	if err != nil {
		return err
	}
	g, ok := f.tabs[tab]
	if !ok {
		return fmt.Errorf("pestaña inexistente %q", tab)
	}
	if r2 == 0 || r2 > len(g) {
		r2 = len(g)
	}
	for row := r1; row <= r2 && row <= len(g); row++ {
		src := g[row-1]
		last := c2
		if last <= 0 || last > len(src) {
			last = len(src)
		}
		for col := c1; col <= last; col++ {
			if col <= len(src) {
				src[col-1] = ""
			}
		}
	}
	f.clears++
	return nil
}

func (f *fakeValues) TabTitles(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	titles := make([]string, 0, len(f.tabs))
	for t := range f.tabs {
		titles = append(titles, t)
	}
	return titles, nil
}

func (f *fakeValues) AddTab(_ context.Context, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tabs[title]; ok {
		return fmt.Errorf("pestaña duplicada %q", title)
	}
	f.tabs[title] = nil
	return nil
}

func (f *fakeValues) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updates + f.appends + f.clears
}
