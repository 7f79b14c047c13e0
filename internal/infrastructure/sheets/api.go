package sheets

import (
	"context"
	"fmt"

	sheetsapi "google.golang.org/api/sheets/v4"
)

// valuesAPI es el puerto mínimo sobre la API de valores de Sheets que usan los
// repositorios. La implementación real llama a Google; los tests usan una en memoria.
type valuesAPI interface {
	Get(ctx context.Context, a1Range string) ([][]string, error)
	Update(ctx context.Context, a1Range string, values [][]string) error
	Append(ctx context.Context, a1Range string, values [][]string) error
	Clear(ctx context.Context, a1Range string) error
	TabTitles(ctx context.Context) ([]string, error)
	AddTab(ctx context.Context, title string) error
}

// googleValues implementa valuesAPI contra spreadsheets.values de Google Sheets.
type googleValues struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func (g *googleValues) Get(ctx context.Context, a1Range string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, a1Range).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets get %s: %w", a1Range, err)
	}
	return toStringRows(resp.Values), nil
}

func (g *googleValues) Update(ctx context.Context, a1Range string, values [][]string) error {
	body := &sheetsapi.ValueRange{Values: toInterfaceRows(values)}
	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, a1Range, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets update %s: %w", a1Range, err)
	}
	return nil
}

func (g *googleValues) Append(ctx context.Context, a1Range string, values [][]string) error {
	body := &sheetsapi.ValueRange{Values: toInterfaceRows(values)}
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, a1Range, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets append %s: %w", a1Range, err)
	}
	return nil
}

func (g *googleValues) Clear(ctx context.Context, a1Range string) error {
	_, err := g.svc.Spreadsheets.Values.Clear(g.spreadsheetID, a1Range, &sheetsapi.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets clear %s: %w", a1Range, err)
	}
	return nil
}

func (g *googleValues) TabTitles(ctx context.Context) ([]string, error) {
	meta, err := g.svc.Spreadsheets.Get(g.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets metadata: %w", err)
	}
	titles := make([]string, 0, len(meta.Sheets))
	for _, s := range meta.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

func (g *googleValues) AddTab(ctx context.Context, title string) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: title},
			},
		}},
	}
	_, err := g.svc.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets addSheet %s: %w", title, err)
	}
	return nil
}

func toStringRows(values [][]interface{}) [][]string {
	out := make([][]string, 0, len(values))
	for _, row := range values {
		r := make([]string, 0, len(row))
		for _, cell := range row {
			r = append(r, fmt.Sprint(cell))
		}
		out = append(out, r)
	}
	return out
}

func toInterfaceRows(values [][]string) [][]interface{} {
	out := make([][]interface{}, 0, len(values))
	for _, row := range values {
		r := make([]interface{}, 0, len(row))
		for _, cell := range row {
			r = append(r, cell)
		}
		out = append(out, r)
	}
	return out
}
