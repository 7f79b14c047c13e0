package sheets

import (
	"context"
	"fmt"
	"time"

	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

// Versiones que se sellan en dataIndexInfo al crear una planilla.
const (
	VersionSheet  = "0.0.1"
	VersionGestor = "0.2.0"
)

const fechaCreacionLayout = "02/01/2006 15:04:05"

// tabSpec describe una pestaña del gestor y sus encabezados.
type tabSpec struct {
	Tab     string
	Headers []string
}

// gestorTabs define el esquema completo de una planilla del gestor, en el
// orden en que se crean las pestañas.
func gestorTabs() []tabSpec {
	return []tabSpec{
		{productoTab, append(append([]string{}, productoHeadersBase...), productoDefaultImgHeader)},
		{depositoTab, depositoHeaders},
		{stockTab, stockHeaders},
		{imagenTab, imagenHeaders},
		{usuariosTab, usuariosHeaders},
		{logsTab, logsHeaders},
		{dataIndexInfoTab, dataIndexInfoHeaders},
	}
}

const dataIndexInfoTab = "dataIndexInfo"

var dataIndexInfoHeaders = []string{"data_ini_prox", "fecha_creacion", "version_sheet", "version_gestor"}

// Bootstrapper inicializa un spreadsheet recién creado (por Drive) con el
// esquema completo del gestor: pestañas, encabezados, sello de versión y el
// primer usuario como Administrador.
type Bootstrapper struct {
	svc *sheetsapi.Service
	now func() time.Time
}

// NewBootstrapper construye el bootstrapper sobre el servicio de Sheets.
func NewBootstrapper(svc *sheetsapi.Service) *Bootstrapper {
	return &Bootstrapper{svc: svc, now: time.Now}
}

// Init deja el spreadsheet listo para usar: crea las pestañas del gestor,
// borra las pestañas que trajera el archivo (la "Hoja 1" por defecto),
// escribe los encabezados, sella dataIndexInfo y registra al creador como
// Administrador.
func (b *Bootstrapper) Init(ctx context.Context, spreadsheetID string, admin *entity.Usuario) error {
	meta, err := b.svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("leer spreadsheet nuevo: %w", err)
	}

	tabs := gestorTabs()
	reqs := make([]*sheetsapi.Request, 0, len(tabs)+len(meta.Sheets))
	for _, t := range tabs {
		reqs = append(reqs, &sheetsapi.Request{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: t.Tab},
			},
		})
	}
	for _, s := range meta.Sheets {
		if s.Properties == nil {
			continue
		}
		reqs = append(reqs, &sheetsapi.Request{
			DeleteSheet: &sheetsapi.DeleteSheetRequest{SheetId: s.Properties.SheetId},
		})
	}
	_, err = b.svc.Spreadsheets.BatchUpdate(spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("crear pestañas del gestor: %w", err)
	}

	data := make([]*sheetsapi.ValueRange, 0, len(tabs)+2)
	for _, t := range tabs {
		data = append(data, &sheetsapi.ValueRange{
			Range:  fmt.Sprintf("%s!A1:%s1", t.Tab, colLetter(len(t.Headers))),
			Values: toInterfaceRows([][]string{t.Headers}),
		})
	}
	fecha := b.now().Format(fechaCreacionLayout)
	data = append(data, &sheetsapi.ValueRange{
		Range:  fmt.Sprintf("%s!A2:D2", dataIndexInfoTab),
		Values: toInterfaceRows([][]string{{"", fecha, VersionSheet, VersionGestor}}),
	})
	if admin != nil {
		data = append(data, &sheetsapi.ValueRange{
			Range: fmt.Sprintf("%s!A2:F2", usuariosTab),
			Values: toInterfaceRows([][]string{{
				"", admin.RecID, admin.IDUsuario, admin.Nombre, admin.Correo, entity.RangoAdministrador,
			}}),
		})
	}
	_, err = b.svc.Spreadsheets.Values.BatchUpdate(spreadsheetID, &sheetsapi.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sembrar planilla del gestor: %w", err)
	}
	return nil
}
