package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
	"github.com/tacticadev/gestor-api/internal/domain/repository"
	"github.com/tacticadev/gestor-api/pkg/recid"
)

const fechaSheetLayout = "02/01/2006 15:04:05"

// PlanillasDrive son las operaciones de Drive que necesita la administración
// de planillas. Lo implementa drive.Folders.
type PlanillasDrive interface {
	GetOrCreateRootFolder(ctx context.Context) (string, error)
	CreateSpreadsheetInFolder(ctx context.Context, name, folderID string) (string, error)
	Rename(ctx context.Context, fileID, newName string) error
	Trash(ctx context.Context, fileID string) error
}

// PlanillaBootstrapper inicializa un spreadsheet recién creado con el esquema
// del gestor. Lo implementa sheets.Bootstrapper.
type PlanillaBootstrapper interface {
	Init(ctx context.Context, spreadsheetID string, admin *entity.Usuario) error
}

// SheetUseCase administra las planillas del gestor: el índice registra qué
// planillas existen y Drive mantiene los archivos.
type SheetUseCase struct {
	index     repository.IndexRepository
	drive     PlanillasDrive
	bootstrap PlanillaBootstrapper
	now       func() time.Time
}

// NewSheetUseCase construye el caso de uso.
func NewSheetUseCase(index repository.IndexRepository, d PlanillasDrive, bootstrap PlanillaBootstrapper) *SheetUseCase {
	return &SheetUseCase{index: index, drive: d, bootstrap: bootstrap, now: time.Now}
}

// List devuelve las planillas registradas en el índice.
func (uc *SheetUseCase) List(ctx context.Context) ([]*dto.SheetResponse, error) {
	infos, err := uc.index.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SheetResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, dto.ToSheetResponse(info))
	}
	return out, nil
}

// Crear crea el spreadsheet en la carpeta raíz, lo inicializa con el esquema
// del gestor (el creador queda como Administrador) y lo registra en el índice.
func (uc *SheetUseCase) Crear(ctx context.Context, nombre, nombreCreador, correoCreador string) (*dto.SheetResponse, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	rootID, err := uc.drive.GetOrCreateRootFolder(ctx)
	if err != nil {
		return nil, err
	}
	sheetID, err := uc.drive.CreateSpreadsheetInFolder(ctx, nombre, rootID)
	if err != nil {
		return nil, err
	}
	admin := &entity.Usuario{
		RecID:     recid.New(),
		IDUsuario: strings.ToLower(strings.TrimSpace(correoCreador)),
		Nombre:    strings.TrimSpace(nombreCreador),
		Correo:    strings.ToLower(strings.TrimSpace(correoCreador)),
		Rango:     entity.RangoAdministrador,
	}
	if err := uc.bootstrap.Init(ctx, sheetID, admin); err != nil {
		// La planilla quedó creada pero sin esquema: se compensa a la papelera.
		_ = uc.drive.Trash(ctx, sheetID)
		return nil, err
	}
	info := &entity.SheetInfo{
		RecID:         recid.New(),
		Nombre:        nombre,
		SheetID:       sheetID,
		CorreoOrigen:  admin.Correo,
		EstadoUser:    entity.RangoAdministrador,
		FechaCreacion: uc.now().Format(fechaSheetLayout),
	}
	if err := uc.index.Append(ctx, info); err != nil {
		return nil, err
	}
	return dto.ToSheetResponse(info), nil
}

// Renombrar cambia el nombre del archivo en Drive y en el índice.
// Devuelve false si el sheetID no está registrado.
func (uc *SheetUseCase) Renombrar(ctx context.Context, sheetID, nombre string) (bool, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return false, domain.ErrInvalidInput
	}
	ok, err := uc.index.UpdateNombreBySheetID(ctx, sheetID, nombre)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := uc.drive.Rename(ctx, sheetID, nombre); err != nil {
		return false, err
	}
	return true, nil
}

// Eliminar manda la planilla a la papelera y limpia su fila del índice.
// Devuelve false si el sheetID no está registrado.
func (uc *SheetUseCase) Eliminar(ctx context.Context, sheetID string) (bool, error) {
	ok, err := uc.index.ClearBySheetID(ctx, sheetID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := uc.drive.Trash(ctx, sheetID); err != nil {
		return false, err
	}
	return true, nil
}
