package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

type fakeIndexRepo struct {
	infos []*entity.SheetInfo
}

func (f *fakeIndexRepo) List(context.Context) ([]*entity.SheetInfo, error) { return f.infos, nil }
func (f *fakeIndexRepo) Append(_ context.Context, info *entity.SheetInfo) error {
	f.infos = append(f.infos, info)
	return nil
}
func (f *fakeIndexRepo) UpdateNombreBySheetID(_ context.Context, sheetID, nuevoNombre string) (bool, error) {
	for _, info := range f.infos {
		if info.SheetID == sheetID {
			info.Nombre = nuevoNombre
			return true, nil
		}
	}
	return false, nil
}
func (f *fakeIndexRepo) ClearBySheetID(_ context.Context, sheetID string) (bool, error) {
	for i, info := range f.infos {
		if info.SheetID == sheetID {
			f.infos = append(f.infos[:i], f.infos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakePlanillasDrive struct {
	created  []string
	renamed  []string
	trashed  []string
	rootErr  error
	createID string
}

func (f *fakePlanillasDrive) GetOrCreateRootFolder(context.Context) (string, error) {
	return "root-1", f.rootErr
}
func (f *fakePlanillasDrive) CreateSpreadsheetInFolder(_ context.Context, name, folderID string) (string, error) {
	f.created = append(f.created, name+"@"+folderID)
	return f.createID, nil
}
func (f *fakePlanillasDrive) Rename(_ context.Context, fileID, newName string) error {
	f.renamed = append(f.renamed, fileID+"->"+newName)
	return nil
}
func (f *fakePlanillasDrive) Trash(_ context.Context, fileID string) error {
	f.trashed = append(f.trashed, fileID)
	return nil
}

type fakeBootstrapper struct {
	admins  []*entity.Usuario
	initErr error
}

func (f *fakeBootstrapper) Init(_ context.Context, _ string, admin *entity.Usuario) error {
	if f.initErr != nil {
		return f.initErr
	}
	f.admins = append(f.admins, admin)
	return nil
}

func newSheetFixture() (*SheetUseCase, *fakeIndexRepo, *fakePlanillasDrive, *fakeBootstrapper) {
	index := &fakeIndexRepo{}
	d := &fakePlanillasDrive{createID: "sheet-1"}
	boot := &fakeBootstrapper{}
	return NewSheetUseCase(index, d, boot), index, d, boot
}

func TestCrearSheet_CreaSiembraYRegistra(t *testing.T) {
	ctx := context.Background()
	uc, index, d, boot := newSheetFixture()

	out, err := uc.Crear(ctx, " Inventario 2026 ", "Ana", "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Inventario 2026", out.Nombre)
	assert.Equal(t, "sheet-1", out.SheetID)
	assert.Equal(t, "ana@example.com", out.CorreoOrigen)
	assert.Equal(t, entity.RangoAdministrador, out.EstadoUser)
	assert.NotEmpty(t, out.FechaCreacion)

	assert.Equal(t, []string{"Inventario 2026@root-1"}, d.created)
	require.Len(t, boot.admins, 1)
	assert.Equal(t, entity.RangoAdministrador, boot.admins[0].Rango)
	assert.Equal(t, "ana@example.com", boot.admins[0].Correo)
	assert.Len(t, index.infos, 1)
	assert.Empty(t, d.trashed)
}

func TestCrearSheet_CompensaBootstrapFallido(t *testing.T) {
	ctx := context.Background()
	uc, index, d, boot := newSheetFixture()
	boot.initErr = errors.New("sin permisos sobre el spreadsheet")

	_, err := uc.Crear(ctx, "Inventario", "Ana", "ana@example.com")
	require.Error(t, err)
	assert.Equal(t, []string{"sheet-1"}, d.trashed,
		"el spreadsheet sin esquema va a la papelera")
	assert.Empty(t, index.infos, "un bootstrap fallido no se registra en el índice")
}

func TestCrearSheet_NombreVacio(t *testing.T) {
	uc, _, _, _ := newSheetFixture()
	_, err := uc.Crear(context.Background(), "   ", "Ana", "ana@example.com")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRenombrarSheet(t *testing.T) {
	ctx := context.Background()
	uc, index, d, _ := newSheetFixture()
	index.infos = []*entity.SheetInfo{{RecID: "r1", Nombre: "Viejo", SheetID: "sheet-1"}}

	ok, err := uc.Renombrar(ctx, "sheet-1", "Nuevo")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Nuevo", index.infos[0].Nombre)
	assert.Equal(t, []string{"sheet-1->Nuevo"}, d.renamed)

	ok, err = uc.Renombrar(ctx, "sheet-9", "X")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = uc.Renombrar(ctx, "sheet-1", "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEliminarSheet(t *testing.T) {
	ctx := context.Background()
	uc, index, d, _ := newSheetFixture()
	index.infos = []*entity.SheetInfo{{RecID: "r1", Nombre: "Uno", SheetID: "sheet-1"}}

	ok, err := uc.Eliminar(ctx, "sheet-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, index.infos)
	assert.Equal(t, []string{"sheet-1"}, d.trashed)

	ok, err = uc.Eliminar(ctx, "sheet-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
