package drive

import (
	"context"
	"fmt"
	"strings"

	driveapi "google.golang.org/api/drive/v3"
)

const (
	mimeFolder      = "application/vnd.google-apps.folder"
	mimeSpreadsheet = "application/vnd.google-apps.spreadsheet"
)

// Folders resuelve y crea la jerarquía de carpetas del gestor en Drive.
type Folders struct {
	svc        *driveapi.Service
	rootFolder string // nombre de la carpeta raíz (TacticaGestorSheet)
	imgFolder  string // nombre de la carpeta de imágenes (GestorImagen)
}

// NewFolders construye el resolutor de carpetas.
func NewFolders(svc *driveapi.Service, rootFolder, imgFolder string) *Folders {
	return &Folders{svc: svc, rootFolder: rootFolder, imgFolder: imgFolder}
}

// escapeQuery escapa comillas simples para interpolar nombres en consultas de Drive.
func escapeQuery(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

// FindFolderID busca por nombre una carpeta no borrada. Devuelve "" si no existe.
func (f *Folders) FindFolderID(ctx context.Context, name, parentID string) (string, error) {
	q := fmt.Sprintf("mimeType = '%s' and name = '%s' and trashed = false", mimeFolder, escapeQuery(name))
	if parentID != "" {
		q += fmt.Sprintf(" and '%s' in parents", escapeQuery(parentID))
	}
	res, err := f.svc.Files.List().
		Q(q).
		Fields("files(id, name)").
		PageSize(10).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("buscar carpeta %q: %w", name, err)
	}
	if len(res.Files) == 0 {
		return "", nil
	}
	return res.Files[0].Id, nil
}

// CreateFolder crea una carpeta, opcionalmente dentro de un padre.
func (f *Folders) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	meta := &driveapi.File{Name: name, MimeType: mimeFolder}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}
	created, err := f.svc.Files.Create(meta).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("crear carpeta %q: %w", name, err)
	}
	return created.Id, nil
}

// GetOrCreateFolder devuelve el ID de la carpeta, creándola si hace falta.
func (f *Folders) GetOrCreateFolder(ctx context.Context, name, parentID string) (string, error) {
	id, err := f.FindFolderID(ctx, name, parentID)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}
	return f.CreateFolder(ctx, name, parentID)
}

// GetOrCreateRootFolder resuelve la carpeta raíz del gestor.
func (f *Folders) GetOrCreateRootFolder(ctx context.Context) (string, error) {
	return f.GetOrCreateFolder(ctx, f.rootFolder, "")
}

// GetOrCreateImageFolder resuelve la carpeta de imágenes dentro de la raíz y
// garantiza que sea legible por cualquiera con el enlace (los links de imagen
// se sirven sin autenticación).
func (f *Folders) GetOrCreateImageFolder(ctx context.Context) (string, error) {
	rootID, err := f.GetOrCreateRootFolder(ctx)
	if err != nil {
		return "", err
	}
	imgID, err := f.GetOrCreateFolder(ctx, f.imgFolder, rootID)
	if err != nil {
		return "", err
	}
	if err := f.EnsureAnyoneWithLinkReader(ctx, imgID); err != nil {
		return "", err
	}
	return imgID, nil
}

// HasAnyoneReader indica si el archivo ya tiene el permiso type=anyone.
func (f *Folders) HasAnyoneReader(ctx context.Context, fileID string) (bool, error) {
	res, err := f.svc.Permissions.List(fileID).
		Fields("permissions(id, type, role)").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("listar permisos de %s: %w", fileID, err)
	}
	for _, p := range res.Permissions {
		if p.Type == "anyone" {
			return true, nil
		}
	}
	return false, nil
}

// EnsureAnyoneWithLinkReader otorga lectura a cualquiera con el enlace, sin
// aparecer en búsquedas. Idempotente.
func (f *Folders) EnsureAnyoneWithLinkReader(ctx context.Context, fileID string) error {
	has, err := f.HasAnyoneReader(ctx, fileID)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	perm := &driveapi.Permission{
		Type:               "anyone",
		Role:               "reader",
		AllowFileDiscovery: false,
	}
	_, err = f.svc.Permissions.Create(fileID, perm).
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("compartir %s con enlace: %w", fileID, err)
	}
	return nil
}

// FindSpreadsheetInFolder busca por nombre un spreadsheet dentro de la carpeta.
// Devuelve "" si no existe.
func (f *Folders) FindSpreadsheetInFolder(ctx context.Context, name, folderID string) (string, error) {
	q := fmt.Sprintf("mimeType = '%s' and name = '%s' and '%s' in parents and trashed = false",
		mimeSpreadsheet, escapeQuery(name), escapeQuery(folderID))
	res, err := f.svc.Files.List().
		Q(q).
		Fields("files(id, name)").
		PageSize(10).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("buscar planilla %q: %w", name, err)
	}
	if len(res.Files) == 0 {
		return "", nil
	}
	return res.Files[0].Id, nil
}

// CreateSpreadsheetInFolder crea un spreadsheet vacío dentro de la carpeta.
func (f *Folders) CreateSpreadsheetInFolder(ctx context.Context, name, folderID string) (string, error) {
	meta := &driveapi.File{
		Name:     name,
		MimeType: mimeSpreadsheet,
		Parents:  []string{folderID},
	}
	created, err := f.svc.Files.Create(meta).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("crear planilla %q: %w", name, err)
	}
	return created.Id, nil
}

// ListSpreadsheetsInFolder lista los spreadsheets no borrados de la carpeta.
func (f *Folders) ListSpreadsheetsInFolder(ctx context.Context, folderID string) ([]*driveapi.File, error) {
	q := fmt.Sprintf("mimeType = '%s' and '%s' in parents and trashed = false",
		mimeSpreadsheet, escapeQuery(folderID))
	var out []*driveapi.File
	pageToken := ""
	for {
		call := f.svc.Files.List().
			Q(q).
			Fields("nextPageToken, files(id, name, createdTime)").
			PageSize(100).
			SupportsAllDrives(true).
			IncludeItemsFromAllDrives(true).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		res, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listar planillas: %w", err)
		}
		out = append(out, res.Files...)
		if res.NextPageToken == "" {
			return out, nil
		}
		pageToken = res.NextPageToken
	}
}

// Trash manda un archivo a la papelera.
func (f *Folders) Trash(ctx context.Context, fileID string) error {
	_, err := f.svc.Files.Update(fileID, &driveapi.File{Trashed: true}).
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("enviar %s a la papelera: %w", fileID, err)
	}
	return nil
}

// Rename cambia el nombre de un archivo de Drive.
func (f *Folders) Rename(ctx context.Context, fileID, newName string) error {
	_, err := f.svc.Files.Update(fileID, &driveapi.File{Name: newName}).
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("renombrar %s: %w", fileID, err)
	}
	return nil
}
