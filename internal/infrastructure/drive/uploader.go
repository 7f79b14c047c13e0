package drive

import (
	"context"
	"fmt"
	"io"

	driveapi "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/tacticadev/gestor-api/pkg/logger"
)

// Uploader sube imágenes a la carpeta del gestor y devuelve enlaces de vista.
type Uploader struct {
	svc     *driveapi.Service
	folders *Folders
	log     *logger.Logger
}

// NewUploader construye el uploader sobre el resolutor de carpetas.
func NewUploader(svc *driveapi.Service, folders *Folders, log *logger.Logger) *Uploader {
	return &Uploader{svc: svc, folders: folders, log: log}
}

// UploadImage sube el contenido a la carpeta de imágenes y devuelve el ID del
// archivo y su enlace de vista. El permiso "cualquiera con el enlace" sobre el
// archivo es mejor-esfuerzo: la carpeta ya lo hereda.
func (u *Uploader) UploadImage(ctx context.Context, name, mimeType string, content io.Reader) (fileID, link string, err error) {
	folderID, err := u.folders.GetOrCreateImageFolder(ctx)
	if err != nil {
		return "", "", err
	}
	meta := &driveapi.File{
		Name:    name,
		Parents: []string{folderID},
	}
	var mediaOpts []googleapi.MediaOption
	if mimeType != "" {
		mediaOpts = append(mediaOpts, googleapi.ContentType(mimeType))
	}
	created, err := u.svc.Files.Create(meta).
		Media(content, mediaOpts...).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", "", fmt.Errorf("subir imagen %q: %w", name, err)
	}
	if err := u.folders.EnsureAnyoneWithLinkReader(ctx, created.Id); err != nil {
		u.log.Warn().Err(err).Str("file_id", created.Id).Msg("no se pudo compartir la imagen con enlace")
	}
	return created.Id, ViewLink(created.Id), nil
}

// Delete borra un archivo de Drive. Se usa para compensar subidas cuya fila
// en la hoja 'imagen' no pudo registrarse.
func (u *Uploader) Delete(ctx context.Context, fileID string) error {
	if err := u.svc.Files.Delete(fileID).SupportsAllDrives(true).Context(ctx).Do(); err != nil {
		return fmt.Errorf("borrar archivo %s: %w", fileID, err)
	}
	return nil
}
