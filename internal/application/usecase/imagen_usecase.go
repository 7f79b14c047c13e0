package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/repository"
	"github.com/tacticadev/gestor-api/internal/infrastructure/drive"
	"github.com/tacticadev/gestor-api/pkg/logger"
	"github.com/tacticadev/gestor-api/pkg/recid"
)

// BlobUploader sube y borra archivos del blob store. Lo implementa
// drive.Uploader; los tests inyectan uno en memoria.
type BlobUploader interface {
	UploadImage(ctx context.Context, name, mimeType string, content io.Reader) (fileID, link string, err error)
	Delete(ctx context.Context, fileID string) error
}

// ImagenCache resuelve bytes de imagen por RecID.
type ImagenCache interface {
	Get(ctx context.Context, recid string) ([]byte, string, error)
	Invalidate(recid string)
}

// ImagenUseCase sube imágenes a Drive, las registra en la hoja 'imagen' y
// sirve su contenido a través de la caché.
type ImagenUseCase struct {
	repo     repository.ImagenRepository
	uploader BlobUploader
	cache    ImagenCache
	log      *logger.Logger
}

// NewImagenUseCase construye el caso de uso.
func NewImagenUseCase(repo repository.ImagenRepository, uploader BlobUploader, cache ImagenCache, log *logger.Logger) *ImagenUseCase {
	return &ImagenUseCase{repo: repo, uploader: uploader, cache: cache, log: log}
}

// List devuelve las imágenes registradas.
func (uc *ImagenUseCase) List(ctx context.Context) ([]*dto.ImagenResponse, error) {
	imagenes, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ImagenResponse, 0, len(imagenes))
	for _, img := range imagenes {
		out = append(out, &dto.ImagenResponse{RecID: img.RecID, Link: img.Link})
	}
	return out, nil
}

// Subir sube el archivo a Drive y registra el par RecID -> link. Si el
// registro falla se compensa borrando la subida (mejor esfuerzo).
func (uc *ImagenUseCase) Subir(ctx context.Context, name, mimeType string, content io.Reader) (*dto.ImagenResponse, error) {
	fileID, link, err := uc.uploader.UploadImage(ctx, name, mimeType, content)
	if err != nil {
		return nil, err
	}
	id := recid.New()
	if err := uc.repo.Add(ctx, id, link); err != nil {
		if derr := uc.uploader.Delete(ctx, fileID); derr != nil {
			uc.log.Warn().Err(derr).Str("file_id", fileID).Msg("no se pudo compensar la subida huérfana")
		}
		return nil, err
	}
	return &dto.ImagenResponse{RecID: id, Link: link}, nil
}

// Contenido devuelve los bytes y el MIME de la imagen, vía caché.
func (uc *ImagenUseCase) Contenido(ctx context.Context, id string) ([]byte, string, error) {
	return uc.cache.Get(ctx, id)
}

// Link devuelve el enlace de vista registrado para el RecID.
func (uc *ImagenUseCase) Link(ctx context.Context, id string) (*dto.ImagenResponse, error) {
	link, err := uc.repo.GetLinkByRecID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ImagenResponse{RecID: id, Link: link}, nil
}

// Eliminar borra la fila de la hoja, el archivo de Drive (mejor esfuerzo) y
// la entrada de caché. Devuelve false si el RecID no estaba registrado.
func (uc *ImagenUseCase) Eliminar(ctx context.Context, id string) (bool, error) {
	link, err := uc.repo.GetLinkByRecID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	ok, err := uc.repo.DeleteByRecID(ctx, id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if fileID := drive.ExtractDriveID(link); fileID != "" {
		if derr := uc.uploader.Delete(ctx, fileID); derr != nil {
			uc.log.Warn().Err(derr).Str("file_id", fileID).Msg("no se pudo borrar el archivo de Drive")
		}
	}
	uc.cache.Invalidate(id)
	return true, nil
}
