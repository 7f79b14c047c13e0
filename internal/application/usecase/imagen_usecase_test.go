package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
	"github.com/tacticadev/gestor-api/internal/infrastructure/drive"
	"github.com/tacticadev/gestor-api/pkg/logger"
)

type fakeImagenRepo struct {
	links  map[string]string
	addErr error
}

func (f *fakeImagenRepo) List(context.Context) ([]*entity.Imagen, error) {
	out := make([]*entity.Imagen, 0, len(f.links))
	for id, link := range f.links {
		out = append(out, &entity.Imagen{RecID: id, Link: link})
	}
	return out, nil
}

func (f *fakeImagenRepo) GetLinkByRecID(_ context.Context, recid string) (string, error) {
	link, ok := f.links[recid]
	if !ok || link == "" {
		return "", domain.ErrNotFound
	}
	return link, nil
}

func (f *fakeImagenRepo) Add(_ context.Context, recid, link string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.links[recid] = link
	return nil
}

func (f *fakeImagenRepo) DeleteByRecID(_ context.Context, recid string) (bool, error) {
	if _, ok := f.links[recid]; !ok {
		return false, nil
	}
	delete(f.links, recid)
	return true, nil
}

type fakeUploader struct {
	uploads int
	deleted []string
}

func (f *fakeUploader) UploadImage(_ context.Context, name, _ string, content io.Reader) (string, string, error) {
	_, _ = io.ReadAll(content)
	f.uploads++
	return "file-1", drive.ViewLink("file-1"), nil
}

func (f *fakeUploader) Delete(_ context.Context, fileID string) error {
	f.deleted = append(f.deleted, fileID)
	return nil
}

type fakeImagenCache struct {
	invalidated []string
}

func (f *fakeImagenCache) Get(context.Context, string) ([]byte, string, error) {
	return []byte("bytes"), "image/jpeg", nil
}

func (f *fakeImagenCache) Invalidate(recid string) {
	f.invalidated = append(f.invalidated, recid)
}

func newImagenFixture() (*ImagenUseCase, *fakeImagenRepo, *fakeUploader, *fakeImagenCache) {
	repo := &fakeImagenRepo{links: make(map[string]string)}
	up := &fakeUploader{}
	cache := &fakeImagenCache{}
	return NewImagenUseCase(repo, up, cache, logger.Nop()), repo, up, cache
}

func TestSubir_RegistraElLink(t *testing.T) {
	ctx := context.Background()
	uc, repo, up, _ := newImagenFixture()

	out, err := uc.Subir(ctx, "foto.jpg", "image/jpeg", strings.NewReader("contenido"))
	require.NoError(t, err)
	require.NotEmpty(t, out.RecID)
	assert.Equal(t, drive.ViewLink("file-1"), out.Link)
	assert.Equal(t, out.Link, repo.links[out.RecID])
	assert.Equal(t, 1, up.uploads)
	assert.Empty(t, up.deleted)
}

func TestSubir_CompensaCuandoElRegistroFalla(t *testing.T) {
	ctx := context.Background()
	uc, repo, up, _ := newImagenFixture()
	repo.addErr = errors.New("hoja inaccesible")

	_, err := uc.Subir(ctx, "foto.jpg", "image/jpeg", strings.NewReader("contenido"))
	require.Error(t, err)
	assert.Equal(t, []string{"file-1"}, up.deleted,
		"la subida huérfana se borra de Drive")
}

func TestEliminar_BorraFilaArchivoYCache(t *testing.T) {
	ctx := context.Background()
	uc, repo, up, cache := newImagenFixture()
	repo.links["img1"] = drive.ViewLink("file-1")

	ok, err := uc.Eliminar(ctx, "img1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, repo.links)
	assert.Equal(t, []string{"file-1"}, up.deleted)
	assert.Equal(t, []string{"img1"}, cache.invalidated)
}

func TestEliminar_NoRegistrada(t *testing.T) {
	ctx := context.Background()
	uc, _, up, _ := newImagenFixture()

	ok, err := uc.Eliminar(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, up.deleted)
}

func TestEliminar_LinkSinIDDeDrive(t *testing.T) {
	ctx := context.Background()
	uc, repo, up, cache := newImagenFixture()
	repo.links["img1"] = "https://example.com/externa.jpg"

	ok, err := uc.Eliminar(ctx, "img1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, up.deleted, "un link externo no dispara borrado en Drive")
	assert.Equal(t, []string{"img1"}, cache.invalidated)
}
