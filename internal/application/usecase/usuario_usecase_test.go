package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
	"github.com/tacticadev/gestor-api/internal/events"
	"github.com/tacticadev/gestor-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	usuarios []*entity.Usuario
}

func (f *fakeUsuarioRepo) List(context.Context) ([]*entity.Usuario, error) {
	return f.usuarios, nil
}

func (f *fakeUsuarioRepo) GetByRecID(_ context.Context, recid string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.RecID == recid {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) GetByCorreo(_ context.Context, correo string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Correo == correo {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Add(_ context.Context, u *entity.Usuario) error {
	f.usuarios = append(f.usuarios, u)
	return nil
}

func (f *fakeUsuarioRepo) Update(_ context.Context, u *entity.Usuario) (bool, error) {
	for i, old := range f.usuarios {
		if old.RecID == u.RecID {
			f.usuarios[i] = u
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsuarioRepo) DeleteByRecID(_ context.Context, recid string) (bool, error) {
	for i, u := range f.usuarios {
		if u.RecID == recid {
			f.usuarios = append(f.usuarios[:i], f.usuarios[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakePermisos registra cada upsert como "correo|rango|notify".
type fakePermisos struct {
	calls []string
}

func (f *fakePermisos) UpsertUserPermission(_ context.Context, _, email, rango string, notify bool) error {
	flag := "silencioso"
	if notify {
		flag = "aviso"
	}
	f.calls = append(f.calls, email+"|"+rango+"|"+flag)
	return nil
}

func newUsuarioFixture() (*UsuarioUseCase, *fakeUsuarioRepo, *fakePermisos) {
	repo := &fakeUsuarioRepo{}
	permisos := &fakePermisos{}
	uc := NewUsuarioUseCase(repo, permisos, "sheet-1",
		NewLogUseCase(&fakeLogRepo{}), events.New(), logger.Nop())
	return uc, repo, permisos
}

type fakeLogRepo struct {
	entries []*entity.LogEntry
}

func (f *fakeLogRepo) List(context.Context) ([]*entity.LogEntry, error) { return f.entries, nil }
func (f *fakeLogRepo) Append(_ context.Context, e *entity.LogEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestInvitar_AltaConPermiso(t *testing.T) {
	ctx := context.Background()
	uc, repo, permisos := newUsuarioFixture()

	out, err := uc.Invitar(ctx, "Ana", dto.InvitarUsuarioRequest{
		Nombre: " Beto ", Correo: " Beto@Example.com ", Rango: entity.RangoEditor,
	})
	require.NoError(t, err)
	assert.Equal(t, "Beto", out.Nombre)
	assert.Equal(t, "beto@example.com", out.Correo, "el correo se normaliza")
	assert.Equal(t, entity.RangoEditor, out.Rango)

	require.Len(t, repo.usuarios, 1)
	assert.Equal(t, "beto@example.com", repo.usuarios[0].IDUsuario)

	require.Len(t, permisos.calls, 1)
	assert.Equal(t, "beto@example.com|Editor|aviso", permisos.calls[0],
		"la invitación otorga el permiso de Drive con aviso por correo")
}

func TestInvitar_RangoVacioQuedaVisitante(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUsuarioFixture()

	out, err := uc.Invitar(ctx, "Ana", dto.InvitarUsuarioRequest{Nombre: "Beto", Correo: "beto@example.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.RangoVisitante, out.Rango)
}

func TestInvitar_Valida(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUsuarioFixture()

	_, err := uc.Invitar(ctx, "Ana", dto.InvitarUsuarioRequest{Nombre: "Beto", Correo: "no-es-un-correo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Invitar(ctx, "Ana", dto.InvitarUsuarioRequest{Nombre: "", Correo: "beto@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Invitar(ctx, "Ana", dto.InvitarUsuarioRequest{Nombre: "Beto", Correo: "beto@example.com", Rango: "SuperAdmin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvitar_CorreoDuplicado(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUsuarioFixture()

	_, err := uc.Invitar(ctx, "Ana", dto.InvitarUsuarioRequest{Nombre: "Beto", Correo: "beto@example.com"})
	require.NoError(t, err)

	_, err = uc.Invitar(ctx, "Ana", dto.InvitarUsuarioRequest{Nombre: "Otro", Correo: "BETO@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"el duplicado se detecta con el correo normalizado")
}

func TestCambiarRango(t *testing.T) {
	ctx := context.Background()
	uc, _, permisos := newUsuarioFixture()
	creado, err := uc.Invitar(ctx, "Ana", dto.InvitarUsuarioRequest{Nombre: "Beto", Correo: "beto@example.com"})
	require.NoError(t, err)

	out, err := uc.CambiarRango(ctx, "Ana", creado.RecID, dto.CambiarRangoRequest{Rango: entity.RangoAdministrador})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.RangoAdministrador, out.Rango)

	require.Len(t, permisos.calls, 2)
	assert.Equal(t, "beto@example.com|Administrador|silencioso", permisos.calls[1],
		"el cambio de rango reconcilia el permiso sin aviso")

	out, err = uc.CambiarRango(ctx, "Ana", "nope", dto.CambiarRangoRequest{Rango: entity.RangoEditor})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestSeedAdminFromAuth(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newUsuarioFixture()

	u, err := uc.SeedAdminFromAuth(ctx, "Ana", "ANA@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RangoAdministrador, u.Rango)
	assert.Equal(t, "ana@example.com", u.Correo)

	// Con la hoja ya poblada no siembra de nuevo.
	u, err = uc.SeedAdminFromAuth(ctx, "Otro", "otro@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Len(t, repo.usuarios, 1)
}

func TestDeleteUsuario(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newUsuarioFixture()
	creado, err := uc.Invitar(ctx, "Ana", dto.InvitarUsuarioRequest{Nombre: "Beto", Correo: "beto@example.com"})
	require.NoError(t, err)

	ok, err := uc.Delete(ctx, "Ana", creado.RecID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, repo.usuarios)

	ok, err = uc.Delete(ctx, "Ana", creado.RecID)
	require.NoError(t, err)
	assert.False(t, ok)
}
