package usecase

import (
	"context"
	"net/mail"
	"strings"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
	"github.com/tacticadev/gestor-api/internal/domain/repository"
	"github.com/tacticadev/gestor-api/internal/events"
	"github.com/tacticadev/gestor-api/pkg/logger"
	"github.com/tacticadev/gestor-api/pkg/recid"
)

// PermisosDrive reconcilia el permiso de Drive de un correo con su rango.
// Lo implementa drive.Manager; los tests inyectan uno en memoria.
type PermisosDrive interface {
	UpsertUserPermission(ctx context.Context, fileID, email, rango string, notify bool) error
}

// UsuarioUseCase casos de uso de usuarios del gestor. Cada alta o cambio de
// rango sincroniza el permiso del usuario sobre la planilla en Drive.
type UsuarioUseCase struct {
	repo          repository.UsuarioRepository
	permisos      PermisosDrive
	spreadsheetID string
	logs          *LogUseCase
	bus           *events.Bus
	log           *logger.Logger
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository, permisos PermisosDrive, spreadsheetID string, logs *LogUseCase, bus *events.Bus, log *logger.Logger) *UsuarioUseCase {
	return &UsuarioUseCase{
		repo:          repo,
		permisos:      permisos,
		spreadsheetID: spreadsheetID,
		logs:          logs,
		bus:           bus,
		log:           log,
	}
}

func (uc *UsuarioUseCase) registrar(ctx context.Context, actor, accion string) {
	if err := uc.logs.Registrar(ctx, actor, accion); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo registrar en la bitácora")
	}
}

func validarRango(rango string) (string, error) {
	switch rango {
	case entity.RangoAdministrador, entity.RangoEditor, entity.RangoVisitante:
		return rango, nil
	case "":
		return entity.RangoVisitante, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// List devuelve todos los usuarios.
func (uc *UsuarioUseCase) List(ctx context.Context) ([]*dto.UsuarioResponse, error) {
	usuarios, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, dto.ToUsuarioResponse(u))
	}
	return out, nil
}

// GetByRecID devuelve (nil, nil) cuando el usuario no existe.
func (uc *UsuarioUseCase) GetByRecID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByRecID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return dto.ToUsuarioResponse(u), nil
}

// Invitar da de alta un usuario y le otorga el permiso de Drive que
// corresponde a su rango, con aviso por correo. Rechaza correos inválidos o
// ya registrados.
func (uc *UsuarioUseCase) Invitar(ctx context.Context, actor string, in dto.InvitarUsuarioRequest) (*dto.UsuarioResponse, error) {
	correo := strings.ToLower(strings.TrimSpace(in.Correo))
	if _, err := mail.ParseAddress(correo); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	rango, err := validarRango(in.Rango)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCorreo(ctx, correo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	u := &entity.Usuario{
		RecID:     recid.New(),
		IDUsuario: correo,
		Nombre:    strings.TrimSpace(in.Nombre),
		Correo:    correo,
		Rango:     rango,
	}
	if err := uc.repo.Add(ctx, u); err != nil {
		return nil, err
	}
	if err := uc.permisos.UpsertUserPermission(ctx, uc.spreadsheetID, correo, rango, true); err != nil {
		uc.log.Warn().Err(err).Str("correo", correo).Msg("no se pudo sincronizar el permiso de Drive")
	}
	uc.registrar(ctx, actor, FmtUsuarioInvitado(correo, rango))
	uc.bus.Publish(events.TopicUsuarioRefresh, u.RecID)
	return dto.ToUsuarioResponse(u), nil
}

// CambiarRango actualiza el rango y reconcilia el permiso de Drive.
// Devuelve (nil, nil) si el usuario no existe.
func (uc *UsuarioUseCase) CambiarRango(ctx context.Context, actor, id string, in dto.CambiarRangoRequest) (*dto.UsuarioResponse, error) {
	rango, err := validarRango(in.Rango)
	if err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByRecID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	u.Rango = rango
	ok, err := uc.repo.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	if err := uc.permisos.UpsertUserPermission(ctx, uc.spreadsheetID, u.Correo, rango, false); err != nil {
		uc.log.Warn().Err(err).Str("correo", u.Correo).Msg("no se pudo sincronizar el permiso de Drive")
	}
	uc.registrar(ctx, actor, FmtUsuarioRango(u.Correo, rango))
	uc.bus.Publish(events.TopicUsuarioRefresh, u.RecID)
	return dto.ToUsuarioResponse(u), nil
}

// Delete borra el usuario de la hoja. El permiso de Drive no se revoca acá:
// revocar accesos es una operación manual del dueño de la planilla.
func (uc *UsuarioUseCase) Delete(ctx context.Context, actor, id string) (bool, error) {
	u, err := uc.repo.GetByRecID(ctx, id)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	ok, err := uc.repo.DeleteByRecID(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		uc.registrar(ctx, actor, "Usuario '"+u.Correo+"' eliminado")
		uc.bus.Publish(events.TopicUsuarioRefresh, id)
	}
	return ok, nil
}

// SeedAdminFromAuth registra al dueño del token como Administrador cuando la
// hoja de usuarios todavía no tiene filas. Idempotente para hojas pobladas.
func (uc *UsuarioUseCase) SeedAdminFromAuth(ctx context.Context, nombre, correo string) (*entity.Usuario, error) {
	correo = strings.ToLower(strings.TrimSpace(correo))
	if correo == "" {
		return nil, domain.ErrInvalidInput
	}
	usuarios, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(usuarios) > 0 {
		return nil, nil
	}
	u := &entity.Usuario{
		RecID:     recid.New(),
		IDUsuario: correo,
		Nombre:    strings.TrimSpace(nombre),
		Correo:    correo,
		Rango:     entity.RangoAdministrador,
	}
	if err := uc.repo.Add(ctx, u); err != nil {
		return nil, err
	}
	uc.bus.Publish(events.TopicUsuarioRefresh, u.RecID)
	return u, nil
}
