package drive

import (
	"context"
	"fmt"
	"strings"

	driveapi "google.golang.org/api/drive/v3"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

// RoleToDrive traduce el rango del gestor al rol de Drive. Rangos desconocidos
// quedan como lectores.
func RoleToDrive(rango string) string {
	switch rango {
	case entity.RangoAdministrador, entity.RangoEditor:
		return "writer"
	default:
		return "reader"
	}
}

// permissionsAPI es el puerto mínimo sobre permisos de Drive que usa el Manager.
// La implementación real llama a Google; los tests usan una en memoria.
type permissionsAPI interface {
	List(ctx context.Context, fileID string) ([]*driveapi.Permission, error)
	Update(ctx context.Context, fileID, permID, role string) error
	Create(ctx context.Context, fileID, email, role string, notify bool) error
}

type googlePermissions struct {
	svc *driveapi.Service
}

func (g *googlePermissions) List(ctx context.Context, fileID string) ([]*driveapi.Permission, error) {
	res, err := g.svc.Permissions.List(fileID).
		Fields("permissions(id, type, role, emailAddress)").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("listar permisos de %s: %w", fileID, err)
	}
	return res.Permissions, nil
}

func (g *googlePermissions) Update(ctx context.Context, fileID, permID, role string) error {
	_, err := g.svc.Permissions.Update(fileID, permID, &driveapi.Permission{Role: role}).
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("actualizar permiso %s de %s: %w", permID, fileID, err)
	}
	return nil
}

func (g *googlePermissions) Create(ctx context.Context, fileID, email, role string, notify bool) error {
	perm := &driveapi.Permission{
		Type:         "user",
		Role:         role,
		EmailAddress: email,
	}
	_, err := g.svc.Permissions.Create(fileID, perm).
		SendNotificationEmail(notify).
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("crear permiso para %s en %s: %w", email, fileID, err)
	}
	return nil
}

// Manager reconcilia los permisos de Drive de un archivo con los rangos del
// gestor: por cada usuario, el rol de Drive debe reflejar su rango.
type Manager struct {
	api permissionsAPI
}

// NewManager construye el manager de permisos.
func NewManager(svc *driveapi.Service) *Manager {
	return &Manager{api: &googlePermissions{svc: svc}}
}

// newManagerWithAPI permite inyectar una implementación alternativa en tests.
func newManagerWithAPI(api permissionsAPI) *Manager {
	return &Manager{api: api}
}

// UpsertUserPermission deja al correo con el rol que corresponde a su rango:
// si ya tiene un permiso con otro rol lo actualiza, si no tiene permiso lo
// crea (con aviso por correo cuando notify es true). Idempotente.
func (m *Manager) UpsertUserPermission(ctx context.Context, fileID, email, rango string, notify bool) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("correo vacío para permiso en %s", fileID)
	}
	role := RoleToDrive(rango)

	perms, err := m.api.List(ctx, fileID)
	if err != nil {
		return err
	}
	for _, p := range perms {
		if p.Type != "user" {
			continue
		}
		if strings.ToLower(strings.TrimSpace(p.EmailAddress)) != email {
			continue
		}
		if p.Role == role || p.Role == "owner" {
			return nil
		}
		return m.api.Update(ctx, fileID, p.Id, role)
	}
	return m.api.Create(ctx, fileID, email, role, notify)
}

// SyncUsuarios aplica UpsertUserPermission para cada usuario de la lista.
// Falla al primer error.
func (m *Manager) SyncUsuarios(ctx context.Context, fileID string, usuarios []*entity.Usuario) error {
	for _, u := range usuarios {
		if err := m.UpsertUserPermission(ctx, fileID, u.Correo, u.Rango, false); err != nil {
			return err
		}
	}
	return nil
}
