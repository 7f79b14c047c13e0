package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
	"github.com/tacticadev/gestor-api/internal/domain/repository"
)

const fechaLogLayout = "2006-01-02 15:04:05"

// LogUseCase bitácora de acciones del gestor (hoja 'logs', solo append).
type LogUseCase struct {
	repo repository.LogRepository
	now  func() time.Time
}

// NewLogUseCase construye el caso de uso.
func NewLogUseCase(repo repository.LogRepository) *LogUseCase {
	return &LogUseCase{repo: repo, now: time.Now}
}

// List devuelve la bitácora completa en orden cronológico.
func (uc *LogUseCase) List(ctx context.Context) ([]*dto.LogResponse, error) {
	entries, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ToLogResponse(e))
	}
	return out, nil
}

// Registrar agrega una entrada con fecha actual. El actor es el nombre
// visible del usuario, no su RecID (convención heredada de la hoja).
func (uc *LogUseCase) Registrar(ctx context.Context, actor, accion string) error {
	if accion == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Append(ctx, &entity.LogEntry{
		Fecha:     uc.now().Format(fechaLogLayout),
		IDUsuario: actor,
		Accion:    accion,
	})
}

// Textos canónicos de la bitácora. Mismos formatos que generaba la UI.

// FmtStockCarga texto de carga de stock.
func FmtStockCarga(producto, deposito string, cantidad int) string {
	return fmt.Sprintf("Carga de %d unidades de '%s' en '%s'", cantidad, producto, deposito)
}

// FmtStockDescarga texto de descarga de stock.
func FmtStockDescarga(producto, deposito string, cantidad int) string {
	return fmt.Sprintf("Descarga de %d unidades de '%s' de '%s'", cantidad, producto, deposito)
}

// FmtStockMovimiento texto de movimiento entre depósitos.
func FmtStockMovimiento(producto, origen, destino string, cantidad int) string {
	return fmt.Sprintf("Movimiento de %d unidades de '%s' de '%s' a '%s'", cantidad, producto, origen, destino)
}

// FmtUsuarioInvitado texto de invitación de usuario.
func FmtUsuarioInvitado(correo, rango string) string {
	return fmt.Sprintf("Usuario '%s' invitado con rango %s", correo, rango)
}

// FmtUsuarioRango texto de cambio de rango.
func FmtUsuarioRango(correo, rango string) string {
	return fmt.Sprintf("Usuario '%s' ahora tiene rango %s", correo, rango)
}

// FmtDepositoAlta texto de alta de depósito.
func FmtDepositoAlta(nombre string) string {
	return fmt.Sprintf("Depósito '%s' creado", nombre)
}

// FmtDepositoEdicion texto de edición de depósito.
func FmtDepositoEdicion(nombre string) string {
	return fmt.Sprintf("Depósito '%s' editado", nombre)
}

// FmtDepositoBaja texto de baja de depósito.
func FmtDepositoBaja(nombre string) string {
	return fmt.Sprintf("Depósito '%s' eliminado", nombre)
}
