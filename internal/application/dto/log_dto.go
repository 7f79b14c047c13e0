package dto

import "github.com/tacticadev/gestor-api/internal/domain/entity"

// AppendLogRequest entrada manual de bitácora.
type AppendLogRequest struct {
	Accion string `json:"accion" validate:"required"`
}

// LogResponse entrada de bitácora en respuestas.
type LogResponse struct {
	Fecha     string `json:"fecha"`
	IDUsuario string `json:"id_usuario"`
	Accion    string `json:"accion"`
}

// ToLogResponse mapea la entidad a la respuesta.
func ToLogResponse(e *entity.LogEntry) *LogResponse {
	return &LogResponse{Fecha: e.Fecha, IDUsuario: e.IDUsuario, Accion: e.Accion}
}
