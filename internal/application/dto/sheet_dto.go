package dto

import "github.com/tacticadev/gestor-api/internal/domain/entity"

// CreateSheetRequest alta de una planilla del gestor.
type CreateSheetRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

// RenameSheetRequest renombre de una planilla registrada.
type RenameSheetRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

// SheetResponse planilla registrada en el índice.
type SheetResponse struct {
	RecID         string `json:"recid"`
	Nombre        string `json:"nombre"`
	SheetID       string `json:"sheet_id"`
	CorreoOrigen  string `json:"correo_origen"`
	EstadoUser    string `json:"estado_user"`
	FechaCreacion string `json:"fecha_creacion"`
}

// ToSheetResponse mapea la entidad a la respuesta.
func ToSheetResponse(s *entity.SheetInfo) *SheetResponse {
	return &SheetResponse{
		RecID:         s.RecID,
		Nombre:        s.Nombre,
		SheetID:       s.SheetID,
		CorreoOrigen:  s.CorreoOrigen,
		EstadoUser:    s.EstadoUser,
		FechaCreacion: s.FechaCreacion,
	}
}
