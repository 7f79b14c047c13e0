package dto

import "github.com/tacticadev/gestor-api/internal/domain/entity"

// InvitarUsuarioRequest alta (invitación) de usuario.
type InvitarUsuarioRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Correo string `json:"correo" validate:"required,email"`
	Rango  string `json:"rango"`
}

// CambiarRangoRequest cambio de rango de un usuario.
type CambiarRangoRequest struct {
	Rango string `json:"rango" validate:"required"`
}

// UsuarioResponse usuario en respuestas.
type UsuarioResponse struct {
	RecID     string `json:"recid"`
	IDUsuario string `json:"id_usuario"`
	Nombre    string `json:"nombre"`
	Correo    string `json:"correo"`
	Rango     string `json:"rango"`
}

// ToUsuarioResponse mapea la entidad a la respuesta.
func ToUsuarioResponse(u *entity.Usuario) *UsuarioResponse {
	return &UsuarioResponse{
		RecID:     u.RecID,
		IDUsuario: u.IDUsuario,
		Nombre:    u.Nombre,
		Correo:    u.Correo,
		Rango:     u.Rango,
	}
}
