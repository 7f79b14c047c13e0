package dto

// LoginURLResponse URL de autorización de Google.
type LoginURLResponse struct {
	URL string `json:"url"`
}

// TokenResponse token de sesión emitido tras el callback.
type TokenResponse struct {
	Token   string           `json:"token"`
	Usuario *UsuarioResponse `json:"usuario"`
}

// MeResponse identidad del token en curso.
type MeResponse struct {
	UserID string `json:"user_id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
	Rango  string `json:"rango"`
}
