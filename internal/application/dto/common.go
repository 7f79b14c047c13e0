package dto

// ListQuery filtro opcional para listados.
type ListQuery struct {
	Buscar string `query:"buscar"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
