package dto

// ImagenResponse imagen registrada en respuestas.
type ImagenResponse struct {
	RecID string `json:"recid"`
	Link  string `json:"link"`
}
