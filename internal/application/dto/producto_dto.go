package dto

import "github.com/tacticadev/gestor-api/internal/domain/entity"

// CreateProductoRequest alta de producto.
type CreateProductoRequest struct {
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
	RecIDImagen string `json:"recid_imagen"`
}

// UpdateProductoRequest edición parcial de producto.
type UpdateProductoRequest struct {
	Codigo      *string `json:"codigo"`
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	RecIDImagen *string `json:"recid_imagen"`
}

// ProductoResponse producto en respuestas.
type ProductoResponse struct {
	RecID       string `json:"recid"`
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	RecIDImagen string `json:"recid_imagen,omitempty"`
}

// ToProductoResponse mapea la entidad a la respuesta.
func ToProductoResponse(p *entity.Producto) *ProductoResponse {
	return &ProductoResponse{
		RecID:       p.RecID,
		Codigo:      p.Codigo,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		RecIDImagen: p.RecIDImagen,
	}
}
