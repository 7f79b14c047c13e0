package dto

import "github.com/tacticadev/gestor-api/internal/domain/entity"

// CreateDepositoRequest alta de depósito.
type CreateDepositoRequest struct {
	IDDeposito  string `json:"id_deposito"`
	Nombre      string `json:"nombre" validate:"required"`
	Direccion   string `json:"direccion"`
	Descripcion string `json:"descripcion"`
	RecIDImagen string `json:"recid_imagen"`
}

// UpdateDepositoRequest edición parcial de depósito.
type UpdateDepositoRequest struct {
	IDDeposito  *string `json:"id_deposito"`
	Nombre      *string `json:"nombre"`
	Direccion   *string `json:"direccion"`
	Descripcion *string `json:"descripcion"`
	RecIDImagen *string `json:"recid_imagen"`
}

// DepositoResponse depósito en respuestas.
type DepositoResponse struct {
	RecID       string `json:"recid"`
	IDDeposito  string `json:"id_deposito"`
	Nombre      string `json:"nombre"`
	Direccion   string `json:"direccion"`
	Descripcion string `json:"descripcion"`
	RecIDImagen string `json:"recid_imagen,omitempty"`
}

// ToDepositoResponse mapea la entidad a la respuesta.
func ToDepositoResponse(d *entity.Deposito) *DepositoResponse {
	return &DepositoResponse{
		RecID:       d.RecID,
		IDDeposito:  d.IDDeposito,
		Nombre:      d.Nombre,
		Direccion:   d.Direccion,
		Descripcion: d.Descripcion,
		RecIDImagen: d.RecIDImagen,
	}
}
