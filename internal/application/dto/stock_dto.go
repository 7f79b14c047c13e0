package dto

import "github.com/tacticadev/gestor-api/internal/domain/entity"

// CreateStockRequest alta de una fila de stock.
type CreateStockRequest struct {
	IDProducto string `json:"id_producto" validate:"required"`
	IDDeposito string `json:"id_deposito" validate:"required"`
	Cantidad   int    `json:"cantidad" validate:"min=1"`
}

// CantidadRequest carga o descarga sobre una fila existente.
type CantidadRequest struct {
	Cantidad int `json:"cantidad" validate:"min=1"`
}

// MoverStockRequest movimiento entre depósitos.
type MoverStockRequest struct {
	IDDepositoDestino string `json:"id_deposito_destino" validate:"required"`
	Cantidad          int    `json:"cantidad" validate:"min=1"`
}

// StockResponse fila de stock en respuestas.
type StockResponse struct {
	RecID      string `json:"recid"`
	IDProducto string `json:"id_producto"`
	IDDeposito string `json:"id_deposito"`
	Cantidad   int    `json:"cantidad"`
}

// TotalResponse total agregado por producto o por depósito.
type TotalResponse struct {
	ID    string `json:"id"`
	Total int    `json:"total"`
}

// ToStockResponse mapea la entidad a la respuesta.
func ToStockResponse(s *entity.Stock) *StockResponse {
	return &StockResponse{
		RecID:      s.RecID,
		IDProducto: s.IDProducto,
		IDDeposito: s.IDDeposito,
		Cantidad:   s.Cantidad,
	}
}
