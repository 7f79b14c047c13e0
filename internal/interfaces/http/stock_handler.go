package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP del libro de stock (protegido).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar filas de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByRecID godoc
// @Summary      Obtener fila de stock por RecID
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "RecID de la fila"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) GetByRecID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByRecID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fila de stock no encontrada"})
	}
	return c.JSON(out)
}

// TotalesPorProducto godoc
// @Summary      Totales de existencia por producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TotalResponse
// @Router       /api/stock/totales/producto [get]
func (h *StockHandler) TotalesPorProducto(c *fiber.Ctx) error {
	out, err := h.uc.TotalesPorProducto(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TotalesPorDeposito godoc
// @Summary      Totales de existencia por depósito
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TotalResponse
// @Router       /api/stock/totales/deposito [get]
func (h *StockHandler) TotalesPorDeposito(c *fiber.Ctx) error {
	out, err := h.uc.TotalesPorDeposito(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear fila de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequest  true  "Producto, depósito y cantidad inicial"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), GetNombre(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Cargar godoc
// @Summary      Cargar unidades en una fila de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "RecID de la fila"
// @Param        body  body  dto.CantidadRequest  true  "Cantidad a cargar"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/cargar [post]
func (h *StockHandler) Cargar(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CantidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Cargar(c.Context(), GetNombre(c), id, in.Cantidad)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Descargar godoc
// @Summary      Descargar unidades de una fila de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "RecID de la fila"
// @Param        body  body  dto.CantidadRequest  true  "Cantidad a descargar"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/descargar [post]
func (h *StockHandler) Descargar(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CantidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Descargar(c.Context(), GetNombre(c), id, in.Cantidad)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Mover godoc
// @Summary      Mover unidades a otro depósito
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "RecID de la fila origen"
// @Param        body  body  dto.MoverStockRequest  true  "Depósito destino y cantidad"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/mover [post]
func (h *StockHandler) Mover(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.MoverStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Mover(c.Context(), GetNombre(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar fila de stock
// @Tags         stock
// @Security     Bearer
// @Param        id   path  string  true  "RecID de la fila"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	ok, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fila de stock no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
