package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/application/usecase"
)

// DepositoHandler maneja las peticiones HTTP para Deposito (protegido).
type DepositoHandler struct {
	uc *usecase.DepositoUseCase
}

// NewDepositoHandler construye el handler.
func NewDepositoHandler(uc *usecase.DepositoUseCase) *DepositoHandler {
	return &DepositoHandler{uc: uc}
}

// List godoc
// @Summary      Listar depósitos
// @Tags         depositos
// @Security     Bearer
// @Produce      json
// @Param        buscar  query  string  false  "Filtro por nombre o dirección"
// @Success      200  {array}  dto.DepositoResponse
// @Router       /api/depositos [get]
func (h *DepositoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("buscar"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByRecID godoc
// @Summary      Obtener depósito por RecID
// @Tags         depositos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "RecID del depósito"
// @Success      200  {object}  dto.DepositoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/depositos/{id} [get]
func (h *DepositoHandler) GetByRecID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByRecID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "depósito no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear depósito
// @Tags         depositos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepositoRequest  true  "Datos del depósito"
// @Success      201   {object}  dto.DepositoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/depositos [post]
func (h *DepositoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepositoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.Create(c.Context(), GetNombre(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar depósito
// @Tags         depositos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "RecID del depósito"
// @Param        body  body  dto.UpdateDepositoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DepositoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/depositos/{id} [put]
func (h *DepositoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateDepositoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetNombre(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "depósito no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar depósito
// @Tags         depositos
// @Security     Bearer
// @Param        id   path  string  true  "RecID del depósito"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/depositos/{id} [delete]
func (h *DepositoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	ok, err := h.uc.Delete(c.Context(), GetNombre(c), id)
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "depósito no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
