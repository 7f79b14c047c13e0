package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/application/usecase"
)

// SheetHandler maneja la administración de planillas del gestor (protegido).
type SheetHandler struct {
	uc *usecase.SheetUseCase
}

// NewSheetHandler construye el handler.
func NewSheetHandler(uc *usecase.SheetUseCase) *SheetHandler {
	return &SheetHandler{uc: uc}
}

// List godoc
// @Summary      Listar planillas registradas
// @Tags         sheets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SheetResponse
// @Router       /api/sheets [get]
func (h *SheetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear una planilla del gestor
// @Description  Crea el spreadsheet en Drive con el esquema completo y lo registra en el índice.
// @Tags         sheets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSheetRequest  true  "Nombre de la planilla"
// @Success      201   {object}  dto.SheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sheets [post]
func (h *SheetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSheetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in.Nombre, GetNombre(c), GetCorreo(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename godoc
// @Summary      Renombrar una planilla
// @Tags         sheets
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del spreadsheet"
// @Param        body  body  dto.RenameSheetRequest  true  "Nuevo nombre"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sheets/{id} [put]
func (h *SheetHandler) Rename(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.RenameSheetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ok, err := h.uc.Renombrar(c.Context(), id, in.Nombre)
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "planilla no registrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar una planilla
// @Description  Manda el spreadsheet a la papelera y limpia su fila del índice.
// @Tags         sheets
// @Security     Bearer
// @Param        id   path  string  true  "ID del spreadsheet"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sheets/{id} [delete]
func (h *SheetHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	ok, err := h.uc.Eliminar(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "planilla no registrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
