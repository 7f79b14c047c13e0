package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/application/usecase"
)

// LogHandler maneja las peticiones HTTP de la bitácora (protegido).
type LogHandler struct {
	uc *usecase.LogUseCase
}

// NewLogHandler construye el handler.
func NewLogHandler(uc *usecase.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// List godoc
// @Summary      Listar la bitácora
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LogResponse
// @Router       /api/logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Append godoc
// @Summary      Agregar una entrada manual a la bitácora
// @Tags         logs
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.AppendLogRequest  true  "Texto de la acción"
// @Success      201  "Creado"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/logs [post]
func (h *LogHandler) Append(c *fiber.Ctx) error {
	var in dto.AppendLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Registrar(c.Context(), GetNombre(c), in.Accion); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}
