package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/application/usecase"
)

// ImagenHandler maneja las peticiones HTTP para imágenes (protegido).
type ImagenHandler struct {
	uc *usecase.ImagenUseCase
}

// NewImagenHandler construye el handler.
func NewImagenHandler(uc *usecase.ImagenUseCase) *ImagenHandler {
	return &ImagenHandler{uc: uc}
}

// List godoc
// @Summary      Listar imágenes registradas
// @Tags         imagenes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ImagenResponse
// @Router       /api/imagenes [get]
func (h *ImagenHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Subir godoc
// @Summary      Subir imagen
// @Description  Sube el archivo a Drive y devuelve el RecID para enlazar desde producto o depósito.
// @Tags         imagenes
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        imagen  formData  file  true  "Archivo de imagen"
// @Success      201  {object}  dto.ImagenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/imagenes [post]
func (h *ImagenHandler) Subir(c *fiber.Ctx) error {
	fh, err := c.FormFile("imagen")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo 'imagen' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	out, err := h.uc.Subir(c.Context(), fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Link godoc
// @Summary      Obtener el enlace de vista de una imagen
// @Tags         imagenes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "RecID de la imagen"
// @Success      200  {object}  dto.ImagenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/imagenes/{id} [get]
func (h *ImagenHandler) Link(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Link(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Contenido godoc
// @Summary      Servir el contenido de una imagen
// @Description  Sirve los bytes vía caché (memoria, disco, Drive).
// @Tags         imagenes
// @Security     Bearer
// @Produce      image/jpeg
// @Param        id   path  string  true  "RecID de la imagen"
// @Success      200  "Bytes de la imagen"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/imagenes/{id}/contenido [get]
func (h *ImagenHandler) Contenido(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	data, mime, err := h.uc.Contenido(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, mime)
	return c.Send(data)
}

// Eliminar godoc
// @Summary      Eliminar imagen
// @Tags         imagenes
// @Security     Bearer
// @Param        id   path  string  true  "RecID de la imagen"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/imagenes/{id} [delete]
func (h *ImagenHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	ok, err := h.uc.Eliminar(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "imagen no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
