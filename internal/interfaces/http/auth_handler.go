package http

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gofiber/fiber/v2"

	"github.com/tacticadev/gestor-api/internal/application/auth"
	"github.com/tacticadev/gestor-api/internal/application/dto"
)

// AuthHandler maneja el login con Google y la identidad del token.
type AuthHandler struct {
	svc *auth.Service
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary      URL de autorización de Google
// @Description  Devuelve la URL a la que el cliente debe redirigir para autorizar.
// @Tags         auth
// @Produce      json
// @Param        state  query  string  false  "State opaco del cliente; se genera uno si falta"
// @Success      200  {object}  dto.LoginURLResponse
// @Router       /api/auth/login [get]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" {
		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		state = hex.EncodeToString(buf)
	}
	return c.JSON(dto.LoginURLResponse{URL: h.svc.LoginURL(state)})
}

// Callback godoc
// @Summary      Canjear el código de autorización
// @Description  Canjea el código de Google y devuelve el token de sesión de la API.
// @Tags         auth
// @Produce      json
// @Param        code  query  string  true  "Código de autorización"
// @Success      200  {object}  dto.TokenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/auth/callback [get]
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "code es requerido"})
	}
	out, err := h.svc.Callback(c.Context(), code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Identidad del token en curso
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.MeResponse{
		UserID: GetUserID(c),
		Nombre: GetNombre(c),
		Correo: GetCorreo(c),
		Rango:  GetRango(c),
	})
}
