package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
	"github.com/tacticadev/gestor-api/pkg/jwt"
)

// Locals keys que deja el middleware de auth.
const (
	LocalUserID = "user_id"
	LocalCorreo = "correo"
	LocalNombre = "nombre"
	LocalRango  = "rango"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalCorreo, claims.Email)
		c.Locals(LocalNombre, claims.Nombre)
		c.Locals(LocalRango, claims.Rango)
		return c.Next()
	}
}

// RequireRango exige que el rango del token esté entre los permitidos.
// Se usa para limitar mutaciones a Administrador/Editor.
func RequireRango(rangos ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rango := GetRango(c)
		for _, r := range rangos {
			if rango == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rango insuficiente"})
	}
}

// RequireEditor atajo para rutas de mutación (Administrador o Editor).
func RequireEditor() fiber.Handler {
	return RequireRango(entity.RangoAdministrador, entity.RangoEditor)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetCorreo devuelve el correo del contexto.
func GetCorreo(c *fiber.Ctx) string { return localString(c, LocalCorreo) }

// GetNombre devuelve el nombre visible del contexto.
func GetNombre(c *fiber.Ctx) string { return localString(c, LocalNombre) }

// GetRango devuelve el rango del contexto.
func GetRango(c *fiber.Ctx) string { return localString(c, LocalRango) }
