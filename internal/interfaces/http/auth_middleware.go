package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/porcigest/porcigest-api/internal/application/dto"
	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// LocalUsuario key del usuario autenticado en c.Locals.
const LocalUsuario = "usuario"

// UsuarioResolver resuelve un token bearer al usuario que representa.
// Debe devolver error si el token es inválido o el usuario no existe o está
// inactivo.
type UsuarioResolver interface {
	Authenticate(ctx context.Context, tokenString string) (*entity.Usuario, error)
}

// AuthMiddleware valida el Bearer Token, carga el usuario y lo deja en
// c.Locals para los handlers protegidos.
func AuthMiddleware(resolver UsuarioResolver) fiber.Handler {
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
		usuario, err := resolver.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsuario, usuario)
		return c.Next()
	}
}

// GetCurrentUser devuelve el usuario autenticado (después del middleware de auth).
func GetCurrentUser(c *fiber.Ctx) *entity.Usuario {
	v := c.Locals(LocalUsuario)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.Usuario)
	return u
}
