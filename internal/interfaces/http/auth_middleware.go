package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/pkg/jwt"
)

// Chaves de Locals preenchidas pelo middleware de autenticação.
const (
	LocalUsuarioID = "usuario_id"
	LocalPapel     = "papel"
)

// AuthMiddleware valida o Bearer Token JWT e grava usuário e papel em
// c.Locals. Só é registrado quando JWT_SECRET está configurado.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: domain.ErrUnauthorized.Error()})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "formato esperado: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: domain.ErrUnauthorized.Error()})
		}
		usuarioID, papel, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido ou expirado"})
		}
		c.Locals(LocalUsuarioID, usuarioID)
		c.Locals(LocalPapel, papel)
		return c.Next()
	}
}

// GetUsuarioID devolve o ID do usuário autenticado (após o middleware).
func GetUsuarioID(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuarioID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPapel devolve o papel do usuário autenticado (após o middleware).
func GetPapel(c *fiber.Ctx) string {
	v := c.Locals(LocalPapel)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
