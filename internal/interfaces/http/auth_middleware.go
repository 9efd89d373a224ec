package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nexus-estoque/api/internal/application/dto"
	"github.com/nexus-estoque/api/internal/domain/entity"
	"github.com/nexus-estoque/api/pkg/jwt"
)

// Locals keys para identidade no Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalPapel    = "papel"
)

// AuthMiddleware valida o Bearer Token JWT e coloca UserID, Username e Papel em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalPapel, claims.Papel)
		return c.Next()
	}
}

// RequireNivel devolve um middleware que exige papel com nível maior ou igual ao mínimo
// (hierarquia: admin > gerente > usuario; papel desconhecido fica abaixo de todos).
// Deve ser usado DEPOIS de AuthMiddleware.
func RequireNivel(papelMinimo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		papel := GetPapel(c)
		if papel == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sem papel"})
		}
		if !entity.PapelAtende(papel, papelMinimo) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "você não tem permissão para realizar esta ação"})
		}
		return c.Next()
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUsername devolve o Username do contexto.
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetPapel devolve o Papel do contexto.
func GetPapel(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalPapel).(string)
	return s
}
