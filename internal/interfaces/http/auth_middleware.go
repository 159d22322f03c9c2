package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/domain/access"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y carga UserID y Role en c.Locals.
// Sin header responde 403; token mal formado, inválido o expirado responde 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "no se proporcionó token", Error: CodeMissingToken})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "formato: Bearer <token>", Error: CodeInvalidToken})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "token vacío", Error: CodeInvalidToken})
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "token inválido o expirado", Error: CodeInvalidToken})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireOperation corta con 403 si el rol del token no puede invocar op. Debe ir después de
// AuthMiddleware. El caso de uso vuelve a verificar; esto solo evita trabajo inútil.
func RequireOperation(op access.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := GetActor(c).Authorize(op); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: err.Error(), Error: CodeForbidden})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del token tal como viene en el claim.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetActor arma la identidad explícita que reciben los casos de uso.
func GetActor(c *fiber.Ctx) access.Actor {
	return access.Actor{UserID: GetUserID(c), Role: entity.Role(GetRole(c))}
}
