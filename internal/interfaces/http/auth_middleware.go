package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-api/internal/application/dto"
	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/domain/entity"
	"github.com/jhoicas/sales-api/pkg/jwt"
)

// LocalCurrentUser clave en c.Locals del usuario autenticado (solo vive durante la petición).
const LocalCurrentUser = "current_user"

// CurrentUserResolver verifica el token y carga el usuario.
type CurrentUserResolver interface {
	ResolveCurrentUser(ctx context.Context, token string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token, resuelve el usuario y lo deja en c.Locals.
func AuthMiddleware(resolver CurrentUserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
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
		user, err := resolver.ResolveCurrentUser(c.UserContext(), tokenString)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrExpired):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_EXPIRED", Message: "token expirado"})
			case errors.Is(err, domain.ErrUnauthenticated):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
			}
			return respondError(c, err)
		}
		c.Locals(LocalCurrentUser, user)
		return c.Next()
	}
}

// CurrentUser devuelve el usuario autenticado (después del middleware de auth), o nil.
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalCurrentUser).(*entity.User)
	return u
}
