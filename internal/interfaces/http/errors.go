package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-api/internal/application/dto"
	"github.com/jhoicas/sales-api/internal/domain"
)

// localErrorCause guarda la causa de un 500 para que el log de peticiones la registre.
const localErrorCause = "error_cause"

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// El orden importa: se usa la primera coincidencia con errors.Is.
var errorMappings = []errorMapping{
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "credenciales inválidas"},
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, "USER_NOT_FOUND", "el usuario del token ya no existe"},
	{domain.ErrUnauthenticated, fiber.StatusUnauthorized, "UNAUTHENTICATED", "token ausente, inválido o expirado"},
	{domain.ErrUserInactive, fiber.StatusForbidden, "USER_INACTIVE", "cuenta inactiva"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "el recurso pertenece a otro usuario"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"},
	{domain.ErrDuplicateCode, fiber.StatusConflict, "DUPLICATE_CODE", "ya existe un producto con ese código"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS", "el email ya está registrado"},
}

// respondError traduce un error de dominio al status y cuerpo HTTP.
// Los errores no reconocidos son 500 con mensaje genérico; la causa no se expone.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "entrada inválida",
			Fields:  verr.Fields,
		})
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.message})
		}
	}
	c.Locals(localErrorCause, err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// ErrorHandler manejador de errores de Fiber: rutas inexistentes, panics recuperados y errores devueltos por handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "ROUTE_NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return respondError(c, err)
}
