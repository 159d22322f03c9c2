package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/pkg/logger"
)

// Códigos de error expuestos en el campo "error" del cuerpo.
const (
	CodeInvalidBody  = "INVALID_BODY"
	CodeValidation   = "VALIDATION"
	CodeMissingToken = "MISSING_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeRateLimited  = "RATE_LIMITED"
	CodeInternal     = "INTERNAL"
)

// errorMapper traduce errores de dominio a respuestas HTTP. Los errores no clasificados se
// registran completos y salen con un mensaje genérico.
type errorMapper struct {
	log *logger.Logger
}

func (m errorMapper) write(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	if status == fiber.StatusInternalServerError {
		m.log.Error().
			Err(err).
			Str("request_id", GetRequestID(c)).
			Str("path", c.Path()).
			Msg("error interno")
		return c.Status(status).JSON(dto.ErrorResponse{Message: "error interno del servidor", Error: code})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Message: err.Error(), Error: code})
}

// badBody responde 400 para un cuerpo que no se pudo decodificar.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido", Error: CodeInvalidBody})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, CodeValidation
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, CodeUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, CodeForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrConflict):
		// los conflictos de unicidad salen como 400 con el mensaje específico
		return fiber.StatusBadRequest, CodeConflict
	default:
		return fiber.StatusInternalServerError, CodeInternal
	}
}

// FiberErrorHandler cubre los errores que escapan de los handlers (rutas inexistentes,
// panics recuperados, cuerpos demasiado grandes).
func FiberErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := CodeInternal
			switch fe.Code {
			case fiber.StatusNotFound:
				code = CodeNotFound
			case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge:
				code = CodeInvalidBody
			case fiber.StatusMethodNotAllowed:
				code = CodeNotFound
			}
			if fe.Code >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("error fiber")
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Message: "error interno del servidor", Error: code})
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Message: fe.Message, Error: code})
		}
		return errorMapper{log: log}.write(c, err)
	}
}
