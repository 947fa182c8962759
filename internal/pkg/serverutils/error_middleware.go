package serverutils

import (
	"errors"

	"jarvis-assistant-be/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps pipeline errors to HTTP statuses: caller faults
// to 400, unreachable backends to 503, rejected generations to 502, timeouts
// to 504. Anything unclassified is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, apperrors.ErrValidation),
			errors.Is(err, apperrors.ErrDimensionMismatch):
			status = fiber.StatusBadRequest
		case errors.Is(err, apperrors.ErrIndexUnavailable),
			errors.Is(err, apperrors.ErrEmbedderUnavailable),
			errors.Is(err, apperrors.ErrGeneratorUnavailable):
			status = fiber.StatusServiceUnavailable
		case errors.Is(err, apperrors.ErrGenerationBackend):
			status = fiber.StatusBadGateway
		case errors.Is(err, apperrors.ErrGenerationTimeout):
			status = fiber.StatusGatewayTimeout
		}

		var fiberErr *fiber.Error
		if status == fiber.StatusInternalServerError && errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}

		return ctx.Status(status).JSON(fiber.Map{"message": err.Error()})
	}
}
