package serverutils

import (
	"errors"

	"todonotediary-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

// ErrUnauthorized is returned by services when credentials do not check out.
var ErrUnauthorized = errors.New("invalid credentials")

// ErrorHandlerMiddleware converts errors bubbling out of controllers into
// JSON envelopes with the matching status code.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Message))
		case errors.Is(err, contract.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, "record not found"))
		case errors.Is(err, contract.ErrEmailTaken):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(fiber.StatusConflict, "email already registered"))
		case errors.Is(err, ErrUnauthorized):
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "invalid credentials"))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}
