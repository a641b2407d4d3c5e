package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"noteshare-be/internal/business"
	"noteshare-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware is the last line of defense: anything a handler
// returns as a plain error becomes a JSON 500 instead of fiber's text body.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		if fiberErr, ok := err.(*fiber.Error); ok {
			code = fiberErr.Code
		}

		log.Error("HTTP", "unhandled handler error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})

		return ctx.Status(code).JSON(ErrorResponse(code, "Internal server error"))
	}
}

// StatusForError maps a business rule code to the HTTP status the
// client should see.
func StatusForError(code business.ErrorCode) int {
	switch code {
	case business.ErrInvalidCredentials, business.ErrUserIsNotActive:
		return fiber.StatusUnauthorized
	case business.ErrForbidden:
		return fiber.StatusForbidden
	case business.ErrUserNotFound, business.ErrNoteNotFound, business.ErrCategoryNotFound, business.ErrCommentNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}
