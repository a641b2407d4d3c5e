package controller

import (
	"noteshare-be/internal/business"
	"noteshare-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// renderRuleErrors turns a failed business result into the HTTP response
// for its first (primary) rule error, carrying all violations in the body.
func renderRuleErrors[T any](ctx *fiber.Ctx, result *business.Result[T]) error {
	first := result.First()
	status := serverutils.StatusForError(first.Code)
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"code":    status,
		"message": first.Message,
		"errors":  result.Errors,
	})
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func currentUserIsAdmin(ctx *fiber.Ctx) bool {
	isAdmin, _ := ctx.Locals("is_admin").(bool)
	return isAdmin
}
