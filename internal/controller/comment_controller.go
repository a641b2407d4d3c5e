package controller

import (
	"noteshare-be/internal/dto"
	"noteshare-be/internal/pkg/serverutils"
	"noteshare-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICommentController interface {
	RegisterRoutes(r fiber.Router)
	ListByNote(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type commentController struct {
	service service.ICommentService
}

func NewCommentController(service service.ICommentService) ICommentController {
	return &commentController{service: service}
}

func (c *commentController) RegisterRoutes(r fiber.Router) {
	// Reading and writing comments lives under the note resource.
	r.Get("/note/v1/:id/comments", c.ListByNote)
	r.Post("/note/v1/:id/comments", serverutils.JwtMiddleware, c.Create)

	h := r.Group("/comment/v1")
	h.Delete("/:id", serverutils.JwtMiddleware, c.Delete)
}

func (c *commentController) ListByNote(ctx *fiber.Ctx) error {
	noteId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid note ID"))
	}

	result, err := c.service.ListByNote(ctx.Context(), noteId)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.JSON(serverutils.SuccessResponse("Comment list", result.Value))
}

func (c *commentController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	noteId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid note ID"))
	}

	var req dto.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.NoteId = noteId

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
	}

	result, err := c.service.CreateComment(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Comment created", result.Value))
}

func (c *commentController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	isAdmin := currentUserIsAdmin(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid comment ID"))
	}

	result, err := c.service.DeleteComment(ctx.Context(), userId, isAdmin, id)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.JSON(serverutils.SuccessResponse("Comment deleted", result.Value))
}
