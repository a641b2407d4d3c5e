package controller

import (
	"strconv"

	"noteshare-be/internal/dto"
	"noteshare-be/internal/pkg/serverutils"
	"noteshare-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	MostLiked(ctx *fiber.Ctx) error
	ByCategory(ctx *fiber.Ctx) error
	Mine(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ToggleLike(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")

	// Public listing pages. Static segments registered before ":id".
	h.Get("", c.Index)
	h.Get("/most-liked", c.MostLiked)
	h.Get("/category/:categoryId", c.ByCategory)
	h.Get("/mine", serverutils.JwtMiddleware, c.Mine)
	h.Get("/:id", c.Show)

	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Put("/:id", serverutils.JwtMiddleware, c.Update)
	h.Delete("/:id", serverutils.JwtMiddleware, c.Delete)
	h.Post("/:id/like", serverutils.JwtMiddleware, c.ToggleLike)
}

func (c *noteController) Index(ctx *fiber.Ctx) error {
	res, err := c.noteService.ListNotes(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Note list", res))
}

func (c *noteController) MostLiked(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))

	res, err := c.noteService.ListMostLiked(ctx.Context(), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Most liked notes", res))
}

func (c *noteController) ByCategory(ctx *fiber.Ctx) error {
	categoryId, err := uuid.Parse(ctx.Params("categoryId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid category ID"))
	}

	result, err := c.noteService.ListNotesByCategory(ctx.Context(), categoryId)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.JSON(serverutils.SuccessResponse("Notes in category", result.Value))
}

func (c *noteController) Mine(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.noteService.ListMyNotes(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("My notes", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid note ID"))
	}

	result, err := c.noteService.GetNote(ctx.Context(), id)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.JSON(serverutils.SuccessResponse("Note detail", result.Value))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
	}

	result, err := c.noteService.CreateNote(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Note created", result.Value))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid note ID"))
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
	}

	result, err := c.noteService.UpdateNote(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.JSON(serverutils.SuccessResponse("Note updated", result.Value))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	isAdmin := currentUserIsAdmin(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid note ID"))
	}

	result, err := c.noteService.DeleteNote(ctx.Context(), userId, isAdmin, id)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.JSON(serverutils.SuccessResponse("Note deleted", result.Value))
}

func (c *noteController) ToggleLike(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid note ID"))
	}

	result, err := c.noteService.ToggleLike(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.JSON(serverutils.SuccessResponse("Like toggled", result.Value))
}
