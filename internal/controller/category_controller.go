package controller

import (
	"noteshare-be/internal/dto"
	"noteshare-be/internal/pkg/serverutils"
	"noteshare-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type categoryController struct {
	service service.ICategoryService
}

func NewCategoryController(service service.ICategoryService) ICategoryController {
	return &categoryController{service: service}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/category/v1")
	h.Get("", c.Index)
	h.Get("/:id", c.Show)

	// Category management is admin-only.
	h.Post("", serverutils.JwtMiddleware, serverutils.RequireAdmin, c.Create)
	h.Put("/:id", serverutils.JwtMiddleware, serverutils.RequireAdmin, c.Update)
	h.Delete("/:id", serverutils.JwtMiddleware, serverutils.RequireAdmin, c.Delete)
}

func (c *categoryController) Index(ctx *fiber.Ctx) error {
	res, err := c.service.ListCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category list", res))
}

func (c *categoryController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid category ID"))
	}

	result, err := c.service.GetCategory(ctx.Context(), id)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.JSON(serverutils.SuccessResponse("Category detail", result.Value))
}

func (c *categoryController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
	}

	result, err := c.service.CreateCategory(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Category created", result.Value))
}

func (c *categoryController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid category ID"))
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
	}

	result, err := c.service.UpdateCategory(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.JSON(serverutils.SuccessResponse("Category updated", result.Value))
}

func (c *categoryController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid category ID"))
	}

	result, err := c.service.DeleteCategory(ctx.Context(), id)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}
	return ctx.JSON(serverutils.SuccessResponse("Category deleted", result.Value))
}
