package controller

import (
	"noteshare-be/internal/dto"
	"noteshare-be/internal/pkg/serverutils"
	"noteshare-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	UploadProfileImage(ctx *fiber.Ctx) error
	DeleteAccount(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/profile", c.GetProfile)
	h.Put("/profile", c.UpdateProfile)
	h.Post("/profile/image", c.UploadProfileImage)
	h.Delete("/profile", c.DeleteAccount)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	result, err := c.service.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}

	return ctx.JSON(serverutils.SuccessResponse("User profile", result.Value))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
	}

	result, err := c.service.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}

	return ctx.JSON(serverutils.SuccessResponse("Profile updated", result.Value))
}

func (c *userController) UploadProfileImage(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	file, err := ctx.FormFile("image")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing file"))
	}

	result, err := c.service.UploadProfileImage(ctx.Context(), userId, file)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}

	return ctx.JSON(serverutils.SuccessResponse("Profile image updated", fiber.Map{
		"filename": result.Value,
	}))
}

func (c *userController) DeleteAccount(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	result, err := c.service.DeleteAccount(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if result.HasErrors() {
		return renderRuleErrors(ctx, result)
	}

	return ctx.JSON(serverutils.SuccessResponse("Account deleted", result.Value))
}
