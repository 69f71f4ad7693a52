package controller

import (
	"todonotediary-be/internal/dto"
	"todonotediary-be/internal/pkg/serverutils"
	"todonotediary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	UpdateAvatar(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{
		authService: authService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("register", c.Register)
	h.Post("login", c.Login)

	protected := h.Group("")
	protected.Use(serverutils.JwtMiddleware)
	protected.Get("me", c.Me)
	protected.Put("avatar", c.UpdateAvatar)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success register", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	res, err := c.authService.GetUserData(ctx.Context(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get user data", res))
}

func (c *authController) UpdateAvatar(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	var req dto.UpdateAvatarRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.UpdateAvatar(ctx.Context(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update avatar", res))
}
