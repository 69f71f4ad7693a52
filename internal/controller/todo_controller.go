package controller

import (
	"time"

	"todonotediary-be/internal/dto"
	"todonotediary-be/internal/pkg/serverutils"
	"todonotediary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITodoController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Upcoming(ctx *fiber.Ctx) error
	Past(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	ToggleCompletion(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type todoController struct {
	todoService service.ITodoService
}

func NewTodoController(todoService service.ITodoService) ITodoController {
	return &todoController{
		todoService: todoService,
	}
}

func (c *todoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/todo/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("upcoming", c.Upcoming)
	h.Get("past", c.Past)
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Patch(":id/toggle", c.ToggleCompletion)
	h.Delete(":id", c.Delete)
}

func (c *todoController) Index(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	res := c.todoService.List(ctx.Context(), userID)
	return ctx.JSON(serverutils.SuccessResponse("Success list todos", res))
}

// selectedDate pulls the "date" query parameter, defaulting to now.
func selectedDate(ctx *fiber.Ctx) int64 {
	return int64(ctx.QueryInt("date", int(time.Now().UnixMilli())))
}

func (c *todoController) Upcoming(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	res := c.todoService.ListUpcoming(ctx.Context(), userID, selectedDate(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success list upcoming todos", res))
}

func (c *todoController) Past(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	res := c.todoService.ListPast(ctx.Context(), userID, selectedDate(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success list past todos", res))
}

func (c *todoController) Show(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	id := ctx.Params("id")

	res, err := c.todoService.Show(ctx.Context(), userID, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show todo", res))
}

func (c *todoController) Create(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	var req dto.CreateTodoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.todoService.Create(ctx.Context(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create todo", res))
}

func (c *todoController) Update(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	var req dto.UpdateTodoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.todoService.Update(ctx.Context(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update todo", res))
}

func (c *todoController) ToggleCompletion(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	id := ctx.Params("id")

	res, err := c.todoService.ToggleCompletion(ctx.Context(), userID, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success toggle todo completion", res))
}

func (c *todoController) Delete(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	id := ctx.Params("id")

	if err := c.todoService.Delete(ctx.Context(), userID, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete todo", nil))
}
