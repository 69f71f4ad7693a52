package controller

import (
	"todonotediary-be/internal/constant"
	"todonotediary-be/internal/dto"
	"todonotediary-be/internal/pkg/serverutils"
	"todonotediary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
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
	h.Use(serverutils.JwtMiddleware)
	h.Get("search", c.Search)
	h.Get("categories", c.Categories)
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *noteController) Index(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	category := ctx.Query("category", constant.CategoryAll)

	res := c.noteService.List(ctx.Context(), userID, category)
	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Search(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	q := ctx.Query("q", "")

	res := c.noteService.Search(ctx.Context(), userID, q)
	return ctx.JSON(serverutils.SuccessResponse("Success search notes", res))
}

func (c *noteController) Categories(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	res := c.noteService.Categories(ctx.Context(), userID)
	return ctx.JSON(serverutils.SuccessResponse("Success list note categories", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	id := ctx.Params("id")

	res, err := c.noteService.Show(ctx.Context(), userID, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	id := ctx.Params("id")

	if err := c.noteService.Delete(ctx.Context(), userID, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}
