package controller

import (
	"todonotediary-be/internal/dto"
	"todonotediary-be/internal/pkg/serverutils"
	"todonotediary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDiaryController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	ByDate(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type diaryController struct {
	diaryService service.IDiaryService
}

func NewDiaryController(diaryService service.IDiaryService) IDiaryController {
	return &diaryController{
		diaryService: diaryService,
	}
}

func (c *diaryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/diary/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("search", c.Search)
	h.Get("by-date", c.ByDate)
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *diaryController) Index(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	res := c.diaryService.List(ctx.Context(), userID)
	return ctx.JSON(serverutils.SuccessResponse("Success list diaries", res))
}

func (c *diaryController) ByDate(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	date := int64(ctx.QueryInt("date", 0))
	if date == 0 {
		return &serverutils.ValidationError{Message: "date query parameter is required"}
	}

	res := c.diaryService.ListByDate(ctx.Context(), userID, date)
	return ctx.JSON(serverutils.SuccessResponse("Success list diaries by date", res))
}

func (c *diaryController) Search(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	q := ctx.Query("q", "")

	res := c.diaryService.Search(ctx.Context(), userID, q)
	return ctx.JSON(serverutils.SuccessResponse("Success search diaries", res))
}

func (c *diaryController) Show(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	id := ctx.Params("id")

	res, err := c.diaryService.Show(ctx.Context(), userID, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show diary", res))
}

func (c *diaryController) Create(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	var req dto.CreateDiaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.diaryService.Create(ctx.Context(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create diary", res))
}

func (c *diaryController) Update(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	var req dto.UpdateDiaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.diaryService.Update(ctx.Context(), userID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update diary", res))
}

func (c *diaryController) Delete(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	id := ctx.Params("id")

	if err := c.diaryService.Delete(ctx.Context(), userID, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete diary", nil))
}
