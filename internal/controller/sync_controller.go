package controller

import (
	"todonotediary-be/internal/pkg/serverutils"
	"todonotediary-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISyncController interface {
	RegisterRoutes(r fiber.Router)
	SyncAll(ctx *fiber.Ctx) error
}

type syncController struct {
	syncService service.ISyncService
}

func NewSyncController(syncService service.ISyncService) ISyncController {
	return &syncController{
		syncService: syncService,
	}
}

func (c *syncController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sync/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.SyncAll)
}

func (c *syncController) SyncAll(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	res, err := c.syncService.SyncAll(ctx.Context(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success sync all data", res))
}
