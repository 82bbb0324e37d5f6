package buyer

import (
	"wms-api/config"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupBuyerRoutes(app *fiber.App) {
	api := app.Group(config.MAIN_ROUTES+"/buyers", middleware.AuthMiddleware)
	handler := &BuyerHandler{}
	api.Use(middleware.InjectDBMiddleware(handler))

	api.Get("/", handler.GetAllBuyers)
	api.Post("/", handler.CreateBuyer)
	api.Get("/:buyer_code", handler.GetBuyerByCode)
	api.Put("/:buyer_code", handler.UpdateBuyer)
	api.Delete("/:buyer_code", handler.DeleteBuyer)
}
