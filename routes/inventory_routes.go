package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupInventoryRoutes(app *fiber.App) {
	controller := &controllers.InventoryController{}
	api := app.Group(config.MAIN_ROUTES+"/inventory", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/export", controller.ExportExcel)
	api.Get("/", controller.GetStockSummary)
}
