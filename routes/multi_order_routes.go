package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMultiOrderRoutes(app *fiber.App) {
	controller := &controllers.MultiOrderController{}
	api := app.Group(config.MAIN_ROUTES+"/multi-order", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/export", controller.ExportExcel)
	api.Post("/resolve", controller.ResolveOrders)
	api.Post("/", controller.CreateMultiOrder)
	api.Get("/", controller.GetAllMultiOrders)
	api.Get("/:multi_no", controller.GetMultiOrderByNo)
	api.Put("/:multi_no/complete", controller.CompleteMultiOrder)
	api.Delete("/:multi_no", controller.DeleteMultiOrder)
}
