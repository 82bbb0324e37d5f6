package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupReversePickRoutes(app *fiber.App) {
	controller := &controllers.ReversePickController{}
	api := app.Group(config.MAIN_ROUTES+"/reverse-pick", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/export", controller.ExportExcel)
	api.Get("/from-order/:order_no", controller.ResolveFromOrder)
	api.Post("/", controller.CreateReversePick)
	api.Get("/", controller.GetAllReversePick)
	api.Get("/:reverse_no", controller.GetReversePickByNo)
	api.Put("/:reverse_no", controller.UpdateReversePickByNo)
	api.Put("/:reverse_no/complete", controller.CompleteReversePick)
	api.Delete("/:reverse_no", controller.DeleteReversePick)
}
