package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupBuyerOrderRoutes(app *fiber.App) {
	controller := &controllers.BuyerOrderController{}
	api := app.Group(config.MAIN_ROUTES+"/buyer-order", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/export", controller.ExportExcel)
	api.Post("/", controller.CreateOrder)
	api.Get("/", controller.GetAllOrders)
	api.Get("/:order_no", controller.GetOrderByNo)
	api.Put("/:order_no", controller.UpdateOrderByNo)
	api.Put("/:order_no/complete", controller.CompleteOrder)
	api.Delete("/:order_no", controller.DeleteOrder)
}
