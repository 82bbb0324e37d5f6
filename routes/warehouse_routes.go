package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupWarehouseRoutes(app *fiber.App) {
	controller := &controllers.WarehouseController{}
	api := app.Group(config.MAIN_ROUTES+"/warehouses", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/", controller.CreateWarehouse)
	api.Get("/", controller.GetAllWarehouses)
	api.Get("/:code", controller.GetWarehouseByCode)
	api.Put("/:code", controller.UpdateWarehouse)
	api.Delete("/:code", controller.DeleteWarehouse)
}
