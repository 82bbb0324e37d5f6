package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSupplierRoutes(app *fiber.App) {
	controller := &controllers.SupplierController{}
	api := app.Group(config.MAIN_ROUTES+"/suppliers", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/", controller.CreateSupplier)
	api.Get("/", controller.GetAllSuppliers)
	api.Get("/:supplier_code", controller.GetSupplierByCode)
	api.Put("/:supplier_code", controller.UpdateSupplier)
	api.Delete("/:supplier_code", controller.DeleteSupplier)
}
