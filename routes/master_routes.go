package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupTransporterRoutes(app *fiber.App) {
	controller := &controllers.TransporterController{}
	api := app.Group(config.MAIN_ROUTES+"/transporters", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/", controller.CreateTransporter)
	api.Get("/", controller.GetAllTransporters)
	api.Put("/:transporter_code", controller.UpdateTransporter)
	api.Delete("/:transporter_code", controller.DeleteTransporter)
}

func SetupTruckRoutes(app *fiber.App) {
	controller := &controllers.TruckController{}
	api := app.Group(config.MAIN_ROUTES+"/trucks", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/", controller.CreateTruck)
	api.Get("/", controller.GetAllTrucks)
	api.Delete("/:truck_no", controller.DeleteTruck)
}

func SetupUomRoutes(app *fiber.App) {
	controller := &controllers.UomController{}
	api := app.Group(config.MAIN_ROUTES+"/uoms", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/", controller.CreateUom)
	api.Get("/", controller.GetAllUoms)
	api.Put("/:code", controller.UpdateUom)
	api.Delete("/:code", controller.DeleteUom)
}

func SetupShipmentModeRoutes(app *fiber.App) {
	controller := &controllers.ShipmentModeController{}
	api := app.Group(config.MAIN_ROUTES+"/shipment-modes", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/", controller.CreateShipmentMode)
	api.Get("/", controller.GetAllShipmentModes)
	api.Put("/:code", controller.UpdateShipmentMode)
	api.Delete("/:code", controller.DeleteShipmentMode)
}
