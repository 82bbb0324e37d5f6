package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupLocationRoutes(app *fiber.App) {
	controller := &controllers.LocationController{}
	api := app.Group(config.MAIN_ROUTES+"/locations", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/upload-excel", controller.CreateLocationFromExcel)
	api.Post("/export", controller.ExportExcel)
	api.Post("/", controller.CreateLocation)
	api.Get("/", controller.GetAllLocations)
	api.Get("/:location_code", controller.GetLocationByCode)
	api.Put("/:location_code", controller.UpdateLocation)
	api.Delete("/:location_code", controller.DeleteLocation)
}
