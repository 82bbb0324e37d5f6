package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupPutawayRoutes(app *fiber.App) {
	controller := &controllers.PutawayController{}
	api := app.Group(config.MAIN_ROUTES+"/putaway", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/export", controller.ExportExcel)
	api.Get("/from-grn/:grn_no", controller.ResolveFromGrn)
	api.Post("/", controller.CreatePutaway)
	api.Get("/", controller.GetAllPutaway)
	api.Get("/:putaway_no", controller.GetPutawayByNo)
	api.Put("/:putaway_no", controller.UpdatePutawayByNo)
	api.Put("/:putaway_no/complete", controller.CompletePutaway)
	api.Delete("/:putaway_no", controller.DeletePutaway)
}
