package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupGatePassRoutes(app *fiber.App) {
	controller := &controllers.GatePassController{}
	api := app.Group(config.MAIN_ROUTES+"/gate-pass", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/export", controller.ExportExcel)
	api.Post("/", controller.CreateGatePass)
	api.Get("/", controller.GetAllGatePass)
	api.Get("/:gate_pass_no", controller.GetGatePassByNo)
	api.Put("/:gate_pass_no", controller.UpdateGatePassByNo)
	api.Put("/:gate_pass_no/complete", controller.CompleteGatePass)
	api.Delete("/:gate_pass_no", controller.DeleteGatePass)
}
