package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupGrnRoutes(app *fiber.App) {
	controller := &controllers.GrnController{}
	api := app.Group(config.MAIN_ROUTES+"/grn", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/upload-excel", controller.UploadGrnFromExcel)
	api.Post("/export", controller.ExportExcel)
	api.Get("/from-gate-pass/:gate_pass_no", controller.ResolveFromGatePass)
	api.Post("/", controller.CreateGrn)
	api.Get("/", controller.GetAllGrn)
	api.Get("/:grn_no", controller.GetGrnByNo)
	api.Put("/:grn_no", controller.UpdateGrnByNo)
	api.Put("/:grn_no/complete", controller.CompleteGrn)
	api.Delete("/:grn_no", controller.DeleteGrn)
}
