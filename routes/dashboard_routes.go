package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	controller := &controllers.DashboardController{}
	api := app.Group(config.MAIN_ROUTES+"/dashboard", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Get("/summary", controller.GetSummary)
	api.Get("/history", controller.GetTransactionHistory)
}
