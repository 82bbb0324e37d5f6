package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	controller := &controllers.AuthController{}

	public := app.Group(config.MAIN_ROUTES + "/auth")
	public.Use(middleware.InjectDBMiddlewareDefault(controller))
	public.Post("/login", controller.Login)

	api := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))
	api.Post("/refresh", controller.Refresh)
	api.Post("/logout", controller.Logout)
	api.Get("/me", controller.Me)
}
