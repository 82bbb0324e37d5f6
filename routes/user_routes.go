package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	controller := &controllers.UserController{}
	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/", controller.CreateUser)
	api.Get("/", controller.GetAllUsers)
	api.Get("/:id", controller.GetUserByID)
	api.Put("/:id", controller.UpdateUser)
	api.Delete("/:id", controller.DeleteUser)
}
