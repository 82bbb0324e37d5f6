package routes

import (
	"wms-api/config"
	"wms-api/controllers"
	"wms-api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(app *fiber.App) {
	controller := &controllers.ProductController{}
	api := app.Group(config.MAIN_ROUTES+"/products", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(controller))

	api.Post("/upload-excel", controller.CreateProductFromExcel)
	api.Post("/", controller.CreateProduct)
	api.Get("/", controller.GetAllProducts)
	api.Get("/:part_no", controller.GetProductByPartNo)
	api.Put("/:part_no", controller.UpdateProduct)
	api.Delete("/:part_no", controller.DeleteProduct)
}
