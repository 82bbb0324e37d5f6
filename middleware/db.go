package middleware

import (
	"reflect"

	"wms-api/config"
	"wms-api/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InjectDBMiddleware fills the controller's DB field with the connection
// of the business unit named in the request's token claims.
func InjectDBMiddleware(controller interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbName, ok := c.Locals("unit").(string)
		if !ok || dbName == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "database name not found in context")
		}
		return injectDB(c, controller, dbName)
	}
}

// InjectDBMiddlewareDefault injects the configured default unit. Used on
// routes that run before authentication, like login.
func InjectDBMiddlewareDefault(controller interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return injectDB(c, controller, config.DBUnit)
	}
}

func injectDB(c *fiber.Ctx, controller interface{}, dbName string) error {
	db, err := database.GetDBConnection(dbName)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "error connecting to database")
	}

	val := reflect.ValueOf(controller)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fiber.NewError(fiber.StatusInternalServerError, "controller must be a non-nil pointer")
	}

	elem := val.Elem()
	dbField := elem.FieldByName("DB")
	if !dbField.IsValid() || !dbField.CanSet() {
		return fiber.NewError(fiber.StatusInternalServerError, "DB field not found or cannot be set in controller")
	}

	if dbField.Type() != reflect.TypeOf((*gorm.DB)(nil)) {
		return fiber.NewError(fiber.StatusInternalServerError, "DB field has wrong type")
	}

	dbField.Set(reflect.ValueOf(db))

	return c.Next()
}
