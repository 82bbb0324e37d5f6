package routes

import (
	"wms-api/wms/master/buyer"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers every screen's routes on the app.
func SetupRoutes(app *fiber.App) {
	SetupAuthRoutes(app)
	SetupUserRoutes(app)
	SetupDashboardRoutes(app)

	SetupWarehouseRoutes(app)
	SetupLocationRoutes(app)
	SetupSupplierRoutes(app)
	SetupProductRoutes(app)
	SetupTransporterRoutes(app)
	SetupTruckRoutes(app)
	SetupUomRoutes(app)
	SetupShipmentModeRoutes(app)
	buyer.SetupBuyerRoutes(app)

	SetupGatePassRoutes(app)
	SetupGrnRoutes(app)
	SetupPutawayRoutes(app)
	SetupBuyerOrderRoutes(app)
	SetupMultiOrderRoutes(app)
	SetupReversePickRoutes(app)

	SetupInventoryRoutes(app)
}
