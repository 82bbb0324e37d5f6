package migration

import (
	"wms-api/models"
	"wms-api/wms/master/buyer"

	"gorm.io/gorm"
)

// Migrate sets up the master database: the registry of business units.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.BusinessUnit{})
}

// MigrateBusinessUnit sets up one business-unit database with every
// screen's tables.
func MigrateBusinessUnit(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.UserSession{},
		&models.LoginLog{},

		&models.Supplier{},
		&models.Product{},
		&models.Transporter{},
		&models.Truck{},
		&models.ShipmentMode{},
		&models.Uom{},
		&models.Warehouse{},
		&models.Location{},
		&buyer.Buyer{},

		&models.GatePassHeader{},
		&models.GatePassDetail{},
		&models.GrnHeader{},
		&models.GrnDetail{},
		&models.PutawayHeader{},
		&models.PutawayDetail{},
		&models.BuyerOrderHeader{},
		&models.BuyerOrderDetail{},
		&models.MultiOrderHeader{},
		&models.MultiOrderDetail{},
		&models.ReversePickHeader{},
		&models.ReversePickDetail{},

		&models.Inventory{},
		&models.TransactionHistory{},
		&models.FileLog{},
	)
}
