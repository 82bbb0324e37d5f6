package database

import (
	"errors"
	"fmt"
	"log"

	"wms-api/config"
	"wms-api/models"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"
	"gorm.io/gorm"
)

// RunSeeders fills a fresh business-unit database with the reference
// data the screens need on first boot.
func RunSeeders(db *gorm.DB) {
	SeedUoms(db)
	SeedShipmentModes(db)
	SeedWarehouse(db)
	SeedUserMaster(db)
	SeedDemoProducts(db)
}

func SeedUnit(db *gorm.DB) {
	unit := models.BusinessUnit{
		DbName: config.DBUnit,
	}

	var existing models.BusinessUnit
	err := db.Where("db_name = ?", unit.DbName).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&unit).Error; err != nil {
				log.Fatalf("Failed to create unit: %v", err)
			}
		} else {
			log.Fatalf("Unexpected DB error: %v", err)
		}
	}
}

func SeedUoms(db *gorm.DB) {
	uoms := []models.Uom{
		{Code: "PCS", Description: "Pieces"},
		{Code: "BOX", Description: "Box"},
		{Code: "CTN", Description: "Carton"},
	}

	for _, u := range uoms {
		var existing models.Uom
		if err := db.Where("code = ?", u.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&u)
			}
		}
	}
}

func SeedShipmentModes(db *gorm.DB) {
	modes := []models.ShipmentMode{
		{Code: "ROAD", Description: "Road freight"},
		{Code: "SEA", Description: "Sea freight"},
		{Code: "AIR", Description: "Air freight"},
		{Code: "COURIER", Description: "Courier"},
	}

	for _, m := range modes {
		var existing models.ShipmentMode
		if err := db.Where("code = ?", m.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&m)
			}
		}
	}
}

func SeedWarehouse(db *gorm.DB) {
	warehouses := []models.Warehouse{
		{Code: "WH01", Name: "Main Warehouse", City: "Jakarta", IsActive: true},
	}

	for _, w := range warehouses {
		var existing models.Warehouse
		if err := db.Where("code = ?", w.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&w)
			}
		}
	}
}

func SeedUserMaster(db *gorm.DB) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash seed password:", err)
		return
	}

	users := []models.User{
		{
			Username: "admin",
			Password: string(hashed),
			Name:     "Admin",
			Email:    "admin@example.com",
			WhsCode:  "WH01",
			IsActive: true,
		},
	}

	for _, user := range users {
		var existing models.User
		err := db.Where("username = ?", user.Username).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&user).Error; err != nil {
				log.Println("Failed to insert user:", user.Username, err)
			} else {
				log.Println("Insert user:", user.Username)
			}
		}
	}
}

// SeedDemoProducts generates a small randomized product list for empty
// development databases. Production databases load the master through
// the Excel upload instead.
func SeedDemoProducts(db *gorm.DB) {
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}

	rng := rand.New(rand.NewSource(42))
	groups := []string{"AUDIO", "GUITAR", "KEYBOARD", "DRUM"}

	for i := 1; i <= 20; i++ {
		group := groups[rng.Intn(len(groups))]
		product := models.Product{
			PartNo:      fmt.Sprintf("DEMO-%04d", i),
			Description: fmt.Sprintf("%s demo part %d", group, i),
			SKU:         fmt.Sprintf("SKU%05d", rng.Intn(90000)+10000),
			Uom:         "PCS",
			Group:       group,
			Weight:      float64(rng.Intn(5000)) / 100,
			IsActive:    true,
		}
		db.Create(&product)
	}
}
