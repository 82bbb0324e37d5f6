package main

import (
	"log"

	"wms-api/config"
	"wms-api/controllers/idgen"
	"wms-api/database"
	"wms-api/migration"
	"wms-api/routes"
	"wms-api/wms/master/buyer"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	database.EnsureDatabaseExists(config.DBName)
	database.EnsureDatabaseExists(config.DBUnit)

	masterDB, err := database.OpenMasterDB()
	if err != nil {
		log.Fatalf("Failed to connect to master database: %v", err)
	}

	if err := migration.Migrate(masterDB); err != nil {
		log.Fatalf("Failed to migrate master database: %v", err)
	}

	unitDB, err := database.GetDBConnection(config.DBUnit)
	if err != nil {
		log.Fatalf("Failed to connect to unit database: %v", err)
	}

	if err := migration.MigrateBusinessUnit(unitDB); err != nil {
		log.Fatalf("Failed to migrate unit database: %v", err)
	}

	idgen.Init()

	database.SeedUnit(masterDB)
	database.RunSeeders(unitDB)
	buyer.SeedBuyer(unitDB)

	app := fiber.New()
	config.SetupCORS(app)
	routes.SetupRoutes(app)

	log.Println("Server listening on port " + config.APP_PORT)
	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal(err)
	}
}
