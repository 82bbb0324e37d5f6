package database

import (
	"fmt"
	"log"
	"sync"

	"wms-api/config"

	"gorm.io/gorm"
)

var (
	connections = map[string]*gorm.DB{}
	connMu      sync.Mutex
)

// GetDBConnection returns a cached connection to a business-unit
// database, opening it on first use. Connections live for the process
// lifetime.
func GetDBConnection(dbName string) (*gorm.DB, error) {
	connMu.Lock()
	defer connMu.Unlock()

	if db, ok := connections[dbName]; ok {
		return db, nil
	}

	db, err := config.OpenDatabase(dbName)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbName, err)
	}

	connections[dbName] = db
	return db, nil
}

// OpenMasterDB connects to the master database holding the business-unit
// registry.
func OpenMasterDB() (*gorm.DB, error) {
	return GetDBConnection(config.DBName)
}

// EnsureDatabaseExists creates the named database when the driver
// supports it. Postgres requires the database up front, so failures are
// logged and left to the operator.
func EnsureDatabaseExists(dbName string) {
	switch config.DBDriver {
	case "mysql", "mssql":
		db, err := config.OpenDatabase("")
		if err != nil {
			log.Printf("Warning: cannot reach server to ensure database %s: %v", dbName, err)
			return
		}
		stmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", dbName)
		if config.DBDriver == "mssql" {
			stmt = fmt.Sprintf("IF DB_ID('%s') IS NULL CREATE DATABASE [%s]", dbName, dbName)
		}
		if err := db.Exec(stmt).Error; err != nil {
			log.Printf("Warning: ensure database %s: %v", dbName, err)
		}
	default:
		// postgres: database must exist already
	}
}

func PrintActiveDBConnections() {
	connMu.Lock()
	defer connMu.Unlock()
	for name := range connections {
		log.Println("active db connection:", name)
	}
}
