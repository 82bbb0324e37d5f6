package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	SupplierCode string `json:"supplier_code" gorm:"unique"`
	SupplierName string `json:"supplier_name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

type Transporter struct {
	gorm.Model
	TransporterCode string `json:"transporter_code" gorm:"unique"`
	TransporterName string `json:"transporter_name"`
	Phone           string `json:"phone"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int
}

type Truck struct {
	gorm.Model
	TruckNo   string `json:"truck_no" gorm:"unique"`
	TruckSize string `json:"truck_size"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// ShipmentMode is the reference list behind every document's
// mode-of-shipment dropdown (road, sea, air, courier).
type ShipmentMode struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique"`
	Description string `json:"description"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

type Uom struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique"`
	Description string `json:"description"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
