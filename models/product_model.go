package models

import "gorm.io/gorm"

// Product is the part-number reference list. Detail rows on every
// document resolve their part number, description, SKU and UOM from
// here; part numbers are never free text on a form.
type Product struct {
	gorm.Model
	PartNo      string  `json:"part_no" gorm:"unique"`
	Description string  `json:"description"`
	SKU         string  `json:"sku"`
	Barcode     string  `json:"barcode"`
	Uom         string  `json:"uom"`
	Group       string  `json:"group"`
	Category    string  `json:"category"`
	Weight      float64 `json:"weight"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
