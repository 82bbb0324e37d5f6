package models

import "gorm.io/gorm"

// Inventory is stock on hand per part, batch and location. Putaway
// completion writes rows here; reverse pick completion adds returned
// stock back.
type Inventory struct {
	gorm.Model
	WhsCode   string `json:"whs_code"`
	Location  string `json:"location"`
	ItemId    int    `json:"item_id"`
	PartNo    string `json:"part_no"`
	BatchNo   string `json:"batch_no"`
	Uom       string `json:"uom"`
	Quantity  int    `json:"quantity"`
	RefNo     string `json:"ref_no"`
	RefType   string `json:"ref_type"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
