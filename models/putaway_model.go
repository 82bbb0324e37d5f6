package models

import (
	"wms-api/controllers/idgen"
	"wms-api/types"

	"gorm.io/gorm"
)

type PutawayHeader struct {
	gorm.Model
	ID          types.SnowflakeID  `json:"id" gorm:"primary_key"`
	PutawayNo   string `json:"putaway_no" gorm:"unique"`
	PutawayDate string `json:"putaway_date"`
	GrnId       types.SnowflakeID  `json:"grn_id"`
	GrnNo       string `json:"grn_no"`
	WhsCode     string `json:"whs_code"`
	Status      string `json:"status" gorm:"default:'draft'"`
	Remarks     string `json:"remarks_header"`
	TotalLine   int    `json:"total_line"`
	TotalQty    int    `json:"total_qty"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int

	Details []PutawayDetail `gorm:"foreignKey:PutawayId;references:ID;constraint:OnDelete:CASCADE" json:"details"`
}

func (h *PutawayHeader) BeforeCreate(tx *gorm.DB) (err error) {
	h.ID = types.SnowflakeID(idgen.GenerateID())
	return
}

type PutawayDetail struct {
	gorm.Model
	PutawayId   types.SnowflakeID  `json:"putaway_id" gorm:"default:null"`
	PutawayNo   string `json:"putaway_no"`
	ItemId      int    `json:"item_id"`
	PartNo      string `json:"part_no"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	BatchNo     string `json:"batch_no"`
	Uom         string `json:"uom"`
	ReceivedQty int    `json:"received_qty"`
	BinQty      int    `json:"bin_qty"`
	BinCount    int    `json:"bin_count"`
	PutawayQty  int    `json:"putaway_qty"`
	Location    string `json:"location"`
	Remarks     string `json:"remarks"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
