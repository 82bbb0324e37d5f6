package models

import (
	"wms-api/controllers/idgen"
	"wms-api/types"

	"gorm.io/gorm"
)

type ReversePickHeader struct {
	gorm.Model
	ID          types.SnowflakeID  `json:"id" gorm:"primary_key"`
	ReverseNo   string `json:"reverse_no" gorm:"unique"`
	ReverseDate string `json:"reverse_date"`
	OrderId     types.SnowflakeID  `json:"order_id"`
	OrderNo     string `json:"order_no"`
	Buyer       string `json:"buyer"`
	WhsCode     string `json:"whs_code"`
	Status      string `json:"status" gorm:"default:'draft'"`
	Reason      string `json:"reason"`
	Remarks     string `json:"remarks_header"`
	TotalLine   int    `json:"total_line"`
	TotalQty    int    `json:"total_qty"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int

	Details []ReversePickDetail `gorm:"foreignKey:ReverseId;references:ID;constraint:OnDelete:CASCADE" json:"details"`
}

func (h *ReversePickHeader) BeforeCreate(tx *gorm.DB) (err error) {
	h.ID = types.SnowflakeID(idgen.GenerateID())
	return
}

type ReversePickDetail struct {
	gorm.Model
	ReverseId   types.SnowflakeID  `json:"reverse_id" gorm:"default:null"`
	ReverseNo   string `json:"reverse_no"`
	ItemId      int    `json:"item_id"`
	PartNo      string `json:"part_no"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	BatchNo     string `json:"batch_no"`
	Uom         string `json:"uom"`
	PickQty     int    `json:"pick_qty"`
	ReturnQty   int    `json:"return_qty"`
	ShortQty    int    `json:"short_qty"`
	Location    string `json:"location"`
	Remarks     string `json:"remarks"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
