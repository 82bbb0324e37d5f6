package models

import (
	"wms-api/controllers/idgen"
	"wms-api/types"

	"gorm.io/gorm"
)

type GrnHeader struct {
	gorm.Model
	ID           types.SnowflakeID  `json:"id" gorm:"primary_key"`
	GrnNo        string `json:"grn_no" gorm:"unique"`
	GrnDate      string `json:"grn_date"`
	GatePassId   types.SnowflakeID  `json:"gate_pass_id"`
	GatePassNo   string `json:"gate_pass_no"`
	SupplierId   int    `json:"supplier_id"`
	Supplier     string `json:"supplier"`
	InvoiceNo    string `json:"invoice_no"`
	ShipmentMode string `json:"shipment_mode"`
	WhsCode      string `json:"whs_code"`
	Status       string `json:"status" gorm:"default:'draft'"`
	Remarks      string `json:"remarks_header"`
	TotalLine    int    `json:"total_line"`
	TotalQty     int    `json:"total_qty"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int

	Details []GrnDetail `gorm:"foreignKey:GrnId;references:ID;constraint:OnDelete:CASCADE" json:"details"`
}

func (h *GrnHeader) BeforeCreate(tx *gorm.DB) (err error) {
	h.ID = types.SnowflakeID(idgen.GenerateID())
	return
}

type GrnDetail struct {
	gorm.Model
	GrnId       types.SnowflakeID  `json:"grn_id" gorm:"default:null"`
	GrnNo       string `json:"grn_no"`
	ItemId      int    `json:"item_id"`
	PartNo      string `json:"part_no"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	BatchNo     string `json:"batch_no"`
	Uom         string `json:"uom"`
	InvoiceQty  int    `json:"invoice_qty"`
	ReceivedQty int    `json:"received_qty"`
	ShortQty    int    `json:"short_qty"`
	DamageQty   int    `json:"damage_qty"`
	GrnQty      int    `json:"grn_qty"`
	Remarks     string `json:"remarks"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
