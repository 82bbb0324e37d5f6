package models

import (
	"wms-api/controllers/idgen"
	"wms-api/types"

	"gorm.io/gorm"
)

type GatePassHeader struct {
	gorm.Model
	ID            types.SnowflakeID  `json:"id" gorm:"primary_key"`
	GatePassNo    string `json:"gate_pass_no" gorm:"unique"`
	GatePassDate  string `json:"gate_pass_date"`
	SupplierId    int    `json:"supplier_id"`
	Supplier      string `json:"supplier"`
	InvoiceNo     string `json:"invoice_no"`
	TransporterId int    `json:"transporter_id"`
	Transporter   string `json:"transporter"`
	Driver        string `json:"driver"`
	TruckId       int    `json:"truck_id"`
	TruckNo       string `json:"truck_no"`
	ShipmentMode  string `json:"shipment_mode"`
	WhsCode       string `json:"whs_code"`
	Status        string `json:"status" gorm:"default:'draft'"`
	Remarks       string `json:"remarks_header"`
	TotalLine     int    `json:"total_line"`
	TotalQty      int    `json:"total_qty"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int

	Details []GatePassDetail `gorm:"foreignKey:GatePassId;references:ID;constraint:OnDelete:CASCADE" json:"details"`
}

func (h *GatePassHeader) BeforeCreate(tx *gorm.DB) (err error) {
	h.ID = types.SnowflakeID(idgen.GenerateID())
	return
}

type GatePassDetail struct {
	gorm.Model
	GatePassId  types.SnowflakeID  `json:"gate_pass_id" gorm:"default:null"`
	GatePassNo  string `json:"gate_pass_no"`
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
	NetQty      int    `json:"net_qty"`
	Remarks     string `json:"remarks"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
