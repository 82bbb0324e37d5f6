package models

import (
	"wms-api/controllers/idgen"
	"wms-api/types"

	"gorm.io/gorm"
)

type BuyerOrderHeader struct {
	gorm.Model
	ID           types.SnowflakeID  `json:"id" gorm:"primary_key"`
	OrderNo      string `json:"order_no" gorm:"unique"`
	OrderDate    string `json:"order_date"`
	BuyerId      int    `json:"buyer_id"`
	Buyer        string `json:"buyer"`
	ShipmentMode string `json:"shipment_mode"`
	DeliveryDate string `json:"delivery_date"`
	WhsCode      string `json:"whs_code"`
	Status       string `json:"status" gorm:"default:'draft'"`
	Remarks      string `json:"remarks_header"`
	TotalLine    int    `json:"total_line"`
	TotalQty     int    `json:"total_qty"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int

	Details []BuyerOrderDetail `gorm:"foreignKey:OrderId;references:ID;constraint:OnDelete:CASCADE" json:"details"`
}

func (h *BuyerOrderHeader) BeforeCreate(tx *gorm.DB) (err error) {
	h.ID = types.SnowflakeID(idgen.GenerateID())
	return
}

type BuyerOrderDetail struct {
	gorm.Model
	OrderId     types.SnowflakeID  `json:"order_id" gorm:"default:null"`
	OrderNo     string `json:"order_no"`
	ItemId      int    `json:"item_id"`
	PartNo      string `json:"part_no"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	BatchNo     string `json:"batch_no"`
	Uom         string `json:"uom"`
	OrderQty    int    `json:"order_qty"`
	PickQty     int    `json:"pick_qty"`
	ShortQty    int    `json:"short_qty"`
	Remarks     string `json:"remarks"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

// MultiOrderHeader consolidates several buyer orders into one picking
// document. Its details reference the source order each line came from.
type MultiOrderHeader struct {
	gorm.Model
	ID          types.SnowflakeID  `json:"id" gorm:"primary_key"`
	MultiNo     string `json:"multi_no" gorm:"unique"`
	PickingDate string `json:"picking_date"`
	WhsCode     string `json:"whs_code"`
	Status      string `json:"status" gorm:"default:'draft'"`
	Remarks     string `json:"remarks_header"`
	TotalOrder  int    `json:"total_order"`
	TotalLine   int    `json:"total_line"`
	TotalQty    int    `json:"total_qty"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int

	Details []MultiOrderDetail `gorm:"foreignKey:MultiId;references:ID;constraint:OnDelete:CASCADE" json:"details"`
}

func (h *MultiOrderHeader) BeforeCreate(tx *gorm.DB) (err error) {
	h.ID = types.SnowflakeID(idgen.GenerateID())
	return
}

type MultiOrderDetail struct {
	gorm.Model
	MultiId     types.SnowflakeID  `json:"multi_id" gorm:"default:null"`
	MultiNo     string `json:"multi_no"`
	OrderId     types.SnowflakeID  `json:"order_id"`
	OrderNo     string `json:"order_no"`
	Buyer       string `json:"buyer"`
	ItemId      int    `json:"item_id"`
	PartNo      string `json:"part_no"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	BatchNo     string `json:"batch_no"`
	Uom         string `json:"uom"`
	OrderQty    int    `json:"order_qty"`
	PickQty     int    `json:"pick_qty"`
	ShortQty    int    `json:"short_qty"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
