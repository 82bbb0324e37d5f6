package buyer

import (
	"gorm.io/gorm"
)

// Buyer is the customer a buyer order ships to.
type Buyer struct {
	gorm.Model
	BuyerCode string `json:"buyer_code" gorm:"unique"`
	BuyerName string `json:"buyer_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Contact   string `json:"contact"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
