package buyer

import (
	"gorm.io/gorm"
)

func SeedBuyer(db *gorm.DB) {
	buyers := []Buyer{
		{BuyerCode: "BYR001", BuyerName: "Mega Retail Co", City: "Jakarta", Country: "ID", IsActive: true},
		{BuyerCode: "BYR002", BuyerName: "Pacific Distribution", City: "Singapore", Country: "SG", IsActive: true},
	}

	for _, b := range buyers {
		var existing Buyer
		if err := db.Where("buyer_code = ?", b.BuyerCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&b)
			}
		}
	}
}
