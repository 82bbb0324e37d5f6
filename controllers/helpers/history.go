package helpers

import (
	"time"

	"wms-api/models"

	"gorm.io/gorm"
)

// InsertTransactionHistory records one document status transition.
func InsertTransactionHistory(db *gorm.DB, refNo, status, txType, detail string, actor int) error {
	history := models.TransactionHistory{
		RefNo:     refNo,
		Status:    status,
		Type:      txType,
		Detail:    detail,
		CreatedAt: time.Now(),
		CreatedBy: actor,
		UpdatedAt: time.Now(),
		UpdatedBy: actor,
	}

	return db.Create(&history).Error
}
