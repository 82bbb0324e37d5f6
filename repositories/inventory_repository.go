package repositories

import (
	"wms-api/models"
	"wms-api/utils"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

type StockSummary struct {
	WhsCode  string `json:"whs_code"`
	Location string `json:"location"`
	PartNo   string `json:"part_no"`
	BatchNo  string `json:"batch_no"`
	Uom      string `json:"uom"`
	Quantity int    `json:"quantity"`
}

// GetStockSummary rolls inventory movements up to on-hand quantity per
// part, batch and location.
func (r *InventoryRepository) GetStockSummary(p utils.PageParams) ([]StockSummary, error) {
	var summary []StockSummary

	sql := `SELECT whs_code, location, part_no, batch_no, uom, SUM(quantity) AS quantity
			FROM inventories
			WHERE deleted_at IS NULL
			AND (? = '' OR part_no LIKE ? OR location LIKE ? OR batch_no LIKE ?)
			GROUP BY whs_code, location, part_no, batch_no, uom
			HAVING SUM(quantity) <> 0
			ORDER BY whs_code, location, part_no`

	pattern := utils.LikePattern(p.Search)
	if err := r.db.Raw(sql, p.Search, pattern, pattern, pattern).Scan(&summary).Error; err != nil {
		return nil, err
	}
	return summary, nil
}

// AddMovement appends one stock movement row. Quantity is positive for
// putaway and reverse pick receipts, negative for issues.
func (r *InventoryRepository) AddMovement(tx *gorm.DB, movement *models.Inventory) error {
	return tx.Create(movement).Error
}
