package repositories

import (
	"errors"

	"wms-api/models"
	"wms-api/types"
	"wms-api/utils"

	"gorm.io/gorm"
)

type GatePassRepository struct {
	db *gorm.DB
}

func NewGatePassRepository(db *gorm.DB) *GatePassRepository {
	return &GatePassRepository{db: db}
}

func (r *GatePassRepository) GenerateGatePassNo() (string, error) {
	var last models.GatePassHeader
	if err := r.db.Unscoped().Order("id DESC").Limit(1).Find(&last).Error; err != nil {
		return "", err
	}
	return nextDocumentNo(last.GatePassNo, "GP"), nil
}

func (r *GatePassRepository) GetAllGatePass(p utils.PageParams) ([]models.GatePassHeader, int64, error) {
	query := r.db.Model(&models.GatePassHeader{})
	if p.Search != "" {
		pattern := utils.LikePattern(p.Search)
		query = query.Where(
			"gate_pass_no LIKE ? OR supplier LIKE ? OR invoice_no LIKE ? OR status LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var headers []models.GatePassHeader
	if err := query.Order("created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&headers).Error; err != nil {
		return nil, 0, err
	}
	return headers, total, nil
}

func (r *GatePassRepository) GetGatePassByNo(gatePassNo string) (*models.GatePassHeader, error) {
	var header models.GatePassHeader
	err := r.db.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&header, "gate_pass_no = ?", gatePassNo).Error
	if err != nil {
		return nil, err
	}
	return &header, nil
}

// ReplaceDetails swaps the whole detail list of a gate pass inside the
// given transaction. Documents own their rows; partial replacement is
// not supported.
func (r *GatePassRepository) ReplaceDetails(tx *gorm.DB, headerID types.SnowflakeID, details []models.GatePassDetail) error {
	if headerID == 0 {
		return errors.New("gate pass id required")
	}
	if err := tx.Unscoped().Where("gate_pass_id = ?", headerID).Delete(&models.GatePassDetail{}).Error; err != nil {
		return err
	}
	for i := range details {
		details[i].ID = 0
		details[i].GatePassId = headerID
		if err := tx.Create(&details[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
