package repositories

import (
	"errors"

	"wms-api/models"
	"wms-api/types"
	"wms-api/utils"

	"gorm.io/gorm"
)

type GrnRepository struct {
	db *gorm.DB
}

func NewGrnRepository(db *gorm.DB) *GrnRepository {
	return &GrnRepository{db: db}
}

func (r *GrnRepository) GenerateGrnNo() (string, error) {
	var last models.GrnHeader
	if err := r.db.Unscoped().Order("id DESC").Limit(1).Find(&last).Error; err != nil {
		return "", err
	}
	return nextDocumentNo(last.GrnNo, "GRN"), nil
}

func (r *GrnRepository) GetAllGrn(p utils.PageParams) ([]models.GrnHeader, int64, error) {
	query := r.db.Model(&models.GrnHeader{})
	if p.Search != "" {
		pattern := utils.LikePattern(p.Search)
		query = query.Where(
			"grn_no LIKE ? OR gate_pass_no LIKE ? OR supplier LIKE ? OR invoice_no LIKE ? OR status LIKE ?",
			pattern, pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var headers []models.GrnHeader
	if err := query.Order("created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&headers).Error; err != nil {
		return nil, 0, err
	}
	return headers, total, nil
}

func (r *GrnRepository) GetGrnByNo(grnNo string) (*models.GrnHeader, error) {
	var header models.GrnHeader
	err := r.db.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&header, "grn_no = ?", grnNo).Error
	if err != nil {
		return nil, err
	}
	return &header, nil
}

func (r *GrnRepository) ReplaceDetails(tx *gorm.DB, headerID types.SnowflakeID, details []models.GrnDetail) error {
	if headerID == 0 {
		return errors.New("grn id required")
	}
	if err := tx.Unscoped().Where("grn_id = ?", headerID).Delete(&models.GrnDetail{}).Error; err != nil {
		return err
	}
	for i := range details {
		details[i].ID = 0
		details[i].GrnId = headerID
		if err := tx.Create(&details[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
