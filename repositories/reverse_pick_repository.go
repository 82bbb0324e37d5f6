package repositories

import (
	"errors"

	"wms-api/models"
	"wms-api/types"
	"wms-api/utils"

	"gorm.io/gorm"
)

type ReversePickRepository struct {
	db *gorm.DB
}

func NewReversePickRepository(db *gorm.DB) *ReversePickRepository {
	return &ReversePickRepository{db: db}
}

func (r *ReversePickRepository) GenerateReverseNo() (string, error) {
	var last models.ReversePickHeader
	if err := r.db.Unscoped().Order("id DESC").Limit(1).Find(&last).Error; err != nil {
		return "", err
	}
	return nextDocumentNo(last.ReverseNo, "RP"), nil
}

func (r *ReversePickRepository) GetAllReversePick(p utils.PageParams) ([]models.ReversePickHeader, int64, error) {
	query := r.db.Model(&models.ReversePickHeader{})
	if p.Search != "" {
		pattern := utils.LikePattern(p.Search)
		query = query.Where(
			"reverse_no LIKE ? OR order_no LIKE ? OR buyer LIKE ? OR status LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var headers []models.ReversePickHeader
	if err := query.Order("created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&headers).Error; err != nil {
		return nil, 0, err
	}
	return headers, total, nil
}

func (r *ReversePickRepository) GetReversePickByNo(reverseNo string) (*models.ReversePickHeader, error) {
	var header models.ReversePickHeader
	err := r.db.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&header, "reverse_no = ?", reverseNo).Error
	if err != nil {
		return nil, err
	}
	return &header, nil
}

func (r *ReversePickRepository) ReplaceDetails(tx *gorm.DB, headerID types.SnowflakeID, details []models.ReversePickDetail) error {
	if headerID == 0 {
		return errors.New("reverse pick id required")
	}
	if err := tx.Unscoped().Where("reverse_id = ?", headerID).Delete(&models.ReversePickDetail{}).Error; err != nil {
		return err
	}
	for i := range details {
		details[i].ID = 0
		details[i].ReverseId = headerID
		if err := tx.Create(&details[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
