package repositories

import (
	"errors"

	"wms-api/models"
	"wms-api/types"
	"wms-api/utils"

	"gorm.io/gorm"
)

type PutawayRepository struct {
	db *gorm.DB
}

func NewPutawayRepository(db *gorm.DB) *PutawayRepository {
	return &PutawayRepository{db: db}
}

func (r *PutawayRepository) GeneratePutawayNo() (string, error) {
	var last models.PutawayHeader
	if err := r.db.Unscoped().Order("id DESC").Limit(1).Find(&last).Error; err != nil {
		return "", err
	}
	return nextDocumentNo(last.PutawayNo, "PA"), nil
}

func (r *PutawayRepository) GetAllPutaway(p utils.PageParams) ([]models.PutawayHeader, int64, error) {
	query := r.db.Model(&models.PutawayHeader{})
	if p.Search != "" {
		pattern := utils.LikePattern(p.Search)
		query = query.Where(
			"putaway_no LIKE ? OR grn_no LIKE ? OR status LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var headers []models.PutawayHeader
	if err := query.Order("created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&headers).Error; err != nil {
		return nil, 0, err
	}
	return headers, total, nil
}

func (r *PutawayRepository) GetPutawayByNo(putawayNo string) (*models.PutawayHeader, error) {
	var header models.PutawayHeader
	err := r.db.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&header, "putaway_no = ?", putawayNo).Error
	if err != nil {
		return nil, err
	}
	return &header, nil
}

func (r *PutawayRepository) ReplaceDetails(tx *gorm.DB, headerID types.SnowflakeID, details []models.PutawayDetail) error {
	if headerID == 0 {
		return errors.New("putaway id required")
	}
	if err := tx.Unscoped().Where("putaway_id = ?", headerID).Delete(&models.PutawayDetail{}).Error; err != nil {
		return err
	}
	for i := range details {
		details[i].ID = 0
		details[i].PutawayId = headerID
		if err := tx.Create(&details[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
