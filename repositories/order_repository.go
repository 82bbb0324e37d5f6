package repositories

import (
	"errors"

	"wms-api/models"
	"wms-api/types"
	"wms-api/utils"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GenerateOrderNo() (string, error) {
	var last models.BuyerOrderHeader
	if err := r.db.Unscoped().Order("id DESC").Limit(1).Find(&last).Error; err != nil {
		return "", err
	}
	return nextDocumentNo(last.OrderNo, "BO"), nil
}

func (r *OrderRepository) GenerateMultiNo() (string, error) {
	var last models.MultiOrderHeader
	if err := r.db.Unscoped().Order("id DESC").Limit(1).Find(&last).Error; err != nil {
		return "", err
	}
	return nextDocumentNo(last.MultiNo, "MO"), nil
}

func (r *OrderRepository) GetAllOrders(p utils.PageParams) ([]models.BuyerOrderHeader, int64, error) {
	query := r.db.Model(&models.BuyerOrderHeader{})
	if p.Search != "" {
		pattern := utils.LikePattern(p.Search)
		query = query.Where(
			"order_no LIKE ? OR buyer LIKE ? OR status LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var headers []models.BuyerOrderHeader
	if err := query.Order("created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&headers).Error; err != nil {
		return nil, 0, err
	}
	return headers, total, nil
}

func (r *OrderRepository) GetOrderByNo(orderNo string) (*models.BuyerOrderHeader, error) {
	var header models.BuyerOrderHeader
	err := r.db.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&header, "order_no = ?", orderNo).Error
	if err != nil {
		return nil, err
	}
	return &header, nil
}

func (r *OrderRepository) ReplaceDetails(tx *gorm.DB, headerID types.SnowflakeID, details []models.BuyerOrderDetail) error {
	if headerID == 0 {
		return errors.New("order id required")
	}
	if err := tx.Unscoped().Where("order_id = ?", headerID).Delete(&models.BuyerOrderDetail{}).Error; err != nil {
		return err
	}
	for i := range details {
		details[i].ID = 0
		details[i].OrderId = headerID
		if err := tx.Create(&details[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) GetAllMultiOrders(p utils.PageParams) ([]models.MultiOrderHeader, int64, error) {
	query := r.db.Model(&models.MultiOrderHeader{})
	if p.Search != "" {
		pattern := utils.LikePattern(p.Search)
		query = query.Where("multi_no LIKE ? OR status LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var headers []models.MultiOrderHeader
	if err := query.Order("created_at DESC").
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&headers).Error; err != nil {
		return nil, 0, err
	}
	return headers, total, nil
}

func (r *OrderRepository) GetMultiOrderByNo(multiNo string) (*models.MultiOrderHeader, error) {
	var header models.MultiOrderHeader
	err := r.db.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&header, "multi_no = ?", multiNo).Error
	if err != nil {
		return nil, err
	}
	return &header, nil
}
