package stores

import (
	"context"
	"time"

	"github.com/Kariqs/amexan-store/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type gormPromotions struct {
	db *gorm.DB
}

func (s *gormPromotions) All(ctx context.Context) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := s.db.WithContext(ctx).Order("start_date desc").Find(&promotions).Error
	return promotions, err
}

func (s *gormPromotions) ActiveFor(ctx context.Context, productID uint, category string, at time.Time) ([]models.Promotion, error) {
	day := datatypes.Date(models.DayOf(at))

	query := s.db.WithContext(ctx).Where("start_date <= ? AND end_date >= ?", day, day)
	if category != "" {
		query = query.Where("product_id = ? OR category = ?", productID, category)
	} else {
		query = query.Where("product_id = ?", productID)
	}

	var promotions []models.Promotion
	err := query.Find(&promotions).Error
	return promotions, err
}

func (s *gormPromotions) Create(ctx context.Context, promotion *models.Promotion) error {
	return s.db.WithContext(ctx).Create(promotion).Error
}

func (s *gormPromotions) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Promotion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
