package stores

import (
	"context"
	"database/sql"

	"github.com/Kariqs/amexan-store/models"
	"gorm.io/gorm"
)

type gormReviews struct {
	db *gorm.DB
}

func (s *gormReviews) Create(ctx context.Context, review *models.Review) error {
	return s.db.WithContext(ctx).Create(review).Error
}

func (s *gormReviews) ForProduct(ctx context.Context, productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).Where("product_id = ?", productID).Order("created_at desc, id desc").Find(&reviews).Error
	return reviews, err
}

func (s *gormReviews) AverageRating(ctx context.Context, productID uint) (float64, error) {
	var avg sql.NullFloat64
	err := s.db.WithContext(ctx).Model(&models.Review{}).
		Select("AVG(rating)").
		Where("product_id = ?", productID).
		Row().Scan(&avg)
	if err != nil {
		return 0, err
	}
	return avg.Float64, nil
}

func (s *gormReviews) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
