package stores

import (
	"context"

	"github.com/Kariqs/amexan-store/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormWishlist struct {
	db *gorm.DB
}

func (s *gormWishlist) Add(ctx context.Context, userID, productID uint) error {
	item := models.WishlistItem{UserID: userID, ProductID: productID}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error
}

func (s *gormWishlist) Remove(ctx context.Context, userID, productID uint) error {
	return s.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}

func (s *gormWishlist) Contains(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (s *gormWishlist) Products(ctx context.Context, userID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Joins("JOIN wishlist_items ON wishlist_items.product_id = products.id AND wishlist_items.deleted_at IS NULL").
		Where("wishlist_items.user_id = ?", userID).
		Order("wishlist_items.created_at desc, wishlist_items.id desc").
		Find(&products).Error
	return products, err
}
