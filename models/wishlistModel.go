package models

import "gorm.io/gorm"

type WishlistItem struct {
	gorm.Model
	UserID    uint `json:"userId" gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID uint `json:"productId" gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
}
