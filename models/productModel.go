package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string          `json:"name" gorm:"not null"`
	Category    string          `json:"category" gorm:"size:100;index"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
}

// ProductData is the admin payload for creating or replacing a product.
type ProductData struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" binding:"gte=0"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
}

// PricedProduct is a product together with the price a customer pays right now.
type PricedProduct struct {
	Product
	Discount       decimal.Decimal `json:"discount"`
	EffectivePrice decimal.Decimal `json:"effectivePrice"`
	AverageRating  float64         `json:"averageRating"`
}
