package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Promotion is a percentage discount that targets either one product or a whole category.
// StartDate and EndDate are inclusive calendar days.
type Promotion struct {
	gorm.Model
	ProductID *uint           `json:"productId" gorm:"index"`
	Category  *string         `json:"category" gorm:"size:100;index"`
	Discount  decimal.Decimal `json:"discount" gorm:"type:decimal(5,2);not null"`
	StartDate datatypes.Date  `json:"startDate" gorm:"not null"`
	EndDate   datatypes.Date  `json:"endDate" gorm:"not null"`
}

// ActiveOn reports whether at falls within the promotion's date window.
func (p Promotion) ActiveOn(at time.Time) bool {
	day := DayOf(at)
	return !day.Before(DayOf(time.Time(p.StartDate))) && !day.After(DayOf(time.Time(p.EndDate)))
}

// Targets reports whether the promotion applies to a product with the given id and category.
func (p Promotion) Targets(productID uint, category string) bool {
	if p.ProductID != nil && *p.ProductID == productID {
		return true
	}
	return p.Category != nil && category != "" && *p.Category == category
}

// DayOf drops the clock and zone of t, keeping its calendar date.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type PromotionData struct {
	ProductID *uint           `json:"productId"`
	Category  string          `json:"category"`
	Discount  decimal.Decimal `json:"discount"`
	StartDate string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string          `json:"endDate" binding:"required,datetime=2006-01-02"`
}
