package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	ProductID uint   `json:"productId" gorm:"not null;index"`
	UserID    uint   `json:"userId" gorm:"not null;index"`
	Rating    int    `json:"rating" gorm:"not null"`
	Comment   string `json:"comment"`
}

type ReviewData struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
