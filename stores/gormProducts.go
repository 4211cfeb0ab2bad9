package stores

import (
	"context"

	"github.com/Kariqs/amexan-store/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormProducts struct {
	db *gorm.DB
}

func (s *gormProducts) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Order("id asc").Find(&products).Error
	return products, err
}

func (s *gormProducts) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &product, nil
}

func (s *gormProducts) FindForUpdate(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, id).Error
	if err != nil {
		return nil, mapGormError(err)
	}
	return &product, nil
}

func (s *gormProducts) Create(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *gormProducts) Update(ctx context.Context, product *models.Product) error {
	result := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"category":    product.Category,
			"price":       product.Price,
			"stock":       product.Stock,
			"description": product.Description,
			"image_url":   product.ImageURL,
		})
	return result.Error
}

func (s *gormProducts) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormProducts) DecrementStock(ctx context.Context, id uint, by int) (int64, error) {
	result := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, by).
		UpdateColumn("stock", gorm.Expr("stock - ?", by))
	return result.RowsAffected, result.Error
}
