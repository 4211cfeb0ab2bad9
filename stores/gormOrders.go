package stores

import (
	"context"

	"github.com/Kariqs/amexan-store/models"
	"gorm.io/gorm"
)

type gormOrders struct {
	db *gorm.DB
}

// Save inserts the order and its items in one statement batch. Callers that
// also adjust stock must run it inside Store.Transaction.
func (s *gormOrders) Save(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *gormOrders) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("OrderItems").Order("created_at desc, id desc").Find(&orders).Error
	return orders, err
}

func (s *gormOrders) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Preload("OrderItems").First(&order, id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &order, nil
}

func (s *gormOrders) Search(ctx context.Context, q OrderQuery) ([]models.Order, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if q.UserID != 0 {
			db = db.Where("user_id = ?", q.UserID)
		}
		if q.Status != "" {
			db = db.Where("status = ?", q.Status)
		}
		if q.Search != "" {
			db = db.Where("id LIKE ? OR user_id LIKE ?", "%"+q.Search+"%", "%"+q.Search+"%")
		}
		return db
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Order{}).Scopes(filter).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	sortOrder := "desc"
	if q.Ascending {
		sortOrder = "asc"
	}
	query := s.db.WithContext(ctx).Preload("OrderItems").Scopes(filter).Order("created_at " + sortOrder + ", id " + sortOrder)
	if q.Limit > 0 {
		query = query.Limit(q.Limit).Offset(q.Offset)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

func (s *gormOrders) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	return s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (s *gormOrders) Delete(ctx context.Context, id uint) error {
	order := models.Order{Model: gorm.Model{ID: id}}
	result := s.db.WithContext(ctx).Select("OrderItems").Delete(&order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
