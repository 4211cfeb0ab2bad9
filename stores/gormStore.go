package stores

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Users() UserStore           { return &gormUsers{db: s.db} }
func (s *GormStore) Products() ProductStore     { return &gormProducts{db: s.db} }
func (s *GormStore) Promotions() PromotionStore { return &gormPromotions{db: s.db} }
func (s *GormStore) Orders() OrderStore         { return &gormOrders{db: s.db} }
func (s *GormStore) Wishlist() WishlistStore    { return &gormWishlist{db: s.db} }
func (s *GormStore) Reviews() ReviewStore       { return &gormReviews{db: s.db} }

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func mapGormError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	}
	return err
}
