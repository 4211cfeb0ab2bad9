package services

import (
	"context"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
)

type WishlistService struct {
	store stores.Store
}

func NewWishlistService(store stores.Store) *WishlistService {
	return &WishlistService{store: store}
}

func (s *WishlistService) List(ctx context.Context, userID uint) ([]models.Product, error) {
	products, err := s.store.Wishlist().Products(ctx, userID)
	if err != nil {
		return nil, persistence(err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Add is idempotent; adding a product twice keeps one entry. It reports
// whether the product was not on the wishlist before.
func (s *WishlistService) Add(ctx context.Context, userID, productID uint) (bool, error) {
	if _, err := findProduct(ctx, s.store.Products(), productID); err != nil {
		return false, err
	}
	present, err := s.store.Wishlist().Contains(ctx, userID, productID)
	if err != nil {
		return false, persistence(err)
	}
	if present {
		return false, nil
	}
	if err := s.store.Wishlist().Add(ctx, userID, productID); err != nil {
		return false, persistence(err)
	}
	return true, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID uint) error {
	if err := s.store.Wishlist().Remove(ctx, userID, productID); err != nil {
		return persistence(err)
	}
	return nil
}
