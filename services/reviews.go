package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
)

type ReviewService struct {
	store stores.Store
}

func NewReviewService(store stores.Store) *ReviewService {
	return &ReviewService{store: store}
}

func (s *ReviewService) ForProduct(ctx context.Context, productID uint) ([]models.Review, error) {
	if _, err := findProduct(ctx, s.store.Products(), productID); err != nil {
		return nil, err
	}
	reviews, err := s.store.Reviews().ForProduct(ctx, productID)
	if err != nil {
		return nil, persistence(err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

func (s *ReviewService) Create(ctx context.Context, userID, productID uint, data models.ReviewData) (*models.Review, error) {
	if data.Rating < 1 || data.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := findProduct(ctx, s.store.Products(), productID); err != nil {
		return nil, err
	}

	review := models.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    data.Rating,
		Comment:   strings.TrimSpace(data.Comment),
	}
	if err := s.store.Reviews().Create(ctx, &review); err != nil {
		return nil, persistence(err)
	}
	return &review, nil
}

func (s *ReviewService) Delete(ctx context.Context, reviewID uint) error {
	err := s.store.Reviews().Delete(ctx, reviewID)
	if errors.Is(err, stores.ErrNotFound) {
		return ErrReviewNotFound
	}
	if err != nil {
		return persistence(err)
	}
	return nil
}
