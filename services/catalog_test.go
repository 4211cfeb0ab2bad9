package services

import (
	"context"
	"testing"
	"time"

	"github.com/Kariqs/amexan-store/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogProductCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.catalog.CreateProduct(ctx, models.ProductData{Name: "Bad", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, ErrInvalidProduct)
	_, err = env.catalog.CreateProduct(ctx, models.ProductData{Name: " ", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	created, err := env.catalog.CreateProduct(ctx, models.ProductData{
		Name: "Phone", Category: "phones", Price: decimal.RequireFromString("199.999"), Stock: 3,
	})
	require.NoError(t, err)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("200")))

	updated, err := env.catalog.UpdateProduct(ctx, created.ID, models.ProductData{
		Name: "Phone 2", Category: "phones", Price: decimal.NewFromInt(150), Stock: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Phone 2", updated.Name)

	_, err = env.catalog.UpdateProduct(ctx, 999, models.ProductData{Name: "x", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = env.catalog.ForCart(ctx, created.ID)
	assert.ErrorIs(t, err, ErrOutOfStock)

	require.NoError(t, env.catalog.DeleteProduct(ctx, created.ID))
	assert.ErrorIs(t, env.catalog.DeleteProduct(ctx, created.ID), ErrProductNotFound)
	_, err = env.catalog.Product(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogListsEffectivePrices(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	phone := env.product(t, "Phone", "phones", "10", 3)
	env.product(t, "Case", "cases", "4", 3)
	env.promotion(t, ptr(phone.ID), nil, "20")
	env.promotion(t, nil, ptr("phones"), "10")

	products, err := env.catalog.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.True(t, products[0].Discount.Equal(decimal.NewFromInt(20)))
	assert.True(t, products[0].EffectivePrice.Equal(decimal.NewFromInt(8)))
	assert.True(t, products[1].Discount.IsZero())
	assert.True(t, products[1].EffectivePrice.Equal(decimal.NewFromInt(4)))
}

func TestCatalogCreatePromotion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.product(t, "Phone", "phones", "10", 3)
	today := time.Now().Format(time.DateOnly)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(time.DateOnly)

	tests := []struct {
		name string
		data models.PromotionData
		want error
	}{
		{"no target", models.PromotionData{Discount: decimal.NewFromInt(10), StartDate: today, EndDate: tomorrow}, ErrInvalidPromotion},
		{"both targets", models.PromotionData{ProductID: ptr(p.ID), Category: "phones", Discount: decimal.NewFromInt(10), StartDate: today, EndDate: tomorrow}, ErrInvalidPromotion},
		{"zero discount", models.PromotionData{Category: "phones", Discount: decimal.Zero, StartDate: today, EndDate: tomorrow}, ErrInvalidPromotion},
		{"over 100", models.PromotionData{Category: "phones", Discount: decimal.NewFromInt(101), StartDate: today, EndDate: tomorrow}, ErrInvalidPromotion},
		{"end before start", models.PromotionData{Category: "phones", Discount: decimal.NewFromInt(10), StartDate: tomorrow, EndDate: today}, ErrInvalidPromotion},
		{"bad date", models.PromotionData{Category: "phones", Discount: decimal.NewFromInt(10), StartDate: "soon", EndDate: today}, ErrInvalidPromotion},
		{"unknown product", models.PromotionData{ProductID: ptr(uint(999)), Discount: decimal.NewFromInt(10), StartDate: today, EndDate: tomorrow}, ErrProductNotFound},
		{"product", models.PromotionData{ProductID: ptr(p.ID), Discount: decimal.NewFromInt(100), StartDate: today, EndDate: today}, nil},
		{"category", models.PromotionData{Category: "phones", Discount: decimal.NewFromInt(15), StartDate: today, EndDate: tomorrow}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo, err := env.catalog.CreatePromotion(ctx, tt.data)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, promo.ID)
		})
	}

	promotions, err := env.catalog.Promotions(ctx)
	require.NoError(t, err)
	assert.Len(t, promotions, 2)

	require.NoError(t, env.catalog.DeletePromotion(ctx, promotions[0].ID))
	assert.ErrorIs(t, env.catalog.DeletePromotion(ctx, promotions[0].ID), ErrPromotionNotFound)
}

func TestWishlistAndReviews(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.product(t, "Phone", "phones", "10", 3)
	wishlist := NewWishlistService(env.store)
	reviews := NewReviewService(env.store)

	added, err := wishlist.Add(ctx, 1, p.ID)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = wishlist.Add(ctx, 1, p.ID)
	require.NoError(t, err)
	assert.False(t, added)
	_, err = wishlist.Add(ctx, 1, 999)
	assert.ErrorIs(t, err, ErrProductNotFound)

	products, err := wishlist.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	require.NoError(t, wishlist.Remove(ctx, 1, p.ID))
	products, err = wishlist.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = reviews.Create(ctx, 1, p.ID, models.ReviewData{Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = reviews.Create(ctx, 1, 999, models.ReviewData{Rating: 5})
	assert.ErrorIs(t, err, ErrProductNotFound)

	first, err := reviews.Create(ctx, 1, p.ID, models.ReviewData{Rating: 5, Comment: " great "})
	require.NoError(t, err)
	assert.Equal(t, "great", first.Comment)
	_, err = reviews.Create(ctx, 2, p.ID, models.ReviewData{Rating: 2})
	require.NoError(t, err)

	priced, err := env.catalog.Product(ctx, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, priced.AverageRating, 0.001)

	list, err := reviews.ForProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, reviews.Delete(ctx, first.ID))
	assert.ErrorIs(t, reviews.Delete(ctx, first.ID), ErrReviewNotFound)
}
