package services

import (
	"context"
	"time"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BestDiscount returns the highest percentage among promotions that are active
// at the given time and target the product or its category. Zero when none apply.
func BestDiscount(promotions []models.Promotion, product models.Product, at time.Time) decimal.Decimal {
	best := decimal.Zero
	for _, p := range promotions {
		if !p.ActiveOn(at) || !p.Targets(product.ID, product.Category) {
			continue
		}
		if p.Discount.GreaterThan(best) {
			best = p.Discount
		}
	}
	return best
}

// ApplyDiscount returns price reduced by discount percent, rounded to cents.
func ApplyDiscount(price, discount decimal.Decimal) decimal.Decimal {
	if discount.LessThanOrEqual(decimal.Zero) {
		return price.Round(2)
	}
	factor := hundred.Sub(discount).Div(hundred)
	return price.Mul(factor).Round(2)
}

// Pricing resolves the effective price of products from the live promotions.
type Pricing struct {
	now func() time.Time
}

func NewPricing() *Pricing {
	return &Pricing{now: time.Now}
}

func (p *Pricing) Now() time.Time {
	return p.now()
}

// PriceWith reads the promotions through the given store so it can run inside a transaction.
func (p *Pricing) PriceWith(ctx context.Context, promotions stores.PromotionStore, product models.Product, at time.Time) (models.PricedProduct, error) {
	active, err := promotions.ActiveFor(ctx, product.ID, product.Category, at)
	if err != nil {
		return models.PricedProduct{}, persistence(err)
	}
	discount := BestDiscount(active, product, at)
	return models.PricedProduct{
		Product:        product,
		Discount:       discount,
		EffectivePrice: ApplyDiscount(product.Price, discount),
	}, nil
}
