package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Catalog serves products with their current effective prices and lets
// administrators manage products and promotions.
type Catalog struct {
	store   stores.Store
	pricing *Pricing
}

func NewCatalog(store stores.Store, pricing *Pricing) *Catalog {
	return &Catalog{store: store, pricing: pricing}
}

func (c *Catalog) price(ctx context.Context, product models.Product, at time.Time) (models.PricedProduct, error) {
	priced, err := c.pricing.PriceWith(ctx, c.store.Promotions(), product, at)
	if err != nil {
		return models.PricedProduct{}, err
	}
	rating, err := c.store.Reviews().AverageRating(ctx, product.ID)
	if err != nil {
		return models.PricedProduct{}, persistence(err)
	}
	priced.AverageRating = rating
	return priced, nil
}

func (c *Catalog) Products(ctx context.Context) ([]models.PricedProduct, error) {
	products, err := c.store.Products().All(ctx)
	if err != nil {
		return nil, persistence(err)
	}

	now := c.pricing.Now()
	priced := make([]models.PricedProduct, 0, len(products))
	for _, p := range products {
		pp, err := c.price(ctx, p, now)
		if err != nil {
			return nil, err
		}
		priced = append(priced, pp)
	}
	return priced, nil
}

func findProduct(ctx context.Context, products stores.ProductStore, id uint) (*models.Product, error) {
	product, err := products.FindByID(ctx, id)
	if errors.Is(err, stores.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, persistence(err)
	}
	return product, nil
}

func (c *Catalog) Product(ctx context.Context, id uint) (*models.PricedProduct, error) {
	product, err := findProduct(ctx, c.store.Products(), id)
	if err != nil {
		return nil, err
	}
	priced, err := c.price(ctx, *product, c.pricing.Now())
	if err != nil {
		return nil, err
	}
	return &priced, nil
}

// ForCart returns the product a customer wants to add, refusing it when out of stock.
func (c *Catalog) ForCart(ctx context.Context, id uint) (*models.Product, error) {
	product, err := findProduct(ctx, c.store.Products(), id)
	if err != nil {
		return nil, err
	}
	if product.Stock <= 0 {
		return nil, ErrOutOfStock
	}
	return product, nil
}

// CartView prices the cart with the promotions active now.
func (c *Catalog) CartView(ctx context.Context, cart *Cart) (models.CartView, error) {
	return cart.View(ctx, c.pricing, c.store.Promotions())
}

func validateProduct(data models.ProductData) error {
	if strings.TrimSpace(data.Name) == "" || data.Price.IsNegative() || data.Stock < 0 {
		return ErrInvalidProduct
	}
	return nil
}

func (c *Catalog) CreateProduct(ctx context.Context, data models.ProductData) (*models.Product, error) {
	if err := validateProduct(data); err != nil {
		return nil, err
	}
	product := models.Product{
		Name:        strings.TrimSpace(data.Name),
		Category:    strings.TrimSpace(data.Category),
		Price:       data.Price.Round(2),
		Stock:       data.Stock,
		Description: data.Description,
		ImageURL:    data.ImageURL,
	}
	if err := c.store.Products().Create(ctx, &product); err != nil {
		return nil, persistence(err)
	}
	return &product, nil
}

func (c *Catalog) UpdateProduct(ctx context.Context, id uint, data models.ProductData) (*models.Product, error) {
	if err := validateProduct(data); err != nil {
		return nil, err
	}
	product, err := findProduct(ctx, c.store.Products(), id)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(data.Name)
	product.Category = strings.TrimSpace(data.Category)
	product.Price = data.Price.Round(2)
	product.Stock = data.Stock
	product.Description = data.Description
	product.ImageURL = data.ImageURL
	if err := c.store.Products().Update(ctx, product); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, persistence(err)
	}
	return product, nil
}

func (c *Catalog) DeleteProduct(ctx context.Context, id uint) error {
	err := c.store.Products().Delete(ctx, id)
	if errors.Is(err, stores.ErrNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return persistence(err)
	}
	return nil
}

func (c *Catalog) Promotions(ctx context.Context) ([]models.Promotion, error) {
	promotions, err := c.store.Promotions().All(ctx)
	if err != nil {
		return nil, persistence(err)
	}
	return promotions, nil
}

// CreatePromotion requires exactly one target, a discount in (0, 100] and an
// end date no earlier than the start date.
func (c *Catalog) CreatePromotion(ctx context.Context, data models.PromotionData) (*models.Promotion, error) {
	category := strings.TrimSpace(data.Category)
	hasProduct := data.ProductID != nil && *data.ProductID != 0
	if hasProduct == (category != "") {
		return nil, ErrInvalidPromotion
	}
	if data.Discount.LessThanOrEqual(decimal.Zero) || data.Discount.GreaterThan(hundred) {
		return nil, ErrInvalidPromotion
	}

	start, err := time.Parse(time.DateOnly, data.StartDate)
	if err != nil {
		return nil, ErrInvalidPromotion
	}
	end, err := time.Parse(time.DateOnly, data.EndDate)
	if err != nil {
		return nil, ErrInvalidPromotion
	}
	if end.Before(start) {
		return nil, ErrInvalidPromotion
	}

	promotion := models.Promotion{
		Discount:  data.Discount,
		StartDate: datatypes.Date(start),
		EndDate:   datatypes.Date(end),
	}
	if hasProduct {
		if _, err := findProduct(ctx, c.store.Products(), *data.ProductID); err != nil {
			return nil, err
		}
		id := *data.ProductID
		promotion.ProductID = &id
	} else {
		promotion.Category = &category
	}

	if err := c.store.Promotions().Create(ctx, &promotion); err != nil {
		return nil, persistence(err)
	}
	return &promotion, nil
}

func (c *Catalog) DeletePromotion(ctx context.Context, id uint) error {
	err := c.store.Promotions().Delete(ctx, id)
	if errors.Is(err, stores.ErrNotFound) {
		return ErrPromotionNotFound
	}
	if err != nil {
		return persistence(err)
	}
	return nil
}
