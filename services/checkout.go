package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/Kariqs/amexan-store/utils"
	"github.com/shopspring/decimal"
)

// Checkout turns a cart into a persisted order.
type Checkout struct {
	store   stores.Store
	guard   *Guard
	pricing *Pricing
}

func NewCheckout(store stores.Store, guard *Guard, pricing *Pricing) *Checkout {
	return &Checkout{store: store, guard: guard, pricing: pricing}
}

// Checkout writes the order, its items and the stock decrements in one
// transaction, so a failure leaves neither an order nor changed stock. Line
// prices are the effective prices at this instant. The checked out lines leave
// the cart only after the transaction commits.
func (c *Checkout) Checkout(ctx context.Context, session *Session, cart *Cart) (*models.Order, error) {
	claims, err := c.guard.RequireLogin(ctx, session)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	lines := cart.Items()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	now := c.pricing.Now()
	order := models.Order{
		UserID: claims.UserID,
		Status: models.OrderStatusPending,
	}

	err = c.store.Transaction(ctx, func(tx stores.Store) error {
		// lock rows in id order so overlapping checkouts cannot deadlock
		ids := make([]uint, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.Product.ID)
		}
		slices.Sort(ids)

		locked := make(map[uint]*models.Product, len(ids))
		for _, id := range ids {
			product, err := tx.Products().FindForUpdate(ctx, id)
			if errors.Is(err, stores.ErrNotFound) {
				return fmt.Errorf("%w: product %d no longer exists", ErrInsufficientStock, id)
			}
			if err != nil {
				return persistence(err)
			}
			locked[id] = product
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			product := locked[line.Product.ID]
			if product.Stock < line.Quantity {
				return fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, product.Name, product.Stock)
			}

			priced, err := c.pricing.PriceWith(ctx, tx.Promotions(), *product, now)
			if err != nil {
				return err
			}

			affected, err := tx.Products().DecrementStock(ctx, product.ID, line.Quantity)
			if err != nil {
				return persistence(err)
			}
			if affected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
			}

			item := models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  line.Quantity,
				UnitPrice: priced.EffectivePrice,
			}
			items = append(items, item)
			total = total.Add(item.LineTotal())
		}

		order.OrderItems = items
		order.Total = total
		if err := tx.Orders().Save(ctx, &order); err != nil {
			return persistence(err)
		}
		return nil
	})
	if err != nil {
		utils.Warn("checkout failed", map[string]any{"userId": claims.UserID, "error": err.Error()})
		if errors.Is(err, ErrInsufficientStock) || errors.Is(err, ErrPersistenceFailure) {
			return nil, err
		}
		return nil, persistence(err)
	}

	cart.Deduct(lines)
	utils.Info("order placed", map[string]any{
		"orderId": order.ID,
		"userId":  order.UserID,
		"total":   order.Total.StringFixed(2),
	})
	return &order, nil
}
