package services

import (
	"context"
	"slices"
	"sync"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/shopspring/decimal"
)

// Cart maps products to positive quantities. It keeps no stock limits; callers
// refuse products that are out of stock before adding them.
type Cart struct {
	mu    sync.Mutex
	lines map[uint]*models.CartLine
	order []uint
}

func NewCart() *Cart {
	return &Cart{lines: map[uint]*models.CartLine{}}
}

// AddItem adds one unit of product.
func (c *Cart) AddItem(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[product.ID]; ok {
		line.Product = product
		line.Quantity++
		return
	}
	c.lines[product.ID] = &models.CartLine{Product: product, Quantity: 1}
	c.order = append(c.order, product.ID)
}

// RemoveItem drops the product whatever its quantity.
func (c *Cart) RemoveItem(productID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	c.order = slices.DeleteFunc(c.order, func(id uint) bool { return id == productID })
}

// Items returns a copy of the lines in the order they were first added.
func (c *Cart) Items() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartLine, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.lines[id])
	}
	return items
}

func (c *Cart) Quantity(productID uint) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if line, ok := c.lines[productID]; ok {
		return line.Quantity
	}
	return 0
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = map[uint]*models.CartLine{}
	c.order = nil
}

// Deduct removes the quantities in lines and drops lines that reach zero.
// Units added after lines were read stay in the cart.
func (c *Cart) Deduct(lines []models.CartLine) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, taken := range lines {
		line, ok := c.lines[taken.Product.ID]
		if !ok {
			continue
		}
		line.Quantity -= taken.Quantity
		if line.Quantity <= 0 {
			delete(c.lines, taken.Product.ID)
			c.order = slices.DeleteFunc(c.order, func(id uint) bool { return id == taken.Product.ID })
		}
	}
}

// View prices every line with the promotions active right now.
func (c *Cart) View(ctx context.Context, pricing *Pricing, promotions stores.PromotionStore) (models.CartView, error) {
	now := pricing.Now()
	view := models.CartView{Items: []models.CartViewLine{}, Total: decimal.Zero}
	for _, line := range c.Items() {
		priced, err := pricing.PriceWith(ctx, promotions, line.Product, now)
		if err != nil {
			return models.CartView{}, err
		}
		lineTotal := priced.EffectivePrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		view.Items = append(view.Items, models.CartViewLine{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: priced.EffectivePrice,
			LineTotal: lineTotal,
		})
		view.Total = view.Total.Add(lineTotal)
	}
	return view, nil
}

// Total is the sum of quantity times effective price, recomputed on every call.
func (c *Cart) Total(ctx context.Context, pricing *Pricing, promotions stores.PromotionStore) (decimal.Decimal, error) {
	view, err := c.View(ctx, pricing, promotions)
	if err != nil {
		return decimal.Zero, err
	}
	return view.Total, nil
}

// Carts keeps one cart per signed in user for the life of the process.
type Carts struct {
	mu    sync.Mutex
	carts map[uint]*Cart
}

func NewCarts() *Carts {
	return &Carts{carts: map[uint]*Cart{}}
}

func (c *Carts) For(userID uint) *Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	cart, ok := c.carts[userID]
	if !ok {
		cart = NewCart()
		c.carts[userID] = cart
	}
	return cart
}

// Drop forgets the cart of a user who signed out.
func (c *Carts) Drop(userID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.carts, userID)
}
