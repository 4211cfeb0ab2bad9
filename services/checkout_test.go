package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutCreatesOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.register(t, "buyer@example.com")

	// A costs 12.50 with a 20% promotion, so 10 effective; B costs 5
	a := env.product(t, "A", "phones", "12.50", 10)
	b := env.product(t, "B", "cases", "5", 3)
	env.promotion(t, ptr(a.ID), nil, "20")

	cart := NewCart()
	cart.AddItem(a)
	cart.AddItem(b)
	cart.AddItem(a)

	order, err := env.checkout.Checkout(ctx, session, cart)
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Equal(t, session.UserID(), order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(25)), "total %s", order.Total)
	assert.True(t, order.Total.Equal(order.ItemsTotal()))

	require.Len(t, order.OrderItems, 2)
	assert.Equal(t, a.ID, order.OrderItems[0].ProductID)
	assert.Equal(t, 2, order.OrderItems[0].Quantity)
	assert.True(t, order.OrderItems[0].UnitPrice.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, b.ID, order.OrderItems[1].ProductID)
	assert.Equal(t, 1, order.OrderItems[1].Quantity)
	assert.True(t, order.OrderItems[1].UnitPrice.Equal(decimal.NewFromInt(5)))

	assert.Equal(t, 8, env.stock(t, a.ID))
	assert.Equal(t, 2, env.stock(t, b.ID))
	assert.Equal(t, 0, cart.Len())

	saved, err := env.store.Orders().FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, saved.Total.Equal(decimal.NewFromInt(25)))
	assert.Len(t, saved.OrderItems, 2)
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.register(t, "short@example.com")

	plenty := env.product(t, "Plenty", "misc", "3", 10)
	scarce := env.product(t, "Scarce", "misc", "7", 1)

	cart := NewCart()
	cart.AddItem(plenty)
	cart.AddItem(scarce)
	cart.AddItem(scarce)

	_, err := env.checkout.Checkout(ctx, session, cart)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 10, env.stock(t, plenty.ID))
	assert.Equal(t, 1, env.stock(t, scarce.ID))
	assert.Equal(t, 2, cart.Len(), "cart survives a failed checkout")

	orders, err := env.store.Orders().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutProductRemovedFromCatalog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.register(t, "gone@example.com")

	p := env.product(t, "Gone", "misc", "3", 10)
	cart := NewCart()
	cart.AddItem(p)
	require.NoError(t, env.store.Products().Delete(ctx, p.ID))

	_, err := env.checkout.Checkout(ctx, session, cart)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestCheckoutPreconditions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.product(t, "P", "misc", "3", 10)

	cart := NewCart()
	cart.AddItem(p)
	_, err := env.checkout.Checkout(ctx, NewSession("garbage"), cart)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, 1, cart.Len())

	session := env.register(t, "empty@example.com")
	_, err = env.checkout.Checkout(ctx, session, NewCart())
	assert.ErrorIs(t, err, ErrEmptyCart)

	assert.Equal(t, 10, env.stock(t, p.ID))
}

func TestOrderPricesAreFrozen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.register(t, "frozen@example.com")

	p := env.product(t, "P", "misc", "10", 10)
	promo := env.promotion(t, ptr(p.ID), nil, "50")

	cart := NewCart()
	cart.AddItem(p)
	order, err := env.checkout.Checkout(ctx, session, cart)
	require.NoError(t, err)

	require.NoError(t, env.store.Promotions().Delete(ctx, promo.ID))
	p.Price = decimal.NewFromInt(99)
	require.NoError(t, env.store.Products().Update(ctx, &p))

	saved, err := env.store.Orders().FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, saved.Total.Equal(decimal.NewFromInt(5)))
	assert.True(t, saved.OrderItems[0].UnitPrice.Equal(decimal.NewFromInt(5)))
}

func TestConcurrentCheckoutsNeverOversell(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.product(t, "Hot", "misc", "1", 5)

	const buyers = 12
	sessions := make([]*Session, buyers)
	for i := 0; i < buyers; i++ {
		sessions[i] = env.register(t, "buyer"+string(rune('a'+i))+"@example.com")
	}

	var succeeded, short atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(session *Session) {
			defer wg.Done()
			cart := NewCart()
			cart.AddItem(p)
			_, err := env.checkout.Checkout(ctx, session, cart)
			switch {
			case err == nil:
				succeeded.Add(1)
			case assert.ErrorIs(t, err, ErrInsufficientStock):
				short.Add(1)
			}
		}(sessions[i])
	}
	wg.Wait()

	assert.Equal(t, int32(5), succeeded.Load())
	assert.Equal(t, int32(buyers-5), short.Load())
	assert.Equal(t, 0, env.stock(t, p.ID))

	orders, err := env.store.Orders().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 5)
}

// hookedStore runs before ahead of every transaction.
type hookedStore struct {
	stores.Store
	before func()
}

func (s hookedStore) Transaction(ctx context.Context, fn func(tx stores.Store) error) error {
	s.before()
	return s.Store.Transaction(ctx, fn)
}

func TestCheckoutKeepsItemsAddedDuringCheckout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.register(t, "late@example.com")
	a := env.product(t, "A", "misc", "3", 5)
	b := env.product(t, "B", "misc", "4", 5)

	cart := NewCart()
	cart.AddItem(a)
	checkout := NewCheckout(hookedStore{Store: env.store, before: func() {
		cart.AddItem(a)
		cart.AddItem(b)
	}}, env.guard, env.pricing)

	order, err := checkout.Checkout(ctx, session, cart)
	require.NoError(t, err)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 1, order.OrderItems[0].Quantity)

	assert.Equal(t, 1, cart.Quantity(a.ID))
	assert.Equal(t, 1, cart.Quantity(b.ID))
	assert.Equal(t, 4, env.stock(t, a.ID))
	assert.Equal(t, 5, env.stock(t, b.ID))
}
