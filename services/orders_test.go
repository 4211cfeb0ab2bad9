package services

import (
	"context"
	"testing"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, env *testEnv, session *Session, products ...models.Product) *models.Order {
	t.Helper()
	cart := NewCart()
	for _, p := range products {
		cart.AddItem(p)
	}
	order, err := env.checkout.Checkout(context.Background(), session, cart)
	require.NoError(t, err)
	return order
}

func TestOrderStatusTransitions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.register(t, "status@example.com")
	order := placeOrder(t, env, session, env.product(t, "P", "misc", "4", 5))

	_, err := env.orders.UpdateStatus(ctx, order.ID, models.OrderStatus("SHIPPED"))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = env.orders.UpdateStatus(ctx, order.ID, models.OrderStatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	delivered, err := env.orders.MarkDelivered(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, delivered.Status)

	_, err = env.orders.UpdateStatus(ctx, order.ID, models.OrderStatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = env.orders.MarkDelivered(ctx, order.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = env.orders.MarkDelivered(ctx, 999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderDeleteDoesNotRestoreStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.register(t, "delete@example.com")
	p := env.product(t, "P", "misc", "4", 5)
	order := placeOrder(t, env, session, p)
	require.Equal(t, 4, env.stock(t, p.ID))

	_, err := env.orders.MarkDelivered(ctx, order.ID)
	require.NoError(t, err)
	require.NoError(t, env.orders.Delete(ctx, order.ID))
	assert.Equal(t, 4, env.stock(t, p.ID))

	assert.ErrorIs(t, env.orders.Delete(ctx, order.ID), ErrOrderNotFound)
}

func TestOrderVisibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.product(t, "P", "misc", "4", 5)

	alice := env.register(t, "alice@example.com")
	bob := env.register(t, "bob@example.com")
	order := placeOrder(t, env, alice, p)
	placeOrder(t, env, bob, p)

	aliceClaims, err := env.guard.RequireLogin(ctx, alice)
	require.NoError(t, err)
	bobClaims, err := env.guard.RequireLogin(ctx, bob)
	require.NoError(t, err)
	adminClaims, err := env.guard.RequireLogin(ctx, env.adminSession(t))
	require.NoError(t, err)

	found, err := env.orders.Find(ctx, aliceClaims, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	_, err = env.orders.Find(ctx, bobClaims, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = env.orders.Find(ctx, adminClaims, order.ID)
	require.NoError(t, err)

	history, err := env.orders.History(ctx, aliceClaims.UserID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
}

func TestOrderSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.product(t, "P", "misc", "1", 50)
	session := env.register(t, "search@example.com")

	var ids []uint
	for i := 0; i < 5; i++ {
		ids = append(ids, placeOrder(t, env, session, p).ID)
	}
	_, err := env.orders.MarkDelivered(ctx, ids[0])
	require.NoError(t, err)

	page, total, err := env.orders.Search(ctx, stores.OrderQuery{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 2)

	delivered, total, err := env.orders.Search(ctx, stores.OrderQuery{Status: models.OrderStatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, ids[0], delivered[0].ID)

	asc, _, err := env.orders.Search(ctx, stores.OrderQuery{Ascending: true})
	require.NoError(t, err)
	assert.Equal(t, ids[0], asc[0].ID)
}

func TestRevenueReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.register(t, "report@example.com")
	a := env.product(t, "A", "misc", "10", 50)
	b := env.product(t, "B", "misc", "3", 50)

	first := placeOrder(t, env, session, a, a, b)
	second := placeOrder(t, env, session, b)
	placeOrder(t, env, session, a) // stays pending

	_, err := env.orders.MarkDelivered(ctx, first.ID)
	require.NoError(t, err)
	_, err = env.orders.MarkDelivered(ctx, second.ID)
	require.NoError(t, err)

	report, err := env.orders.RevenueReport(ctx, 5)
	require.NoError(t, err)
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(26)), "revenue %s", report.TotalRevenue)
	require.Len(t, report.DailySales, 1)
	assert.True(t, report.DailySales[0].Revenue.Equal(decimal.NewFromInt(26)))

	require.Len(t, report.TopProducts, 2)
	assert.Equal(t, a.ID, report.TopProducts[0].ProductID)
	assert.Equal(t, 2, report.TopProducts[0].QuantitySold)
	assert.Equal(t, b.ID, report.TopProducts[1].ProductID)
	assert.Equal(t, 2, report.TopProducts[1].QuantitySold)

	top1, err := env.orders.RevenueReport(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, top1.TopProducts, 1)
}
