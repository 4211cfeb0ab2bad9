package services

import (
	"context"
	"errors"
	"sort"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/Kariqs/amexan-store/utils"
	"github.com/shopspring/decimal"
)

// allowedTransitions lists every status change an administrator may make.
var allowedTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending: {models.OrderStatusDelivered},
}

func canTransition(from, to models.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type OrderService struct {
	orders stores.OrderStore
}

func NewOrderService(orders stores.OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// History lists a customer's own orders, newest first.
func (s *OrderService) History(ctx context.Context, userID uint) ([]models.Order, error) {
	orders, _, err := s.orders.Search(ctx, stores.OrderQuery{UserID: userID})
	if err != nil {
		return nil, persistence(err)
	}
	return orders, nil
}

// Find returns an order visible to the caller: its owner or an administrator.
// Other callers get ErrOrderNotFound so order ids cannot be guessed.
func (s *OrderService) Find(ctx context.Context, claims *Claims, orderID uint) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if errors.Is(err, stores.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, persistence(err)
	}
	if claims.Role != models.RoleAdmin && order.UserID != claims.UserID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) Search(ctx context.Context, query stores.OrderQuery) ([]models.Order, int64, error) {
	orders, total, err := s.orders.Search(ctx, query)
	if err != nil {
		return nil, 0, persistence(err)
	}
	return orders, total, nil
}

// UpdateStatus moves an order forward. DELIVERED is terminal.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidTransition
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if errors.Is(err, stores.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, persistence(err)
	}

	if !canTransition(order.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, persistence(err)
	}

	utils.Info("order status updated", map[string]any{"orderId": orderID, "from": order.Status, "to": status})
	order.Status = status
	return order, nil
}

func (s *OrderService) MarkDelivered(ctx context.Context, orderID uint) (*models.Order, error) {
	return s.UpdateStatus(ctx, orderID, models.OrderStatusDelivered)
}

// Delete removes the order whatever its status. Stock is not restored.
func (s *OrderService) Delete(ctx context.Context, orderID uint) error {
	err := s.orders.Delete(ctx, orderID)
	if errors.Is(err, stores.ErrNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return persistence(err)
	}
	utils.Info("order deleted", map[string]any{"orderId": orderID})
	return nil
}

// RevenueReport summarises delivered orders: overall revenue, revenue per day
// and the topN products by quantity sold.
func (s *OrderService) RevenueReport(ctx context.Context, topN int) (*models.RevenueReport, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, persistence(err)
	}

	report := &models.RevenueReport{
		TotalRevenue: decimal.Zero,
		DailySales:   []models.DailySales{},
		TopProducts:  []models.TopProduct{},
	}
	daily := map[string]*models.DailySales{}
	products := map[uint]*models.TopProduct{}

	for _, order := range orders {
		if order.Status != models.OrderStatusDelivered {
			continue
		}
		report.TotalRevenue = report.TotalRevenue.Add(order.Total)

		day := models.DayOf(order.CreatedAt)
		key := day.Format("2006-01-02")
		if _, ok := daily[key]; !ok {
			daily[key] = &models.DailySales{Date: day, Revenue: decimal.Zero}
		}
		daily[key].Revenue = daily[key].Revenue.Add(order.Total)

		for _, item := range order.OrderItems {
			top, ok := products[item.ProductID]
			if !ok {
				top = &models.TopProduct{ProductID: item.ProductID, Name: item.Name, Revenue: decimal.Zero}
				products[item.ProductID] = top
			}
			top.QuantitySold += item.Quantity
			top.Revenue = top.Revenue.Add(item.LineTotal())
		}
	}

	for _, d := range daily {
		report.DailySales = append(report.DailySales, *d)
	}
	sort.Slice(report.DailySales, func(i, j int) bool {
		return report.DailySales[i].Date.Before(report.DailySales[j].Date)
	})

	for _, p := range products {
		report.TopProducts = append(report.TopProducts, *p)
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		a, b := report.TopProducts[i], report.TopProducts[j]
		if a.QuantitySold != b.QuantitySold {
			return a.QuantitySold > b.QuantitySold
		}
		return a.ProductID < b.ProductID
	})
	if topN > 0 && len(report.TopProducts) > topN {
		report.TopProducts = report.TopProducts[:topN]
	}
	return report, nil
}
