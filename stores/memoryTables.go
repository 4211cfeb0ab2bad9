package stores

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Kariqs/amexan-store/models"
)

type memUsers struct{ s *MemoryStore }

func (m memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	defer m.s.lock()()
	for _, u := range m.s.state.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m memUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	defer m.s.lock()()
	u, ok := m.s.state.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m memUsers) Insert(_ context.Context, user *models.User) error {
	defer m.s.lock()()
	for _, u := range m.s.state.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicateKey
		}
	}
	user.Email = strings.ToLower(user.Email)
	now := m.s.now()
	user.ID = m.s.state.nextID("users")
	user.CreatedAt, user.UpdatedAt = now, now
	m.s.state.users[user.ID] = *user
	return nil
}

func (m memUsers) UpdatePasswordHash(_ context.Context, email, hash string) error {
	defer m.s.lock()()
	for id, u := range m.s.state.users {
		if strings.EqualFold(u.Email, email) {
			u.PasswordHash = hash
			u.UpdatedAt = m.s.now()
			m.s.state.users[id] = u
			return nil
		}
	}
	return ErrNotFound
}

func (m memUsers) UpdateProfile(_ context.Context, user *models.User) error {
	defer m.s.lock()()
	u, ok := m.s.state.users[user.ID]
	if !ok {
		return ErrNotFound
	}
	u.Name, u.Address, u.PasswordHash = user.Name, user.Address, user.PasswordHash
	u.UpdatedAt = m.s.now()
	m.s.state.users[user.ID] = u
	return nil
}

func (m memUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.FindByEmail(ctx, email)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

type memProducts struct{ s *MemoryStore }

func (m memProducts) All(_ context.Context) ([]models.Product, error) {
	defer m.s.lock()()
	products := make([]models.Product, 0, len(m.s.state.products))
	for _, p := range m.s.state.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (m memProducts) FindByID(_ context.Context, id uint) (*models.Product, error) {
	defer m.s.lock()()
	p, ok := m.s.state.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// FindForUpdate needs no extra locking: transactions already hold the store lock.
func (m memProducts) FindForUpdate(ctx context.Context, id uint) (*models.Product, error) {
	return m.FindByID(ctx, id)
}

func (m memProducts) Create(_ context.Context, product *models.Product) error {
	defer m.s.lock()()
	now := m.s.now()
	product.ID = m.s.state.nextID("products")
	product.CreatedAt, product.UpdatedAt = now, now
	m.s.state.products[product.ID] = *product
	return nil
}

func (m memProducts) Update(_ context.Context, product *models.Product) error {
	defer m.s.lock()()
	existing, ok := m.s.state.products[product.ID]
	if !ok {
		return ErrNotFound
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = m.s.now()
	m.s.state.products[product.ID] = *product
	return nil
}

func (m memProducts) Delete(_ context.Context, id uint) error {
	defer m.s.lock()()
	if _, ok := m.s.state.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.s.state.products, id)
	return nil
}

func (m memProducts) DecrementStock(_ context.Context, id uint, by int) (int64, error) {
	defer m.s.lock()()
	p, ok := m.s.state.products[id]
	if !ok || p.Stock < by {
		return 0, nil
	}
	p.Stock -= by
	p.UpdatedAt = m.s.now()
	m.s.state.products[id] = p
	return 1, nil
}

type memPromotions struct{ s *MemoryStore }

func (m memPromotions) All(_ context.Context) ([]models.Promotion, error) {
	defer m.s.lock()()
	promotions := make([]models.Promotion, 0, len(m.s.state.promotions))
	for _, p := range m.s.state.promotions {
		promotions = append(promotions, p)
	}
	sort.Slice(promotions, func(i, j int) bool { return promotions[i].ID < promotions[j].ID })
	return promotions, nil
}

func (m memPromotions) ActiveFor(_ context.Context, productID uint, category string, at time.Time) ([]models.Promotion, error) {
	defer m.s.lock()()
	var active []models.Promotion
	for _, p := range m.s.state.promotions {
		if p.ActiveOn(at) && p.Targets(productID, category) {
			active = append(active, p)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active, nil
}

func (m memPromotions) Create(_ context.Context, promotion *models.Promotion) error {
	defer m.s.lock()()
	now := m.s.now()
	promotion.ID = m.s.state.nextID("promotions")
	promotion.CreatedAt, promotion.UpdatedAt = now, now
	m.s.state.promotions[promotion.ID] = *promotion
	return nil
}

func (m memPromotions) Delete(_ context.Context, id uint) error {
	defer m.s.lock()()
	if _, ok := m.s.state.promotions[id]; !ok {
		return ErrNotFound
	}
	delete(m.s.state.promotions, id)
	return nil
}

type memOrders struct{ s *MemoryStore }

func (m memOrders) Save(_ context.Context, order *models.Order) error {
	defer m.s.lock()()
	now := m.s.now()
	order.ID = m.s.state.nextID("orders")
	order.CreatedAt, order.UpdatedAt = now, now
	for i := range order.OrderItems {
		item := &order.OrderItems[i]
		item.ID = m.s.state.nextID("order_items")
		item.OrderID = order.ID
		item.CreatedAt, item.UpdatedAt = now, now
	}
	m.s.state.orders[order.ID] = copyOrder(*order)
	return nil
}

func (m memOrders) FindAll(ctx context.Context) ([]models.Order, error) {
	orders, _, err := m.Search(ctx, OrderQuery{})
	return orders, err
}

func (m memOrders) FindByID(_ context.Context, id uint) (*models.Order, error) {
	defer m.s.lock()()
	o, ok := m.s.state.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o = copyOrder(o)
	return &o, nil
}

func (m memOrders) Search(_ context.Context, q OrderQuery) ([]models.Order, int64, error) {
	defer m.s.lock()()
	var matched []models.Order
	for _, o := range m.s.state.orders {
		if q.UserID != 0 && o.UserID != q.UserID {
			continue
		}
		if q.Status != "" && o.Status != q.Status {
			continue
		}
		if q.Search != "" &&
			!strings.Contains(strconv.FormatUint(uint64(o.ID), 10), q.Search) &&
			!strings.Contains(strconv.FormatUint(uint64(o.UserID), 10), q.Search) {
			continue
		}
		matched = append(matched, copyOrder(o))
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if q.Ascending {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		if q.Ascending {
			return a.ID < b.ID
		}
		return a.ID > b.ID
	})

	total := int64(len(matched))
	if q.Limit > 0 {
		start := min(max(q.Offset, 0), len(matched))
		end := min(start+q.Limit, len(matched))
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (m memOrders) UpdateStatus(_ context.Context, id uint, status models.OrderStatus) error {
	defer m.s.lock()()
	o, ok := m.s.state.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = m.s.now()
	m.s.state.orders[id] = o
	return nil
}

func (m memOrders) Delete(_ context.Context, id uint) error {
	defer m.s.lock()()
	if _, ok := m.s.state.orders[id]; !ok {
		return ErrNotFound
	}
	delete(m.s.state.orders, id)
	return nil
}

type memWishlist struct{ s *MemoryStore }

func (m memWishlist) Add(_ context.Context, userID, productID uint) error {
	defer m.s.lock()()
	key := wishlistKey{userID, productID}
	if _, ok := m.s.state.wishlist[key]; ok {
		return nil
	}
	now := m.s.now()
	item := models.WishlistItem{UserID: userID, ProductID: productID}
	item.ID = m.s.state.nextID("wishlist_items")
	item.CreatedAt, item.UpdatedAt = now, now
	m.s.state.wishlist[key] = item
	return nil
}

func (m memWishlist) Remove(_ context.Context, userID, productID uint) error {
	defer m.s.lock()()
	delete(m.s.state.wishlist, wishlistKey{userID, productID})
	return nil
}

func (m memWishlist) Contains(_ context.Context, userID, productID uint) (bool, error) {
	defer m.s.lock()()
	_, ok := m.s.state.wishlist[wishlistKey{userID, productID}]
	return ok, nil
}

func (m memWishlist) Products(_ context.Context, userID uint) ([]models.Product, error) {
	defer m.s.lock()()
	var items []models.WishlistItem
	for key, item := range m.s.state.wishlist {
		if key.userID == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })

	var products []models.Product
	for _, item := range items {
		if p, ok := m.s.state.products[item.ProductID]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

type memReviews struct{ s *MemoryStore }

func (m memReviews) Create(_ context.Context, review *models.Review) error {
	defer m.s.lock()()
	now := m.s.now()
	review.ID = m.s.state.nextID("reviews")
	review.CreatedAt, review.UpdatedAt = now, now
	m.s.state.reviews[review.ID] = *review
	return nil
}

func (m memReviews) ForProduct(_ context.Context, productID uint) ([]models.Review, error) {
	defer m.s.lock()()
	var reviews []models.Review
	for _, r := range m.s.state.reviews {
		if r.ProductID == productID {
			reviews = append(reviews, r)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID > reviews[j].ID })
	return reviews, nil
}

func (m memReviews) AverageRating(ctx context.Context, productID uint) (float64, error) {
	reviews, err := m.ForProduct(ctx, productID)
	if err != nil || len(reviews) == 0 {
		return 0, err
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), nil
}

func (m memReviews) Delete(_ context.Context, id uint) error {
	defer m.s.lock()()
	if _, ok := m.s.state.reviews[id]; !ok {
		return ErrNotFound
	}
	delete(m.s.state.reviews, id)
	return nil
}
