package stores

import (
	"context"
	"sync"
	"time"

	"github.com/Kariqs/amexan-store/models"
)

type wishlistKey struct {
	userID    uint
	productID uint
}

type memoryState struct {
	users      map[uint]models.User
	products   map[uint]models.Product
	promotions map[uint]models.Promotion
	orders     map[uint]models.Order
	wishlist   map[wishlistKey]models.WishlistItem
	reviews    map[uint]models.Review
	sequences  map[string]uint
}

func newMemoryState() *memoryState {
	return &memoryState{
		users:      map[uint]models.User{},
		products:   map[uint]models.Product{},
		promotions: map[uint]models.Promotion{},
		orders:     map[uint]models.Order{},
		wishlist:   map[wishlistKey]models.WishlistItem{},
		reviews:    map[uint]models.Review{},
		sequences:  map[string]uint{},
	}
}

func (m *memoryState) clone() *memoryState {
	c := newMemoryState()
	for k, v := range m.users {
		c.users[k] = v
	}
	for k, v := range m.products {
		c.products[k] = v
	}
	for k, v := range m.promotions {
		c.promotions[k] = v
	}
	for k, v := range m.orders {
		c.orders[k] = copyOrder(v)
	}
	for k, v := range m.wishlist {
		c.wishlist[k] = v
	}
	for k, v := range m.reviews {
		c.reviews[k] = v
	}
	for k, v := range m.sequences {
		c.sequences[k] = v
	}
	return c
}

func (m *memoryState) nextID(table string) uint {
	m.sequences[table]++
	return m.sequences[table]
}

func copyOrder(o models.Order) models.Order {
	o.OrderItems = append([]models.OrderItem(nil), o.OrderItems...)
	return o
}

// MemoryStore keeps every table in process memory. It backs tests and the
// single-instance "memory" driver. A transaction holds the store lock for its
// whole duration and restores a snapshot when it fails.
type MemoryStore struct {
	mu    *sync.Mutex
	state *memoryState
	inTx  bool
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mu:    &sync.Mutex{},
		state: newMemoryState(),
		now:   time.Now,
	}
}

func (s *MemoryStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *MemoryStore) Users() UserStore           { return memUsers{s} }
func (s *MemoryStore) Products() ProductStore     { return memProducts{s} }
func (s *MemoryStore) Promotions() PromotionStore { return memPromotions{s} }
func (s *MemoryStore) Orders() OrderStore         { return memOrders{s} }
func (s *MemoryStore) Wishlist() WishlistStore    { return memWishlist{s} }
func (s *MemoryStore) Reviews() ReviewStore       { return memReviews{s} }

func (s *MemoryStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	backup := s.state.clone()
	defer func() {
		if r := recover(); r != nil {
			*s.state = *backup
			panic(r)
		}
	}()

	tx := &MemoryStore{mu: s.mu, state: s.state, inTx: true, now: s.now}
	if err := fn(tx); err != nil {
		*s.state = *backup
		return err
	}
	return nil
}
