// Package stores holds the persistence layer of the storefront. Every store is
// available over gorm (MySQL) and in memory; both honour the same transaction
// semantics so the checkout pipeline can stay storage agnostic.
package stores

import (
	"context"
	"errors"
	"time"

	"github.com/Kariqs/amexan-store/models"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

type UserStore interface {
	// Emails are stored lower-cased; lookups lower-case their argument.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	UpdatePasswordHash(ctx context.Context, email, hash string) error
	UpdateProfile(ctx context.Context, user *models.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	// FindForUpdate reads a product and locks its row until the surrounding transaction ends.
	FindForUpdate(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	// DecrementStock removes by units only when at least that many are in stock.
	// It returns the number of rows changed, 0 when stock was insufficient.
	DecrementStock(ctx context.Context, id uint, by int) (int64, error)
}

type PromotionStore interface {
	All(ctx context.Context) ([]models.Promotion, error)
	ActiveFor(ctx context.Context, productID uint, category string, at time.Time) ([]models.Promotion, error)
	Create(ctx context.Context, promotion *models.Promotion) error
	Delete(ctx context.Context, id uint) error
}

// OrderQuery filters and pages orders. Zero values mean "no filter".
type OrderQuery struct {
	UserID    uint
	Search    string
	Status    models.OrderStatus
	Limit     int
	Offset    int
	Ascending bool
}

type OrderStore interface {
	Save(ctx context.Context, order *models.Order) error
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	Search(ctx context.Context, query OrderQuery) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error
	Delete(ctx context.Context, id uint) error
}

type WishlistStore interface {
	Add(ctx context.Context, userID, productID uint) error
	Remove(ctx context.Context, userID, productID uint) error
	Contains(ctx context.Context, userID, productID uint) (bool, error)
	Products(ctx context.Context, userID uint) ([]models.Product, error)
}

type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	ForProduct(ctx context.Context, productID uint) ([]models.Review, error)
	AverageRating(ctx context.Context, productID uint) (float64, error)
	Delete(ctx context.Context, id uint) error
}

// Store groups the relational stores and runs work atomically.
type Store interface {
	Users() UserStore
	Products() ProductStore
	Promotions() PromotionStore
	Orders() OrderStore
	Wishlist() WishlistStore
	Reviews() ReviewStore

	// Transaction runs fn against a transactional view of the store. Returning an
	// error from fn rolls back every write made through tx.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// ChallengeStore keeps pending password reset challenges keyed by email.
type ChallengeStore interface {
	// Save replaces any challenge for the same email.
	Save(ctx context.Context, challenge models.ResetChallenge) error
	Get(ctx context.Context, email string) (*models.ResetChallenge, error)
	// Attempt checks digest against the live challenge for email in one atomic
	// step. A match consumes the challenge. A miss counts an attempt and
	// discards the challenge once maxAttempts misses were made. It returns
	// ErrNotFound when no live challenge exists.
	Attempt(ctx context.Context, email, digest string, maxAttempts int) (bool, error)
}

// RevocationStore remembers token ids that were logged out before they expired.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
