package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

const testSecret = "test-secret-with-enough-entropy"

type testEnv struct {
	store       *stores.MemoryStore
	revocations *stores.MemoryRevocationStore
	challenges  *stores.MemoryChallengeStore
	hasher      *PasswordHasher
	tokens      *TokenService
	guard       *Guard
	pricing     *Pricing
	auth        *AuthService
	mailer      *fakeMailer
	reset       *PasswordReset
	checkout    *Checkout
	catalog     *Catalog
	orders      *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store:       stores.NewMemoryStore(),
		revocations: stores.NewMemoryRevocationStore(),
		challenges:  stores.NewMemoryChallengeStore(),
		hasher:      NewPasswordHasher(bcrypt.MinCost),
		tokens:      NewTokenService(testSecret, time.Hour),
		pricing:     NewPricing(),
		mailer:      &fakeMailer{},
	}
	env.guard = NewGuard(env.tokens, env.revocations)
	env.auth = NewAuthService(env.store.Users(), env.hasher, env.tokens, env.revocations)
	env.reset = NewPasswordReset(env.store.Users(), env.challenges, env.mailer, env.hasher, 10*time.Minute, 3)
	env.checkout = NewCheckout(env.store, env.guard, env.pricing)
	env.catalog = NewCatalog(env.store, env.pricing)
	env.orders = NewOrderService(env.store.Orders())
	return env
}

// register creates a customer and returns its session.
func (e *testEnv) register(t *testing.T, email string) *Session {
	t.Helper()
	token, err := e.auth.Register(context.Background(), "Test User", email, "Str0ng!pass", "1 Main Street")
	require.NoError(t, err)
	return NewSession(token)
}

func (e *testEnv) adminSession(t *testing.T) *Session {
	t.Helper()
	user := models.User{Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	require.NoError(t, e.store.Users().Insert(context.Background(), &user))
	token, err := e.tokens.Issue(user.ID, models.RoleAdmin)
	require.NoError(t, err)
	return NewSession(token)
}

func (e *testEnv) product(t *testing.T, name, category, price string, stock int) models.Product {
	t.Helper()
	p := models.Product{
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
	}
	require.NoError(t, e.store.Products().Create(context.Background(), &p))
	return p
}

func (e *testEnv) stock(t *testing.T, id uint) int {
	t.Helper()
	p, err := e.store.Products().FindByID(context.Background(), id)
	require.NoError(t, err)
	return p.Stock
}

// promotion creates a promotion running from yesterday to tomorrow.
func (e *testEnv) promotion(t *testing.T, productID *uint, category *string, discount string) models.Promotion {
	t.Helper()
	now := time.Now()
	p := models.Promotion{
		ProductID: productID,
		Category:  category,
		Discount:  decimal.RequireFromString(discount),
		StartDate: datatypes.Date(now.AddDate(0, 0, -1)),
		EndDate:   datatypes.Date(now.AddDate(0, 0, 1)),
	}
	require.NoError(t, e.store.Promotions().Create(context.Background(), &p))
	return p
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail error
}

type sentMail struct {
	to, subject, body string
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (m *fakeMailer) last() sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return sentMail{}
	}
	return m.sent[len(m.sent)-1]
}

func ptr[T any](v T) *T {
	return &v
}
