package stores

import (
	"context"
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"github.com/Kariqs/amexan-store/models"
)

type MemoryChallengeStore struct {
	mu         sync.Mutex
	challenges map[string]models.ResetChallenge
	now        func() time.Time
}

func NewMemoryChallengeStore() *MemoryChallengeStore {
	return &MemoryChallengeStore{
		challenges: map[string]models.ResetChallenge{},
		now:        time.Now,
	}
}

func (s *MemoryChallengeStore) Save(_ context.Context, challenge models.ResetChallenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[strings.ToLower(challenge.Email)] = challenge
	return nil
}

func (s *MemoryChallengeStore) Get(_ context.Context, email string) (*models.ResetChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(email)
	c, ok := s.challenges[key]
	if !ok {
		return nil, ErrNotFound
	}
	if c.Expired(s.now()) {
		delete(s.challenges, key)
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryChallengeStore) Attempt(_ context.Context, email, digest string, maxAttempts int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(email)
	c, ok := s.challenges[key]
	if !ok || c.Expired(s.now()) {
		delete(s.challenges, key)
		return false, ErrNotFound
	}

	if subtle.ConstantTimeCompare([]byte(digest), []byte(c.CodeDigest)) == 1 {
		delete(s.challenges, key)
		return true, nil
	}

	c.Attempts++
	if c.Attempts >= maxAttempts {
		delete(s.challenges, key)
	} else {
		s.challenges[key] = c
	}
	return false, nil
}

type MemoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		revoked: map[string]time.Time{},
		now:     time.Now,
	}
}

func (s *MemoryRevocationStore) Revoke(_ context.Context, tokenID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = until
	return nil
}

// IsRevoked also drops entries whose token would have expired anyway.
func (s *MemoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !s.now().Before(until) {
		delete(s.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
