package services

import (
	"sync"

	"github.com/Kariqs/amexan-store/models"
)

// Session holds the token of one client together with the claims it resolved to.
type Session struct {
	mu     sync.RWMutex
	token  string
	claims *Claims
}

func NewSession(token string) *Session {
	return &Session{token: token}
}

func (s *Session) Set(token string, claims *Claims) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.claims = claims
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.claims = nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Claims() *Claims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claims
}

// UserID is 0 until the guard has resolved the token.
func (s *Session) UserID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return 0
	}
	return s.claims.UserID
}

func (s *Session) Role() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return ""
	}
	return s.claims.Role
}
