package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/Kariqs/amexan-store/utils"
)

const resetCodeDigits = 6

type ResetState int

const (
	ResetIdle ResetState = iota
	ResetCodeSent
	ResetCompleted
)

func (s ResetState) String() string {
	switch s {
	case ResetIdle:
		return "IDLE"
	case ResetCodeSent:
		return "CODE_SENT"
	case ResetCompleted:
		return "COMPLETED"
	default:
		return fmt.Sprintf("ResetState(%d)", int(s))
	}
}

// PasswordReset creates reset flows that share the user store, the pending
// challenges and the mail transport.
type PasswordReset struct {
	users       stores.UserStore
	challenges  stores.ChallengeStore
	mailer      utils.Mailer
	hasher      *PasswordHasher
	ttl         time.Duration
	maxAttempts int
	now         func() time.Time
}

func NewPasswordReset(users stores.UserStore, challenges stores.ChallengeStore, mailer utils.Mailer, hasher *PasswordHasher, ttl time.Duration, maxAttempts int) *PasswordReset {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &PasswordReset{
		users:       users,
		challenges:  challenges,
		mailer:      mailer,
		hasher:      hasher,
		ttl:         ttl,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// Begin starts a fresh flow in the Idle state.
func (p *PasswordReset) Begin() *ResetFlow {
	return &ResetFlow{reset: p, state: ResetIdle}
}

// Resume picks up the flow of a client that requested a code in an earlier
// request. Without a live challenge for email the flow is Idle.
func (p *PasswordReset) Resume(ctx context.Context, email string) (*ResetFlow, error) {
	email = normalizeEmail(email)
	_, err := p.challenges.Get(ctx, email)
	if errors.Is(err, stores.ErrNotFound) {
		return p.Begin(), nil
	}
	if err != nil {
		return nil, persistence(err)
	}
	return &ResetFlow{reset: p, state: ResetCodeSent, email: email}, nil
}

// ResetFlow is one Idle -> CodeSent -> Completed walk. A completed flow cannot be reused.
type ResetFlow struct {
	reset *PasswordReset

	mu    sync.Mutex
	state ResetState
	email string
}

func (f *ResetFlow) State() ResetState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// RequestCode binds a new one-time code to email and mails it. Requesting
// again replaces the earlier code. When the mail cannot be sent the flow stays
// in CodeSent and the stored code remains valid.
func (f *ResetFlow) RequestCode(ctx context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == ResetCompleted {
		return ErrResetCompleted
	}

	p := f.reset
	email = normalizeEmail(email)
	exists, err := p.users.EmailExists(ctx, email)
	if err != nil {
		return persistence(err)
	}
	if !exists {
		return ErrUnknownEmail
	}

	code, err := utils.GenerateNumericCode(resetCodeDigits)
	if err != nil {
		return err
	}

	challenge := models.ResetChallenge{
		Email:      email,
		CodeDigest: digestCode(code),
		ExpiresAt:  p.now().Add(p.ttl),
	}
	if err := p.challenges.Save(ctx, challenge); err != nil {
		return persistence(err)
	}
	f.state = ResetCodeSent
	f.email = email

	body := fmt.Sprintf(
		"Your password reset code is %s.\n\nIt expires in %d minutes. If you did not ask to reset your password you can ignore this email.",
		code,
		int(p.ttl.Minutes()),
	)
	if err := p.mailer.Send(ctx, email, "Password reset code", body); err != nil {
		utils.Error("reset code dispatch failed", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: %w", ErrMailDispatch, err)
	}
	return nil
}

// ResetPassword consumes the code and stores the new password hash. The code
// is checked and consumed in one store operation.
func (f *ResetFlow) ResetPassword(ctx context.Context, code, newPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != ResetCodeSent {
		return ErrInvalidCode
	}
	if err := CheckPasswordStrength(newPassword); err != nil {
		return err
	}

	p := f.reset
	hash, err := p.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	ok, err := p.challenges.Attempt(ctx, f.email, digestCode(code), p.maxAttempts)
	if errors.Is(err, stores.ErrNotFound) {
		return ErrInvalidCode
	}
	if err != nil {
		return persistence(err)
	}
	if !ok {
		utils.Warn("reset code rejected", nil)
		return ErrInvalidCode
	}

	if err := p.users.UpdatePasswordHash(ctx, f.email, hash); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return ErrUnknownEmail
		}
		return persistence(err)
	}
	f.state = ResetCompleted
	return nil
}

func digestCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
