package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/Kariqs/amexan-store/utils"
	"github.com/go-playground/validator/v10"
)

type AuthService struct {
	users       stores.UserStore
	hasher      *PasswordHasher
	tokens      *TokenService
	revocations stores.RevocationStore
	validate    *validator.Validate
}

func NewAuthService(users stores.UserStore, hasher *PasswordHasher, tokens *TokenService, revocations stores.RevocationStore) *AuthService {
	return &AuthService{
		users:       users,
		hasher:      hasher,
		tokens:      tokens,
		revocations: revocations,
		validate:    validator.New(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login answers ErrAuthenticationFailed for both an unknown email and a wrong
// password, after spending the same bcrypt work in either case.
func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := a.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, stores.ErrNotFound) {
		a.hasher.burn(password)
		return "", ErrAuthenticationFailed
	}
	if err != nil {
		return "", persistence(err)
	}

	if !a.hasher.Verify(user.PasswordHash, password) {
		return "", ErrAuthenticationFailed
	}

	return a.tokens.Issue(user.ID, user.Role)
}

func (a *AuthService) Register(ctx context.Context, name, email, password, address string) (string, error) {
	email = normalizeEmail(email)
	if err := a.validate.Var(email, "required,email"); err != nil {
		return "", ErrInvalidEmail
	}

	exists, err := a.users.EmailExists(ctx, email)
	if err != nil {
		return "", persistence(err)
	}
	if exists {
		return "", ErrEmailAlreadyExists
	}

	if err := CheckPasswordStrength(password); err != nil {
		return "", err
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	user := models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleCustomer,
		Address:      strings.TrimSpace(address),
	}
	if err := a.users.Insert(ctx, &user); err != nil {
		// lost a race against a concurrent signup for the same address
		if errors.Is(err, stores.ErrDuplicateKey) {
			return "", ErrEmailAlreadyExists
		}
		return "", persistence(err)
	}

	utils.Info("user registered", map[string]any{"userId": user.ID})
	return a.tokens.Issue(user.ID, user.Role)
}

// Logout revokes the session's token until it would have expired and clears the session.
func (a *AuthService) Logout(ctx context.Context, session *Session) error {
	claims := session.Claims()
	if claims == nil {
		return ErrNotAuthenticated
	}

	if a.revocations != nil && claims.ExpiresAt != nil {
		if err := a.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
			return persistence(err)
		}
	}

	session.Clear()
	return nil
}

func (a *AuthService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := a.users.FindByID(ctx, userID)
	if errors.Is(err, stores.ErrNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, persistence(err)
	}
	return user, nil
}

// UpdateProfile changes name and address, and the password when newPassword is
// not empty. The current password must verify either way.
func (a *AuthService) UpdateProfile(ctx context.Context, userID uint, data models.ProfileData) (*models.User, error) {
	user, err := a.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !a.hasher.Verify(user.PasswordHash, data.CurrentPassword) {
		return nil, ErrAuthenticationFailed
	}

	if data.NewPassword != "" {
		if err := CheckPasswordStrength(data.NewPassword); err != nil {
			return nil, err
		}
		hash, err := a.hasher.Hash(data.NewPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	user.Name = strings.TrimSpace(data.Name)
	user.Address = strings.TrimSpace(data.Address)
	if err := a.users.UpdateProfile(ctx, user); err != nil {
		return nil, persistence(err)
	}
	return user, nil
}
