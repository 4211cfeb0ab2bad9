package services

import (
	"context"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/Kariqs/amexan-store/utils"
)

// Guard is the single gate in front of every protected operation.
type Guard struct {
	tokens      *TokenService
	revocations stores.RevocationStore
}

func NewGuard(tokens *TokenService, revocations stores.RevocationStore) *Guard {
	return &Guard{tokens: tokens, revocations: revocations}
}

// RequireLogin validates the session token and stores the resolved claims on
// the session. Every failure is ErrNotAuthenticated.
func (g *Guard) RequireLogin(ctx context.Context, session *Session) (*Claims, error) {
	if session == nil || session.Token() == "" {
		return nil, ErrNotAuthenticated
	}

	token := session.Token()
	claims, err := g.tokens.Validate(token)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	if g.revocations != nil {
		revoked, err := g.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			utils.Error("revocation lookup failed", map[string]any{"error": err.Error()})
			return nil, ErrNotAuthenticated
		}
		if revoked {
			return nil, ErrNotAuthenticated
		}
	}

	session.Set(token, claims)
	return claims, nil
}

// RequireRole is RequireLogin plus a capability check on the role claim.
func (g *Guard) RequireRole(ctx context.Context, session *Session, role models.Role) (*Claims, error) {
	claims, err := g.RequireLogin(ctx, session)
	if err != nil {
		return nil, err
	}
	if claims.Role != role {
		return nil, ErrForbidden
	}
	return claims, nil
}
