package middlewares

import (
	"net/http"
	"strings"

	"github.com/Kariqs/amexan-store/services"
	"github.com/gin-gonic/gin"
)

const (
	SessionKey = "session"
	ClaimsKey  = "claims"
)

// RequireAuth resolves the bearer token into a session and aborts with 401 when
// the guard refuses it.
func RequireAuth(guard *services.Guard) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		session := services.NewSession(strings.TrimSpace(token))
		claims, err := guard.RequireLogin(ctx.Request.Context(), session)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		ctx.Set(SessionKey, session)
		ctx.Set(ClaimsKey, claims)
		ctx.Next()
	}
}

// CurrentSession returns the session RequireAuth stored on the request.
func CurrentSession(ctx *gin.Context) *services.Session {
	value, exists := ctx.Get(SessionKey)
	if !exists {
		return nil
	}
	session, _ := value.(*services.Session)
	return session
}

func CurrentClaims(ctx *gin.Context) *services.Claims {
	value, exists := ctx.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*services.Claims)
	return claims
}
