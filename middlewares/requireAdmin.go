package middlewares

import (
	"errors"
	"net/http"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/services"
	"github.com/gin-gonic/gin"
)

// RequireAdmin must run after RequireAuth.
func RequireAdmin(guard *services.Guard) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := CurrentSession(ctx)
		if session == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		_, err := guard.RequireRole(ctx.Request.Context(), session, models.RoleAdmin)
		if errors.Is(err, services.ErrForbidden) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		ctx.Next()
	}
}
