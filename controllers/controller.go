package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Kariqs/amexan-store/middlewares"
	"github.com/Kariqs/amexan-store/services"
	"github.com/Kariqs/amexan-store/utils"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidInput        = "invalid input"
	msgInternalServerError = "Internal server error"
)

// Controller holds the services every HTTP handler delegates to.
type Controller struct {
	Auth     *services.AuthService
	Reset    *services.PasswordReset
	Catalog  *services.Catalog
	Carts    *services.Carts
	Checkout *services.Checkout
	Orders   *services.OrderService
	Wishlist *services.WishlistService
	Reviews  *services.ReviewService
}

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{services.ErrAuthenticationFailed, http.StatusUnauthorized},
	{services.ErrInvalidToken, http.StatusUnauthorized},
	{services.ErrNotAuthenticated, http.StatusUnauthorized},
	{services.ErrForbidden, http.StatusForbidden},
	{services.ErrEmailAlreadyExists, http.StatusConflict},
	{services.ErrInsufficientStock, http.StatusConflict},
	{services.ErrInvalidTransition, http.StatusConflict},
	{services.ErrResetCompleted, http.StatusConflict},
	{services.ErrUnknownEmail, http.StatusNotFound},
	{services.ErrProductNotFound, http.StatusNotFound},
	{services.ErrOrderNotFound, http.StatusNotFound},
	{services.ErrPromotionNotFound, http.StatusNotFound},
	{services.ErrReviewNotFound, http.StatusNotFound},
	{services.ErrInvalidEmail, http.StatusBadRequest},
	{services.ErrWeakPassword, http.StatusBadRequest},
	{services.ErrInvalidCode, http.StatusBadRequest},
	{services.ErrEmptyCart, http.StatusBadRequest},
	{services.ErrOutOfStock, http.StatusBadRequest},
	{services.ErrInvalidProduct, http.StatusBadRequest},
	{services.ErrInvalidPromotion, http.StatusBadRequest},
	{services.ErrInvalidRating, http.StatusBadRequest},
	{services.ErrMailDispatch, http.StatusBadGateway},
}

// respondWithError maps a service error onto a status code. Storage and
// unexpected errors are logged and answered with a generic 500.
func respondWithError(ctx *gin.Context, err error) {
	for _, e := range errorStatuses {
		if !errors.Is(err, e.err) {
			continue
		}
		message := e.err.Error()
		if e.err == services.ErrInsufficientStock {
			message = err.Error()
		}
		if e.status >= http.StatusInternalServerError {
			logRequestError(ctx, err)
		}
		sendErrorResponse(ctx, e.status, message)
		return
	}

	logRequestError(ctx, err)
	sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
}

func logRequestError(ctx *gin.Context, err error) {
	utils.Error("request failed", map[string]any{
		"requestId": ctx.GetString(middlewares.RequestIDKey),
		"method":    ctx.Request.Method,
		"path":      ctx.FullPath(),
		"error":     err.Error(),
	})
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil || id == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse "+param)
		return 0, false
	}
	return uint(id), true
}

// claimsOrAbort returns the caller's claims; handlers behind RequireAuth always have them.
func claimsOrAbort(ctx *gin.Context) (*services.Claims, bool) {
	claims := middlewares.CurrentClaims(ctx)
	if claims == nil {
		respondWithError(ctx, services.ErrNotAuthenticated)
		return nil, false
	}
	return claims, true
}
