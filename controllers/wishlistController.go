package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (c *Controller) GetWishlist(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}

	products, err := c.Wishlist.List(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

func (c *Controller) AddToWishlist(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}
	productID, ok := parseID(ctx, "productId")
	if !ok {
		return
	}

	added, err := c.Wishlist.Add(ctx.Request.Context(), claims.UserID, productID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if !added {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Already on your wishlist."})
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Added to wishlist."})
}

func (c *Controller) RemoveFromWishlist(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}
	productID, ok := parseID(ctx, "productId")
	if !ok {
		return
	}

	if err := c.Wishlist.Remove(ctx.Request.Context(), claims.UserID, productID); err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Removed from wishlist."})
}
