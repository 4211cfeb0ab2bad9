package controllers

import (
	"net/http"

	"github.com/Kariqs/amexan-store/middlewares"
	"github.com/Kariqs/amexan-store/models"
	"github.com/gin-gonic/gin"
)

func (c *Controller) respondWithCart(ctx *gin.Context, userID uint) {
	view, err := c.Catalog.CartView(ctx.Request.Context(), c.Carts.For(userID))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": view})
}

func (c *Controller) GetCart(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}
	c.respondWithCart(ctx, claims.UserID)
}

func (c *Controller) AddCartItem(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}

	var data models.CartItemData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	product, err := c.Catalog.ForCart(ctx.Request.Context(), data.ProductID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	c.Carts.For(claims.UserID).AddItem(*product)
	c.respondWithCart(ctx, claims.UserID)
}

func (c *Controller) RemoveCartItem(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}
	productID, ok := parseID(ctx, "productId")
	if !ok {
		return
	}

	c.Carts.For(claims.UserID).RemoveItem(productID)
	c.respondWithCart(ctx, claims.UserID)
}

func (c *Controller) ClearCart(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}

	c.Carts.For(claims.UserID).Clear()
	c.respondWithCart(ctx, claims.UserID)
}

func (c *Controller) CheckoutCart(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}

	order, err := c.Checkout.Checkout(ctx.Request.Context(), middlewares.CurrentSession(ctx), c.Carts.For(claims.UserID))
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Order placed successfully.", "order": order})
}
