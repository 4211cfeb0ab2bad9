package controllers

import (
	"net/http"

	"github.com/Kariqs/amexan-store/models"
	"github.com/gin-gonic/gin"
)

func (c *Controller) GetProducts(ctx *gin.Context) {
	products, err := c.Catalog.Products(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

func (c *Controller) GetProduct(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	product, err := c.Catalog.Product(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"product": product})
}

func (c *Controller) CreateProduct(ctx *gin.Context) {
	var data models.ProductData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := c.Catalog.CreateProduct(ctx.Request.Context(), data)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"product": product})
}

func (c *Controller) UpdateProduct(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var data models.ProductData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := c.Catalog.UpdateProduct(ctx.Request.Context(), id, data)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"product": product})
}

func (c *Controller) DeleteProduct(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.Catalog.DeleteProduct(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted successfully."})
}

func (c *Controller) GetPromotions(ctx *gin.Context) {
	promotions, err := c.Catalog.Promotions(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"promotions": promotions})
}

func (c *Controller) CreatePromotion(ctx *gin.Context) {
	var data models.PromotionData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	promotion, err := c.Catalog.CreatePromotion(ctx.Request.Context(), data)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"promotion": promotion})
}

func (c *Controller) DeletePromotion(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.Catalog.DeletePromotion(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Promotion deleted successfully."})
}
