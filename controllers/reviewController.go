package controllers

import (
	"net/http"

	"github.com/Kariqs/amexan-store/models"
	"github.com/gin-gonic/gin"
)

func (c *Controller) GetReviews(ctx *gin.Context) {
	productID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	reviews, err := c.Reviews.ForProduct(ctx.Request.Context(), productID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"reviews": reviews})
}

func (c *Controller) CreateReview(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}
	productID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var data models.ReviewData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	review, err := c.Reviews.Create(ctx.Request.Context(), claims.UserID, productID, data)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"review": review})
}

func (c *Controller) DeleteReview(ctx *gin.Context) {
	reviewID, ok := parseID(ctx, "reviewId")
	if !ok {
		return
	}

	if err := c.Reviews.Delete(ctx.Request.Context(), reviewID); err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Review deleted successfully."})
}
