package controllers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Kariqs/amexan-store/models"
	"github.com/Kariqs/amexan-store/stores"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 15
	maxPageLimit     = 100
	maxPage          = 1_000_000
	topProductsCount = 5
)

func (c *Controller) GetMyOrders(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}

	orders, err := c.Orders.History(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func (c *Controller) GetOrderById(ctx *gin.Context) {
	claims, ok := claimsOrAbort(ctx)
	if !ok {
		return
	}
	orderID, ok := parseID(ctx, "orderId")
	if !ok {
		return
	}

	order, err := c.Orders.Find(ctx.Request.Context(), claims, orderID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// GetOrders is the administrative search with pagination metadata.
func (c *Controller) GetOrders(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	page = min(page, maxPage)
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	limit = min(limit, maxPageLimit)

	status := models.OrderStatus(strings.ToUpper(ctx.Query("status")))
	if status != "" && !status.Valid() {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		return
	}

	query := stores.OrderQuery{
		Search:    strings.TrimSpace(ctx.Query("search")),
		Status:    status,
		Limit:     limit,
		Offset:    (page - 1) * limit,
		Ascending: ctx.DefaultQuery("sort", "desc") == "asc",
	}

	orders, count, err := c.Orders.Search(ctx.Request.Context(), query)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func (c *Controller) UpdateOrderStatus(ctx *gin.Context) {
	orderID, ok := parseID(ctx, "orderId")
	if !ok {
		return
	}

	var data models.OrderStatusData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	status := models.OrderStatus(strings.ToUpper(string(data.Status)))
	order, err := c.Orders.UpdateStatus(ctx.Request.Context(), orderID, status)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated successfully.", "order": order})
}

func (c *Controller) DeleteOrder(ctx *gin.Context) {
	orderID, ok := parseID(ctx, "orderId")
	if !ok {
		return
	}

	if err := c.Orders.Delete(ctx.Request.Context(), orderID); err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}

func (c *Controller) GetRevenueReport(ctx *gin.Context) {
	report, err := c.Orders.RevenueReport(ctx.Request.Context(), topProductsCount)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"report": report})
}
