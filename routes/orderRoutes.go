package routes

import (
	"github.com/Kariqs/amexan-store/controllers"
	"github.com/Kariqs/amexan-store/middlewares"
	"github.com/Kariqs/amexan-store/services"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, c *controllers.Controller, guard *services.Guard) {
	orders := server.Group("/orders", middlewares.RequireAuth(guard))
	{
		orders.GET("", c.GetMyOrders)
		orders.GET("/:orderId", c.GetOrderById)
	}

	admin := server.Group("/admin", middlewares.RequireAuth(guard), middlewares.RequireAdmin(guard))
	{
		admin.GET("/orders", c.GetOrders)
		admin.PATCH("/orders/:orderId", c.UpdateOrderStatus)
		admin.DELETE("/orders/:orderId", c.DeleteOrder)
		admin.GET("/reports/revenue", c.GetRevenueReport)
		admin.DELETE("/reviews/:reviewId", c.DeleteReview)
	}
}
