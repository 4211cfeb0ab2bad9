package routes

import (
	"github.com/Kariqs/amexan-store/controllers"
	"github.com/Kariqs/amexan-store/middlewares"
	"github.com/Kariqs/amexan-store/services"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine, c *controllers.Controller, guard *services.Guard) {
	requireAuth := middlewares.RequireAuth(guard)
	requireAdmin := middlewares.RequireAdmin(guard)

	server.GET("/product", c.GetProducts)
	server.GET("/product/:id", c.GetProduct)
	server.GET("/product/:id/reviews", c.GetReviews)
	server.POST("/product/:id/reviews", requireAuth, c.CreateReview)

	server.POST("/product", requireAuth, requireAdmin, c.CreateProduct)
	server.PUT("/product/:id", requireAuth, requireAdmin, c.UpdateProduct)
	server.DELETE("/product/:id", requireAuth, requireAdmin, c.DeleteProduct)

	promotion := server.Group("/promotion", requireAuth, requireAdmin)
	{
		promotion.GET("", c.GetPromotions)
		promotion.POST("", c.CreatePromotion)
		promotion.DELETE("/:id", c.DeletePromotion)
	}
}
