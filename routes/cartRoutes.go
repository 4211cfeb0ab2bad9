package routes

import (
	"github.com/Kariqs/amexan-store/controllers"
	"github.com/Kariqs/amexan-store/middlewares"
	"github.com/Kariqs/amexan-store/services"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, c *controllers.Controller, guard *services.Guard) {
	cart := server.Group("/cart", middlewares.RequireAuth(guard))
	{
		cart.GET("", c.GetCart)
		cart.POST("/items", c.AddCartItem)
		cart.DELETE("/items/:productId", c.RemoveCartItem)
		cart.DELETE("", c.ClearCart)
	}

	server.POST("/checkout", middlewares.RequireAuth(guard), c.CheckoutCart)

	wishlist := server.Group("/wishlist", middlewares.RequireAuth(guard))
	{
		wishlist.GET("", c.GetWishlist)
		wishlist.POST("/:productId", c.AddToWishlist)
		wishlist.DELETE("/:productId", c.RemoveFromWishlist)
	}
}
