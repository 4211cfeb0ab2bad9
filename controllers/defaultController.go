package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Amexan Store API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/logout" - End the current session
- POST "/auth/forgot-password" - Request a password reset code
- POST "/auth/reset-password" - Reset password with the emailed code
- GET|PUT "/profile" - View or update your profile

PRODUCT
- GET "/product" - Get all products with current prices
- GET "/product/:id" - Get product by ID
- POST "/product" - Create product (admin)
- PUT|DELETE "/product/:id" - Update or delete product (admin)
- GET "/product/:id/reviews" - Get product reviews
- POST "/product/:id/reviews" - Review a product
- DELETE "/admin/reviews/:reviewId" - Delete review (admin)

PROMOTION
- GET|POST "/promotion" - List or create promotions (admin)
- DELETE "/promotion/:id" - Delete promotion (admin)

CART
- GET "/cart" - View cart
- POST "/cart/items" - Add one unit of a product
- DELETE "/cart/items/:productId" - Remove a product
- DELETE "/cart" - Empty the cart
- POST "/checkout" - Place an order from the cart

ORDER
- GET "/orders" - Get your orders
- GET "/orders/:orderId" - Get order by ID
- GET "/admin/orders" - Search all orders (admin)
- PATCH "/admin/orders/:orderId" - Update order status (admin)
- DELETE "/admin/orders/:orderId" - Delete order (admin)
- GET "/admin/reports/revenue" - Revenue report (admin)

WISHLIST
- GET "/wishlist" - Get wishlist
- POST|DELETE "/wishlist/:productId" - Add or remove a product`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
