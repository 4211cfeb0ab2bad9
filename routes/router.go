package routes

import (
	"time"

	"github.com/Kariqs/amexan-store/controllers"
	"github.com/Kariqs/amexan-store/middlewares"
	"github.com/Kariqs/amexan-store/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewServer builds the gin engine with every route registered.
func NewServer(c *controllers.Controller, guard *services.Guard, allowedOrigins []string) *gin.Engine {
	server := gin.New()
	server.Use(gin.Logger(), gin.Recovery(), middlewares.RequestID())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	DefaultRoutes(server)
	AuthRoutes(server, c, guard)
	ProductRoutes(server, c, guard)
	CartRoutes(server, c, guard)
	OrderRoutes(server, c, guard)
	return server
}
