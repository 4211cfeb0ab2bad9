package routes

import (
	"github.com/Kariqs/amexan-store/controllers"
	"github.com/Kariqs/amexan-store/middlewares"
	"github.com/Kariqs/amexan-store/services"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, c *controllers.Controller, guard *services.Guard) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", c.Signup)
		auth.POST("/login", c.Login)
		auth.POST("/logout", middlewares.RequireAuth(guard), c.Logout)
		auth.POST("/forgot-password", c.ForgotPassword)
		auth.POST("/reset-password", c.ResetPassword)
	}

	profile := server.Group("/profile", middlewares.RequireAuth(guard))
	{
		profile.GET("", c.GetProfile)
		profile.PUT("", c.UpdateProfile)
	}
}
