package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/controllers/auth"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/middleware"
)

// SetupAuthRoutes registers the /api/auth endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, deps Deps) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(deps.DB, deps.Config.Auth.TokenTTL))
		authGroup.POST("/login", authControllers.Login(deps.DB, deps.Config.Auth.TokenTTL))
		authGroup.POST("/logout", authControllers.Logout())
		authGroup.POST("/guest", authControllers.CreateGuestSession(deps.Config.Auth.GuestTTL))

		authGroup.GET("/profile", middleware.ValidateToken, authControllers.Profile(deps.DB))
	}
}
