package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/controllers/cart"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/middleware"
)

// SetupCartRoutes registers the authenticated /api/cart endpoints and
// their /api/guest/cart mirror. Both groups share one handler set; the
// backing store and owner resolution differ.
func SetupCartRoutes(api *gin.RouterGroup, deps Deps) {
	cart := api.Group("/cart", middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCart(deps.UserCarts, cartControllers.UserOwner))
		cart.GET("/summary", cartControllers.CartSummary(deps.UserCarts, cartControllers.UserOwner))
		cart.POST("/add", cartControllers.AddItem(deps.UserCarts, cartControllers.UserOwner))
		cart.PUT("/update/:itemId", cartControllers.UpdateItem(deps.UserCarts, cartControllers.UserOwner))
		cart.DELETE("/remove/:itemId", cartControllers.RemoveItem(deps.UserCarts, cartControllers.UserOwner))
		cart.DELETE("/clear", cartControllers.ClearCart(deps.UserCarts, cartControllers.UserOwner))
	}

	guest := api.Group("/guest/cart")
	{
		guest.GET("", cartControllers.GetCart(deps.GuestCarts, cartControllers.GuestOwner))
		guest.GET("/summary", cartControllers.CartSummary(deps.GuestCarts, cartControllers.GuestOwner))
		guest.POST("/add", cartControllers.AddItem(deps.GuestCarts, cartControllers.GuestOwner))
		guest.PUT("/update/:itemId", cartControllers.UpdateItem(deps.GuestCarts, cartControllers.GuestOwner))
		guest.DELETE("/remove/:itemId", cartControllers.RemoveItem(deps.GuestCarts, cartControllers.GuestOwner))
		guest.DELETE("/clear", cartControllers.ClearCart(deps.GuestCarts, cartControllers.GuestOwner))
	}
}
