package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/controllers/order"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/middleware"
)

// SetupOrderRoutes registers the /api/orders endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, deps Deps) {
	orders := api.Group("/orders", middleware.ValidateToken)
	{
		orders.POST("", orderControllers.PlaceOrder(deps.Orders, deps.UserCarts, deps.Publisher, deps.OrderHub))
		orders.GET("/user", orderControllers.GetUserOrders(deps.Orders))
		orders.GET("/:id", orderControllers.GetOrderByID(deps.Orders))
	}

	adminOrders := api.Group("/orders", middleware.ValidateToken, middleware.RequireAdmin)
	{
		adminOrders.GET("/all/orders", orderControllers.GetAllOrders(deps.Orders))
		adminOrders.PUT("/:id/status", orderControllers.UpdateOrderStatus(deps.Orders, deps.Publisher, deps.OrderHub))
		adminOrders.GET("/ws/orders", deps.OrderHub.Handler())
		adminOrders.GET("/export/excel", orderControllers.ExportOrdersToExcel(deps.Orders))
	}
}
