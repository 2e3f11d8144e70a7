package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/cache"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/cartstore"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/config"
	orderControllers "github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/controllers/order"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/events"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/orderstore"
)

// Deps carries everything the route groups need. Built once in main.
type Deps struct {
	DB           *gorm.DB
	Config       *config.Config
	UserCarts    cartstore.Store
	GuestCarts   cartstore.Store
	Orders       orderstore.Store
	ProductCache *cache.ProductCache
	Publisher    events.Publisher
	OrderHub     *orderControllers.Hub
}

// SetupRoutes wires every route group under /api.
func SetupRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api")

	SetupAuthRoutes(api, deps)
	SetupProductRoutes(api, deps)
	SetupCartRoutes(api, deps)
	SetupOrderRoutes(api, deps)
}
