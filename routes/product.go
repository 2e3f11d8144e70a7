package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/controllers/product"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/middleware"
)

// SetupProductRoutes registers the /api/products endpoints. Reads are
// public; writes and the export are admin-only.
func SetupProductRoutes(api *gin.RouterGroup, deps Deps) {
	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(deps.DB))
		products.GET("/search", productControllers.SearchProducts(deps.DB))
		products.GET("/filter", productControllers.FilterProducts(deps.DB))
		products.GET("/category/:category", productControllers.GetProductsByCategory(deps.DB))
		products.GET("/:id", productControllers.GetProductByID(deps.DB, deps.ProductCache))
	}

	adminProducts := api.Group("/products", middleware.ValidateToken, middleware.RequireAdmin)
	{
		adminProducts.POST("", productControllers.CreateProduct(deps.DB))
		adminProducts.PUT("/:id", productControllers.UpdateProduct(deps.DB, deps.ProductCache))
		adminProducts.DELETE("/:id", productControllers.DeleteProduct(deps.DB, deps.ProductCache))
		adminProducts.GET("/export/excel", productControllers.ExportProductsToExcel(deps.DB))
	}
}
