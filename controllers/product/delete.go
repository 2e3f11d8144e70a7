package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/cache"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
)

// DELETE /api/products/:id (admin)
func DeleteProduct(db *gorm.DB, productCache *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		result := db.Delete(&models.Product{}, "id = ?", uint(id))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if productCache != nil {
			if err := productCache.Invalidate(c.Request.Context(), uint(id)); err != nil {
				zap.L().Warn("product cache invalidate failed", zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
