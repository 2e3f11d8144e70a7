package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/cache"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/metrics"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
)

// GET /api/products/:id
//
// Detail reads go through the redis cache first; the catalog is
// read-mostly so a short TTL keeps the hot products off postgres.
func GetProductByID(db *gorm.DB, productCache *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		if productCache != nil {
			if cached, err := productCache.Get(c.Request.Context(), uint(id)); err == nil {
				metrics.ProductCacheHitsTotal.Inc()
				c.JSON(http.StatusOK, gin.H{"product": cached})
				return
			}
			metrics.ProductCacheMissesTotal.Inc()
		}

		var product models.Product
		if err := db.First(&product, "id = ?", uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		if productCache != nil {
			if err := productCache.Set(c.Request.Context(), &product); err != nil {
				zap.L().Warn("product cache set failed", zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}
