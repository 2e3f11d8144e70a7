package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/cache"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
)

// PUT /api/products/:id (admin)
func UpdateProduct(db *gorm.DB, productCache *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validateEnums(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
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

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.Category = input.Category
		product.SubCategory = input.SubCategory
		product.MetalType = input.MetalType
		product.Purity = input.Purity
		product.Weight = input.Weight
		product.Images = pq.StringArray(input.Images)
		product.Specifications = input.Specifications
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		product.Featured = input.Featured

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		if productCache != nil {
			if err := productCache.Invalidate(c.Request.Context(), product.ID); err != nil {
				zap.L().Warn("product cache invalidate failed", zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}
