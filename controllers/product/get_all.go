package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
)

// GET /api/products?limit=&featured=&sort=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if c.Query("featured") == "true" {
			query = query.Where("featured = ?", true)
		}

		switch c.Query("sort") {
		case "price-low":
			query = query.Order("price ASC")
		case "price-high":
			query = query.Order("price DESC")
		case "newest":
			query = query.Order("created_at DESC")
		}

		if limitStr := c.Query("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			if limit > 0 {
				query = query.Limit(limit)
			}
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
	}
}
