package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
)

// GET /api/products/search?q=
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Search query required"})
			return
		}

		likePattern := "%" + q + "%"
		var products []models.Product
		if err := db.
			Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
	}
}

// GET /api/products/category/:category
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")

		var products []models.Product
		if err := db.
			Where("category ILIKE ?", category).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
	}
}

// GET /api/products/filter?category=&metalType=&priceRange=min-max
func FilterProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if category := c.Query("category"); category != "" {
			query = query.Where("category ILIKE ?", category)
		}
		if metalType := c.Query("metalType"); metalType != "" {
			query = query.Where("metal_type ILIKE ?", metalType)
		}
		if priceRange := c.Query("priceRange"); priceRange != "" {
			min, max, ok := parsePriceRange(priceRange)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priceRange, expected min-max"})
				return
			}
			query = query.Where("price >= ? AND price <= ?", min, max)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
	}
}

func parsePriceRange(s string) (float64, float64, bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	if min > max {
		return 0, 0, false
	}
	return min, max, true
}
