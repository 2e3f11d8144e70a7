package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
)

// ProductInput is the explicit schema for admin product writes.
// Request bodies are validated here before anything touches the
// store; unknown fields are dropped rather than merged in.
type ProductInput struct {
	Name           string                `json:"name" binding:"required"`
	Description    string                `json:"description" binding:"required"`
	Price          float64               `json:"price" binding:"required,gte=0"`
	Category       string                `json:"category" binding:"required"`
	SubCategory    string                `json:"subCategory"`
	MetalType      string                `json:"metalType" binding:"required"`
	Purity         string                `json:"purity" binding:"required"`
	Weight         float64               `json:"weight" binding:"required,gt=0"`
	Images         []string              `json:"images"`
	Specifications models.Specifications `json:"specifications"`
	Stock          *int                  `json:"stock" binding:"omitempty,gte=0"`
	Featured       bool                  `json:"featured"`
}

func (in *ProductInput) validateEnums() string {
	if !models.ValidCategory(in.Category) {
		return "Unknown category: " + in.Category
	}
	if !models.ValidMetalType(in.MetalType) {
		return "Unknown metal type: " + in.MetalType
	}
	return ""
}

func (in *ProductInput) toModel() models.Product {
	stock := 1
	if in.Stock != nil {
		stock = *in.Stock
	}
	return models.Product{
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Category:       in.Category,
		SubCategory:    in.SubCategory,
		MetalType:      in.MetalType,
		Purity:         in.Purity,
		Weight:         in.Weight,
		Images:         pq.StringArray(in.Images),
		Specifications: in.Specifications,
		Stock:          stock,
		Featured:       in.Featured,
	}
}

// POST /api/products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validateEnums(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		product := input.toModel()
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"product": product})
	}
}
