package cartstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
)

// GormProductFinder resolves guest-cart snapshots against the catalog
// table.
type GormProductFinder struct {
	db *gorm.DB
}

func NewGormProductFinder(db *gorm.DB) *GormProductFinder {
	return &GormProductFinder{db: db}
}

func (f *GormProductFinder) FindProduct(ctx context.Context, productID uint) (string, string, float64, error) {
	var product models.Product
	if err := f.db.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", 0, ErrProductNotFound
		}
		return "", "", 0, err
	}
	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	return product.Name, image, product.Price, nil
}
