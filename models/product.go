package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Product categories and metal types are fixed enums; request
// validation rejects anything outside these sets.
var (
	ProductCategories = []string{"Rings", "Necklaces", "Earrings", "Bracelets", "Bangles", "Pendants", "Sets"}
	MetalTypes        = []string{"Gold", "Silver", "Platinum", "Rose Gold", "White Gold"}
)

type Product struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	Description    string         `gorm:"not null" json:"description"`
	Price          float64        `gorm:"not null;check:price >= 0" json:"price"`
	Category       string         `gorm:"type:VARCHAR(30);not null;index" json:"category"`
	SubCategory    string         `json:"subCategory,omitempty"`
	MetalType      string         `gorm:"type:VARCHAR(20);not null;index" json:"metalType"`
	Purity         string         `gorm:"not null" json:"purity"`
	Weight         float64        `gorm:"not null" json:"weight"`
	Images         pq.StringArray `gorm:"type:text[]" json:"images"`
	Specifications Specifications `gorm:"embedded;embeddedPrefix:spec_" json:"specifications"`
	Stock          int            `gorm:"default:1;check:stock >= 0" json:"stock"`
	Featured       bool           `gorm:"default:false;index" json:"featured"`
	Rating         float64        `gorm:"default:0" json:"rating"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// Specifications holds the jewellery-specific attributes shown on the
// product detail page.
type Specifications struct {
	GrossWeight  float64 `json:"grossWeight,omitempty"`
	NetWeight    float64 `json:"netWeight,omitempty"`
	StoneDetails string  `json:"stoneDetails,omitempty"`
	Dimensions   string  `json:"dimensions,omitempty"`
}

// ValidCategory reports whether c is one of the known categories,
// ignoring case.
func ValidCategory(c string) bool {
	return containsFold(ProductCategories, c)
}

// ValidMetalType reports whether m is one of the known metal types,
// ignoring case.
func ValidMetalType(m string) bool {
	return containsFold(MetalTypes, m)
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
