package cartstore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
)

// GormStore persists one cart per authenticated user. Lines are
// live-joined against the products table, so price changes in the
// catalog show up in the cart immediately.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, userID string) (*Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Cart{OwnerID: userID, Items: []Line{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return toView(userID, cart.Items), nil
}

func (s *GormStore) AddItem(ctx context.Context, userID string, productID uint, qty int) (*Cart, error) {
	if qty < 1 {
		qty = 1
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// Created lazily on first add
	cart, err := s.ensureCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = s.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			CartID:    cart.CartID,
			ProductID: productID,
			Quantity:  qty,
			AddedAt:   time.Now(),
		}
		if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		// Additive merge: adding the same product twice grows the
		// existing line, never creates a second one.
		item.Quantity += qty
		item.AddedAt = time.Now()
		if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, userID)
}

func (s *GormStore) SetQuantity(ctx context.Context, userID, itemID string, qty int) (*Cart, error) {
	if qty <= 0 {
		return s.RemoveItem(ctx, userID, itemID)
	}

	cart, itemPK, err := s.findItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ? AND id = ?", cart.CartID, itemPK).
		Update("quantity", qty).Error; err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

func (s *GormStore) RemoveItem(ctx context.Context, userID, itemID string) (*Cart, error) {
	cart, itemPK, err := s.findItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).
		Where("cart_id = ? AND id = ?", cart.CartID, itemPK).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrItemNotFound
	}

	return s.Get(ctx, userID)
}

func (s *GormStore) Clear(ctx context.Context, userID string) error {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil // nothing to clear
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("cart_id = ?", cart.CartID).
		Delete(&models.CartItem{}).Error
}

func (s *GormStore) ensureCart(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := s.db.WithContext(ctx).Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *GormStore) findItem(ctx context.Context, userID, itemID string) (*models.Cart, uint, error) {
	itemPK, err := strconv.ParseUint(itemID, 10, 64)
	if err != nil {
		return nil, 0, ErrItemNotFound
	}

	var cart models.Cart
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrItemNotFound
		}
		return nil, 0, err
	}

	var item models.CartItem
	err = s.db.WithContext(ctx).
		Where("cart_id = ? AND id = ?", cart.CartID, itemPK).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, ErrItemNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	return &cart, uint(itemPK), nil
}

func toView(userID string, items []models.CartItem) *Cart {
	view := &Cart{OwnerID: userID, Items: make([]Line, 0, len(items))}
	for _, it := range items {
		image := ""
		if len(it.Product.Images) > 0 {
			image = it.Product.Images[0]
		}
		view.Items = append(view.Items, Line{
			ItemID:    strconv.FormatUint(uint64(it.ID), 10),
			ProductID: it.ProductID,
			Name:      it.Product.Name,
			Image:     image,
			Price:     it.Product.Price,
			Quantity:  it.Quantity,
			AddedAt:   it.AddedAt,
		})
	}
	return view
}
