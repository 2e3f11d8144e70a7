// Package cache is a redis read-through cache for product detail
// reads. The catalog is read-mostly, so entries live for a few
// minutes and are invalidated on admin writes.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
)

var ErrCacheMiss = errors.New("cache miss")

type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client, ttl: 5 * time.Minute}
}

func (p *ProductCache) Get(ctx context.Context, productID uint) (*models.Product, error) {
	data, err := p.client.Get(ctx, productKey(productID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("unmarshal product failed: %w", err)
	}
	return &product, nil
}

func (p *ProductCache) Set(ctx context.Context, product *models.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("marshal product failed: %w", err)
	}
	if err := p.client.Set(ctx, productKey(product.ID), data, p.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Invalidate drops the cached entry after an admin update or delete.
func (p *ProductCache) Invalidate(ctx context.Context, productID uint) error {
	if err := p.client.Del(ctx, productKey(productID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}
