// Package cartstore holds the cart aggregate behind a single Store
// interface with two backends: gorm-persisted carts for authenticated
// users and redis-persisted carts for guest sessions. The backend is
// picked at construction time, never per call.
package cartstore

import (
	"context"
	"errors"
	"time"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("cart item not found")
)

// Line is one (product, quantity) pairing in a cart. For user carts
// Name/Image/Price are live-joined from the catalog on every read;
// for guest carts they are snapshots captured at add time.
type Line struct {
	ItemID    string    `json:"itemId"`
	ProductID uint      `json:"productId"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

type Cart struct {
	OwnerID string `json:"ownerId"`
	Items   []Line `json:"items"`
}

// Count is the total quantity across all lines.
func (c *Cart) Count() int {
	var n int
	for _, l := range c.Items {
		n += l.Quantity
	}
	return n
}

// Subtotal sums price times quantity across all lines.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.Items {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

type Store interface {
	// Get returns the owner's cart; an owner with no cart yet gets an
	// empty one.
	Get(ctx context.Context, ownerID string) (*Cart, error)

	// AddItem merges qty into an existing line for the product or
	// appends a new line. At most one line per product ever exists.
	AddItem(ctx context.Context, ownerID string, productID uint, qty int) (*Cart, error)

	// SetQuantity replaces a line's quantity. qty <= 0 removes the
	// line entirely.
	SetQuantity(ctx context.Context, ownerID, itemID string, qty int) (*Cart, error)

	// RemoveItem deletes a line by its item id.
	RemoveItem(ctx context.Context, ownerID, itemID string) (*Cart, error)

	// Clear empties the cart.
	Clear(ctx context.Context, ownerID string) error
}
