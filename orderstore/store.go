// Package orderstore is the persistence boundary for order snapshots.
package orderstore

import (
	"context"
	"errors"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
)

var ErrOrderNotFound = errors.New("order not found")

type Store interface {
	// Create persists a new order snapshot with its items.
	Create(ctx context.Context, order *models.Order) error

	// GetByIDOrRef looks an order up by numeric id or order ref.
	GetByIDOrRef(ctx context.Context, idOrRef string) (*models.Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)

	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]models.Order, error)

	// UpdateStatus sets the status field, the only admin-mutable part
	// of an order.
	UpdateStatus(ctx context.Context, idOrRef string, status models.OrderStatus) (*models.Order, error)
}
