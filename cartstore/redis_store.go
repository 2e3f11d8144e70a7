package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProductFinder resolves a product id against the catalog so guest
// lines can snapshot name and price at add time.
type ProductFinder interface {
	FindProduct(ctx context.Context, productID uint) (name, image string, price float64, err error)
}

// RedisStore persists guest carts as JSON documents keyed by guest id.
// Prices are snapshots: a catalog price change after add does not move
// an existing guest line. Documents expire with the guest session.
type RedisStore struct {
	client *redis.Client
	finder ProductFinder
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, finder ProductFinder, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, finder: finder, ttl: ttl}
}

type guestCartDoc struct {
	GuestID   string         `json:"guest_id"`
	Items     []guestLineDoc `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type guestLineDoc struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Price     float64   `json:"price"` // snapshot at add time
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

func (s *RedisStore) Get(ctx context.Context, guestID string) (*Cart, error) {
	doc, err := s.load(ctx, guestID)
	if err != nil {
		return nil, err
	}
	return docToView(guestID, doc), nil
}

func (s *RedisStore) AddItem(ctx context.Context, guestID string, productID uint, qty int) (*Cart, error) {
	if qty < 1 {
		qty = 1
	}

	name, image, price, err := s.finder.FindProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	doc, err := s.load(ctx, guestID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range doc.Items {
		if doc.Items[i].ProductID == productID {
			doc.Items[i].Quantity += qty
			doc.Items[i].AddedAt = time.Now()
			merged = true
			break
		}
	}
	if !merged {
		doc.Items = append(doc.Items, guestLineDoc{
			ProductID: productID,
			Name:      name,
			Image:     image,
			Price:     price,
			Quantity:  qty,
			AddedAt:   time.Now(),
		})
	}

	if err := s.save(ctx, guestID, doc); err != nil {
		return nil, err
	}
	return docToView(guestID, doc), nil
}

func (s *RedisStore) SetQuantity(ctx context.Context, guestID, itemID string, qty int) (*Cart, error) {
	if qty <= 0 {
		return s.RemoveItem(ctx, guestID, itemID)
	}

	productID, err := parseGuestItemID(itemID)
	if err != nil {
		return nil, err
	}

	doc, err := s.load(ctx, guestID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range doc.Items {
		if doc.Items[i].ProductID == productID {
			doc.Items[i].Quantity = qty
			found = true
			break
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}

	if err := s.save(ctx, guestID, doc); err != nil {
		return nil, err
	}
	return docToView(guestID, doc), nil
}

func (s *RedisStore) RemoveItem(ctx context.Context, guestID, itemID string) (*Cart, error) {
	productID, err := parseGuestItemID(itemID)
	if err != nil {
		return nil, err
	}

	doc, err := s.load(ctx, guestID)
	if err != nil {
		return nil, err
	}

	kept := doc.Items[:0]
	removed := false
	for _, l := range doc.Items {
		if l.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return nil, ErrItemNotFound
	}
	doc.Items = kept

	if err := s.save(ctx, guestID, doc); err != nil {
		return nil, err
	}
	return docToView(guestID, doc), nil
}

func (s *RedisStore) Clear(ctx context.Context, guestID string) error {
	if err := s.client.Del(ctx, cartKey(guestID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (s *RedisStore) load(ctx context.Context, guestID string) (*guestCartDoc, error) {
	data, err := s.client.Get(ctx, cartKey(guestID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &guestCartDoc{GuestID: guestID, Items: []guestLineDoc{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var doc guestCartDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal guest cart failed: %w", err)
	}
	return &doc, nil
}

func (s *RedisStore) save(ctx context.Context, guestID string, doc *guestCartDoc) error {
	doc.GuestID = guestID
	doc.UpdatedAt = time.Now()

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal guest cart failed: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(guestID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cartKey(guestID string) string {
	return fmt.Sprintf("guestcart:%s", guestID)
}

// Guest line ids are the product id: redis lines have no row id of
// their own.
func parseGuestItemID(itemID string) (uint, error) {
	id, err := strconv.ParseUint(itemID, 10, 64)
	if err != nil {
		return 0, ErrItemNotFound
	}
	return uint(id), nil
}

func docToView(guestID string, doc *guestCartDoc) *Cart {
	view := &Cart{OwnerID: guestID, Items: make([]Line, 0, len(doc.Items))}
	for _, l := range doc.Items {
		view.Items = append(view.Items, Line{
			ItemID:    strconv.FormatUint(uint64(l.ProductID), 10),
			ProductID: l.ProductID,
			Name:      l.Name,
			Image:     l.Image,
			Price:     l.Price,
			Quantity:  l.Quantity,
			AddedAt:   l.AddedAt,
		})
	}
	return view
}
