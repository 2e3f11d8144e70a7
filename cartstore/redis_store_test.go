package cartstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFinder serves a small fixed catalog.
type stubFinder struct {
	products map[uint]struct {
		name  string
		price float64
	}
}

func (f *stubFinder) FindProduct(_ context.Context, id uint) (string, string, float64, error) {
	p, ok := f.products[id]
	if !ok {
		return "", "", 0, ErrProductNotFound
	}
	return p.name, fmt.Sprintf("/images/%d.jpg", id), p.price, nil
}

func setupGuestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	finder := &stubFinder{products: map[uint]struct {
		name  string
		price float64
	}{
		1: {"Gold Ring", 25000},
		2: {"Silver Pendant", 5000},
	}}

	return NewRedisStore(client, finder, 24*time.Hour), mr
}

func TestRedisStore_AddItem_MergesByProduct(t *testing.T) {
	store, _ := setupGuestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "g1", 1, 1)
	require.NoError(t, err)
	cart, err := store.AddItem(ctx, "g1", 1, 2)
	require.NoError(t, err)

	// add(P, q1) then add(P, q2) → one line with q1+q2
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 3, cart.Count())
	assert.Equal(t, 75000.0, cart.Subtotal())
}

func TestRedisStore_AddItem_SnapshotsPrice(t *testing.T) {
	store, _ := setupGuestStore(t)
	ctx := context.Background()

	cart, err := store.AddItem(ctx, "g1", 2, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Silver Pendant", cart.Items[0].Name)
	assert.Equal(t, 5000.0, cart.Items[0].Price)

	// A later catalog price change must not move the stored line.
	store.finder.(*stubFinder).products[2] = struct {
		name  string
		price float64
	}{"Silver Pendant", 9999}

	cart, err = store.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, cart.Items[0].Price)
}

func TestRedisStore_AddItem_UnknownProduct(t *testing.T) {
	store, _ := setupGuestStore(t)

	_, err := store.AddItem(context.Background(), "g1", 99, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRedisStore_SetQuantity(t *testing.T) {
	store, _ := setupGuestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "g1", 1, 5)
	require.NoError(t, err)

	// Replaces, not adds.
	cart, err := store.SetQuantity(ctx, "g1", "1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	// qty 0 removes the line entirely.
	cart, err = store.SetQuantity(ctx, "g1", "1", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, 0.0, cart.Subtotal())
}

func TestRedisStore_SetQuantity_UnknownItem(t *testing.T) {
	store, _ := setupGuestStore(t)

	_, err := store.SetQuantity(context.Background(), "g1", "42", 3)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRedisStore_RemoveItem(t *testing.T) {
	store, _ := setupGuestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "g1", 1, 1)
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "g1", 2, 1)
	require.NoError(t, err)

	cart, err := store.RemoveItem(ctx, "g1", "1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].ProductID)
}

func TestRedisStore_Clear(t *testing.T) {
	store, mr := setupGuestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "g1", 1, 1)
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx, "g1"))

	assert.False(t, mr.Exists("guestcart:g1"))

	cart, err := store.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRedisStore_DocumentExpires(t *testing.T) {
	store, mr := setupGuestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "g1", 1, 1)
	require.NoError(t, err)

	mr.FastForward(25 * time.Hour)

	cart, err := store.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRedisStore_InvariantAfterOpSequence(t *testing.T) {
	store, _ := setupGuestStore(t)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "g1", 1, 2)
	require.NoError(t, err)
	_, err = store.AddItem(ctx, "g1", 2, 1)
	require.NoError(t, err)
	_, err = store.SetQuantity(ctx, "g1", "2", 4)
	require.NoError(t, err)
	cart, err := store.RemoveItem(ctx, "g1", "1")
	require.NoError(t, err)

	// count and subtotal are recomputed from the lines, so they hold
	// after any sequence of mutations.
	assert.Equal(t, 4, cart.Count())
	assert.Equal(t, 20000.0, cart.Subtotal())
}
