package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteSubtotal(t *testing.T) {
	q := QuoteSubtotal(100000)

	assert.Equal(t, 100000.0, q.Subtotal)
	assert.Equal(t, 3000.0, q.Tax)
	assert.Equal(t, 0.0, q.Shipping)
	assert.Equal(t, 103000.0, q.Total)
}

func TestQuoteSubtotal_Zero(t *testing.T) {
	q := QuoteSubtotal(0)

	assert.Equal(t, 0.0, q.Subtotal)
	assert.Equal(t, 0.0, q.Tax)
	assert.Equal(t, 0.0, q.Total)
}

func TestQuoteSubtotal_NoFreeShippingThreshold(t *testing.T) {
	// Shipping stays zero below as well as above the ₹10,000 the UI
	// copy mentions; there is no threshold logic.
	assert.Equal(t, 0.0, QuoteSubtotal(500).Shipping)
	assert.Equal(t, 0.0, QuoteSubtotal(50000).Shipping)
}

func TestQuoteLines(t *testing.T) {
	q := QuoteLines([]Line{
		{Price: 20000, Quantity: 2},
		{Price: 10000, Quantity: 1},
	})

	// Cart with 2 items totalling ₹50,000 → order total ₹51,500.
	assert.Equal(t, 50000.0, q.Subtotal)
	assert.Equal(t, 1500.0, q.Tax)
	assert.Equal(t, 51500.0, q.Total)
}

func TestQuoteLines_Empty(t *testing.T) {
	q := QuoteLines(nil)
	assert.Equal(t, 0.0, q.Subtotal)
	assert.Equal(t, 0.0, q.Total)
}
