package cartstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_DerivedTotals(t *testing.T) {
	cart := &Cart{
		OwnerID: "u1",
		Items: []Line{
			{ProductID: 1, Price: 25000, Quantity: 2},
			{ProductID: 2, Price: 5000, Quantity: 3},
		},
	}

	assert.Equal(t, 5, cart.Count())
	assert.Equal(t, 65000.0, cart.Subtotal())
}

func TestCart_EmptyTotals(t *testing.T) {
	cart := &Cart{OwnerID: "u1", Items: []Line{}}

	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, 0.0, cart.Subtotal())
}
