// Package pricing turns a cart subtotal into a priced order draft.
// Pure arithmetic; it touches no store.
package pricing

// TaxRate is the flat GST surcharge applied to every order,
// regardless of jurisdiction or item category.
const TaxRate = 0.03

// ShippingCost is flat free shipping. The storefront copy advertises
// "free shipping above ₹10,000" but no threshold has ever been
// implemented; shipping is unconditionally zero.
const ShippingCost = 0.0

type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// QuoteSubtotal prices a subtotal: tax = subtotal * 3%, shipping = 0,
// total = subtotal + tax + shipping.
func QuoteSubtotal(subtotal float64) Quote {
	tax := subtotal * TaxRate
	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: ShippingCost,
		Total:    subtotal + tax + ShippingCost,
	}
}

// Line is the minimal shape of a priced line item.
type Line struct {
	Price    float64
	Quantity int
}

// QuoteLines prices a set of line items.
func QuoteLines(lines []Line) Quote {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Price * float64(l.Quantity)
	}
	return QuoteSubtotal(subtotal)
}
