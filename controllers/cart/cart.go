package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/cartstore"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/metrics"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/pricing"
)

// ownerResolver extracts the cart owner from the request. The user
// resolver reads the authenticated identity; the guest resolver reads
// the guest_id query param. Resolvers write their own error response
// and return false on failure.
type ownerResolver func(c *gin.Context) (string, bool)

// UserOwner resolves the authenticated user id set by the token
// middleware.
func UserOwner(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

type AddItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateItemInput struct {
	// Pointer so an explicit zero (meaning "remove") survives binding.
	Quantity *int `json:"quantity" binding:"required"`
}

func cartResponse(cart *cartstore.Cart) gin.H {
	return gin.H{
		"items":    cart.Items,
		"count":    cart.Count(),
		"subtotal": cart.Subtotal(),
	}
}

func writeStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cartstore.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, cartstore.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
	default:
		zap.L().Error("cart store error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

// GET /api/cart
func GetCart(store cartstore.Store, resolve ownerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := resolve(c)
		if !ok {
			return
		}

		cart, err := store.Get(c.Request.Context(), ownerID)
		if err != nil {
			writeStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// POST /api/cart/add
func AddItem(store cartstore.Store, resolve ownerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := resolve(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		qty := input.Quantity
		if qty == 0 {
			qty = 1
		}

		cart, err := store.AddItem(c.Request.Context(), ownerID, input.ProductID, qty)
		if err != nil {
			writeStoreError(c, err)
			return
		}

		metrics.CartWritesTotal.WithLabelValues("add").Inc()
		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// PUT /api/cart/update/:itemId
func UpdateItem(store cartstore.Store, resolve ownerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := resolve(c)
		if !ok {
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := store.SetQuantity(c.Request.Context(), ownerID, c.Param("itemId"), *input.Quantity)
		if err != nil {
			writeStoreError(c, err)
			return
		}

		metrics.CartWritesTotal.WithLabelValues("update").Inc()
		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// DELETE /api/cart/remove/:itemId
func RemoveItem(store cartstore.Store, resolve ownerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := resolve(c)
		if !ok {
			return
		}

		cart, err := store.RemoveItem(c.Request.Context(), ownerID, c.Param("itemId"))
		if err != nil {
			writeStoreError(c, err)
			return
		}

		metrics.CartWritesTotal.WithLabelValues("remove").Inc()
		c.JSON(http.StatusOK, cartResponse(cart))
	}
}

// DELETE /api/cart/clear
func ClearCart(store cartstore.Store, resolve ownerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := resolve(c)
		if !ok {
			return
		}

		if err := store.Clear(c.Request.Context(), ownerID); err != nil {
			writeStoreError(c, err)
			return
		}

		metrics.CartWritesTotal.WithLabelValues("clear").Inc()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /api/cart/summary
//
// Priced order draft for the checkout page: subtotal, flat 3% tax,
// free shipping, total.
func CartSummary(store cartstore.Store, resolve ownerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := resolve(c)
		if !ok {
			return
		}

		cart, err := store.Get(c.Request.Context(), ownerID)
		if err != nil {
			writeStoreError(c, err)
			return
		}

		quote := pricing.QuoteSubtotal(cart.Subtotal())
		c.JSON(http.StatusOK, gin.H{
			"count":    cart.Count(),
			"subtotal": quote.Subtotal,
			"tax":      quote.Tax,
			"shipping": quote.Shipping,
			"total":    quote.Total,
		})
	}
}
