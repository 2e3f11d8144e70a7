package orderControllers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/cartstore"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/events"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/metrics"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/orderstore"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/pricing"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint    `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

type ShippingAddressInput struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Street   string `json:"street" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	ZipCode  string `json:"zipCode" binding:"required"`
	Country  string `json:"country" binding:"required"`
}

type PlaceOrderRequest struct {
	Items           []OrderItemInput     `json:"items" binding:"required,min=1,dive"`
	TotalAmount     float64              `json:"totalAmount" binding:"required,gt=0"`
	ShippingAddress ShippingAddressInput `json:"shippingAddress" binding:"required"`
	PaymentMethod   string               `json:"paymentMethod" binding:"required,oneof=cod online card upi"`
	OrderNotes      string               `json:"orderNotes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Unique order reference, e.g. 20250908130500-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handlers --------

// POST /api/orders
//
// The submitted totalAmount is trusted as-is: the server recomputes
// its own quote from the submitted lines and logs a warning on
// disagreement, but persists the client's figure. Stock is neither
// checked nor decremented. The cart clear is a separate write after
// the insert; if it fails the order still stands and the failure is
// only logged.
func PlaceOrder(orders orderstore.Store, carts cartstore.Store, publisher events.Publisher, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		lines := make([]pricing.Line, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, models.OrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Image:     it.Image,
				Price:     it.Price,
				Quantity:  it.Quantity,
			})
			lines = append(lines, pricing.Line{Price: it.Price, Quantity: it.Quantity})
		}

		quote := pricing.QuoteLines(lines)
		if math.Abs(quote.Total-req.TotalAmount) > 0.01 {
			metrics.OrderTotalMismatchTotal.Inc()
			zap.L().Warn("submitted order total disagrees with server quote",
				zap.String("user_id", userID),
				zap.Float64("submitted", req.TotalAmount),
				zap.Float64("quoted", quote.Total))
		}

		order := models.Order{
			OrderRef:    generateOrderRef(),
			UserID:      userID,
			Items:       items,
			TotalAmount: req.TotalAmount,
			ShippingAddress: models.ShippingAddress{
				FullName: req.ShippingAddress.FullName,
				Phone:    req.ShippingAddress.Phone,
				Street:   req.ShippingAddress.Street,
				City:     req.ShippingAddress.City,
				State:    req.ShippingAddress.State,
				ZipCode:  req.ShippingAddress.ZipCode,
				Country:  req.ShippingAddress.Country,
			},
			PaymentMethod: models.PaymentMethod(req.PaymentMethod),
			OrderNotes:    req.OrderNotes,
			Status:        models.OrderStatusConfirmed,
			CreatedAt:     time.Now(),
		}

		if err := orders.Create(c.Request.Context(), &order); err != nil {
			zap.L().Error("order insert failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		// Separate write after the insert; a crash here leaves the
		// cart populated with the order already placed.
		if err := carts.Clear(c.Request.Context(), userID); err != nil {
			zap.L().Warn("cart clear after order failed",
				zap.String("user_id", userID),
				zap.String("order_ref", order.OrderRef),
				zap.Error(err))
		}

		metrics.OrdersCreatedTotal.Inc()
		hub.Broadcast(order)
		if err := publisher.Publish(c.Request.Context(), events.PatternOrderCreated, order); err != nil {
			zap.L().Warn("order event publish failed", zap.Error(err))
		}

		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

// GET /api/orders/user
func GetUserOrders(orders orderstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		list, err := orders.ListByUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": len(list), "orders": list})
	}
}

// GET /api/orders/:id
func GetOrderByID(orders orderstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.GetByIDOrRef(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, orderstore.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		// Owner or admin only.
		if order.UserID != c.GetString("user_id") && c.GetString("role") != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// GET /api/orders/all/orders (admin)
func GetAllOrders(orders orderstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": len(list), "orders": list})
	}
}

// PUT /api/orders/:id/status (admin)
//
// Any known status may be set from any current status; there are no
// transition guards.
func UpdateOrderStatus(orders orderstore.Store, publisher events.Publisher, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, ok := models.ParseOrderStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + req.Status})
			return
		}

		order, err := orders.UpdateStatus(c.Request.Context(), c.Param("id"), status)
		if err != nil {
			if errors.Is(err, orderstore.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		metrics.OrderStatusUpdatesTotal.WithLabelValues(string(status)).Inc()
		hub.Broadcast(*order)
		if err := publisher.Publish(c.Request.Context(), events.PatternOrderStatusChanged, order); err != nil {
			zap.L().Warn("order event publish failed", zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}
