package orderControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/cartstore"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/events"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/orderstore"
)

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderStore) GetByIDOrRef(ctx context.Context, idOrRef string) (*models.Order, error) {
	args := m.Called(ctx, idOrRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateStatus(ctx context.Context, idOrRef string, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, idOrRef, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// clearSpyCart records Clear calls; every other operation is unused by
// the order handlers.
type clearSpyCart struct {
	cleared []string
}

func (s *clearSpyCart) Get(context.Context, string) (*cartstore.Cart, error) { return nil, nil }
func (s *clearSpyCart) AddItem(context.Context, string, uint, int) (*cartstore.Cart, error) {
	return nil, nil
}
func (s *clearSpyCart) SetQuantity(context.Context, string, string, int) (*cartstore.Cart, error) {
	return nil, nil
}
func (s *clearSpyCart) RemoveItem(context.Context, string, string) (*cartstore.Cart, error) {
	return nil, nil
}
func (s *clearSpyCart) Clear(_ context.Context, owner string) error {
	s.cleared = append(s.cleared, owner)
	return nil
}

func setupOrderRouter(orders orderstore.Store, carts cartstore.Store, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	identity := func(c *gin.Context) {
		c.Set("user_id", "u1")
		c.Set("role", role)
		c.Next()
	}

	hub := NewHub()
	publisher := events.NopPublisher{}

	r := gin.New()
	g := r.Group("/api/orders", identity)
	{
		g.POST("", PlaceOrder(orders, carts, publisher, hub))
		g.GET("/user", GetUserOrders(orders))
		g.GET("/all/orders", GetAllOrders(orders))
		g.GET("/:id", GetOrderByID(orders))
		g.PUT("/:id/status", UpdateOrderStatus(orders, publisher, hub))
	}
	return r
}

func postJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validOrderPayload() gin.H {
	return gin.H{
		"items": []gin.H{
			{"productId": 1, "name": "Gold Ring", "price": 25000.0, "quantity": 2},
		},
		"totalAmount": 51500.0,
		"shippingAddress": gin.H{
			"fullName": "Asha Verma",
			"phone":    "9876543210",
			"street":   "12 MG Road",
			"city":     "Pune",
			"state":    "Maharashtra",
			"zipCode":  "411001",
			"country":  "India",
		},
		"paymentMethod": "cod",
	}
}

func TestPlaceOrder_PersistsSubmittedTotalAndClearsCart(t *testing.T) {
	orders := new(MockOrderStore)
	carts := &clearSpyCart{}

	var created models.Order
	orders.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
		Run(func(args mock.Arguments) {
			created = *args.Get(1).(*models.Order)
		}).
		Return(nil)

	r := setupOrderRouter(orders, carts, string(models.RoleCustomer))
	w := postJSON(t, r, http.MethodPost, "/api/orders", validOrderPayload())

	require.Equal(t, http.StatusCreated, w.Code)
	orders.AssertExpectations(t)

	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, 51500.0, created.TotalAmount)
	assert.Equal(t, models.OrderStatusConfirmed, created.Status)
	assert.NotEmpty(t, created.OrderRef)
	require.Len(t, created.Items, 1)
	assert.Equal(t, 2, created.Items[0].Quantity)

	assert.Equal(t, []string{"u1"}, carts.cleared)
}

func TestPlaceOrder_AcceptsMismatchedTotal(t *testing.T) {
	orders := new(MockOrderStore)
	carts := &clearSpyCart{}

	var created models.Order
	orders.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
		Run(func(args mock.Arguments) {
			created = *args.Get(1).(*models.Order)
		}).
		Return(nil)

	payload := validOrderPayload()
	payload["totalAmount"] = 1.0 // far from the 3% quote; still accepted

	r := setupOrderRouter(orders, carts, string(models.RoleCustomer))
	w := postJSON(t, r, http.MethodPost, "/api/orders", payload)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1.0, created.TotalAmount)
}

func TestPlaceOrder_RejectsEmptyItems(t *testing.T) {
	orders := new(MockOrderStore)
	payload := validOrderPayload()
	payload["items"] = []gin.H{}

	r := setupOrderRouter(orders, &clearSpyCart{}, string(models.RoleCustomer))
	w := postJSON(t, r, http.MethodPost, "/api/orders", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrder_RejectsUnknownPaymentMethod(t *testing.T) {
	orders := new(MockOrderStore)
	payload := validOrderPayload()
	payload["paymentMethod"] = "cheque"

	r := setupOrderRouter(orders, &clearSpyCart{}, string(models.RoleCustomer))
	w := postJSON(t, r, http.MethodPost, "/api/orders", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderByID_OwnerAndAdminOnly(t *testing.T) {
	order := &models.Order{ID: 7, OrderRef: "ref-7", UserID: "someone-else"}

	orders := new(MockOrderStore)
	orders.On("GetByIDOrRef", mock.Anything, "7").Return(order, nil)

	r := setupOrderRouter(orders, &clearSpyCart{}, string(models.RoleCustomer))
	w := postJSON(t, r, http.MethodGet, "/api/orders/7", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = setupOrderRouter(orders, &clearSpyCart{}, string(models.RoleAdmin))
	w = postJSON(t, r, http.MethodGet, "/api/orders/7", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetOrderByID_NotFound(t *testing.T) {
	orders := new(MockOrderStore)
	orders.On("GetByIDOrRef", mock.Anything, "404").Return(nil, orderstore.ErrOrderNotFound)

	r := setupOrderRouter(orders, &clearSpyCart{}, string(models.RoleCustomer))
	w := postJSON(t, r, http.MethodGet, "/api/orders/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserOrders(t *testing.T) {
	orders := new(MockOrderStore)
	orders.On("ListByUser", mock.Anything, "u1").Return([]models.Order{
		{ID: 1, UserID: "u1"}, {ID: 2, UserID: "u1"},
	}, nil)

	r := setupOrderRouter(orders, &clearSpyCart{}, string(models.RoleCustomer))
	w := postJSON(t, r, http.MethodGet, "/api/orders/user", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
}

// Status moves are unrestricted: delivered back to pending is allowed.
func TestUpdateOrderStatus_AnyTransitionAllowed(t *testing.T) {
	orders := new(MockOrderStore)
	orders.On("UpdateStatus", mock.Anything, "7", models.OrderStatusPending).
		Return(&models.Order{ID: 7, UserID: "u1", Status: models.OrderStatusPending}, nil)

	r := setupOrderRouter(orders, &clearSpyCart{}, string(models.RoleAdmin))
	w := postJSON(t, r, http.MethodPut, "/api/orders/7/status", gin.H{"status": "pending"})

	require.Equal(t, http.StatusOK, w.Code)
	orders.AssertExpectations(t)
}

func TestUpdateOrderStatus_UnknownStatus(t *testing.T) {
	orders := new(MockOrderStore)

	r := setupOrderRouter(orders, &clearSpyCart{}, string(models.RoleAdmin))
	w := postJSON(t, r, http.MethodPut, "/api/orders/7/status", gin.H{"status": "teleported"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatus_CaseInsensitive(t *testing.T) {
	orders := new(MockOrderStore)
	orders.On("UpdateStatus", mock.Anything, "7", models.OrderStatusShipped).
		Return(&models.Order{ID: 7, Status: models.OrderStatusShipped}, nil)

	r := setupOrderRouter(orders, &clearSpyCart{}, string(models.RoleAdmin))
	w := postJSON(t, r, http.MethodPut, "/api/orders/7/status", gin.H{"status": "Shipped"})

	assert.Equal(t, http.StatusOK, w.Code)
}
