package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cart-it/internal/config"
	"github.com/cart-it/internal/constants"
	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/provider"
	"github.com/cart-it/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type adminFixture struct {
	Customer1ID uint
	Customer2ID uint
	CategoryID  uint
	ProductID   uint
	Order1ID    uint
	Order2ID    uint
}

type responsePaginationAssert struct {
	Total int64 `json:"total"`
}

func setupAdminHandlerTest(t *testing.T) (*Handler, adminFixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := handlershared.RegisterValidators(); err != nil {
		t.Fatalf("register validators failed: %v", err)
	}

	dsn := fmt.Sprintf("file:admin_handler_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateDB(db); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{
		JWT: config.JWTConfig{SecretKey: "admin-handler-secret", ExpireHours: 1},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 8},
		},
	}
	h := New(provider.NewContainerWithDB(cfg, db, nil))

	customer1, err := h.CustomerService.Create(service.CustomerInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret123",
		City:      "London",
	})
	if err != nil {
		t.Fatalf("create customer1 failed: %v", err)
	}
	customer2, err := h.CustomerService.Create(service.CustomerInput{
		FirstName: "Alan",
		Email:     "alan@example.com",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("create customer2 failed: %v", err)
	}
	seller, err := h.SellerService.Create(service.SellerInput{
		CompanyName: "Engines Ltd",
		Email:       "engines@example.com",
		Password:    "secret123",
	})
	if err != nil {
		t.Fatalf("create seller failed: %v", err)
	}
	category, err := h.CategoryService.Create(service.CategoryInput{Name: "Machines"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product, err := h.ProductService.Create(service.ProductInput{
		Name:       "Difference Engine",
		Price:      models.NewMoneyFromInt(40),
		Stock:      10,
		CategoryID: category.ID,
		SellerID:   seller.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	order1, err := h.OrderService.CreateOrder(service.OrderInput{CustomerID: customer1.ID, ProductID: product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create order1 failed: %v", err)
	}
	order2, err := h.OrderService.CreateOrder(service.OrderInput{CustomerID: customer2.ID, ProductID: product.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("create order2 failed: %v", err)
	}

	return h, adminFixture{
		Customer1ID: customer1.ID,
		Customer2ID: customer2.ID,
		CategoryID:  category.ID,
		ProductID:   product.ID,
		Order1ID:    order1.ID,
		Order2ID:    order2.ID,
	}
}

func newAdminContext(method, url string, body interface{}, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, url, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	return c, w
}

func idParam(id uint) gin.Param {
	return gin.Param{Key: "id", Value: fmt.Sprintf("%d", id)}
}

func TestCreatePaymentMarksOrderPaidWithoutQueue(t *testing.T) {
	h, fx := setupAdminHandlerTest(t)

	c, w := newAdminContext(http.MethodPost, "/admin/payments", gin.H{
		"order_id":       fx.Order1ID,
		"payment_method": constants.PaymentMethodCreditCard,
		"payment_status": constants.PaymentStatusCompleted,
	})
	h.CreatePayment(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("status want 201 got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			CustomerID  uint   `json:"customer_id"`
			AmountToPay string `json:"amount_to_pay"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Data.CustomerID != fx.Customer1ID {
		t.Fatalf("customer_id want %d got %d", fx.Customer1ID, resp.Data.CustomerID)
	}
	if resp.Data.AmountToPay != "40.00" {
		t.Fatalf("amount_to_pay want 40.00 got %s", resp.Data.AmountToPay)
	}

	order, err := h.OrderService.Get(fx.Order1ID, unscoped)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if order.Status != constants.OrderStatusPaid {
		t.Fatalf("order status want %s got %s", constants.OrderStatusPaid, order.Status)
	}
}

func TestCreatePaymentUnknownOrder(t *testing.T) {
	h, _ := setupAdminHandlerTest(t)

	c, w := newAdminContext(http.MethodPost, "/admin/payments", gin.H{
		"order_id":       9999,
		"payment_method": constants.PaymentMethodCreditCard,
	})
	h.CreatePayment(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d", w.Code)
	}
}

func TestListPaymentsFiltersByCustomer(t *testing.T) {
	h, fx := setupAdminHandlerTest(t)
	for _, orderID := range []uint{fx.Order1ID, fx.Order2ID} {
		if _, err := h.PaymentService.Create(unscoped, service.PaymentInput{
			OrderID:       orderID,
			PaymentMethod: constants.PaymentMethodPayPal,
		}); err != nil {
			t.Fatalf("create payment failed: %v", err)
		}
	}

	url := fmt.Sprintf("/admin/payments?customer_id=%d&page=1&page_size=20", fx.Customer2ID)
	c, w := newAdminContext(http.MethodGet, url, nil)
	h.ListPayments(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		StatusCode int                      `json:"status_code"`
		Pagination responsePaginationAssert `json:"pagination"`
		Data       []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d", resp.StatusCode)
	}
	if resp.Pagination.Total != 1 || len(resp.Data) != 1 {
		t.Fatalf("want exactly one payment, total=%d len=%d", resp.Pagination.Total, len(resp.Data))
	}
	if orderID, _ := resp.Data[0]["order_id"].(float64); uint(orderID) != fx.Order2ID {
		t.Fatalf("order_id want %d got %v", fx.Order2ID, resp.Data[0]["order_id"])
	}
}

func TestDeleteCategoryInUse(t *testing.T) {
	h, fx := setupAdminHandlerTest(t)

	c, w := newAdminContext(http.MethodDelete, "/admin/categories", nil, idParam(fx.CategoryID))
	h.DeleteCategory(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d", w.Code)
	}
	if _, err := h.CategoryService.Get(fx.CategoryID); err != nil {
		t.Fatalf("category should survive: %v", err)
	}
}

func TestDeleteMissingOrderNotFound(t *testing.T) {
	h, _ := setupAdminHandlerTest(t)

	c, w := newAdminContext(http.MethodDelete, "/admin/orders", nil, idParam(4242))
	h.DeleteOrder(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status want 404 got %d", w.Code)
	}
}

func TestGetOrderInvalidID(t *testing.T) {
	h, _ := setupAdminHandlerTest(t)

	c, w := newAdminContext(http.MethodGet, "/admin/orders/abc", nil, gin.Param{Key: "id", Value: "abc"})
	h.GetOrder(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d", w.Code)
	}
}

func TestUpdateCustomerPartial(t *testing.T) {
	h, fx := setupAdminHandlerTest(t)

	c, w := newAdminContext(http.MethodPatch, "/admin/customers", gin.H{"phone": "555-0101"}, idParam(fx.Customer1ID))
	h.UpdateCustomer(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d: %s", w.Code, w.Body.String())
	}
	customer, err := h.CustomerService.Get(fx.Customer1ID)
	if err != nil {
		t.Fatalf("reload customer failed: %v", err)
	}
	if customer.Phone != "555-0101" {
		t.Fatalf("phone want 555-0101 got %s", customer.Phone)
	}
	if customer.FirstName != "Ada" || customer.City != "London" || customer.Email != "ada@example.com" {
		t.Fatalf("untouched fields changed: %+v", customer)
	}
}

func TestUpdateOrderRejectsUnknownStatus(t *testing.T) {
	h, fx := setupAdminHandlerTest(t)

	c, w := newAdminContext(http.MethodPut, "/admin/orders", gin.H{"status": "Lost"}, idParam(fx.Order1ID))
	h.UpdateOrder(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d", w.Code)
	}
}
