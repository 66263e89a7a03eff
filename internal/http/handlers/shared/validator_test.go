package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func TestEnumValidators(t *testing.T) {
	v := validator.New()
	if err := registerEnumValidators(v); err != nil {
		t.Fatalf("register validators failed: %v", err)
	}
	type payload struct {
		Status string `validate:"omitempty,order_status"`
		Method string `validate:"omitempty,payment_method"`
	}
	if err := v.Struct(payload{Status: "Paid", Method: "PayPal"}); err != nil {
		t.Fatalf("valid enum rejected: %v", err)
	}
	if err := v.Struct(payload{}); err != nil {
		t.Fatalf("empty values should pass: %v", err)
	}
	if err := v.Struct(payload{Status: "paid"}); err == nil {
		t.Fatalf("expected case-sensitive status to fail")
	}
	if err := v.Struct(payload{Method: "Cash"}); err == nil {
		t.Fatalf("expected unknown method to fail")
	}
}

func TestBindJSONMapsEnumTag(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		t.Fatalf("register validators failed: %v", err)
	}

	r := gin.New()
	r.POST("/orders", func(c *gin.Context) {
		var req OrderRequest
		if !BindJSON(c, &req) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": req.Status})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"status":"Lost"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Order status is invalid") {
		t.Fatalf("expected order status message, got %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"status":"Shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
}
