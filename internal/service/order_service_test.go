package service

import (
	"errors"
	"testing"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/models"
)

func TestCreateOrderUsesProductPrice(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")

	order, err := s.orders.CreateOrder(OrderInput{
		CustomerID: fx.customer.ID,
		ProductID:  fx.product.ID,
		Quantity:   3,
		UnitPrice:  models.NewMoneyFromInt(1),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !order.UnitPrice.Equal(models.NewMoneyFromInt(25)) {
		t.Fatalf("unit price should come from product, got %s", order.UnitPrice)
	}
	if !order.TotalAmount.Equal(models.NewMoneyFromInt(75)) {
		t.Fatalf("total should be price x quantity, got %s", order.TotalAmount)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("default status should be pending, got %s", order.Status)
	}
	if order.OrderDate.IsZero() {
		t.Fatalf("order date should default to now")
	}
	if len(order.Products) != 1 || order.Products[0].ID != fx.product.ID {
		t.Fatalf("product should be linked through order_products: %+v", order.Products)
	}
}

func TestCreateOrderRejectsTotalMismatch(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")

	_, err := s.orders.CreateOrder(OrderInput{
		CustomerID:  fx.customer.ID,
		ProductID:   fx.product.ID,
		Quantity:    2,
		TotalAmount: models.NewMoneyFromInt(10),
	})
	if !errors.Is(err, ErrOrderTotalMismatch) {
		t.Fatalf("expected total mismatch, got %v", err)
	}
	var mismatch *OrderTotalMismatchError
	if !errors.As(err, &mismatch) || mismatch.Expected.String() != "50.00" || mismatch.Given.String() != "10.00" {
		t.Fatalf("mismatch should carry amounts: %+v", mismatch)
	}

	order, err := s.orders.CreateOrder(OrderInput{
		CustomerID:  fx.customer.ID,
		ProductID:   fx.product.ID,
		Quantity:    2,
		TotalAmount: models.NewMoneyFromInt(50),
	})
	if err != nil {
		t.Fatalf("matching total should pass: %v", err)
	}
	if !order.TotalAmount.Equal(models.NewMoneyFromInt(50)) {
		t.Fatalf("unexpected total %s", order.TotalAmount)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")

	cases := []struct {
		name  string
		input OrderInput
		want  error
	}{
		{"zero quantity", OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID}, ErrQuantityInvalid},
		{"missing product", OrderInput{CustomerID: fx.customer.ID, ProductID: 999, Quantity: 1}, ErrProductNotFound},
		{"missing customer", OrderInput{CustomerID: 999, ProductID: fx.product.ID, Quantity: 1}, ErrCustomerNotFound},
		{"bad status", OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 1, Status: "Lost"}, ErrOrderStatusInvalid},
	}
	for _, tc := range cases {
		if _, err := s.orders.CreateOrder(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: want %v got %v", tc.name, tc.want, err)
		}
	}
}

func TestUpdateOrderRepricesOnQuantityChange(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")
	order, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 1, ShippingAddress: "1 Loop"})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	updated, err := s.orders.UpdateOrder(order.ID, 0, OrderInput{Quantity: 4})
	if err != nil {
		t.Fatalf("update order failed: %v", err)
	}
	if updated.Quantity != 4 || !updated.TotalAmount.Equal(models.NewMoneyFromInt(100)) {
		t.Fatalf("quantity change should reprice: %+v", updated)
	}
	if updated.ShippingAddress != "1 Loop" {
		t.Fatalf("untouched field changed: %s", updated.ShippingAddress)
	}

	if _, err := s.orders.UpdateOrder(order.ID, 0, OrderInput{Quantity: 2, TotalAmount: models.NewMoneyFromInt(1)}); !errors.Is(err, ErrOrderTotalMismatch) {
		t.Fatalf("expected mismatch on update, got %v", err)
	}
}

func TestPaidOrderCannotBeRepriced(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")
	order, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	payment, err := s.payments.Create(0, PaymentInput{
		OrderID:       order.ID,
		PaymentMethod: constants.PaymentMethodPayPal,
		PaymentStatus: constants.PaymentStatusCompleted,
	})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}

	if _, err := s.orders.UpdateOrder(order.ID, fx.customer.ID, OrderInput{Quantity: 4}); !errors.Is(err, ErrOrderLocked) {
		t.Fatalf("customer should not reprice paid order, got %v", err)
	}
	if _, err := s.orders.UpdateOrder(order.ID, 0, OrderInput{Quantity: 4}); !errors.Is(err, ErrOrderLocked) {
		t.Fatalf("admin should not reprice paid order, got %v", err)
	}
	reloaded, err := s.orders.Get(order.ID, 0)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.Quantity != 1 || !reloaded.TotalAmount.Equal(models.NewMoneyFromInt(25)) {
		t.Fatalf("paid order should keep its total: %+v", reloaded)
	}
	stored, err := s.payments.Get(payment.ID, 0)
	if err != nil {
		t.Fatalf("reload payment failed: %v", err)
	}
	if !stored.AmountToPay.Equal(reloaded.TotalAmount) {
		t.Fatalf("amount to pay %s should equal order total %s", stored.AmountToPay, reloaded.TotalAmount)
	}

	// 非改价字段仍可修改
	shipped, err := s.orders.UpdateOrder(order.ID, 0, OrderInput{Status: constants.OrderStatusShipped})
	if err != nil || shipped.Status != constants.OrderStatusShipped {
		t.Fatalf("ship paid order failed: %v %+v", err, shipped)
	}
}

func TestRepricingRebindsPendingPayments(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")
	order, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	payment, err := s.payments.Create(fx.customer.ID, PaymentInput{OrderID: order.ID, PaymentMethod: constants.PaymentMethodPayPal})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}

	updated, err := s.orders.UpdateOrder(order.ID, fx.customer.ID, OrderInput{Quantity: 4})
	if err != nil {
		t.Fatalf("update order failed: %v", err)
	}
	if !updated.TotalAmount.Equal(models.NewMoneyFromInt(100)) {
		t.Fatalf("total want 100.00 got %s", updated.TotalAmount)
	}
	stored, err := s.payments.Get(payment.ID, 0)
	if err != nil {
		t.Fatalf("reload payment failed: %v", err)
	}
	if !stored.AmountToPay.Equal(updated.TotalAmount) {
		t.Fatalf("pending payment should follow new total, got %s", stored.AmountToPay)
	}
}

func TestUpdateOrderPartialLeavesOtherFields(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")
	order, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 2, ShippingAddress: "old"})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	updated, err := s.orders.UpdateOrder(order.ID, 0, OrderInput{ShippingAddress: "new"})
	if err != nil {
		t.Fatalf("update order failed: %v", err)
	}
	if updated.ShippingAddress != "new" {
		t.Fatalf("shipping address not updated")
	}
	if updated.Quantity != 2 || updated.Status != order.Status || !updated.TotalAmount.Equal(order.TotalAmount) || updated.CustomerID != order.CustomerID {
		t.Fatalf("partial update changed other fields: before=%+v after=%+v", order, updated)
	}
}

func TestCustomerCanOnlyCancelOwnOrder(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")
	other := s.seedCatalog(t, "2")
	order, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := s.orders.UpdateOrder(order.ID, fx.customer.ID, OrderInput{Status: constants.OrderStatusShipped}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("customer should not ship, got %v", err)
	}
	if _, err := s.orders.UpdateOrder(order.ID, other.customer.ID, OrderInput{Status: constants.OrderStatusCancelled}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other customer should not see order, got %v", err)
	}
	cancelled, err := s.orders.UpdateOrder(order.ID, fx.customer.ID, OrderInput{Status: constants.OrderStatusCancelled})
	if err != nil || cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("cancel failed: %v %+v", err, cancelled)
	}
}

func TestDeleteOrderRemovesPayments(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")
	order, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := s.payments.Create(0, PaymentInput{OrderID: order.ID, PaymentMethod: constants.PaymentMethodPayPal}); err != nil {
		t.Fatalf("create payment failed: %v", err)
	}

	if err := s.orders.Delete(order.ID, 0); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}
	var payments int64
	s.db.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&payments)
	if payments != 0 {
		t.Fatalf("payments should be removed with order, got %d", payments)
	}
	if err := s.orders.Delete(order.ID, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleting missing order should be not found, got %v", err)
	}
}
