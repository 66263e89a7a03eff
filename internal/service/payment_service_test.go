package service

import (
	"errors"
	"testing"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/models"
)

func TestPaymentAmountFollowsOrderTotal(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")
	order, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	payment, err := s.payments.Create(0, PaymentInput{OrderID: order.ID, PaymentMethod: constants.PaymentMethodCreditCard})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if !payment.AmountToPay.Equal(order.TotalAmount) {
		t.Fatalf("amount to pay %s should equal order total %s", payment.AmountToPay, order.TotalAmount)
	}
	if payment.CustomerID != fx.customer.ID {
		t.Fatalf("payment should inherit order customer")
	}
	if payment.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("default payment status should be pending, got %s", payment.PaymentStatus)
	}

	second, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 5})
	if err != nil {
		t.Fatalf("create second order failed: %v", err)
	}
	moved, err := s.payments.Update(payment.ID, 0, PaymentInput{OrderID: second.ID})
	if err != nil {
		t.Fatalf("update payment failed: %v", err)
	}
	if !moved.AmountToPay.Equal(models.NewMoneyFromInt(125)) {
		t.Fatalf("amount should rebind to new order total, got %s", moved.AmountToPay)
	}
}

func TestPaymentValidation(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")
	other := s.seedCatalog(t, "2")
	order, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := s.payments.Create(0, PaymentInput{OrderID: 999, PaymentMethod: constants.PaymentMethodPayPal}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order should fail, got %v", err)
	}
	if _, err := s.payments.Create(0, PaymentInput{OrderID: order.ID, PaymentMethod: "Cheque"}); !errors.Is(err, ErrPaymentMethodInvalid) {
		t.Fatalf("bad method should fail, got %v", err)
	}
	if _, err := s.payments.Create(0, PaymentInput{OrderID: order.ID, PaymentMethod: constants.PaymentMethodPayPal, PaymentStatus: "Lost"}); !errors.Is(err, ErrPaymentStatusInvalid) {
		t.Fatalf("bad status should fail, got %v", err)
	}
	if _, err := s.payments.Create(0, PaymentInput{OrderID: order.ID, CustomerID: other.customer.ID, PaymentMethod: constants.PaymentMethodPayPal}); !errors.Is(err, ErrPaymentCustomerMismatch) {
		t.Fatalf("customer mismatch should fail, got %v", err)
	}
	if _, err := s.payments.Create(other.customer.ID, PaymentInput{OrderID: order.ID, PaymentMethod: constants.PaymentMethodPayPal}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("customer should not pay foreign order, got %v", err)
	}
}

func TestCompletedPaymentMarksOrderPaid(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")
	order, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	payment, err := s.payments.Create(fx.customer.ID, PaymentInput{OrderID: order.ID, PaymentMethod: constants.PaymentMethodDebitCard})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	reloaded, _ := s.orders.Get(order.ID, 0)
	if reloaded.Status != constants.OrderStatusPending {
		t.Fatalf("pending payment should not change order, got %s", reloaded.Status)
	}

	if _, err := s.payments.Update(payment.ID, 0, PaymentInput{PaymentStatus: constants.PaymentStatusCompleted}); err != nil {
		t.Fatalf("complete payment failed: %v", err)
	}
	reloaded, _ = s.orders.Get(order.ID, 0)
	if reloaded.Status != constants.OrderStatusPaid {
		t.Fatalf("completed payment should mark order paid, got %s", reloaded.Status)
	}

	if _, err := s.payments.Update(payment.ID, 0, PaymentInput{PaymentStatus: constants.PaymentStatusRefunded}); err != nil {
		t.Fatalf("refund payment failed: %v", err)
	}
	reloaded, _ = s.orders.Get(order.ID, 0)
	if reloaded.Status != constants.OrderStatusCancelled {
		t.Fatalf("refund should cancel paid order, got %s", reloaded.Status)
	}
}

func TestCustomerCannotSettlePayment(t *testing.T) {
	s := newTestServices(t)
	fx := s.seedCatalog(t, "1")
	order, err := s.orders.CreateOrder(OrderInput{CustomerID: fx.customer.ID, ProductID: fx.product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := s.payments.Create(fx.customer.ID, PaymentInput{OrderID: order.ID, PaymentMethod: constants.PaymentMethodPayPal, PaymentStatus: constants.PaymentStatusCompleted}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("customer should not create completed payment, got %v", err)
	}
	payment, err := s.payments.Create(fx.customer.ID, PaymentInput{OrderID: order.ID, PaymentMethod: constants.PaymentMethodPayPal})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	for _, status := range []string{constants.PaymentStatusCompleted, constants.PaymentStatusRefunded} {
		if _, err := s.payments.Update(payment.ID, fx.customer.ID, PaymentInput{PaymentStatus: status}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("customer should not set %s, got %v", status, err)
		}
	}
	reloaded, _ := s.orders.Get(order.ID, 0)
	if reloaded.Status != constants.OrderStatusPending {
		t.Fatalf("order should stay pending, got %s", reloaded.Status)
	}

	failed, err := s.payments.Update(payment.ID, fx.customer.ID, PaymentInput{PaymentStatus: constants.PaymentStatusFailed})
	if err != nil {
		t.Fatalf("customer should be able to mark payment failed: %v", err)
	}
	if failed.PaymentStatus != constants.PaymentStatusFailed {
		t.Fatalf("expected failed status, got %s", failed.PaymentStatus)
	}

	if _, err := s.payments.Update(payment.ID, 0, PaymentInput{PaymentStatus: constants.PaymentStatusCompleted}); err != nil {
		t.Fatalf("admin complete payment failed: %v", err)
	}
	if _, err := s.payments.Update(payment.ID, fx.customer.ID, PaymentInput{PaymentMethod: constants.PaymentMethodDebitCard}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("customer should not edit settled payment, got %v", err)
	}
}
