package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cart-it/internal/config"
	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/provider"
	"github.com/cart-it/internal/queue"
	"github.com/cart-it/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type workerFixture struct {
	consumer *Consumer
	order    *models.Order
	product  *models.Product
}

func setupWorkerTest(t *testing.T) workerFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
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
		JWT:       config.JWTConfig{SecretKey: "worker-secret", ExpireHours: 1},
		Inventory: config.InventoryConfig{LowStockCheckEnabled: true, SweepIntervalMinutes: 5},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 8},
		},
	}
	c := provider.NewContainerWithDB(cfg, db, nil)

	customer, err := c.CustomerService.Create(service.CustomerInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	seller, err := c.SellerService.Create(service.SellerInput{
		CompanyName: "Cobol Books",
		Email:       "cobol@example.com",
		Password:    "secret123",
	})
	if err != nil {
		t.Fatalf("create seller failed: %v", err)
	}
	category, err := c.CategoryService.Create(service.CategoryInput{Name: "Manuals"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product, err := c.ProductService.Create(service.ProductInput{
		Name:       "Compiler Notes",
		Price:      models.NewMoneyFromInt(12),
		Stock:      3,
		CategoryID: category.ID,
		SellerID:   seller.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	order, err := c.OrderService.CreateOrder(service.OrderInput{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   2,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return workerFixture{consumer: NewConsumer(c), order: order, product: product}
}

func newTask(t *testing.T, taskType string, payload interface{}) *asynq.Task {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	return asynq.NewTask(taskType, body)
}

func TestHandlePaymentRecordedMarksOrderPaid(t *testing.T) {
	fx := setupWorkerTest(t)
	c := fx.consumer

	payment := &models.Payment{
		OrderID:       fx.order.ID,
		CustomerID:    fx.order.CustomerID,
		AmountToPay:   fx.order.TotalAmount,
		PaymentMethod: constants.PaymentMethodCreditCard,
		PaymentStatus: constants.PaymentStatusCompleted,
		PaymentDate:   time.Now(),
	}
	if err := c.PaymentRepo.Create(payment); err != nil {
		t.Fatalf("create payment failed: %v", err)
	}

	task := newTask(t, queue.TaskPaymentRecorded, queue.PaymentRecordedPayload{
		PaymentID:     payment.ID,
		OrderID:       fx.order.ID,
		PaymentStatus: payment.PaymentStatus,
	})
	if err := c.handlePaymentRecorded(context.Background(), task); err != nil {
		t.Fatalf("handle payment recorded failed: %v", err)
	}

	order, err := c.OrderRepo.GetByID(fx.order.ID)
	if err != nil || order == nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if order.Status != constants.OrderStatusPaid {
		t.Fatalf("order status want %s, got %s", constants.OrderStatusPaid, order.Status)
	}
}

func TestHandlePaymentRecordedSkipsMissingPayment(t *testing.T) {
	fx := setupWorkerTest(t)
	task := newTask(t, queue.TaskPaymentRecorded, queue.PaymentRecordedPayload{PaymentID: 9999})
	if err := fx.consumer.handlePaymentRecorded(context.Background(), task); err != nil {
		t.Fatalf("missing payment should be skipped, got %v", err)
	}
}

func TestHandlePaymentRecordedRejectsBadPayload(t *testing.T) {
	fx := setupWorkerTest(t)
	task := asynq.NewTask(queue.TaskPaymentRecorded, []byte("{not-json"))
	if err := fx.consumer.handlePaymentRecorded(context.Background(), task); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestLowStockHandlerAndSweep(t *testing.T) {
	fx := setupWorkerTest(t)
	c := fx.consumer

	if got := c.SweepLowStock(); got != 0 {
		t.Fatalf("sweep without inventory want 0, got %d", got)
	}
	if _, err := c.InventoryService.Create(0, service.InventoryInput{
		ProductID:    fx.product.ID,
		CurrentStock: 1,
		MinimumStock: 5,
	}); err != nil {
		t.Fatalf("create inventory failed: %v", err)
	}

	task := newTask(t, queue.TaskInventoryLowStock, queue.LowStockPayload{ProductID: fx.product.ID, OrderID: fx.order.ID})
	if err := c.handleLowStock(context.Background(), task); err != nil {
		t.Fatalf("handle low stock failed: %v", err)
	}
	if got := c.SweepLowStock(); got != 1 {
		t.Fatalf("sweep want 1 alert, got %d", got)
	}
	if got := c.sweepInterval(); got != 5*time.Minute {
		t.Fatalf("sweep interval want 5m, got %s", got)
	}

	c.Config.Inventory.LowStockCheckEnabled = false
	if got := c.SweepLowStock(); got != 0 {
		t.Fatalf("disabled sweep want 0, got %d", got)
	}
}

func TestNewServiceRequiresEnabledQueue(t *testing.T) {
	if _, err := NewService(&config.QueueConfig{Enabled: false}, &Consumer{}); err == nil {
		t.Fatalf("expected disabled queue to fail")
	}
	if _, err := NewService(&config.QueueConfig{Enabled: true}, nil); err == nil {
		t.Fatalf("expected nil consumer to fail")
	}
}
