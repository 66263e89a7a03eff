package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/provider"
	"github.com/cart-it/internal/queue"
	"github.com/cart-it/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskPaymentRecorded, c.handlePaymentRecorded)
	mux.HandleFunc(queue.TaskInventoryLowStock, c.handleLowStock)
}

func (c *Consumer) handlePaymentRecorded(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_payment_recorded_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.PaymentRecordedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_payment_recorded_unmarshal_failed", "error", err)
		return err
	}
	if payload.PaymentID == 0 {
		logger.Debugw("worker_payment_recorded_skip_invalid_payload", "payment_id", payload.PaymentID)
		return nil
	}
	if c.Container == nil || c.PaymentService == nil {
		logger.Warnw("worker_payment_recorded_skip_service_nil", "payment_id", payload.PaymentID)
		return nil
	}
	if err := c.PaymentService.ApplyRecorded(payload.PaymentID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			logger.Debugw("worker_payment_recorded_skip_payment_not_found", "payment_id", payload.PaymentID)
			return nil
		case errors.Is(err, service.ErrOrderNotFound):
			logger.Debugw("worker_payment_recorded_skip_order_not_found",
				"payment_id", payload.PaymentID,
				"order_id", payload.OrderID,
			)
			return nil
		default:
			logger.Warnw("worker_payment_recorded_failed",
				"payment_id", payload.PaymentID,
				"order_id", payload.OrderID,
				"payment_status", payload.PaymentStatus,
				"error", err,
			)
			return err
		}
	}
	return nil
}

func (c *Consumer) handleLowStock(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_low_stock_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.LowStockPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_low_stock_unmarshal_failed", "error", err)
		return err
	}
	if payload.ProductID == 0 {
		logger.Debugw("worker_low_stock_skip_invalid_payload", "product_id", payload.ProductID)
		return nil
	}
	if !c.lowStockEnabled() {
		logger.Debugw("worker_low_stock_skip_disabled", "product_id", payload.ProductID)
		return nil
	}
	item, low, err := c.InventoryService.CheckLowStock(payload.ProductID)
	if err != nil {
		logger.Warnw("worker_low_stock_check_failed", "product_id", payload.ProductID, "error", err)
		return err
	}
	if !low {
		return nil
	}
	logger.Warnw("inventory_low_stock",
		"product_id", payload.ProductID,
		"order_id", payload.OrderID,
		"current_stock", item.CurrentStock,
		"minimum_stock", item.MinimumStock,
	)
	return nil
}

func (c *Consumer) lowStockEnabled() bool {
	if c == nil || c.Container == nil || c.InventoryService == nil {
		return false
	}
	return c.Config == nil || c.Config.Inventory.LowStockCheckEnabled
}
