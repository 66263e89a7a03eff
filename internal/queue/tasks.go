package queue

import (
	"encoding/json"

	"github.com/cart-it/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskPaymentRecorded 支付记录落库后的订单状态同步任务
	TaskPaymentRecorded = constants.TaskPaymentRecorded
	// TaskInventoryLowStock 下单后的低库存检查任务
	TaskInventoryLowStock = constants.TaskInventoryLowStock
)

// PaymentRecordedPayload 支付记录任务载荷
type PaymentRecordedPayload struct {
	PaymentID     uint   `json:"payment_id"`
	OrderID       uint   `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
}

// LowStockPayload 低库存检查任务载荷
type LowStockPayload struct {
	ProductID uint `json:"product_id"`
	OrderID   uint `json:"order_id,omitempty"`
}

// NewPaymentRecordedTask 创建支付记录任务
func NewPaymentRecordedTask(payload PaymentRecordedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPaymentRecorded, body), nil
}

// NewLowStockTask 创建低库存检查任务
func NewLowStockTask(payload LowStockPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInventoryLowStock, body), nil
}
