package service

import (
	"strings"
	"time"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/queue"
	"github.com/cart-it/internal/repository"
)

// customerPaymentStatuses 顾客可自行设置的支付状态，Completed 与 Refunded 仅管理员可设置
var customerPaymentStatuses = []string{
	constants.PaymentStatusPending,
	constants.PaymentStatusFailed,
}

// PaymentService 支付记录服务（只记录，不对接网关）
type PaymentService struct {
	repo        repository.PaymentRepository
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewPaymentService 创建支付服务
func NewPaymentService(repo repository.PaymentRepository, orderRepo repository.OrderRepository, queueClient *queue.Client) *PaymentService {
	return &PaymentService{repo: repo, orderRepo: orderRepo, queueClient: queueClient}
}

// PaymentInput 支付创建/更新输入
type PaymentInput struct {
	OrderID       uint
	CustomerID    uint
	PaymentMethod string
	PaymentStatus string
	PaymentDate   *time.Time
}

// List 支付列表
func (s *PaymentService) List(filter repository.PaymentListFilter) ([]models.Payment, int64, error) {
	return s.repo.List(filter)
}

// Get 获取支付记录，customerID 非零时只返回本人记录
func (s *PaymentService) Get(id, customerID uint) (*models.Payment, error) {
	var (
		payment *models.Payment
		err     error
	)
	if customerID == 0 {
		payment, err = s.repo.GetByID(id)
	} else {
		payment, err = s.repo.GetByIDAndCustomer(id, customerID)
	}
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrNotFound
	}
	return payment, nil
}

// Create 创建支付记录，应付金额始终取订单总额
func (s *PaymentService) Create(customerID uint, input PaymentInput) (*models.Payment, error) {
	method := strings.TrimSpace(input.PaymentMethod)
	if !constants.Contains(constants.PaymentMethods, method) {
		return nil, ErrPaymentMethodInvalid
	}
	status := strings.TrimSpace(input.PaymentStatus)
	if status == "" {
		status = constants.PaymentStatusPending
	}
	if !constants.Contains(constants.PaymentStatuses, status) {
		return nil, ErrPaymentStatusInvalid
	}
	if customerID != 0 && !constants.Contains(customerPaymentStatuses, status) {
		return nil, ErrForbidden
	}
	order, err := s.loadOrder(input.OrderID, customerID)
	if err != nil {
		return nil, err
	}
	payer, err := bindPaymentCustomer(order, input.CustomerID)
	if err != nil {
		return nil, err
	}

	paymentDate := time.Now()
	if input.PaymentDate != nil && !input.PaymentDate.IsZero() {
		paymentDate = *input.PaymentDate
	}
	payment := &models.Payment{
		OrderID:       order.ID,
		CustomerID:    payer,
		AmountToPay:   order.TotalAmount,
		PaymentMethod: method,
		PaymentStatus: status,
		PaymentDate:   paymentDate,
	}
	if err := s.repo.Create(payment); err != nil {
		return nil, err
	}
	logger.Infow("payment_recorded",
		"payment_id", payment.ID,
		"order_id", payment.OrderID,
		"payment_status", payment.PaymentStatus,
		"amount_to_pay", payment.AmountToPay.String(),
	)
	s.dispatchRecorded(payment)
	return payment, nil
}

// Update 部分更新支付记录并重新绑定订单总额
func (s *PaymentService) Update(id, customerID uint, input PaymentInput) (*models.Payment, error) {
	payment, err := s.Get(id, customerID)
	if err != nil {
		return nil, err
	}
	method := strings.TrimSpace(input.PaymentMethod)
	if method != "" && !constants.Contains(constants.PaymentMethods, method) {
		return nil, ErrPaymentMethodInvalid
	}
	status := strings.TrimSpace(input.PaymentStatus)
	if status != "" && !constants.Contains(constants.PaymentStatuses, status) {
		return nil, ErrPaymentStatusInvalid
	}
	// 已结算的支付只能由管理员处理
	if customerID != 0 {
		if !constants.Contains(customerPaymentStatuses, payment.PaymentStatus) {
			return nil, ErrForbidden
		}
		if status != "" && !constants.Contains(customerPaymentStatuses, status) {
			return nil, ErrForbidden
		}
	}

	orderID := payment.OrderID
	mergeID(&orderID, input.OrderID)
	order, err := s.loadOrder(orderID, customerID)
	if err != nil {
		return nil, err
	}
	requested := input.CustomerID
	if requested == 0 && orderID == payment.OrderID {
		requested = payment.CustomerID
	}
	payer, err := bindPaymentCustomer(order, requested)
	if err != nil {
		return nil, err
	}

	previousStatus := payment.PaymentStatus
	payment.OrderID = order.ID
	payment.CustomerID = payer
	payment.AmountToPay = order.TotalAmount
	mergeString(&payment.PaymentMethod, method)
	mergeString(&payment.PaymentStatus, status)
	if input.PaymentDate != nil && !input.PaymentDate.IsZero() {
		payment.PaymentDate = *input.PaymentDate
	}
	payment.Order = nil

	if err := s.repo.Update(payment); err != nil {
		return nil, err
	}
	if payment.PaymentStatus != previousStatus {
		s.dispatchRecorded(payment)
	}
	return payment, nil
}

// Delete 删除支付记录
func (s *PaymentService) Delete(id uint) error {
	if _, err := s.Get(id, 0); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// ApplyRecorded 根据支付状态同步订单状态（由队列任务或同步回退调用）
func (s *PaymentService) ApplyRecorded(paymentID uint) error {
	payment, err := s.repo.GetByID(paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrNotFound
	}
	order, err := s.orderRepo.GetByID(payment.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	target := ""
	switch payment.PaymentStatus {
	case constants.PaymentStatusCompleted:
		if order.Status == constants.OrderStatusPending {
			target = constants.OrderStatusPaid
		}
	case constants.PaymentStatusRefunded:
		if order.Status == constants.OrderStatusPending || order.Status == constants.OrderStatusPaid {
			target = constants.OrderStatusCancelled
		}
	}
	if target == "" {
		return nil
	}
	if err := s.orderRepo.UpdateStatus(order.ID, target); err != nil {
		return err
	}
	logger.Infow("order_status_synced_from_payment",
		"order_id", order.ID,
		"payment_id", payment.ID,
		"from", order.Status,
		"to", target,
	)
	return nil
}

func (s *PaymentService) dispatchRecorded(payment *models.Payment) {
	if payment.PaymentStatus != constants.PaymentStatusCompleted && payment.PaymentStatus != constants.PaymentStatusRefunded {
		return
	}
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueuePaymentRecorded(queue.PaymentRecordedPayload{
			PaymentID:     payment.ID,
			OrderID:       payment.OrderID,
			PaymentStatus: payment.PaymentStatus,
		})
		if err != nil {
			logger.Warnw("payment_enqueue_failed", "payment_id", payment.ID, "error", err)
		}
		return
	}
	if err := s.ApplyRecorded(payment.ID); err != nil {
		logger.Warnw("payment_apply_failed", "payment_id", payment.ID, "error", err)
	}
}

func (s *PaymentService) loadOrder(orderID, customerID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || (customerID != 0 && order.CustomerID != customerID) {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// bindPaymentCustomer 未指定顾客时继承订单顾客，指定时必须一致
func bindPaymentCustomer(order *models.Order, requested uint) (uint, error) {
	if requested == 0 {
		return order.CustomerID, nil
	}
	if requested != order.CustomerID {
		return 0, ErrPaymentCustomerMismatch
	}
	return requested, nil
}
