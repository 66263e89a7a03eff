package service

import (
	"strings"
	"time"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/queue"
	"github.com/cart-it/internal/repository"

	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	paymentRepo  repository.PaymentRepository
	inventory    *InventoryService
	queueClient  *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	paymentRepo repository.PaymentRepository,
	inventory *InventoryService,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		inventory:    inventory,
		queueClient:  queueClient,
	}
}

// OrderInput 订单创建/更新输入
type OrderInput struct {
	CustomerID      uint
	ProductID       uint
	Quantity        int
	UnitPrice       models.Money // 忽略，始终以商品当前单价为准
	TotalAmount     models.Money
	ShippingAddress string
	Status          string
	OrderDate       *time.Time
}

// List 订单列表
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// Get 获取订单，customerID 非零时只返回本人订单
func (s *OrderService) Get(id, customerID uint) (*models.Order, error) {
	var (
		order *models.Order
		err   error
	)
	if customerID == 0 {
		order, err = s.orderRepo.GetByID(id)
	} else {
		order, err = s.orderRepo.GetByIDAndCustomer(id, customerID)
	}
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// CreateOrder 创建订单：单价取商品当前价格，总额必须等于单价 × 数量
func (s *OrderService) CreateOrder(input OrderInput) (*models.Order, error) {
	if input.Quantity <= 0 {
		return nil, ErrQuantityInvalid
	}
	status, err := normalizeOrderStatus(strings.TrimSpace(input.Status))
	if err != nil {
		return nil, err
	}
	if status == "" {
		status = constants.OrderStatusPending
	}
	exists, err := s.customerRepo.Exists(input.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	total, err := priceOrder(product.Price, input.Quantity, input.TotalAmount)
	if err != nil {
		return nil, err
	}

	orderDate := time.Now()
	if input.OrderDate != nil && !input.OrderDate.IsZero() {
		orderDate = *input.OrderDate
	}
	order := &models.Order{
		CustomerID:      input.CustomerID,
		ProductID:       product.ID,
		Quantity:        input.Quantity,
		UnitPrice:       product.Price,
		TotalAmount:     total,
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		Status:          status,
		OrderDate:       orderDate,
	}
	if err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order)
	}); err != nil {
		return nil, err
	}
	logger.Infow("order_created",
		"order_id", order.ID,
		"customer_id", order.CustomerID,
		"product_id", order.ProductID,
		"total_amount", order.TotalAmount.String(),
	)
	s.notifyLowStock(order.ProductID, order.ID)
	return s.Get(order.ID, 0)
}

// UpdateOrder 部分更新订单，商品或数量变化时重新校验总额
func (s *OrderService) UpdateOrder(id, customerID uint, input OrderInput) (*models.Order, error) {
	order, err := s.Get(id, customerID)
	if err != nil {
		return nil, err
	}
	if input.Quantity < 0 {
		return nil, ErrQuantityInvalid
	}
	status, err := normalizeOrderStatus(strings.TrimSpace(input.Status))
	if err != nil {
		return nil, err
	}
	// 顾客只能取消自己的订单
	if customerID != 0 {
		input.CustomerID = 0
		if status != "" && status != constants.OrderStatusCancelled {
			return nil, ErrForbidden
		}
	}
	if input.CustomerID != 0 && input.CustomerID != order.CustomerID {
		exists, err := s.customerRepo.Exists(input.CustomerID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCustomerNotFound
		}
	}

	productChanged := input.ProductID != 0 && input.ProductID != order.ProductID
	quantityChanged := input.Quantity != 0 && input.Quantity != order.Quantity
	repriced := productChanged || quantityChanged
	if repriced {
		if err := s.ensureRepriceable(order); err != nil {
			return nil, err
		}
		productID, quantity := order.ProductID, order.Quantity
		mergeID(&productID, input.ProductID)
		mergeInt(&quantity, input.Quantity)
		product, err := s.productRepo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		total, err := priceOrder(product.Price, quantity, input.TotalAmount)
		if err != nil {
			return nil, err
		}
		order.ProductID = productID
		order.Quantity = quantity
		order.UnitPrice = product.Price
		order.TotalAmount = total
	} else if !input.TotalAmount.IsZero() {
		if _, err := priceOrder(order.UnitPrice, order.Quantity, input.TotalAmount); err != nil {
			return nil, err
		}
	}

	mergeID(&order.CustomerID, input.CustomerID)
	mergeString(&order.ShippingAddress, input.ShippingAddress)
	mergeString(&order.Status, status)
	if input.OrderDate != nil && !input.OrderDate.IsZero() {
		order.OrderDate = *input.OrderDate
	}
	order.Customer = nil
	order.Product = nil
	order.Products = nil

	if err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Update(order, productChanged); err != nil {
			return err
		}
		if !repriced {
			return nil
		}
		// 应付金额始终跟随订单总额
		return s.paymentRepo.WithTx(tx).RebindOrderAmount(order.ID, order.TotalAmount)
	}); err != nil {
		return nil, err
	}
	if repriced {
		s.notifyLowStock(order.ProductID, order.ID)
	}
	return s.Get(order.ID, 0)
}

// ensureRepriceable 已离开待支付状态或已有结算支付的订单不允许改价
func (s *OrderService) ensureRepriceable(order *models.Order) error {
	if order.Status != constants.OrderStatusPending {
		return ErrOrderLocked
	}
	settled, err := s.paymentRepo.CountByOrderAndStatus(order.ID, []string{
		constants.PaymentStatusCompleted,
		constants.PaymentStatusRefunded,
	})
	if err != nil {
		return err
	}
	if settled > 0 {
		return ErrOrderLocked
	}
	return nil
}

// Delete 删除订单及其支付记录
func (s *OrderService) Delete(id, customerID uint) error {
	if _, err := s.Get(id, customerID); err != nil {
		return err
	}
	return s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.WithTx(tx).DeleteByOrders([]uint{id}); err != nil {
			return err
		}
		return s.orderRepo.WithTx(tx).Delete(id)
	})
}

// notifyLowStock 队列可用时异步检查，否则就地检查
func (s *OrderService) notifyLowStock(productID, orderID uint) {
	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueLowStockCheck(queue.LowStockPayload{ProductID: productID, OrderID: orderID}); err != nil {
			logger.Warnw("order_enqueue_low_stock_failed", "order_id", orderID, "product_id", productID, "error", err)
		}
		return
	}
	if s.inventory == nil {
		return
	}
	if item, low, err := s.inventory.CheckLowStock(productID); err != nil {
		logger.Warnw("order_low_stock_check_failed", "order_id", orderID, "product_id", productID, "error", err)
	} else if low {
		logger.Warnw("inventory_low_stock",
			"product_id", productID,
			"order_id", orderID,
			"current_stock", item.CurrentStock,
			"minimum_stock", item.MinimumStock,
		)
	}
}
