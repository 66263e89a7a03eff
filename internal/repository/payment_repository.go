package repository

import (
	"errors"

	"github.com/cart-it/internal/models"

	"gorm.io/gorm"
)

// PaymentRepository 支付数据访问接口
type PaymentRepository interface {
	List(filter PaymentListFilter) ([]models.Payment, int64, error)
	GetByID(id uint) (*models.Payment, error)
	GetByIDAndCustomer(id, customerID uint) (*models.Payment, error)
	Create(payment *models.Payment) error
	Update(payment *models.Payment) error
	Delete(id uint) error
	DeleteByOrders(orderIDs []uint) error
	CountByOrderAndStatus(orderID uint, statuses []string) (int64, error)
	RebindOrderAmount(orderID uint, amount models.Money) error
	WithTx(tx *gorm.DB) *GormPaymentRepository
}

// GormPaymentRepository GORM 实现
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository 创建支付仓库
func NewPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPaymentRepository) WithTx(tx *gorm.DB) *GormPaymentRepository {
	if tx == nil {
		return r
	}
	return &GormPaymentRepository{db: tx}
}

// List 支付列表
func (r *GormPaymentRepository) List(filter PaymentListFilter) ([]models.Payment, int64, error) {
	query := r.db.Model(&models.Payment{})
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.OrderID != 0 {
		query = query.Where("order_id = ?", filter.OrderID)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.PaymentMethod != "" {
		query = query.Where("payment_method = ?", filter.PaymentMethod)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var payments []models.Payment
	if err := applyPagination(query.Order("payment_date desc, id desc"), filter.Page, filter.PageSize).
		Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// GetByID 根据 ID 获取支付记录
func (r *GormPaymentRepository) GetByID(id uint) (*models.Payment, error) {
	if id == 0 {
		return nil, nil
	}
	var payment models.Payment
	if err := r.db.Preload("Order").First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// GetByIDAndCustomer 获取顾客自己的支付记录
func (r *GormPaymentRepository) GetByIDAndCustomer(id, customerID uint) (*models.Payment, error) {
	if id == 0 || customerID == 0 {
		return nil, nil
	}
	var payment models.Payment
	if err := r.db.Preload("Order").Where("id = ? AND customer_id = ?", id, customerID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// Create 创建支付记录
func (r *GormPaymentRepository) Create(payment *models.Payment) error {
	return r.db.Omit("Order").Create(payment).Error
}

// Update 更新支付记录
func (r *GormPaymentRepository) Update(payment *models.Payment) error {
	return r.db.Omit("Order").Save(payment).Error
}

// Delete 删除支付记录
func (r *GormPaymentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Payment{}, id).Error
}

// DeleteByOrders 删除订单关联的支付记录
func (r *GormPaymentRepository) DeleteByOrders(orderIDs []uint) error {
	if len(orderIDs) == 0 {
		return nil
	}
	return r.db.Where("order_id IN ?", orderIDs).Delete(&models.Payment{}).Error
}

// CountByOrderAndStatus 统计订单下处于指定状态的支付记录数
func (r *GormPaymentRepository) CountByOrderAndStatus(orderID uint, statuses []string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Payment{}).Where("order_id = ?", orderID)
	if len(statuses) > 0 {
		query = query.Where("payment_status IN ?", statuses)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// RebindOrderAmount 将订单下所有支付记录的应付金额同步为订单总额
func (r *GormPaymentRepository) RebindOrderAmount(orderID uint, amount models.Money) error {
	return r.db.Model(&models.Payment{}).Where("order_id = ?", orderID).Update("amount_to_pay", amount).Error
}
