package repository

import (
	"errors"

	"github.com/cart-it/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	List(filter OrderListFilter) ([]models.Order, int64, error)
	GetByID(id uint) (*models.Order, error)
	GetByIDAndCustomer(id, customerID uint) (*models.Order, error)
	Exists(id uint) (bool, error)
	Create(order *models.Order) error
	Update(order *models.Order, productChanged bool) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	ListIDsByCustomer(customerID uint) ([]uint, error)
	ListIDsByProducts(productIDs []uint) ([]uint, error)
	DeleteByIDs(ids []uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction 执行事务
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 订单列表
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.SellerID != 0 {
		query = query.Where("product_id IN (?)",
			r.db.Model(&models.Product{}).Select("id").Where("seller_id = ?", filter.SellerID))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("order_date >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("order_date <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []models.Order
	if err := applyPagination(query.Preload("Product").Order("order_date desc, id desc"), filter.Page, filter.PageSize).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	if id == 0 {
		return nil, nil
	}
	var order models.Order
	if err := r.db.Preload("Product").Preload("Products").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByIDAndCustomer 获取顾客自己的订单
func (r *GormOrderRepository) GetByIDAndCustomer(id, customerID uint) (*models.Order, error) {
	if id == 0 || customerID == 0 {
		return nil, nil
	}
	var order models.Order
	if err := r.db.Preload("Product").Preload("Products").
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Exists 判断订单是否存在
func (r *GormOrderRepository) Exists(id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	if err := r.db.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建订单并写入订单商品关联
func (r *GormOrderRepository) Create(order *models.Order) error {
	if err := r.db.Omit("Customer", "Product", "Products").Create(order).Error; err != nil {
		return err
	}
	return r.linkProduct(order)
}

// Update 更新订单，商品变化时重建关联
func (r *GormOrderRepository) Update(order *models.Order, productChanged bool) error {
	if err := r.db.Omit("Customer", "Product", "Products").Save(order).Error; err != nil {
		return err
	}
	if !productChanged {
		return nil
	}
	if err := r.db.Exec("DELETE FROM order_products WHERE order_id = ?", order.ID).Error; err != nil {
		return err
	}
	return r.linkProduct(order)
}

func (r *GormOrderRepository) linkProduct(order *models.Order) error {
	if order.ProductID == 0 {
		return nil
	}
	return r.db.Exec("INSERT INTO order_products (order_id, product_id) VALUES (?, ?)", order.ID, order.ProductID).Error
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

// Delete 删除订单及其商品关联
func (r *GormOrderRepository) Delete(id uint) error {
	return r.DeleteByIDs([]uint{id})
}

// ListIDsByCustomer 获取顾客全部订单 ID
func (r *GormOrderRepository) ListIDsByCustomer(customerID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&models.Order{}).Where("customer_id = ?", customerID).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ListIDsByProducts 获取引用指定商品的订单 ID
func (r *GormOrderRepository) ListIDsByProducts(productIDs []uint) ([]uint, error) {
	ids := make([]uint, 0)
	if len(productIDs) == 0 {
		return ids, nil
	}
	if err := r.db.Model(&models.Order{}).Where("product_id IN ?", productIDs).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteByIDs 批量删除订单及其商品关联
func (r *GormOrderRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.Exec("DELETE FROM order_products WHERE order_id IN ?", ids).Error; err != nil {
		return err
	}
	return r.db.Where("id IN ?", ids).Delete(&models.Order{}).Error
}
