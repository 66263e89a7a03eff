package repository

import (
	"errors"

	"github.com/cart-it/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	List(filter CartListFilter) ([]models.Cart, int64, error)
	GetByID(id uint) (*models.Cart, error)
	GetByCustomerAndProduct(customerID, productID uint) (*models.Cart, error)
	Create(cart *models.Cart) error
	Update(cart *models.Cart) error
	Delete(id uint) error
	ClearByCustomer(customerID uint) error
	DeleteByProducts(productIDs []uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// List 购物车列表
func (r *GormCartRepository) List(filter CartListFilter) ([]models.Cart, int64, error) {
	query := r.db.Model(&models.Cart{})
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var carts []models.Cart
	if err := applyPagination(query.Preload("Product").Order("updated_at desc, id desc"), filter.Page, filter.PageSize).
		Find(&carts).Error; err != nil {
		return nil, 0, err
	}
	return carts, total, nil
}

// GetByID 根据 ID 获取购物车行
func (r *GormCartRepository) GetByID(id uint) (*models.Cart, error) {
	if id == 0 {
		return nil, nil
	}
	var cart models.Cart
	if err := r.db.Preload("Product").First(&cart, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetByCustomerAndProduct 获取顾客某商品的购物车行
func (r *GormCartRepository) GetByCustomerAndProduct(customerID, productID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Where("customer_id = ? AND product_id = ?", customerID, productID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Create 创建购物车行
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Omit("Product").Create(cart).Error
}

// Update 更新购物车行
func (r *GormCartRepository) Update(cart *models.Cart) error {
	return r.db.Omit("Product").Save(cart).Error
}

// Delete 删除购物车行
func (r *GormCartRepository) Delete(id uint) error {
	return r.db.Delete(&models.Cart{}, id).Error
}

// ClearByCustomer 清空顾客购物车
func (r *GormCartRepository) ClearByCustomer(customerID uint) error {
	return r.db.Where("customer_id = ?", customerID).Delete(&models.Cart{}).Error
}

// DeleteByProducts 删除包含指定商品的购物车行
func (r *GormCartRepository) DeleteByProducts(productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}
	return r.db.Where("product_id IN ?", productIDs).Delete(&models.Cart{}).Error
}
