package repository

import (
	"errors"

	"github.com/cart-it/internal/models"

	"gorm.io/gorm"
)

// InventoryRepository 商品库存记录数据访问接口
type InventoryRepository interface {
	List(filter InventoryListFilter) ([]models.ProductInventory, int64, error)
	GetByID(id uint) (*models.ProductInventory, error)
	GetLatestByProduct(productID uint) (*models.ProductInventory, error)
	Create(inventory *models.ProductInventory) error
	Update(inventory *models.ProductInventory) error
	Delete(id uint) error
	DeleteByProducts(productIDs []uint) error
	WithTx(tx *gorm.DB) *GormInventoryRepository
}

// GormInventoryRepository GORM 实现
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository 创建库存仓库
func NewInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// WithTx 绑定事务
func (r *GormInventoryRepository) WithTx(tx *gorm.DB) *GormInventoryRepository {
	if tx == nil {
		return r
	}
	return &GormInventoryRepository{db: tx}
}

// List 库存记录列表
func (r *GormInventoryRepository) List(filter InventoryListFilter) ([]models.ProductInventory, int64, error) {
	query := r.db.Model(&models.ProductInventory{})
	if filter.ProductID != 0 {
		query = query.Where("product_inventories.product_id = ?", filter.ProductID)
	}
	if filter.SellerID != 0 {
		query = query.Where("product_inventories.product_id IN (?)",
			r.db.Model(&models.Product{}).Select("id").Where("seller_id = ?", filter.SellerID))
	}
	if filter.LowStockOnly {
		query = query.Where("product_inventories.current_stock <= product_inventories.minimum_stock")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.ProductInventory
	if err := applyPagination(query.Preload("Product").Order("product_inventories.id asc"), filter.Page, filter.PageSize).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID 根据 ID 获取库存记录
func (r *GormInventoryRepository) GetByID(id uint) (*models.ProductInventory, error) {
	if id == 0 {
		return nil, nil
	}
	var inventory models.ProductInventory
	if err := r.db.Preload("Product").First(&inventory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inventory, nil
}

// GetLatestByProduct 获取商品最新的库存记录
func (r *GormInventoryRepository) GetLatestByProduct(productID uint) (*models.ProductInventory, error) {
	var inventory models.ProductInventory
	if err := r.db.Where("product_id = ?", productID).Order("id desc").First(&inventory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inventory, nil
}

// Create 创建库存记录
func (r *GormInventoryRepository) Create(inventory *models.ProductInventory) error {
	return r.db.Omit("Product").Create(inventory).Error
}

// Update 更新库存记录
func (r *GormInventoryRepository) Update(inventory *models.ProductInventory) error {
	return r.db.Omit("Product").Save(inventory).Error
}

// Delete 删除库存记录
func (r *GormInventoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.ProductInventory{}, id).Error
}

// DeleteByProducts 删除商品关联的库存记录
func (r *GormInventoryRepository) DeleteByProducts(productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}
	return r.db.Where("product_id IN ?", productIDs).Delete(&models.ProductInventory{}).Error
}
