package repository

import (
	"errors"
	"strings"

	"github.com/cart-it/internal/models"

	"gorm.io/gorm"
)

// SellerRepository 卖家数据访问接口
type SellerRepository interface {
	List(filter SellerListFilter) ([]models.Seller, int64, error)
	GetByID(id uint) (*models.Seller, error)
	GetByEmail(email string) (*models.Seller, error)
	Exists(id uint) (bool, error)
	ExistsByEmail(email string, excludeID uint) (bool, error)
	Create(seller *models.Seller) error
	Update(seller *models.Seller) error
	Delete(id uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormSellerRepository
}

// GormSellerRepository GORM 实现
type GormSellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository 创建卖家仓库
func NewSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSellerRepository) WithTx(tx *gorm.DB) *GormSellerRepository {
	if tx == nil {
		return r
	}
	return &GormSellerRepository{db: tx}
}

// Transaction 执行事务
func (r *GormSellerRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 卖家列表
func (r *GormSellerRepository) List(filter SellerListFilter) ([]models.Seller, int64, error) {
	query := applySearch(r.db.Model(&models.Seller{}), filter.Search, "company_name", "contact_name", "email")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var sellers []models.Seller
	if err := applyPagination(query.Order("id asc"), filter.Page, filter.PageSize).Find(&sellers).Error; err != nil {
		return nil, 0, err
	}
	return sellers, total, nil
}

// GetByID 根据 ID 获取卖家
func (r *GormSellerRepository) GetByID(id uint) (*models.Seller, error) {
	if id == 0 {
		return nil, nil
	}
	var seller models.Seller
	if err := r.db.First(&seller, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seller, nil
}

// GetByEmail 根据邮箱获取卖家
func (r *GormSellerRepository) GetByEmail(email string) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&seller).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seller, nil
}

// Exists 判断卖家是否存在
func (r *GormSellerRepository) Exists(id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	if err := r.db.Model(&models.Seller{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByEmail 判断邮箱是否已被其他卖家使用
func (r *GormSellerRepository) ExistsByEmail(email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Seller{}).Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建卖家
func (r *GormSellerRepository) Create(seller *models.Seller) error {
	return r.db.Create(seller).Error
}

// Update 更新卖家
func (r *GormSellerRepository) Update(seller *models.Seller) error {
	return r.db.Save(seller).Error
}

// Delete 删除卖家
func (r *GormSellerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Seller{}, id).Error
}
