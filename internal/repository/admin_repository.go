package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/cart-it/internal/models"

	"gorm.io/gorm"
)

// AdministratorRepository 管理员数据访问接口
type AdministratorRepository interface {
	List(filter AdministratorListFilter) ([]models.Administrator, int64, error)
	GetByID(id uint) (*models.Administrator, error)
	GetByEmail(email string) (*models.Administrator, error)
	Exists(id uint) (bool, error)
	ExistsByEmail(email string, excludeID uint) (bool, error)
	Create(admin *models.Administrator) error
	Update(admin *models.Administrator) error
	Delete(id uint) error
	Count() (int64, error)
	UpdateLastLogin(id uint, at time.Time) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormAdministratorRepository
}

// GormAdministratorRepository GORM 实现
type GormAdministratorRepository struct {
	db *gorm.DB
}

// NewAdministratorRepository 创建管理员仓库
func NewAdministratorRepository(db *gorm.DB) *GormAdministratorRepository {
	return &GormAdministratorRepository{db: db}
}

// WithTx 绑定事务
func (r *GormAdministratorRepository) WithTx(tx *gorm.DB) *GormAdministratorRepository {
	if tx == nil {
		return r
	}
	return &GormAdministratorRepository{db: tx}
}

// Transaction 执行事务
func (r *GormAdministratorRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 管理员列表
func (r *GormAdministratorRepository) List(filter AdministratorListFilter) ([]models.Administrator, int64, error) {
	query := applySearch(r.db.Model(&models.Administrator{}), filter.Search, "name", "email")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var administrators []models.Administrator
	if err := applyPagination(query.Order("id asc"), filter.Page, filter.PageSize).Find(&administrators).Error; err != nil {
		return nil, 0, err
	}
	return administrators, total, nil
}

// GetByID 根据 ID 获取管理员
func (r *GormAdministratorRepository) GetByID(id uint) (*models.Administrator, error) {
	if id == 0 {
		return nil, nil
	}
	var admin models.Administrator
	if err := r.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByEmail 根据邮箱获取管理员
func (r *GormAdministratorRepository) GetByEmail(email string) (*models.Administrator, error) {
	var admin models.Administrator
	if err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// Exists 判断管理员是否存在
func (r *GormAdministratorRepository) Exists(id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	if err := r.db.Model(&models.Administrator{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByEmail 判断邮箱是否已被其他管理员使用
func (r *GormAdministratorRepository) ExistsByEmail(email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Administrator{}).Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建管理员
func (r *GormAdministratorRepository) Create(admin *models.Administrator) error {
	return r.db.Create(admin).Error
}

// Update 更新管理员
func (r *GormAdministratorRepository) Update(admin *models.Administrator) error {
	return r.db.Save(admin).Error
}

// Delete 删除管理员
func (r *GormAdministratorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Administrator{}, id).Error
}

// Count 统计管理员数量
func (r *GormAdministratorRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Administrator{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateLastLogin 记录最后登录时间
func (r *GormAdministratorRepository) UpdateLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Administrator{}).Where("id = ?", id).Update("last_login_at", at).Error
}
