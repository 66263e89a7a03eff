package service

import (
	"time"

	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/repository"
)

// InventoryService 库存记录业务服务
type InventoryService struct {
	repo        repository.InventoryRepository
	productRepo repository.ProductRepository
}

// NewInventoryService 创建库存服务
func NewInventoryService(repo repository.InventoryRepository, productRepo repository.ProductRepository) *InventoryService {
	return &InventoryService{repo: repo, productRepo: productRepo}
}

// InventoryInput 库存记录创建/更新输入
type InventoryInput struct {
	ProductID       uint
	CurrentStock    int
	MinimumStock    int
	LastRestockDate *time.Time
	NextRestockDate *time.Time
}

// List 库存记录列表
func (s *InventoryService) List(filter repository.InventoryListFilter) ([]models.ProductInventory, int64, error) {
	return s.repo.List(filter)
}

// ListLowStock 当前库存不高于最低库存的记录
func (s *InventoryService) ListLowStock(sellerID uint, page, pageSize int) ([]models.ProductInventory, int64, error) {
	return s.repo.List(repository.InventoryListFilter{
		Page:         page,
		PageSize:     pageSize,
		SellerID:     sellerID,
		LowStockOnly: true,
	})
}

// Get 获取库存记录，sellerID 非零时只返回该卖家商品的记录
func (s *InventoryService) Get(id, sellerID uint) (*models.ProductInventory, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	if sellerID != 0 {
		owned, err := s.productRepo.GetByIDAndSeller(item.ProductID, sellerID)
		if err != nil {
			return nil, err
		}
		if owned == nil {
			return nil, ErrNotFound
		}
	}
	return item, nil
}

// Create 创建库存记录
func (s *InventoryService) Create(sellerID uint, input InventoryInput) (*models.ProductInventory, error) {
	if input.CurrentStock < 0 || input.MinimumStock < 0 {
		return nil, ErrInventoryInvalid
	}
	if err := s.ensureProduct(input.ProductID, sellerID); err != nil {
		return nil, err
	}
	item := &models.ProductInventory{
		ProductID:       input.ProductID,
		CurrentStock:    input.CurrentStock,
		MinimumStock:    input.MinimumStock,
		LastRestockDate: input.LastRestockDate,
		NextRestockDate: input.NextRestockDate,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update 部分更新库存记录
func (s *InventoryService) Update(id, sellerID uint, input InventoryInput) (*models.ProductInventory, error) {
	item, err := s.Get(id, sellerID)
	if err != nil {
		return nil, err
	}
	if input.CurrentStock < 0 || input.MinimumStock < 0 {
		return nil, ErrInventoryInvalid
	}
	if input.ProductID != 0 && input.ProductID != item.ProductID {
		if err := s.ensureProduct(input.ProductID, sellerID); err != nil {
			return nil, err
		}
		item.ProductID = input.ProductID
	}
	mergeInt(&item.CurrentStock, input.CurrentStock)
	mergeInt(&item.MinimumStock, input.MinimumStock)
	if input.LastRestockDate != nil {
		item.LastRestockDate = input.LastRestockDate
	}
	if input.NextRestockDate != nil {
		item.NextRestockDate = input.NextRestockDate
	}
	item.Product = nil

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 删除库存记录
func (s *InventoryService) Delete(id, sellerID uint) error {
	if _, err := s.Get(id, sellerID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// CheckLowStock 检查商品最新库存记录是否低于阈值
func (s *InventoryService) CheckLowStock(productID uint) (*models.ProductInventory, bool, error) {
	item, err := s.repo.GetLatestByProduct(productID)
	if err != nil || item == nil {
		return nil, false, err
	}
	return item, item.IsLowStock(), nil
}

func (s *InventoryService) ensureProduct(productID, sellerID uint) error {
	var (
		product *models.Product
		err     error
	)
	if sellerID == 0 {
		product, err = s.productRepo.GetByID(productID)
	} else {
		product, err = s.productRepo.GetByIDAndSeller(productID, sellerID)
	}
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return nil
}
