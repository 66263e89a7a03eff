package service

import (
	"context"
	"strings"
	"time"

	"github.com/cart-it/internal/cache"
	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/repository"

	"gorm.io/gorm"
)

// ProductService 商品业务服务
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	sellerRepo   repository.SellerRepository
	cascade      productCascade
	cacheTTL     time.Duration
}

// ProductServiceOptions 商品服务依赖
type ProductServiceOptions struct {
	ProductRepo   repository.ProductRepository
	CategoryRepo  repository.CategoryRepository
	SellerRepo    repository.SellerRepository
	OrderRepo     repository.OrderRepository
	PaymentRepo   repository.PaymentRepository
	CartRepo      repository.CartRepository
	InventoryRepo repository.InventoryRepository
	ReviewRepo    repository.ReviewRepository
	CacheTTL      time.Duration
}

// NewProductService 创建商品服务
func NewProductService(opts ProductServiceOptions) *ProductService {
	return &ProductService{
		repo:         opts.ProductRepo,
		categoryRepo: opts.CategoryRepo,
		sellerRepo:   opts.SellerRepo,
		cascade: productCascade{
			productRepo:   opts.ProductRepo,
			orderRepo:     opts.OrderRepo,
			paymentRepo:   opts.PaymentRepo,
			cartRepo:      opts.CartRepo,
			inventoryRepo: opts.InventoryRepo,
			reviewRepo:    opts.ReviewRepo,
		},
		cacheTTL: opts.CacheTTL,
	}
}

// ProductInput 商品创建/更新输入
type ProductInput struct {
	Name        string
	Description string
	Price       models.Money
	Stock       int
	ImageURL    string
	CategoryID  uint
	SellerID    uint
}

// List 商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.repo.List(filter)
}

// GetPublic 获取公开商品详情（读缓存）
func (s *ProductService) GetPublic(ctx context.Context, id uint) (*models.Product, error) {
	if cached, hit, err := cache.GetProduct(ctx, id); err != nil {
		logger.Warnw("product_cache_read_failed", "product_id", id, "error", err)
	} else if hit {
		return cached, nil
	}
	product, err := s.Get(id, 0)
	if err != nil {
		return nil, err
	}
	if err := cache.SetProduct(ctx, product, s.cacheTTL); err != nil {
		logger.Warnw("product_cache_write_failed", "product_id", id, "error", err)
	}
	return product, nil
}

// Get 获取商品，sellerID 非零时只返回该卖家的商品
func (s *ProductService) Get(id, sellerID uint) (*models.Product, error) {
	var (
		product *models.Product
		err     error
	)
	if sellerID == 0 {
		product, err = s.repo.GetByID(id)
	} else {
		product, err = s.repo.GetByIDAndSeller(id, sellerID)
	}
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if input.Price.IsNegative() {
		return nil, ErrProductPriceInvalid
	}
	if input.Stock < 0 {
		return nil, ErrProductStockInvalid
	}
	if err := s.ensureRelations(input.CategoryID, input.SellerID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       models.NewMoneyFromDecimal(input.Price.Decimal),
		Stock:       input.Stock,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		CategoryID:  input.CategoryID,
		SellerID:    input.SellerID,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 部分更新商品，sellerID 非零时限定卖家本人商品
func (s *ProductService) Update(id, sellerID uint, input ProductInput) (*models.Product, error) {
	product, err := s.Get(id, sellerID)
	if err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, ErrProductPriceInvalid
	}
	if input.Stock < 0 {
		return nil, ErrProductStockInvalid
	}
	if sellerID != 0 {
		input.SellerID = 0
	}
	if input.CategoryID != 0 || input.SellerID != 0 {
		categoryID, targetSeller := product.CategoryID, product.SellerID
		mergeID(&categoryID, input.CategoryID)
		mergeID(&targetSeller, input.SellerID)
		if err := s.ensureRelations(categoryID, targetSeller); err != nil {
			return nil, err
		}
	}

	mergeString(&product.Name, input.Name)
	mergeString(&product.Description, input.Description)
	mergeString(&product.ImageURL, input.ImageURL)
	mergeMoney(&product.Price, input.Price)
	mergeInt(&product.Stock, input.Stock)
	mergeID(&product.CategoryID, input.CategoryID)
	mergeID(&product.SellerID, input.SellerID)
	product.Category = nil
	product.Seller = nil

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.cascade.evict([]uint{product.ID})
	return s.repo.GetByID(product.ID)
}

// Delete 删除商品及其依赖数据
func (s *ProductService) Delete(id, sellerID uint) error {
	if _, err := s.Get(id, sellerID); err != nil {
		return err
	}
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		return s.cascade.purge(tx, []uint{id})
	})
	if err != nil {
		return err
	}
	s.cascade.evict([]uint{id})
	logger.Infow("product_deleted", "product_id", id, "seller_id", sellerID)
	return nil
}

func (s *ProductService) ensureRelations(categoryID, sellerID uint) error {
	exists, err := s.categoryRepo.Exists(categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCategoryNotFound
	}
	exists, err = s.sellerRepo.Exists(sellerID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSellerNotFound
	}
	return nil
}
