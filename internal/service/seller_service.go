package service

import (
	"strings"

	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/repository"

	"gorm.io/gorm"
)

// SellerService 卖家业务服务
type SellerService struct {
	repo    repository.SellerRepository
	cascade productCascade
	hasher  *PasswordHasher
}

// NewSellerService 创建卖家服务
func NewSellerService(
	repo repository.SellerRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	cartRepo repository.CartRepository,
	inventoryRepo repository.InventoryRepository,
	reviewRepo repository.ReviewRepository,
	hasher *PasswordHasher,
) *SellerService {
	return &SellerService{
		repo: repo,
		cascade: productCascade{
			productRepo:   productRepo,
			orderRepo:     orderRepo,
			paymentRepo:   paymentRepo,
			cartRepo:      cartRepo,
			inventoryRepo: inventoryRepo,
			reviewRepo:    reviewRepo,
		},
		hasher: hasher,
	}
}

// SellerInput 卖家创建/更新输入
type SellerInput struct {
	CompanyName       string
	ContactName       string
	Email             string
	Password          string
	Phone             string
	Address           string
	BankAccountNumber string
	BankName          string
	TaxID             string
}

// List 卖家列表
func (s *SellerService) List(filter repository.SellerListFilter) ([]models.Seller, int64, error) {
	return s.repo.List(filter)
}

// Get 获取卖家
func (s *SellerService) Get(id uint) (*models.Seller, error) {
	seller, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, ErrNotFound
	}
	return seller, nil
}

// Create 创建卖家
func (s *SellerService) Create(input SellerInput) (*models.Seller, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	companyName := strings.TrimSpace(input.CompanyName)
	if companyName == "" {
		return nil, ErrInvalidInput
	}
	exists, err := s.repo.ExistsByEmail(email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	seller := &models.Seller{
		CompanyName:       companyName,
		ContactName:       strings.TrimSpace(input.ContactName),
		Email:             email,
		PasswordHash:      hash,
		Phone:             strings.TrimSpace(input.Phone),
		Address:           strings.TrimSpace(input.Address),
		BankAccountNumber: strings.TrimSpace(input.BankAccountNumber),
		BankName:          strings.TrimSpace(input.BankName),
		TaxID:             strings.TrimSpace(input.TaxID),
	}
	if err := s.repo.Create(seller); err != nil {
		return nil, err
	}
	return seller, nil
}

// Update 部分更新卖家
func (s *SellerService) Update(id uint, input SellerInput) (*models.Seller, error) {
	seller, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Email) != "" {
		email, err := normalizeEmail(input.Email)
		if err != nil {
			return nil, err
		}
		exists, err := s.repo.ExistsByEmail(email, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailExists
		}
		seller.Email = email
	}
	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		seller.PasswordHash = hash
	}
	mergeString(&seller.CompanyName, input.CompanyName)
	mergeString(&seller.ContactName, input.ContactName)
	mergeString(&seller.Phone, input.Phone)
	mergeString(&seller.Address, input.Address)
	mergeString(&seller.BankAccountNumber, input.BankAccountNumber)
	mergeString(&seller.BankName, input.BankName)
	mergeString(&seller.TaxID, input.TaxID)

	if err := s.repo.Update(seller); err != nil {
		return nil, err
	}
	return seller, nil
}

// Delete 删除卖家及其全部商品
func (s *SellerService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	var productIDs []uint
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		ids, err := s.cascade.productRepo.WithTx(tx).ListIDsBySeller(id)
		if err != nil {
			return err
		}
		productIDs = ids
		if err := s.cascade.purge(tx, ids); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(id)
	})
	if err != nil {
		return err
	}
	s.cascade.evict(productIDs)
	logger.Infow("seller_deleted", "seller_id", id, "products", len(productIDs))
	return nil
}
