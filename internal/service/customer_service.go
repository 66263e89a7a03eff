package service

import (
	"strings"

	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/repository"

	"gorm.io/gorm"
)

// CustomerService 顾客业务服务
type CustomerService struct {
	repo        repository.CustomerRepository
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	reviewRepo  repository.ReviewRepository
	hasher      *PasswordHasher
}

// NewCustomerService 创建顾客服务
func NewCustomerService(
	repo repository.CustomerRepository,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	reviewRepo repository.ReviewRepository,
	hasher *PasswordHasher,
) *CustomerService {
	return &CustomerService{
		repo:        repo,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		reviewRepo:  reviewRepo,
		hasher:      hasher,
	}
}

// CustomerInput 顾客创建/更新输入
type CustomerInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Phone      string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
}

// List 顾客列表
func (s *CustomerService) List(filter repository.CustomerListFilter) ([]models.Customer, int64, error) {
	return s.repo.List(filter)
}

// Get 获取顾客
func (s *CustomerService) Get(id uint) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}
	return customer, nil
}

// Create 创建顾客
func (s *CustomerService) Create(input CustomerInput) (*models.Customer, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
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

	customer := &models.Customer{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		City:         strings.TrimSpace(input.City),
		State:        strings.TrimSpace(input.State),
		PostalCode:   strings.TrimSpace(input.PostalCode),
		Country:      strings.TrimSpace(input.Country),
	}
	if err := s.repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update 部分更新顾客
func (s *CustomerService) Update(id uint, input CustomerInput) (*models.Customer, error) {
	customer, err := s.Get(id)
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
		customer.Email = email
	}
	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = hash
	}
	mergeString(&customer.FirstName, input.FirstName)
	mergeString(&customer.LastName, input.LastName)
	mergeString(&customer.Phone, input.Phone)
	mergeString(&customer.Address, input.Address)
	mergeString(&customer.City, input.City)
	mergeString(&customer.State, input.State)
	mergeString(&customer.PostalCode, input.PostalCode)
	mergeString(&customer.Country, input.Country)

	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete 删除顾客及其购物车、评价、订单与支付
func (s *CustomerService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		orderIDs, err := s.orderRepo.WithTx(tx).ListIDsByCustomer(id)
		if err != nil {
			return err
		}
		if err := s.paymentRepo.WithTx(tx).DeleteByOrders(orderIDs); err != nil {
			return err
		}
		if err := s.orderRepo.WithTx(tx).DeleteByIDs(orderIDs); err != nil {
			return err
		}
		if err := s.cartRepo.WithTx(tx).ClearByCustomer(id); err != nil {
			return err
		}
		if err := s.reviewRepo.WithTx(tx).DeleteByCustomer(id); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(id)
	})
	if err != nil {
		return err
	}
	logger.Infow("customer_deleted", "customer_id", id)
	return nil
}
