package service

import (
	"strings"

	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/repository"
)

// RegistrationService 顾客与卖家自助注册
type RegistrationService struct {
	adminRepo    repository.AdministratorRepository
	customerRepo repository.CustomerRepository
	sellerRepo   repository.SellerRepository
	customers    *CustomerService
	sellers      *SellerService
}

// NewRegistrationService 创建注册服务
func NewRegistrationService(
	adminRepo repository.AdministratorRepository,
	customerRepo repository.CustomerRepository,
	sellerRepo repository.SellerRepository,
	customers *CustomerService,
	sellers *SellerService,
) *RegistrationService {
	return &RegistrationService{
		adminRepo:    adminRepo,
		customerRepo: customerRepo,
		sellerRepo:   sellerRepo,
		customers:    customers,
		sellers:      sellers,
	}
}

// RegisterCustomer 注册顾客
func (s *RegistrationService) RegisterCustomer(input CustomerInput) (*models.Customer, error) {
	if err := s.ensureEmailFree(input.Email); err != nil {
		return nil, err
	}
	return s.customers.Create(input)
}

// RegisterSeller 注册卖家
func (s *RegistrationService) RegisterSeller(input SellerInput) (*models.Seller, error) {
	if err := s.ensureEmailFree(input.Email); err != nil {
		return nil, err
	}
	return s.sellers.Create(input)
}

// ensureEmailFree 邮箱不能被任何一类账号占用，避免登录探测歧义
func (s *RegistrationService) ensureEmailFree(raw string) error {
	email, err := normalizeEmail(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	checks := []func(string, uint) (bool, error){
		s.adminRepo.ExistsByEmail,
		s.customerRepo.ExistsByEmail,
		s.sellerRepo.ExistsByEmail,
	}
	for _, exists := range checks {
		taken, err := exists(email, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailExists
		}
	}
	return nil
}
