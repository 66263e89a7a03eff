package service

import (
	"strings"

	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/repository"
)

// AdministratorService 管理员业务服务
type AdministratorService struct {
	repo   repository.AdministratorRepository
	hasher *PasswordHasher
}

// NewAdministratorService 创建管理员服务
func NewAdministratorService(repo repository.AdministratorRepository, hasher *PasswordHasher) *AdministratorService {
	return &AdministratorService{repo: repo, hasher: hasher}
}

// AdministratorInput 管理员创建/更新输入
type AdministratorInput struct {
	Name     string
	Email    string
	Password string
}

// List 管理员列表
func (s *AdministratorService) List(filter repository.AdministratorListFilter) ([]models.Administrator, int64, error) {
	return s.repo.List(filter)
}

// Get 获取管理员
func (s *AdministratorService) Get(id uint) (*models.Administrator, error) {
	admin, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	return admin, nil
}

// Create 创建管理员
func (s *AdministratorService) Create(input AdministratorInput) (*models.Administrator, error) {
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
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = email
	}

	admin := &models.Administrator{Name: name, Email: email, PasswordHash: hash}
	if err := s.repo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Update 部分更新管理员
func (s *AdministratorService) Update(id uint, input AdministratorInput) (*models.Administrator, error) {
	admin, err := s.Get(id)
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
		admin.Email = email
	}
	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}
	mergeString(&admin.Name, input.Name)

	if err := s.repo.Update(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Delete 删除管理员，至少保留一个
func (s *AdministratorService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	total, err := s.repo.Count()
	if err != nil {
		return err
	}
	if total <= 1 {
		return ErrLastAdministrator
	}
	return s.repo.Delete(id)
}
