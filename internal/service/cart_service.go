package service

import (
	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/repository"
)

// CartService 购物车服务（每个顾客每个商品一行）
type CartService struct {
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// CartInput 购物车行创建/更新输入
type CartInput struct {
	CustomerID uint
	ProductID  uint
	Quantity   int
}

// List 购物车列表
func (s *CartService) List(filter repository.CartListFilter) ([]models.Cart, int64, error) {
	return s.cartRepo.List(filter)
}

// Get 获取购物车行，customerID 非零时只返回本人的行
func (s *CartService) Get(id, customerID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cart == nil || (customerID != 0 && cart.CustomerID != customerID) {
		return nil, ErrNotFound
	}
	return cart, nil
}

// Add 加入购物车，同一商品已存在时累加数量
func (s *CartService) Add(input CartInput) (*models.Cart, error) {
	if input.Quantity <= 0 {
		return nil, ErrQuantityInvalid
	}
	exists, err := s.customerRepo.Exists(input.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.cartRepo.GetByCustomerAndProduct(input.CustomerID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		cart.Quantity += input.Quantity
		cart.Amount = product.Price.MulInt(cart.Quantity)
		cart.Product = nil
		if err := s.cartRepo.Update(cart); err != nil {
			return nil, err
		}
		return cart, nil
	}

	cart = &models.Cart{
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		Amount:     product.Price.MulInt(input.Quantity),
	}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Update 部分更新购物车行并按当前单价重算金额
func (s *CartService) Update(id, customerID uint, input CartInput) (*models.Cart, error) {
	cart, err := s.Get(id, customerID)
	if err != nil {
		return nil, err
	}
	if input.Quantity < 0 {
		return nil, ErrQuantityInvalid
	}
	if customerID != 0 {
		input.CustomerID = 0
	}
	if input.CustomerID != 0 && input.CustomerID != cart.CustomerID {
		exists, err := s.customerRepo.Exists(input.CustomerID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCustomerNotFound
		}
	}
	mergeID(&cart.CustomerID, input.CustomerID)
	mergeID(&cart.ProductID, input.ProductID)
	mergeInt(&cart.Quantity, input.Quantity)

	if input.CustomerID != 0 || input.ProductID != 0 {
		clash, err := s.cartRepo.GetByCustomerAndProduct(cart.CustomerID, cart.ProductID)
		if err != nil {
			return nil, err
		}
		if clash != nil && clash.ID != cart.ID {
			return nil, ErrCartConflict
		}
	}
	product, err := s.productRepo.GetByID(cart.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	cart.Amount = product.Price.MulInt(cart.Quantity)
	cart.Product = nil

	if err := s.cartRepo.Update(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove 删除购物车行
func (s *CartService) Remove(id, customerID uint) error {
	if _, err := s.Get(id, customerID); err != nil {
		return err
	}
	return s.cartRepo.Delete(id)
}

// Clear 清空顾客购物车
func (s *CartService) Clear(customerID uint) error {
	if customerID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.ClearByCustomer(customerID)
}
