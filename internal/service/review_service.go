package service

import (
	"strings"
	"time"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/repository"
)

// ReviewService 商品评价服务
type ReviewService struct {
	repo         repository.ReviewRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewReviewService 创建评价服务
func NewReviewService(repo repository.ReviewRepository, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{repo: repo, customerRepo: customerRepo, productRepo: productRepo}
}

// ReviewInput 评价创建/更新输入
type ReviewInput struct {
	CustomerID uint
	ProductID  uint
	Rating     int
	ReviewText string
	ReviewDate *time.Time
}

// ProductRating 商品评分汇总
type ProductRating struct {
	Average float64 `json:"average"`
	Total   int64   `json:"total"`
}

// List 评价列表
func (s *ReviewService) List(filter repository.ReviewListFilter) ([]models.Review, int64, error) {
	return s.repo.List(filter)
}

// ListByProduct 公开的商品评价列表
func (s *ReviewService) ListByProduct(productID uint, page, pageSize int) ([]models.Review, int64, *ProductRating, error) {
	exists, err := s.productRepo.Exists(productID)
	if err != nil {
		return nil, 0, nil, err
	}
	if !exists {
		return nil, 0, nil, ErrNotFound
	}
	reviews, total, err := s.repo.List(repository.ReviewListFilter{Page: page, PageSize: pageSize, ProductID: productID})
	if err != nil {
		return nil, 0, nil, err
	}
	average, count, err := s.repo.AverageRating(productID)
	if err != nil {
		return nil, 0, nil, err
	}
	return reviews, total, &ProductRating{Average: average, Total: count}, nil
}

// Get 获取评价，customerID 非零时只返回本人评价
func (s *ReviewService) Get(id, customerID uint) (*models.Review, error) {
	review, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil || (customerID != 0 && review.CustomerID != customerID) {
		return nil, ErrNotFound
	}
	return review, nil
}

// Create 创建评价
func (s *ReviewService) Create(input ReviewInput) (*models.Review, error) {
	if !validRating(input.Rating) {
		return nil, ErrRatingInvalid
	}
	if err := s.ensureRelations(input.CustomerID, input.ProductID); err != nil {
		return nil, err
	}
	reviewDate := time.Now()
	if input.ReviewDate != nil && !input.ReviewDate.IsZero() {
		reviewDate = *input.ReviewDate
	}
	review := &models.Review{
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		Rating:     input.Rating,
		ReviewText: strings.TrimSpace(input.ReviewText),
		ReviewDate: reviewDate,
	}
	if err := s.repo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Update 部分更新评价
func (s *ReviewService) Update(id, customerID uint, input ReviewInput) (*models.Review, error) {
	review, err := s.Get(id, customerID)
	if err != nil {
		return nil, err
	}
	if input.Rating != 0 && !validRating(input.Rating) {
		return nil, ErrRatingInvalid
	}
	if customerID != 0 {
		input.CustomerID = 0
	}
	if input.CustomerID != 0 || input.ProductID != 0 {
		targetCustomer, targetProduct := review.CustomerID, review.ProductID
		mergeID(&targetCustomer, input.CustomerID)
		mergeID(&targetProduct, input.ProductID)
		if err := s.ensureRelations(targetCustomer, targetProduct); err != nil {
			return nil, err
		}
	}
	mergeID(&review.CustomerID, input.CustomerID)
	mergeID(&review.ProductID, input.ProductID)
	mergeInt(&review.Rating, input.Rating)
	mergeString(&review.ReviewText, input.ReviewText)
	if input.ReviewDate != nil && !input.ReviewDate.IsZero() {
		review.ReviewDate = *input.ReviewDate
	}
	review.Customer = nil
	review.Product = nil

	if err := s.repo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete 删除评价
func (s *ReviewService) Delete(id, customerID uint) error {
	if _, err := s.Get(id, customerID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *ReviewService) ensureRelations(customerID, productID uint) error {
	exists, err := s.customerRepo.Exists(customerID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCustomerNotFound
	}
	exists, err = s.productRepo.Exists(productID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProductNotFound
	}
	return nil
}

func validRating(rating int) bool {
	return rating >= constants.ReviewRatingMin && rating <= constants.ReviewRatingMax
}
