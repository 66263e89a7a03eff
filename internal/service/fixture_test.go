package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cart-it/internal/cache"
	"github.com/cart-it/internal/config"
	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/repository"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "secret123"

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateDB(db); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

type testServices struct {
	db         *gorm.DB
	hasher     *PasswordHasher
	customers  *CustomerService
	sellers    *SellerService
	admins     *AdministratorService
	categories *CategoryService
	products   *ProductService
	inventory  *InventoryService
	carts      *CartService
	orders     *OrderService
	payments   *PaymentService
	reviews    *ReviewService
	register   *RegistrationService
	auth       *AuthService
	dashboard  *DashboardService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := setupServiceTestDB(t)

	adminRepo := repository.NewAdministratorRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	hasher := NewPasswordHasher(config.PasswordPolicyConfig{MinLength: 8, RequireLower: true, RequireNumber: true})
	hasher.cost = bcrypt.MinCost

	cfg := &config.Config{
		JWT:          config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1, Issuer: "cart-it-test"},
		RefreshToken: config.RefreshTokenConfig{ExpireHours: 24},
	}

	s := &testServices{db: db, hasher: hasher}
	s.customers = NewCustomerService(customerRepo, cartRepo, orderRepo, paymentRepo, reviewRepo, hasher)
	s.sellers = NewSellerService(sellerRepo, productRepo, orderRepo, paymentRepo, cartRepo, inventoryRepo, reviewRepo, hasher)
	s.admins = NewAdministratorService(adminRepo, hasher)
	s.categories = NewCategoryService(categoryRepo)
	s.products = NewProductService(ProductServiceOptions{
		ProductRepo:   productRepo,
		CategoryRepo:  categoryRepo,
		SellerRepo:    sellerRepo,
		OrderRepo:     orderRepo,
		PaymentRepo:   paymentRepo,
		CartRepo:      cartRepo,
		InventoryRepo: inventoryRepo,
		ReviewRepo:    reviewRepo,
	})
	s.inventory = NewInventoryService(inventoryRepo, productRepo)
	s.carts = NewCartService(cartRepo, productRepo, customerRepo)
	s.orders = NewOrderService(orderRepo, productRepo, customerRepo, paymentRepo, s.inventory, nil)
	s.payments = NewPaymentService(paymentRepo, orderRepo, nil)
	s.reviews = NewReviewService(reviewRepo, customerRepo, productRepo)
	s.register = NewRegistrationService(adminRepo, customerRepo, sellerRepo, s.customers, s.sellers)
	s.auth = NewAuthService(cfg, adminRepo, customerRepo, sellerRepo, hasher, cache.NewMemoryRefreshTokenStore())
	s.dashboard = NewDashboardService(repository.NewDashboardRepository(db))
	return s
}

type catalogFixture struct {
	customer *models.Customer
	seller   *models.Seller
	category *models.Category
	product  *models.Product
}

// seedCatalog 创建顾客、卖家、分类与单价 25 的商品
func (s *testServices) seedCatalog(t *testing.T, suffix string) catalogFixture {
	t.Helper()
	customer, err := s.customers.Create(CustomerInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada" + suffix + "@example.com",
		Password:  testPassword,
	})
	if err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	seller, err := s.sellers.Create(SellerInput{
		CompanyName: "Acme " + suffix,
		Email:       "acme" + suffix + "@example.com",
		Password:    testPassword,
	})
	if err != nil {
		t.Fatalf("create seller failed: %v", err)
	}
	category, err := s.categories.Create(CategoryInput{Name: "Books " + suffix})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product, err := s.products.Create(ProductInput{
		Name:       "Gopher Guide " + suffix,
		Price:      models.NewMoneyFromInt(25),
		Stock:      10,
		CategoryID: category.ID,
		SellerID:   seller.ID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return catalogFixture{customer: customer, seller: seller, category: category, product: product}
}
