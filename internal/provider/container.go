package provider

import (
	"time"

	"github.com/cart-it/internal/authz"
	"github.com/cart-it/internal/cache"
	"github.com/cart-it/internal/config"
	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/queue"
	"github.com/cart-it/internal/repository"
	"github.com/cart-it/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config       *config.Config
	DB           *gorm.DB
	QueueClient  *queue.Client
	RefreshStore cache.RefreshTokenStore

	// Repositories
	AdministratorRepo repository.AdministratorRepository
	CustomerRepo      repository.CustomerRepository
	SellerRepo        repository.SellerRepository
	CategoryRepo      repository.CategoryRepository
	ProductRepo       repository.ProductRepository
	InventoryRepo     repository.InventoryRepository
	CartRepo          repository.CartRepository
	OrderRepo         repository.OrderRepository
	PaymentRepo       repository.PaymentRepository
	ReviewRepo        repository.ReviewRepository
	DashboardRepo     repository.DashboardRepository

	// Services
	PasswordHasher       *service.PasswordHasher
	AuthzService         *authz.Service
	AuthService          *service.AuthService
	RegistrationService  *service.RegistrationService
	CaptchaService       *service.CaptchaService
	UploadService        *service.UploadService
	CustomerService      *service.CustomerService
	SellerService        *service.SellerService
	AdministratorService *service.AdministratorService
	CategoryService      *service.CategoryService
	ProductService       *service.ProductService
	InventoryService     *service.InventoryService
	CartService          *service.CartService
	OrderService         *service.OrderService
	PaymentService       *service.PaymentService
	ReviewService        *service.ReviewService
	DashboardService     *service.DashboardService
}

// NewContainer 基于全局数据库连接初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}
	return NewContainerWithDB(cfg, models.DB, queueClient)
}

// NewContainerWithDB 使用指定连接与队列客户端初始化容器（队列可为 nil）
func NewContainerWithDB(cfg *config.Config, db *gorm.DB, queueClient *queue.Client) *Container {
	c := &Container{
		Config:       cfg,
		DB:           db,
		QueueClient:  queueClient,
		RefreshStore: cache.NewRefreshTokenStore(),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := c.DB
	c.AdministratorRepo = repository.NewAdministratorRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.SellerRepo = repository.NewSellerRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.InventoryRepo = repository.NewInventoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PaymentRepo = repository.NewPaymentRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(c.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.PasswordHasher = service.NewPasswordHasher(c.Config.Security.PasswordPolicy)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	uploadService, err := service.NewUploadService(c.Config.Upload)
	if err != nil {
		logger.Warnw("provider_init_upload_failed", "storage", c.Config.Upload.Storage, "error", err)
	}
	c.UploadService = uploadService

	c.CustomerService = service.NewCustomerService(c.CustomerRepo, c.CartRepo, c.OrderRepo, c.PaymentRepo, c.ReviewRepo, c.PasswordHasher)
	c.SellerService = service.NewSellerService(c.SellerRepo, c.ProductRepo, c.OrderRepo, c.PaymentRepo, c.CartRepo, c.InventoryRepo, c.ReviewRepo, c.PasswordHasher)
	c.AdministratorService = service.NewAdministratorService(c.AdministratorRepo, c.PasswordHasher)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(service.ProductServiceOptions{
		ProductRepo:   c.ProductRepo,
		CategoryRepo:  c.CategoryRepo,
		SellerRepo:    c.SellerRepo,
		OrderRepo:     c.OrderRepo,
		PaymentRepo:   c.PaymentRepo,
		CartRepo:      c.CartRepo,
		InventoryRepo: c.InventoryRepo,
		ReviewRepo:    c.ReviewRepo,
		CacheTTL:      time.Duration(c.Config.Catalog.ProductCacheSeconds) * time.Second,
	})
	c.InventoryService = service.NewInventoryService(c.InventoryRepo, c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.CustomerRepo)

	// 关闭低库存检查时订单服务不做任何库存告警
	var lowStock *service.InventoryService
	orderQueue := c.QueueClient
	if c.Config.Inventory.LowStockCheckEnabled {
		lowStock = c.InventoryService
	} else {
		orderQueue = nil
	}
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.CustomerRepo, c.PaymentRepo, lowStock, orderQueue)
	c.PaymentService = service.NewPaymentService(c.PaymentRepo, c.OrderRepo, c.QueueClient)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.CustomerRepo, c.ProductRepo)
	c.RegistrationService = service.NewRegistrationService(c.AdministratorRepo, c.CustomerRepo, c.SellerRepo, c.CustomerService, c.SellerService)
	c.AuthService = service.NewAuthService(c.Config, c.AdministratorRepo, c.CustomerRepo, c.SellerRepo, c.PasswordHasher, c.RefreshStore)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
}

// Close 释放容器持有的外部连接
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
}
