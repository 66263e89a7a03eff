package router

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/cart-it/internal/cache"
	"github.com/cart-it/internal/config"
	adminhandlers "github.com/cart-it/internal/http/handlers/admin"
	customerhandlers "github.com/cart-it/internal/http/handlers/customer"
	publichandlers "github.com/cart-it/internal/http/handlers/public"
	sellerhandlers "github.com/cart-it/internal/http/handlers/seller"
	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/i18n"
	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	if err := handlershared.RegisterValidators(); err != nil {
		logger.Errorw("register_validators_failed", "error", err)
	}
	r := gin.New()

	// 初始化 Handler（按公开/顾客/卖家/后台分组）
	publicHandler := publichandlers.New(c)
	customerHandler := customerhandlers.New(c)
	sellerHandler := sellerhandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "cartit"
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.too_many_requests",
	}
	registerRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:register", redisPrefix),
		WindowSeconds: cfg.Security.RegisterRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.RegisterRateLimit.MaxAttempts,
		MessageKey:    "error.too_many_requests",
	}

	// 中间件
	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	if strings.ToLower(strings.TrimSpace(cfg.Upload.Storage)) != "s3" {
		localDir := strings.TrimSpace(cfg.Upload.LocalDir)
		if localDir == "" {
			localDir = "./uploads"
		}
		r.Static("/uploads", localDir)
	}

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(ctx *gin.Context) {
		msg := i18n.T(i18n.ResolveLocale(ctx), "error.route_not_found")
		response.Error(ctx, response.CodeNotFound, msg)
	})

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/categories/:id", publicHandler.GetCategory)
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/products/:id/reviews", publicHandler.ListProductReviews)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
		}

		// 认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
			auth.POST("/refresh", publicHandler.Refresh)
			auth.POST("/logout", publicHandler.Logout)
			registerLimit := RateLimitMiddleware(cache.Client(), registerRule, KeyByIP)
			auth.POST("/register/customer", registerLimit, publicHandler.RegisterCustomer)
			auth.POST("/register/seller", registerLimit, publicHandler.RegisterSeller)
		}

		authenticated := []gin.HandlerFunc{JWTAuthMiddleware(c.AuthService), RoleRBACMiddleware(c.AuthzService)}

		// 顾客接口
		customer := apiV1.Group("", authenticated...)
		{
			customer.GET("/me", customerHandler.GetMe)
			customer.PUT("/me", customerHandler.UpdateMe)
			customer.PATCH("/me", customerHandler.UpdateMe)

			customer.GET("/cart", customerHandler.ListCart)
			customer.POST("/cart", customerHandler.AddCartItem)
			customer.DELETE("/cart", customerHandler.ClearCart)
			customer.PUT("/cart/:id", customerHandler.UpdateCartItem)
			customer.PATCH("/cart/:id", customerHandler.UpdateCartItem)
			customer.DELETE("/cart/:id", customerHandler.RemoveCartItem)

			customer.GET("/orders", customerHandler.ListOrders)
			customer.POST("/orders", customerHandler.CreateOrder)
			customer.GET("/orders/:id", customerHandler.GetOrder)
			customer.PUT("/orders/:id", customerHandler.UpdateOrder)
			customer.PATCH("/orders/:id", customerHandler.UpdateOrder)
			customer.DELETE("/orders/:id", customerHandler.DeleteOrder)

			customer.GET("/payments", customerHandler.ListPayments)
			customer.POST("/payments", customerHandler.CreatePayment)
			customer.GET("/payments/:id", customerHandler.GetPayment)
			customer.PUT("/payments/:id", customerHandler.UpdatePayment)
			customer.PATCH("/payments/:id", customerHandler.UpdatePayment)

			customer.GET("/reviews", customerHandler.ListReviews)
			customer.POST("/reviews", customerHandler.CreateReview)
			customer.PUT("/reviews/:id", customerHandler.UpdateReview)
			customer.PATCH("/reviews/:id", customerHandler.UpdateReview)
			customer.DELETE("/reviews/:id", customerHandler.DeleteReview)
		}

		// 卖家接口
		seller := apiV1.Group("/seller", authenticated...)
		{
			seller.GET("/me", sellerHandler.GetMe)
			seller.PUT("/me", sellerHandler.UpdateMe)
			seller.PATCH("/me", sellerHandler.UpdateMe)
			seller.GET("/dashboard", sellerHandler.GetDashboard)

			seller.GET("/products", sellerHandler.ListProducts)
			seller.POST("/products", sellerHandler.CreateProduct)
			seller.GET("/products/:id", sellerHandler.GetProduct)
			seller.PUT("/products/:id", sellerHandler.UpdateProduct)
			seller.PATCH("/products/:id", sellerHandler.UpdateProduct)
			seller.DELETE("/products/:id", sellerHandler.DeleteProduct)

			seller.GET("/inventory", sellerHandler.ListInventory)
			seller.POST("/inventory", sellerHandler.CreateInventory)
			seller.GET("/inventory/:id", sellerHandler.GetInventory)
			seller.PUT("/inventory/:id", sellerHandler.UpdateInventory)
			seller.PATCH("/inventory/:id", sellerHandler.UpdateInventory)
			seller.DELETE("/inventory/:id", sellerHandler.DeleteInventory)

			seller.GET("/orders", sellerHandler.ListOrders)
			seller.POST("/uploads", sellerHandler.UploadProductImage)
		}

		// 后台接口
		admin := apiV1.Group("/admin", authenticated...)
		{
			admin.GET("/dashboard", adminHandler.GetDashboardOverview)
			admin.POST("/uploads", adminHandler.UploadProductImage)
			admin.GET("/inventory/low-stock", adminHandler.ListLowStock)

			registerCRUD(admin, "/customers", crudHandlers{
				list: adminHandler.ListCustomers, get: adminHandler.GetCustomer, create: adminHandler.CreateCustomer,
				update: adminHandler.UpdateCustomer, remove: adminHandler.DeleteCustomer,
			})
			registerCRUD(admin, "/sellers", crudHandlers{
				list: adminHandler.ListSellers, get: adminHandler.GetSeller, create: adminHandler.CreateSeller,
				update: adminHandler.UpdateSeller, remove: adminHandler.DeleteSeller,
			})
			registerCRUD(admin, "/administrators", crudHandlers{
				list: adminHandler.ListAdministrators, get: adminHandler.GetAdministrator, create: adminHandler.CreateAdministrator,
				update: adminHandler.UpdateAdministrator, remove: adminHandler.DeleteAdministrator,
			})
			registerCRUD(admin, "/categories", crudHandlers{
				list: adminHandler.ListCategories, get: adminHandler.GetCategory, create: adminHandler.CreateCategory,
				update: adminHandler.UpdateCategory, remove: adminHandler.DeleteCategory,
			})
			registerCRUD(admin, "/products", crudHandlers{
				list: adminHandler.ListProducts, get: adminHandler.GetProduct, create: adminHandler.CreateProduct,
				update: adminHandler.UpdateProduct, remove: adminHandler.DeleteProduct,
			})
			registerCRUD(admin, "/inventory", crudHandlers{
				list: adminHandler.ListInventory, get: adminHandler.GetInventory, create: adminHandler.CreateInventory,
				update: adminHandler.UpdateInventory, remove: adminHandler.DeleteInventory,
			})
			registerCRUD(admin, "/carts", crudHandlers{
				list: adminHandler.ListCarts, get: adminHandler.GetCart, create: adminHandler.CreateCart,
				update: adminHandler.UpdateCart, remove: adminHandler.DeleteCart,
			})
			registerCRUD(admin, "/orders", crudHandlers{
				list: adminHandler.ListOrders, get: adminHandler.GetOrder, create: adminHandler.CreateOrder,
				update: adminHandler.UpdateOrder, remove: adminHandler.DeleteOrder,
			})
			registerCRUD(admin, "/payments", crudHandlers{
				list: adminHandler.ListPayments, get: adminHandler.GetPayment, create: adminHandler.CreatePayment,
				update: adminHandler.UpdatePayment, remove: adminHandler.DeletePayment,
			})
			registerCRUD(admin, "/reviews", crudHandlers{
				list: adminHandler.ListReviews, get: adminHandler.GetReview, create: adminHandler.CreateReview,
				update: adminHandler.UpdateReview, remove: adminHandler.DeleteReview,
			})
		}
	}

	logger.Debugw("routes_registered", "count", len(BuildRouteCatalog(r)))
	return r
}

type crudHandlers struct {
	list   gin.HandlerFunc
	get    gin.HandlerFunc
	create gin.HandlerFunc
	update gin.HandlerFunc
	remove gin.HandlerFunc
}

// registerCRUD 注册标准资源路由：PUT 与 PATCH 共用部分更新处理器
func registerCRUD(group *gin.RouterGroup, path string, h crudHandlers) {
	item := path + "/:id"
	group.GET(path, h.list)
	group.POST(path, h.create)
	group.GET(item, h.get)
	group.PUT(item, h.update)
	group.PATCH(item, h.update)
	group.DELETE(item, h.remove)
}

// RouteCatalogItem 路由目录项
type RouteCatalogItem struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// BuildRouteCatalog 列出已注册的 API 路由（不含 HEAD/OPTIONS），按路径排序
func BuildRouteCatalog(engine *gin.Engine) []RouteCatalogItem {
	if engine == nil {
		return nil
	}
	routes := engine.Routes()
	items := make([]RouteCatalogItem, 0, len(routes))
	for _, route := range routes {
		method := strings.ToUpper(strings.TrimSpace(route.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(route.Path, "/api/v1/") {
			continue
		}
		items = append(items, RouteCatalogItem{Method: method, Path: route.Path})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Path == items[j].Path {
			return items[i].Method < items[j].Method
		}
		return items[i].Path < items[j].Path
	})
	return items
}
