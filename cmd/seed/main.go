package main

import (
	"errors"
	"os"
	"time"

	"github.com/cart-it/internal/config"
	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/models"
	"github.com/cart-it/internal/provider"
	"github.com/cart-it/internal/service"

	"gorm.io/gorm"
)

const (
	demoSellerEmail    = "store@cart-it.local"
	demoSellerPassword = "store1234"
)

type seedProduct struct {
	Name        string
	Description string
	Price       string
	Stock       int
	Minimum     int
	Category    string
}

var seedCategories = []service.CategoryInput{
	{Name: "Electronics", Description: "Phones, audio and gadgets"},
	{Name: "Lifestyle", Description: "Home and everyday goods"},
	{Name: "Accessories", Description: "Cables, cases and chargers"},
}

var seedProducts = []seedProduct{
	{Name: "Wireless Bluetooth Earphones", Description: "Long battery life, comfortable fit", Price: "99.99", Stock: 120, Minimum: 20, Category: "Electronics"},
	{Name: "Smart Watch", Description: "Heart rate, sleep and step tracking", Price: "199.00", Stock: 40, Minimum: 10, Category: "Electronics"},
	{Name: "Ceramic Coffee Mug", Description: "350ml, dishwasher safe", Price: "12.50", Stock: 300, Minimum: 50, Category: "Lifestyle"},
	{Name: "Linen Throw Blanket", Description: "Soft washed linen", Price: "59.00", Stock: 8, Minimum: 10, Category: "Lifestyle"},
	{Name: "USB-C Cable 2m", Description: "100W braided cable", Price: "9.99", Stock: 500, Minimum: 100, Category: "Accessories"},
	{Name: "Phone Case", Description: "Shock absorbing TPU case", Price: "19.90", Stock: 0, Minimum: 25, Category: "Accessories"},
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, false); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 管理员
	if err := models.InitDefaultAdmin(models.DB, os.Getenv("CARTIT_DEFAULT_ADMIN_EMAIL"), os.Getenv("CARTIT_DEFAULT_ADMIN_PASSWORD")); err != nil {
		stdLog.Printf("Failed to create administrator: %v", err)
	}

	// 种子数据不投递异步任务
	c := provider.NewContainerWithDB(cfg, models.DB, nil)
	defer c.Close()

	// 卖家
	seller, err := c.SellerRepo.GetByEmail(demoSellerEmail)
	if err != nil {
		stdLog.Fatalf("Failed to load seller: %v", err)
	}
	if seller == nil {
		seller, err = c.SellerService.Create(service.SellerInput{
			CompanyName: "Cart-It Demo Store",
			ContactName: "Demo Owner",
			Email:       demoSellerEmail,
			Password:    demoSellerPassword,
		})
		if err != nil {
			stdLog.Fatalf("Failed to create seller: %v", err)
		}
		stdLog.Printf("Created seller: %s", seller.Email)
	} else {
		stdLog.Printf("Seller already exists: %s", seller.Email)
	}

	// 分类
	categoryIDs := map[string]uint{}
	for _, input := range seedCategories {
		category, err := c.CategoryService.Create(input)
		if errors.Is(err, service.ErrCategoryNameExists) {
			var existing models.Category
			if err := models.DB.Where("name = ?", input.Name).First(&existing).Error; err != nil {
				stdLog.Printf("Failed to load category %s: %v", input.Name, err)
				continue
			}
			categoryIDs[input.Name] = existing.ID
			stdLog.Printf("Category already exists: %s", input.Name)
			continue
		}
		if err != nil {
			stdLog.Printf("Failed to create category %s: %v", input.Name, err)
			continue
		}
		categoryIDs[input.Name] = category.ID
		stdLog.Printf("Created category: %s", input.Name)
	}

	// 商品与库存
	now := time.Now()
	nextRestock := now.AddDate(0, 0, 14)
	for _, item := range seedProducts {
		categoryID, ok := categoryIDs[item.Category]
		if !ok {
			stdLog.Printf("Skip product %s: category %s missing", item.Name, item.Category)
			continue
		}
		var existing models.Product
		err := models.DB.Where("name = ? AND seller_id = ?", item.Name, seller.ID).First(&existing).Error
		if err == nil {
			stdLog.Printf("Product already exists: %s", item.Name)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			stdLog.Printf("Failed to load product %s: %v", item.Name, err)
			continue
		}

		price, err := models.NewMoneyFromString(item.Price)
		if err != nil {
			stdLog.Printf("Invalid price for %s: %v", item.Name, err)
			continue
		}
		product, err := c.ProductService.Create(service.ProductInput{
			Name:        item.Name,
			Description: item.Description,
			Price:       price,
			Stock:       item.Stock,
			CategoryID:  categoryID,
			SellerID:    seller.ID,
		})
		if err != nil {
			stdLog.Printf("Failed to create product %s: %v", item.Name, err)
			continue
		}
		if _, err := c.InventoryService.Create(seller.ID, service.InventoryInput{
			ProductID:       product.ID,
			CurrentStock:    item.Stock,
			MinimumStock:    item.Minimum,
			LastRestockDate: &now,
			NextRestockDate: &nextRestock,
		}); err != nil {
			stdLog.Printf("Failed to create inventory for %s: %v", item.Name, err)
			continue
		}
		stdLog.Printf("Created product: %s (%s)", item.Name, price.String())
	}

	stdLog.Printf("Seed completed")
}
