package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cart-it/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
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

type repositoryFixture struct {
	customer *models.Customer
	seller   *models.Seller
	category *models.Category
	product  *models.Product
}

func seedRepositoryFixture(t *testing.T, db *gorm.DB, suffix string) repositoryFixture {
	t.Helper()
	customer := &models.Customer{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada" + suffix + "@example.com",
		PasswordHash: "x",
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	seller := &models.Seller{
		CompanyName:  "Acme " + suffix,
		Email:        "acme" + suffix + "@example.com",
		PasswordHash: "x",
	}
	if err := db.Create(seller).Error; err != nil {
		t.Fatalf("create seller failed: %v", err)
	}
	category := &models.Category{Name: "Books " + suffix}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := &models.Product{
		Name:       "Gopher Guide " + suffix,
		Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(25)),
		Stock:      10,
		CategoryID: category.ID,
		SellerID:   seller.ID,
	}
	if err := NewProductRepository(db).Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return repositoryFixture{customer: customer, seller: seller, category: category, product: product}
}

func createTestOrder(t *testing.T, repo *GormOrderRepository, customerID, productID uint, quantity int, status string, at time.Time) *models.Order {
	t.Helper()
	unit := models.NewMoneyFromDecimal(decimal.NewFromInt(25))
	order := &models.Order{
		CustomerID:  customerID,
		ProductID:   productID,
		Quantity:    quantity,
		UnitPrice:   unit,
		TotalAmount: unit.MulInt(quantity),
		Status:      status,
		OrderDate:   at,
	}
	if err := repo.Create(order); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func countOrderProducts(t *testing.T, db *gorm.DB, orderID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Table("order_products").Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		t.Fatalf("count order_products failed: %v", err)
	}
	return count
}

