package repository

import (
	"testing"
	"time"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/models"
)

func TestDashboardOverviewScopesToSeller(t *testing.T) {
	db := setupRepositoryTestDB(t)
	fx := seedRepositoryFixture(t, db, "dash")
	other := seedRepositoryFixture(t, db, "dash-other")
	orders := NewOrderRepository(db)
	repo := NewDashboardRepository(db)
	now := time.Now()

	createTestOrder(t, orders, fx.customer.ID, fx.product.ID, 2, constants.OrderStatusPaid, now)
	createTestOrder(t, orders, fx.customer.ID, fx.product.ID, 1, constants.OrderStatusPending, now)
	createTestOrder(t, orders, other.customer.ID, other.product.ID, 4, constants.OrderStatusDelivered, now)

	if err := db.Create(&models.ProductInventory{ProductID: fx.product.ID, CurrentStock: 1, MinimumStock: 3}).Error; err != nil {
		t.Fatalf("create inventory failed: %v", err)
	}

	startAt := now.Add(-time.Hour)
	endAt := now.Add(time.Hour)

	all, err := repo.GetOverview(0, startAt, endAt)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if all.OrdersTotal != 3 || all.PaidOrders != 2 || all.PendingOrders != 1 {
		t.Fatalf("unexpected global order counts: %+v", all)
	}
	if all.Revenue != 150 {
		t.Fatalf("global revenue want 150 got %v", all.Revenue)
	}
	if all.Customers != 2 || all.Sellers != 2 || all.Products != 2 {
		t.Fatalf("unexpected global entity counts: %+v", all)
	}

	mine, err := repo.GetOverview(fx.seller.ID, startAt, endAt)
	if err != nil {
		t.Fatalf("seller overview failed: %v", err)
	}
	if mine.OrdersTotal != 2 || mine.Revenue != 50 || mine.Products != 1 {
		t.Fatalf("unexpected seller overview: %+v", mine)
	}

	low, err := repo.CountLowStock(fx.seller.ID)
	if err != nil || low != 1 {
		t.Fatalf("low stock want 1 got %d %v", low, err)
	}
	low, err = repo.CountLowStock(other.seller.ID)
	if err != nil || low != 0 {
		t.Fatalf("other seller low stock want 0 got %d %v", low, err)
	}
}

func TestDashboardTopProductsAndTrends(t *testing.T) {
	db := setupRepositoryTestDB(t)
	fx := seedRepositoryFixture(t, db, "top")
	orders := NewOrderRepository(db)
	repo := NewDashboardRepository(db)
	now := time.Now()

	createTestOrder(t, orders, fx.customer.ID, fx.product.ID, 3, constants.OrderStatusShipped, now)
	createTestOrder(t, orders, fx.customer.ID, fx.product.ID, 1, constants.OrderStatusCancelled, now)

	rows, err := repo.GetTopProducts(0, now.Add(-time.Hour), now.Add(time.Hour), 5)
	if err != nil {
		t.Fatalf("top products failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ProductID != fx.product.ID || rows[0].Quantity != 3 || rows[0].Revenue != 75 {
		t.Fatalf("unexpected ranking: %+v", rows)
	}

	trends, err := repo.GetOrderTrends(0, now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("order trends failed: %v", err)
	}
	var totalOrders int64
	for _, row := range trends {
		totalOrders += row.OrdersTotal
	}
	if totalOrders != 2 {
		t.Fatalf("trend orders want 2 got %d (%+v)", totalOrders, trends)
	}
}
