package repository

import (
	"testing"
	"time"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/models"

	"github.com/shopspring/decimal"
)

func TestOrderCreateLinksProduct(t *testing.T) {
	db := setupRepositoryTestDB(t)
	fx := seedRepositoryFixture(t, db, "link")
	repo := NewOrderRepository(db)

	order := createTestOrder(t, repo, fx.customer.ID, fx.product.ID, 2, constants.OrderStatusPending, time.Now())
	if got := countOrderProducts(t, db, order.ID); got != 1 {
		t.Fatalf("order_products rows want 1 got %d", got)
	}

	loaded, err := repo.GetByIDAndCustomer(order.ID, fx.customer.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if loaded == nil || len(loaded.Products) != 1 || loaded.Products[0].ID != fx.product.ID {
		t.Fatalf("expected linked product, got %+v", loaded)
	}
	if !loaded.TotalAmount.Equal(models.NewMoneyFromDecimal(decimal.NewFromInt(50))) {
		t.Fatalf("total want 50 got %s", loaded.TotalAmount)
	}

	other, err := repo.GetByIDAndCustomer(order.ID, fx.customer.ID+100)
	if err != nil {
		t.Fatalf("get foreign order failed: %v", err)
	}
	if other != nil {
		t.Fatalf("order must not be visible to another customer")
	}
}

func TestOrderUpdateRelinksChangedProduct(t *testing.T) {
	db := setupRepositoryTestDB(t)
	fx := seedRepositoryFixture(t, db, "relink")
	repo := NewOrderRepository(db)
	order := createTestOrder(t, repo, fx.customer.ID, fx.product.ID, 1, constants.OrderStatusPending, time.Now())

	second := &models.Product{
		Name:       "Second",
		Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(5)),
		CategoryID: fx.category.ID,
		SellerID:   fx.seller.ID,
	}
	if err := NewProductRepository(db).Create(second); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	order.ProductID = second.ID
	if err := repo.Update(order, true); err != nil {
		t.Fatalf("update order failed: %v", err)
	}
	var linked []uint
	if err := db.Table("order_products").Where("order_id = ?", order.ID).Pluck("product_id", &linked).Error; err != nil {
		t.Fatalf("pluck order_products failed: %v", err)
	}
	if len(linked) != 1 || linked[0] != second.ID {
		t.Fatalf("expected relinked product %d, got %v", second.ID, linked)
	}
}

func TestOrderDeleteByIDsRemovesJoinRows(t *testing.T) {
	db := setupRepositoryTestDB(t)
	fx := seedRepositoryFixture(t, db, "delete")
	repo := NewOrderRepository(db)
	order := createTestOrder(t, repo, fx.customer.ID, fx.product.ID, 1, constants.OrderStatusPending, time.Now())

	if err := repo.Delete(order.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}
	if got := countOrderProducts(t, db, order.ID); got != 0 {
		t.Fatalf("order_products rows want 0 got %d", got)
	}
	exists, err := repo.Exists(order.ID)
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if exists {
		t.Fatalf("order should be deleted")
	}
}

func TestOrderListFiltersBySellerAndStatus(t *testing.T) {
	db := setupRepositoryTestDB(t)
	fx := seedRepositoryFixture(t, db, "filter")
	other := seedRepositoryFixture(t, db, "filter-other")
	repo := NewOrderRepository(db)
	now := time.Now()

	createTestOrder(t, repo, fx.customer.ID, fx.product.ID, 1, constants.OrderStatusPending, now)
	createTestOrder(t, repo, fx.customer.ID, fx.product.ID, 1, constants.OrderStatusPaid, now)
	createTestOrder(t, repo, other.customer.ID, other.product.ID, 1, constants.OrderStatusPaid, now)

	rows, total, err := repo.List(OrderListFilter{SellerID: fx.seller.ID})
	if err != nil {
		t.Fatalf("list by seller failed: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("seller orders want 2 got total=%d len=%d", total, len(rows))
	}

	rows, total, err = repo.List(OrderListFilter{Status: constants.OrderStatusPaid, Page: 1, PageSize: 1})
	if err != nil {
		t.Fatalf("list by status failed: %v", err)
	}
	if total != 2 || len(rows) != 1 {
		t.Fatalf("paid orders want total=2 page len=1 got total=%d len=%d", total, len(rows))
	}
}
