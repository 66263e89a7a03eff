//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	drop := func() {
		_ = db.Migrator().DropTable("order_products")
		all := models.AllModels()
		for i := len(all) - 1; i >= 0; i-- {
			_ = db.Migrator().DropTable(all[i])
		}
	}
	drop()
	if err := models.MigrateDB(db); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		drop()
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestPostgresSearchUsesILike(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	fx := seedRepositoryFixture(t, db, "pg")

	rows, total, err := NewProductRepository(db).List(ProductListFilter{Search: "GOPHER"})
	if err != nil {
		t.Fatalf("product search failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].ID != fx.product.ID {
		t.Fatalf("case-insensitive search want 1 got total=%d len=%d", total, len(rows))
	}
}

func TestPostgresDashboardQueries(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	fx := seedRepositoryFixture(t, db, "pg-dash")
	now := time.Now().UTC().Truncate(time.Second)
	createTestOrder(t, NewOrderRepository(db), fx.customer.ID, fx.product.ID, 2, constants.OrderStatusPaid, now)

	repo := NewDashboardRepository(db)
	overview, err := repo.GetOverview(fx.seller.ID, now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.OrdersTotal != 1 || overview.Revenue != 50 {
		t.Fatalf("unexpected overview: %+v", overview)
	}
	trends, err := repo.GetOrderTrends(0, now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("trends failed: %v", err)
	}
	if len(trends) != 1 || trends[0].Day != now.Format("2006-01-02") {
		t.Fatalf("unexpected trends: %+v", trends)
	}
	if _, err := repo.GetTopProducts(0, now.Add(-time.Hour), now.Add(time.Hour), 3); err != nil {
		t.Fatalf("top products failed: %v", err)
	}
}
