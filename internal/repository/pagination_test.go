package repository

import (
	"fmt"
	"testing"

	"github.com/cart-it/internal/models"
)

func TestApplyPaginationClampsPageSize(t *testing.T) {
	db := setupRepositoryTestDB(t)
	for i := 0; i < maxPageSize+5; i++ {
		if err := db.Create(&models.Category{Name: fmt.Sprintf("cat-%03d", i)}).Error; err != nil {
			t.Fatalf("create category failed: %v", err)
		}
	}

	var rows []models.Category
	if err := applyPagination(db.Model(&models.Category{}).Order("id asc"), 1, 500).Find(&rows).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(rows) != maxPageSize {
		t.Fatalf("want %d rows got %d", maxPageSize, len(rows))
	}

	rows = nil
	if err := applyPagination(db.Model(&models.Category{}).Order("id asc"), 0, 10).Find(&rows).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(rows) != 10 || rows[0].Name != "cat-000" {
		t.Fatalf("page below 1 should read the first page, got %d rows", len(rows))
	}

	rows = nil
	if err := applyPagination(db.Model(&models.Category{}), 3, 0).Find(&rows).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(rows) != maxPageSize+5 {
		t.Fatalf("zero page size should disable pagination, got %d rows", len(rows))
	}
}
