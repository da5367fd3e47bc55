package repository

import (
	"testing"
	"time"

	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/models"
)

func createTestProduct(t *testing.T, repo *GormProductRepository, title, category string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Title:    title,
		Price:    money("120.00"),
		Category: category,
		IsActive: true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if !active {
		product.IsActive = false
		if err := repo.Update(product); err != nil {
			t.Fatalf("deactivate product failed: %v", err)
		}
	}
	return product
}

func TestProductListFiltersActiveAndCategory(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	createTestProduct(t, repo, "Linen Thobe", constants.ProductCategorySummer, true)
	time.Sleep(5 * time.Millisecond)
	createTestProduct(t, repo, "Wool Bisht", constants.ProductCategoryWinter, true)
	createTestProduct(t, repo, "Hidden", constants.ProductCategorySummer, false)

	products, total, err := repo.List(ProductListFilter{OnlyActive: true})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("expected 2 active products, got total=%d len=%d", total, len(products))
	}
	if products[0].Title != "Wool Bisht" {
		t.Fatalf("expected newest first, got %s", products[0].Title)
	}

	products, _, err = repo.List(ProductListFilter{OnlyActive: true, Category: constants.ProductCategorySummer})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if len(products) != 1 || products[0].Title != "Linen Thobe" {
		t.Fatalf("unexpected category result: %+v", products)
	}

	products, _, err = repo.List(ProductListFilter{Search: "wool"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 search result, got %d", len(products))
	}

	// 通配符按字面匹配
	products, _, err = repo.List(ProductListFilter{Search: "%"})
	if err != nil {
		t.Fatalf("wildcard search failed: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected literal %% to match nothing, got %d", len(products))
	}
}

func TestProductGetByIDRespectsActiveFlag(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	hidden := createTestProduct(t, repo, "Hidden", constants.ProductCategorySummer, false)

	got, err := repo.GetByID(hidden.ID, true)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected inactive product to be hidden")
	}
	got, err = repo.GetByID(hidden.ID, false)
	if err != nil || got == nil {
		t.Fatalf("expected product for admin lookup, err=%v", err)
	}
	missing, err := repo.GetByID("missing", false)
	if err != nil || missing != nil {
		t.Fatalf("expected nil for missing product, got %+v err=%v", missing, err)
	}
}

func TestProductReplaceVariants(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	product := createTestProduct(t, repo, "Thobe", constants.ProductCategorySummer, true)

	if err := repo.ReplaceVariants(product.ID, []models.ProductVariant{
		{Color: "White", Size: "M"},
		{Color: "White", Size: "L"},
	}); err != nil {
		t.Fatalf("replace variants failed: %v", err)
	}
	if err := repo.ReplaceVariants(product.ID, []models.ProductVariant{
		{Color: "Black", Size: "S"},
	}); err != nil {
		t.Fatalf("replace variants again failed: %v", err)
	}

	got, err := repo.GetByID(product.ID, true)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if len(got.Variants) != 1 || got.Variants[0].Label() != "Black / S" {
		t.Fatalf("unexpected variants: %+v", got.Variants)
	}

	variant, err := repo.GetVariant(product.ID, got.Variants[0].ID)
	if err != nil || variant == nil {
		t.Fatalf("expected variant lookup to succeed, err=%v", err)
	}
	other, err := repo.GetVariant("other-product", got.Variants[0].ID)
	if err != nil || other != nil {
		t.Fatalf("variant must be scoped to its product")
	}
}
