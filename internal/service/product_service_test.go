package service

import (
	"context"
	"errors"
	"testing"

	"github.com/qamees-next/internal/repository"

	"github.com/shopspring/decimal"
)

func TestProductServiceCreateInactiveAndListPublic(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(repository.NewProductRepository(openServiceTestDB(t)))

	active, err := svc.Create(ctx, ProductInput{
		Title:    " Summer Tee ",
		Price:    decimal.RequireFromString("99.90"),
		Category: "Summer",
	})
	if err != nil {
		t.Fatalf("create active product failed: %v", err)
	}
	if active.Title != "Summer Tee" || active.Category != "summer" || !active.IsActive {
		t.Fatalf("unexpected product: %+v", active)
	}

	inactive := false
	hidden, err := svc.Create(ctx, ProductInput{
		Title:    "Draft Hoodie",
		Price:    decimal.RequireFromString("150"),
		Category: "winter",
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("create inactive product failed: %v", err)
	}

	products, err := svc.ListPublic(ctx, "")
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != active.ID {
		t.Fatalf("expected only the active product, got %d", len(products))
	}
	if _, err := svc.GetPublic(hidden.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inactive product must be hidden, got %v", err)
	}
	if _, err := svc.GetAdminByID(hidden.ID); err != nil {
		t.Fatalf("admin must see inactive product: %v", err)
	}

	winter, err := svc.ListPublic(ctx, "winter")
	if err != nil || len(winter) != 0 {
		t.Fatalf("expected empty winter list, got %d err=%v", len(winter), err)
	}
	if _, err := svc.ListPublic(ctx, "spring"); !errors.Is(err, ErrProductCategory) {
		t.Fatalf("expected category error, got %v", err)
	}
}

func TestProductServiceValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(repository.NewProductRepository(openServiceTestDB(t)))

	if _, err := svc.Create(ctx, ProductInput{Title: "", Price: decimal.NewFromInt(1)}); !errors.Is(err, ErrProductInvalid) {
		t.Fatalf("expected invalid product, got %v", err)
	}
	if _, err := svc.Create(ctx, ProductInput{Title: "Tee", Price: decimal.NewFromInt(-1)}); !errors.Is(err, ErrProductPriceInvalid) {
		t.Fatalf("expected invalid price, got %v", err)
	}
	if _, err := svc.Update(ctx, "missing", ProductInput{Title: "Tee"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := svc.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProductServiceReplaceVariants(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(repository.NewProductRepository(openServiceTestDB(t)))

	product, err := svc.Create(ctx, ProductInput{Title: "Tee", Price: decimal.NewFromInt(50), Category: "custom"})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	price := decimal.RequireFromString("55.00")
	updated, err := svc.ReplaceVariants(ctx, product.ID, []ProductVariantInput{
		{Size: "M", Color: "White"},
		{Size: "L", Color: "White", Price: &price},
	})
	if err != nil {
		t.Fatalf("replace variants failed: %v", err)
	}
	if len(updated.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(updated.Variants))
	}

	if _, err := svc.ReplaceVariants(ctx, product.ID, []ProductVariantInput{
		{Size: "M", Color: "White"},
		{Size: "m", Color: "white"},
	}); !errors.Is(err, ErrVariantInvalid) {
		t.Fatalf("expected duplicate variant error, got %v", err)
	}

	updated, err = svc.ReplaceVariants(ctx, product.ID, nil)
	if err != nil {
		t.Fatalf("clear variants failed: %v", err)
	}
	if len(updated.Variants) != 0 {
		t.Fatalf("expected variants cleared, got %d", len(updated.Variants))
	}
}
