package service

import (
	"errors"
	"testing"

	"github.com/qamees-next/internal/cart"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/repository"
)

func TestCartServiceBuildItem(t *testing.T) {
	db := openServiceTestDB(t)
	repo := repository.NewProductRepository(db)

	plain := &models.Product{Title: "Plain Tee", Price: testMoney("45.50"), Category: "summer", IsActive: true}
	if err := repo.Create(plain); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	override := testMoney("60.00")
	withVariants := &models.Product{Title: "Hoodie", Price: testMoney("80.00"), Category: "winter", IsActive: true}
	if err := repo.Create(withVariants); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := repo.ReplaceVariants(withVariants.ID, []models.ProductVariant{
		{Size: "M", Color: "Black", Price: &override},
	}); err != nil {
		t.Fatalf("create variants failed: %v", err)
	}
	loaded, err := repo.GetByID(withVariants.ID, true)
	if err != nil || loaded == nil || len(loaded.Variants) != 1 {
		t.Fatalf("load product failed: %v", err)
	}
	variant := loaded.Variants[0]

	svc := NewCartService(repo)

	item, err := svc.BuildItem(AddCartItemInput{ProductID: plain.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("build plain item failed: %v", err)
	}
	if item.VariantID != plain.ID || item.Product.Price.String() != "45.5" || item.Quantity != 2 {
		t.Fatalf("unexpected plain item: %+v", item)
	}

	item, err = svc.BuildItem(AddCartItemInput{ProductID: withVariants.ID, VariantID: variant.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("build variant item failed: %v", err)
	}
	if item.VariantID != variant.ID || item.VariantInfo != "Black / M" || item.Product.Price.String() != "60" {
		t.Fatalf("unexpected variant item: %+v", item)
	}

	if _, err := svc.BuildItem(AddCartItemInput{ProductID: withVariants.ID, Quantity: 1}); !errors.Is(err, ErrVariantInvalid) {
		t.Fatalf("expected variant required, got %v", err)
	}
	if _, err := svc.BuildItem(AddCartItemInput{ProductID: withVariants.ID, VariantID: "missing", Quantity: 1}); !errors.Is(err, ErrVariantNotFound) {
		t.Fatalf("expected variant not found, got %v", err)
	}
	if _, err := svc.BuildItem(AddCartItemInput{ProductID: "missing", Quantity: 1}); !errors.Is(err, ErrProductUnavailable) {
		t.Fatalf("expected product unavailable, got %v", err)
	}
	if _, err := svc.BuildItem(AddCartItemInput{ProductID: plain.ID, Quantity: 0}); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected invalid item, got %v", err)
	}
	if _, err := svc.BuildItem(AddCartItemInput{ProductID: plain.ID, Quantity: cart.MaxQuantity + 1}); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected ErrCartItemInvalid above max quantity, got %v", err)
	}
	if item, err := svc.BuildItem(AddCartItemInput{ProductID: plain.ID, Quantity: cart.MaxQuantity}); err != nil || item.Quantity != cart.MaxQuantity {
		t.Fatalf("max quantity must be accepted, got %+v %v", item, err)
	}
}
