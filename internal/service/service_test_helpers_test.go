package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/qamees-next/internal/cart"
	"github.com/qamees-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Order{},
		&models.OrderItem{},
		&models.CustomDesign{},
		&models.PromotionalBanner{},
		&models.Setting{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func testMoney(value string) models.Money {
	return models.NewMoneyFromDecimal(decimal.RequireFromString(value))
}

func newTestCartStore(t *testing.T) *cart.Store {
	t.Helper()
	return cart.NewStore(context.Background(), cart.NewMemoryStorage(), cart.SessionKey("test"))
}

func newCartItem(variantID, title, price string, quantity int) cart.Item {
	return cart.Item{
		Product: cart.Product{
			ID:       "p-" + variantID,
			Title:    title,
			Price:    decimal.RequireFromString(price),
			IsActive: true,
		},
		VariantID: variantID,
		Quantity:  quantity,
	}
}
