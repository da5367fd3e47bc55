package service

import (
	"context"
	"testing"
	"time"

	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/repository"
)

func TestDashboardServiceOverviewAndTrends(t *testing.T) {
	db := openServiceTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	if err := productRepo.Create(&models.Product{Title: "Tee", Price: testMoney("20.00"), Category: "summer", IsActive: true}); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	seedOrder(t, orderRepo, "a@example.com")
	cancelled := seedOrder(t, orderRepo, "b@example.com")
	if err := orderRepo.UpdateStatus(cancelled.ID, constants.OrderStatusPending, constants.OrderStatusCancelled); err != nil {
		t.Fatalf("cancel order failed: %v", err)
	}

	svc := NewDashboardService(repository.NewDashboardRepository(db))
	overview, err := svc.GetOverview(context.Background(), true)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.TotalProducts != 1 || overview.TotalOrders != 2 || overview.PendingOrders != 1 {
		t.Fatalf("unexpected overview: %+v", overview)
	}
	if overview.TotalRevenue != "80.00" {
		t.Fatalf("revenue must sum every order, got %s", overview.TotalRevenue)
	}

	points, err := svc.GetTrends(context.Background(), 3)
	if err != nil {
		t.Fatalf("trends failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 trend points, got %d", len(points))
	}
	var ordersInWindow int64
	for _, point := range points {
		ordersInWindow += point.OrdersTotal
	}
	if ordersInWindow != 2 {
		t.Fatalf("expected 2 orders in trend window, got %d", ordersInWindow)
	}

	top, err := svc.GetTopProducts(context.Background(), 7, 0)
	if err != nil {
		t.Fatalf("top products failed: %v", err)
	}
	if len(top) != 1 || top[0].Quantity != 2 || top[0].Amount != "40.00" {
		t.Fatalf("cancelled orders must be excluded from rankings: %+v", top)
	}
}

func TestDashboardWindowClampsDays(t *testing.T) {
	svc := NewDashboardService(nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) }

	start, end := svc.window(0)
	if !end.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)) || !start.Equal(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected default window: %s - %s", start, end)
	}
	start, _ = svc.window(1000)
	if end.Sub(start) != 90*24*time.Hour {
		t.Fatalf("expected window clamped to 90 days")
	}
}
