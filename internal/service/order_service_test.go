package service

import (
	"errors"
	"testing"

	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/repository"
)

func seedOrder(t *testing.T, repo repository.OrderRepository, email string) *models.Order {
	t.Helper()
	order := &models.Order{
		CustomerName:    "Customer",
		CustomerEmail:   email,
		CustomerPhone:   "+966501234567",
		ShippingAddress: "Street 1",
		ShippingCity:    "Jeddah",
		ShippingCountry: constants.DefaultShippingCountry,
		TotalAmount:     testMoney("40.00"),
		Status:          constants.OrderStatusPending,
	}
	items := []models.OrderItem{{
		ProductID:    "p1",
		ProductTitle: "Tee",
		Quantity:     2,
		UnitPrice:    testMoney("20.00"),
		TotalPrice:   testMoney("40.00"),
	}}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	repo := repository.NewOrderRepository(openServiceTestDB(t))
	svc := NewOrderService(repo, nil)
	order := seedOrder(t, repo, "a@example.com")

	updated, err := svc.UpdateStatus(order.ID, " Shipped ")
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.OrderStatusShipped {
		t.Fatalf("unexpected status: %s", updated.Status)
	}
	reloaded, err := svc.GetByID(order.ID)
	if err != nil || reloaded.Status != constants.OrderStatusShipped {
		t.Fatalf("status not persisted: %+v err=%v", reloaded, err)
	}

	if _, err := svc.UpdateStatus(order.ID, "refunded"); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if _, err := svc.UpdateStatus("missing", constants.OrderStatusDelivered); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderServiceListAdmin(t *testing.T) {
	repo := repository.NewOrderRepository(openServiceTestDB(t))
	svc := NewOrderService(repo, nil)
	first := seedOrder(t, repo, "a@example.com")
	seedOrder(t, repo, "b@example.com")
	if _, err := svc.UpdateStatus(first.ID, constants.OrderStatusCancelled); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	orders, total, err := svc.ListAdmin(OrderListInput{Page: 1, PageSize: 10, Status: "cancelled"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(orders) != 1 || orders[0].ID != first.ID {
		t.Fatalf("unexpected filtered list: total=%d len=%d", total, len(orders))
	}
	if len(orders[0].Items) != 1 {
		t.Fatalf("expected items preloaded")
	}
	if _, _, err := svc.ListAdmin(OrderListInput{Status: "lost"}); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected invalid status filter, got %v", err)
	}
}
