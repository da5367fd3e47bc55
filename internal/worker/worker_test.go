package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/qamees-next/internal/cart"
	"github.com/qamees-next/internal/metrics"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/queue"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

type fakeOrderRepository struct {
	orders map[string]*models.Order
	err    error
	calls  int
}

func (r *fakeOrderRepository) GetByID(id string) (*models.Order, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.orders[id], nil
}

func newNotificationOrder() *models.Order {
	return &models.Order{
		ID:            "9f1c2d3e-aaaa-bbbb-cccc-000000000001",
		CustomerEmail: " sara@example.com ",
		Status:        "pending",
		TotalAmount:   models.NewMoneyFromDecimal(decimal.RequireFromString("250.28")),
		Items: []models.OrderItem{
			{
				ProductTitle: "Linen Thobe",
				VariantInfo:  "White / M",
				Quantity:     2,
				TotalPrice:   models.NewMoneyFromDecimal(decimal.RequireFromString("200.00")),
			},
			{
				ProductTitle: "Cap",
				Quantity:     1,
				TotalPrice:   models.NewMoneyFromDecimal(decimal.RequireFromString("50.28")),
			},
		},
	}
}

func TestBuildOrderNotification(t *testing.T) {
	if got := buildOrderNotification(nil, "en"); got.OrderID != "" {
		t.Fatalf("expected empty notification for nil order")
	}

	notice := buildOrderNotification(newNotificationOrder(), "en-US")
	if notice.Receiver != "sara@example.com" {
		t.Fatalf("unexpected receiver: %q", notice.Receiver)
	}
	if notice.Subject != "Order #9F1C2D3E placed successfully" {
		t.Fatalf("unexpected subject: %s", notice.Subject)
	}
	if notice.Total != "250.28" || len(notice.Lines) != 2 {
		t.Fatalf("unexpected notification: %+v", notice)
	}
	if notice.Lines[0] != "Linen Thobe (White / M) x2 = 200.00" || notice.Lines[1] != "Cap x1 = 50.28" {
		t.Fatalf("unexpected lines: %v", notice.Lines)
	}

	if ar := buildOrderNotification(newNotificationOrder(), ""); ar.Locale != "ar" {
		t.Fatalf("expected default locale, got %s", ar.Locale)
	}
}

func newConsumerMux(repo OrderLoader) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	NewConsumer(repo).Register(mux)
	return mux
}

func TestConsumerOrderPlaced(t *testing.T) {
	order := newNotificationOrder()
	repo := &fakeOrderRepository{orders: map[string]*models.Order{order.ID: order}}
	mux := newConsumerMux(repo)
	ctx := context.Background()

	task, err := queue.NewTask(queue.OrderPlacedPayload{OrderID: order.ID, Locale: "en"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := mux.ProcessTask(ctx, task); err != nil {
		t.Fatalf("handle failed: %v", err)
	}

	missing, _ := queue.NewTask(queue.OrderPlacedPayload{OrderID: "missing"})
	if err := mux.ProcessTask(ctx, missing); err != nil {
		t.Fatalf("missing order must not retry, got %v", err)
	}

	err = mux.ProcessTask(ctx, asynq.NewTask(queue.TaskOrderPlaced, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected skip-retry for corrupt payload, got %v", err)
	}

	repo.err = errors.New("db down")
	if err := mux.ProcessTask(ctx, task); err == nil || errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected retryable fetch error, got %v", err)
	}
}

func TestConsumerOrderStatusChangedSkipsEmptyPayload(t *testing.T) {
	repo := &fakeOrderRepository{}
	mux := newConsumerMux(repo)

	task, _ := queue.NewTask(queue.OrderStatusChangedPayload{OrderID: " ", Status: "shipped"})
	if err := mux.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("empty order id must not hit repository")
	}
}

func TestDecodeRejectsMismatchedTaskType(t *testing.T) {
	task := asynq.NewTask(queue.TaskOrderStatusChanged, []byte(`{"order_id":"o1"}`))
	if _, err := queue.Decode[queue.OrderPlacedPayload](task); err == nil {
		t.Fatalf("expected type mismatch error")
	}
}

type fakePrunerStorage struct {
	*cart.MemoryStorage
	before  time.Time
	removed int64
	err     error
}

func (s *fakePrunerStorage) PruneIdle(_ context.Context, before time.Time) (int64, error) {
	s.before = before
	return s.removed, s.err
}

func TestSchedulerRunCartPrune(t *testing.T) {
	storage := &fakePrunerStorage{MemoryStorage: cart.NewMemoryStorage(), removed: 3}
	scheduler := NewScheduler(SchedulerOptions{IdleTTL: 24 * time.Hour}, storage, nil)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	scheduler.now = func() time.Time { return now }

	scheduler.RunCartPrune(context.Background())
	if !storage.before.Equal(now.Add(-24 * time.Hour)) {
		t.Fatalf("unexpected prune cutoff: %v", storage.before)
	}

	storage.err = errors.New("db down")
	storage.before = time.Time{}
	scheduler.RunCartPrune(context.Background())
	if storage.before.IsZero() {
		t.Fatalf("expected prune attempt on failure path")
	}
}

func TestNewSchedulerWithoutPruner(t *testing.T) {
	scheduler := NewScheduler(SchedulerOptions{}, cart.NewMemoryStorage(), nil)
	if scheduler.pruner != nil {
		t.Fatalf("memory storage must not be treated as pruner")
	}
	if scheduler.opts.PruneSpec != defaultPruneSpec {
		t.Fatalf("unexpected default spec: %s", scheduler.opts.PruneSpec)
	}
	scheduler.RunCartPrune(context.Background())

	if err := scheduler.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := scheduler.Stop(ctx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
}

func TestEvictorRunEvict(t *testing.T) {
	ctx := context.Background()
	registry := cart.NewRegistry(cart.NewMemoryStorage())
	registry.Get(ctx, "s1")
	registry.Get(ctx, "s2")

	evictor := NewEvictor(EvictorOptions{Idle: time.Hour}, registry, metrics.New().Cron)
	if evictor.opts.Spec != defaultEvictSpec {
		t.Fatalf("unexpected default spec: %s", evictor.opts.Spec)
	}
	if evicted := evictor.RunEvict(time.Now()); evicted != 0 {
		t.Fatalf("fresh sessions must stay, evicted %d", evicted)
	}
	if evicted := evictor.RunEvict(time.Now().Add(2 * time.Hour)); evicted != 2 || registry.Len() != 0 {
		t.Fatalf("expected 2 evictions, got %d (resident %d)", evicted, registry.Len())
	}
}

func TestEvictorStartBlocksUntilCancel(t *testing.T) {
	evictor := NewEvictor(EvictorOptions{Idle: time.Minute}, cart.NewRegistry(nil), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- evictor.Start(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("start returned early: %v", err)
	case <-time.After(20 * time.Millisecond):
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("start failed: %v", err)
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	if err := evictor.Stop(stopCtx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	if err := NewEvictor(EvictorOptions{}, nil, nil).Start(context.Background()); err == nil {
		t.Fatalf("expected error without registry")
	}
}
