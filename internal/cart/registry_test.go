package cart

import (
	"context"
	"testing"
	"time"
)

func TestRegistryReturnsSameStorePerSession(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(NewMemoryStorage())

	first := registry.Get(ctx, "s1")
	second := registry.Get(ctx, "s1")
	if first != second {
		t.Fatalf("expected same store for same session")
	}
	if first.Key() != "cart-storage:s1" {
		t.Fatalf("unexpected key: %s", first.Key())
	}
	if registry.Get(ctx, "s2") == first {
		t.Fatalf("expected different store for different session")
	}
	if registry.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", registry.Len())
	}
}

func TestRegistryHydratesAfterEviction(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	registry := NewRegistry(storage)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }

	registry.Get(ctx, "s1").AddItem(ctx, newTestItem("A", "12", 2))
	if evicted := registry.EvictIdleAt(now.Add(2*time.Hour), time.Hour); evicted != 1 {
		t.Fatalf("expected 1 eviction, got %d", evicted)
	}
	if registry.Len() != 0 {
		t.Fatalf("expected registry to be empty after eviction")
	}

	restored := registry.Get(ctx, "s1")
	if restored.TotalItems() != 2 {
		t.Fatalf("expected hydrated quantity 2, got %d", restored.TotalItems())
	}
}

func TestRegistriesSharingStorageKeepSequentialWrites(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	first := NewRegistry(storage)
	second := NewRegistry(storage)

	first.Get(ctx, "s1").AddItem(ctx, newTestItem("X", "1", 1))
	second.Get(ctx, "s1").AddItem(ctx, newTestItem("Y", "1", 1))
	first.Get(ctx, "s1").AddItem(ctx, newTestItem("Z", "1", 1))
	second.Get(ctx, "s1").UpdateQuantity(ctx, "X", 4)

	raw, ok, err := storage.Get(ctx, SessionKey("s1"))
	if err != nil || !ok {
		t.Fatalf("expected persisted cart, got ok=%v err=%v", ok, err)
	}
	items, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	got := make([]string, 0, len(items))
	for _, item := range items {
		got = append(got, item.VariantID)
	}
	if len(items) != 3 || got[0] != "X" || got[1] != "Y" || got[2] != "Z" || items[0].Quantity != 4 {
		t.Fatalf("expected X(4) Y Z, got %+v", items)
	}
	if view := first.Get(ctx, "s1"); view.TotalItems() != 6 {
		t.Fatalf("resident store must pick up other writes, got %d", view.TotalItems())
	}
}

func TestRegistryRefreshKeepsUnpersistedState(t *testing.T) {
	ctx := context.Background()
	storage := &failingStorage{MemoryStorage: NewMemoryStorage()}
	registry := NewRegistry(storage)

	registry.Get(ctx, "s1").AddItem(ctx, newTestItem("A", "1", 2))
	other, err := Encode([]Item{newTestItem("B", "1", 5)})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if err := storage.MemoryStorage.Set(ctx, SessionKey("s1"), other); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	items := registry.Get(ctx, "s1").Items()
	if len(items) != 1 || items[0].VariantID != "A" || items[0].Quantity != 2 {
		t.Fatalf("failed persist must not be undone by refresh, got %+v", items)
	}
}

func TestRegistryEvictIdle(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(nil)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }

	registry.Get(ctx, "old")
	now = now.Add(2 * time.Hour)
	registry.Get(ctx, "fresh")

	if evicted := registry.EvictIdle(time.Hour); evicted != 1 {
		t.Fatalf("expected 1 eviction, got %d", evicted)
	}
	if registry.Len() != 1 {
		t.Fatalf("expected 1 remaining session, got %d", registry.Len())
	}
	if evicted := registry.EvictIdle(0); evicted != 0 {
		t.Fatalf("expected no eviction for zero ttl")
	}
}

func TestSessionKey(t *testing.T) {
	if SessionKey("") != StorageKey {
		t.Fatalf("empty session must use base key")
	}
	if SessionKey(" abc ") != "cart-storage:abc" {
		t.Fatalf("unexpected session key: %s", SessionKey(" abc "))
	}
}
