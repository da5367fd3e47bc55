package cart

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/qamees-next/internal/logger"

	"github.com/shopspring/decimal"
)

// 变更操作名（日志与指标标签）
const (
	OpAdd      = "add"
	OpUpdate   = "update"
	OpRemove   = "remove"
	OpClear    = "clear"
	OpCheckout = "checkout"
)

// ErrEmpty 购物车为空
var ErrEmpty = errors.New("cart is empty")

// Listener 购物车变更订阅回调
type Listener func(Snapshot)

// Recorder 购物车指标采集
type Recorder interface {
	CartMutation(op string)
	CartPersistFailed(op string)
	CartLoadFailed()
}

type nopRecorder struct{}

func (nopRecorder) CartMutation(string)      {}
func (nopRecorder) CartPersistFailed(string) {}
func (nopRecorder) CartLoadFailed()          {}

// Option Store 可选项
type Option func(*Store)

// WithRecorder 设置指标采集
func WithRecorder(recorder Recorder) Option {
	return func(s *Store) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// WithListener 创建时即订阅变更
func WithListener(listener Listener) Option {
	return func(s *Store) {
		s.Subscribe(listener)
	}
}

// Store 单个购物车会话的状态容器
//
// 每次变更在锁内完成“读-改-写”并尝试持久化，订阅者在锁外被同步通知。
// 持久化失败只记录日志，内存状态始终为准。
type Store struct {
	mu         sync.Mutex
	items      []Item
	storage    Storage
	key        string
	recorder   Recorder
	synced     []byte // 最近一次与存储一致的文档
	dirty      bool   // 最近一次持久化失败，内存领先于存储
	checkoutMu sync.Mutex
	listenMu   sync.Mutex
	listeners  map[uint64]Listener
	nextID     uint64
}

// NewStore 创建购物车并从存储中恢复
func NewStore(ctx context.Context, storage Storage, key string, opts ...Option) *Store {
	if strings.TrimSpace(key) == "" {
		key = StorageKey
	}
	s := &Store{
		items:     []Item{},
		storage:   storage,
		key:       key,
		recorder:  nopRecorder{},
		listeners: make(map[uint64]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

// Key 持久化 key
func (s *Store) Key() string {
	return s.key
}

func (s *Store) load(ctx context.Context) {
	if s.storage == nil {
		return
	}
	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.recorder.CartLoadFailed()
		logger.Warnw("cart_load_failed", "key", s.key, "error", err)
		return
	}
	if !ok {
		raw = nil
	}
	s.items = s.decode(raw)
	s.synced = raw
}

// Refresh 重新读取存储，其它实例写入的新文档覆盖本地副本
// 读取失败或本地有未落盘的变更时保留内存状态
func (s *Store) Refresh(ctx context.Context) {
	if s.storage == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dirty {
		return
	}
	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		logger.Warnw("cart_refresh_failed", "key", s.key, "error", err)
		return
	}
	if !ok {
		raw = nil
	}
	if bytes.Equal(raw, s.synced) {
		return
	}
	s.items = s.decode(raw)
	s.synced = raw
}

func (s *Store) decode(raw []byte) []Item {
	if len(raw) == 0 {
		return []Item{}
	}
	items, err := Decode(raw)
	if err != nil {
		s.recorder.CartLoadFailed()
		if errors.Is(err, ErrDocumentVersion) {
			logger.Warnw("cart_load_version_mismatch", "key", s.key, "error", err)
		} else {
			logger.Warnw("cart_load_corrupt", "key", s.key, "error", err)
		}
		return []Item{}
	}
	return items
}

// AddItem 加入商品：同 VariantID 合并数量（保留已存快照），否则追加到末尾
//
// 数量小于 1 或缺少 VariantID 的输入被忽略，保证集合中不存在非正数量的条目；
// 数量超过 MaxQuantity 时饱和。
func (s *Store) AddItem(ctx context.Context, item Item) {
	item.VariantID = strings.TrimSpace(item.VariantID)
	if item.VariantID == "" || item.Quantity < 1 {
		logger.Debugw("cart_add_item_ignored",
			"key", s.key,
			"variant_id", item.VariantID,
			"quantity", item.Quantity,
		)
		return
	}
	item.Quantity = clampQuantity(item.Quantity)
	s.mutate(ctx, OpAdd, func(items []Item) []Item {
		for idx := range items {
			if items[idx].VariantID == item.VariantID {
				items[idx].Quantity = clampQuantity(items[idx].Quantity + item.Quantity)
				return items
			}
		}
		return append(items, cloneItems([]Item{item})[0])
	})
}

// UpdateQuantity 覆盖数量，数量 <= 0 等同于移除
func (s *Store) UpdateQuantity(ctx context.Context, variantID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, variantID)
		return
	}
	quantity = clampQuantity(quantity)
	s.mutate(ctx, OpUpdate, func(items []Item) []Item {
		for idx := range items {
			if items[idx].VariantID == variantID {
				items[idx].Quantity = quantity
				break
			}
		}
		return items
	})
}

// RemoveItem 移除条目，不存在时不做改动
func (s *Store) RemoveItem(ctx context.Context, variantID string) {
	s.mutate(ctx, OpRemove, func(items []Item) []Item {
		for idx := range items {
			if items[idx].VariantID == variantID {
				return append(items[:idx], items[idx+1:]...)
			}
		}
		return items
	})
}

// ClearCart 清空
func (s *Store) ClearCart(ctx context.Context) {
	s.mutate(ctx, OpClear, func([]Item) []Item {
		return []Item{}
	})
}

// Items 返回条目副本
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// TotalPrice Σ 单价 × 数量，不做舍入
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalPrice(s.items)
}

// TotalItems Σ 数量
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItems(s.items)
}

// IsEmpty 是否为空
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// Snapshot 当前快照
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Checkout 同一购物车的结账串行执行
//
// place 收到当前快照，返回 nil 后从购物车扣除已下单的数量，结账期间新加入的商品保留。
// 扣除在请求取消后仍会落盘。
func (s *Store) Checkout(ctx context.Context, place func(Snapshot) error) error {
	s.checkoutMu.Lock()
	defer s.checkoutMu.Unlock()

	snapshot := s.Snapshot()
	if len(snapshot.Items) == 0 {
		return ErrEmpty
	}
	if err := place(snapshot); err != nil {
		return err
	}
	s.mutate(context.WithoutCancel(ctx), OpCheckout, func(items []Item) []Item {
		return deductItems(items, snapshot.Items)
	})
	return nil
}

func deductItems(items, ordered []Item) []Item {
	placed := make(map[string]int, len(ordered))
	for _, item := range ordered {
		placed[item.VariantID] += item.Quantity
	}
	kept := items[:0]
	for _, item := range items {
		item.Quantity -= placed[item.VariantID]
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	return kept
}

// Subscribe 订阅变更，返回取消函数
func (s *Store) Subscribe(listener Listener) func() {
	if listener == nil {
		return func() {}
	}
	s.listenMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.listenMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenMu.Lock()
			delete(s.listeners, id)
			s.listenMu.Unlock()
		})
	}
}

func (s *Store) snapshotLocked() Snapshot {
	items := cloneItems(s.items)
	return Snapshot{
		Items:      items,
		TotalItems: totalItems(items),
		TotalPrice: totalPrice(items),
	}
}

func (s *Store) mutate(ctx context.Context, op string, fn func([]Item) []Item) {
	s.mu.Lock()
	next := fn(s.items)
	if next == nil {
		next = []Item{}
	}
	s.items = next
	s.persistLocked(ctx, op)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.recorder.CartMutation(op)
	s.notify(snapshot)
}

func (s *Store) persistLocked(ctx context.Context, op string) {
	if s.storage == nil {
		return
	}
	payload, err := Encode(s.items)
	if err != nil {
		s.dirty = true
		s.recorder.CartPersistFailed(op)
		logger.Warnw("cart_encode_failed", "key", s.key, "op", op, "error", err)
		return
	}
	if err := s.storage.Set(ctx, s.key, payload); err != nil {
		s.dirty = true
		s.recorder.CartPersistFailed(op)
		logger.Warnw("cart_persist_failed", "key", s.key, "op", op, "error", err)
		return
	}
	s.dirty = false
	s.synced = payload
}

func (s *Store) notify(snapshot Snapshot) {
	s.listenMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	s.listenMu.Unlock()
	for _, listener := range listeners {
		listener(snapshot)
	}
}
