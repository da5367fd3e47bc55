package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
)

const (
	// StorageKey 购物车持久化基础 key
	StorageKey = "cart-storage"
	// DocumentVersion 持久化文档版本
	DocumentVersion = 0
)

// ErrDocumentVersion 持久化文档版本不受支持
var ErrDocumentVersion = errors.New("cart document version not supported")

// Storage 购物车持久化后端（键值存储）
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// SessionKey 按会话拼接持久化 key
func SessionKey(sessionID string) string {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return StorageKey
	}
	return fmt.Sprintf("%s:%s", StorageKey, id)
}

type persistedState struct {
	Items []Item `json:"items"`
}

// document 持久化文档：{"state":{"items":[...]},"version":0}
type document struct {
	State   persistedState `json:"state"`
	Version int            `json:"version"`
}

// Encode 序列化购物车行项目
func Encode(items []Item) ([]byte, error) {
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(document{
		State:   persistedState{Items: items},
		Version: DocumentVersion,
	})
}

// Decode 反序列化购物车行项目，丢弃数量非正或缺少 VariantID 的脏数据
func Decode(raw []byte) ([]Item, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Version != DocumentVersion {
		return nil, fmt.Errorf("%w: %d", ErrDocumentVersion, doc.Version)
	}
	items := make([]Item, 0, len(doc.State.Items))
	seen := make(map[string]int, len(doc.State.Items))
	for _, item := range doc.State.Items {
		if item.VariantID == "" || item.Quantity <= 0 {
			continue
		}
		item.Quantity = clampQuantity(item.Quantity)
		if idx, ok := seen[item.VariantID]; ok {
			items[idx].Quantity = clampQuantity(items[idx].Quantity + item.Quantity)
			continue
		}
		seen[item.VariantID] = len(items)
		items = append(items, item)
	}
	return items, nil
}

// MemoryStorage 进程内存储（测试及单实例使用）
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage 创建内存存储
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// Get 读取
func (m *MemoryStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set 写入
func (m *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.mu.Lock()
	m.data[key] = stored
	m.mu.Unlock()
	return nil
}

// Remove 删除
func (m *MemoryStorage) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}
