package cart

import (
	"context"
	"strings"
	"sync"
	"time"
)

type registryEntry struct {
	store      *Store
	lastAccess time.Time
}

// Registry 购物车会话注册表，按会话 ID 懒加载 Store
type Registry struct {
	mu      sync.Mutex
	storage Storage
	opts    []Option
	stores  map[string]*registryEntry
	now     func() time.Time
}

// NewRegistry 创建注册表
func NewRegistry(storage Storage, opts ...Option) *Registry {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	return &Registry{
		storage: storage,
		opts:    opts,
		stores:  make(map[string]*registryEntry),
		now:     time.Now,
	}
}

// Get 获取会话购物车，首次访问时从存储恢复
// 已驻留的会话先与存储对齐，多实例共享存储时不会用旧副本覆盖新文档。
func (r *Registry) Get(ctx context.Context, sessionID string) *Store {
	sessionID = strings.TrimSpace(sessionID)

	r.mu.Lock()
	if entry, ok := r.stores[sessionID]; ok {
		entry.lastAccess = r.now()
		r.mu.Unlock()
		entry.store.Refresh(ctx)
		return entry.store
	}
	r.mu.Unlock()

	// 锁外加载，避免慢存储阻塞其它会话
	loaded := NewStore(ctx, r.storage, SessionKey(sessionID), r.opts...)

	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.stores[sessionID]; ok {
		entry.lastAccess = r.now()
		return entry.store
	}
	r.stores[sessionID] = &registryEntry{store: loaded, lastAccess: r.now()}
	return loaded
}

// Len 当前驻留会话数
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// EvictIdle 驱逐超过 idle 未访问的会话，返回驱逐数量
func (r *Registry) EvictIdle(idle time.Duration) int {
	return r.EvictIdleAt(r.now(), idle)
}

// EvictIdleAt 以 at 为当前时间驱逐闲置会话（不删除持久化数据）
func (r *Registry) EvictIdleAt(at time.Time, idle time.Duration) int {
	if idle <= 0 {
		return 0
	}
	cutoff := at.Add(-idle)
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, entry := range r.stores {
		if entry.lastAccess.Before(cutoff) {
			delete(r.stores, id)
			evicted++
		}
	}
	return evicted
}
