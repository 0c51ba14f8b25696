package repository

import (
	"context"
	"sync"
)

// Substrate 字符串键值的持久化设施，只有 ProgressStore 可以读写
type Substrate interface {
	// Get returns ok=false when the key has never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// MemorySubstrate 用于测试和单机开发
type MemorySubstrate struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemorySubstrate() *MemorySubstrate {
	return &MemorySubstrate{data: make(map[string]string)}
}

func (m *MemorySubstrate) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemorySubstrate) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete 仅供管理/测试使用，核心逻辑从不删除进度
func (m *MemorySubstrate) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}
