package searchcache

import (
	"context"
	"sync"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
)

type memoryEntry struct {
	result  *model.SearchResult
	expires time.Time
}

// Memory is a process-local search cache with a fixed TTL
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory creates a memory cache whose entries live for ttl
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// GetSearch implements interfaces.SearchCache
func (m *Memory) GetSearch(ctx context.Context, key string) (*model.SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	if !m.now().Before(entry.expires) {
		delete(m.entries, key)
		return nil, nil
	}
	return copyResult(entry.result), nil
}

// PutSearch implements interfaces.SearchCache
func (m *Memory) PutSearch(ctx context.Context, key string, result *model.SearchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		result:  copyResult(result),
		expires: m.now().Add(m.ttl),
	}
	return nil
}

func copyResult(r *model.SearchResult) *model.SearchResult {
	c := *r
	c.Notices = append([]model.Notice(nil), r.Notices...)
	return &c
}

var _ interfaces.SearchCache = (*Memory)(nil)
