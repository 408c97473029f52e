package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu    sync.RWMutex
	pulls map[types.PullID]*model.Pull
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		pulls: make(map[types.PullID]*model.Pull),
	}
}

// PutPull saves a pull, replacing any pull with the same ID
func (m *Memory) PutPull(ctx context.Context, pull *model.Pull) error {
	if pull == nil {
		return goerr.New("pull is nil")
	}
	if pull.ID == "" {
		return goerr.New("pull ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pulls[pull.ID] = copyPull(pull)
	return nil
}

// GetPull retrieves a pull by ID
func (m *Memory) GetPull(ctx context.Context, id types.PullID) (*model.Pull, error) {
	if id == "" {
		return nil, goerr.New("pull ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	pull, exists := m.pulls[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrPullNotFound, "failed to get pull", goerr.V("id", id))
	}

	return copyPull(pull), nil
}

// ListPulls returns pulls newest first. A limit of zero or less returns every pull.
func (m *Memory) ListPulls(ctx context.Context, limit int) ([]*model.Pull, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pulls := make([]*model.Pull, 0, len(m.pulls))
	for _, p := range m.pulls {
		pulls = append(pulls, copyPull(p))
	}

	sort.Slice(pulls, func(i, j int) bool {
		if pulls[i].CreatedAt.Equal(pulls[j].CreatedAt) {
			return pulls[i].ID > pulls[j].ID
		}
		return pulls[i].CreatedAt.After(pulls[j].CreatedAt)
	})

	if limit > 0 && len(pulls) > limit {
		pulls = pulls[:limit]
	}

	return pulls, nil
}

// Close is a no-op for memory repository
func (m *Memory) Close() error {
	return nil
}

// copyPull returns a copy that shares no slices or pointers with p
func copyPull(p *model.Pull) *model.Pull {
	c := *p
	c.Query.Types = append([]types.DocumentType(nil), p.Query.Types...)
	c.Series = append(model.DenseSeries(nil), p.Series...)
	if p.Observed != nil {
		observed := *p.Observed
		c.Observed = &observed
	}
	return &c
}

var _ interfaces.Repository = (*Memory)(nil) // Compile-time interface check
