package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	// Pull operations
	PutPull(ctx context.Context, pull *model.Pull) error
	GetPull(ctx context.Context, id types.PullID) (*model.Pull, error)
	ListPulls(ctx context.Context, limit int) ([]*model.Pull, error)

	// Close closes the repository connection
	Close() error
}
