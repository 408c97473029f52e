package interfaces

import (
	"context"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/types"
)

// Report defines the interface for pulling and aggregating registry notices
type Report interface {
	// Run searches the registry and stores the monthly series for the query
	Run(ctx context.Context, query *model.Query) (*model.Pull, error)

	// Get returns a stored pull
	Get(ctx context.Context, id types.PullID) (*model.Pull, error)

	// List returns stored pulls, newest first
	List(ctx context.Context, limit int) ([]*model.Pull, error)
}
