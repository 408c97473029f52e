package interfaces

//go:generate moq -out mocks/registry_mock.go -pkg mocks . Registry

import (
	"context"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
)

// Registry searches the remote document registry
type Registry interface {
	// SearchURL returns the URL Search would fetch for the query
	SearchURL(query *model.Query) string

	// Search fetches every notice matching the query, up to the registry's result cap
	Search(ctx context.Context, query *model.Query) (*model.SearchResult, error)
}

// SearchCache stores registry search results by search URL
type SearchCache interface {
	// GetSearch returns the cached result, or nil when key is not cached
	GetSearch(ctx context.Context, key string) (*model.SearchResult, error)
	PutSearch(ctx context.Context, key string, result *model.SearchResult) error
}
