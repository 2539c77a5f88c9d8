// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/3pl/internal/core/domain"
)

// MetadataSource queries the package manager for the project's dependency
// graph. Implementations return only third-party dependencies; workspace
// members are filtered out before descriptors reach the caller.
//
//go:generate mockgen -source=metadata_source.go -destination=mocks/mock_metadata_source.go -package=mocks
type MetadataSource interface {
	// Query runs the metadata command with the given options and returns
	// one descriptor per third-party dependency, in the order the package
	// manager reports them.
	Query(ctx context.Context, opts domain.QueryOptions) ([]domain.Descriptor, error)
}
