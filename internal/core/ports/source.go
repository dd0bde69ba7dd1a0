package ports

import (
	"context"

	"go.trai.ch/sde/internal/core/domain"
)

// RecordSource reads raw records from the reference dataset.
// Paths are relative to the dataset directory and reads are deterministic per path.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type RecordSource interface {
	// LoadGroups reads the category records stored at path.
	LoadGroups(ctx context.Context, path string) ([]domain.GroupNode, error)

	// LoadItems reads the leaf records stored at path.
	LoadItems(ctx context.Context, path string) ([]domain.Item, error)
}

// OverrideSource reads externally supplied display names.
type OverrideSource interface {
	// LoadOverrides reads the line-oriented name list at path.
	LoadOverrides(ctx context.Context, path string) ([]string, error)
}
