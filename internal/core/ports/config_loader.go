package ports

import "go.trai.ch/sde/internal/core/domain"

// ConfigLoader defines the interface for loading the classifier configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns it with defaults applied.
	Load(path string) (*domain.Config, error)

	// LoadOrDefault behaves like Load but returns the defaults when path does not exist.
	LoadOrDefault(path string) (*domain.Config, error)
}
