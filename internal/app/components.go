package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/sde/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/sde/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *domain.Config
}

// BootstrapOptions controls how the component graph is assembled.
type BootstrapOptions struct {
	// ConfigPath is an explicit configuration file. It must exist when set.
	ConfigPath string
	// Verbose enables debug logging and the cache lookup report on exit.
	Verbose bool
}

// Bootstrap resolves the component graph. An explicit configuration file and
// the verbosity flag are patched into the graph before any node runs.
func Bootstrap(ctx context.Context, opts BootstrapOptions, extra ...graft.Option) (*Components, error) {
	log := logger.New()
	log.SetVerbose(opts.Verbose)

	patches := []graft.Option{
		graft.PatchValue[ports.Logger](log),
	}

	if opts.ConfigPath != "" {
		cfg, err := config.NewLoader(log).Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		patches = append(patches, graft.PatchValue[*domain.Config](cfg))
	}

	components, _, err := graft.ExecuteFor[*Components](ctx, append(patches, extra...)...)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		components.App.WithReport(os.Stderr)
	}
	return components, nil
}
