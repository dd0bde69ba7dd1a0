// Package main is the entry point for the sde tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/sde/cmd/sde/commands"
	"go.trai.ch/sde/internal/app"
	_ "go.trai.ch/sde/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context, app.BootstrapOptions) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context, opts app.BootstrapOptions) (*app.Components, error) {
		return app.Bootstrap(ctx, opts)
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Components are built lazily, after flag parsing
	var components *app.Components
	load := func(ctx context.Context, opts app.BootstrapOptions) (commands.Application, error) {
		c, err := provider(ctx, opts)
		if err != nil {
			return nil, err
		}
		components = c
		return c.App, nil
	}

	// 2. Interface - CLI
	cli := commands.New(load)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	err := cli.Execute(ctx)
	if components != nil {
		if closeErr := components.App.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	if err != nil {
		if components == nil {
			// Logger is not available if initialization failed or never ran
			_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
