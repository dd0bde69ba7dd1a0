// Package commands implements the CLI commands for the sde tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/sde/internal/app"
	"go.trai.ch/sde/internal/build"
	"go.trai.ch/sde/internal/core/domain"
)

// CLI represents the command line interface for sde.
type CLI struct {
	load    Loader
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Classify(ctx context.Context, opts app.RunOptions) (*domain.ClassificationResult, error)
	Exists(ctx context.Context, name string) (bool, error)
	Ancestors(ctx context.Context, id domain.ID) (domain.AncestorChain, error)
	CacheKey(identity string) string
}

// Loader builds the application once the global flags are known.
type Loader func(ctx context.Context, opts app.BootstrapOptions) (Application, error)

// New creates a new CLI instance that builds its application with load.
func New(load Loader) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sde",
		Short:         "Query the EVE Online static data export",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (default "+domain.ConfigFileName+")")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging and print a cache report on exit")

	c := &CLI{
		load:    load,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newClassifyCmd())
	rootCmd.AddCommand(c.newExistsCmd())
	rootCmd.AddCommand(c.newChainCmd())
	rootCmd.AddCommand(c.newKeyCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// application builds the application on first use from the global flags.
func (c *CLI) application(cmd *cobra.Command) (Application, error) {
	if c.app != nil {
		return c.app, nil
	}

	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	a, err := c.load(cmd.Context(), app.BootstrapOptions{
		ConfigPath: configPath,
		Verbose:    verbose,
	})
	if err != nil {
		return nil, err
	}
	c.app = a
	return a, nil
}
