package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/sde/internal/core/domain"
)

func (c *CLI) newChainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain GROUP_ID",
		Short: "Print the ancestor chain of a market group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseID(args[0])
			if err != nil {
				return err
			}

			a, err := c.application(cmd)
			if err != nil {
				return err
			}

			chain, err := a.Ancestors(cmd.Context(), id)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), chain.String())
			return nil
		},
	}
}

func (c *CLI) newKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key IDENTITY",
		Short: "Print the cache key derived from an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), a.CacheKey(args[0]))
			return nil
		},
	}
}
