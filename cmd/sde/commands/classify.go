package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/sde/internal/app"
	"go.trai.ch/sde/internal/core/domain"
)

func (c *CLI) newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "List the names of every item under the root market group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}

			noOverrides, _ := cmd.Flags().GetBool("no-overrides")
			groups, _ := cmd.Flags().GetBool("groups")

			opts := app.RunOptions{SkipOverrides: noOverrides}
			if cmd.Flags().Changed("root") {
				root, _ := cmd.Flags().GetInt64("root")
				id := domain.ID(root)
				opts.RootID = &id
			}

			result, err := a.Classify(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if groups {
				for _, id := range result.GroupIDs.Sorted() {
					_, _ = fmt.Fprintln(out, id.String())
				}
				return nil
			}
			for _, name := range result.Names {
				_, _ = fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().Int64P("root", "r", 0, "Root market group id (defaults to the configured root)")
	cmd.Flags().Bool("no-overrides", false, "Leave the override list out of the output")
	cmd.Flags().Bool("groups", false, "Print the market group ids under the root instead of item names")

	return cmd
}

func (c *CLI) newExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists NAME",
		Short: "Report whether NAME is among the classified names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}

			found, err := a.Exists(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), found)
			return nil
		},
	}
}
