package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNetWorthCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "networth",
		Short: "Recompute and print net worth (income minus total expenses)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			store.RecomputeNetWorth()
			if err := app.persist(store); err != nil {
				return err
			}

			snap := store.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Net worth: %s\n", app.amount(snap.NetWorth))
			return nil
		},
	}
}
