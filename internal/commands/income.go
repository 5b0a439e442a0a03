package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIncomeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "income <amount>",
		Short: "Set the monthly income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			if err := store.SetIncome(amount); err != nil {
				return err
			}
			store.RecomputeNetWorth()
			if err := app.persist(store); err != nil {
				return err
			}

			snap := store.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Income set to %s (net worth %s)\n",
				app.amount(snap.Income), app.amount(snap.NetWorth))
			return nil
		},
	}
}
