package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/duebook-dev/duebook/internal/ledger"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	var costStr string
	var due int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a recurring expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}

			cost := decimal.Zero
			if cmd.Flags().Changed("cost") {
				cost, err = parseAmount(costStr)
				if err != nil {
					return err
				}
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			if err := store.Add(ledger.AddParams{Name: args[0], Cost: cost, DueDate: due}); err != nil {
				return err
			}
			store.RecomputeNetWorth()
			if err := app.persist(store); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, due day %d)\n", args[0], app.amount(cost), due)
			return nil
		},
	}

	cmd.Flags().StringVar(&costStr, "cost", "0", "monthly cost")
	cmd.Flags().IntVar(&due, "due", 0, "day of month the expense is due (required)")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}
