package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the ledger",
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
			snap := store.Snapshot()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Income:    %s\n", app.amount(snap.Income))
			fmt.Fprintf(out, "Net worth: %s\n", app.amount(snap.NetWorth))
			fmt.Fprintf(out, "Expenses:  %d (total %s)\n", len(snap.Expenses), app.amount(snap.TotalCost()))

			if len(snap.Expenses) == 0 {
				return nil
			}

			fmt.Fprintln(out)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCOST\tDUE\tPAID")
			for _, e := range snap.Expenses {
				paid := "no"
				if e.Paid {
					paid = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Name, app.amount(e.Cost), e.DueDate, paid)
			}
			return tw.Flush()
		},
	}
}
