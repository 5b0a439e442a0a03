package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the paid flag on every expense (start of a new month)",
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
			store.ResetPaid()
			if err := app.persist(store); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "All expenses marked unpaid")
			return nil
		},
	}
}
