package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPayCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <name>",
		Short: "Toggle an expense's paid flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			paid, err := store.Pay(args[0])
			if err != nil {
				return err
			}
			if err := app.persist(store); err != nil {
				return err
			}

			if paid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s marked paid\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s marked unpaid\n", args[0])
			}
			return nil
		},
	}
}
