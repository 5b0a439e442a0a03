package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duebook-dev/duebook/internal/ledger"
)

func newEditCommand(opts *rootOptions) *cobra.Command {
	var newName string
	var costStr string
	var due int

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Edit an expense's name, cost, or due day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}

			var params ledger.EditParams
			if cmd.Flags().Changed("name") {
				params.NewName = &newName
			}
			if cmd.Flags().Changed("cost") {
				cost, err := parseAmount(costStr)
				if err != nil {
					return err
				}
				params.NewCost = &cost
			}
			if cmd.Flags().Changed("due") {
				params.NewDueDate = &due
			}
			if params.NewName == nil && params.NewCost == nil && params.NewDueDate == nil {
				return fmt.Errorf("nothing to edit: pass at least one of --name, --cost, --due")
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			if err := store.Edit(args[0], params); err != nil {
				return err
			}
			store.RecomputeNetWorth()
			if err := app.persist(store); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "new expense name")
	cmd.Flags().StringVar(&costStr, "cost", "", "new monthly cost")
	cmd.Flags().IntVar(&due, "due", 0, "new due day of month")

	return cmd
}
