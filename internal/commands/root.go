package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duebook-dev/duebook/internal/buildinfo"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	file   string // ledger file path override
	config string // duebook.yaml path override
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "duebook",
		Short:   "Track recurring monthly expenses, income, and net worth",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.file, "file", "", "ledger file path (default: expenses.json next to the executable)")
	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "", "config file path (default: duebook.yaml next to the executable)")

	rootCmd.AddCommand(
		newAddCommand(opts),
		newRemoveCommand(opts),
		newEditCommand(opts),
		newPayCommand(opts),
		newResetCommand(opts),
		newIncomeCommand(opts),
		newNetWorthCommand(opts),
		newShowCommand(opts),
	)

	return rootCmd
}
