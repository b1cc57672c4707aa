package cli

import (
	"github.com/spf13/cobra"
)

// newExecCmd returns the command that runs a single raw quote command
// and exits. Quoting belongs to the shell, so the whole command is one
// argument.
func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command>",
		Short: "Run a single quote command",
		Example: `  quotebook exec 'quote "ship it"'
  quotebook exec 'quote uwu"really loud"'
  quotebook exec 'quote list'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromContext(cmd.Context())
			return a.Dispatcher.Run(cmd.Context(), args[0])
		},
	}
}
