package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd reports the build information injected via ldflags.
func newVersionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quotebook %s (commit %s, built %s)\n",
				info.Version, info.Commit, info.BuildTime)
		},
	}
}
