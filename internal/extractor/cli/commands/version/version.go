package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacerocks/neofeed/internal/extractor/cli/commands"
	"github.com/spacerocks/neofeed/internal/extractor/cli/options"
)

// NewVersionCommand creates 'version' command for CLI.
func NewVersionCommand(cliOpts *options.CliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "version",
		Short:                 "Show neofeed version",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "neofeed version "+cliOpts.Version())
		},
	}

	cmd.SetOut(cliOpts.Out())

	return cmd
}
