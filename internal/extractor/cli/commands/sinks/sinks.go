package sinks

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacerocks/neofeed/internal/extractor/cli/commands"
	"github.com/spacerocks/neofeed/internal/extractor/cli/options"
)

// NewSinksCommand creates 'sinks' command for CLI. It prints registered sink types, one per line.
func NewSinksCommand(cliOpts *options.CliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "sinks",
		Short:                 "List available sink types",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, sink := range cliOpts.UseCase().Sinks() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), sink)
			}
		},
	}

	cmd.SetOut(cliOpts.Out())

	return cmd
}
