package neofeed

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spacerocks/neofeed/internal/extractor/cli/commands"
	"github.com/spacerocks/neofeed/internal/extractor/cli/commands/extract"
	"github.com/spacerocks/neofeed/internal/extractor/cli/commands/sinks"
	"github.com/spacerocks/neofeed/internal/extractor/cli/commands/version"
	"github.com/spacerocks/neofeed/internal/extractor/cli/options"
)

// NewNeofeedCommand creates 'neofeed' command for CLI.
func NewNeofeedCommand(cliOpts *options.CliOptions) *cobra.Command {
	cobra.EnableCommandSorting = false

	opts := cliOpts.NeofeedOpts()

	cmd := &cobra.Command{
		Use:                   "neofeed [FLAGS] [COMMAND]",
		Short:                 "CLI for extracting NASA near earth objects feed to parquet",
		Args:                  commands.NoArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		TraverseChildren:      true,
		DisableFlagsInUseLine: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
			HiddenDefaultCmd:  true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.SetOut(cliOpts.Out())

	cmd.SetFlagErrorFunc(commands.FlagErrorFunc)

	setupFlags(cmd.Flags(), opts, cliOpts.Out().IsTerminal())

	cmd.PersistentFlags().BoolP("help", "h", false, "Print usage")

	cmd.PersistentFlags().Lookup("help").Hidden = true

	cmd.MarkFlagsMutuallyExclusive(commands.TTYFlag, commands.NoTTYFlag)
	cmd.SetUsageTemplate(usageTemplate)

	cmd.AddCommand(
		extract.NewExtractCommand(cliOpts),
		sinks.NewSinksCommand(cliOpts),
		version.NewVersionCommand(cliOpts),
	)

	return cmd
}

// setupFlags sets flags for 'neofeed' command and bind them to NeofeedOptions fields.
func setupFlags(flags *pflag.FlagSet, opts *options.NeofeedOptions, isTerminal bool) {
	flags.StringVarP(
		&opts.ConfigPath,
		commands.ConfigPathFlag,
		commands.ConfigPathShortFlag,
		commands.ConfigPathDefaultValue,
		commands.ConfigPathUsage,
	)

	flags.BoolVarP(
		&opts.TTY.Value,
		commands.TTYFlag,
		commands.TTYShortFlag,
		isTerminal,
		commands.TTYUsage,
	)

	opts.TTY.Changed = &flags.Lookup(commands.TTYFlag).Changed

	flags.BoolVarP(
		&opts.NoTTY.Value,
		commands.NoTTYFlag,
		commands.NoTTYShortFlag,
		commands.NoTTYDefaultValue,
		commands.NoTTYUsage,
	)

	opts.NoTTY.Changed = &flags.Lookup(commands.NoTTYFlag).Changed

	flags.BoolVarP(
		&opts.DebugMode,
		commands.DebugModeFlag,
		commands.DebugModeShortFlag,
		commands.DebugModeDefaultValue,
		commands.DebugModeUsage,
	)

	flags.StringVarP(
		&opts.CPUProfile,
		commands.CPUProfileFlag,
		commands.CPUProfileShortFlag,
		commands.CPUProfileDefaultValue,
		commands.CPUProfileUsage,
	)

	flags.StringVarP(
		&opts.MemoryProfile,
		commands.MemoryProfileFlag,
		commands.MemoryProfileShortFlag,
		commands.MemoryProfileDefaultValue,
		commands.MemoryProfileUsage,
	)

	flags.StringVarP(
		&opts.APIKey,
		commands.APIKeyFlag,
		commands.APIKeyShortFlag,
		commands.APIKeyDefaultValue,
		commands.APIKeyUsage,
	)

	flags.StringVarP(
		&opts.BaseURL,
		commands.BaseURLFlag,
		commands.BaseURLShortFlag,
		commands.BaseURLDefaultValue,
		commands.BaseURLUsage,
	)
}

const usageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
