package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spacerocks/neofeed/internal/extractor/cli/commands"
	"github.com/spacerocks/neofeed/internal/extractor/cli/commands/neofeed"
	clierrors "github.com/spacerocks/neofeed/internal/extractor/cli/errors"
	"github.com/spacerocks/neofeed/internal/extractor/cli/options"
	"github.com/spacerocks/neofeed/internal/extractor/logger/handlers"
	"github.com/spacerocks/neofeed/internal/extractor/output"
	"github.com/spacerocks/neofeed/internal/extractor/usecase/general"
	nasaAPI "github.com/spacerocks/neofeed/internal/nasa/general"
)

// Cli type is used to describe neofeed CLI.
type Cli struct {
	opts *options.CliOptions
	cmd  *cobra.Command
}

func NewCli(opts *options.CliOptions) *Cli {
	return &Cli{
		opts: opts,
		cmd:  neofeed.NewNeofeedCommand(opts),
	}
}

func (cli *Cli) MustSetup() {
	if err := cli.Setup(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}
}

// Setup parses root flags from args and configures CLI using config and flags.
func (cli *Cli) Setup(args []string) error {
	if err := cli.handleAppFlags(args); err != nil {
		return err
	}

	return cli.initialize()
}

func (cli *Cli) Run(ctx context.Context) error {
	var usageErr *clierrors.UsageError

	err := cli.cmd.ExecuteContext(ctx)
	if err != nil && errors.As(err, &usageErr) {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}

	return err //nolint:wrapcheck
}

func (cli *Cli) Options() *options.CliOptions {
	return cli.opts
}

// handleAppFlags parses flags of root command before executing it.
func (cli *Cli) handleAppFlags(args []string) error {
	cmd := cli.cmd

	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.SetInterspersed(false)

	flags.AddFlagSet(cmd.Flags())
	flags.AddFlagSet(cmd.PersistentFlags())

	if err := flags.Parse(args); err != nil {
		return commands.FlagErrorFunc(cmd, err)
	}

	cmd.SetArgs(args)

	return nil
}

// initialize configures neofeed CLI using config and flags.
func (cli *Cli) initialize() error {
	cliOpts := cli.opts

	appConfig := cliOpts.AppConfig()
	neofeedOpts := cliOpts.NeofeedOpts()

	// set tty mode
	if !*neofeedOpts.NoTTY.Changed && !*neofeedOpts.TTY.Changed {
		cliOpts.SetUseTTY(neofeedOpts.TTY.Value)
	} else {
		cliOpts.SetUseTTY(*neofeedOpts.TTY.Changed)
	}

	// merge values from config and flags
	err := appConfig.ParseFromFile(neofeedOpts.ConfigPath)
	if err != nil {
		return errors.WithMessage(err, "error during initializing cli")
	}

	if neofeedOpts.APIKey != "" {
		appConfig.NASA.APIKey = neofeedOpts.APIKey
	}

	if neofeedOpts.BaseURL != "" {
		appConfig.NASA.BaseURL = neofeedOpts.BaseURL
	}

	// setup logger
	logLevel := slog.LevelInfo
	if neofeedOpts.DebugMode {
		logLevel = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var logHandler slog.Handler

	if appConfig.LogFormat == "json" {
		logHandler = slog.NewJSONHandler(cliOpts.Out(), handlerOpts)
	} else {
		logHandler = handlers.NewTextHandler(cliOpts.Out(), handlerOpts)
	}

	slog.SetDefault(slog.New(logHandler))

	// setup use case
	cliOpts.SetUseCase(general.NewUseCase(general.UseCaseConfig{
		API:      nasaAPI.NewNeoWsAPI(appConfig.NASA),
		Registry: output.NewDefaultRegistry(),
		Fs:       afero.NewOsFs(),
	}))

	return nil
}
