package extract

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spacerocks/neofeed/internal/extractor/cli/commands"
	"github.com/spacerocks/neofeed/internal/extractor/cli/options"
	"github.com/spacerocks/neofeed/internal/extractor/cli/progress"
	"github.com/spacerocks/neofeed/internal/extractor/cli/progress/bar"
	"github.com/spacerocks/neofeed/internal/extractor/cli/progress/log"
	"github.com/spacerocks/neofeed/internal/extractor/cli/utils"
	"github.com/spacerocks/neofeed/internal/extractor/models"
	"github.com/spacerocks/neofeed/internal/extractor/usecase"
)

const progressTaskName = "pages"

// extractOptions type is used to describe 'extract' command options.
type extractOptions struct {
	sink      string
	outputDir string
	filename  string
	pages     int
	pageSize  int
	startPage int
}

// NewExtractCommand creates 'extract' command for CLI.
func NewExtractCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:                   "extract [FLAGS]",
		Short:                 "Fetches near earth objects from NASA API and writes them to the sink",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateFlags(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := buildExtractConfig(cmd.Flags(), cliOpts.AppConfig(), opts)

			slog.Info("neofeed started", slog.String("version", cliOpts.Version()))

			err := runExtract(cmd.Context(), cliOpts, cfg)
			if err != nil {
				return errors.WithMessage(err, "failed to extract")
			}

			return nil
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

func setupFlags(flags *pflag.FlagSet, opts *extractOptions) {
	flags.StringVarP(
		&opts.sink,
		commands.SinkFlag,
		commands.SinkShortFlag,
		commands.SinkDefaultValue,
		commands.SinkUsage,
	)

	flags.StringVarP(
		&opts.outputDir,
		commands.OutputDirFlag,
		commands.OutputDirShortFlag,
		commands.OutputDirDefaultValue,
		commands.OutputDirUsage,
	)

	flags.StringVarP(
		&opts.filename,
		commands.FilenameFlag,
		commands.FilenameShortFlag,
		commands.FilenameDefaultValue,
		commands.FilenameUsage,
	)

	flags.IntVarP(
		&opts.pages,
		commands.PagesFlag,
		commands.PagesShortFlag,
		commands.PagesDefaultValue,
		commands.PagesUsage,
	)

	flags.IntVarP(
		&opts.pageSize,
		commands.PageSizeFlag,
		commands.PageSizeShortFlag,
		commands.PageSizeDefaultValue,
		commands.PageSizeUsage,
	)

	flags.IntVarP(
		&opts.startPage,
		commands.StartPageFlag,
		commands.StartPageShortFlag,
		commands.StartPageDefaultValue,
		commands.StartPageUsage,
	)
}

// validateFlags checks values of changed flags, unchanged ones come from validated config.
func validateFlags(cmd *cobra.Command, opts *extractOptions) error {
	if err := commands.ValidateFlag(cmd, commands.SinkFlag, opts.sink, utils.ValidateEmptyString()); err != nil {
		return err
	}

	if err := commands.ValidateFlag(
		cmd, commands.FilenameFlag, opts.filename, utils.ValidateFileFormat(".parquet"),
	); err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed(commands.PagesFlag) && opts.pages < 1 {
		return commands.FlagErrorFunc(cmd, errors.Errorf("--%s should be grater than 0", commands.PagesFlag))
	}

	if flags.Changed(commands.PageSizeFlag) && (opts.pageSize < 1 || opts.pageSize > models.MaxNASAPageSize) {
		return commands.FlagErrorFunc(cmd, errors.Errorf(
			"--%s should be in range [1, %d]", commands.PageSizeFlag, models.MaxNASAPageSize,
		))
	}

	if flags.Changed(commands.StartPageFlag) && opts.startPage < 0 {
		return commands.FlagErrorFunc(cmd, errors.Errorf("--%s should not be negative", commands.StartPageFlag))
	}

	return nil
}

// buildExtractConfig merges values from config and changed flags, flags take precedence.
func buildExtractConfig(flags *pflag.FlagSet, appConfig *models.AppConfig, opts *extractOptions) usecase.ExtractConfig {
	cfg := usecase.ExtractConfig{
		Output:    appConfig.Output,
		StartPage: appConfig.NASA.StartPage,
		Pages:     appConfig.NASA.Pages,
		PageSize:  appConfig.NASA.PageSize,
	}

	if flags.Changed(commands.SinkFlag) {
		cfg.Output.Type = opts.sink
	}

	if flags.Changed(commands.OutputDirFlag) {
		cfg.Output.Dir = opts.outputDir
	}

	if flags.Changed(commands.FilenameFlag) {
		cfg.Output.Filename = opts.filename
	}

	if flags.Changed(commands.PagesFlag) {
		cfg.Pages = opts.pages
	}

	if flags.Changed(commands.PageSizeFlag) {
		cfg.PageSize = opts.pageSize
	}

	if flags.Changed(commands.StartPageFlag) {
		cfg.StartPage = opts.startPage
	}

	return cfg
}

// runExtract executes an `extract` command, displaying progress while pages are fetched.
func runExtract(ctx context.Context, cliOpts *options.CliOptions, cfg usecase.ExtractConfig) error {
	trackerCtx, cancelTracker := context.WithCancel(ctx)
	defer cancelTracker()

	var tracker progress.Tracker

	if cliOpts.UseTTY() {
		tracker = bar.NewProgressBarManager(trackerCtx, cliOpts.Out())
	} else {
		tracker = log.NewProgressLogManager(trackerCtx)
	}

	tracker.AddTask(progressTaskName, "fetching near earth objects pages", uint64(cfg.Pages))

	cfg.OnProgress = func(p usecase.Progress) {
		tracker.UpdateProgress(progressTaskName, p)
	}

	result, err := cliOpts.UseCase().Extract(ctx, cfg)
	if err != nil {
		cancelTracker()
	}

	tracker.Wait()

	if err != nil {
		if result != nil {
			slog.Info(
				"partial output left as is",
				slog.String("run_id", result.RunID),
				slog.Int("pages", result.Pages),
				slog.Int64("rows", result.Rows),
			)
		}

		return err
	}

	return nil
}
