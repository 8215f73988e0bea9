package general

import (
	"context"
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/spacerocks/neofeed/internal/extractor/output"
	"github.com/spacerocks/neofeed/internal/extractor/output/writer"
	"github.com/spacerocks/neofeed/internal/extractor/usecase"
	"github.com/spacerocks/neofeed/internal/nasa"
)

// Verify interface compliance in compile time.
var _ usecase.UseCase = (*UseCase)(nil)

// UseCaseConfig type is used to describe use case dependencies.
type UseCaseConfig struct {
	API       nasa.API
	Registry  *output.Registry
	Fs        afero.Fs
	Allocator memory.Allocator
}

// UseCase type is implementation of single pass extraction.
type UseCase struct {
	api       nasa.API
	registry  *output.Registry
	fs        afero.Fs
	allocator memory.Allocator
}

// NewUseCase function creates UseCase object.
func NewUseCase(cfg UseCaseConfig) *UseCase {
	registry := cfg.Registry
	if registry == nil {
		registry = output.NewDefaultRegistry()
	}

	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	allocator := cfg.Allocator
	if allocator == nil {
		allocator = memory.DefaultAllocator
	}

	return &UseCase{
		api:       cfg.API,
		registry:  registry,
		fs:        fs,
		allocator: allocator,
	}
}

// Sinks returns registered sink types.
func (uc *UseCase) Sinks() []string {
	return uc.registry.Available()
}

// Extract fetches pages and writes each of them through the sink selected by config.
// The sink is closed on every exit path, partially written output is left as is.
func (uc *UseCase) Extract(ctx context.Context, cfg usecase.ExtractConfig) (*usecase.Result, error) {
	if uc.api == nil {
		return nil, errors.New("NASA API client is not configured")
	}

	result := &usecase.Result{
		RunID: uuid.NewString(),
	}

	schema := NewSchema(result.RunID, uc.api.GetBaseURL())

	params := output.Params{
		Schema:           schema,
		Fs:               uc.fs,
		OutputDir:        cfg.Output.Dir,
		Filename:         cfg.Output.Filename,
		CompressionCodec: cfg.Output.CompressionCodec,
		Bucket:           cfg.Output.S3.Bucket,
		Prefix:           cfg.Output.S3.Prefix,
		S3Config:         &cfg.Output.S3,
	}

	slog.Info(
		"extraction started",
		slog.String("run_id", result.RunID),
		slog.String("sink", cfg.Output.Type),
		slog.Int("start_page", cfg.StartPage),
		slog.Int("pages", cfg.Pages),
	)

	err := uc.registry.Use(ctx, cfg.Output.Type, params, func(w writer.Writer) error {
		return uc.extractPages(ctx, cfg, schema, w, result)
	})
	if err != nil {
		return result, errors.WithMessagef(err, "extraction %s failed", result.RunID)
	}

	slog.Info(
		"extraction finished",
		slog.String("run_id", result.RunID),
		slog.Int("pages", result.Pages),
		slog.Int64("rows", result.Rows),
	)

	return result, nil
}

func (uc *UseCase) extractPages(
	ctx context.Context,
	cfg usecase.ExtractConfig,
	schema *arrow.Schema,
	w writer.Writer,
	result *usecase.Result,
) error {
	total := cfg.Pages

	for i := 0; i < total; i++ {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}

		pageNumber := cfg.StartPage + i

		page, err := uc.api.Browse(ctx, pageNumber, cfg.PageSize)
		if err != nil {
			return err
		}

		rows, err := uc.writePage(schema, w, page)
		if err != nil {
			return errors.WithMessagef(err, "failed to write page %d", pageNumber)
		}

		result.Pages++
		result.Rows += rows

		slog.Debug(
			"page written",
			slog.Int("page", pageNumber),
			slog.Int64("rows", rows),
		)

		// the catalog may end before the requested number of pages
		if lastPage := page.Page.TotalPages - 1; pageNumber >= lastPage {
			total = i + 1
		}

		if cfg.OnProgress != nil {
			cfg.OnProgress(usecase.Progress{Done: uint64(i + 1), Total: uint64(total)})
		}
	}

	return nil
}

func (uc *UseCase) writePage(schema *arrow.Schema, w writer.Writer, page *nasa.BrowsePage) (int64, error) {
	record, err := BuildRecord(uc.allocator, schema, page.NearEarthObjects)
	if err != nil {
		return 0, err
	}

	if record == nil {
		return 0, w.Write(nil)
	}

	defer record.Release()

	if err = w.Write(record); err != nil {
		return 0, err
	}

	return record.NumRows(), nil
}
