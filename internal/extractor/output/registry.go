package output

import (
	"context"
	"fmt"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/spacerocks/neofeed/internal/extractor/models"
	"github.com/spacerocks/neofeed/internal/extractor/output/writer"
	"github.com/spacerocks/neofeed/internal/extractor/output/writer/disk"
	"github.com/spacerocks/neofeed/internal/extractor/output/writer/s3"
)

var ErrSinkAlreadyRegistered = errors.New("sink type already registered")

// Params type carries construction arguments for every sink type.
// Each factory reads only the fields it needs.
type Params struct {
	Schema *arrow.Schema

	// disk
	Fs               afero.Fs
	OutputDir        string
	Filename         string
	CompressionCodec string

	// s3
	Bucket   string
	Prefix   string
	S3Config *models.S3Config
	Uploader s3.Uploader
}

// Factory creates a new sink instance from params.
type Factory func(ctx context.Context, params Params) (writer.Writer, error)

// UnknownSinkTypeError is returned when a sink type is not registered.
type UnknownSinkTypeError struct {
	Kind      string
	Available []string
}

func (e *UnknownSinkTypeError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown sink type %q: no sinks registered", e.Kind)
	}

	return fmt.Sprintf("unknown sink type %q (available: %v)", e.Kind, e.Available)
}

// Registry type is a lookup table of sink factories by sink type.
// It holds no references to created writers. Registration is expected
// to happen during startup, before any lookup.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates empty Registry object.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// NewDefaultRegistry creates Registry with all built-in sinks.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister(disk.SinkType, newDiskWriter)
	r.MustRegister(s3.SinkType, newS3Writer)

	return r
}

// Register associates sink type with factory. Registering the same type twice is an error.
func (r *Registry) Register(kind string, factory Factory) error {
	if kind == "" {
		return errors.New("sink type should not be empty")
	}

	if factory == nil {
		return errors.Errorf("factory for sink type %q should not be nil", kind)
	}

	if _, ok := r.factories[kind]; ok {
		return errors.WithMessagef(ErrSinkAlreadyRegistered, "sink type %q", kind)
	}

	r.factories[kind] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kind string, factory Factory) {
	if err := r.Register(kind, factory); err != nil {
		panic(err)
	}
}

// Get creates a new writer of passed sink type, forwarding params to its factory.
func (r *Registry) Get(ctx context.Context, kind string, params Params) (writer.Writer, error) {
	factory, ok := r.factories[kind]
	if !ok {
		return nil, &UnknownSinkTypeError{Kind: kind, Available: r.Available()}
	}

	return factory(ctx, params)
}

// Use creates a writer of passed sink type and passes it to fn.
// The writer is closed on every exit path of fn.
func (r *Registry) Use(ctx context.Context, kind string, params Params, fn func(w writer.Writer) error) error {
	w, err := r.Get(ctx, kind, params)
	if err != nil {
		return err
	}

	return writer.Use(w, fn)
}

// Available returns sorted registered sink types.
func (r *Registry) Available() []string {
	kinds := lo.Keys(r.factories)
	slices.Sort(kinds)

	return kinds
}

func newDiskWriter(_ context.Context, params Params) (writer.Writer, error) {
	fs := params.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	w, err := disk.NewWriter(fs, disk.Config{
		Schema:           params.Schema,
		OutputDir:        params.OutputDir,
		Filename:         params.Filename,
		CompressionCodec: params.CompressionCodec,
	})
	if err != nil {
		return nil, err
	}

	return w, nil
}

func newS3Writer(ctx context.Context, params Params) (writer.Writer, error) {
	uploader := params.Uploader

	if uploader == nil && params.S3Config != nil {
		var err error

		uploader, err = s3.NewUploader(ctx, params.S3Config)
		if err != nil {
			return nil, writer.NewConstructionError(s3.SinkType, err)
		}
	}

	return s3.NewWriter(s3.Config{
		Schema:   params.Schema,
		Bucket:   params.Bucket,
		Prefix:   params.Prefix,
		Uploader: uploader,
	}), nil
}
