package disk

import (
	"log/slog"
	"path/filepath"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/spacerocks/neofeed/internal/extractor/output/writer"
)

const (
	SinkType = "disk"

	DefaultCompressionCodec = "SNAPPY"
)

var CodecsByName = map[string]compress.Compression{
	"UNCOMPRESSED": compress.Codecs.Uncompressed,
	"SNAPPY":       compress.Codecs.Snappy,
	"GZIP":         compress.Codecs.Gzip,
	"LZ4RAW":       compress.Codecs.Lz4Raw,
	"ZSTD":         compress.Codecs.Zstd,
	"BROTLI":       compress.Codecs.Brotli,
}

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Config type is used to describe disk writer construction arguments.
type Config struct {
	Schema           *arrow.Schema
	OutputDir        string
	Filename         string
	CompressionCodec string
}

// recordWriter is satisfied by *pqarrow.FileWriter.
type recordWriter interface {
	Write(record arrow.Record) error
	Close() error
}

// Writer type is implementation of Writer to a single parquet file on local storage.
type Writer struct {
	path          string
	overwrote     bool
	parquetWriter recordWriter
	writtenRows   int64
	closed        bool
}

// NewWriter function creates output directory if absent and opens parquet file {OutputDir}/{Filename}.
//
// If the file already exists it is truncated and overwritten, a warning is logged
// and Overwrote reports true. Failure to open the file returns *writer.ConstructionError.
func NewWriter(fs afero.Fs, cfg Config) (*Writer, error) {
	if cfg.Schema == nil {
		return nil, writer.NewConstructionError(SinkType, errors.New("schema is not set"))
	}

	if cfg.Filename == "" {
		return nil, writer.NewConstructionError(SinkType, errors.New("file name is not set"))
	}

	codecName := cfg.CompressionCodec
	if codecName == "" {
		codecName = DefaultCompressionCodec
	}

	codec, ok := CodecsByName[codecName]
	if !ok {
		return nil, writer.NewConstructionError(SinkType, errors.Errorf("unknown compression codec %q", codecName))
	}

	exists, err := afero.DirExists(fs, cfg.OutputDir)
	if err != nil {
		return nil, writer.NewConstructionError(SinkType, errors.New(err.Error()))
	}

	if !exists {
		if err = fs.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, writer.NewConstructionError(SinkType, errors.New(err.Error()))
		}

		slog.Debug("created output directory", slog.String("dir", cfg.OutputDir))
	}

	fullPath := filepath.Join(cfg.OutputDir, cfg.Filename)

	overwrote, err := afero.Exists(fs, fullPath)
	if err != nil {
		return nil, writer.NewConstructionError(SinkType, errors.New(err.Error()))
	}

	if overwrote {
		//nolint:godox
		// TODO: gate overwriting behind a force flag once the CLI exposes one.
		slog.Warn(
			"parquet file already exists, overwriting it",
			slog.String("path", fullPath),
		)
	}

	f, err := fs.Create(fullPath)
	if err != nil {
		return nil, writer.NewConstructionError(SinkType, errors.New(err.Error()))
	}

	pWriter, err := pqarrow.NewFileWriter(
		cfg.Schema,
		f,
		parquet.NewWriterProperties(parquet.WithCompression(codec)),
		pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema()),
	)
	if err != nil {
		_ = f.Close()

		return nil, writer.NewConstructionError(SinkType, errors.New(err.Error()))
	}

	return &Writer{
		path:          fullPath,
		overwrote:     overwrote,
		parquetWriter: pWriter,
	}, nil
}

// Path returns location of the output file.
func (w *Writer) Path() string {
	return w.path
}

// Overwrote reports whether construction replaced an existing file.
func (w *Writer) Overwrote() bool {
	return w.overwrote
}

// WrittenRows returns number of rows appended so far.
func (w *Writer) WrittenRows() int64 {
	return w.writtenRows
}

// Write function appends record to the parquet file. Nil record is ignored.
func (w *Writer) Write(record arrow.Record) error {
	if record == nil {
		return nil
	}

	if w.closed {
		return writer.ErrWriterClosed
	}

	if err := w.parquetWriter.Write(record); err != nil {
		return errors.WithMessagef(err, "failed to write record to %q", w.path)
	}

	w.writtenRows += record.NumRows()

	return nil
}

// Close function finalizes the parquet file and closes opened file descriptor.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	w.closed = true

	if err := w.parquetWriter.Close(); err != nil {
		return errors.WithMessagef(err, "failed to close parquet file %q", w.path)
	}

	slog.Debug(
		"parquet file closed",
		slog.String("path", w.path),
		slog.Int64("rows", w.writtenRows),
	)

	return nil
}
