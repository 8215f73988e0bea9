package s3

import (
	"context"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/spacerocks/neofeed/internal/extractor/models"
	"github.com/spacerocks/neofeed/internal/extractor/output/writer"
)

const SinkType = "s3"

// Uploader is an interface for uploading objects to S3.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Config type is used to describe S3 writer construction arguments.
type Config struct {
	Schema   *arrow.Schema
	Bucket   string
	Prefix   string
	Uploader Uploader
}

// Writer type is a placeholder for writing record batches to S3-compatible object storage.
// Write and Close always return writer.ErrNotImplemented.
type Writer struct {
	schema   *arrow.Schema
	bucket   string
	prefix   string
	uploader Uploader
}

// NewWriter function creates Writer object. Uploader is not owned by the writer.
func NewWriter(cfg Config) *Writer {
	return &Writer{
		schema:   cfg.Schema,
		bucket:   cfg.Bucket,
		prefix:   cfg.Prefix,
		uploader: cfg.Uploader,
	}
}

// Name returns human-readable destination of the writer.
func (w *Writer) Name() string {
	if w.prefix != "" {
		return fmt.Sprintf("s3(%s/%s)", w.bucket, w.prefix)
	}

	return fmt.Sprintf("s3(%s)", w.bucket)
}

// Write is not implemented yet.
func (w *Writer) Write(_ arrow.Record) error {
	return errors.WithMessagef(writer.ErrNotImplemented, "write to %s", w.Name())
}

// Close is not implemented yet.
func (w *Writer) Close() error {
	return errors.WithMessagef(writer.ErrNotImplemented, "close %s", w.Name())
}

// NewUploader creates S3 uploader from the output config.
func NewUploader(ctx context.Context, cfg *models.S3Config) (Uploader, error) {
	var opts []func(*config.LoadOptions) error

	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to load AWS config")
	}

	var s3Opts []func(*s3.Options)

	// custom endpoint for S3-compatible services (MinIO, R2)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	if cfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)

	return manager.NewUploader(client), nil
}
