package models

import (
	"github.com/pkg/errors"
)

const (
	DefaultOutputType     = "disk"
	DefaultOutputDir      = "output"
	DefaultOutputFilename = "near_earth_objects.parquet"
)

// Verify interface compliance in compile time.
var _ Field = (*OutputConfig)(nil)

// OutputConfig type used to describe sink selection and sink parameters.
// Type is resolved by the sink registry, so unknown types are reported there.
type OutputConfig struct {
	Type             string   `env:"NEOFEED_OUTPUT_TYPE" json:"type"              yaml:"type"`
	Dir              string   `env:"NEOFEED_OUTPUT_DIR"  json:"dir"               yaml:"dir"`
	Filename         string   `json:"filename"           yaml:"filename"`
	CompressionCodec string   `json:"compression_codec"  yaml:"compression_codec"`
	S3               S3Config `json:"s3"                 yaml:"s3"`
}

func (c *OutputConfig) FillDefaults() {
	if c.Type == "" {
		c.Type = DefaultOutputType
	}

	if c.Dir == "" {
		c.Dir = DefaultOutputDir
	}

	if c.Filename == "" {
		c.Filename = DefaultOutputFilename
	}
}

func (c *OutputConfig) Validate() []error {
	var errs []error

	if c.Type == "s3" {
		errs = append(errs, c.S3.Validate()...)
	}

	return errs
}

// S3Config type used to describe object store output config.
type S3Config struct {
	Bucket          string `json:"bucket"            yaml:"bucket"`
	Prefix          string `json:"prefix"            yaml:"prefix"`
	Region          string `env:"AWS_REGION"            json:"region"            yaml:"region"`
	Endpoint        string `json:"endpoint"          yaml:"endpoint"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"     json:"access_key_id"     yaml:"access_key_id"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" json:"secret_access_key" yaml:"secret_access_key"`
	ForcePathStyle  bool   `json:"force_path_style"  yaml:"force_path_style"`
}

func (c *S3Config) Validate() []error {
	var errs []error

	if c.Bucket == "" {
		errs = append(errs, errors.New("s3 bucket should be set"))
	}

	return errs
}
