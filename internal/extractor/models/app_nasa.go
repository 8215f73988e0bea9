package models

import (
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultNASABaseURL  = "https://api.nasa.gov"
	DefaultNASAAPIKey   = "DEMO_KEY"
	DefaultNASATimeout  = 30 * time.Second
	DefaultNASAPageSize = 20
	DefaultNASAPages    = 10

	// MaxNASAPageSize is the largest page the browse endpoint serves.
	MaxNASAPageSize = 20
)

// Verify interface compliance in compile time.
var _ Field = (*NASAConfig)(nil)

// NASAConfig type used to describe Near Earth Object Web Service client config.
type NASAConfig struct {
	BaseURL   string        `env:"NASA_BASE_URL" json:"base_url"   yaml:"base_url"`
	APIKey    string        `env:"NASA_API_KEY"  json:"api_key"    yaml:"api_key"`
	Timeout   time.Duration `json:"timeout"      yaml:"timeout"`
	RetryMax  int           `json:"retry_max"    yaml:"retry_max"`
	PageSize  int           `json:"page_size"    yaml:"page_size"`
	Pages     int           `json:"pages"        yaml:"pages"`
	StartPage int           `json:"start_page"   yaml:"start_page"`
}

func (c *NASAConfig) FillDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultNASABaseURL
	}

	if c.APIKey == "" {
		c.APIKey = DefaultNASAAPIKey
	}

	if c.Timeout == 0 {
		c.Timeout = DefaultNASATimeout
	}

	if c.PageSize == 0 {
		c.PageSize = DefaultNASAPageSize
	}

	if c.Pages == 0 {
		c.Pages = DefaultNASAPages
	}
}

func (c *NASAConfig) Validate() []error {
	var errs []error

	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, errors.Errorf("base url should be absolute, got %q", c.BaseURL))
	}

	if c.Timeout < 0 {
		errs = append(errs, errors.Errorf("timeout should be grater than 0, got %v", c.Timeout))
	}

	if c.RetryMax < 0 {
		errs = append(errs, errors.Errorf("retry max should be non-negative, got %d", c.RetryMax))
	}

	if c.PageSize < 1 || c.PageSize > MaxNASAPageSize {
		errs = append(errs, errors.Errorf("page size should be in range [1, %d], got %d", MaxNASAPageSize, c.PageSize))
	}

	if c.Pages < 1 {
		errs = append(errs, errors.Errorf("pages should be grater than 0, got %d", c.Pages))
	}

	if c.StartPage < 0 {
		errs = append(errs, errors.Errorf("start page should be non-negative, got %d", c.StartPage))
	}

	return errs
}
