package models

import (
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// Verify interface compliance in compile time.
var _ Field = (*AppConfig)(nil)

// AppConfig type is used to describe application config.
type AppConfig struct {
	LogFormat string       `env:"NEOFEED_LOG_FORMAT" json:"log_format" yaml:"log_format"`
	NASA      NASAConfig   `json:"nasa"              yaml:"nasa"`
	Output    OutputConfig `json:"output"            yaml:"output"`
}

// ParseFromFile reads config file if path is set, overrides values from environment
// and validates the result.
func (m *AppConfig) ParseFromFile(path string) error {
	if path != "" {
		err := DecodeFile(path, m)
		if err != nil {
			return errors.WithMessagef(err, "failed to parse app config file %q", path)
		}
	} else if err := cleanenv.ReadEnv(m); err != nil {
		return errors.WithMessage(err, "failed to read app config from environment")
	}

	err := m.PostProcess()
	if err != nil {
		return errors.WithMessagef(err, "failed to post process app config file %q", path)
	}

	return nil
}

func (m *AppConfig) PostProcess() error {
	m.FillDefaults()

	errs := m.Validate()
	if len(errs) != 0 {
		return errors.Errorf("failed to validate app config:\n%v", parseErrsToString(errs))
	}

	return nil
}

func (m *AppConfig) FillDefaults() {
	if m.LogFormat == "" {
		m.LogFormat = "text"
	}

	m.NASA.FillDefaults()
	m.Output.FillDefaults()
}

func (m *AppConfig) Validate() []error {
	var errs []error

	if !slices.Contains([]string{"text", "json"}, m.LogFormat) {
		errs = append(errs, errors.Errorf("unknown log format: %s", m.LogFormat))
	}

	if nasaErrs := m.NASA.Validate(); len(nasaErrs) != 0 {
		errs = append(errs, errors.New("failed to validate NASA API configuration:"))
		errs = append(errs, nasaErrs...)
	}

	if outputErrs := m.Output.Validate(); len(outputErrs) != 0 {
		errs = append(errs, errors.New("failed to validate output configuration:"))
		errs = append(errs, outputErrs...)
	}

	return errs
}
