package options

import (
	"os"

	"github.com/spacerocks/neofeed/internal/extractor/cli/streams"
	"github.com/spacerocks/neofeed/internal/extractor/models"
	"github.com/spacerocks/neofeed/internal/extractor/usecase"
)

// Option type is a value wrapper with a flag indicating whether its value has been modified.
type Option[T any] struct {
	Value   T
	Changed *bool
}

// NeofeedOptions type is used to describe root command options.
type NeofeedOptions struct {
	TTY           Option[bool]
	NoTTY         Option[bool]
	ConfigPath    string
	DebugMode     bool
	CPUProfile    string
	MemoryProfile string
	APIKey        string
	BaseURL       string
}

type CliOptions struct {
	useCase        usecase.UseCase
	out            *streams.Out
	appConfig      *models.AppConfig
	neofeedOptions *NeofeedOptions
	version        string
	useTTY         bool
}

func NewCliOptions(version string) *CliOptions {
	return &CliOptions{
		version:        version,
		out:            streams.NewOut(os.Stdout),
		appConfig:      &models.AppConfig{},
		neofeedOptions: &NeofeedOptions{},
	}
}

func (opts *CliOptions) UseCase() usecase.UseCase {
	return opts.useCase
}

func (opts *CliOptions) SetUseCase(useCase usecase.UseCase) {
	opts.useCase = useCase
}

func (opts *CliOptions) Out() *streams.Out {
	return opts.out
}

func (opts *CliOptions) SetOut(out *streams.Out) {
	opts.out = out
}

func (opts *CliOptions) AppConfig() *models.AppConfig {
	return opts.appConfig
}

func (opts *CliOptions) SetAppConfig(appConfig *models.AppConfig) {
	opts.appConfig = appConfig
}

func (opts *CliOptions) NeofeedOpts() *NeofeedOptions {
	return opts.neofeedOptions
}

func (opts *CliOptions) SetNeofeedOpts(neofeedOpts *NeofeedOptions) {
	opts.neofeedOptions = neofeedOpts
}

func (opts *CliOptions) UseTTY() bool {
	return opts.useTTY
}

func (opts *CliOptions) SetUseTTY(useTTY bool) {
	opts.useTTY = useTTY
}

func (opts *CliOptions) Version() string {
	return opts.version
}

func (opts *CliOptions) SetVersion(version string) {
	opts.version = version
}

func (opts *CliOptions) DebugMode() bool {
	return opts.NeofeedOpts().DebugMode
}

func (opts *CliOptions) CPUProfile() string {
	return opts.NeofeedOpts().CPUProfile
}

func (opts *CliOptions) MemoryProfile() string {
	return opts.NeofeedOpts().MemoryProfile
}
