package commands

const (
	ConfigPathFlag         = "config"
	ConfigPathShortFlag    = "c"
	ConfigPathDefaultValue = ""
	ConfigPathUsage        = "Location of config file (.yml, .yaml or .json)"

	TTYFlag      = "tty"
	TTYShortFlag = "t"
	TTYUsage     = "Activate TTY mode"

	NoTTYFlag         = "no-tty"
	NoTTYShortFlag    = "T"
	NoTTYDefaultValue = false
	NoTTYUsage        = "Deactivate TTY mode"

	DebugModeFlag         = "debug"
	DebugModeShortFlag    = "d"
	DebugModeDefaultValue = false
	DebugModeUsage        = "Enable debug mode"

	CPUProfileFlag         = "cpu-profile"
	CPUProfileShortFlag    = ""
	CPUProfileDefaultValue = ""
	CPUProfileUsage        = "Path to GoLang CPU profile file"

	MemoryProfileFlag         = "memory-profile"
	MemoryProfileShortFlag    = ""
	MemoryProfileDefaultValue = ""
	MemoryProfileUsage        = "Path to GoLang memory profile file"

	APIKeyFlag         = "api-key"
	APIKeyShortFlag    = "k"
	APIKeyDefaultValue = ""
	APIKeyUsage        = "NASA API key"

	BaseURLFlag         = "base-url"
	BaseURLShortFlag    = "u"
	BaseURLDefaultValue = ""
	BaseURLUsage        = "NASA API base URL"

	SinkFlag         = "sink"
	SinkShortFlag    = "s"
	SinkDefaultValue = ""
	SinkUsage        = "Sink type to write records to, see 'sinks' command"

	OutputDirFlag         = "output-dir"
	OutputDirShortFlag    = "o"
	OutputDirDefaultValue = ""
	OutputDirUsage        = "Directory of the output file"

	FilenameFlag         = "filename"
	FilenameShortFlag    = "f"
	FilenameDefaultValue = ""
	FilenameUsage        = "Name of the output parquet file"

	PagesFlag         = "pages"
	PagesShortFlag    = "n"
	PagesDefaultValue = 0
	PagesUsage        = "Number of pages to fetch"

	PageSizeFlag         = "page-size"
	PageSizeShortFlag    = ""
	PageSizeDefaultValue = 0
	PageSizeUsage        = "Number of objects per page, at most 20"

	StartPageFlag         = "start-page"
	StartPageShortFlag    = ""
	StartPageDefaultValue = 0
	StartPageUsage        = "Number of the first page to fetch"
)
