package config

const (
	defaultSourceDir = "records"
	defaultOutputDir = "content"
	defaultLogDir    = "~/.local/share/liner/logs"
	defaultMode      = ModeLenient
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Build modes.
const (
	ModeStrict  = "strict"
	ModeLenient = "lenient"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceDir: defaultSourceDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Build: Build{
			Mode:    defaultMode,
			Workers: 0,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
