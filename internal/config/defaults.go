package config

const (
	defaultCacheDir            = "~/.cache/clipseek"
	defaultLogDir              = "~/.local/share/clipseek/logs"
	defaultBaseURL             = "https://api.assemblyai.com/v2"
	defaultPollIntervalSeconds = 3
	defaultThreshold           = 80
	defaultWindowSize          = 1
	defaultClipDuration        = 30
	defaultLogLevel            = "info"
	defaultLogFormat           = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
		},
		AssemblyAI: AssemblyAI{
			BaseURL:             defaultBaseURL,
			PollIntervalSeconds: defaultPollIntervalSeconds,
		},
		Search: Search{
			Threshold:    defaultThreshold,
			WindowSize:   defaultWindowSize,
			ClipDuration: defaultClipDuration,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
