package config

const (
	defaultConfigPath      = "~/.config/quotefinder/config.toml"
	projectConfigName      = "quotefinder.toml"
	defaultSummarizeBinary = "summarize"
	defaultRelevanceFloor  = 0.35
	defaultMaxCandidates   = 5
	defaultWordWeight      = 0.6
	defaultSequenceWeight  = 0.4
	defaultOutputFormat    = "text"
	defaultLogFormat       = "console"
	defaultLogLevel        = "warn"

	// summarizeBinaryEnv overrides source.summarize_binary when set.
	summarizeBinaryEnv = "QUOTEFINDER_SUMMARIZE_BIN"
)

// OutputFormats lists the accepted output.format values.
var OutputFormats = []string{"text", "table", "json"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Source: Source{
			SummarizeBinary: defaultSummarizeBinary,
		},
		Matcher: Matcher{
			RelevanceFloor: defaultRelevanceFloor,
			MaxCandidates:  defaultMaxCandidates,
			WordWeight:     defaultWordWeight,
			SequenceWeight: defaultSequenceWeight,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
