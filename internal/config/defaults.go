package config

import "scribe/internal/speakers"

const (
	defaultLogDir                    = "~/.local/share/scribe/logs"
	defaultDataDir                   = "~/.local/share/scribe"
	defaultReportDir                 = "~/scribe"
	defaultAPIBind                   = "127.0.0.1:7489"
	defaultLogFormat                 = "console"
	defaultLogLevel                  = "info"
	defaultMaxSuggestions            = 5
	defaultSuggestionThreshold       = 3
	defaultNameIntroductionWordBound = speakers.DefaultNameIntroductionWordBound
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			DataDir:   defaultDataDir,
			ReportDir: defaultReportDir,
		},
		Search: Search{
			MaxSuggestions:      defaultMaxSuggestions,
			SuggestionThreshold: defaultSuggestionThreshold,
		},
		Speakers: Speakers{
			NameIntroductionWordBound: defaultNameIntroductionWordBound,
		},
		API: API{
			Bind: defaultAPIBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
