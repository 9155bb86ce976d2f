package domain

import "time"

// ProgressMode selects whether generation progress is printed.
type ProgressMode string

const (
	// ProgressAuto prints progress when stderr is a terminal outside CI.
	ProgressAuto ProgressMode = "auto"
	// ProgressAlways prints progress unconditionally.
	ProgressAlways ProgressMode = "always"
	// ProgressNever disables progress output.
	ProgressNever ProgressMode = "never"
)

// LogFormat selects the log output encoding.
type LogFormat string

const (
	// LogFormatPretty is colored, human-readable output.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON is one JSON object per record.
	LogFormatJSON LogFormat = "json"
)

// Settings are the user-tunable options of a run, merged from flags,
// environment and the project settings file.
type Settings struct {
	Formatter    string        `mapstructure:"formatter"`
	NoFormat     bool          `mapstructure:"no_format"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	MatchVersion bool          `mapstructure:"match_version"`
	Progress     ProgressMode  `mapstructure:"progress"`
	LogFormat    LogFormat     `mapstructure:"log_format"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Formatter:    "nixfmt",
		FetchTimeout: 60 * time.Second,
		Progress:     ProgressAuto,
		LogFormat:    LogFormatPretty,
	}
}

// MatchPolicy returns the index match policy the settings select.
func (s *Settings) MatchPolicy() MatchPolicy {
	if s.MatchVersion {
		return MatchExactVersion
	}
	return MatchFirstByName
}
