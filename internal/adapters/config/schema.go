package config

// Setting keys, shared by the settings file, ARDUINO2NIX_* environment
// variables and command-line overrides.
const (
	KeyFormatter    = "formatter"
	KeyNoFormat     = "no_format"
	KeyFetchTimeout = "fetch_timeout"
	KeyMatchVersion = "match_version"
	KeyProgress     = "progress"
	KeyLogFormat    = "log_format"
)

// envPrefix is the prefix of environment variables read as settings.
const envPrefix = "ARDUINO2NIX"

var settingKeys = []string{
	KeyFormatter,
	KeyNoFormat,
	KeyFetchTimeout,
	KeyMatchVersion,
	KeyProgress,
	KeyLogFormat,
}
