// Package config loads run settings with viper.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/arduino2nix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader. Precedence, highest first:
// overrides, environment, settings file, defaults.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load merges the settings for the project in root.
func (l *Loader) Load(root string, overrides map[string]any) (*domain.Settings, error) {
	v := newViper()

	path := domain.SettingsPath(root)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// A missing settings file is not an error; defaults and env vars apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			readErr := zerr.Wrap(errors.Join(domain.ErrConfigLoadFailed, err), "failed to read settings file")
			return nil, zerr.With(readErr, "path", path)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var s domain.Settings
	if err := v.Unmarshal(&s); err != nil {
		decodeErr := zerr.Wrap(errors.Join(domain.ErrConfigLoadFailed, err), "failed to decode settings")
		return nil, zerr.With(decodeErr, "path", path)
	}

	if err := validate(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	defaults := domain.DefaultSettings()
	v.SetDefault(KeyFormatter, defaults.Formatter)
	v.SetDefault(KeyNoFormat, defaults.NoFormat)
	v.SetDefault(KeyFetchTimeout, defaults.FetchTimeout)
	v.SetDefault(KeyMatchVersion, defaults.MatchVersion)
	v.SetDefault(KeyProgress, string(defaults.Progress))
	v.SetDefault(KeyLogFormat, string(defaults.LogFormat))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range settingKeys {
		_ = v.BindEnv(key, envPrefix+"_"+strings.ToUpper(key))
	}

	return v
}

func validate(s *domain.Settings) error {
	switch s.Progress {
	case domain.ProgressAuto, domain.ProgressAlways, domain.ProgressNever:
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidProgressMode, "unknown progress mode"), "progress", string(s.Progress))
	}

	switch s.LogFormat {
	case domain.LogFormatPretty, domain.LogFormatJSON:
	default:
		formatErr := zerr.Wrap(domain.ErrConfigLoadFailed, "unknown log format, expected 'pretty' or 'json'")
		return zerr.With(formatErr, "log_format", string(s.LogFormat))
	}

	if s.FetchTimeout <= 0 {
		timeoutErr := zerr.Wrap(domain.ErrConfigLoadFailed, "fetch timeout must be positive")
		return zerr.With(timeoutErr, "fetch_timeout", s.FetchTimeout.String())
	}

	if !s.NoFormat && strings.TrimSpace(s.Formatter) == "" {
		return zerr.Wrap(domain.ErrConfigLoadFailed, "formatter must not be empty unless no_format is set")
	}

	return nil
}
