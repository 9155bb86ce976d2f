package ports

import "go.trai.ch/arduino2nix/internal/core/domain"

// SettingsLoader merges run settings from their sources.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file in root and the environment. overrides
	// are keyed by setting name and win over every other source.
	Load(root string, overrides map[string]any) (*domain.Settings, error)
}
