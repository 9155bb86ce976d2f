// Package detector decides whether progress output is shown.
package detector

import (
	"os"

	"golang.org/x/term"
	"go.trai.ch/arduino2nix/internal/core/domain"
)

// IsInteractive reports whether stderr is a terminal and no CI environment
// variable is set.
func IsInteractive() bool {
	if !term.IsTerminal(int(os.Stderr.Fd())) { //nolint:gosec // fd fits in int
		return false
	}
	return !IsCI()
}

// IsCI reports whether CI is set to "true" or "1".
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ProgressEnabled applies the configured mode to the detected environment.
func ProgressEnabled(mode domain.ProgressMode, interactive bool) bool {
	switch mode {
	case domain.ProgressAlways:
		return true
	case domain.ProgressNever:
		return false
	default:
		return interactive
	}
}
