package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/arduino2nix/internal/adapters/detector"
	"go.trai.ch/arduino2nix/internal/core/domain"
)

func TestIsCI(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "true", want: true},
		{value: "1", want: true},
		{value: "false", want: false},
		{value: "", want: false},
	}

	for _, tt := range tests {
		t.Run("CI="+tt.value, func(t *testing.T) {
			t.Setenv("CI", tt.value)
			assert.Equal(t, tt.want, detector.IsCI())
		})
	}
}

func TestIsInteractive_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.False(t, detector.IsInteractive())
}

func TestProgressEnabled(t *testing.T) {
	tests := []struct {
		mode        domain.ProgressMode
		interactive bool
		want        bool
	}{
		{mode: domain.ProgressAlways, interactive: false, want: true},
		{mode: domain.ProgressNever, interactive: true, want: false},
		{mode: domain.ProgressAuto, interactive: true, want: true},
		{mode: domain.ProgressAuto, interactive: false, want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, detector.ProgressEnabled(tt.mode, tt.interactive), "%s/%v", tt.mode, tt.interactive)
	}
}
