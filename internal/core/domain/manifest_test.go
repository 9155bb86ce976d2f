package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/arduino2nix/internal/core/domain"
)

func TestManifest_Clone(t *testing.T) {
	original := &domain.Manifest{
		Profiles: []domain.Profile{
			{
				Name:        "uno",
				BuildTarget: "arduino:avr:uno",
				Platforms: []domain.PlatformDependency{
					{
						Reference: domain.MustParseReference("arduino:avr (1.8.6)"),
						IndexURL:  "https://example.com/index.json",
						Extra:     domain.Fields{{Key: "note", Value: "kept"}},
					},
				},
				Libraries: []string{"Servo (1.2.1)"},
				Extra:     domain.Fields{{Key: "programmer", Value: "avrisp"}},
			},
		},
		Extra: domain.Fields{{Key: "default_profile", Value: "uno"}},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Profiles[0].Platforms[0].IndexURL = domain.PinnedIndexURL("arduino-avr-v1-8-6")
	clone.Profiles[0].Libraries[0] = "changed"
	clone.Profiles[0].Platforms[0].Extra[0].Key = "changed"

	assert.Equal(t, "https://example.com/index.json", original.Profiles[0].Platforms[0].IndexURL)
	assert.Equal(t, "Servo (1.2.1)", original.Profiles[0].Libraries[0])
	assert.Equal(t, "note", original.Profiles[0].Platforms[0].Extra[0].Key)
}

func TestPlatformDependency_EffectiveIndexURL(t *testing.T) {
	dep := domain.PlatformDependency{}
	assert.Equal(t, domain.DefaultIndexURL, dep.EffectiveIndexURL())

	dep.IndexURL = "https://example.com/index.json"
	assert.Equal(t, "https://example.com/index.json", dep.EffectiveIndexURL())
}

func TestPinnedIndexURL(t *testing.T) {
	assert.Equal(t, "file://${esp32-esp32-v2-0-5}", domain.PinnedIndexURL("esp32-esp32-v2-0-5"))
}

func TestNormalizeChecksum(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "prefixed", raw: "SHA-256:abc123", want: "abc123"},
		{name: "lowercase prefix", raw: "sha-256:abc123", want: "abc123"},
		{name: "bare digest", raw: "abc123", want: "abc123"},
		{name: "other algorithm", raw: "MD5:abc123", wantErr: domain.ErrUnsupportedChecksum},
		{name: "empty", raw: "", wantErr: domain.ErrIndexDecodeFailed},
		{name: "empty digest", raw: "SHA-256:", wantErr: domain.ErrIndexDecodeFailed},
		{name: "uppercase hex", raw: "SHA-256:ABCDEF0123", want: "ABCDEF0123"},
		{name: "not hex", raw: "SHA-256:xyz", wantErr: domain.ErrIndexDecodeFailed},
		{name: "base64 digest", raw: "SHA-256:q83vEjRWeJA=", wantErr: domain.ErrIndexDecodeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeChecksum(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
